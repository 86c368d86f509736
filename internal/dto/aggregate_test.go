package dto

import (
	"encoding/json"
	"testing"
)

func row(ids, names, durations, categories, prices string) *AppointmentRow {
	return &AppointmentRow{
		ServiceIDsRaw:        ids,
		ServiceNamesRaw:      names,
		ServiceDurationsRaw:  durations,
		ServiceCategoriesRaw: categories,
		ServicePricesRaw:     prices,
	}
}

func TestBuildServices_MultiService(t *testing.T) {
	t.Parallel()

	r := row(
		"3||7||12",
		"Exterior Wash||Interior Detail||Ceramic Coating",
		"30||90||240",
		"wash||detail||protection",
		"25.00||120.00||450.00",
	)

	services := BuildServices(r)
	if len(services) != 3 {
		t.Fatalf("expected 3 services, got %d", len(services))
	}

	if services[0].ID != 3 || services[1].ID != 7 || services[2].ID != 12 {
		t.Fatalf("ids out of order: %+v", services)
	}
	if services[1].Name != "Interior Detail" {
		t.Fatalf("name mismatch: got %q", services[1].Name)
	}
	if services[1].Duration == nil || *services[1].Duration != 90 {
		t.Fatalf("duration mismatch: %+v", services[1].Duration)
	}
	if services[2].Price == nil || *services[2].Price != 450.00 {
		t.Fatalf("price mismatch: %+v", services[2].Price)
	}
}

func TestBuildServices_SkipsEmptyIDTokens(t *testing.T) {
	t.Parallel()

	r := row("5||", "Wax||", "45||", "protection||", "60.00||")

	services := BuildServices(r)
	if len(services) != 1 {
		t.Fatalf("expected 1 service, got %d", len(services))
	}
	if services[0].ID != 5 {
		t.Fatalf("id mismatch: got %d", services[0].ID)
	}
}

func TestBuildServices_MisalignedColumns(t *testing.T) {
	t.Parallel()

	// durations column shorter than ids; missing tokens decode to nil
	r := row("1||2", "A||B", "30", "x||y", "10||not-a-number")

	services := BuildServices(r)
	if len(services) != 2 {
		t.Fatalf("expected 2 services, got %d", len(services))
	}
	if services[1].Duration != nil {
		t.Fatalf("expected nil duration for missing token, got %v", *services[1].Duration)
	}
	if services[1].Price != nil {
		t.Fatalf("expected nil price for malformed token, got %v", *services[1].Price)
	}
}

func TestBuildServices_LegacyFallback(t *testing.T) {
	t.Parallel()

	id := uint(9)
	duration := 60
	price := "80.00"
	r := &AppointmentRow{
		PrimaryServiceID:       &id,
		PrimaryServiceName:     "Engine Bay Clean",
		PrimaryServiceDuration: &duration,
		PrimaryServiceCategory: "detail",
		PrimaryServicePrice:    &price,
	}

	services := BuildServices(r)
	if len(services) != 1 {
		t.Fatalf("expected 1 legacy service, got %d", len(services))
	}
	if services[0].ID != 9 || services[0].Name != "Engine Bay Clean" {
		t.Fatalf("legacy service mismatch: %+v", services[0])
	}
	if services[0].Price == nil || *services[0].Price != 80.00 {
		t.Fatalf("legacy price mismatch: %+v", services[0].Price)
	}
}

func TestBuildServices_NoServices(t *testing.T) {
	t.Parallel()

	services := BuildServices(&AppointmentRow{})
	if services == nil {
		t.Fatalf("expected empty list, got nil")
	}
	if len(services) != 0 {
		t.Fatalf("expected empty list, got %d entries", len(services))
	}
}

func TestFinalize_ProjectsServiceIDs(t *testing.T) {
	t.Parallel()

	r := row("4||2", "A||B", "10||20", "x||y", "1||2")
	Finalize(r)

	if len(r.ServiceIDs) != 2 || r.ServiceIDs[0] != 4 || r.ServiceIDs[1] != 2 {
		t.Fatalf("service id projection mismatch: %v", r.ServiceIDs)
	}
}

func TestNormalizeServiceIDs_JSONNumbers(t *testing.T) {
	t.Parallel()

	ids := NormalizeServiceIDs(json.RawMessage(`[3, 1, 7]`), nil)
	if len(ids) != 3 || ids[0] != 3 || ids[1] != 1 || ids[2] != 7 {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestNormalizeServiceIDs_NumericStrings(t *testing.T) {
	t.Parallel()

	ids := NormalizeServiceIDs(json.RawMessage(`["5", "8"]`), nil)
	if len(ids) != 2 || ids[0] != 5 || ids[1] != 8 {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestNormalizeServiceIDs_CommaJoinedString(t *testing.T) {
	t.Parallel()

	ids := NormalizeServiceIDs(json.RawMessage(`"2, 4,6"`), nil)
	if len(ids) != 3 || ids[0] != 2 || ids[1] != 4 || ids[2] != 6 {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestNormalizeServiceIDs_DropsNonNumeric(t *testing.T) {
	t.Parallel()

	ids := NormalizeServiceIDs(json.RawMessage(`["abc", "", "0", "3"]`), nil)
	if len(ids) != 1 || ids[0] != 3 {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestNormalizeServiceIDs_AllNonNumeric(t *testing.T) {
	t.Parallel()

	ids := NormalizeServiceIDs(json.RawMessage(`["a", "b"]`), nil)
	if len(ids) != 0 {
		t.Fatalf("expected no ids, got %v", ids)
	}
}

func TestNormalizeServiceIDs_LegacyScalar(t *testing.T) {
	t.Parallel()

	legacy := uint(11)
	ids := NormalizeServiceIDs(nil, &legacy)
	if len(ids) != 1 || ids[0] != 11 {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestNormalizeServiceIDs_ArrayWinsOverLegacy(t *testing.T) {
	t.Parallel()

	legacy := uint(11)
	ids := NormalizeServiceIDs(json.RawMessage(`[2]`), &legacy)
	if len(ids) != 1 || ids[0] != 2 {
		t.Fatalf("unexpected ids: %v", ids)
	}
}
