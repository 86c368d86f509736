package dto

import (
	"testing"

	"github.com/autogleam/detailing-api/internal/models"
)

func priced() *AppointmentRow {
	price := 100.0
	extra := 20.0
	paid := 50.0
	primary := "100.00"
	servicePrice := 80.0
	return &AppointmentRow{
		Price:               &price,
		ExtraCost:           &extra,
		PaidAmount:          &paid,
		PrimaryServicePrice: &primary,
		Services: []ServiceDTO{
			{ID: 1, Name: "Wash", Price: &servicePrice},
		},
	}
}

func TestRedactAppointments_EmployeeSeesNoPrices(t *testing.T) {
	t.Parallel()

	r := priced()
	RedactAppointments(models.RoleEmployee, r)

	if r.Price != nil || r.ExtraCost != nil || r.PaidAmount != nil {
		t.Fatalf("appointment prices not redacted: %+v", r)
	}
	if r.PrimaryServicePrice != nil {
		t.Fatalf("primary service price not redacted")
	}
	if r.Services[0].Price != nil {
		t.Fatalf("service price not redacted")
	}
}

func TestRedactAppointments_AdminKeepsPrices(t *testing.T) {
	t.Parallel()

	r := priced()
	RedactAppointments(models.RoleAdmin, r)

	if r.Price == nil || *r.Price != 100.0 {
		t.Fatalf("admin price redacted: %+v", r.Price)
	}
	if r.Services[0].Price == nil {
		t.Fatalf("admin service price redacted")
	}
}

func TestRedactAppointments_Idempotent(t *testing.T) {
	t.Parallel()

	r := priced()
	RedactAppointments(models.RoleEmployee, r)
	RedactAppointments(models.RoleEmployee, r)

	if r.Price != nil || r.Services[0].Price != nil {
		t.Fatalf("double redaction changed outcome: %+v", r)
	}
}

func TestRedactServices(t *testing.T) {
	t.Parallel()

	p1, p2 := 10.0, 20.0
	services := []models.Service{
		{Name: "Wash", Price: &p1},
		{Name: "Wax", Price: &p2},
	}

	RedactServices(models.RoleEmployee, services)
	if services[0].Price != nil || services[1].Price != nil {
		t.Fatalf("catalog prices not redacted: %+v", services)
	}
}

func TestRedactServices_AdminUntouched(t *testing.T) {
	t.Parallel()

	p := 10.0
	services := []models.Service{{Name: "Wash", Price: &p}}

	RedactServices(models.RoleAdmin, services)
	if services[0].Price == nil || *services[0].Price != 10.0 {
		t.Fatalf("admin catalog price redacted: %+v", services[0].Price)
	}
}
