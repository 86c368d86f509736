package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// BuildServices decodes the separator-joined multi-service columns into an
// ordered service list. When no aggregated ids are present it falls back to
// the legacy single-service columns; with neither it returns an empty list.
// Empty id tokens are skipped so an aggregation that matched zero rows
// cannot produce a phantom service.
func BuildServices(row *AppointmentRow) []ServiceDTO {
	if row.ServiceIDsRaw != "" {
		ids := strings.Split(row.ServiceIDsRaw, ServiceSeparator)
		names := strings.Split(row.ServiceNamesRaw, ServiceSeparator)
		durations := strings.Split(row.ServiceDurationsRaw, ServiceSeparator)
		categories := strings.Split(row.ServiceCategoriesRaw, ServiceSeparator)
		prices := strings.Split(row.ServicePricesRaw, ServiceSeparator)

		services := make([]ServiceDTO, 0, len(ids))
		for i, idToken := range ids {
			if idToken == "" {
				continue
			}
			id, err := strconv.ParseUint(idToken, 10, 32)
			if err != nil {
				continue
			}
			services = append(services, ServiceDTO{
				ID:       uint(id),
				Name:     tokenAt(names, i),
				Duration: parseOptionalInt(tokenAt(durations, i)),
				Category: tokenAt(categories, i),
				Price:    parseOptionalFloat(tokenAt(prices, i)),
			})
		}
		return services
	}

	if row.PrimaryServiceID != nil {
		var price *float64
		if row.PrimaryServicePrice != nil {
			price = parseOptionalFloat(*row.PrimaryServicePrice)
		}
		return []ServiceDTO{{
			ID:       *row.PrimaryServiceID,
			Name:     row.PrimaryServiceName,
			Duration: row.PrimaryServiceDuration,
			Category: row.PrimaryServiceCategory,
			Price:    price,
		}}
	}

	return []ServiceDTO{}
}

// Finalize attaches the decoded service list and the id projection to the
// row before it is serialized.
func Finalize(row *AppointmentRow) *AppointmentRow {
	row.Services = BuildServices(row)
	row.ServiceIDs = make([]uint, 0, len(row.Services))
	for _, s := range row.Services {
		row.ServiceIDs = append(row.ServiceIDs, s.ID)
	}
	return row
}

func FinalizeAll(rows []AppointmentRow) []AppointmentRow {
	for i := range rows {
		Finalize(&rows[i])
	}
	return rows
}

func tokenAt(tokens []string, i int) string {
	if i < len(tokens) {
		return tokens[i]
	}
	return ""
}

// absent or malformed numerics decode to nil, keeping "unknown" distinct
// from zero
func parseOptionalInt(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func parseOptionalFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// NormalizeServiceIDs accepts the wire forms of service_ids: a JSON array
// of numbers or numeric strings, or a single comma-joined string. A legacy
// scalar service_id is used when service_ids is absent. Non-numeric entries
// are dropped; the result may be empty.
func NormalizeServiceIDs(raw json.RawMessage, legacy *uint) []uint {
	if len(raw) > 0 {
		var anyList []any
		if err := json.Unmarshal(raw, &anyList); err == nil {
			return numericIDs(anyList)
		}

		var joined string
		if err := json.Unmarshal(raw, &joined); err == nil {
			parts := strings.Split(joined, ",")
			anyParts := make([]any, 0, len(parts))
			for _, p := range parts {
				anyParts = append(anyParts, strings.TrimSpace(p))
			}
			return numericIDs(anyParts)
		}

		return nil
	}

	if legacy != nil {
		return []uint{*legacy}
	}

	return nil
}

func numericIDs(values []any) []uint {
	ids := make([]uint, 0, len(values))
	for _, v := range values {
		switch t := v.(type) {
		case float64:
			if t > 0 {
				ids = append(ids, uint(t))
			}
		case string:
			if t == "" {
				continue
			}
			if n, err := strconv.ParseUint(t, 10, 32); err == nil && n > 0 {
				ids = append(ids, uint(n))
			}
		}
	}
	return ids
}
