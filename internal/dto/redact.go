package dto

import "github.com/autogleam/detailing-api/internal/models"

// RedactAppointments nulls every price-bearing field for non-admin callers.
// It is the single enforcement point for price visibility and is applied at
// the response boundary of every endpoint emitting appointments.
// Redacting twice equals redacting once.
func RedactAppointments(role string, rows ...*AppointmentRow) {
	if role != models.RoleEmployee {
		return
	}
	for _, row := range rows {
		row.Price = nil
		row.ExtraCost = nil
		row.PaidAmount = nil
		if row.PrimaryServicePrice != nil {
			row.PrimaryServicePrice = nil
		}
		for i := range row.Services {
			row.Services[i].Price = nil
		}
	}
}

// RedactServices is the catalog counterpart of RedactAppointments.
func RedactServices(role string, services []models.Service) {
	if role != models.RoleEmployee {
		return
	}
	for i := range services {
		services[i].Price = nil
	}
}
