package models

import "time"

// AppointmentProtocol is the car-condition intake/release record. At most
// one row exists per appointment (unique key); saves are upserts.
type AppointmentProtocol struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"uniqueIndex:uniq_appointment_protocol;not null" json:"appointment_id"`

	Mileage     string `gorm:"size:50" json:"mileage"`
	FuelLevel   string `gorm:"size:20" json:"fuel_level"`
	Accessories string `gorm:"type:text" json:"accessories"`
	Notes       string `gorm:"type:text" json:"notes"`

	// Damage annotations as JSON text; decoded at the API boundary.
	DamagesJSON string `gorm:"type:text" json:"-"`

	// Signatures are stored verbatim as data URLs.
	ClientSignature   string `gorm:"type:text" json:"client_signature"`
	EmployeeSignature string `gorm:"type:text" json:"employee_signature"`

	CreatedBy *uint `json:"created_by"`
	UpdatedBy *uint `json:"updated_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
