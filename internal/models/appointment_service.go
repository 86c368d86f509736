package models

import "time"

// AppointmentService is the join row between an appointment and one of its
// services. The pair is unique; deleting the appointment cascades.
type AppointmentService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"uniqueIndex:uniq_appointment_service;index;not null" json:"appointment_id"`
	ServiceID     uint `gorm:"uniqueIndex:uniq_appointment_service;index;not null" json:"service_id"`

	CreatedAt time.Time `json:"created_at"`
}
