package models

import (
	"time"

	"gorm.io/gorm"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint    `gorm:"index;not null" json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	CarID uint `gorm:"index;not null" json:"car_id"`
	Car   *Car `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"car,omitempty"`

	// Primary service, kept as "first of the attached services" for
	// compatibility with single-service rows.
	ServiceID uint     `gorm:"index" json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`

	EmployeeID *uint     `gorm:"index" json:"employee_id"`
	Employee   *Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"employee,omitempty"`

	Date      time.Time `gorm:"type:date;index;not null" json:"-"`
	StartTime string    `gorm:"size:5;not null" json:"start_time"`

	Status string `gorm:"size:20;default:'scheduled';index" json:"status"`
	Notes  string `gorm:"type:text" json:"notes"`

	Price      *float64 `json:"price"`
	ExtraCost  *float64 `json:"extra_cost"`
	PaidAmount *float64 `json:"paid_amount"`

	Services []Service `gorm:"many2many:appointment_services;" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
