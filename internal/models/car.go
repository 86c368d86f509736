package models

import (
	"time"

	"gorm.io/gorm"
)

type Car struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint    `gorm:"index;not null" json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client,omitempty"`

	Brand       string `gorm:"size:50;not null" json:"brand"`
	Model       string `gorm:"size:50;not null" json:"model"`
	Color       string `gorm:"size:30;not null" json:"color"`
	PlateNumber string `gorm:"size:20" json:"plate_number"`
	Notes       string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
