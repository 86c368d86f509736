package models

import (
	"time"

	"gorm.io/gorm"
)

type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Phone     string `gorm:"size:30;not null" json:"phone"`
	Email     string `gorm:"size:100" json:"email"`
	Notes     string `gorm:"type:text" json:"notes"`

	TotalVisits int `gorm:"default:0" json:"total_visits"`

	Cars []Car `gorm:"foreignKey:ClientID" json:"cars,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
