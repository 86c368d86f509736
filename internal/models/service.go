package models

import (
	"time"

	"gorm.io/gorm"
)

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string   `gorm:"size:100;not null" json:"name"`
	Description string   `gorm:"type:text" json:"description"`
	Duration    int      `gorm:"not null" json:"duration"`
	Price       *float64 `json:"price"`
	Category    string   `gorm:"size:50" json:"category"`
	IsActive    bool     `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
