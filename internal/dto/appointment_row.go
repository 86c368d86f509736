package dto

import "time"

// ServiceSeparator joins the aggregated per-service columns. It must never
// appear inside a service name or category; no escaping is performed.
const ServiceSeparator = "||"

// AppointmentRow is the flat shape produced by the aggregated list/get
// queries: one appointment plus joined client/car/employee display columns
// and the parallel separator-joined multi-service columns.
type AppointmentRow struct {
	ID         uint   `json:"id"`
	ClientID   uint   `json:"client_id"`
	CarID      uint   `json:"car_id"`
	ServiceID  *uint  `json:"service_id"`
	EmployeeID *uint  `json:"employee_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`

	Price      *float64 `json:"price"`
	ExtraCost  *float64 `json:"extra_cost"`
	PaidAmount *float64 `json:"paid_amount"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`

	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Color       string `json:"color"`
	PlateNumber string `json:"plate_number"`

	EmployeeName string `json:"employee_name"`
	EmployeeRole string `json:"employee_role"`

	// Legacy single-service columns, used when no join rows exist.
	PrimaryServiceID       *uint   `json:"-"`
	PrimaryServiceName     string  `json:"-"`
	PrimaryServiceDuration *int    `json:"-"`
	PrimaryServiceCategory string  `json:"-"`
	PrimaryServicePrice    *string `json:"-"`

	// Separator-joined parallel columns, aligned by position.
	ServiceIDsRaw        string `gorm:"column:service_ids" json:"-"`
	ServiceNamesRaw      string `gorm:"column:service_names" json:"-"`
	ServiceDurationsRaw  string `gorm:"column:service_durations" json:"-"`
	ServiceCategoriesRaw string `gorm:"column:service_categories" json:"-"`
	ServicePricesRaw     string `gorm:"column:service_prices" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Services   []ServiceDTO `gorm:"-" json:"services"`
	ServiceIDs []uint       `gorm:"-" json:"service_ids"`
}

type ServiceDTO struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name"`
	Duration *int     `json:"duration"`
	Category string   `json:"category"`
	Price    *float64 `json:"price"`
}
