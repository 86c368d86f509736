package appointment

import (
	"context"

	"github.com/autogleam/detailing-api/internal/dto"
	"github.com/autogleam/detailing-api/internal/models"
)

// ListFilter narrows the aggregated appointment listing. Date strings use
// the 2006-01-02 layout and are validated before they reach the repository.
type ListFilter struct {
	Status     string
	ClientID   *uint
	EmployeeID *uint
	Date       string
	StartDate  string
	EndDate    string
	// Upcoming keeps date >= today with status scheduled or in-progress.
	Upcoming bool
}

type Repository interface {
	// -------- Aggregated reads --------
	ListRows(ctx context.Context, f ListFilter) ([]dto.AppointmentRow, error)
	GetRow(ctx context.Context, id uint) (*dto.AppointmentRow, error)

	// -------- Existence / load --------
	Exists(ctx context.Context, id uint) (bool, error)
	Get(ctx context.Context, id uint) (*models.Appointment, error)

	// -------- Writes --------
	CreateWithServices(ctx context.Context, ap *models.Appointment, serviceIDs []uint) error
	UpdateWithServices(ctx context.Context, id uint, updates map[string]any, serviceIDs []uint) error
	ChangeStatus(ctx context.Context, ap *models.Appointment, next Status) error
	UpdatePaidAmount(ctx context.Context, id uint, paid float64) error
	SoftDelete(ctx context.Context, id uint) error

	// -------- Protocol --------
	GetProtocol(ctx context.Context, appointmentID uint) (*models.AppointmentProtocol, error)
	SaveProtocol(ctx context.Context, p *models.AppointmentProtocol) error
}
