package appointment

import (
	"context"
	"time"

	"github.com/autogleam/detailing-api/internal/audit"
	domain "github.com/autogleam/detailing-api/internal/domain/appointment"
	"github.com/autogleam/detailing-api/internal/dto"
	"github.com/autogleam/detailing-api/internal/httperr"
	"github.com/autogleam/detailing-api/internal/models"
)

type CreateInput struct {
	ClientID   uint
	CarID      uint
	EmployeeID *uint

	Date      string
	StartTime string
	Status    string
	Notes     string

	Price     *float64
	ExtraCost *float64

	ServiceIDs []uint
}

type Create struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreate(repo domain.Repository, audit *audit.Dispatcher) *Create {
	return &Create{repo: repo, audit: audit}
}

func (uc *Create) Execute(
	ctx context.Context,
	actorID uint,
	in CreateInput,
) (*dto.AppointmentRow, error) {

	// all validation happens before any write
	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness("missing_service_ids")
	}

	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if _, err := time.Parse("15:04", in.StartTime); err != nil {
		return nil, httperr.ErrBusiness("invalid_start_time")
	}

	status := in.Status
	if status == "" {
		status = string(domain.StatusScheduled)
	}
	if !domain.IsValidStatus(status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap := &models.Appointment{
		ClientID:   in.ClientID,
		CarID:      in.CarID,
		ServiceID:  in.ServiceIDs[0],
		EmployeeID: in.EmployeeID,
		Date:       date,
		StartTime:  in.StartTime,
		Status:     status,
		Notes:      in.Notes,
		Price:      in.Price,
		ExtraCost:  in.ExtraCost,
	}

	if err := uc.repo.CreateWithServices(ctx, ap, in.ServiceIDs); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		EmployeeID: &actorID,
		Action:     "appointment_created",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	row, err := uc.repo.GetRow(ctx, ap.ID)
	if err != nil {
		return nil, err
	}
	return dto.Finalize(row), nil
}
