package appointment

import (
	"context"
	"time"

	"github.com/autogleam/detailing-api/internal/audit"
	domain "github.com/autogleam/detailing-api/internal/domain/appointment"
	"github.com/autogleam/detailing-api/internal/dto"
	"github.com/autogleam/detailing-api/internal/httperr"
)

type UpdateInput struct {
	ClientID   *uint
	CarID      *uint
	EmployeeID *uint

	Date      *string
	StartTime *string
	Status    *string
	Notes     *string

	Price     *float64
	ExtraCost *float64

	// HasServiceIDs distinguishes "service set untouched" from an empty
	// normalization result, which is a validation error before any write.
	ServiceIDs    []uint
	HasServiceIDs bool
}

type Update struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdate(repo domain.Repository, audit *audit.Dispatcher) *Update {
	return &Update{repo: repo, audit: audit}
}

func (uc *Update) Execute(
	ctx context.Context,
	actorID uint,
	id uint,
	in UpdateInput,
) (*dto.AppointmentRow, error) {

	if _, err := uc.repo.Get(ctx, id); err != nil {
		return nil, err
	}

	if in.HasServiceIDs && len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness("missing_service_ids")
	}

	updates := map[string]any{}

	if in.ClientID != nil {
		updates["client_id"] = *in.ClientID
	}
	if in.CarID != nil {
		updates["car_id"] = *in.CarID
	}
	if in.EmployeeID != nil {
		updates["employee_id"] = *in.EmployeeID
	}
	if in.Date != nil {
		date, err := time.Parse("2006-01-02", *in.Date)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		updates["date"] = date
	}
	if in.StartTime != nil {
		if _, err := time.Parse("15:04", *in.StartTime); err != nil {
			return nil, httperr.ErrBusiness("invalid_start_time")
		}
		updates["start_time"] = *in.StartTime
	}
	if in.Status != nil {
		if !domain.IsValidStatus(*in.Status) {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		updates["status"] = *in.Status
	}
	if in.Notes != nil {
		updates["notes"] = *in.Notes
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if in.ExtraCost != nil {
		updates["extra_cost"] = *in.ExtraCost
	}

	if len(updates) == 0 && !in.HasServiceIDs {
		return nil, httperr.ErrBusiness("no_fields_to_update")
	}

	var serviceIDs []uint
	if in.HasServiceIDs {
		serviceIDs = in.ServiceIDs
	}

	if err := uc.repo.UpdateWithServices(ctx, id, updates, serviceIDs); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		EmployeeID: &actorID,
		Action:     "appointment_updated",
		Entity:     "appointment",
		EntityID:   &id,
	})

	row, err := uc.repo.GetRow(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.Finalize(row), nil
}
