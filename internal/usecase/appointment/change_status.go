package appointment

import (
	"context"

	"github.com/autogleam/detailing-api/internal/audit"
	domain "github.com/autogleam/detailing-api/internal/domain/appointment"
	"github.com/autogleam/detailing-api/internal/dto"
	"github.com/autogleam/detailing-api/internal/httperr"
)

type ChangeStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewChangeStatus(repo domain.Repository, audit *audit.Dispatcher) *ChangeStatus {
	return &ChangeStatus{repo: repo, audit: audit}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	actorID uint,
	id uint,
	next string,
) (*dto.AppointmentRow, error) {

	if !domain.IsValidStatus(next) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.CanTransition(domain.Status(ap.Status), domain.Status(next)); err != nil {
		return nil, err
	}

	if err := uc.repo.ChangeStatus(ctx, ap, domain.Status(next)); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		EmployeeID: &actorID,
		Action:     "appointment_status_changed",
		Entity:     "appointment",
		EntityID:   &id,
		Metadata:   map[string]string{"from": ap.Status, "to": next},
	})

	row, err := uc.repo.GetRow(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.Finalize(row), nil
}
