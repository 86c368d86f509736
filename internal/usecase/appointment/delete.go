package appointment

import (
	"context"

	"github.com/autogleam/detailing-api/internal/audit"
	domain "github.com/autogleam/detailing-api/internal/domain/appointment"
)

type Delete struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDelete(repo domain.Repository, audit *audit.Dispatcher) *Delete {
	return &Delete{repo: repo, audit: audit}
}

func (uc *Delete) Execute(ctx context.Context, actorID uint, id uint) error {
	if _, err := uc.repo.Get(ctx, id); err != nil {
		return err
	}

	if err := uc.repo.SoftDelete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		EmployeeID: &actorID,
		Action:     "appointment_deleted",
		Entity:     "appointment",
		EntityID:   &id,
	})

	return nil
}
