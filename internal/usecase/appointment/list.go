package appointment

import (
	"context"

	domain "github.com/autogleam/detailing-api/internal/domain/appointment"
	"github.com/autogleam/detailing-api/internal/dto"
)

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

func (uc *List) Execute(
	ctx context.Context,
	f domain.ListFilter,
) ([]dto.AppointmentRow, error) {

	rows, err := uc.repo.ListRows(ctx, f)
	if err != nil {
		return nil, err
	}
	return dto.FinalizeAll(rows), nil
}
