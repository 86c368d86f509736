package appointment

import (
	"context"

	domain "github.com/autogleam/detailing-api/internal/domain/appointment"
	"github.com/autogleam/detailing-api/internal/dto"
)

type Get struct {
	repo domain.Repository
}

func NewGet(repo domain.Repository) *Get {
	return &Get{repo: repo}
}

func (uc *Get) Execute(ctx context.Context, id uint) (*dto.AppointmentRow, error) {
	row, err := uc.repo.GetRow(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.Finalize(row), nil
}
