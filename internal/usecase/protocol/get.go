package protocol

import (
	"context"

	"go.uber.org/zap"

	domainap "github.com/autogleam/detailing-api/internal/domain/appointment"
	domain "github.com/autogleam/detailing-api/internal/domain/protocol"
	"github.com/autogleam/detailing-api/internal/httperr"
	"github.com/autogleam/detailing-api/internal/logging"
	"github.com/autogleam/detailing-api/internal/models"
)

// ProtocolDTO is the wire shape of a protocol: stored damages text decoded
// back into a list.
type ProtocolDTO struct {
	ID            uint `json:"id"`
	AppointmentID uint `json:"appointment_id"`

	Mileage     string `json:"mileage"`
	FuelLevel   string `json:"fuel_level"`
	Accessories string `json:"accessories"`
	Notes       string `json:"notes"`

	Damages []domain.Damage `json:"damages"`

	ClientSignature   string `json:"client_signature"`
	EmployeeSignature string `json:"employee_signature"`

	CreatedBy *uint  `json:"created_by"`
	UpdatedBy *uint  `json:"updated_by"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toDTO(p *models.AppointmentProtocol) *ProtocolDTO {
	damages, err := domain.DecodeDamages(p.DamagesJSON)
	if err != nil {
		// legacy rows with broken JSON degrade to an empty list, but the
		// integrity problem is surfaced in the logs
		logging.Log.Warn("malformed damages json, defaulting to empty list",
			zap.Uint("appointment_id", p.AppointmentID),
			zap.Error(err),
		)
	}

	return &ProtocolDTO{
		ID:                p.ID,
		AppointmentID:     p.AppointmentID,
		Mileage:           p.Mileage,
		FuelLevel:         p.FuelLevel,
		Accessories:       p.Accessories,
		Notes:             p.Notes,
		Damages:           damages,
		ClientSignature:   p.ClientSignature,
		EmployeeSignature: p.EmployeeSignature,
		CreatedBy:         p.CreatedBy,
		UpdatedBy:         p.UpdatedBy,
		CreatedAt:         p.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:         p.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

type Get struct {
	repo domainap.Repository
}

func NewGet(repo domainap.Repository) *Get {
	return &Get{repo: repo}
}

// Execute returns the appointment's protocol, or nil when none was saved
// yet. A missing or soft-deleted appointment is a NotFound.
func (uc *Get) Execute(ctx context.Context, appointmentID uint) (*ProtocolDTO, error) {
	ok, err := uc.repo.Exists(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrNotFound
	}

	p, err := uc.repo.GetProtocol(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	return toDTO(p), nil
}
