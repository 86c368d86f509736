package protocol

import (
	"context"

	"github.com/autogleam/detailing-api/internal/audit"
	domainap "github.com/autogleam/detailing-api/internal/domain/appointment"
	domain "github.com/autogleam/detailing-api/internal/domain/protocol"
	"github.com/autogleam/detailing-api/internal/httperr"
	"github.com/autogleam/detailing-api/internal/models"
)

type SaveInput struct {
	Mileage     string
	FuelLevel   string
	Accessories string
	Notes       string

	Damages []domain.Damage

	ClientSignature   string
	EmployeeSignature string
}

type Save struct {
	repo  domainap.Repository
	audit *audit.Dispatcher
}

func NewSave(repo domainap.Repository, audit *audit.Dispatcher) *Save {
	return &Save{repo: repo, audit: audit}
}

// Execute upserts the appointment's single protocol row: the first save
// stamps created_by and updated_by, later saves rewrite the mutable fields
// and restamp updated_by only.
func (uc *Save) Execute(
	ctx context.Context,
	appointmentID uint,
	actorID uint,
	in SaveInput,
) (*ProtocolDTO, error) {

	ok, err := uc.repo.Exists(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrNotFound
	}

	damagesJSON, err := domain.EncodeDamages(in.Damages)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_damages")
	}

	p, err := uc.repo.GetProtocol(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if p == nil {
		p = &models.AppointmentProtocol{
			AppointmentID: appointmentID,
			CreatedBy:     &actorID,
		}
	}

	p.Mileage = in.Mileage
	p.FuelLevel = in.FuelLevel
	p.Accessories = in.Accessories
	p.Notes = in.Notes
	p.DamagesJSON = damagesJSON
	p.ClientSignature = in.ClientSignature
	p.EmployeeSignature = in.EmployeeSignature
	p.UpdatedBy = &actorID

	if err := uc.repo.SaveProtocol(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		EmployeeID: &actorID,
		Action:     "protocol_saved",
		Entity:     "appointment_protocol",
		EntityID:   &p.ID,
		Metadata:   map[string]any{"appointment_id": appointmentID},
	})

	// reload so defaults and timestamps reflect the stored row
	stored, err := uc.repo.GetProtocol(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	return toDTO(stored), nil
}
