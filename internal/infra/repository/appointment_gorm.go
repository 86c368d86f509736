package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/autogleam/detailing-api/internal/domain/appointment"
	"github.com/autogleam/detailing-api/internal/dto"
	"github.com/autogleam/detailing-api/internal/httperr"
	"github.com/autogleam/detailing-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// appointmentSelect is the aggregated read: one row per appointment with
// joined display columns and the '||'-joined parallel service columns
// (ordered by service id so positions stay aligned). This is the only raw
// SQL in the repo, so the deleted_at filters here are written by hand.
const appointmentSelect = `
SELECT
    a.id, a.client_id, a.car_id, a.service_id, a.employee_id,
    to_char(a.date, 'YYYY-MM-DD') AS date,
    a.start_time, a.status, a.notes,
    a.price, a.extra_cost, a.paid_amount,
    a.created_at, a.updated_at,
    c.first_name, c.last_name, c.phone, c.email,
    car.brand, car.model, car.color, car.plate_number,
    e.name AS employee_name, e.role AS employee_role,
    ps.id AS primary_service_id,
    ps.name AS primary_service_name,
    ps.duration AS primary_service_duration,
    ps.category AS primary_service_category,
    ps.price::text AS primary_service_price,
    COALESCE(svc.service_ids, '') AS service_ids,
    COALESCE(svc.service_names, '') AS service_names,
    COALESCE(svc.service_durations, '') AS service_durations,
    COALESCE(svc.service_categories, '') AS service_categories,
    COALESCE(svc.service_prices, '') AS service_prices
FROM appointments a
LEFT JOIN clients c ON c.id = a.client_id
LEFT JOIN cars car ON car.id = a.car_id
LEFT JOIN employees e ON e.id = a.employee_id
LEFT JOIN services ps ON ps.id = a.service_id
LEFT JOIN (
    SELECT
        aps.appointment_id,
        string_agg(s.id::text, '||' ORDER BY s.id) AS service_ids,
        string_agg(s.name, '||' ORDER BY s.id) AS service_names,
        string_agg(s.duration::text, '||' ORDER BY s.id) AS service_durations,
        string_agg(COALESCE(s.category, ''), '||' ORDER BY s.id) AS service_categories,
        string_agg(COALESCE(s.price::text, ''), '||' ORDER BY s.id) AS service_prices
    FROM appointment_services aps
    INNER JOIN services s ON s.id = aps.service_id
    GROUP BY aps.appointment_id
) svc ON svc.appointment_id = a.id
`

func (r *AppointmentGormRepository) ListRows(
	ctx context.Context,
	f domain.ListFilter,
) ([]dto.AppointmentRow, error) {

	where := "WHERE a.deleted_at IS NULL"
	args := []any{}

	if f.Status != "" {
		where += " AND a.status = ?"
		args = append(args, f.Status)
	}
	if f.ClientID != nil {
		where += " AND a.client_id = ?"
		args = append(args, *f.ClientID)
	}
	if f.EmployeeID != nil {
		where += " AND a.employee_id = ?"
		args = append(args, *f.EmployeeID)
	}
	if f.Date != "" {
		where += " AND a.date = ?::date"
		args = append(args, f.Date)
	}
	if f.StartDate != "" && f.EndDate != "" {
		where += " AND a.date BETWEEN ?::date AND ?::date"
		args = append(args, f.StartDate, f.EndDate)
	}
	if f.Upcoming {
		where += " AND a.status IN ('scheduled', 'in-progress')"
		if f.Date == "" && f.StartDate == "" {
			where += " AND a.date >= CURRENT_DATE"
		}
	}

	order := " ORDER BY a.date DESC, a.start_time ASC"

	var rows []dto.AppointmentRow
	if err := r.db.WithContext(ctx).
		Raw(appointmentSelect+where+order, args...).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *AppointmentGormRepository) GetRow(
	ctx context.Context,
	id uint,
) (*dto.AppointmentRow, error) {

	var rows []dto.AppointmentRow
	if err := r.db.WithContext(ctx).
		Raw(appointmentSelect+"WHERE a.id = ? AND a.deleted_at IS NULL", id).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, httperr.ErrNotFound
	}
	return &rows[0], nil
}

func (r *AppointmentGormRepository) Exists(
	ctx context.Context,
	id uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AppointmentGormRepository) Get(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound
		}
		return nil, err
	}
	return &ap, nil
}

// CreateWithServices writes the appointment and its service associations as
// one unit; a failure on any association row rolls back the appointment.
func (r *AppointmentGormRepository) CreateWithServices(
	ctx context.Context,
	ap *models.Appointment,
	serviceIDs []uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ap).Error; err != nil {
			return err
		}

		for _, sid := range serviceIDs {
			link := models.AppointmentService{
				AppointmentID: ap.ID,
				ServiceID:     sid,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *AppointmentGormRepository) UpdateWithServices(
	ctx context.Context,
	id uint,
	updates map[string]any,
	serviceIDs []uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&models.Appointment{}).
				Where("id = ?", id).
				Updates(updates).Error; err != nil {
				return err
			}
		}

		if serviceIDs == nil {
			return nil
		}

		// rewrite the whole association set, primary id first
		if err := tx.Model(&models.Appointment{}).
			Where("id = ?", id).
			Update("service_id", serviceIDs[0]).Error; err != nil {
			return err
		}

		if err := tx.
			Where("appointment_id = ?", id).
			Delete(&models.AppointmentService{}).Error; err != nil {
			return err
		}

		for _, sid := range serviceIDs {
			link := models.AppointmentService{
				AppointmentID: id,
				ServiceID:     sid,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// ChangeStatus writes the status and, when the transition enters completed,
// bumps the client's visit counter in the same transaction.
func (r *AppointmentGormRepository) ChangeStatus(
	ctx context.Context,
	ap *models.Appointment,
	next domain.Status,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if domain.IncrementsVisits(domain.Status(ap.Status), next) {
			if err := tx.Model(&models.Client{}).
				Where("id = ?", ap.ClientID).
				UpdateColumn("total_visits", gorm.Expr("total_visits + 1")).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.Appointment{}).
			Where("id = ?", ap.ID).
			Update("status", string(next)).Error
	})
}

func (r *AppointmentGormRepository) UpdatePaidAmount(
	ctx context.Context,
	id uint,
	paid float64,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("paid_amount", paid).Error
}

func (r *AppointmentGormRepository) SoftDelete(
	ctx context.Context,
	id uint,
) error {

	return r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error
}

// --------------------------------------------------
// Protocol
// --------------------------------------------------

func (r *AppointmentGormRepository) GetProtocol(
	ctx context.Context,
	appointmentID uint,
) (*models.AppointmentProtocol, error) {

	var p models.AppointmentProtocol
	err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *AppointmentGormRepository) SaveProtocol(
	ctx context.Context,
	p *models.AppointmentProtocol,
) error {

	if p.ID == 0 {
		return r.db.WithContext(ctx).Create(p).Error
	}
	return r.db.WithContext(ctx).Save(p).Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
