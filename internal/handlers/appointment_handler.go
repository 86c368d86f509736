package handlers

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/autogleam/detailing-api/internal/domain/appointment"
	"github.com/autogleam/detailing-api/internal/dto"
	"github.com/autogleam/detailing-api/internal/httperr"
	"github.com/autogleam/detailing-api/internal/httpresp"
	"github.com/autogleam/detailing-api/internal/middleware"
	"github.com/autogleam/detailing-api/internal/models"
	ucAppointment "github.com/autogleam/detailing-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db       *gorm.DB
	repo     domain.Repository
	createUC *ucAppointment.Create
	updateUC *ucAppointment.Update
	statusUC *ucAppointment.ChangeStatus
	listUC   *ucAppointment.List
	getUC    *ucAppointment.Get
	deleteUC *ucAppointment.Delete
}

func NewAppointmentHandler(
	db *gorm.DB,
	repo domain.Repository,
	createUC *ucAppointment.Create,
	updateUC *ucAppointment.Update,
	statusUC *ucAppointment.ChangeStatus,
	listUC *ucAppointment.List,
	getUC *ucAppointment.Get,
	deleteUC *ucAppointment.Delete,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:       db,
		repo:     repo,
		createUC: createUC,
		updateUC: updateUC,
		statusUC: statusUC,
		listUC:   listUC,
		getUC:    getUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID   uint  `json:"client_id" binding:"required"`
	CarID      uint  `json:"car_id" binding:"required"`
	EmployeeID *uint `json:"employee_id"`

	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`

	Price     *float64 `json:"price"`
	ExtraCost *float64 `json:"extra_cost"`

	ServiceIDs json.RawMessage `json:"service_ids"`
	ServiceID  *uint           `json:"service_id"`
}

type UpdateAppointmentRequest struct {
	ClientID   *uint `json:"client_id"`
	CarID      *uint `json:"car_id"`
	EmployeeID *uint `json:"employee_id"`

	Date      *string `json:"date"`
	StartTime *string `json:"start_time"`
	Status    *string `json:"status"`
	Notes     *string `json:"notes"`

	Price     *float64 `json:"price"`
	ExtraCost *float64 `json:"extra_cost"`

	ServiceIDs json.RawMessage `json:"service_ids"`
	ServiceID  *uint           `json:"service_id"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentRequest struct {
	PaidAmount *float64 `json:"paid_amount" binding:"required"`
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeAppointmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, httperr.ErrNotFound):
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
	case httperr.IsBusiness(err, "missing_service_ids"):
		httperr.Unprocessable(c, "missing_service_ids", "Missing required fields: service_ids.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
	case httperr.IsBusiness(err, "invalid_start_time"):
		httperr.BadRequest(c, "invalid_start_time", "Invalid start time.")
	case httperr.IsBusiness(err, "invalid_status"):
		httperr.BadRequest(c, "invalid_status", "Invalid status.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "Status transition not allowed.")
	case httperr.IsBusiness(err, "no_fields_to_update"):
		httperr.BadRequest(c, "no_fields_to_update", "No fields to update.")
	default:
		httperr.Internal(c, "appointment_error", err)
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	role := middleware.RoleFromContext(c)

	var f domain.ListFilter

	f.Status = c.Query("status")
	if f.Status != "" && !domain.IsValidStatus(f.Status) {
		httperr.BadRequest(c, "invalid_status", "Invalid status.")
		return
	}

	if v := c.Query("client_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_client_id", "Invalid client id.")
			return
		}
		cid := uint(id)
		f.ClientID = &cid
	}

	if v := c.Query("employee_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_employee_id", "Invalid employee id.")
			return
		}
		eid := uint(id)
		f.EmployeeID = &eid
	}

	if v := c.Query("date"); v != "" {
		if !isValidDate(v) {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
		f.Date = v
	}

	start, end := c.Query("start_date"), c.Query("end_date")
	if start != "" && end != "" {
		if !isValidDate(start) || !isValidDate(end) {
			httperr.BadRequest(c, "invalid_date_range", "Invalid date range.")
			return
		}
		f.StartDate, f.EndDate = start, end
	}

	if filter := c.Query("filter"); filter != "" {
		date, upcoming, ok := shorthandRange(filter, time.Now())
		if !ok {
			httperr.BadRequest(c, "invalid_filter", "Invalid filter.")
			return
		}
		if date != "" {
			f.Date = date
		}
		f.Upcoming = upcoming
	}

	rows, err := h.listUC.Execute(c.Request.Context(), f)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", err)
		return
	}

	for i := range rows {
		dto.RedactAppointments(role, &rows[i])
	}

	httpresp.OK(c, rows)
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	role := middleware.RoleFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	row, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	dto.RedactAppointments(role, row)
	httpresp.OK(c, row)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	role := middleware.RoleFromContext(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	serviceIDs := dto.NormalizeServiceIDs(req.ServiceIDs, req.ServiceID)

	row, err := h.createUC.Execute(c.Request.Context(), actorID, ucAppointment.CreateInput{
		ClientID:   req.ClientID,
		CarID:      req.CarID,
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		Status:     req.Status,
		Notes:      req.Notes,
		Price:      req.Price,
		ExtraCost:  req.ExtraCost,
		ServiceIDs: serviceIDs,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	dto.RedactAppointments(role, row)
	httpresp.Created(c, "Appointment scheduled.", row)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	role := middleware.RoleFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	in := ucAppointment.UpdateInput{
		ClientID:   req.ClientID,
		CarID:      req.CarID,
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		Status:     req.Status,
		Notes:      req.Notes,
		Price:      req.Price,
		ExtraCost:  req.ExtraCost,
	}

	if len(req.ServiceIDs) > 0 || req.ServiceID != nil {
		in.HasServiceIDs = true
		in.ServiceIDs = dto.NormalizeServiceIDs(req.ServiceIDs, req.ServiceID)
	}

	row, err := h.updateUC.Execute(c.Request.Context(), actorID, id, in)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	dto.RedactAppointments(role, row)
	httpresp.OKMessage(c, "Appointment updated.", row)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	role := middleware.RoleFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing required field: status.")
		return
	}

	row, err := h.statusUC.Execute(c.Request.Context(), actorID, id, req.Status)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	dto.RedactAppointments(role, row)
	httpresp.OKMessage(c, "Appointment status changed.", row)
}

// ======================================================
// PAYMENT (admin only)
// ======================================================

func (h *AppointmentHandler) UpdatePayment(c *gin.Context) {
	role := middleware.RoleFromContext(c)
	if role != models.RoleAdmin {
		httperr.Forbidden(c, "forbidden", "Insufficient permissions.")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PaidAmount == nil {
		httperr.BadRequest(c, "invalid_request", "Missing required field: paid_amount.")
		return
	}

	if *req.PaidAmount < 0 {
		httperr.BadRequest(c, "invalid_paid_amount", "Invalid paid amount.")
		return
	}

	if _, err := h.repo.Get(c.Request.Context(), id); err != nil {
		writeAppointmentError(c, err)
		return
	}

	if err := h.repo.UpdatePaidAmount(c.Request.Context(), id, *req.PaidAmount); err != nil {
		httperr.Internal(c, "failed_to_update_payment", err)
		return
	}

	row, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OKMessage(c, "Payment updated.", row)
}

// ======================================================
// DELETE (soft)
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), actorID, id); err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.Message(c, "Appointment deleted.")
}

// ======================================================
// STATS
// ======================================================

type appointmentStats struct {
	TodayCount      int64 `json:"today_count"`
	TodayCompleted  int64 `json:"today_completed"`
	TodayInProgress int64 `json:"today_in_progress"`
	TodayScheduled  int64 `json:"today_scheduled"`
	TomorrowCount   int64 `json:"tomorrow_count"`
	UpcomingCount   int64 `json:"upcoming_count"`
}

func (h *AppointmentHandler) Stats(c *gin.Context) {
	now := time.Now()
	today := dateString(now)
	tomorrow := dateString(now.AddDate(0, 0, 1))

	var stats appointmentStats

	base := func() *gorm.DB {
		return h.db.Model(&models.Appointment{})
	}

	if err := base().Where("date = ?", today).Count(&stats.TodayCount).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", err)
		return
	}
	base().Where("date = ? AND status = ?", today, string(domain.StatusCompleted)).Count(&stats.TodayCompleted)
	base().Where("date = ? AND status = ?", today, string(domain.StatusInProgress)).Count(&stats.TodayInProgress)
	base().Where("date = ? AND status = ?", today, string(domain.StatusScheduled)).Count(&stats.TodayScheduled)
	base().Where("date = ?", tomorrow).Count(&stats.TomorrowCount)
	base().Where("date >= ? AND status IN ?", today, []string{
		string(domain.StatusScheduled),
		string(domain.StatusInProgress),
	}).Count(&stats.UpcomingCount)

	httpresp.OK(c, stats)
}

// ======================================================
// HELPERS
// ======================================================

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(id), true
}
