package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autogleam/detailing-api/internal/audit"
	"github.com/autogleam/detailing-api/internal/httperr"
	"github.com/autogleam/detailing-api/internal/httpresp"
	"github.com/autogleam/detailing-api/internal/middleware"
	"github.com/autogleam/detailing-api/internal/models"
)

type CarHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCarHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *CarHandler {
	return &CarHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type CreateCarRequest struct {
	ClientID    uint   `json:"client_id" binding:"required"`
	Brand       string `json:"brand" binding:"required"`
	Model       string `json:"model" binding:"required"`
	Color       string `json:"color" binding:"required"`
	PlateNumber string `json:"plate_number"`
	Notes       string `json:"notes"`
}

type UpdateCarRequest struct {
	Brand       *string `json:"brand"`
	Model       *string `json:"model"`
	Color       *string `json:"color"`
	PlateNumber *string `json:"plate_number"`
	Notes       *string `json:"notes"`
}

// --------- Handlers ---------

func (h *CarHandler) List(c *gin.Context) {
	q := h.db.Preload("Client")

	if raw := c.Query("client_id"); raw != "" {
		clientID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_client_id", "client_id must be a positive integer.")
			return
		}
		q = q.Where("client_id = ?", uint(clientID))
	}

	var cars []models.Car
	if err := q.Order("created_at DESC").Find(&cars).Error; err != nil {
		httperr.Internal(c, "failed_to_list_cars", err)
		return
	}

	httpresp.OK(c, cars)
}

func (h *CarHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var car models.Car
	if err := h.db.Preload("Client").First(&car, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "car_not_found", "Car not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_car", err)
		return
	}

	httpresp.OK(c, car)
}

func (h *CarHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Missing required fields: client_id, brand, model, color.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, req.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "client_not_found", "Client not found.")
			return
		}
		httperr.Internal(c, "failed_to_create_car", err)
		return
	}

	car := models.Car{
		ClientID:    req.ClientID,
		Brand:       req.Brand,
		Model:       req.Model,
		Color:       req.Color,
		PlateNumber: req.PlateNumber,
		Notes:       req.Notes,
	}
	if err := h.db.Create(&car).Error; err != nil {
		httperr.Internal(c, "failed_to_create_car", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		EmployeeID: &actorID,
		Action:     "car_created",
		Entity:     "car",
		EntityID:   &car.ID,
	})

	httpresp.Created(c, "Car created.", car)
}

func (h *CarHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var car models.Car
	if err := h.db.First(&car, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "car_not_found", "Car not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_car", err)
		return
	}

	var req UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	updates := map[string]any{}
	if req.Brand != nil {
		updates["brand"] = *req.Brand
	}
	if req.Model != nil {
		updates["model"] = *req.Model
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.PlateNumber != nil {
		updates["plate_number"] = *req.PlateNumber
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) == 0 {
		httperr.BadRequest(c, "no_fields_to_update", "No fields to update.")
		return
	}

	if err := h.db.Model(&car).Updates(updates).Error; err != nil {
		httperr.Internal(c, "failed_to_update_car", err)
		return
	}

	var updated models.Car
	if err := h.db.Preload("Client").First(&updated, id).Error; err != nil {
		httperr.Internal(c, "failed_to_update_car", err)
		return
	}

	httpresp.OKMessage(c, "Car updated.", updated)
}

func (h *CarHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var car models.Car
	if err := h.db.First(&car, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "car_not_found", "Car not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_car", err)
		return
	}

	if err := h.db.Delete(&car).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_car", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		EmployeeID: &actorID,
		Action:     "car_deleted",
		Entity:     "car",
		EntityID:   &car.ID,
	})

	httpresp.Message(c, "Car deleted.")
}
