package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autogleam/detailing-api/internal/audit"
	"github.com/autogleam/detailing-api/internal/dto"
	"github.com/autogleam/detailing-api/internal/httperr"
	"github.com/autogleam/detailing-api/internal/httpresp"
	"github.com/autogleam/detailing-api/internal/middleware"
	"github.com/autogleam/detailing-api/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Duration    *int     `json:"duration" binding:"required"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category" binding:"required"`
	IsActive    *bool    `json:"is_active"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Duration    *int     `json:"duration"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	IsActive    *bool    `json:"is_active"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	role := middleware.RoleFromContext(c)

	q := h.db.Session(&gorm.Session{})

	if c.Query("active_only") == "true" {
		q = q.Where("is_active = ?", true)
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("category = ?", category)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("category ASC, name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", err)
		return
	}

	dto.RedactServices(role, services)

	httpresp.OK(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	role := middleware.RoleFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", err)
		return
	}

	out := []models.Service{service}
	dto.RedactServices(role, out)

	httpresp.OK(c, out[0])
}

func (h *ServiceHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Missing required fields: name, duration, category.")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Duration:    *req.Duration,
		Price:       req.Price,
		Category:    req.Category,
		IsActive:    isActive,
	}
	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		EmployeeID: &actorID,
		Action:     "service_created",
		Entity:     "service",
		EntityID:   &service.ID,
	})

	httpresp.Created(c, "Service created.", service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", err)
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		httperr.BadRequest(c, "no_fields_to_update", "No fields to update.")
		return
	}

	if err := h.db.Model(&service).Updates(updates).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", err)
		return
	}

	var updated models.Service
	if err := h.db.First(&updated, id).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", err)
		return
	}

	httpresp.OKMessage(c, "Service updated.", updated)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", err)
		return
	}

	if err := h.db.Delete(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		EmployeeID: &actorID,
		Action:     "service_deleted",
		Entity:     "service",
		EntityID:   &service.ID,
	})

	httpresp.Message(c, "Service deleted.")
}
