package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autogleam/detailing-api/internal/audit"
	domain "github.com/autogleam/detailing-api/internal/domain/appointment"
	"github.com/autogleam/detailing-api/internal/dto"
	"github.com/autogleam/detailing-api/internal/httperr"
	"github.com/autogleam/detailing-api/internal/httpresp"
	"github.com/autogleam/detailing-api/internal/middleware"
	"github.com/autogleam/detailing-api/internal/models"
	ucAppointment "github.com/autogleam/detailing-api/internal/usecase/appointment"
)

type ClientHandler struct {
	db     *gorm.DB
	audit  *audit.Dispatcher
	listUC *ucAppointment.List
}

func NewClientHandler(db *gorm.DB, dispatcher *audit.Dispatcher, listUC *ucAppointment.List) *ClientHandler {
	return &ClientHandler{db: db, audit: dispatcher, listUC: listUC}
}

// --------- Requests ---------

type CreateClientCar struct {
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Color       string `json:"color"`
	PlateNumber string `json:"plate_number"`
	Notes       string `json:"notes"`
}

type CreateClientRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email"`
	Notes     string `json:"notes"`

	Car *CreateClientCar `json:"car"`
}

type UpdateClientRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Notes     *string `json:"notes"`
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))

	q := h.db.Preload("Cars")

	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, "%"+search+"%", like,
		)
	}

	var clients []models.Client
	if err := q.Order("created_at DESC").Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", err)
		return
	}

	httpresp.OK(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	role := middleware.RoleFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.Preload("Cars").First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "client_not_found", "Client not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_client", err)
		return
	}

	appointments, err := h.listUC.Execute(c.Request.Context(), domain.ListFilter{
		ClientID: &client.ID,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_get_client", err)
		return
	}
	for i := range appointments {
		dto.RedactAppointments(role, &appointments[i])
	}

	httpresp.OK(c, gin.H{
		"client":       client,
		"appointments": appointments,
	})
}

func (h *ClientHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Missing required fields: first_name, last_name, phone.")
		return
	}

	client := models.Client{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Notes:     req.Notes,
	}

	// client + optional first car are one unit
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&client).Error; err != nil {
			return err
		}

		if req.Car != nil && req.Car.Brand != "" {
			car := models.Car{
				ClientID:    client.ID,
				Brand:       req.Car.Brand,
				Model:       req.Car.Model,
				Color:       req.Car.Color,
				PlateNumber: req.Car.PlateNumber,
				Notes:       req.Car.Notes,
			}
			if err := tx.Create(&car).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_client", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		EmployeeID: &actorID,
		Action:     "client_created",
		Entity:     "client",
		EntityID:   &client.ID,
	})

	var created models.Client
	if err := h.db.Preload("Cars").First(&created, client.ID).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", err)
		return
	}

	httpresp.Created(c, "Client created.", created)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "client_not_found", "Client not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_client", err)
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	updates := map[string]any{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) == 0 {
		httperr.BadRequest(c, "no_fields_to_update", "No fields to update.")
		return
	}

	if err := h.db.Model(&client).Updates(updates).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", err)
		return
	}

	var updated models.Client
	if err := h.db.Preload("Cars").First(&updated, id).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", err)
		return
	}

	httpresp.OKMessage(c, "Client updated.", updated)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "client_not_found", "Client not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_client", err)
		return
	}

	if err := h.db.Delete(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_client", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		EmployeeID: &actorID,
		Action:     "client_deleted",
		Entity:     "client",
		EntityID:   &client.ID,
	})

	httpresp.Message(c, "Client deleted.")
}
