package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	domain "github.com/autogleam/detailing-api/internal/domain/protocol"
	"github.com/autogleam/detailing-api/internal/httperr"
	"github.com/autogleam/detailing-api/internal/httpresp"
	"github.com/autogleam/detailing-api/internal/middleware"
	ucProtocol "github.com/autogleam/detailing-api/internal/usecase/protocol"
)

type ProtocolHandler struct {
	getUC  *ucProtocol.Get
	saveUC *ucProtocol.Save
}

func NewProtocolHandler(getUC *ucProtocol.Get, saveUC *ucProtocol.Save) *ProtocolHandler {
	return &ProtocolHandler{getUC: getUC, saveUC: saveUC}
}

type SaveProtocolRequest struct {
	Mileage     string `json:"mileage"`
	FuelLevel   string `json:"fuel_level"`
	Accessories string `json:"accessories"`
	Notes       string `json:"notes"`

	Damages []domain.Damage `json:"damages"`

	ClientSignature   string `json:"client_signature"`
	EmployeeSignature string `json:"employee_signature"`
}

func (h *ProtocolHandler) Get(c *gin.Context) {
	appointmentID, ok := parseIDParam(c)
	if !ok {
		return
	}

	p, err := h.getUC.Execute(c.Request.Context(), appointmentID)
	if err != nil {
		if errors.Is(err, httperr.ErrNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		httperr.Internal(c, "failed_to_load_protocol", err)
		return
	}

	// p is nil when no protocol was saved yet; data stays null
	if p == nil {
		httpresp.OK(c, nil)
		return
	}
	httpresp.OK(c, p)
}

func (h *ProtocolHandler) Save(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req SaveProtocolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	p, err := h.saveUC.Execute(c.Request.Context(), appointmentID, actorID, ucProtocol.SaveInput{
		Mileage:           req.Mileage,
		FuelLevel:         req.FuelLevel,
		Accessories:       req.Accessories,
		Notes:             req.Notes,
		Damages:           req.Damages,
		ClientSignature:   req.ClientSignature,
		EmployeeSignature: req.EmployeeSignature,
	})
	if err != nil {
		if errors.Is(err, httperr.ErrNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		httperr.Internal(c, "failed_to_save_protocol", err)
		return
	}

	httpresp.OKMessage(c, "Protocol saved.", p)
}
