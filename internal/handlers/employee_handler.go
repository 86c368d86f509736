package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/autogleam/detailing-api/internal/audit"
	"github.com/autogleam/detailing-api/internal/httperr"
	"github.com/autogleam/detailing-api/internal/httpresp"
	"github.com/autogleam/detailing-api/internal/middleware"
	"github.com/autogleam/detailing-api/internal/models"
	"github.com/autogleam/detailing-api/internal/validators"
)

type EmployeeHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewEmployeeHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *EmployeeHandler {
	return &EmployeeHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type CreateEmployeeRequest struct {
	Name              string `json:"name" binding:"required"`
	Email             string `json:"email" binding:"required"`
	Password          string `json:"password" binding:"required,min=8"`
	Role              string `json:"role"`
	NotificationEmail string `json:"notification_email"`
	NotificationPhone string `json:"notification_phone"`
	IsActive          *bool  `json:"is_active"`
}

type UpdateEmployeeRequest struct {
	Name              *string `json:"name"`
	Email             *string `json:"email"`
	Password          *string `json:"password"`
	Role              *string `json:"role"`
	NotificationEmail *string `json:"notification_email"`
	NotificationPhone *string `json:"notification_phone"`
	IsActive          *bool   `json:"is_active"`
}

func isValidRole(role string) bool {
	return role == models.RoleAdmin || role == models.RoleEmployee
}

// --------- Handlers ---------

func (h *EmployeeHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	if c.Query("active_only") == "true" {
		q = q.Where("is_active = ?", true)
	}

	var employees []models.Employee
	if err := q.Order("name ASC").Find(&employees).Error; err != nil {
		httperr.Internal(c, "failed_to_list_employees", err)
		return
	}

	httpresp.OK(c, employees)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var employee models.Employee
	if err := h.db.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "employee_not_found", "Employee not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_employee", err)
		return
	}

	httpresp.OK(c, employee)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Missing required fields: name, email, password.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailValid(email) {
		httperr.Unprocessable(c, "invalid_email", "Email address is not valid.")
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleEmployee
	}
	if !isValidRole(role) {
		httperr.Unprocessable(c, "invalid_role", "Role must be admin or employee.")
		return
	}

	var existing models.Employee
	if err := h.db.Where("email = ?", email).First(&existing).Error; err == nil {
		httperr.Unprocessable(c, "email_taken", "An employee with this email already exists.")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Internal(c, "failed_to_create_employee", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_create_employee", err)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	employee := models.Employee{
		Name:              req.Name,
		Email:             email,
		Password:          string(hash),
		Role:              role,
		NotificationEmail: req.NotificationEmail,
		NotificationPhone: req.NotificationPhone,
		IsActive:          isActive,
	}
	if err := h.db.Create(&employee).Error; err != nil {
		httperr.Internal(c, "failed_to_create_employee", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		EmployeeID: &actorID,
		Action:     "employee_created",
		Entity:     "employee",
		EntityID:   &employee.ID,
	})

	httpresp.Created(c, "Employee created.", employee)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var employee models.Employee
	if err := h.db.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "employee_not_found", "Employee not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_employee", err)
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if !validators.IsEmailValid(email) {
			httperr.Unprocessable(c, "invalid_email", "Email address is not valid.")
			return
		}
		updates["email"] = email
	}
	if req.Role != nil {
		if !isValidRole(*req.Role) {
			httperr.Unprocessable(c, "invalid_role", "Role must be admin or employee.")
			return
		}
		updates["role"] = *req.Role
	}
	if req.Password != nil && *req.Password != "" {
		if len(*req.Password) < 8 {
			httperr.Unprocessable(c, "weak_password", "Password must be at least 8 characters.")
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_update_employee", err)
			return
		}
		updates["password"] = string(hash)
	}
	if req.NotificationEmail != nil {
		updates["notification_email"] = *req.NotificationEmail
	}
	if req.NotificationPhone != nil {
		updates["notification_phone"] = *req.NotificationPhone
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		httperr.BadRequest(c, "no_fields_to_update", "No fields to update.")
		return
	}

	if err := h.db.Model(&employee).Updates(updates).Error; err != nil {
		httperr.Internal(c, "failed_to_update_employee", err)
		return
	}

	var updated models.Employee
	if err := h.db.First(&updated, id).Error; err != nil {
		httperr.Internal(c, "failed_to_update_employee", err)
		return
	}

	httpresp.OKMessage(c, "Employee updated.", updated)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var employee models.Employee
	if err := h.db.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "employee_not_found", "Employee not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_employee", err)
		return
	}

	// admin accounts cannot be removed through the API
	if employee.Role == models.RoleAdmin {
		httperr.Forbidden(c, "cannot_delete_admin", "Admin accounts cannot be deleted.")
		return
	}

	if err := h.db.Delete(&employee).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_employee", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		EmployeeID: &actorID,
		Action:     "employee_deleted",
		Entity:     "employee",
		EntityID:   &employee.ID,
	})

	httpresp.Message(c, "Employee deleted.")
}
