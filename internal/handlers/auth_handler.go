package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/autogleam/detailing-api/internal/auth"
	"github.com/autogleam/detailing-api/internal/config"
	"github.com/autogleam/detailing-api/internal/httperr"
	"github.com/autogleam/detailing-api/internal/httpresp"
	"github.com/autogleam/detailing-api/internal/middleware"
	"github.com/autogleam/detailing-api/internal/models"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing required fields: email, password.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var employee models.Employee
	if err := h.db.
		Where("email = ? AND is_active = ?", email, true).
		First(&employee).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
			return
		}
		httperr.Internal(c, "internal_error", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
		return
	}

	token, err := auth.GenerateToken(
		employee.ID,
		employee.Email,
		employee.Role,
		[]byte(h.config.JWTSecret),
		h.config.TokenTTL,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in.",
		"user":    employee,
		"token":   token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	// stateless tokens: nothing to revoke server-side
	httpresp.Message(c, "Logged out.")
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var employee models.Employee
	if err := h.db.First(&employee, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": employee})
}
