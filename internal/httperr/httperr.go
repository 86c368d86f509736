package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// diagnostics gates error details in 500 bodies. Set once at startup.
var diagnostics bool

func EnableDiagnostics(on bool) {
	diagnostics = on
}

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Unprocessable(c *gin.Context, code, message string) {
	Write(c, http.StatusUnprocessableEntity, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code string, err error) {
	message := "Internal server error."
	if diagnostics && err != nil {
		message = err.Error()
	}
	Write(c, http.StatusInternalServerError, code, message)
}
