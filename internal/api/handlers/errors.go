package handlers

import (
	"errors"
	"net/http"

	"github.com/boardinghouse/rental-backend/internal/services"
	"github.com/boardinghouse/rental-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// sendServiceError maps service error kinds to HTTP status codes.
func sendServiceError(c *gin.Context, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNotVisible):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidState):
		status = http.StatusUnprocessableEntity
	}
	utils.SendError(c, status, message, err)
}
