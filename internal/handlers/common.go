package handlers

import (
	"errors"
	"net/http"

	"questup-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"operation successful"`
}

// respondError maps service sentinel errors onto the HTTP taxonomy:
// 401 unauthorized, 403 forbidden, 404 not found, 409 conflict, 400 invalid.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrNotRoomOwner):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrRoomNotFoundOrClosed),
		errors.Is(err, services.ErrQuestionNotFound),
		errors.Is(err, services.ErrRequestNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrRequestPending),
		errors.Is(err, services.ErrEmailRegistered),
		errors.Is(err, services.ErrAlreadyApproved),
		errors.Is(err, services.ErrAlreadyVoted):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidVoteType):
		status = http.StatusBadRequest
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
