package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Emmanuel-365/event-app/internal/domain"
	"github.com/Emmanuel-365/event-app/pkg/middleware"
	"github.com/Emmanuel-365/event-app/pkg/response"
)

// handleError maps domain errors to HTTP responses
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.NotFound(c, "resource not found")
	case errors.Is(err, domain.ErrCapacityExceeded):
		response.Error(c, http.StatusConflict, "CAPACITY_EXCEEDED", "not enough places remaining")
	case errors.Is(err, domain.ErrForbidden):
		response.Forbidden(c, "operation not allowed")
	case errors.Is(err, domain.ErrInvalidState):
		response.Error(c, http.StatusConflict, "INVALID_STATE", "subscription state does not permit this operation")
	case errors.Is(err, domain.ErrTicketAlreadyUsed):
		response.Error(c, http.StatusConflict, "TICKET_ALREADY_USED", "ticket was already validated")
	case errors.Is(err, domain.ErrCodeConflict):
		response.Error(c, http.StatusServiceUnavailable, "CODE_GENERATION_EXHAUSTED", "could not allocate a unique ticket code, retry")
	case errors.Is(err, domain.ErrEmailTaken):
		response.Conflict(c, "email already registered")
	case errors.Is(err, domain.ErrInvalidCredentials):
		response.Unauthorized(c, "invalid credentials")
	case errors.Is(err, domain.ErrValidation):
		response.BadRequest(c, "invalid input")
	default:
		response.InternalError(c, "internal server error")
	}
}

// requester builds the caller identity from the authenticated context
func requester(c *gin.Context) domain.Identity {
	return domain.Identity{
		UserID: middleware.CurrentUserID(c),
		Role:   domain.Role(middleware.CurrentRole(c)),
	}
}
