package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Emmanuel-365/event-app/internal/dto"
	"github.com/Emmanuel-365/event-app/internal/service"
	"github.com/Emmanuel-365/event-app/pkg/response"
)

// SubscriptionHandler exposes the subscription lifecycle over HTTP
type SubscriptionHandler struct {
	subs service.SubscriptionService
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(subs service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subs: subs}
}

// Reserve handles POST /api/v1/subscriptions
func (h *SubscriptionHandler) Reserve(c *gin.Context) {
	var req dto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sub, err := h.subs.Reserve(c.Request.Context(), requester(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, dto.ToSubscriptionResponse(sub))
}

// ConfirmPayment handles POST /api/v1/subscriptions/:id/confirm
func (h *SubscriptionHandler) ConfirmPayment(c *gin.Context) {
	sub, err := h.subs.ConfirmPayment(c.Request.Context(), requester(c), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, dto.ToSubscriptionResponse(sub))
}

// Cancel handles DELETE /api/v1/subscriptions/:id
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	if err := h.subs.Cancel(c.Request.Context(), requester(c), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, gin.H{"cancelled": true})
}

// ValidateAtDoor handles POST /api/v1/tickets/validate
func (h *SubscriptionHandler) ValidateAtDoor(c *gin.Context) {
	var req dto.ValidateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sub, err := h.subs.ValidateAtDoor(c.Request.Context(), requester(c), req.TicketCode)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, dto.ToSubscriptionResponse(sub))
}

// Get handles GET /api/v1/subscriptions/:id
func (h *SubscriptionHandler) Get(c *gin.Context) {
	sub, err := h.subs.GetByID(c.Request.Context(), requester(c), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, dto.ToSubscriptionResponse(sub))
}

// ListMine handles GET /api/v1/subscriptions
func (h *SubscriptionHandler) ListMine(c *gin.Context) {
	subs, err := h.subs.ListMine(c.Request.Context(), requester(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, dto.ToSubscriptionResponses(subs))
}

// ListForEvent handles GET /api/v1/events/:id/subscriptions
func (h *SubscriptionHandler) ListForEvent(c *gin.Context) {
	subs, err := h.subs.ListForEvent(c.Request.Context(), requester(c), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, dto.ToSubscriptionResponses(subs))
}
