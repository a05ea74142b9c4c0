package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Emmanuel-365/event-app/internal/dto"
	"github.com/Emmanuel-365/event-app/internal/service"
	"github.com/Emmanuel-365/event-app/pkg/response"
)

// EventHandler exposes event management over HTTP
type EventHandler struct {
	events service.EventService
	cats   service.TicketCategoryService
}

// NewEventHandler creates a new event handler
func NewEventHandler(events service.EventService, cats service.TicketCategoryService) *EventHandler {
	return &EventHandler{events: events, cats: cats}
}

// Create handles POST /api/v1/events
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	event, err := h.events.Create(c.Request.Context(), requester(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, dto.ToEventResponse(event))
}

// Get handles GET /api/v1/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.events.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, dto.ToEventResponse(event))
}

// List handles GET /api/v1/events
func (h *EventHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	events, err := h.events.List(c.Request.Context(), limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, dto.ToEventResponses(events))
}

// ListMine handles GET /api/v1/events/mine
func (h *EventHandler) ListMine(c *gin.Context) {
	events, err := h.events.ListByOrganizer(c.Request.Context(), requester(c).UserID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, dto.ToEventResponses(events))
}

// Update handles PUT /api/v1/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	event, err := h.events.Update(c.Request.Context(), requester(c), c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, dto.ToEventResponse(event))
}

// Delete handles DELETE /api/v1/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.events.Delete(c.Request.Context(), requester(c), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": true})
}

// CreateCategory handles POST /api/v1/events/:id/categories
func (h *EventHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cat, err := h.cats.Create(c.Request.Context(), requester(c), c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, dto.ToCategoryResponse(cat))
}

// ListCategories handles GET /api/v1/events/:id/categories
func (h *EventHandler) ListCategories(c *gin.Context) {
	cats, err := h.cats.ListByEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, dto.ToCategoryResponses(cats))
}

// UpdateCategory handles PUT /api/v1/categories/:id
func (h *EventHandler) UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cat, err := h.cats.Update(c.Request.Context(), requester(c), c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, dto.ToCategoryResponse(cat))
}

// DeleteCategory handles DELETE /api/v1/categories/:id
func (h *EventHandler) DeleteCategory(c *gin.Context) {
	if err := h.cats.Delete(c.Request.Context(), requester(c), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": true})
}
