package v1

import (
	"fmt"
	"net/http"

	"github.com/dannykhan02/Ticketing-system/internal/domain/events"
	"github.com/gin-gonic/gin"
)

// TicketTypeHandler defines the interface for handling ticket type requests
type TicketTypeHandler interface {
	Create(ctx *gin.Context)
	ListByEvent(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ticketTypeHandler struct {
	ticketTypeService events.TicketTypeService
}

// NewTicketTypeHandler creates a new TicketTypeHandler
func NewTicketTypeHandler(ticketTypeService events.TicketTypeService) TicketTypeHandler {
	return &ticketTypeHandler{ticketTypeService: ticketTypeService}
}

// Create handles the POST request to create a ticket type
func (handler *ticketTypeHandler) Create(ctx *gin.Context) {
	var request CreateTicketTypeRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid ticket type data: %v", err.Error())})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	claims := CurrentClaims(ctx)
	ticketType := &events.TicketType{
		EventID:  request.EventID,
		Name:     request.Name,
		Price:    request.Price,
		Quantity: request.Quantity,
	}

	created, err := handler.ticketTypeService.Create(ctx, claims.UserID, ticketType)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error creating ticket type: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, newTicketTypeResponse(created))
}

// ListByEvent handles the GET request to list the ticket types of an event
func (handler *ticketTypeHandler) ListByEvent(ctx *gin.Context) {
	ticketTypes, err := handler.ticketTypeService.ListByEventID(ctx, ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error listing ticket types: %v", err.Error())})
		return
	}

	response := make([]TicketTypeResponse, 0, len(ticketTypes))
	for _, ticketType := range ticketTypes {
		response = append(response, newTicketTypeResponse(ticketType))
	}
	ctx.JSON(http.StatusOK, response)
}

// GetByID handles the GET request to fetch a single ticket type
func (handler *ticketTypeHandler) GetByID(ctx *gin.Context) {
	ticketType, err := handler.ticketTypeService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, newTicketTypeResponse(ticketType))
}

// Update handles the PUT request to update a ticket type
func (handler *ticketTypeHandler) Update(ctx *gin.Context) {
	var request UpdateTicketTypeRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid ticket type data: %v", err.Error())})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	claims := CurrentClaims(ctx)
	ticketType, err := handler.ticketTypeService.Update(ctx, claims.UserID, ctx.Param("id"), request.Name, request.Price, request.Quantity)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error updating ticket type: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, newTicketTypeResponse(ticketType))
}

// Delete handles the DELETE request to remove a ticket type
func (handler *ticketTypeHandler) Delete(ctx *gin.Context) {
	claims := CurrentClaims(ctx)
	if err := handler.ticketTypeService.Delete(ctx, claims.UserID, ctx.Param("id")); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error deleting ticket type: %v", err.Error())})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
