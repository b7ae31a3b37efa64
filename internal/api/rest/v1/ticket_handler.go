package v1

import (
	"fmt"
	"net/http"

	"github.com/dannykhan02/Ticketing-system/internal/domain/tickets"
	"github.com/gin-gonic/gin"
)

// TicketHandler defines the interface for handling ticket lifecycle requests
type TicketHandler interface {
	Purchase(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	Cancel(ctx *gin.Context)
}

type ticketHandler struct {
	ticketService tickets.TicketService
}

// NewTicketHandler creates a new TicketHandler
func NewTicketHandler(ticketService tickets.TicketService) TicketHandler {
	return &ticketHandler{ticketService: ticketService}
}

// Purchase handles the POST request to book tickets
func (handler *ticketHandler) Purchase(ctx *gin.Context) {
	var request PurchaseTicketRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid purchase data: %v", err.Error())})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	claims := CurrentClaims(ctx)
	ticket, err := handler.ticketService.Purchase(ctx, claims.UserID, tickets.PurchaseRequest{
		EventID:          request.EventID,
		TicketTypeID:     request.TicketTypeID,
		Quantity:         request.Quantity,
		PaymentReference: request.PaymentReference,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error purchasing ticket: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, newTicketResponse(ticket))
}

// List handles the GET request to list the caller's tickets
func (handler *ticketHandler) List(ctx *gin.Context) {
	claims := CurrentClaims(ctx)
	ticketList, err := handler.ticketService.ListForUser(ctx, claims.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error listing tickets: %v", err.Error())})
		return
	}

	response := make([]TicketResponse, 0, len(ticketList))
	for _, ticket := range ticketList {
		response = append(response, newTicketResponse(ticket))
	}
	ctx.JSON(http.StatusOK, response)
}

// GetByID handles the GET request to fetch a single owned ticket
func (handler *ticketHandler) GetByID(ctx *gin.Context) {
	claims := CurrentClaims(ctx)
	ticket, err := handler.ticketService.GetByID(ctx, claims.UserID, ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, newTicketResponse(ticket))
}

// Update handles the PUT request to rebook a ticket
func (handler *ticketHandler) Update(ctx *gin.Context) {
	var request UpdateTicketRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid ticket data: %v", err.Error())})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	claims := CurrentClaims(ctx)
	ticket, err := handler.ticketService.Update(ctx, claims.UserID, ctx.Param("id"), tickets.TicketUpdateRequest{
		TicketTypeID:     request.TicketTypeID,
		Quantity:         request.Quantity,
		PaymentReference: request.PaymentReference,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error updating ticket: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, newTicketResponse(ticket))
}

// Cancel handles the DELETE request to cancel and refund a ticket
func (handler *ticketHandler) Cancel(ctx *gin.Context) {
	claims := CurrentClaims(ctx)
	if err := handler.ticketService.Cancel(ctx, claims.UserID, ctx.Param("id")); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error cancelling ticket: %v", err.Error())})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
