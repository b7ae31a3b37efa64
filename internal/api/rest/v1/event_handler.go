package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dannykhan02/Ticketing-system/internal/domain/events"
	"github.com/gin-gonic/gin"
)

// EventHandler defines the interface for handling event management requests
type EventHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	UploadImage(ctx *gin.Context)
}

type eventHandler struct {
	eventService events.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService events.EventService) EventHandler {
	return &eventHandler{eventService: eventService}
}

// Create handles the POST request to create an event
func (handler *eventHandler) Create(ctx *gin.Context) {
	var request CreateEventRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid event data: %v", err.Error())})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	claims := CurrentClaims(ctx)
	event := &events.Event{
		Name:        request.Name,
		Description: request.Description,
		Location:    request.Location,
		StartsAt:    request.StartsAt,
		EndsAt:      request.EndsAt,
	}

	created, err := handler.eventService.Create(ctx, claims.UserID, event)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error creating event: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, newEventResponse(created))
}

// List handles the GET request to list events
func (handler *eventHandler) List(ctx *gin.Context) {
	query := events.NewEventQuery()
	query.OrganizerID = ctx.Query("organizer_id")
	if from := ctx.Query("from"); from != "" {
		parsed, err := time.Parse(time.RFC3339, from)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "from must be an RFC3339 timestamp"})
			return
		}
		query.From = parsed
	}
	if limit := ctx.Query("limit"); limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "limit must be an integer"})
			return
		}
		query.Limit = parsed
	}
	if offset := ctx.Query("offset"); offset != "" {
		parsed, err := strconv.Atoi(offset)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "offset must be an integer"})
			return
		}
		query.Offset = parsed
	}

	eventList, err := handler.eventService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error listing events: %v", err.Error())})
		return
	}

	response := make([]EventResponse, 0, len(eventList))
	for _, event := range eventList {
		response = append(response, newEventResponse(event))
	}
	ctx.JSON(http.StatusOK, response)
}

// GetByID handles the GET request to fetch a single event
func (handler *eventHandler) GetByID(ctx *gin.Context) {
	event, err := handler.eventService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, newEventResponse(event))
}

// Update handles the PUT request to update an event
func (handler *eventHandler) Update(ctx *gin.Context) {
	var request UpdateEventRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid event data: %v", err.Error())})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	claims := CurrentClaims(ctx)
	update := events.EventUpdate{
		Name:        request.Name,
		Description: request.Description,
		Location:    request.Location,
		StartsAt:    request.StartsAt,
		EndsAt:      request.EndsAt,
	}

	event, err := handler.eventService.Update(ctx, claims.UserID, ctx.Param("id"), update)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error updating event: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, newEventResponse(event))
}

// Delete handles the DELETE request to remove an event
func (handler *eventHandler) Delete(ctx *gin.Context) {
	claims := CurrentClaims(ctx)
	if err := handler.eventService.Delete(ctx, claims.UserID, ctx.Param("id")); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error deleting event: %v", err.Error())})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// UploadImage handles the POST request to attach artwork to an event
func (handler *eventHandler) UploadImage(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid multipart form: %v", err.Error())})
		return
	}

	claims := CurrentClaims(ctx)
	event, err := handler.eventService.AttachImage(ctx, claims.UserID, ctx.Param("id"), form)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error uploading image: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, newEventResponse(event))
}
