package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dannykhan02/Ticketing-system/internal/domain/tickets"
	"github.com/gin-gonic/gin"
)

// ScanHandler defines the interface for handling gate validation requests
type ScanHandler interface {
	ValidateFromQuery(ctx *gin.Context)
	ValidateFromBody(ctx *gin.Context)
}

type scanHandler struct {
	scanService tickets.ScanService
}

// NewScanHandler creates a new ScanHandler
func NewScanHandler(scanService tickets.ScanService) ScanHandler {
	return &scanHandler{scanService: scanService}
}

// ValidateFromQuery handles the GET request a QR scanner app lands on; the
// signed payload arrives in the id query parameter.
func (handler *scanHandler) ValidateFromQuery(ctx *gin.Context) {
	qrContent := ctx.Query("id")
	if qrContent == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "missing id query parameter"})
		return
	}
	handler.validate(ctx, qrContent)
}

// ValidateFromBody handles the POST request carrying the scanned QR content
func (handler *scanHandler) ValidateFromBody(ctx *gin.Context) {
	var request ScanRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid scan data: %v", err.Error())})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	handler.validate(ctx, request.QRContent)
}

func (handler *scanHandler) validate(ctx *gin.Context, qrContent string) {
	claims := CurrentClaims(ctx)
	result, err := handler.scanService.ValidateQRCode(ctx, claims.UserID, qrContent)
	if err != nil {
		switch {
		case errors.Is(err, tickets.ErrAlreadyScanned):
			ctx.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
		case errors.Is(err, tickets.ErrTicketNotFound):
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
		case errors.Is(err, tickets.ErrInvalidQRCode):
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("error validating ticket: %v", err.Error())})
		}
		return
	}

	ctx.JSON(http.StatusOK, ScanResponse{
		TicketID:  result.TicketID,
		EventID:   result.EventID,
		ScannedAt: result.ScannedAt,
		ScannedBy: result.ScannedBy,
	})
}
