package v1

import (
	"fmt"
	"net/http"

	"github.com/dannykhan02/Ticketing-system/internal/domain/reports"
	"github.com/gin-gonic/gin"
)

// ReportHandler defines the interface for handling reporting requests
type ReportHandler interface {
	EventReport(ctx *gin.Context)
	PlatformReport(ctx *gin.Context)
}

type reportHandler struct {
	reportService reports.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService reports.ReportService) ReportHandler {
	return &reportHandler{reportService: reportService}
}

// EventReport handles the GET request for a single event's sales report
func (handler *reportHandler) EventReport(ctx *gin.Context) {
	claims := CurrentClaims(ctx)
	report, err := handler.reportService.EventReport(ctx, claims.UserID, ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error building event report: %v", err.Error())})
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// PlatformReport handles the GET request for the platform-wide totals
func (handler *reportHandler) PlatformReport(ctx *gin.Context) {
	report, err := handler.reportService.PlatformReport(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("error building platform report: %v", err.Error())})
		return
	}
	ctx.JSON(http.StatusOK, report)
}
