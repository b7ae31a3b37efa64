package v1

import (
	"context"
	"net/http"

	"github.com/dannykhan02/Ticketing-system/internal/domain/events"
	"github.com/dannykhan02/Ticketing-system/internal/domain/reports"
	"github.com/dannykhan02/Ticketing-system/internal/domain/tickets"
	"github.com/dannykhan02/Ticketing-system/internal/domain/users"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// DBHealthChecker reports database connectivity for the health endpoint.
type DBHealthChecker interface {
	Ping(ctx context.Context) error
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	healthChecker DBHealthChecker,
	tokenIssuer *token.Issuer,
	sessionStore sessions.Store,
	authService users.AuthService,
	identityConnector users.IdentityConnector,
	userRepo users.UserRepository,
	eventService events.EventService,
	ticketTypeService events.TicketTypeService,
	ticketService tickets.TicketService,
	scanService tickets.ScanService,
	reportService reports.ReportService) {

	r.GET("/health", func(ctx *gin.Context) {
		if healthChecker != nil {
			if err := healthChecker.Ping(ctx); err != nil {
				ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unavailable"})
				return
			}
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok", "database": "ok"})
	})

	v1 := r.Group(BasePath) // lookup in version file
	authRequired := RequireAuth(tokenIssuer)

	// Auth Routes
	authHandler := NewAuthHandler(authService, identityConnector, sessionStore)
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/auth/google", authHandler.GoogleLogin)
	v1.GET("/auth/google/callback", authHandler.GoogleCallback)
	v1.POST("/auth/reset_password_request", authHandler.RequestPasswordReset)
	v1.POST("/auth/reset_password", authHandler.ResetPassword)

	// Admin User Routes
	userHandler := NewUserHandler(authService, userRepo)
	v1.POST("/users", authRequired, RequireRoles(users.RoleAdmin), userHandler.Create)
	v1.GET("/users", authRequired, RequireRoles(users.RoleAdmin), userHandler.List)

	// Event Routes
	eventHandler := NewEventHandler(eventService)
	v1.POST("/events", authRequired, RequireRoles(users.RoleOrganizer), eventHandler.Create)
	v1.GET("/events", eventHandler.List)
	v1.GET("/events/:id", eventHandler.GetByID)
	v1.PUT("/events/:id", authRequired, RequireRoles(users.RoleOrganizer), eventHandler.Update)
	v1.DELETE("/events/:id", authRequired, RequireRoles(users.RoleOrganizer), eventHandler.Delete)
	v1.POST("/events/:id/image", authRequired, RequireRoles(users.RoleOrganizer), eventHandler.UploadImage)

	// Ticket Type Routes
	ticketTypeHandler := NewTicketTypeHandler(ticketTypeService)
	v1.POST("/ticket_types", authRequired, RequireRoles(users.RoleOrganizer), ticketTypeHandler.Create)
	v1.GET("/events/:id/ticket_types", ticketTypeHandler.ListByEvent)
	v1.GET("/ticket_types/:id", ticketTypeHandler.GetByID)
	v1.PUT("/ticket_types/:id", authRequired, RequireRoles(users.RoleOrganizer), ticketTypeHandler.Update)
	v1.DELETE("/ticket_types/:id", authRequired, RequireRoles(users.RoleOrganizer), ticketTypeHandler.Delete)

	// Ticket Routes
	ticketHandler := NewTicketHandler(ticketService)
	v1.POST("/tickets", authRequired, RequireRoles(users.RoleAttendee, users.RoleOrganizer, users.RoleAdmin), ticketHandler.Purchase)
	v1.GET("/tickets", authRequired, ticketHandler.List)
	v1.GET("/tickets/:id", authRequired, ticketHandler.GetByID)
	v1.PUT("/tickets/:id", authRequired, ticketHandler.Update)
	v1.DELETE("/tickets/:id", authRequired, ticketHandler.Cancel)

	// Scan Routes
	scanHandler := NewScanHandler(scanService)
	v1.GET("/validate_ticket", authRequired, RequireRoles(users.RoleSecurity, users.RoleAdmin), scanHandler.ValidateFromQuery)
	v1.POST("/validate_ticket", authRequired, RequireRoles(users.RoleSecurity, users.RoleAdmin), scanHandler.ValidateFromBody)
	v1.POST("/scan", authRequired, RequireRoles(users.RoleSecurity, users.RoleAdmin), scanHandler.ValidateFromBody)

	// Report Routes
	reportHandler := NewReportHandler(reportService)
	v1.GET("/events/:id/report", authRequired, RequireRoles(users.RoleOrganizer, users.RoleAdmin), reportHandler.EventReport)
	v1.GET("/reports/platform", authRequired, RequireRoles(users.RoleAdmin), reportHandler.PlatformReport)
}
