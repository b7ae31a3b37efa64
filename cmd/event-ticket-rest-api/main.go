// cmd/event-ticket-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/dannykhan02/Ticketing-system/internal/api/rest/v1"
	"github.com/dannykhan02/Ticketing-system/internal/app"
	"github.com/dannykhan02/Ticketing-system/internal/domain/events"
	"github.com/dannykhan02/Ticketing-system/internal/domain/media"
	"github.com/dannykhan02/Ticketing-system/internal/domain/payments"
	"github.com/dannykhan02/Ticketing-system/internal/domain/reports"
	"github.com/dannykhan02/Ticketing-system/internal/domain/tickets"
	"github.com/dannykhan02/Ticketing-system/internal/domain/users"
	"github.com/dannykhan02/Ticketing-system/internal/infrastructure/mailer"
	"github.com/dannykhan02/Ticketing-system/internal/infrastructure/oauth"
	"github.com/dannykhan02/Ticketing-system/internal/infrastructure/payment"
	"github.com/dannykhan02/Ticketing-system/internal/infrastructure/persistence"
	"github.com/dannykhan02/Ticketing-system/internal/infrastructure/qr"
	"github.com/dannykhan02/Ticketing-system/internal/infrastructure/storage"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/config"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/logger"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/signer"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/token"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env file is fine; deployment environments set variables
	// directly.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	healthChecker     *persistence.Health
	tokenIssuer       *token.Issuer
	sessionStore      sessions.Store
	identityConnector users.IdentityConnector
	userRepo          users.UserRepository
	services          *appServices
}

type appServices struct {
	auth       users.AuthService
	event      events.EventService
	ticketType events.TicketTypeService
	ticket     tickets.TicketService
	scan       tickets.ScanService
	report     reports.ReportService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database; migrations run inside NewDBConnection
	db, err := persistence.NewDBConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	eventRepo, err := persistence.NewGormEventRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create event repository: %w", err)
	}
	ticketTypeRepo, err := persistence.NewGormTicketTypeRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket type repository: %w", err)
	}
	ticketRepo, err := persistence.NewGormTicketRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket repository: %w", err)
	}
	scanRepo, err := persistence.NewGormScanRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create scan repository: %w", err)
	}
	transactionRepo, err := persistence.NewGormTransactionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction repository: %w", err)
	}
	aggregator, err := persistence.NewGormReportAggregator(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create report aggregator: %w", err)
	}

	// Initialize infrastructure
	mediaStorage, err := initializeMediaStorage(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize media storage: %w", err)
	}

	providers, err := initializePaymentProviders(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize payment providers: %w", err)
	}

	qrGenerator, err := qr.NewSignedGenerator(cfg.Auth.JWTSecret, cfg.Auth.QRCodeSalt, cfg.BaseURL, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR generator: %w", err)
	}

	smtpMailer, err := mailer.NewSMTPMailer(&cfg.Mail, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create mailer: %w", err)
	}

	identityConnector, err := oauth.NewGoogleConnector(&cfg.OAuth, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google connector: %w", err)
	}

	sessionStore, err := initializeSessionStore(&cfg.Session)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}

	tokenIssuer := token.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenLifetime)
	resetSerializer := signer.New(cfg.Auth.JWTSecret, cfg.Auth.ResetTokenSalt)

	// Initialize services
	services, err := initializeApplicationServices(cfg, userRepo, eventRepo, ticketTypeRepo, ticketRepo, scanRepo, transactionRepo, aggregator, providers, qrGenerator, mediaStorage, smtpMailer, tokenIssuer, resetSerializer, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		healthChecker:     persistence.NewHealth(db),
		tokenIssuer:       tokenIssuer,
		sessionStore:      sessionStore,
		identityConnector: identityConnector,
		userRepo:          userRepo,
		services:          services,
	}, nil
}

// initializeMediaStorage picks the configured media storage backend
func initializeMediaStorage(cfg *config.RestConfig, log logger.Logger) (media.Storage, error) {
	switch cfg.Storage.Backend {
	case config.AzureStorageBackend:
		return storage.NewAzureMediaStorage(context.Background(), &cfg.Storage, log)
	default:
		return storage.NewLocalMediaStorage(cfg.Storage.Directory, log)
	}
}

// initializePaymentProviders builds the configured payment providers; the
// first provider that verifies a reference settles the purchase.
func initializePaymentProviders(cfg *config.RestConfig, log logger.Logger) ([]payments.Provider, error) {
	var providers []payments.Provider

	if cfg.Payment.Paystack.SecretKey != "" {
		paystack, err := payment.NewPaystackConnector(&cfg.Payment.Paystack, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create Paystack connector: %w", err)
		}
		providers = append(providers, paystack)
	}

	if cfg.Payment.Mpesa.ConsumerKey != "" {
		mpesa, err := payment.NewMpesaConnector(&cfg.Payment.Mpesa, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create M-Pesa connector: %w", err)
		}
		providers = append(providers, mpesa)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no payment provider configured")
	}

	log.Info("Payment providers initialized successfully")
	return providers, nil
}

// initializeSessionStore creates the filesystem-backed session store used
// by the OAuth login flow.
func initializeSessionStore(settings *config.SessionSettings) (sessions.Store, error) {
	if err := os.MkdirAll(settings.Directory, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create session directory %s: %w", settings.Directory, err)
	}

	store := sessions.NewFilesystemStore(settings.Directory, []byte(settings.Secret))
	store.Options.HttpOnly = true
	store.Options.MaxAge = int((30 * 24 * time.Hour).Seconds())
	return store, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	cfg *config.RestConfig,
	userRepo users.UserRepository,
	eventRepo events.EventRepository,
	ticketTypeRepo events.TicketTypeRepository,
	ticketRepo tickets.TicketRepository,
	scanRepo tickets.ScanRepository,
	transactionRepo payments.TransactionRepository,
	aggregator reports.Aggregator,
	providers []payments.Provider,
	qrGenerator tickets.QRCodeGenerator,
	mediaStorage media.Storage,
	smtpMailer *mailer.SMTPMailer,
	tokenIssuer *token.Issuer,
	resetSerializer *signer.Serializer,
	log logger.Logger,
) (*appServices, error) {
	authService, err := app.NewAuthService(userRepo, tokenIssuer, resetSerializer, cfg.Auth.ResetTokenAge, cfg.BaseURL, smtpMailer, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	eventService, err := app.NewEventService(eventRepo, ticketTypeRepo, mediaStorage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create event service: %w", err)
	}

	ticketTypeService, err := app.NewTicketTypeService(ticketTypeRepo, eventRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket type service: %w", err)
	}

	ticketService, err := app.NewTicketService(ticketRepo, ticketTypeRepo, eventRepo, userRepo, transactionRepo, providers, qrGenerator, mediaStorage, smtpMailer, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket service: %w", err)
	}

	scanService, err := app.NewScanService(ticketRepo, scanRepo, qrGenerator, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create scan service: %w", err)
	}

	reportService, err := app.NewReportService(aggregator, eventRepo, scanRepo, userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		auth:       authService,
		event:      eventService,
		ticketType: ticketTypeService,
		ticket:     ticketService,
		scan:       scanService,
		report:     reportService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.healthChecker,
		deps.tokenIssuer,
		deps.sessionStore,
		deps.services.auth,
		deps.identityConnector,
		deps.userRepo,
		deps.services.event,
		deps.services.ticketType,
		deps.services.ticket,
		deps.services.scan,
		deps.services.report,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal %v, initiating graceful shutdown", sig)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
