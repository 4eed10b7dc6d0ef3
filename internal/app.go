// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "networth-tracker/internal/api"
	"networth-tracker/internal/api/handler"
	"networth-tracker/internal/auth"
	"networth-tracker/internal/config"
	"networth-tracker/internal/repository"
	"networth-tracker/internal/repository/postgres"
	"networth-tracker/internal/service"
	"networth-tracker/internal/util"
	"networth-tracker/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	SourceRepository repository.SourceRepository
	UpdateRepository repository.UpdateRepository
	EventRepository  repository.EventRepository

	// Services
	SourceService   service.SourceService
	UpdateService   service.UpdateService
	NetWorthService service.NetWorthService
	EventService    service.EventService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()

	// 2. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	// 4. Initialize Repositories
	app.SourceRepository = postgres.NewSourceRepository(app.DB)
	app.UpdateRepository = postgres.NewUpdateRepository(app.DB)
	app.EventRepository = postgres.NewEventRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize Services
	app.NetWorthService = service.NewNetWorthService(
		app.DB,
		app.SourceRepository,
		app.UpdateRepository,
		app.Logger,
	)
	app.SourceService = service.NewSourceService(
		app.DB, // DBTxBeginner
		app.DB, // DBExecutor
		app.SourceRepository,
		app.UpdateRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
		app.Logger,
	)
	app.UpdateService = service.NewUpdateService(
		app.DB,
		app.SourceRepository,
		app.UpdateRepository,
		app.EventRepository,
		app.NetWorthService,
		app.Logger,
	)
	app.EventService = service.NewEventService(
		app.DB,
		app.EventRepository,
		app.NetWorthService,
		app.Logger,
	)
	app.Logger.Info("Services initialized.")

	// 6. Initialize HTTP Handlers and Router
	sourceHandler := handler.NewSourceHandler(app.SourceService, app.Logger)
	updateHandler := handler.NewUpdateHandler(app.UpdateService, app.Logger)
	netWorthHandler := handler.NewNetWorthHandler(app.NetWorthService, app.Logger)
	eventHandler := handler.NewEventHandler(app.EventService, app.Logger)
	authenticator := auth.NewHeaderAuthenticator()
	app.HTTPHandler = router.NewRouter(sourceHandler, updateHandler, netWorthHandler, eventHandler, authenticator, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
