package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"orca-backend/internal/export"
	"orca-backend/internal/previews"
	"orca-backend/internal/projects"
	"orca-backend/internal/queue"
	"orca-backend/internal/scoring"
	"orca-backend/internal/shared/config"
	"orca-backend/internal/shared/server"
	"orca-backend/internal/shared/storage/db"
	"orca-backend/internal/shared/storage/object"
	localstore "orca-backend/internal/shared/storage/object/local"
	s3store "orca-backend/internal/shared/storage/object/s3"
	"orca-backend/internal/snapshots"
	"orca-backend/internal/validation"
)

// App holds shared dependencies for the API and the worker.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	Queue  queue.Client

	SnapshotsRepo snapshots.Repo
	ProjectsRepo  projects.Repo
	ExportJobs    export.Repo

	PreviewService    *previews.Service
	ValidationService *validation.Service
	ExportService     *export.Service

	PreviewHandler    *previews.Handler
	ValidationHandler *validation.Handler
	ExportHandler     *export.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	queueClient, err := buildQueue(ctx)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Queue:  queueClient,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		PreviewHandler:    app.PreviewHandler,
		ValidationHandler: app.ValidationHandler,
		ExportHandler:     app.ExportHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	if db.IsLambdaRuntime() {
		opts = db.OptionsFromEnv(db.DefaultLambdaOptions())
	}
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildQueue(ctx context.Context) (queue.Client, error) {
	if strings.TrimSpace(os.Getenv("ORCA_SQS_QUEUE_URL")) == "" {
		return nil, nil
	}
	return queue.NewSQSClient(ctx)
}

func buildServices(app *App) {
	if app.DB != nil {
		app.SnapshotsRepo = &snapshots.PGRepo{DB: app.DB}
		app.ProjectsRepo = &projects.PGRepo{DB: app.DB}
		app.ExportJobs = &export.PGRepo{DB: app.DB}
	} else {
		app.SnapshotsRepo = snapshots.NewMemoryRepo()
		app.ProjectsRepo = projects.NewMemoryRepo()
		app.ExportJobs = export.NewMemoryRepo()
	}

	scoringCfg := scoring.DefaultConfig()

	app.PreviewService = &previews.Service{
		Snapshots:   app.SnapshotsRepo,
		Cfg:         scoringCfg,
		Concurrency: app.Config.PreviewConcurrency,
	}
	app.ValidationService = &validation.Service{
		Snapshots: app.SnapshotsRepo,
		Cfg:       scoringCfg,
	}
	app.ExportService = &export.Service{
		Projects: app.ProjectsRepo,
		Previews: app.PreviewService,
		Jobs:     app.ExportJobs,
		Store:    app.Store,
		Queue:    app.Queue,
	}

	app.PreviewHandler = previews.NewHandler(app.PreviewService)
	app.ValidationHandler = validation.NewHandler(app.ValidationService)
	app.ExportHandler = export.NewHandler(app.ExportService)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
