// Package server wires the ERP back office together: PostgreSQL with goose
// migrations, S3 object storage, the realtime backend (memory or Redis) and
// the gRPC endpoint, and runs it until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/mdterp/internal/logging"
	"github.com/dmitrijs2005/mdterp/internal/server/config"
	"github.com/dmitrijs2005/mdterp/internal/server/realtime"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/mdterp/internal/server/services"
	"github.com/dmitrijs2005/mdterp/internal/server/storage"
	"github.com/redis/go-redis/v9"

	gs "github.com/dmitrijs2005/mdterp/internal/server/grpc"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	closers []func() error
	server  *gs.GRPCServer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout, c.LogLevel)
	app := &App{config: c, logger: logger}

	db, err := openDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	app.db = db
	app.closers = append(app.closers, db.Close)

	rm, err := repomanager.NewPostgresRepositoryManager(db)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("repository manager init error: %w", err)
	}
	if err := rm.RunMigrations(ctx, db); err != nil {
		app.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	store, err := storage.NewS3Store(ctx, storage.S3Config{
		User:          c.S3RootUser,
		Password:      c.S3RootPassword,
		Bucket:        c.S3Bucket,
		Region:        c.S3Region,
		BaseEndpoint:  c.S3BaseEndpoint,
		PublicBaseURL: c.PublicBaseURL(),
	})
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	broker, registry, err := app.initRealtime(ctx)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("realtime init error: %w", err)
	}

	svc := gs.Services{
		Users:        services.NewUserService(db, rm, c),
		Clients:      services.NewClientService(db, rm),
		Contracts:    services.NewContractService(db, rm),
		Items:        services.NewItemService(db, rm),
		Measurements: services.NewMeasurementService(db, rm, store, logger),
		Workflow:     services.NewWorkflowService(db, rm, store, logger),
		Tasks:        services.NewTaskService(db, rm, store),
		Documents:    services.NewDocumentService(db, rm, store),
		Dashboard:    services.NewDashboardService(db, rm),
		Export:       services.NewExportService(db, rm),
		Chat: services.NewChatService(db, rm, broker, logger, services.ChatConfig{
			HistoryLimit:  c.ChatHistoryLimit,
			RatePerSecond: c.ChatRatePerSecond,
			Burst:         c.ChatRateBurst,
		}),
		Presence: services.NewPresenceService(registry, broker, logger, c.PresenceTTL),
	}

	app.server, err = gs.NewGRPCServer(c.EndpointAddrGRPC, logger, svc, c.SecretKey)
	if err != nil {
		app.Close()
		return nil, err
	}

	return app, nil
}

func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// initRealtime picks the Redis backend when an address is configured and
// the in-process one otherwise.
func (app *App) initRealtime(ctx context.Context) (realtime.Broker, realtime.Registry, error) {
	if app.config.RedisAddr == "" {
		b := realtime.NewMemoryBroker(realtime.DefaultBufferSize, app.logger)
		app.closers = append(app.closers, b.Close)
		app.logger.Info(ctx, "realtime backend", "kind", "memory")
		return b, realtime.NewMemoryRegistry(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         app.config.RedisAddr,
		Password:     app.config.RedisPassword,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("redis ping %s: %w", app.config.RedisAddr, err)
	}
	app.closers = append(app.closers, client.Close)
	app.logger.Info(ctx, "realtime backend", "kind", "redis", "address", app.config.RedisAddr)

	return realtime.NewRedisBroker(client, app.logger), realtime.NewRedisRegistry(client, app.config.PresenceTTL), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Close releases the resources opened by NewApp, newest first.
func (app *App) Close() {
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i](); err != nil {
			app.logger.Warn(context.Background(), "close failed", "error", err)
		}
	}
	app.closers = nil
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.Close()
	app.logger.Info(ctx, "App stopped")
}
