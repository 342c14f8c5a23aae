// Package app assembles the bot: database, event bus, module routers,
// notifier, webhook server, and scheduler.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"

	"github.com/ultimate-atpl/study-battle-bot/app/ingress"
	"github.com/ultimate-atpl/study-battle-bot/app/jobs"
	leaderboardservice "github.com/ultimate-atpl/study-battle-bot/app/modules/leaderboard/application"
	leaderboardrouter "github.com/ultimate-atpl/study-battle-bot/app/modules/leaderboard/infrastructure/router"
	privilegeservice "github.com/ultimate-atpl/study-battle-bot/app/modules/privilege/application"
	privilegerouter "github.com/ultimate-atpl/study-battle-bot/app/modules/privilege/infrastructure/router"
	scoreservice "github.com/ultimate-atpl/study-battle-bot/app/modules/score/application"
	scorehandlers "github.com/ultimate-atpl/study-battle-bot/app/modules/score/infrastructure/handlers"
	scorerouter "github.com/ultimate-atpl/study-battle-bot/app/modules/score/infrastructure/router"
	userservice "github.com/ultimate-atpl/study-battle-bot/app/modules/user/application"
	userrouter "github.com/ultimate-atpl/study-battle-bot/app/modules/user/infrastructure/router"
	"github.com/ultimate-atpl/study-battle-bot/app/notifier"
	"github.com/ultimate-atpl/study-battle-bot/app/notifier/telegram"
	"github.com/ultimate-atpl/study-battle-bot/config"
	"github.com/ultimate-atpl/study-battle-bot/db/bundb"
	"github.com/ultimate-atpl/study-battle-bot/internal/eventbus"
	"github.com/ultimate-atpl/study-battle-bot/internal/observability/opmetrics"
	"github.com/ultimate-atpl/study-battle-bot/internal/session"
)

const metricsNamespace = "studybattle"

// App owns every long-lived component of the bot process.
type App struct {
	cfg    *config.Config
	logger *slog.Logger

	db        *bundb.DBService
	bus       *eventbus.EventBus
	router    *message.Router
	server    *ingress.Server
	scheduler *jobs.Service
}

// Initialize builds and wires all components. Nothing is started yet.
func (app *App) Initialize(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	app.cfg = cfg
	app.logger = logger

	tracer := otel.Tracer("study-battle-bot")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	handlerMetrics := opmetrics.NewHandlerPrometheus(registry, metricsNamespace)

	dbService, err := bundb.NewBunDBService(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database service: %w", err)
	}
	app.db = dbService

	bus, err := eventbus.New(ctx, cfg.NATS.URL, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize event bus: %w", err)
	}
	app.bus = bus

	router, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create watermill router: %w", err)
	}
	router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
	)
	app.router = router

	chatSession := session.New()

	// Services. The user service doubles as the registration gate for
	// score updates and as the name resolver for attribution texts.
	userSvc := userservice.NewUserService(
		dbService.UserDB, logger,
		opmetrics.NewPrometheus(registry, metricsNamespace, "user"), tracer,
	)
	scoreSvc := scoreservice.NewScoreService(
		dbService.ScoreDB, logger,
		opmetrics.NewPrometheus(registry, metricsNamespace, "score"), tracer,
	)
	leaderboardSvc := leaderboardservice.NewLeaderboardService(
		dbService.LeaderboardDB, chatSession, logger,
		opmetrics.NewPrometheus(registry, metricsNamespace, "leaderboard"), tracer,
		cfg.Bot.LeaderboardSize, cfg.Bot.MaxLeaderboardSize,
	)
	privilegeSvc := privilegeservice.NewPrivilegeService(
		dbService.PrivilegeDB, userSvc, logger,
		opmetrics.NewPrometheus(registry, metricsNamespace, "privilege"), tracer,
	)

	// Module routers.
	if err := userrouter.NewUserRouter(logger, router, bus, tracer, handlerMetrics).
		Configure(ctx, userSvc); err != nil {
		return fmt.Errorf("failed to configure user module: %w", err)
	}
	scoreH := scorehandlers.NewScoreHandlers(scoreSvc, userSvc, leaderboardSvc, logger, tracer)
	if err := scorerouter.NewScoreRouter(logger, router, bus, tracer, handlerMetrics).
		Configure(ctx, scoreH); err != nil {
		return fmt.Errorf("failed to configure score module: %w", err)
	}
	if err := leaderboardrouter.NewLeaderboardRouter(logger, router, bus, tracer, handlerMetrics).
		Configure(ctx, leaderboardSvc); err != nil {
		return fmt.Errorf("failed to configure leaderboard module: %w", err)
	}
	if err := privilegerouter.NewPrivilegeRouter(logger, router, bus, tracer, handlerMetrics).
		Configure(ctx, privilegeSvc); err != nil {
		return fmt.Errorf("failed to configure privilege module: %w", err)
	}

	// Outbound edge.
	sender := telegram.New(cfg.Telegram.BotToken, cfg.Telegram.APIBaseURL)
	notifier.New(sender, chatSession, logger, tracer).Configure(router, bus)

	// Inbound edge.
	parser := ingress.NewParser(bus, chatSession, cfg, logger, tracer)
	app.server = ingress.NewServer(cfg.HTTP.ListenAddress, parser, cfg.Telegram.WebhookSecret, registry, logger)

	// Scheduled work.
	exporter := jobs.NewStatsExporter(scoreSvc, cfg.Export.Directory)
	scheduler, err := jobs.NewService(ctx, cfg, bus, exporter, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize scheduler: %w", err)
	}
	app.scheduler = scheduler

	logger.InfoContext(ctx, "Application initialized")
	return nil
}

// Run starts every component and blocks until ctx is canceled or a
// component fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 3)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.router.Run(ctx); err != nil {
			errCh <- fmt.Errorf("watermill router: %w", err)
		}
	}()

	// The router must be running before consumers get traffic.
	select {
	case <-app.router.Running():
	case <-ctx.Done():
		wg.Wait()
		return ctx.Err()
	}

	if err := app.scheduler.Start(ctx); err != nil {
		cancel()
		wg.Wait()
		return err
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Start(); err != nil {
			errCh <- fmt.Errorf("webhook server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
		cancel()
	}

	app.shutdown()
	wg.Wait()
	return runErr
}

// shutdown stops components in reverse dependency order.
func (app *App) shutdown() {
	ctx := context.Background()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("Error shutting down webhook server", slog.Any("error", err))
	}
	if err := app.scheduler.Stop(ctx); err != nil {
		app.logger.Error("Error stopping scheduler", slog.Any("error", err))
	}
	if err := app.router.Close(); err != nil {
		app.logger.Error("Error closing watermill router", slog.Any("error", err))
	}
	if err := app.bus.Close(); err != nil {
		app.logger.Error("Error closing event bus", slog.Any("error", err))
	}
	if err := app.db.GetDB().Close(); err != nil {
		app.logger.Error("Error closing database", slog.Any("error", err))
	}
	app.logger.Info("Application shut down")
}
