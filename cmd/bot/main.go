package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/slack-greet-bot/internal/cache"
	"github.com/diegoclair/slack-greet-bot/internal/config"
	"github.com/diegoclair/slack-greet-bot/internal/database"
	"github.com/diegoclair/slack-greet-bot/internal/domain/contract"
	"github.com/diegoclair/slack-greet-bot/internal/domain/service"
	"github.com/diegoclair/slack-greet-bot/internal/handlers"
	"github.com/diegoclair/slack-greet-bot/internal/holiday"
	"github.com/diegoclair/slack-greet-bot/internal/logger"
	"github.com/diegoclair/slack-greet-bot/internal/sheet"
	"github.com/diegoclair/slack-greet-bot/internal/slackapi"
	"github.com/diegoclair/slack-greet-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	shutdownTimeout   = 10 * time.Second
	holidayAPITimeout = 10 * time.Second
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, zl); err != nil {
		zl.Error("bot stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, zl *zap.Logger) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	store, closeStore, err := newCache(ctx, cfg.Cache, zl)
	if err != nil {
		return err
	}
	defer closeStore()

	var slackOpts []slack.Option
	if cfg.UseSocketMode() {
		slackOpts = append(slackOpts, slack.OptionAppLevelToken(cfg.Slack.AppToken))
	}
	api := slack.New(cfg.Slack.BotToken, slackOpts...)

	limiter := rate.NewLimiter(rate.Limit(cfg.Slack.UpdateRPS), cfg.Slack.UpdateBurst)
	slackClient := slackapi.New(api, store, limiter, zl.Named("slack"))

	botUserID, err := slackClient.BotUserID(ctx)
	if err != nil {
		return err
	}
	zl.Info("authenticated with slack", zap.String("bot_user_id", botUserID))

	values, err := sheet.NewValuesService(ctx, cfg.Sheet.APIKey)
	if err != nil {
		return err
	}
	roster := sheet.NewRoster(values, store, cfg.Sheet.SpreadsheetID, loc, zl.Named("sheet"))

	calendar := holiday.New(&http.Client{Timeout: holidayAPITimeout}, cfg.Calendar.HolidayAPIURL, store, loc, zl.Named("holiday"))

	svc, err := service.New(service.Dependencies{
		Directory: slackClient,
		Reactions: slackClient,
		Roster:    roster,
		Holidays:  calendar,
		Messenger: slackClient,
		BotUserID: botUserID,
		Location:  loc,
		Schedule: service.Schedule{
			Channels:  cfg.Schedule.Channels,
			StartCron: cfg.Schedule.StartCron,
			EndCron:   cfg.Schedule.EndCron,
		},
		Logger: zl.Named("greet"),
	})
	if err != nil {
		return err
	}

	handler := handlers.New(svc.Greet, cfg.Slack.SigningSecret, zl.Named("http"))

	go svc.Scheduler.Run(ctx)

	if cfg.UseSocketMode() {
		socket := handlers.NewSocketMode(api, handler, zl.Named("socket"))
		go func() {
			if err := socket.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				zl.Error("socket mode stopped", zap.Error(err))
			}
		}()
	}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		zl.Info("server starting", zap.String("port", cfg.Server.Port), zap.Bool("socket_mode", cfg.UseSocketMode()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zl.Warn("server shutdown failed", zap.Error(err))
	}
	handler.Wait()

	return nil
}

// newCache opens the cache backend selected by the config. The returned
// func releases it.
func newCache(ctx context.Context, cfg config.CacheConfig, zl *zap.Logger) (contract.Cache, func(), error) {
	if cfg.Driver != "sqlite" {
		return cache.NewMemory(), func() {}, nil
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}

	zl.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	store := cache.NewSQLite(db)
	go store.RunJanitor(ctx, cfg.PurgeEvery, zl.Named("cache"))

	return store, func() { _ = db.Close() }, nil
}
