package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/multicurrency-wallet/pkg/appdata"
	"github.com/chris/multicurrency-wallet/pkg/config"
	"github.com/chris/multicurrency-wallet/pkg/handlers"
	"github.com/chris/multicurrency-wallet/pkg/scheduler"
	"github.com/chris/multicurrency-wallet/pkg/seed"
	"github.com/chris/multicurrency-wallet/pkg/storage"
	"github.com/chris/multicurrency-wallet/pkg/toast"
	"github.com/chris/multicurrency-wallet/pkg/transfer"
	"github.com/chris/multicurrency-wallet/pkg/websockets"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP and websocket server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	cfg, err := config.Load(slog.Default())
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	backend, closeBackend, err := openBackend(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Driver, err)
	}
	defer closeBackend()

	store, err := storage.New(ctx, backend, storage.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer store.Close()

	initial, err := seed.Load(time.Now())
	if err != nil {
		return err
	}
	state := appdata.New(ctx, store, initial)
	defer state.Close()

	hub := websockets.NewHub(logger)
	cancelWatch := state.Watch(func(key string, value any) {
		msg := websockets.Message{
			Type:    websockets.MessageTypeStorageChange,
			Payload: websockets.StorageChangePayload{Key: key, Value: value},
		}
		if err := hub.Publish(context.Background(), msg); err != nil {
			logger.Error("failed to broadcast storage change", "key", key, "error", err)
		}
	})
	defer cancelWatch()

	sched, err := newScheduler(ctx, cfg, state, logger)
	if err != nil {
		return err
	}

	notifier := toast.NewNotifier(hub, logger)
	sessions := transfer.NewSessions(sched, cfg.TransferDelay)
	handler := handlers.NewApiHandler(state, sessions, notifier, hub, logger, cfg.IsDevelopment())

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "port", cfg.HTTPPort, "store", cfg.Driver, "scheduler", cfg.Scheduler)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newScheduler(ctx context.Context, cfg *config.Config, state *appdata.State, logger *slog.Logger) (scheduler.Scheduler, error) {
	if cfg.Scheduler != config.SchedulerSQS {
		return scheduler.NewLocal(state, logger), nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return scheduler.NewSQSScheduler(sqs.NewFromConfig(awsCfg), cfg.QueueURL), nil
}
