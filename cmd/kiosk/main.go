// Command kiosk runs a terminal check-in station for one event. Barcode and QR
// scanners act as keyboards: each scanned ID arrives as a line on stdin.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"eventattendance/config"
	"eventattendance/internal/adapters/apiclient"
	"eventattendance/internal/adapters/checkinqueue"
	"eventattendance/internal/adapters/connectivity"
	"eventattendance/internal/domain"
	"eventattendance/internal/metrics"
	"eventattendance/internal/services"
)

func main() {
	cfg, err := config.LoadKiosk()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	// Logs go to stderr so they do not interleave with the check-in prompt.
	logger := config.NewLoggerTo(os.Stderr, cfg.Environment, os.Getenv("LOG_LEVEL"))

	if err := run(cfg, logger); err != nil {
		logger.Error("kiosk stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.KioskConfig, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	queue, closeQueue, err := openQueue(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeQueue()

	client := apiclient.New(cfg.APIURL, cfg.APIToken, &http.Client{Timeout: cfg.RequestTimeout})
	monitor := connectivity.NewMonitor(client, cfg.ProbeInterval, logger)
	monitor.Start(ctx)

	station := services.NewCheckInStation(services.StationConfig{
		WorkspaceID:       cfg.WorkspaceID,
		EventID:           cfg.EventID,
		MaxReplayAttempts: cfg.MaxReplayAttempts,
	}, client, queue, monitor, logger, metrics.New(prometheus.NewRegistry()))

	go func() {
		if err := station.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("station loop stopped", "err", err)
		}
	}()

	logger.Info("check-in station ready", "event_id", cfg.EventID, "queue", cfg.QueueBackend, "online", monitor.Online())
	return newTerminal(station, os.Stdin, os.Stdout).run(ctx, stop)
}

func openQueue(ctx context.Context, cfg *config.KioskConfig, logger *slog.Logger) (domain.CheckInQueue, func(), error) {
	switch cfg.QueueBackend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		key := domain.StationQueueKey(cfg.WorkspaceID, cfg.EventID, cfg.StationID)
		return checkinqueue.NewRedis(rdb, key, logger), func() { rdb.Close() }, nil
	case "memory":
		return checkinqueue.NewMemory(), func() {}, nil
	default:
		q, err := checkinqueue.OpenSQLite(ctx, cfg.QueuePath, logger)
		if err != nil {
			return nil, nil, err
		}
		return q, func() { q.Close() }, nil
	}
}
