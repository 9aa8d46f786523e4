package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"academyhub.app/server/common/errtrack"
	"academyhub.app/server/common/id"
	"academyhub.app/server/common/logger"
	"academyhub.app/server/common/otel"
	"academyhub.app/server/core/config"
	"academyhub.app/server/core/db"
	"academyhub.app/server/internal/mailer"
	"academyhub.app/server/internal/queue"
	"academyhub.app/server/internal/store"
	"academyhub.app/server/internal/worker"
	"github.com/redis/go-redis/v9"
)

const maxAttempts = 3

func main() {
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeWorker)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n", banner)

	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)
	errtrack.Setup(cfg)
	defer errtrack.Flush()

	slog.InfoContext(ctx, "academyhub mail worker starting",
		"env", cfg.Env,
		"consumer_group", cfg.Redis.EmailGroup,
		"consumer_name", cfg.Redis.EmailConsumer)

	// Node 2 keeps worker ids apart from the server's.
	if err := id.Init(2); err != nil {
		slog.ErrorContext(ctx, "failed to initialize id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Redis.EmailStream)

	consumer, err := queue.NewRedisConsumer(redisClient, queue.ConsumerConfig{
		Stream:       cfg.Redis.EmailStream,
		Group:        cfg.Redis.EmailGroup,
		Consumer:     cfg.Redis.EmailConsumer,
		DLQStream:    cfg.Redis.EmailDLQStream,
		BatchSize:    10,
		Block:        5 * time.Second,
		MaxAttempts:  maxAttempts,
		RequeueDelay: time.Second,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create consumer", "error", err)
		os.Exit(1)
	}

	var m mailer.Mailer
	if cfg.SendGrid.Enabled() {
		m = mailer.NewSendGridMailer(cfg.SendGrid.APIKey, cfg.SendGrid.FromName, cfg.SendGrid.FromEmail)
		slog.InfoContext(ctx, "sendgrid mailer enabled", "from", cfg.SendGrid.FromEmail)
	} else {
		m = mailer.NewConsoleMailer()
		slog.WarnContext(ctx, "SENDGRID_API_KEY not set, emails are logged instead of sent")
	}

	stores := store.NewStores(database.Queries())
	processor := worker.NewMailProcessor(stores.Verifications(), stores.Users(), m, cfg.DashboardURL)

	w := worker.New(consumer, processor, worker.Config{
		MaxAttempts: maxAttempts,
	})

	reclaimer := worker.NewReclaimer(redisClient, worker.ReclaimerConfig{
		Stream:    cfg.Redis.EmailStream,
		Group:     cfg.Redis.EmailGroup,
		Consumer:  cfg.Redis.EmailConsumer + "-reclaimer",
		MinIdle:   5 * time.Minute,
		Interval:  1 * time.Minute,
		BatchSize: 10,
	}, consumer, w.HandleMessage)

	errCh := make(chan error, 2)
	go func() {
		errCh <- w.Run(ctx)
	}()
	go func() {
		reclaimer.Run(ctx)
		errCh <- nil
	}()

	slog.InfoContext(ctx, "worker initialized and running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down worker...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// Reclaimer first, it only claims; the worker may be mid-send.
	reclaimer.Stop()
	w.Stop()

wait:
	for range 2 {
		select {
		case <-shutdownCtx.Done():
			slog.WarnContext(ctx, "shutdown timeout exceeded")
			break wait
		case err := <-errCh:
			if err != nil {
				slog.ErrorContext(ctx, "worker error during shutdown", "error", err)
			}
		}
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(ctx, "worker shutdown complete")
}

const banner = `
███╗   ███╗ █████╗ ██╗██╗         ██╗    ██╗ ██████╗ ██████╗ ██╗  ██╗███████╗██████╗
████╗ ████║██╔══██╗██║██║         ██║    ██║██╔═══██╗██╔══██╗██║ ██╔╝██╔════╝██╔══██╗
██╔████╔██║███████║██║██║         ██║ █╗ ██║██║   ██║██████╔╝█████╔╝ █████╗  ██████╔╝
██║╚██╔╝██║██╔══██║██║██║         ██║███╗██║██║   ██║██╔══██╗██╔═██╗ ██╔══╝  ██╔══██╗
██║ ╚═╝ ██║██║  ██║██║███████╗    ╚███╔███╔╝╚██████╔╝██║  ██║██║  ██╗███████╗██║  ██║
╚═╝     ╚═╝╚═╝  ╚═╝╚═╝╚══════╝     ╚══╝╚══╝  ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝
`
