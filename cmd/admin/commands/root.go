package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"academyhub.app/server/common/id"
	"academyhub.app/server/common/logger"
	"academyhub.app/server/core/config"
	"academyhub.app/server/core/db"
	"academyhub.app/server/internal/queue"
	"academyhub.app/server/internal/service"
	"academyhub.app/server/internal/store"
)

// env holds the connections opened for a single command run.
type env struct {
	cfg      config.Config
	database *db.DB
	redis    *redis.Client
	producer queue.Producer
}

var current *env

func Execute() error {
	root := &cobra.Command{
		Use:           "academyhub-admin",
		Short:         "Operator tooling for the academyhub server",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.ServiceTypeAdmin)
			if err != nil {
				return err
			}
			logger.Setup(cfg)

			// Node 3 keeps CLI ids apart from the server and worker.
			if err := id.Init(3); err != nil {
				return fmt.Errorf("initializing id generator: %w", err)
			}

			database, err := db.New(cmd.Context(), cfg.DB)
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			current = &env{cfg: cfg, database: database}
			return nil
		},
	}

	root.AddCommand(migrateCmd(), rolesCmd(), verificationsCmd(), platformCmd(), sessionsCmd())
	defer func() { current.close() }()
	return root.ExecuteContext(context.Background())
}

func (e *env) stores() *store.Stores {
	return store.NewStores(e.database.Queries())
}

// services wires the same service graph as the server. Redis is only dialed
// when a command needs to enqueue email.
func (e *env) services(ctx context.Context, withQueue bool) (*service.Services, error) {
	deps := service.Deps{
		Stores:   e.stores(),
		TxRunner: service.NewTxRunner(e.database),
		Config:   e.cfg,
	}

	if withQueue {
		producer, err := e.emailProducer(ctx)
		if err != nil {
			return nil, err
		}
		deps.Producer = producer
	}

	return service.NewServices(deps), nil
}

func (e *env) emailProducer(ctx context.Context) (queue.Producer, error) {
	if e.producer != nil {
		return e.producer, nil
	}

	opts, err := redis.ParseURL(e.cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	e.redis = client
	e.producer = queue.NewRedisProducer(client, e.cfg.Redis.EmailStream, slog.Default())
	return e.producer, nil
}

func (e *env) close() {
	if e == nil {
		return
	}
	if e.producer != nil {
		_ = e.producer.Close()
	}
	if e.redis != nil {
		_ = e.redis.Close()
	}
	e.database.Close()
}
