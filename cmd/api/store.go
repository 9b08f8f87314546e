package main

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"eventattendance/config"
	"eventattendance/internal/domain"
	"eventattendance/internal/repository/mongodb"
	"eventattendance/internal/repository/postgres"
)

// store bundles the repositories of the configured backend.
type store struct {
	users        domain.UserRepository
	workspaces   domain.WorkspaceRepository
	events       domain.EventRepository
	profiles     domain.ProfileRepository
	participants domain.ParticipantRepository
	ping         func(ctx context.Context) error
	close        func()
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*store, error) {
	switch cfg.StoreBackend {
	case "mongo":
		client, err := mongodb.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.MongoDB)
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		logger.Info("connected to mongodb", "database", cfg.MongoDB)
		return &store{
			users:        mongodb.NewUserRepository(db),
			workspaces:   mongodb.NewWorkspaceRepository(db),
			events:       mongodb.NewEventRepository(db),
			profiles:     mongodb.NewProfileRepository(db),
			participants: mongodb.NewParticipantRepository(db),
			ping: func(ctx context.Context) error {
				return client.Ping(ctx, readpref.Primary())
			},
			close: func() {
				if err := client.Disconnect(context.Background()); err != nil {
					logger.Warn("mongo disconnect", "err", err)
				}
			},
		}, nil
	case "postgres":
		db, err := postgres.Open(ctx, cfg.DBDriver, cfg.DBUrl)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		logger.Info("connected to postgres", "driver", cfg.DBDriver)
		return &store{
			users:        postgres.NewUserRepository(db),
			workspaces:   postgres.NewWorkspaceRepository(db),
			events:       postgres.NewEventRepository(db),
			profiles:     postgres.NewProfileRepository(db),
			participants: postgres.NewParticipantRepository(db),
			ping:         db.PingContext,
			close: func() {
				if err := db.Close(); err != nil {
					logger.Warn("postgres close", "err", err)
				}
			},
		}, nil
	}
	return nil, fmt.Errorf("unsupported store backend %q", cfg.StoreBackend)
}
