// Package mongo contains the concrete implementation of the persistence
// layer backed by MongoDB collections.
package mongo

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"ideadrop/config"
	"ideadrop/internal/domain/lifecycle"
)

// Params defines the dependencies required to open the Mongo connection.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB with a bounded timeout and registers a
// disconnect hook. A store that cannot be reached is a fatal startup
// condition rather than something requests should hang on.
func New(params Params) (*mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(context.Background(), params.Config.Mongo.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().
		ApplyURI(params.Config.Mongo.URI).
		SetServerSelectionTimeout(params.Config.Mongo.ConnectTimeout))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongo")
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, errors.Wrap(err, "failed to ping mongo")
	}

	params.Logger.Info("Connected to MongoDB", slog.String("database", params.Config.Mongo.Database))

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			disconnectCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(client.Disconnect(disconnectCtx), "failed to disconnect mongo")
		},
	})

	return client.Database(params.Config.Mongo.Database), nil
}
