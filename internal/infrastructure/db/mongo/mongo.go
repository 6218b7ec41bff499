package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	appName        = "empuls-server"
	connectTimeout = 10 * time.Second
	defaultTimeout = 10 * time.Second
)

type Config struct {
	URI      string
	Database string
	// MaxPool caps the driver's connection pool; zero keeps the driver default.
	MaxPool uint64
	Timeout time.Duration
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return connectTimeout
	}
	return c.Timeout
}

// clientOptions pins the stable API (strict) so a query relying on a
// removed operator fails loudly instead of drifting with the server version.
func (c Config) clientOptions() *options.ClientOptions {
	api := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(c.URI).
		SetServerAPIOptions(api).
		SetAppName(appName).
		SetTimeout(c.timeout())
	if c.MaxPool > 0 {
		opts.SetMaxPoolSize(c.MaxPool)
	}
	return opts
}

// Connect dials the cluster, pings it and hands back the client together
// with the Empuls database. The client is disconnected again if the ping fails.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	if cfg.Database == "" {
		return nil, nil, fmt.Errorf("mongo: database name is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout())
	defer cancel()

	client, err := mongo.Connect(ctx, cfg.clientOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, client.Database(cfg.Database), nil
}
