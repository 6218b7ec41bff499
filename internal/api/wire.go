package api

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/api/handler"
	mongodb "github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/infrastructure/db/mongo"
	redisdb "github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/infrastructure/db/redis"
)

// NewRepositories binds every repository to db and the idempotency store to rdb.
func NewRepositories(db *mongo.Database, rdb *redis.Client) Repositories {
	return Repositories{
		Users:       mongodb.NewUserRepository(db),
		Payments:    mongodb.NewPaymentRepository(db),
		WorkLogs:    mongodb.NewWorkLogRepository(db),
		Catalog:     mongodb.NewCatalogRepository(db),
		Messages:    mongodb.NewMessageRepository(db),
		Audit:       mongodb.NewAuditRepository(db),
		Idempotency: redisdb.NewIdempotencyStore(rdb),
	}
}

// HealthDependencies returns the readiness checks for MongoDB and Redis.
func HealthDependencies(db *mongo.Database, rdb *redis.Client) []handler.Dependency {
	return []handler.Dependency{
		{
			Name: "mongodb",
			Ping: func(ctx context.Context) error {
				return db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
			},
		},
		{
			Name: "redis",
			Ping: func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			},
		},
	}
}
