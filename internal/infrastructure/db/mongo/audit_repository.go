package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
)

// AuditRepository persists administrative actions to the audit_log collection.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(collectionAudit)}
}

func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	at := entry.At
	if at.IsZero() {
		at = time.Now()
	}
	doc := bson.M{
		"action":    entry.Action,
		"actor":     entry.Actor,
		"target_id": entry.TargetID,
		"at":        at.UTC(),
	}
	if len(entry.Details) > 0 {
		doc["details"] = entry.Details
	}

	_, err := r.coll.InsertOne(ctx, doc)
	return err
}
