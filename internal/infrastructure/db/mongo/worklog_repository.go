package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
)

// WorkLogRepository stores work entries as open documents: the free-form
// fields sit next to email and date at the top level.
type WorkLogRepository struct {
	coll *mongo.Collection
}

func NewWorkLogRepository(db *mongo.Database) *WorkLogRepository {
	return &WorkLogRepository{coll: db.Collection(collectionWork)}
}

func (r *WorkLogRepository) Create(ctx context.Context, e *domain.WorkLogEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id := primitive.NewObjectID()
	doc := bson.M{}
	for k, v := range e.Fields {
		doc[k] = v
	}
	doc["_id"] = id
	doc["email"] = e.Email
	doc["date"] = e.Date.UTC()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert work log: %w", err)
	}
	e.ID = id.Hex()
	return nil
}

func (r *WorkLogRepository) List(ctx context.Context, email string) ([]*domain.WorkLogEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list work logs: %w", err)
	}
	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode work logs: %w", err)
	}

	out := make([]*domain.WorkLogEntry, len(docs))
	for i, doc := range docs {
		out[i] = workLogFromDoc(doc)
	}
	return out, nil
}

func workLogFromDoc(doc bson.M) *domain.WorkLogEntry {
	e := &domain.WorkLogEntry{
		ID:     hexID(doc["_id"]),
		Fields: make(map[string]any, len(doc)),
	}
	e.Email, _ = doc["email"].(string)

	switch d := doc["date"].(type) {
	case primitive.DateTime:
		e.Date = d.Time().UTC()
	case string:
		// Entries written before dates were normalised.
		if t, err := time.Parse(time.RFC3339, d); err == nil {
			e.Date = t
		} else if t, err := time.Parse(time.DateOnly, d); err == nil {
			e.Date = t
		}
	}

	for k, v := range doc {
		switch k {
		case "_id", "email", "date":
			continue
		}
		e.Fields[k] = v
	}
	return e
}
