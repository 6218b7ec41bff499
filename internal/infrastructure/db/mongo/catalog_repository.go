package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
)

// CatalogRepository reads the service and testimonial reference collections.
type CatalogRepository struct {
	services     *mongo.Collection
	testimonials *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{
		services:     db.Collection(collectionServices),
		testimonials: db.Collection(collectionTestimonials),
	}
}

func (r *CatalogRepository) ListServices(ctx context.Context) ([]domain.Document, error) {
	return listDocuments(ctx, r.services)
}

func (r *CatalogRepository) ListTestimonials(ctx context.Context) ([]domain.Document, error) {
	return listDocuments(ctx, r.testimonials)
}

func listDocuments(ctx context.Context, coll *mongo.Collection) ([]domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", coll.Name(), err)
	}
	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}

	out := make([]domain.Document, len(docs))
	for i, doc := range docs {
		if id, ok := doc["_id"]; ok {
			doc["_id"] = hexID(id)
		}
		out[i] = domain.Document(doc)
	}
	return out, nil
}

// MessageRepository implements ports.MessageRepository.
type MessageRepository struct {
	coll *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{coll: db.Collection(collectionMessages)}
}

type mongoMessage struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Email   string             `bson:"email"`
	Message string             `bson:"message"`
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoMessage{ID: primitive.NewObjectID(), Email: m.Email, Message: m.Message}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	m.ID = doc.ID.Hex()
	return nil
}

func (r *MessageRepository) List(ctx context.Context) ([]*domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	var docs []mongoMessage
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}

	out := make([]*domain.Message, len(docs))
	for i, d := range docs {
		out[i] = &domain.Message{ID: d.ID.Hex(), Email: d.Email, Message: d.Message}
	}
	return out, nil
}
