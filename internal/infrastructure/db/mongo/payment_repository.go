package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
)

// PaymentRepository implements ports.PaymentRepository. Uniqueness per
// (email, month, year) is enforced by the uniq_email_period index.
type PaymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{coll: db.Collection(collectionSalary)}
}

type mongoPayment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Email      string             `bson:"email"`
	Name       string             `bson:"name"`
	EmployeeID string             `bson:"employeeId"`
	Salary     float64            `bson:"salary"`
	Month      string             `bson:"month"`
	Year       int                `bson:"year"`
	PaidBy     string             `bson:"paidBy,omitempty"`
	PaidAt     time.Time          `bson:"paidAt"`
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.PaymentRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPayment{
		ID:         primitive.NewObjectID(),
		Email:      p.Email,
		Name:       p.Name,
		EmployeeID: p.EmployeeID,
		Salary:     p.Salary,
		Month:      p.Month,
		Year:       p.Year,
		PaidBy:     p.PaidBy,
		PaidAt:     p.PaidAt.UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyPaid
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	p.ID = doc.ID.Hex()
	return nil
}

func (r *PaymentRepository) List(ctx context.Context, email string) ([]*domain.PaymentRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	var docs []mongoPayment
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}

	out := make([]*domain.PaymentRecord, len(docs))
	for i, d := range docs {
		out[i] = &domain.PaymentRecord{
			ID:         d.ID.Hex(),
			Email:      d.Email,
			Name:       d.Name,
			EmployeeID: d.EmployeeID,
			Salary:     d.Salary,
			Month:      d.Month,
			Year:       d.Year,
			PaidBy:     d.PaidBy,
			PaidAt:     d.PaidAt,
		}
	}
	return out, nil
}
