package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(collectionUsers)}
}

type mongoUser struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Email         string             `bson:"email"`
	Role          string             `bson:"role,omitempty"`
	Image         string             `bson:"image,omitempty"`
	BankAccountNo string             `bson:"bank_account_no,omitempty"`
	Salary        float64            `bson:"salary"`
	Designation   string             `bson:"designation,omitempty"`
	IsVerified    bool               `bson:"isVerified"`
	IsFired       bool               `bson:"isFired"`
}

func (mu *mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:            mu.ID.Hex(),
		Name:          mu.Name,
		Email:         mu.Email,
		Role:          mu.Role,
		Image:         mu.Image,
		BankAccountNo: mu.BankAccountNo,
		Salary:        mu.Salary,
		Designation:   mu.Designation,
		IsVerified:    mu.IsVerified,
		IsFired:       mu.IsFired,
	}
}

// CreateIfAbsent upserts on email with $setOnInsert, so concurrent signups for
// the same email produce exactly one document.
func (r *UserRepository) CreateIfAbsent(ctx context.Context, user *domain.User) (*domain.User, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	onInsert := bson.M{
		"name":       user.Name,
		"salary":     user.Salary,
		"isVerified": false,
		"isFired":    false,
	}
	for k, v := range map[string]string{
		"role":            user.Role,
		"image":           user.Image,
		"bank_account_no": user.BankAccountNo,
		"designation":     user.Designation,
	} {
		if v != "" {
			onInsert[k] = v
		}
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": user.Email},
		bson.M{"$setOnInsert": onInsert},
		options.Update().SetUpsert(true),
	)
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return nil, false, fmt.Errorf("upsert user: %w", err)
	}

	if err == nil && res.UpsertedCount == 1 {
		created := *user
		created.ID = hexID(res.UpsertedID)
		created.IsVerified, created.IsFired = false, false
		return &created, true, nil
	}

	existing, err := r.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	var docs []mongoUser
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]*domain.User, len(docs))
	for i := range docs {
		users[i] = docs[i].toDomain()
	}
	return users, nil
}

func (r *UserRepository) MarkVerified(ctx context.Context, id string) (*domain.User, error) {
	return r.set(ctx, id, bson.M{"isVerified": true})
}

func (r *UserRepository) MarkFired(ctx context.Context, id string) (*domain.User, error) {
	return r.set(ctx, id, bson.M{"isFired": true})
}

func (r *UserRepository) SetRole(ctx context.Context, id, role string) (*domain.User, error) {
	return r.set(ctx, id, bson.M{"role": role})
}

// RaiseSalary applies the new salary only when the stored salary is missing or
// not greater than it. When nothing matches, a second read distinguishes an
// unknown id from a rejected decrease.
func (r *UserRepository) RaiseSalary(ctx context.Context, id string, salary float64) (*domain.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"_id": oid,
		"$or": bson.A{
			bson.M{"salary": bson.M{"$lte": salary}},
			bson.M{"salary": bson.M{"$exists": false}},
			bson.M{"salary": nil},
		},
	}
	update := bson.M{"$set": bson.M{"salary": salary}}

	var mu mongoUser
	err = r.coll.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mu)
	if err == nil {
		return mu.toDomain(), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("update salary: %w", err)
	}

	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("count user: %w", err)
	}
	if n == 0 {
		return nil, domain.ErrUserNotFound
	}
	return nil, domain.ErrSalaryDecrease
}

// set is a strict update by id: an unknown id is reported, never upserted.
func (r *UserRepository) set(ctx context.Context, id string, fields bson.M) (*domain.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mu)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return mu.toDomain(), nil
}
