package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spec-kit/toy-store/internal/domain"
	"github.com/spec-kit/toy-store/internal/query"
)

// ErrNotFound reports a missing single-document lookup.
var ErrNotFound = errors.New("document not found")

// UpdateResult reports how many documents an ownership-filtered update
// touched. Zero matches covers both "no such id" and "owned by someone
// else"; the two are indistinguishable at this layer.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// ToyRepository defines persistence access for toys.
type ToyRepository interface {
	Find(ctx context.Context, d query.Descriptor) ([]domain.Toy, error)
	GetByID(ctx context.Context, id string) (*domain.Toy, error)
	Insert(ctx context.Context, toy *domain.Toy) error
	Update(ctx context.Context, id, ownerID string, toy *domain.Toy) (UpdateResult, error)
	Delete(ctx context.Context, id, ownerID string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type toyRepository struct {
	coll *mongo.Collection
}

// NewToyRepository returns a Mongo-backed implementation over the given
// collection.
func NewToyRepository(coll *mongo.Collection) ToyRepository {
	return &toyRepository{coll: coll}
}

func (r *toyRepository) Find(ctx context.Context, d query.Descriptor) ([]domain.Toy, error) {
	opts := options.Find().SetLimit(d.Limit).SetSkip(d.Skip)
	if d.Sort != "" {
		opts.SetSort(bson.D{{Key: d.Sort, Value: d.Dir}})
	}

	cursor, err := r.coll.Find(ctx, d.Filter, opts)
	if err != nil {
		return nil, err
	}
	toys := make([]domain.Toy, 0)
	if err := cursor.All(ctx, &toys); err != nil {
		return nil, err
	}
	return toys, nil
}

func (r *toyRepository) GetByID(ctx context.Context, id string) (*domain.Toy, error) {
	var toy domain.Toy
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&toy); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &toy, nil
}

func (r *toyRepository) Insert(ctx context.Context, toy *domain.Toy) error {
	stampNewToy(toy)
	_, err := r.coll.InsertOne(ctx, toy)
	return err
}

// Update executes the mutation filtered by both id and owner. A caller that
// does not own the document matches nothing and modifies nothing.
func (r *toyRepository) Update(ctx context.Context, id, ownerID string, toy *domain.Toy) (UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "user_id": ownerID},
		bson.M{"$set": updateFields(toy)},
	)
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *toyRepository) Delete(ctx context.Context, id, ownerID string) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "user_id": ownerID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *toyRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func stampNewToy(toy *domain.Toy) {
	if toy.ID == "" {
		toy.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	toy.CreatedAt = now
	toy.UpdatedAt = now
}

// updateFields is the $set document for an update. user_id is included: the
// owner re-asserts (or reassigns) it through their own update, which is the
// only path that can change it.
func updateFields(toy *domain.Toy) bson.M {
	return bson.M{
		"name":      toy.Name,
		"info":      toy.Info,
		"category":  toy.Category,
		"img_url":   toy.ImgURL,
		"price":     toy.Price,
		"user_id":   toy.OwnerID,
		"updatedAt": time.Now().UTC(),
	}
}
