package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/model"
)

type ReviewRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.Review, error)
	Insert(ctx context.Context, review *model.Review) (*mongo.InsertOneResult, error)
	Replace(ctx context.Context, email, comment string, rating float64) (*mongo.UpdateResult, error)
	List(ctx context.Context) ([]model.Review, error)
}

type mongoReviewRepo struct{ coll *mongo.Collection }

func NewReviewRepository(db *mongo.Database) ReviewRepository {
	return &mongoReviewRepo{coll: db.Collection(reviewsCollection)}
}

func (r *mongoReviewRepo) GetByEmail(ctx context.Context, email string) (*model.Review, error) {
	review := &model.Review{}
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get review by email: %w", err)
	}
	return review, nil
}

func (r *mongoReviewRepo) Insert(ctx context.Context, review *model.Review) (*mongo.InsertOneResult, error) {
	res, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}
	return res, nil
}

// Replace overwrites comment and rating on the reviewer's document and
// leaves every other field as stored.
func (r *mongoReviewRepo) Replace(ctx context.Context, email, comment string, rating float64) (*mongo.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"comment": comment, "rating": rating}},
	)
	if err != nil {
		return nil, fmt.Errorf("replace review: %w", err)
	}
	return res, nil
}

func (r *mongoReviewRepo) List(ctx context.Context) ([]model.Review, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	var reviews []model.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}
