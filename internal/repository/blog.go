package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/model"
)

// BlogRepository is read-only; blog documents are seeded out of band.
type BlogRepository interface {
	List(ctx context.Context) ([]model.Blog, error)
}

type mongoBlogRepo struct{ coll *mongo.Collection }

func NewBlogRepository(db *mongo.Database) BlogRepository {
	return &mongoBlogRepo{coll: db.Collection(blogsCollection)}
}

func (r *mongoBlogRepo) List(ctx context.Context) ([]model.Blog, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	var blogs []model.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("decode blogs: %w", err)
	}
	return blogs, nil
}
