package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/model"
)

type UserRepository interface {
	Upsert(ctx context.Context, email string, user *model.User) (*mongo.UpdateResult, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	SetRole(ctx context.Context, email, role string) (*mongo.UpdateResult, error)
	List(ctx context.Context) ([]model.User, error)
	Count(ctx context.Context) (int64, error)
}

type mongoUserRepo struct{ coll *mongo.Collection }

func NewUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepo{coll: db.Collection(usersCollection)}
}

// Upsert writes the profile fields for the email, creating the document
// on first login. The role field is never touched here; promotion goes
// through SetRole.
func (r *mongoUserRepo) Upsert(ctx context.Context, email string, user *model.User) (*mongo.UpdateResult, error) {
	set := bson.M{"email": email}
	if user.Name != "" {
		set["name"] = user.Name
	}
	if user.Education != "" {
		set["education"] = user.Education
	}
	if user.Location != "" {
		set["location"] = user.Location
	}
	if user.Phone != "" {
		set["phone"] = user.Phone
	}
	if user.LinkedIn != "" {
		set["linkedIn"] = user.LinkedIn
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return res, nil
}

func (r *mongoUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

func (r *mongoUserRepo) SetRole(ctx context.Context, email, role string) (*mongo.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		return nil, fmt.Errorf("set user role: %w", err)
	}
	return res, nil
}

func (r *mongoUserRepo) List(ctx context.Context) ([]model.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	var users []model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *mongoUserRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
