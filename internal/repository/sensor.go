package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/model"
)

type SensorRepository interface {
	List(ctx context.Context) ([]model.Sensor, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Sensor, error)
	Insert(ctx context.Context, sensor *model.Sensor) (*mongo.InsertOneResult, error)
	SetAvailableQuantity(ctx context.Context, id primitive.ObjectID, quantity float64) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type mongoSensorRepo struct{ coll *mongo.Collection }

func NewSensorRepository(db *mongo.Database) SensorRepository {
	return &mongoSensorRepo{coll: db.Collection(sensorsCollection)}
}

func (r *mongoSensorRepo) List(ctx context.Context) ([]model.Sensor, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list sensors: %w", err)
	}
	var sensors []model.Sensor
	if err := cursor.All(ctx, &sensors); err != nil {
		return nil, fmt.Errorf("decode sensors: %w", err)
	}
	return sensors, nil
}

func (r *mongoSensorRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Sensor, error) {
	sensor := &model.Sensor{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(sensor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sensor: %w", err)
	}
	return sensor, nil
}

func (r *mongoSensorRepo) Insert(ctx context.Context, sensor *model.Sensor) (*mongo.InsertOneResult, error) {
	res, err := r.coll.InsertOne(ctx, sensor)
	if err != nil {
		return nil, fmt.Errorf("insert sensor: %w", err)
	}
	return res, nil
}

// SetAvailableQuantity overwrites the stored quantity unconditionally.
// Last writer wins; there is no decrement path.
func (r *mongoSensorRepo) SetAvailableQuantity(ctx context.Context, id primitive.ObjectID, quantity float64) (*mongo.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"availableQuantity": quantity}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("set available quantity: %w", err)
	}
	return res, nil
}

func (r *mongoSensorRepo) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("delete sensor: %w", err)
	}
	return res, nil
}
