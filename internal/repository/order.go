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

type OrderRepository interface {
	FindOpen(ctx context.Context, email, productID string) (*model.Order, error)
	Insert(ctx context.Context, order *model.Order) (*mongo.InsertOneResult, error)
	SetQuantities(ctx context.Context, email, productID string, quantity, cost float64) (*mongo.UpdateResult, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error)
	ListByEmail(ctx context.Context, email string) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	Count(ctx context.Context) (int64, error)
	MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) (*mongo.UpdateResult, error)
	MarkShift(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type mongoOrderRepo struct{ coll *mongo.Collection }

func NewOrderRepository(db *mongo.Database) OrderRepository {
	return &mongoOrderRepo{coll: db.Collection(ordersCollection)}
}

// FindOpen returns the unpaid order for the (email, productId) pair, or
// nil when none exists. Paid orders are final and never merged into.
func (r *mongoOrderRepo) FindOpen(ctx context.Context, email, productID string) (*model.Order, error) {
	filter := bson.M{
		"email":     email,
		"productId": productID,
		"paid":      bson.M{"$ne": true},
	}
	order := &model.Order{}
	err := r.coll.FindOne(ctx, filter).Decode(order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find open order: %w", err)
	}
	return order, nil
}

func (r *mongoOrderRepo) Insert(ctx context.Context, order *model.Order) (*mongo.InsertOneResult, error) {
	res, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return res, nil
}

// SetQuantities overwrites orderQuantity and orderCost on the open order
// for the pair. Callers pass the already-summed totals; both fields are
// written in one update so quantity and cost cannot desync.
func (r *mongoOrderRepo) SetQuantities(ctx context.Context, email, productID string, quantity, cost float64) (*mongo.UpdateResult, error) {
	filter := bson.M{
		"email":     email,
		"productId": productID,
		"paid":      bson.M{"$ne": true},
	}
	update := bson.M{"$set": bson.M{
		"orderQuantity": quantity,
		"orderCost":     cost,
	}}
	res, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("merge order quantities: %w", err)
	}
	return res, nil
}

func (r *mongoOrderRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error) {
	order := &model.Order{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (r *mongoOrderRepo) ListByEmail(ctx context.Context, email string) ([]model.Order, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("list orders by email: %w", err)
	}
	var orders []model.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func (r *mongoOrderRepo) ListAll(ctx context.Context) ([]model.Order, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	var orders []model.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func (r *mongoOrderRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

func (r *mongoOrderRepo) MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) (*mongo.UpdateResult, error) {
	update := bson.M{"$set": bson.M{
		"paid":          true,
		"transactionId": transactionID,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("mark order paid: %w", err)
	}
	return res, nil
}

func (r *mongoOrderRepo) MarkShift(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"shift": true}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("mark order shift: %w", err)
	}
	return res, nil
}

func (r *mongoOrderRepo) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("delete order: %w", err)
	}
	return res, nil
}
