package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/model"
)

// PaymentRepository is an append-only log. There is no dedup on
// transactionId; replayed confirmations produce duplicate entries.
type PaymentRepository interface {
	Append(ctx context.Context, payment *model.Payment) (*mongo.InsertOneResult, error)
	List(ctx context.Context) ([]model.Payment, error)
}

type mongoPaymentRepo struct{ coll *mongo.Collection }

func NewPaymentRepository(db *mongo.Database) PaymentRepository {
	return &mongoPaymentRepo{coll: db.Collection(paymentsCollection)}
}

func (r *mongoPaymentRepo) Append(ctx context.Context, payment *model.Payment) (*mongo.InsertOneResult, error) {
	res, err := r.coll.InsertOne(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("append payment: %w", err)
	}
	return res, nil
}

func (r *mongoPaymentRepo) List(ctx context.Context) ([]model.Payment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	var payments []model.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	return payments, nil
}
