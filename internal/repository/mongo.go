package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	sensorsCollection  = "sensors"
	ordersCollection   = "orders"
	usersCollection    = "users"
	reviewsCollection  = "reviews"
	paymentsCollection = "payments"
	blogsCollection    = "blogs"
)

// Connect opens a client and verifies the deployment is reachable. The
// caller owns the client lifecycle and disconnects it on shutdown.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}
