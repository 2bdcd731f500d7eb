package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sensor is a catalog item. AvailableQuantity is overwritten by restock
// updates, never decremented in place.
type Sensor struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name              string             `bson:"name" json:"name"`
	Image             string             `bson:"image,omitempty" json:"image,omitempty"`
	Description       string             `bson:"description,omitempty" json:"description,omitempty"`
	Price             float64            `bson:"price" json:"price"`
	MinimumQuantity   float64            `bson:"minimumQuantity,omitempty" json:"minimumQuantity,omitempty"`
	AvailableQuantity float64            `bson:"availableQuantity" json:"availableQuantity"`
}

// Order is an open purchase for one (email, productId) pair. Repeat
// purchases for the same pair merge into the existing document until it
// is paid or cancelled.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	ProductID     string             `bson:"productId" json:"productId"`
	ProductName   string             `bson:"productName,omitempty" json:"productName,omitempty"`
	OrderQuantity float64            `bson:"orderQuantity" json:"orderQuantity"`
	OrderCost     float64            `bson:"orderCost" json:"orderCost"`
	Address       string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Paid          bool               `bson:"paid,omitempty" json:"paid,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Shift         bool               `bson:"shift,omitempty" json:"shift,omitempty"`
}

// User is keyed by email. Role is either absent or "admin".
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Education string             `bson:"education,omitempty" json:"education,omitempty"`
	Location  string             `bson:"location,omitempty" json:"location,omitempty"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	LinkedIn  string             `bson:"linkedIn,omitempty" json:"linkedIn,omitempty"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`
}

// Review is keyed by email; one document per reviewer.
type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email   string             `bson:"email" json:"email"`
	Name    string             `bson:"name,omitempty" json:"name,omitempty"`
	Image   string             `bson:"image,omitempty" json:"image,omitempty"`
	Comment string             `bson:"comment" json:"comment"`
	Rating  float64            `bson:"rating" json:"rating"`
}

// Payment is an append-only log entry for a fulfilled payment intent.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	OrderID       string             `bson:"orderId,omitempty" json:"orderId,omitempty"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Amount        float64            `bson:"amount,omitempty" json:"amount,omitempty"`
	Currency      string             `bson:"currency,omitempty" json:"currency,omitempty"`
}

// Blog is read-only through the API; documents are seeded out of band.
type Blog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Author      string             `bson:"author,omitempty" json:"author,omitempty"`
	PublishedAt string             `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
}

const RoleAdmin = "admin"
