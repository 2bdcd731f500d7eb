package dto

// --- Order ---

type PlaceOrderRequest struct {
	Email         string  `json:"email" binding:"required,email"`
	ProductID     string  `json:"productId" binding:"required"`
	ProductName   string  `json:"productName"`
	OrderQuantity float64 `json:"orderQuantity" binding:"required,gt=0"`
	OrderCost     float64 `json:"orderCost" binding:"required,gt=0"`
	Address       string  `json:"address"`
	Phone         string  `json:"phone"`
}

type ConfirmOrderRequest struct {
	TransactionID string  `json:"transactionId" binding:"required"`
	Email         string  `json:"email"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
}

type OrdersCountResponse struct {
	Orders int64 `json:"orders"`
}

// UpsertResult is the response envelope shared by the order and review
// submission endpoints: exactly one of Success (fresh insert) or Update
// (merged into an existing document) is set, and Result carries the raw
// store outcome.
type UpsertResult struct {
	Success bool `json:"success,omitempty"`
	Update  bool `json:"update,omitempty"`
	Result  any  `json:"result"`
}

// --- Sensor ---

type CreateSensorRequest struct {
	Name              string  `json:"name" binding:"required"`
	Image             string  `json:"image"`
	Description       string  `json:"description"`
	Price             float64 `json:"price" binding:"required,gt=0"`
	MinimumQuantity   float64 `json:"minimumQuantity"`
	AvailableQuantity float64 `json:"availableQuantity" binding:"required,gte=0"`
}

// UpdateSensorQuantityRequest sets availableQuantity to the given value.
// The field name is part of the wire contract; clients already send it
// spelled this way.
type UpdateSensorQuantityRequest struct {
	RemaniningQuantity float64 `json:"remaniningQuantity" binding:"gte=0"`
}

// --- User ---

type UpsertUserRequest struct {
	Name      string `json:"name"`
	Education string `json:"education"`
	Location  string `json:"location"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedIn"`
}

type UpsertUserResponse struct {
	Result any    `json:"result"`
	Token  string `json:"token"`
}

type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}

type UsersCountResponse struct {
	UsersNumber int64 `json:"usersNumber"`
}

// --- Review ---

type UpsertReviewRequest struct {
	Name    string  `json:"name"`
	Image   string  `json:"image"`
	Comment string  `json:"comment" binding:"required"`
	Rating  float64 `json:"rating" binding:"required,gte=1,lte=5"`
}

// --- Payment ---

type CreatePaymentIntentRequest struct {
	OrderCost float64 `json:"orderCost" binding:"required,gt=0"`
}

type CreatePaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
