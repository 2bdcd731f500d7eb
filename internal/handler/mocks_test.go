package handler

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/model"
)

type memOrderRepo struct {
	mu     sync.Mutex
	orders map[primitive.ObjectID]*model.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[primitive.ObjectID]*model.Order)}
}

func (m *memOrderRepo) FindOpen(_ context.Context, email, productID string) (*model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.Email == email && o.ProductID == productID && !o.Paid {
			clone := *o
			return &clone, nil
		}
	}
	return nil, nil
}

func (m *memOrderRepo) Insert(_ context.Context, order *model.Order) (*mongo.InsertOneResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order.ID = primitive.NewObjectID()
	m.orders[order.ID] = order
	return &mongo.InsertOneResult{InsertedID: order.ID}, nil
}

func (m *memOrderRepo) SetQuantities(_ context.Context, email, productID string, quantity, cost float64) (*mongo.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.Email == email && o.ProductID == productID && !o.Paid {
			o.OrderQuantity = quantity
			o.OrderCost = cost
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (m *memOrderRepo) GetByID(_ context.Context, id primitive.ObjectID) (*model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.orders[id]; ok {
		clone := *o
		return &clone, nil
	}
	return nil, nil
}

func (m *memOrderRepo) ListByEmail(_ context.Context, email string) ([]model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var orders []model.Order
	for _, o := range m.orders {
		if o.Email == email {
			orders = append(orders, *o)
		}
	}
	return orders, nil
}

func (m *memOrderRepo) ListAll(_ context.Context) ([]model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var orders []model.Order
	for _, o := range m.orders {
		orders = append(orders, *o)
	}
	return orders, nil
}

func (m *memOrderRepo) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.orders)), nil
}

func (m *memOrderRepo) MarkPaid(_ context.Context, id primitive.ObjectID, transactionID string) (*mongo.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.orders[id]; ok {
		o.Paid = true
		o.TransactionID = transactionID
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return &mongo.UpdateResult{}, nil
}

func (m *memOrderRepo) MarkShift(_ context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.orders[id]; ok {
		o.Shift = true
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return &mongo.UpdateResult{}, nil
}

func (m *memOrderRepo) Delete(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[id]; ok {
		delete(m.orders, id)
		return &mongo.DeleteResult{DeletedCount: 1}, nil
	}
	return &mongo.DeleteResult{}, nil
}

type memSensorRepo struct {
	mu      sync.Mutex
	sensors map[primitive.ObjectID]*model.Sensor
}

func newMemSensorRepo() *memSensorRepo {
	return &memSensorRepo{sensors: make(map[primitive.ObjectID]*model.Sensor)}
}

func (m *memSensorRepo) List(_ context.Context) ([]model.Sensor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var sensors []model.Sensor
	for _, s := range m.sensors {
		sensors = append(sensors, *s)
	}
	return sensors, nil
}

func (m *memSensorRepo) GetByID(_ context.Context, id primitive.ObjectID) (*model.Sensor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sensors[id]; ok {
		clone := *s
		return &clone, nil
	}
	return nil, nil
}

func (m *memSensorRepo) Insert(_ context.Context, sensor *model.Sensor) (*mongo.InsertOneResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sensor.ID = primitive.NewObjectID()
	m.sensors[sensor.ID] = sensor
	return &mongo.InsertOneResult{InsertedID: sensor.ID}, nil
}

func (m *memSensorRepo) SetAvailableQuantity(_ context.Context, id primitive.ObjectID, quantity float64) (*mongo.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sensors[id]; ok {
		s.AvailableQuantity = quantity
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return &mongo.UpdateResult{}, nil
}

func (m *memSensorRepo) Delete(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sensors[id]; ok {
		delete(m.sensors, id)
		return &mongo.DeleteResult{DeletedCount: 1}, nil
	}
	return &mongo.DeleteResult{}, nil
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*model.User)}
}

func (m *memUserRepo) Upsert(_ context.Context, email string, user *model.User) (*mongo.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.users[email]; ok {
		if user.Name != "" {
			existing.Name = user.Name
		}
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	user.ID = primitive.NewObjectID()
	user.Email = email
	m.users[email] = user
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: user.ID}, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[email]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, nil
}

func (m *memUserRepo) SetRole(_ context.Context, email, role string) (*mongo.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[email]; ok {
		u.Role = role
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return &mongo.UpdateResult{}, nil
}

func (m *memUserRepo) List(_ context.Context) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var users []model.User
	for _, u := range m.users {
		users = append(users, *u)
	}
	return users, nil
}

func (m *memUserRepo) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

type memPaymentRepo struct {
	mu      sync.Mutex
	entries []model.Payment
}

func (m *memPaymentRepo) Append(_ context.Context, p *model.Payment) (*mongo.InsertOneResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = primitive.NewObjectID()
	m.entries = append(m.entries, *p)
	return &mongo.InsertOneResult{InsertedID: p.ID}, nil
}

func (m *memPaymentRepo) List(_ context.Context) ([]model.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries, nil
}
