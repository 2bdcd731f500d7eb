package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/dto"
	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/model"
	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/repository"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// Place applies the upsert-or-merge policy: the pair (email, productId)
// identifies the order. First purchase inserts the document as-is;
// a repeat purchase while the order is unpaid sums orderQuantity and
// orderCost onto the existing document instead of creating a second one.
//
// The lookup and the write are two separate store round-trips with no
// transaction between them; two concurrent submissions for the same pair
// can lose one of the increments.
func (s *OrderService) Place(ctx context.Context, req dto.PlaceOrderRequest) (*dto.UpsertResult, error) {
	existing, err := s.orderRepo.FindOpen(ctx, req.Email, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("find open order: %w", err)
	}

	if existing != nil {
		res, err := s.orderRepo.SetQuantities(ctx, req.Email, req.ProductID,
			existing.OrderQuantity+req.OrderQuantity,
			existing.OrderCost+req.OrderCost,
		)
		if err != nil {
			return nil, fmt.Errorf("merge order: %w", err)
		}
		return &dto.UpsertResult{Update: true, Result: res}, nil
	}

	order := &model.Order{
		Email:         req.Email,
		ProductID:     req.ProductID,
		ProductName:   req.ProductName,
		OrderQuantity: req.OrderQuantity,
		OrderCost:     req.OrderCost,
		Address:       req.Address,
		Phone:         req.Phone,
	}
	res, err := s.orderRepo.Insert(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return &dto.UpsertResult{Success: true, Result: res}, nil
}

func (s *OrderService) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *OrderService) ListByEmail(ctx context.Context, email string) ([]model.Order, error) {
	return s.orderRepo.ListByEmail(ctx, email)
}

func (s *OrderService) ListAll(ctx context.Context) ([]model.Order, error) {
	return s.orderRepo.ListAll(ctx)
}

func (s *OrderService) Count(ctx context.Context) (int64, error) {
	return s.orderRepo.Count(ctx)
}

// MarkShift flags an order for the delivery shift. Orthogonal to the
// paid/cancelled lifecycle.
func (s *OrderService) MarkShift(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	return s.orderRepo.MarkShift(ctx, id)
}

func (s *OrderService) Cancel(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	res, err := s.orderRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cancel order: %w", err)
	}
	if res.DeletedCount == 0 {
		return nil, ErrOrderNotFound
	}
	return res, nil
}
