package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/dto"
	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/model"
	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/payment"
	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/repository"
)

const paymentCurrency = "usd"

// PaymentGateway is the external processor surface PaymentService needs.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (*payment.Intent, error)
}

type PaymentService struct {
	gateway     PaymentGateway
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
}

func NewPaymentService(gateway PaymentGateway, paymentRepo repository.PaymentRepository, orderRepo repository.OrderRepository) *PaymentService {
	return &PaymentService{gateway: gateway, paymentRepo: paymentRepo, orderRepo: orderRepo}
}

// CreateIntent forwards the order total to the processor and returns the
// client secret the browser uses to complete the card flow. The total
// arrives in dollars and the processor wants integer cents.
func (s *PaymentService) CreateIntent(ctx context.Context, orderCost float64) (string, error) {
	cents := decimal.NewFromFloat(orderCost).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()

	intent, err := s.gateway.CreateIntent(ctx, cents, paymentCurrency)
	if err != nil {
		return "", fmt.Errorf("create intent: %w", err)
	}
	return intent.ClientSecret, nil
}

// ConfirmOrder records a completed payment: the payload is appended to
// the payment log, then the order is marked paid with the transaction id.
// The two writes are independent; a failure after the first leaves the
// payment logged without the order marked paid.
func (s *PaymentService) ConfirmOrder(ctx context.Context, orderID primitive.ObjectID, req dto.ConfirmOrderRequest) (*mongo.UpdateResult, error) {
	entry := &model.Payment{
		OrderID:       orderID.Hex(),
		Email:         req.Email,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		Currency:      req.Currency,
	}
	if _, err := s.paymentRepo.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("log payment: %w", err)
	}

	res, err := s.orderRepo.MarkPaid(ctx, orderID, req.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("mark order paid: %w", err)
	}
	return res, nil
}
