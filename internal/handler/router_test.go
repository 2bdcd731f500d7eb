package handler

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/middleware"
	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/payment"
	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/service"
)

type testApp struct {
	router     *gin.Engine
	auth       *service.AuthService
	orderRepo  *memOrderRepo
	sensorRepo *memSensorRepo
	userRepo   *memUserRepo
	payments   *memPaymentRepo
}

type stubGateway struct{}

func (stubGateway) CreateIntent(_ context.Context, amountCents int64, currency string) (*payment.Intent, error) {
	return &payment.Intent{
		ID:           "pi_test",
		ClientSecret: "pi_test_secret",
		Amount:       amountCents,
		Currency:     currency,
	}, nil
}

// newTestApp wires the handlers over in-memory repositories with the
// same route table the server uses.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	orderRepo := newMemOrderRepo()
	sensorRepo := newMemSensorRepo()
	userRepo := newMemUserRepo()
	paymentRepo := &memPaymentRepo{}

	authSvc := service.NewAuthService("test-secret", time.Hour)
	authzSvc := service.NewAuthzService(userRepo)
	sensorSvc := service.NewSensorService(sensorRepo)
	orderSvc := service.NewOrderService(orderRepo)
	userSvc := service.NewUserService(userRepo, authSvc)
	paymentSvc := service.NewPaymentService(stubGateway{}, paymentRepo, orderRepo)

	sensorH := NewSensorHandler(sensorSvc)
	orderH := NewOrderHandler(orderSvc, paymentSvc)
	userH := NewUserHandler(userSvc)
	paymentH := NewPaymentHandler(paymentSvc)

	requireAuth := middleware.RequireAuth(authSvc)
	requireAdmin := middleware.RequireAdmin(authzSvc)

	router := gin.New()
	router.GET("/sensors", sensorH.List)
	router.GET("/sensor/:id", sensorH.GetByID)
	router.POST("/sensor", requireAuth, requireAdmin, sensorH.Create)
	router.PUT("/sensor/:id", sensorH.UpdateQuantity)
	router.DELETE("/sensor/:id", requireAuth, requireAdmin, sensorH.Delete)

	router.POST("/order", orderH.Place)
	router.GET("/order/:id", requireAuth, orderH.GetByID)
	router.PATCH("/order/:id", requireAuth, orderH.Confirm)
	router.GET("/orders", requireAuth, orderH.ListMine)
	router.GET("/orders/count", orderH.Count)
	router.GET("/get/orders", requireAuth, requireAdmin, orderH.ListAll)
	router.PUT("/shift/order/:id", requireAuth, requireAdmin, orderH.Shift)
	router.DELETE("/cancel/order/:id", requireAuth, orderH.Cancel)

	router.PUT("/user/:email", userH.Upsert)
	router.GET("/users", requireAuth, userH.List)
	router.GET("/users/count", userH.Count)
	router.GET("/admin/:email", userH.AdminCheck)
	router.PATCH("/user/:email", requireAuth, requireAdmin, userH.Promote)

	router.POST("/create-payment-intent", requireAuth, paymentH.CreateIntent)

	return &testApp{
		router:     router,
		auth:       authSvc,
		orderRepo:  orderRepo,
		sensorRepo: sensorRepo,
		userRepo:   userRepo,
		payments:   paymentRepo,
	}
}
