package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/config"
	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/handler"
	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/middleware"
	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/payment"
	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/repository"
	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/service"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// MongoDB
	connectCtx, connectCancel := context.WithTimeout(ctx, cfg.Mongo.Timeout)
	defer connectCancel()

	mongoClient, err := repository.Connect(connectCtx, cfg.Mongo.URI)
	if err != nil {
		log.Error("connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()
	log.Info("connected to MongoDB")

	db := mongoClient.Database(cfg.Mongo.Database)

	// Repositories
	sensorRepo := repository.NewSensorRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	blogRepo := repository.NewBlogRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg.JWT.Secret, cfg.JWT.Expiration)
	authzSvc := service.NewAuthzService(userRepo)
	sensorSvc := service.NewSensorService(sensorRepo)
	orderSvc := service.NewOrderService(orderRepo)
	reviewSvc := service.NewReviewService(reviewRepo)
	userSvc := service.NewUserService(userRepo, authSvc)
	gateway := payment.NewClient(cfg.Payment.SecretKey, cfg.Payment.BaseURL)
	paymentSvc := service.NewPaymentService(gateway, paymentRepo, orderRepo)

	// Handlers
	sensorH := handler.NewSensorHandler(sensorSvc)
	orderH := handler.NewOrderHandler(orderSvc, paymentSvc)
	userH := handler.NewUserHandler(userSvc)
	reviewH := handler.NewReviewHandler(reviewSvc)
	blogH := handler.NewBlogHandler(blogRepo)
	paymentH := handler.NewPaymentHandler(paymentSvc)
	healthH := handler.NewHealthHandler(mongoClient)

	requireAuth := middleware.RequireAuth(authSvc)
	requireAdmin := middleware.RequireAdmin(authzSvc)

	// Router: routes are flat, matching the storefront clients.
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log))

	router.GET("/", healthH.Root)
	router.GET("/healthz", healthH.Healthz)
	router.GET("/readyz", healthH.Readyz)

	router.GET("/sensors", sensorH.List)
	router.GET("/sensor/:id", sensorH.GetByID)
	router.POST("/sensor", requireAuth, requireAdmin, sensorH.Create)
	router.PUT("/sensor/:id", sensorH.UpdateQuantity)
	router.DELETE("/sensor/:id", requireAuth, requireAdmin, sensorH.Delete)

	router.GET("/blogs", blogH.List)

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

	router.PUT("/review/:email", reviewH.Upsert)
	router.GET("/review/:email", reviewH.GetByEmail)
	router.GET("/reviews", reviewH.List)

	router.POST("/create-payment-intent", requireAuth, paymentH.CreateIntent)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}
	log.Info("server stopped")
}
