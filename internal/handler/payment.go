package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/dto"
	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/service"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
}

func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req dto.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clientSecret, err := h.paymentService.CreateIntent(c.Request.Context(), req.OrderCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.CreatePaymentIntentResponse{ClientSecret: clientSecret})
}
