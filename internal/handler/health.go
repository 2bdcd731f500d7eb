package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type HealthHandler struct {
	mongoClient *mongo.Client
}

func NewHealthHandler(mongoClient *mongo.Client) *HealthHandler {
	return &HealthHandler{mongoClient: mongoClient}
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "response successfully sent")
}

func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *HealthHandler) Readyz(c *gin.Context) {
	if err := h.mongoClient.Ping(c.Request.Context(), readpref.Primary()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "mongo": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "mongo": "connected"})
}
