package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/dto"
	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/model"
	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/service"
)

type SensorHandler struct {
	sensorService *service.SensorService
}

func NewSensorHandler(sensorService *service.SensorService) *SensorHandler {
	return &SensorHandler{sensorService: sensorService}
}

func (h *SensorHandler) List(c *gin.Context) {
	sensors, err := h.sensorService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if sensors == nil {
		sensors = []model.Sensor{}
	}
	c.JSON(http.StatusOK, sensors)
}

// GetByID responds with an array holding the matching sensor, empty when
// absent. Storefront clients consume the list shape on this route.
func (h *SensorHandler) GetByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sensor ID"})
		return
	}

	sensor, err := h.sensorService.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	result := []model.Sensor{}
	if sensor != nil {
		result = append(result, *sensor)
	}
	c.JSON(http.StatusOK, result)
}

func (h *SensorHandler) Create(c *gin.Context) {
	var req dto.CreateSensorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.sensorService.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *SensorHandler) UpdateQuantity(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sensor ID"})
		return
	}

	var req dto.UpdateSensorQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.sensorService.SetQuantity(c.Request.Context(), id, req.RemaniningQuantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *SensorHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sensor ID"})
		return
	}

	res, err := h.sensorService.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSensorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "sensor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, res)
}
