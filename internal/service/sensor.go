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

var ErrSensorNotFound = errors.New("sensor not found")

type SensorService struct {
	sensorRepo repository.SensorRepository
}

func NewSensorService(sensorRepo repository.SensorRepository) *SensorService {
	return &SensorService{sensorRepo: sensorRepo}
}

func (s *SensorService) List(ctx context.Context) ([]model.Sensor, error) {
	return s.sensorRepo.List(ctx)
}

func (s *SensorService) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Sensor, error) {
	return s.sensorRepo.GetByID(ctx, id)
}

func (s *SensorService) Create(ctx context.Context, req dto.CreateSensorRequest) (*mongo.InsertOneResult, error) {
	sensor := &model.Sensor{
		Name:              req.Name,
		Image:             req.Image,
		Description:       req.Description,
		Price:             req.Price,
		MinimumQuantity:   req.MinimumQuantity,
		AvailableQuantity: req.AvailableQuantity,
	}
	res, err := s.sensorRepo.Insert(ctx, sensor)
	if err != nil {
		return nil, fmt.Errorf("create sensor: %w", err)
	}
	return res, nil
}

// SetQuantity overwrites availableQuantity with the submitted remaining
// value. Last writer wins; a purchase racing with a restock is resolved
// by whichever write lands second.
func (s *SensorService) SetQuantity(ctx context.Context, id primitive.ObjectID, quantity float64) (*mongo.UpdateResult, error) {
	res, err := s.sensorRepo.SetAvailableQuantity(ctx, id, quantity)
	if err != nil {
		return nil, fmt.Errorf("set sensor quantity: %w", err)
	}
	return res, nil
}

func (s *SensorService) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	res, err := s.sensorRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete sensor: %w", err)
	}
	if res.DeletedCount == 0 {
		return nil, ErrSensorNotFound
	}
	return res, nil
}
