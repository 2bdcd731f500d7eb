package service

import (
	"context"
	"fmt"

	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/dto"
	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/model"
	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/repository"
)

type ReviewService struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo}
}

// Upsert keeps at most one review per email: a resubmission replaces
// comment and rating in place, a first submission inserts the document.
func (s *ReviewService) Upsert(ctx context.Context, email string, req dto.UpsertReviewRequest) (*dto.UpsertResult, error) {
	existing, err := s.reviewRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}

	if existing != nil {
		res, err := s.reviewRepo.Replace(ctx, email, req.Comment, req.Rating)
		if err != nil {
			return nil, fmt.Errorf("replace review: %w", err)
		}
		return &dto.UpsertResult{Update: true, Result: res}, nil
	}

	review := &model.Review{
		Email:   email,
		Name:    req.Name,
		Image:   req.Image,
		Comment: req.Comment,
		Rating:  req.Rating,
	}
	res, err := s.reviewRepo.Insert(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}
	return &dto.UpsertResult{Success: true, Result: res}, nil
}

func (s *ReviewService) GetByEmail(ctx context.Context, email string) (*model.Review, error) {
	return s.reviewRepo.GetByEmail(ctx, email)
}

func (s *ReviewService) List(ctx context.Context) ([]model.Review, error) {
	return s.reviewRepo.List(ctx)
}
