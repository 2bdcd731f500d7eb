package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/dto"
	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/model"
	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
	auth     *AuthService
}

func NewUserService(userRepo repository.UserRepository, auth *AuthService) *UserService {
	return &UserService{userRepo: userRepo, auth: auth}
}

// Upsert is the login flow: the profile is written by email and a fresh
// bearer token is minted for the caller. Role is left untouched, so a
// returning admin keeps the role and a new user has none.
func (s *UserService) Upsert(ctx context.Context, email string, req dto.UpsertUserRequest) (*dto.UpsertUserResponse, error) {
	user := &model.User{
		Email:     email,
		Name:      req.Name,
		Education: req.Education,
		Location:  req.Location,
		Phone:     req.Phone,
		LinkedIn:  req.LinkedIn,
	}
	res, err := s.userRepo.Upsert(ctx, email, user)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	token, err := s.auth.IssueToken(email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &dto.UpsertUserResponse{Result: res, Token: token}, nil
}

// Promote sets role=admin on the target user. Re-promoting an admin is a
// no-op in effect.
func (s *UserService) Promote(ctx context.Context, email string) (*mongo.UpdateResult, error) {
	res, err := s.userRepo.SetRole(ctx, email, model.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("promote user: %w", err)
	}
	return res, nil
}

func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("get user: %w", err)
	}
	return user != nil && user.Role == model.RoleAdmin, nil
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.userRepo.Count(ctx)
}
