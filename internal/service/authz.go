package service

import (
	"context"
	"fmt"

	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/model"
	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/repository"
)

// AuthzService answers "does this identity hold this role" against the
// stored user document. An absent user is a denial, not an error.
type AuthzService struct {
	userRepo repository.UserRepository
}

func NewAuthzService(userRepo repository.UserRepository) *AuthzService {
	return &AuthzService{userRepo: userRepo}
}

func (s *AuthzService) HasRole(ctx context.Context, email, role string) (bool, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("lookup role: %w", err)
	}
	if user == nil {
		return false, nil
	}
	return user.Role == role, nil
}

func (s *AuthzService) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.HasRole(ctx, email, model.RoleAdmin)
}
