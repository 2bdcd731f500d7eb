package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/model"
)

func TestAuthzService_IsAdmin(t *testing.T) {
	repo := newMockUserRepo()
	repo.users["admin@x.com"] = &model.User{Email: "admin@x.com", Role: model.RoleAdmin}
	repo.users["user@x.com"] = &model.User{Email: "user@x.com"}

	svc := NewAuthzService(repo)

	isAdmin, err := svc.IsAdmin(context.Background(), "admin@x.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = svc.IsAdmin(context.Background(), "user@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestAuthzService_IsAdmin_AbsentUserIsDenied(t *testing.T) {
	svc := NewAuthzService(newMockUserRepo())

	isAdmin, err := svc.IsAdmin(context.Background(), "ghost@x.com")
	require.NoError(t, err, "an unknown user is a denial, not an error")
	assert.False(t, isAdmin)
}
