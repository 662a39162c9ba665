package context

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dtroode/homestock-server/internal/model"
)

func TestManager_SetAndGetClaims(t *testing.T) {
	t.Parallel()

	m := NewManager()
	claims := model.Claims{UserID: uuid.New(), Role: model.RoleAdmin, ExpiresAt: time.Now().Add(time.Hour)}

	ctx := m.SetClaimsToContext(context.Background(), claims)
	got, ok := m.GetClaimsFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, claims, got)
}

func TestManager_GetClaims_Missing(t *testing.T) {
	t.Parallel()

	m := NewManager()

	got, ok := m.GetClaimsFromContext(context.Background())

	assert.False(t, ok)
	assert.Equal(t, model.Claims{}, got)
}

func TestManager_SetClaims_Overrides(t *testing.T) {
	t.Parallel()

	m := NewManager()
	first := model.Claims{UserID: uuid.New(), Role: model.RoleUser}
	second := model.Claims{UserID: uuid.New(), Role: model.RoleAdmin}

	ctx := m.SetClaimsToContext(context.Background(), first)
	ctx = m.SetClaimsToContext(ctx, second)
	got, ok := m.GetClaimsFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, second, got)
}
