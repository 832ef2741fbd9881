package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"securereport/internal/adapters/memory"
	"securereport/internal/domain"
	"securereport/internal/ports"
)

func newTestService() *Service {
	return New(memory.New(), "test-secret", time.Hour)
}

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)
	assert.True(t, VerifyPassword("hunter2hunter2", hash))
	assert.False(t, VerifyPassword("wrong", hash))
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "Ana@Example.com", "contrasena123")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.NotEmpty(t, u.ID)

	token, err := svc.Login(ctx, "ana@example.com", "contrasena123")
	require.NoError(t, err)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.Sub)
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "not-an-email", "contrasena123")
	_, ok := domain.AsValidation(err)
	assert.True(t, ok)

	_, err = svc.Register(ctx, "ana@example.com", "short")
	_, ok = domain.AsValidation(err)
	assert.True(t, ok)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "ana@example.com", "contrasena123")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "ANA@example.com", "contrasena123")
	assert.ErrorIs(t, err, ports.ErrEmailTaken)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Login(ctx, "nobody@example.com", "whatever123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Register(ctx, "ana@example.com", "contrasena123")
	require.NoError(t, err)
	_, err = svc.Login(ctx, "ana@example.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := newTestService().IssueToken("user-1")
	require.NoError(t, err)

	other := New(memory.New(), "other-secret", time.Hour)
	_, err = other.VerifyToken(token)
	assert.Error(t, err)
}
