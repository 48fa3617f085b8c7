package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mluiza/controle-materiais/internal/application/auth"
	"github.com/mluiza/controle-materiais/internal/domain"
	"github.com/mluiza/controle-materiais/internal/infrastructure/memory"
	"github.com/mluiza/controle-materiais/pkg/jwt"
)

const secret = "test-secret"

func newUseCase() *auth.AuthUseCase {
	repos := memory.New().Repositories()
	return auth.NewAuthUseCase(repos.Users, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "test"})
}

func TestLogin_OK(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()
	_, err := uc.CreateUser(ctx, "maria", "s3nha", "Maria Luiza")
	require.NoError(t, err)

	out, err := uc.Login(ctx, "maria", "s3nha")
	require.NoError(t, err)
	assert.Equal(t, "Maria Luiza", out.DisplayName)
	assert.Equal(t, 3600, out.ExpiresIn)

	username, display, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "maria", username)
	assert.Equal(t, "Maria Luiza", display)
}

func TestLogin_FallosIndistinguibles(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()
	_, err := uc.CreateUser(ctx, "maria", "s3nha", "")
	require.NoError(t, err)

	_, errWrongPass := uc.Login(ctx, "maria", "otra")
	_, errUnknown := uc.Login(ctx, "joao", "s3nha")
	assert.ErrorIs(t, errWrongPass, domain.ErrUnauthorized)
	assert.ErrorIs(t, errUnknown, domain.ErrUnauthorized)
	assert.Equal(t, errWrongPass.Error(), errUnknown.Error())
}

func TestCreateUser_Duplicado(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()
	_, err := uc.CreateUser(ctx, "maria", "a", "")
	require.NoError(t, err)
	_, err = uc.CreateUser(ctx, "maria", "b", "")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	created, err := uc.EnsureAdmin(ctx, "")
	require.NoError(t, err)
	assert.False(t, created, "sin contraseña no se crea")

	created, err = uc.EnsureAdmin(ctx, "admin123")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = uc.EnsureAdmin(ctx, "admin123")
	require.NoError(t, err)
	assert.False(t, created, "solo con la tabla vacía")

	_, err = uc.Login(ctx, auth.AdminUsername, "admin123")
	assert.NoError(t, err)
}
