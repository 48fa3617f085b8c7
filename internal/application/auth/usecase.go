package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mluiza/controle-materiais/internal/application/dto"
	"github.com/mluiza/controle-materiais/internal/domain"
	"github.com/mluiza/controle-materiais/internal/domain/entity"
	"github.com/mluiza/controle-materiais/internal/domain/repository"
	"github.com/mluiza/controle-materiais/pkg/jwt"
)

// AdminUsername usuario creado al arrancar cuando no hay ninguno.
const AdminUsername = "admin"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// dummyHash se compara cuando el usuario no existe, para que ambos fallos tarden lo mismo.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("controle-materiais"), bcrypt.DefaultCost)

// AuthUseCase casos de uso de autenticación: login y alta de usuarios.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica usuario/contraseña y emite un JWT con username y nombre visible.
// Usuario inexistente y contraseña incorrecta devuelven el mismo domain.ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, user.DisplayName, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:       token,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		ExpiresIn:   uc.jwtCfg.ExpMinutes * 60,
	}, nil
}

// CreateUser hashea la contraseña con bcrypt y persiste. Username existente devuelve domain.ErrDuplicate.
func (uc *AuthUseCase) CreateUser(ctx context.Context, username, password, displayName string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	if displayName == "" {
		displayName = username
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{Username: username, PasswordHash: string(hash), DisplayName: displayName}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// EnsureAdmin crea "admin" si la tabla de usuarios está vacía y hay contraseña configurada.
// Devuelve true si lo creó.
func (uc *AuthUseCase) EnsureAdmin(ctx context.Context, password string) (bool, error) {
	if password == "" {
		return false, nil
	}
	n, err := uc.userRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if _, err := uc.CreateUser(ctx, AdminUsername, password, "Administrador"); err != nil {
		return false, err
	}
	return true, nil
}
