package service

import (
	"context"
	"errors"
	"time"

	"weathervane/internal/repository/ports"
	"weathervane/internal/util"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService is the login entry point. It verifies against the stored argon2
// hash, independent of UserService.CheckPassword, and never reveals whether
// the username existed.
type AuthService struct {
	users ports.UserRepository
	jwt   *util.JWTManager
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users: users,
		jwt:   util.NewJWTManager(jwtSecret, tokenTTL),
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if isNotFound(err) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !util.VerifyPassword(password, user.AuthSalt, user.AuthHash) {
		return "", ErrInvalidCredentials
	}

	token, _, err := s.jwt.Generate(user.ID, user.Username)
	if err != nil {
		return "", err
	}
	return token, nil
}
