package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"weathervane/internal/domain"
	"weathervane/internal/repository/ports"
	"weathervane/internal/util"
)

var (
	ErrDuplicateUser = errors.New("user with that username already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrUserInvalid   = errors.New("username and password are required")
)

// UserService owns the credential lifecycle: registration, the digest-based
// password check, password rotation, and deletion.
type UserService struct {
	users ports.UserRepository
	log   *zap.SugaredLogger
}

func NewUserService(users ports.UserRepository, log *zap.SugaredLogger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) Create(ctx context.Context, username, password string) (*domain.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, ErrUserInvalid
	}

	salt, err := util.DigestSalt()
	if err != nil {
		return nil, err
	}
	digest := util.Digest(password, salt)

	authHash, authSalt, err := util.DerivePassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, username, salt, digest, authHash, authSalt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	s.log.Infow("user created", "username", username, "id", user.ID)
	return user, nil
}

// CheckPassword recomputes the salted digest for the candidate password and
// compares it to the stored one. An unknown username is not an error; it
// simply verifies as false.
func (s *UserService) CheckPassword(ctx context.Context, username, candidate string) (bool, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return util.DigestEqual(util.Digest(candidate, user.Salt), user.PasswordHash), nil
}

func (s *UserService) UpdatePassword(ctx context.Context, username, newPassword string) error {
	if newPassword == "" {
		return ErrUserInvalid
	}

	salt, err := util.DigestSalt()
	if err != nil {
		return err
	}
	digest := util.Digest(newPassword, salt)

	authHash, authSalt, err := util.DerivePassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, username, salt, digest, authHash, authSalt); err != nil {
		if isNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	s.log.Infow("password updated", "username", username)
	return nil
}

func (s *UserService) Delete(ctx context.Context, username string) error {
	if err := s.users.Delete(ctx, username); err != nil {
		if isNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	s.log.Infow("user deleted", "username", username)
	return nil
}
