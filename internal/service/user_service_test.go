package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"weathervane/internal/domain"
)

// fakeUserRepo is an in-memory stand-in for the postgres user repository. It
// reproduces the storage contract the services rely on: sql.ErrNoRows on
// misses and a pgconn unique violation on duplicate usernames.
type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID int64

	createErr error
	findErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, username, salt, passwordHash string, authHash, authSalt []byte) (*domain.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.users[username]; ok {
		return nil, &pgconn.PgError{Code: "23505"}
	}
	user := &domain.User{
		ID:           f.nextID,
		Username:     username,
		Salt:         salt,
		PasswordHash: passwordHash,
		AuthHash:     append([]byte(nil), authHash...),
		AuthSalt:     append([]byte(nil), authSalt...),
	}
	f.nextID++
	f.users[username] = user
	return user, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	user, ok := f.users[username]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, username, salt, passwordHash string, authHash, authSalt []byte) error {
	user, ok := f.users[username]
	if !ok {
		return sql.ErrNoRows
	}
	user.Salt = salt
	user.PasswordHash = passwordHash
	user.AuthHash = append([]byte(nil), authHash...)
	user.AuthSalt = append([]byte(nil), authSalt...)
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, username string) error {
	if _, ok := f.users[username]; !ok {
		return sql.ErrNoRows
	}
	delete(f.users, username)
	return nil
}

func newUserService(repo *fakeUserRepo) *UserService {
	return NewUserService(repo, zap.NewNop().Sugar())
}

func TestUserService_CreateAndCheckPassword(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	user, err := svc.Create(ctx, "alice", "correct_password")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned user id")
	}
	if user.Salt == "" || user.PasswordHash == "" {
		t.Fatalf("expected salt and digest to be stored")
	}
	if len(user.AuthHash) == 0 || len(user.AuthSalt) == 0 {
		t.Fatalf("expected login hash pair to be stored")
	}

	ok, err := svc.CheckPassword(ctx, "alice", "correct_password")
	if err != nil {
		t.Fatalf("CheckPassword returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected correct password to verify")
	}

	ok, err = svc.CheckPassword(ctx, "alice", "wrong_password")
	if err != nil {
		t.Fatalf("CheckPassword returned error: %v", err)
	}
	if ok {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestUserService_CheckPasswordUnknownUser(t *testing.T) {
	svc := newUserService(newFakeUserRepo())

	ok, err := svc.CheckPassword(context.Background(), "nobody", "whatever")
	if err != nil {
		t.Fatalf("expected no error for unknown username, got %v", err)
	}
	if ok {
		t.Fatalf("expected unknown username to verify as false")
	}
}

func TestUserService_CreateDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	if _, err := svc.Create(ctx, "alice", "pass-one"); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}
	if _, err := svc.Create(ctx, "alice", "pass-two"); err != ErrDuplicateUser {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one user record, got %d", len(repo.users))
	}
}

func TestUserService_CreateRequiresUsernameAndPassword(t *testing.T) {
	svc := newUserService(newFakeUserRepo())

	if _, err := svc.Create(context.Background(), "  ", "pass"); err != ErrUserInvalid {
		t.Fatalf("expected ErrUserInvalid for blank username, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "bob", ""); err != ErrUserInvalid {
		t.Fatalf("expected ErrUserInvalid for empty password, got %v", err)
	}
}

func TestUserService_UpdatePassword(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	if _, err := svc.Create(ctx, "alice", "old_password"); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	oldSalt := repo.users["alice"].Salt
	oldDigest := repo.users["alice"].PasswordHash

	if err := svc.UpdatePassword(ctx, "alice", "new_password"); err != nil {
		t.Fatalf("UpdatePassword returned error: %v", err)
	}
	if repo.users["alice"].Salt == oldSalt {
		t.Fatalf("expected salt to be regenerated")
	}
	if repo.users["alice"].PasswordHash == oldDigest {
		t.Fatalf("expected digest to change")
	}

	ok, err := svc.CheckPassword(ctx, "alice", "new_password")
	if err != nil {
		t.Fatalf("CheckPassword returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected new password to verify")
	}
	ok, _ = svc.CheckPassword(ctx, "alice", "old_password")
	if ok {
		t.Fatalf("expected old password to stop verifying")
	}
}

func TestUserService_UpdatePasswordUnknownUser(t *testing.T) {
	svc := newUserService(newFakeUserRepo())
	if err := svc.UpdatePassword(context.Background(), "nobody", "new_password"); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	if _, err := svc.Create(ctx, "alice", "correct_password"); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := svc.Delete(ctx, "alice"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatalf("expected user record to be removed")
	}
	if err := svc.Delete(ctx, "alice"); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}
