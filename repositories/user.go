//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"lost-found/auth"
	"lost-found/bridge"
	"lost-found/domain"
	"lost-found/errors"
	"lost-found/remote"
	"time"
)

// IUserRepository resolves usernames to accounts. GetUserByUsername is the
// identity lookup shared by every interactor.
type IUserRepository interface {
	GetUserByUsername(ctx context.Context, username string) *domain.User
	CreateUser(ctx context.Context, username, email, password string) (domain.User, error)
	RenameUser(ctx context.Context, oldUsername, newUsername string) error
}

type UserRepository struct {
	store             remote.Store
	log               *slog.Logger
	deadline          time.Duration
	multiStepDeadline time.Duration
	now               func() time.Time
}

func NewUserRepository(store remote.Store, log *slog.Logger, deadline, multiStepDeadline time.Duration) *UserRepository {
	return &UserRepository{
		store:             store,
		log:               log,
		deadline:          deadline,
		multiStepDeadline: multiStepDeadline,
		now:               time.Now,
	}
}

func (u *UserRepository) op(name string, deadline time.Duration) bridge.Op {
	return bridge.Op{Name: "user." + name, Deadline: deadline, Log: u.log}
}

// GetUserByUsername returns nil when the user is unknown or the store did not answer.
func (u *UserRepository) GetUserByUsername(ctx context.Context, username string) *domain.User {
	if !validSegment(username) {
		return nil
	}
	snapshot, err := bridge.ReadOnce(ctx, u.store, u.op("getUserByUsername", u.deadline), remote.Join(usersPath, username))
	if err != nil {
		u.log.Warn("User lookup failed", "username", username, "error", err)
		return nil
	}
	user, err := decodeUser(snapshot)
	if err != nil {
		return nil
	}
	return &user
}

// CreateUser hashes the password and stores the account, refusing to replace
// an existing one. Its read and write share the multi-step budget.
func (u *UserRepository) CreateUser(ctx context.Context, username, email, password string) (domain.User, error) {
	if !validSegment(username) {
		return domain.User{}, fmt.Errorf("%w: %q", errors.ErrInvalidUsername, username)
	}
	ctx, cancel := context.WithTimeout(ctx, u.multiStepDeadline)
	defer cancel()

	path := remote.Join(usersPath, username)
	existing, err := bridge.ReadOnce(ctx, u.store, u.op("createUser.read", u.multiStepDeadline), path)
	if err != nil {
		return domain.User{}, fmt.Errorf("checking username: %w", budgetError(err))
	}
	if existing.Exists() {
		return domain.User{}, errors.ErrUserAlreadyExists
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hashing failed: %w", err)
	}
	user := domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    u.now().UTC().Truncate(time.Millisecond),
	}
	if err = bridge.Write(ctx, u.store, u.op("createUser.write", u.multiStepDeadline), path, encodeUser(user)); err != nil {
		return domain.User{}, fmt.Errorf("storing user: %w", budgetError(err))
	}
	u.log.Info("User created", "username", username)
	return user, nil
}

// RenameUser moves users/{old} to users/{new}: one read of the users node,
// then one multi-path update. Both steps share the multi-step budget.
func (u *UserRepository) RenameUser(ctx context.Context, oldUsername, newUsername string) error {
	if !validSegment(oldUsername) || !validSegment(newUsername) {
		return fmt.Errorf("%w: %q -> %q", errors.ErrInvalidUsername, oldUsername, newUsername)
	}
	ctx, cancel := context.WithTimeout(ctx, u.multiStepDeadline)
	defer cancel()

	users, err := bridge.ReadOnce(ctx, u.store, u.op("renameUser.read", u.multiStepDeadline), usersPath)
	if err != nil {
		return fmt.Errorf("reading users: %w", budgetError(err))
	}
	user, err := decodeUser(users.Child(oldUsername))
	if err != nil {
		return fmt.Errorf("user %q: %w", oldUsername, err)
	}
	if users.Child(newUsername).Exists() {
		return errors.ErrUserAlreadyExists
	}

	user.Username = newUsername
	err = bridge.Update(ctx, u.store, u.op("renameUser.update", u.multiStepDeadline), map[string]any{
		remote.Join(usersPath, newUsername): encodeUser(user),
		remote.Join(usersPath, oldUsername): nil,
	})
	if err != nil {
		return fmt.Errorf("moving user: %w", budgetError(err))
	}
	u.log.Info("User renamed", "from", oldUsername, "to", newUsername)
	return nil
}

// budgetError reports an exhausted multi-step budget as a timeout.
func budgetError(err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.ErrTimeout
	}
	return err
}
