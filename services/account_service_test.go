package services_test

import (
	"context"
	"lost-found/auth"
	"lost-found/domain"
	"lost-found/errors"
	"lost-found/mocks"
	"lost-found/services"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAccountService_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := services.NewAccountService(mockRepo)
	ctx := context.Background()

	t.Run("should sign up when input is valid", func(t *testing.T) {
		req := require.New(t)
		expected := domain.User{Username: "alice", Email: "alice@example.com"}

		mockRepo.EXPECT().
			CreateUser(ctx, "alice", "alice@example.com", "ComplexPass123!").
			Return(expected, nil).
			Times(1)

		user, err := svc.Signup(ctx, "alice", "alice@example.com", "ComplexPass123!")

		req.NoError(err)
		req.Equal(expected, user)
	})

	t.Run("should fail before the store when password is weak", func(t *testing.T) {
		req := require.New(t)

		// A mock without expectations fails on any repository call
		untouched := services.NewAccountService(mocks.NewMockIUserRepository(gomock.NewController(t)))

		_, err := untouched.Signup(ctx, "alice", "alice@example.com", "simple")

		req.ErrorIs(err, errors.ErrInvalidSignup)
	})

	t.Run("should fail when username is taken", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			CreateUser(ctx, "bob", "bob@example.com", "ComplexPass123!").
			Return(domain.User{}, errors.ErrUserAlreadyExists).
			Times(1)

		_, err := svc.Signup(ctx, "bob", "bob@example.com", "ComplexPass123!")

		req.ErrorIs(err, errors.ErrUserAlreadyExists)
	})
}

func TestAccountService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := services.NewAccountService(mockRepo)
	ctx := context.Background()
	hash, err := auth.HashPassword("CorrectPassword123!")
	require.NoError(t, err)
	stored := &domain.User{Username: "alice", PasswordHash: hash}

	t.Run("should login with correct credentials", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().GetUserByUsername(ctx, "alice").Return(stored).Times(1)

		user, err := svc.Login(ctx, "alice", "CorrectPassword123!")

		req.NoError(err)
		req.Equal(*stored, user)
	})

	t.Run("should return invalid credentials on wrong password", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().GetUserByUsername(ctx, "alice").Return(stored).Times(1)

		_, err := svc.Login(ctx, "alice", "WrongPassword123!")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should return invalid credentials when user is unknown", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().GetUserByUsername(ctx, "nobody").Return(nil).Times(1)

		_, err := svc.Login(ctx, "nobody", "anyPassword")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})
}
