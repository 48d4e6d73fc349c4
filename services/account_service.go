package services

import (
	"context"
	"fmt"
	"lost-found/auth"
	"lost-found/domain"
	"lost-found/errors"
	"lost-found/repositories"
)

type IAccountService interface {
	Signup(ctx context.Context, username, email, password string) (domain.User, error)
	Login(ctx context.Context, username, password string) (domain.User, error)
}

type AccountService struct {
	users repositories.IUserRepository
}

func NewAccountService(users repositories.IUserRepository) IAccountService {
	return &AccountService{users: users}
}

// Signup checks the account rules before any hashing or store round trip.
func (s *AccountService) Signup(ctx context.Context, username, email, password string) (domain.User, error) {
	err := auth.ValidateSignup(auth.SignupRequest{Username: username, Email: email, Password: password})
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %v", errors.ErrInvalidSignup, err)
	}
	return s.users.CreateUser(ctx, username, email, password)
}

// Login never tells an unknown user from a wrong password.
func (s *AccountService) Login(ctx context.Context, username, password string) (domain.User, error) {
	user := s.users.GetUserByUsername(ctx, username)
	if user == nil {
		return domain.User{}, errors.ErrInvalidCredentials
	}
	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return domain.User{}, errors.ErrInvalidCredentials
	}
	return *user, nil
}
