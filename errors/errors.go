package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrTimeout            = fmt.Errorf("remote operation timed out")
	ErrNotFound           = fmt.Errorf("no value at requested path")
	ErrInvalidPath        = fmt.Errorf("invalid store path")
	ErrStoreClosed        = fmt.Errorf("store is closed")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrInvalidUsername    = fmt.Errorf("invalid username")
	ErrMalformedRecord    = fmt.Errorf("malformed record")
	ErrEmptyWords         = fmt.Errorf("no words have been found")
	ErrOnlyCensoredFiles  = fmt.Errorf("censored directory contains directories")
	ErrInvalidPassword    = fmt.Errorf("password must mix upper, lower, digit and symbol")
	ErrInvalidHash        = fmt.Errorf("invalid password hash format")
	ErrInvalidPost        = fmt.Errorf("invalid post")
	ErrPostNotFound       = fmt.Errorf("post not found")
	ErrInvalidSignup      = fmt.Errorf("invalid signup")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
)

// RemoteError is a failure explicitly signaled by the store
// (permission denied, network failure, malformed request).
type RemoteError struct {
	Message string
	cause   error
}

func (e *RemoteError) Error() string {
	return "remote store error: " + e.Message
}

// NewRemoteError wraps a store failure, the cause stays reachable through errors.Is.
func NewRemoteError(err error) *RemoteError {
	if err == nil {
		return &RemoteError{Message: "unknown failure"}
	}
	var remote *RemoteError
	if stderrors.As(err, &remote) {
		return remote
	}
	return &RemoteError{Message: err.Error(), cause: err}
}

func (e *RemoteError) Unwrap() error {
	return e.cause
}

func IsTimeout(err error) bool {
	return stderrors.Is(err, ErrTimeout)
}

func IsRemote(err error) bool {
	var remote *RemoteError
	return stderrors.As(err, &remote)
}
