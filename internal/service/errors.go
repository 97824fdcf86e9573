package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailAlreadyExists  = errors.New("email already exists")

	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrNotFound          = errors.New("not found")
	ErrDependencyFailure = errors.New("dependency failure")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
