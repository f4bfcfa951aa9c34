package user

import (
	"errors"
)

var (
	ErrEmailAlreadyExists          = errors.New("email already exists")
	ErrUserDoesNotExist            = errors.New("user does not exist")
	ErrUserIsReferenced            = errors.New("user is referenced by other records")
	ErrUserAlreadyActive           = errors.New("user is already active")
	ErrActivationTokenDoesNotExist = errors.New("activation token does not exist")
	ErrInvalidActivationToken      = errors.New("invalid activation token")
	ErrProfileDoesNotExist         = errors.New("profile does not exist")
)
