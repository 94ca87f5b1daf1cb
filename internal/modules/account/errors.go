package account

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrNoSearchCriteria   = errors.New("username or is_banned must be provided")
	ErrNoResults          = errors.New("no results found")
)
