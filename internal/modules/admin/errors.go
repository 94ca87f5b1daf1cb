package admin

import "errors"

var (
	ErrPrincipalNotFound = errors.New("principal not found")
	ErrAlreadyBanned     = errors.New("principal is already banned")
	ErrNotBanned         = errors.New("principal is not banned")
)
