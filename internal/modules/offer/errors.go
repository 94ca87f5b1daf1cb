package offer

import "errors"

var (
	ErrInvalidKind   = errors.New("unknown offer kind")
	ErrOfferNotFound = errors.New("offer not found")
)
