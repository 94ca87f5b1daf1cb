package message

import "errors"

var (
	ErrSelfMessage     = errors.New("cannot message yourself")
	ErrUnknownReceiver = errors.New("receiver does not exist")
)
