package session

import "errors"

var (
	ErrEmptyClientID = errors.New("empty client id")
	ErrUnknownDriver = errors.New("unknown session driver")
)
