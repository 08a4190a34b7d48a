package chat

import "errors"

var (
	ErrInvalidAlgorithm = errors.New("algorithm not available")
	ErrMissingClientID  = errors.New("client id is required")
)
