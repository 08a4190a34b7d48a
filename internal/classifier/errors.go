package classifier

import "errors"

var (
	ErrInvalidAlgorithm       = errors.New("classifier algorithm not available")
	ErrNoClassifiersAvailable = errors.New("no classifier artifacts could be loaded")
	ErrInvalidArtifact        = errors.New("invalid classifier artifact")
)
