package loader

import "errors"

var (
	ErrReadMenu    = errors.New("failed to read menu")
	ErrReadCSV     = errors.New("failed to read csv source")
	ErrReadLexicon = errors.New("failed to read lexicon")
	ErrNoNameCol   = errors.New("csv source has no name, item or dish column")
)
