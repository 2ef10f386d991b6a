package models

import "github.com/cockroachdb/errors"

var (
	BadParameterError = errors.New("bad parameter")

	// ErrMissingNameColumn means the input CSV has no usable header.
	ErrMissingNameColumn = errors.Wrap(BadParameterError, "input file has no 'name' column")
)
