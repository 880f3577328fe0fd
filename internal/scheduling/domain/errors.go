package domain

import "errors"

var (
	// ErrInvalidAPIResponse is raised when the conversion service answers with
	// a non-success status or without a usable conversionResult. The message
	// is part of the caller-facing contract, hence the unusual casing.
	ErrInvalidAPIResponse = errors.New("Invalid DateTime format from API.")

	// ErrUnparseableTime is raised when a date/time string cannot be read at all.
	ErrUnparseableTime = errors.New("could not parse meeting time")
)
