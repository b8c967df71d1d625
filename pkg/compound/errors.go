package compound

import "errors"

var (
	// ErrConfiguration is returned when the dictionary source cannot be read.
	ErrConfiguration = errors.New("compound: configuration error")

	// ErrBudgetExceeded is returned when a search visits more states than allowed.
	ErrBudgetExceeded = errors.New("compound: search budget exceeded")
)
