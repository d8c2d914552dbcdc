package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrGridNotFound is returned when a grid file does not exist or cannot be read
	ErrGridNotFound = errors.New("grid file not found")
	// ErrOutsideCoverage is returned when a coordinate falls outside the grid
	ErrOutsideCoverage = errors.New("coordinate outside grid coverage")
)

// GridError ties a failure to the grid it came from
type GridError struct {
	Grid string
	Path string
	Err  error
}

func (e *GridError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("grid %s (%s): %v", e.Grid, e.Path, e.Err)
	}
	return fmt.Sprintf("grid %s: %v", e.Grid, e.Err)
}

func (e *GridError) Unwrap() error {
	return e.Err
}

// NewGridError creates a new grid error
func NewGridError(grid, path string, err error) *GridError {
	return &GridError{
		Grid: grid,
		Path: path,
		Err:  err,
	}
}
