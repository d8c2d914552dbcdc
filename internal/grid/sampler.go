// Package grid samples vertical shift grids at geographic coordinates.
package grid

import "github.com/bbernstein/datumcheck/internal/models"

// Sampler returns the grid value at the horizontal position of c.
// The height of c does not influence the result.
type Sampler interface {
	Sample(c models.Coordinate) (float64, error)
}

// SamplerFunc adapts a function to the Sampler interface
type SamplerFunc func(c models.Coordinate) (float64, error)

func (f SamplerFunc) Sample(c models.Coordinate) (float64, error) {
	return f(c)
}
