package grid

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridError(t *testing.T) {
	tests := []struct {
		name string
		err  *GridError
		want string
	}{
		{
			name: "with path",
			err:  NewGridError(NameDKMSL, "./dkmsl_2022.tif", ErrGridNotFound),
			want: "grid DKMSL (./dkmsl_2022.tif): grid file not found",
		},
		{
			name: "without path",
			err:  NewGridError(NameRelUplift, "", ErrOutsideCoverage),
			want: "grid REL_UPLIFT: coordinate outside grid coverage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestGridError_Unwrap(t *testing.T) {
	err := fmt.Errorf("comparing Esbjerg: %w", NewGridError(NameDKLAT, "x.tif", ErrOutsideCoverage))

	assert.True(t, errors.Is(err, ErrOutsideCoverage))
	assert.False(t, errors.Is(err, ErrGridNotFound))

	var gridErr *GridError
	assert.True(t, errors.As(err, &gridErr))
	assert.Equal(t, NameDKLAT, gridErr.Grid)
}
