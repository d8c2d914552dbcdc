package grid

import (
	"fmt"
	"math"
	"os"

	"github.com/bbernstein/datumcheck/internal/models"
	"github.com/pebbe/proj/v5"
	"github.com/rs/zerolog/log"
)

// ProjSampler reads a vertical shift grid through PROJ's vgridshift operation.
// It is not safe for concurrent use.
type ProjSampler struct {
	name string
	path string
	ctx  *proj.Context
	pj   *proj.PJ
}

// Definition returns the PROJ operation used to sample the grid at path
func Definition(path string) string {
	return fmt.Sprintf("+proj=vgridshift +grids=%s +multiplier=1", path)
}

// OpenProjSampler prepares the grid file at path for sampling
func OpenProjSampler(name, path string) (*ProjSampler, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, NewGridError(name, path, fmt.Errorf("%w: %v", ErrGridNotFound, err))
	}

	ctx := proj.NewContext()
	pj, err := ctx.Create(Definition(path))
	if err != nil {
		ctx.Close()
		return nil, NewGridError(name, path, fmt.Errorf("creating vgridshift: %w", err))
	}

	log.Debug().Str("grid", name).Str("path", path).Msg("Opened vertical shift grid")

	return &ProjSampler{
		name: name,
		path: path,
		ctx:  ctx,
		pj:   pj,
	}, nil
}

// Sample returns the grid value at c. With a multiplier of 1 the forward
// vgridshift adds the grid value to the input height, so the value is the
// difference between output and input height.
func (s *ProjSampler) Sample(c models.Coordinate) (float64, error) {
	_, _, w, _, err := s.pj.Trans(proj.Fwd, proj.DegToRad(c.Lon), proj.DegToRad(c.Lat), c.Height, 0)
	if err != nil {
		return 0, NewGridError(s.name, s.path, fmt.Errorf("%w at %s: %v", ErrOutsideCoverage, c, err))
	}
	if math.IsInf(w, 0) || math.IsNaN(w) {
		return 0, NewGridError(s.name, s.path, fmt.Errorf("%w at %s", ErrOutsideCoverage, c))
	}
	return w - c.Height, nil
}

func (s *ProjSampler) Close() error {
	if s.pj != nil {
		s.pj.Close()
	}
	if s.ctx != nil {
		s.ctx.Close()
	}
	return nil
}
