package grid

import (
	"errors"
	"io"

	"github.com/bbernstein/datumcheck/internal/config"
	"github.com/rs/zerolog/log"
)

// Grid names used in errors and logs
const (
	NameDVR90     = "DVR90"
	NameDKLAT     = "DKLAT"
	NameDKMSL     = "DKMSL"
	NameRelUplift = "REL_UPLIFT"
)

// Surfaces bundles the four grids a comparison needs.
// DVR90, DKLAT and DKMSL return metres, RelUplift returns mm/yr.
type Surfaces struct {
	DVR90     Sampler
	DKLAT     Sampler
	DKMSL     Sampler
	RelUplift Sampler

	closers []io.Closer
	caches  map[string]*CachedSampler
}

// OpenSurfaces opens all four grids through PROJ. When cacheSize is positive
// every grid is wrapped in a CachedSampler. On failure the grids opened so
// far are closed again.
func OpenSurfaces(grids config.Grids, cacheSize int) (*Surfaces, error) {
	s := &Surfaces{caches: make(map[string]*CachedSampler)}

	open := func(name, path string) (Sampler, error) {
		ps, err := OpenProjSampler(name, path)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, ps)
		if cacheSize <= 0 {
			return ps, nil
		}
		cs, err := NewCachedSampler(ps, cacheSize)
		if err != nil {
			return nil, err
		}
		s.caches[name] = cs
		return cs, nil
	}

	var err error
	if s.DVR90, err = open(NameDVR90, grids.DVR90); err != nil {
		return nil, closeOnError(s, err)
	}
	if s.DKLAT, err = open(NameDKLAT, grids.DKLAT); err != nil {
		return nil, closeOnError(s, err)
	}
	if s.DKMSL, err = open(NameDKMSL, grids.DKMSL); err != nil {
		return nil, closeOnError(s, err)
	}
	if s.RelUplift, err = open(NameRelUplift, grids.RelUplift); err != nil {
		return nil, closeOnError(s, err)
	}

	return s, nil
}

func closeOnError(s *Surfaces, err error) error {
	if closeErr := s.Close(); closeErr != nil {
		return errors.Join(err, closeErr)
	}
	return err
}

// LogCacheStats writes the hit and miss counts of every cached grid
func (s *Surfaces) LogCacheStats() {
	for _, name := range []string{NameDVR90, NameDKLAT, NameDKMSL, NameRelUplift} {
		c, ok := s.caches[name]
		if !ok {
			continue
		}
		stats := c.GetCacheStats()
		log.Debug().
			Str("grid", name).
			Uint64("hits", stats["hits"]).
			Uint64("misses", stats["misses"]).
			Msg("Grid cache stats")
	}
}

// Close releases the PROJ resources held by the grids
func (s *Surfaces) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
