// Package datum derives reference surface heights and their differences at tide gauges.
package datum

import (
	"fmt"

	"github.com/bbernstein/datumcheck/internal/grid"
	"github.com/bbernstein/datumcheck/internal/models"
)

const (
	cmToM = 0.01
	mmToM = 1.0 / 1000
)

// Calculator evaluates the derived heights of a station against a set of grids.
// Nothing is cached; every call samples the grids again.
type Calculator struct {
	surfaces grid.Surfaces
}

func NewCalculator(surfaces grid.Surfaces) *Calculator {
	return &Calculator{surfaces: surfaces}
}

// EDVR90 is the ellipsoidal height of the DVR90 surface
func (c *Calculator) EDVR90(st models.Station) (float64, error) {
	return c.surfaces.DVR90.Sample(st.Coordinate)
}

// EDKLAT is the ellipsoidal height of the DKLAT surface
func (c *Calculator) EDKLAT(st models.Station) (float64, error) {
	return c.surfaces.DKLAT.Sample(st.Coordinate)
}

// EDKMSL is the ellipsoidal height of the DKMSL surface
func (c *Calculator) EDKMSL(st models.Station) (float64, error) {
	return c.surfaces.DKMSL.Sample(st.Coordinate)
}

// ELMSL1990 is the ellipsoidal height of the 1990 mean sea level
func (c *Calculator) ELMSL1990(st models.Station) (float64, error) {
	dvr90, err := c.EDVR90(st)
	if err != nil {
		return 0, err
	}
	return lmsl1990(dvr90, st), nil
}

// DeltaMSL is the 1990 mean sea level minus DKMSL
func (c *Calculator) DeltaMSL(st models.Station) (float64, error) {
	lmsl, err := c.ELMSL1990(st)
	if err != nil {
		return 0, err
	}
	dkmsl, err := c.EDKMSL(st)
	if err != nil {
		return 0, err
	}
	return lmsl - dkmsl, nil
}

// RelativeUplift is the relative uplift accumulated over the station timespan, in metres
func (c *Calculator) RelativeUplift(st models.Station) (float64, error) {
	rate, err := c.surfaces.RelUplift.Sample(st.Coordinate)
	if err != nil {
		return 0, err
	}
	return rate * mmToM * float64(st.Timespan), nil
}

// ModelLAT is the LAT height above mean sea level according to the DKLAT and DKMSL models
func (c *Calculator) ModelLAT(st models.Station) (float64, error) {
	dklat, err := c.EDKLAT(st)
	if err != nil {
		return 0, err
	}
	dkmsl, err := c.EDKMSL(st)
	if err != nil {
		return 0, err
	}
	return dklat - dkmsl, nil
}

// LATDiff is the measured LAT minus the model LAT
func (c *Calculator) LATDiff(st models.Station) (float64, error) {
	modelLAT, err := c.ModelLAT(st)
	if err != nil {
		return 0, err
	}
	return st.DMILAT - modelLAT, nil
}

// Compare evaluates every derived height for st
func (c *Calculator) Compare(st models.Station) (models.Comparison, error) {
	cmp := models.Comparison{
		Name:       st.Name,
		Coordinate: st.Coordinate,
		DMILAT:     st.DMILAT,
	}

	var err error
	if cmp.EDVR90, err = c.EDVR90(st); err != nil {
		return models.Comparison{}, fmt.Errorf("%s: %w", st.Name, err)
	}
	if cmp.EDKLAT, err = c.EDKLAT(st); err != nil {
		return models.Comparison{}, fmt.Errorf("%s: %w", st.Name, err)
	}
	if cmp.EDKMSL, err = c.EDKMSL(st); err != nil {
		return models.Comparison{}, fmt.Errorf("%s: %w", st.Name, err)
	}
	if cmp.RelativeUplift, err = c.RelativeUplift(st); err != nil {
		return models.Comparison{}, fmt.Errorf("%s: %w", st.Name, err)
	}

	cmp.ELMSL1990 = lmsl1990(cmp.EDVR90, st)
	cmp.DeltaMSL = cmp.ELMSL1990 - cmp.EDKMSL
	cmp.ModelLAT = cmp.EDKLAT - cmp.EDKMSL
	cmp.LATDiff = st.DMILAT - cmp.ModelLAT

	return cmp, nil
}

func lmsl1990(dvr90 float64, st models.Station) float64 {
	return dvr90 + st.DVR90MSLOffset*cmToM
}
