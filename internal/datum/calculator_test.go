package datum

import (
	"errors"
	"testing"

	"github.com/bbernstein/datumcheck/internal/grid"
	"github.com/bbernstein/datumcheck/internal/models"
	"github.com/bbernstein/datumcheck/internal/station"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constant(v float64) grid.SamplerFunc {
	return func(_ models.Coordinate) (float64, error) {
		return v, nil
	}
}

func failing(err error) grid.SamplerFunc {
	return func(_ models.Coordinate) (float64, error) {
		return 0, err
	}
}

// positionDependentSurfaces returns grids whose values vary with the position
// so every station gets distinct heights.
func positionDependentSurfaces() grid.Surfaces {
	return grid.Surfaces{
		DVR90: grid.SamplerFunc(func(c models.Coordinate) (float64, error) {
			return 30 + c.Lat*0.17 - c.Lon*0.31, nil
		}),
		DKLAT: grid.SamplerFunc(func(c models.Coordinate) (float64, error) {
			return 29 + c.Lat*0.13 - c.Lon*0.29, nil
		}),
		DKMSL: grid.SamplerFunc(func(c models.Coordinate) (float64, error) {
			return 30 + c.Lat*0.11 - c.Lon*0.27, nil
		}),
		RelUplift: grid.SamplerFunc(func(c models.Coordinate) (float64, error) {
			return (c.Lat - 56) * 1.3, nil
		}),
	}
}

func esbjerg() models.Station {
	return models.NewStation("Esbjerg", models.Coordinate{Lon: 8.43333, Lat: 55.46667}, -1.208, 4.6, -1.08)
}

func TestCalculator_ConstantGrids(t *testing.T) {
	calc := NewCalculator(grid.Surfaces{
		DVR90:     constant(10.0),
		DKLAT:     constant(9.0),
		DKMSL:     constant(10.25),
		RelUplift: constant(-1.0),
	})
	st := esbjerg()

	tests := []struct {
		name string
		fn   func(models.Station) (float64, error)
		want float64
	}{
		{name: "E_DVR90", fn: calc.EDVR90, want: 10.0},
		{name: "E_LMSL1990", fn: calc.ELMSL1990, want: 10.046},
		{name: "E_DKLAT", fn: calc.EDKLAT, want: 9.0},
		{name: "E_DKMSL", fn: calc.EDKMSL, want: 10.25},
		{name: "DeltaMSL", fn: calc.DeltaMSL, want: -0.204},
		{name: "RelativeUplift", fn: calc.RelativeUplift, want: -0.033},
		{name: "ModelLAT", fn: calc.ModelLAT, want: -1.25},
		{name: "LATDiff", fn: calc.LATDiff, want: 0.042},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(st)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCalculator_Relationships(t *testing.T) {
	calc := NewCalculator(positionDependentSurfaces())

	for _, st := range station.Danish() {
		t.Run(st.Name, func(t *testing.T) {
			cmp, err := calc.Compare(st)
			require.NoError(t, err)

			assert.Equal(t, st.Name, cmp.Name)
			assert.Equal(t, st.Coordinate, cmp.Coordinate)
			assert.Equal(t, st.DMILAT, cmp.DMILAT)
			assert.InDelta(t, cmp.EDVR90+st.DVR90MSLOffset*0.01, cmp.ELMSL1990, 1e-12)
			assert.InDelta(t, cmp.ELMSL1990-cmp.EDKMSL, cmp.DeltaMSL, 1e-12)
			assert.InDelta(t, cmp.EDKLAT-cmp.EDKMSL, cmp.ModelLAT, 1e-12)
			assert.InDelta(t, st.DMILAT-cmp.ModelLAT, cmp.LATDiff, 1e-12)

			// Accessors agree with Compare bit for bit
			accessors := []struct {
				name string
				fn   func(models.Station) (float64, error)
				want float64
			}{
				{"EDVR90", calc.EDVR90, cmp.EDVR90},
				{"ELMSL1990", calc.ELMSL1990, cmp.ELMSL1990},
				{"EDKLAT", calc.EDKLAT, cmp.EDKLAT},
				{"EDKMSL", calc.EDKMSL, cmp.EDKMSL},
				{"DeltaMSL", calc.DeltaMSL, cmp.DeltaMSL},
				{"RelativeUplift", calc.RelativeUplift, cmp.RelativeUplift},
				{"ModelLAT", calc.ModelLAT, cmp.ModelLAT},
				{"LATDiff", calc.LATDiff, cmp.LATDiff},
			}
			for _, a := range accessors {
				got, err := a.fn(st)
				require.NoError(t, err, a.name)
				assert.Equal(t, a.want, got, a.name)
			}
		})
	}
}

func TestCalculator_Idempotent(t *testing.T) {
	calc := NewCalculator(positionDependentSurfaces())
	st := esbjerg()

	first, err := calc.Compare(st)
	require.NoError(t, err)
	second, err := calc.Compare(st)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	a, err := calc.DeltaMSL(st)
	require.NoError(t, err)
	b, err := calc.DeltaMSL(st)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCalculator_RelativeUpliftUsesTimespan(t *testing.T) {
	calc := NewCalculator(grid.Surfaces{RelUplift: constant(2.0)})
	st := esbjerg()
	st.Timespan = 10

	got, err := calc.RelativeUplift(st)
	require.NoError(t, err)
	assert.InDelta(t, 0.02, got, 1e-12)
}

func TestCalculator_GridErrors(t *testing.T) {
	outside := grid.NewGridError(grid.NameDKMSL, "./dkmsl_2022.tif", grid.ErrOutsideCoverage)
	calc := NewCalculator(grid.Surfaces{
		DVR90:     constant(10.0),
		DKLAT:     constant(9.0),
		DKMSL:     failing(outside),
		RelUplift: constant(-1.0),
	})
	st := esbjerg()

	_, err := calc.Compare(st)
	require.Error(t, err)
	assert.True(t, errors.Is(err, grid.ErrOutsideCoverage))
	assert.Contains(t, err.Error(), "Esbjerg")

	_, err = calc.DeltaMSL(st)
	assert.True(t, errors.Is(err, grid.ErrOutsideCoverage))
	_, err = calc.ModelLAT(st)
	assert.True(t, errors.Is(err, grid.ErrOutsideCoverage))
	_, err = calc.LATDiff(st)
	assert.True(t, errors.Is(err, grid.ErrOutsideCoverage))

	// DVR90 based values do not touch DKMSL
	_, err = calc.ELMSL1990(st)
	assert.NoError(t, err)
}
