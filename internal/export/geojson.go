// Package export writes reference surface comparisons as GeoJSON points.
package export

import (
	"fmt"

	"github.com/bbernstein/datumcheck/internal/models"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Fields is the property schema of every feature, all values are floats
var Fields = []string{
	"e_dvr90",
	"e_lmsl1990",
	"e_dklat",
	"e_dkmsl",
	"delta_msl",
	"relative_uplift",
	"dtu_lat",
	"dmi_lat",
	"lat_diff",
}

// ContentType is the media type of the marshaled collection
const ContentType = "application/geo+json"

func properties(c models.Comparison) geojson.Properties {
	return geojson.Properties{
		"e_dvr90":         c.EDVR90,
		"e_lmsl1990":      c.ELMSL1990,
		"e_dklat":         c.EDKLAT,
		"e_dkmsl":         c.EDKMSL,
		"delta_msl":       c.DeltaMSL,
		"relative_uplift": c.RelativeUplift,
		"dtu_lat":         c.ModelLAT,
		"dmi_lat":         c.DMILAT,
		"lat_diff":        c.LATDiff,
	}
}

// Feature returns the point feature of c. The height of the coordinate is dropped.
func Feature(c models.Comparison) *geojson.Feature {
	f := geojson.NewFeature(orb.Point(c.Coordinate.XY()))
	f.Properties = properties(c)
	return f
}

// FeatureCollection returns one feature per comparison in the given order
func FeatureCollection(comparisons []models.Comparison) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, c := range comparisons {
		fc.Append(Feature(c))
	}
	return fc
}

// Marshal encodes the comparisons as a GeoJSON FeatureCollection
func Marshal(comparisons []models.Comparison) ([]byte, error) {
	data, err := FeatureCollection(comparisons).MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encoding feature collection: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a FeatureCollection written by Marshal. Station names are
// not part of the schema, so Name stays empty.
func Unmarshal(data []byte) ([]models.Comparison, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decoding feature collection: %w", err)
	}

	comparisons := make([]models.Comparison, len(fc.Features))
	for i, f := range fc.Features {
		c, err := comparisonFromFeature(f)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		comparisons[i] = c
	}
	return comparisons, nil
}

func comparisonFromFeature(f *geojson.Feature) (models.Comparison, error) {
	pt, ok := f.Geometry.(orb.Point)
	if !ok {
		return models.Comparison{}, fmt.Errorf("geometry is %T, want Point", f.Geometry)
	}

	values := make(map[string]float64, len(Fields))
	for _, field := range Fields {
		v, ok := f.Properties[field].(float64)
		if !ok {
			return models.Comparison{}, fmt.Errorf("property %s missing or not a number", field)
		}
		values[field] = v
	}

	return models.Comparison{
		Coordinate:     models.Coordinate{Lon: pt.Lon(), Lat: pt.Lat()},
		EDVR90:         values["e_dvr90"],
		ELMSL1990:      values["e_lmsl1990"],
		EDKLAT:         values["e_dklat"],
		EDKMSL:         values["e_dkmsl"],
		DeltaMSL:       values["delta_msl"],
		RelativeUplift: values["relative_uplift"],
		ModelLAT:       values["dtu_lat"],
		DMILAT:         values["dmi_lat"],
		LATDiff:        values["lat_diff"],
	}, nil
}
