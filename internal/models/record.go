package models

import "fmt"

// ComparisonRecord is a comparison as stored in the results table
type ComparisonRecord struct {
	Station        string  `dynamodbav:"station"`
	AnalysisYear   int     `dynamodbav:"analysisYear"`
	Lon            float64 `dynamodbav:"lon"`
	Lat            float64 `dynamodbav:"lat"`
	EDVR90         float64 `dynamodbav:"e_dvr90"`
	ELMSL1990      float64 `dynamodbav:"e_lmsl1990"`
	EDKLAT         float64 `dynamodbav:"e_dklat"`
	EDKMSL         float64 `dynamodbav:"e_dkmsl"`
	DeltaMSL       float64 `dynamodbav:"delta_msl"`
	RelativeUplift float64 `dynamodbav:"relative_uplift"`
	ModelLAT       float64 `dynamodbav:"dtu_lat"`
	DMILAT         float64 `dynamodbav:"dmi_lat"`
	LATDiff        float64 `dynamodbav:"lat_diff"`
	GeneratedAt    int64   `dynamodbav:"generatedAt"`
}

// NewComparisonRecord builds the stored form of c
func NewComparisonRecord(c Comparison, generatedAt int64) ComparisonRecord {
	return ComparisonRecord{
		Station:        c.Name,
		AnalysisYear:   AnalysisYear,
		Lon:            c.Coordinate.Lon,
		Lat:            c.Coordinate.Lat,
		EDVR90:         c.EDVR90,
		ELMSL1990:      c.ELMSL1990,
		EDKLAT:         c.EDKLAT,
		EDKMSL:         c.EDKMSL,
		DeltaMSL:       c.DeltaMSL,
		RelativeUplift: c.RelativeUplift,
		ModelLAT:       c.ModelLAT,
		DMILAT:         c.DMILAT,
		LATDiff:        c.LATDiff,
		GeneratedAt:    generatedAt,
	}
}

// Validate checks if a ComparisonRecord's fields are valid
func (r *ComparisonRecord) Validate() error {
	if r.Station == "" {
		return fmt.Errorf("station name is required")
	}
	if r.Lon < -180 || r.Lon > 180 || r.Lat < -90 || r.Lat > 90 {
		return fmt.Errorf("invalid coordinate for %s: (%f, %f)", r.Station, r.Lon, r.Lat)
	}
	return nil
}
