package models

import "fmt"

const (
	// MSLEpoch is the year of the published DVR90 mean sea level heights
	MSLEpoch = 1990
	// AnalysisYear is the year the comparison is made for
	AnalysisYear = 2023
	// DefaultTimespan is the number of years relative uplift accumulates over
	DefaultTimespan = AnalysisYear - MSLEpoch
)

// Coordinate is a geographic position in degrees with an ellipsoidal height in metres.
type Coordinate struct {
	Lon    float64 `json:"lon"`
	Lat    float64 `json:"lat"`
	Height float64 `json:"height"`
}

// XY drops the height component
func (c Coordinate) XY() [2]float64 {
	return [2]float64{c.Lon, c.Lat}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%.5f, %.5f, %g)", c.Lon, c.Lat, c.Height)
}

// Station is a tide gauge with independently published reference values.
// Stations are values and are never modified after construction.
type Station struct {
	Name       string     `json:"name"`
	Coordinate Coordinate `json:"coordinate"`

	// DMILAT is the Lowest Astronomical Tide height measured by DMI
	DMILAT float64 `json:"dmiLat"`
	// DVR90MSLOffset is the 1990 mean sea level height in DVR90 (cm)
	DVR90MSLOffset float64 `json:"dvr90MslOffset"`
	// DVR90RelUplift is the relative uplift from the DVR90 publication (mm/yr).
	// Kept for reference only.
	DVR90RelUplift float64 `json:"dvr90RelUplift"`

	Timespan int `json:"timespan"`
}

// NewStation builds a station with the default uplift timespan
func NewStation(name string, coord Coordinate, dmiLAT, mslOffset, relUplift float64) Station {
	return Station{
		Name:           name,
		Coordinate:     coord,
		DMILAT:         dmiLAT,
		DVR90MSLOffset: mslOffset,
		DVR90RelUplift: relUplift,
		Timespan:       DefaultTimespan,
	}
}
