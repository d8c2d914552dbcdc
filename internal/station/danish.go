package station

import "github.com/bbernstein/datumcheck/internal/models"

// danishTideGauges lists the stations in report order. The columns are DMI
// LAT, the DVR90 1990 MSL height in cm and the DVR90 relative uplift in mm/yr.
var danishTideGauges = []models.Station{
	models.NewStation("Esbjerg", models.Coordinate{Lon: 8.43333, Lat: 55.46667}, -1.208, 4.6, -1.08),
	models.NewStation("Fredericia", models.Coordinate{Lon: 9.75000, Lat: 55.56667}, -0.255, -0.4, -0.95),
	models.NewStation("Frederikshavn", models.Coordinate{Lon: 10.55000, Lat: 57.43333}, -0.271, -6.0, 0.51),
	models.NewStation("Gedser", models.Coordinate{Lon: 11.91667, Lat: 54.56667}, -0.097, 5.2, -0.93),
	models.NewStation("Hirtshals", models.Coordinate{Lon: 9.96667, Lat: 57.6}, -0.23, -7.9, 0.41),
	models.NewStation("Hornbæk", models.Coordinate{Lon: 12.45000, Lat: 56.10000}, -0.157, 0.1, -0.06),
	models.NewStation("Korsør", models.Coordinate{Lon: 11.15000, Lat: 55.33333}, -0.238, 2.6, -0.63),
	models.NewStation("København", models.Coordinate{Lon: 12.60000, Lat: 55.70000}, -0.147, 4.1, -0.23),
	models.NewStation("Slipshavn", models.Coordinate{Lon: 10.83333, Lat: 55.28333}, -0.275, 0.0, -0.79),
	models.NewStation("Aarhus", models.Coordinate{Lon: 10.21667, Lat: 56.15000}, -0.331, -1.0, -0.46),
}

// Danish returns the ten Danish tide gauges in report order.
// The slice is a copy and may be modified by the caller.
func Danish() []models.Station {
	stations := make([]models.Station, len(danishTideGauges))
	copy(stations, danishTideGauges)
	return stations
}
