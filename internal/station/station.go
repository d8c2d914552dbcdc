package station

import (
	"fmt"
	"strings"

	"github.com/bbernstein/datumcheck/internal/models"
)

// StationFinder defines the interface for finding stations
type StationFinder interface {
	FindStation(name string) (models.Station, error)
	Stations() []models.Station
}

// ListFinder looks up stations in a fixed list
type ListFinder struct {
	stations []models.Station
}

func NewListFinder(stations []models.Station) *ListFinder {
	return &ListFinder{stations: stations}
}

// NewDanishFinder returns a finder over the Danish tide gauges
func NewDanishFinder() *ListFinder {
	return NewListFinder(Danish())
}

// FindStation matches name case-insensitively
func (f *ListFinder) FindStation(name string) (models.Station, error) {
	for _, st := range f.stations {
		if strings.EqualFold(st.Name, name) {
			return st, nil
		}
	}
	return models.Station{}, &NotFoundError{Name: name}
}

func (f *ListFinder) Stations() []models.Station {
	stations := make([]models.Station, len(f.stations))
	copy(stations, f.stations)
	return stations
}

// NotFoundError is returned when no station matches a name
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("station not found: %s", e.Name)
}
