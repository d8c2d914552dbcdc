package datum

import (
	"github.com/bbernstein/datumcheck/internal/models"
	"github.com/rs/zerolog/log"
)

type Service struct {
	calculator *Calculator
}

func NewService(calculator *Calculator) *Service {
	return &Service{calculator: calculator}
}

// Each compares the stations in order and hands every result to fn.
// It stops at the first error, results already handed over stay delivered.
func (s *Service) Each(stations []models.Station, fn func(models.Comparison) error) error {
	for _, st := range stations {
		cmp, err := s.calculator.Compare(st)
		if err != nil {
			return err
		}
		log.Trace().Str("station", st.Name).Msg("Compared reference surfaces")
		if err := fn(cmp); err != nil {
			return err
		}
	}
	return nil
}

// CompareAll returns the comparisons of all stations in input order
func (s *Service) CompareAll(stations []models.Station) ([]models.Comparison, error) {
	comparisons := make([]models.Comparison, 0, len(stations))
	err := s.Each(stations, func(c models.Comparison) error {
		comparisons = append(comparisons, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comparisons, nil
}
