package export

import (
	"fmt"
	"os"

	"github.com/bbernstein/datumcheck/internal/models"
	"github.com/rs/zerolog/log"
)

// Write creates or truncates the file at path and writes the comparisons to it.
// The file is closed on every path; a failed write may leave a partial file.
func Write(path string, comparisons []models.Comparison) (err error) {
	data, err := Marshal(comparisons)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, closeErr)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	log.Debug().Str("path", path).Int("features", len(comparisons)).Msg("Wrote GeoJSON")
	return nil
}

// Read loads the comparisons stored at path
func Read(path string) ([]models.Comparison, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Unmarshal(data)
}
