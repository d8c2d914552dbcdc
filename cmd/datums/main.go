package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bbernstein/datumcheck/internal/config"
	"github.com/bbernstein/datumcheck/internal/datum"
	"github.com/bbernstein/datumcheck/internal/export"
	"github.com/bbernstein/datumcheck/internal/grid"
	"github.com/bbernstein/datumcheck/internal/models"
	"github.com/bbernstein/datumcheck/internal/publish"
	"github.com/bbernstein/datumcheck/internal/report"
	"github.com/bbernstein/datumcheck/internal/station"
	"github.com/rs/zerolog/log"
)

// openSurfaces is replaced in tests
var openSurfaces = grid.OpenSurfaces

func run(ctx context.Context, cfg *config.Config, cacheCfg *config.CacheConfig, out io.Writer) (err error) {
	surfaces, err := openSurfaces(cfg.Grids, cacheCfg.GridCacheSize())
	if err != nil {
		return fmt.Errorf("opening grids: %w", err)
	}
	defer func() {
		surfaces.LogCacheStats()
		if closeErr := surfaces.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing grids: %w", closeErr)
		}
	}()

	service := datum.NewService(datum.NewCalculator(*surfaces))
	printer := report.NewPrinter(out)

	var comparisons []models.Comparison
	err = service.Each(station.Danish(), func(c models.Comparison) error {
		comparisons = append(comparisons, c)
		return printer.Print(c)
	})
	if err != nil {
		return fmt.Errorf("comparing stations: %w", err)
	}

	if err := export.Write(cfg.OutputPath, comparisons); err != nil {
		return err
	}
	log.Info().Str("path", cfg.OutputPath).Int("stations", len(comparisons)).Msg("Wrote comparison")

	return publishResults(ctx, cfg, cacheCfg, comparisons)
}

func publishResults(ctx context.Context, cfg *config.Config, cacheCfg *config.CacheConfig, comparisons []models.Comparison) error {
	if cfg.PublishToS3() {
		client, err := publish.NewS3Client(ctx)
		if err != nil {
			return fmt.Errorf("creating S3 client: %w", err)
		}
		body, err := export.Marshal(comparisons)
		if err != nil {
			return err
		}
		if err := publish.NewS3Publisher(client, cfg.OutputBucket, cfg.OutputKey).Publish(ctx, body, export.ContentType); err != nil {
			return err
		}
		log.Info().Str("bucket", cfg.OutputBucket).Str("key", cfg.OutputKey).Msg("Uploaded comparison")
	}

	if cfg.PublishToDynamo() {
		client, err := publish.NewDynamoClient(ctx)
		if err != nil {
			return fmt.Errorf("creating DynamoDB client: %w", err)
		}
		store := publish.NewDynamoResultStore(client, cfg.ResultsTable, cacheCfg)
		if err := store.SaveComparisons(ctx, comparisons); err != nil {
			return err
		}
		log.Info().Str("table", cfg.ResultsTable).Msg("Stored comparison results")
	}

	return nil
}

func main() {
	cfg := config.LoadFromEnv()
	cfg.InitializeLogging()

	if err := run(context.Background(), cfg, config.GetCacheConfig(), os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Datum comparison failed")
	}
}
