package main

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/bbernstein/datumcheck/internal/api"
	"github.com/bbernstein/datumcheck/internal/config"
	"github.com/bbernstein/datumcheck/internal/datum"
	"github.com/bbernstein/datumcheck/internal/export"
	"github.com/bbernstein/datumcheck/internal/grid"
	"github.com/bbernstein/datumcheck/internal/models"
	"github.com/bbernstein/datumcheck/internal/station"
	"github.com/rs/zerolog/log"
)

var (
	service   *datum.Service
	finder    station.StationFinder = station.NewDanishFinder()
	setupOnce sync.Once
	setupErr  error
)

// setup opens the grids on the first request and keeps them for the
// lifetime of the container
func setup() error {
	setupOnce.Do(func() {
		cfg := config.LoadFromEnv()
		cfg.InitializeLogging()
		log.Info().Str("env", cfg.Environment).Msg("Environment")

		surfaces, err := grid.OpenSurfaces(cfg.Grids, config.GetCacheConfig().GridCacheSize())
		if err != nil {
			setupErr = err
			return
		}
		service = datum.NewService(datum.NewCalculator(*surfaces))
	})
	return setupErr
}

func handleRequest(_ context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	log.Info().Msg("Handling datum comparison request")

	if err := setup(); err != nil {
		log.Error().Err(err).Msg("Opening grids failed")
		return api.Error("Grids unavailable", http.StatusInternalServerError)
	}

	stations := finder.Stations()
	if name, ok := api.StationParam(request.QueryStringParameters); ok {
		st, err := finder.FindStation(name)
		if err != nil {
			var notFound *station.NotFoundError
			if errors.As(err, &notFound) {
				return api.Error("Station not found", http.StatusNotFound)
			}
			return api.Error("Invalid parameters", http.StatusBadRequest)
		}
		stations = []models.Station{st}
	}

	comparisons, err := service.CompareAll(stations)
	if err != nil {
		log.Error().Err(err).Msg("Error comparing stations")
		return api.Error("Error sampling grids", http.StatusInternalServerError)
	}

	body, err := export.Marshal(comparisons)
	if err != nil {
		return api.Error("Internal Server Error", http.StatusInternalServerError)
	}
	return api.Raw(body, export.ContentType)
}

func main() {
	lambda.Start(handleRequest)
}
