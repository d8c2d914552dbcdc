package config

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Grids holds the paths of the four vertical shift grids.
type Grids struct {
	DVR90     string
	DKLAT     string
	DKMSL     string
	RelUplift string
}

type Config struct {
	Environment string
	LogLevel    zerolog.Level
	Grids       Grids
	OutputPath  string

	// Optional publishing targets, empty means disabled
	OutputBucket string
	OutputKey    string
	ResultsTable string
}

type Option func(*Config)

// WithEnvironment allows setting the environment
func WithEnvironment(env string) Option {
	return func(c *Config) {
		c.Environment = env
	}
}

// WithLogLevel allows setting the log level
func WithLogLevel(level string) Option {
	return func(c *Config) {
		parsedLevel, err := zerolog.ParseLevel(level)
		if err != nil {
			parsedLevel = zerolog.InfoLevel
		}
		c.LogLevel = parsedLevel
	}
}

// WithGrids replaces the grid file paths
func WithGrids(grids Grids) Option {
	return func(c *Config) {
		c.Grids = grids
	}
}

// WithOutputPath sets where the GeoJSON file is written
func WithOutputPath(path string) Option {
	return func(c *Config) {
		c.OutputPath = path
	}
}

// WithS3Output enables uploading the GeoJSON file to S3
func WithS3Output(bucket, key string) Option {
	return func(c *Config) {
		c.OutputBucket = bucket
		c.OutputKey = key
	}
}

// WithResultsTable enables writing comparisons to a DynamoDB table
func WithResultsTable(table string) Option {
	return func(c *Config) {
		c.ResultsTable = table
	}
}

// DefaultGrids are the grid files looked up relative to the working directory.
func DefaultGrids() Grids {
	return Grids{
		DVR90:     "./dk_sdfe_dvr90.tif",
		DKLAT:     "./dklat_2022.tif",
		DKMSL:     "./dkmsl_2022.tif",
		RelUplift: "./rel.tif",
	}
}

// New creates a new configuration with default values
func New(opts ...Option) *Config {
	cfg := &Config{
		Environment: "production",
		LogLevel:    zerolog.InfoLevel,
		Grids:       DefaultGrids(),
		OutputPath:  "LAT.geojson",
		OutputKey:   "LAT.geojson",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// InitializeLogging sets up logging based on the configuration.
// Logs go to stderr, stdout is reserved for the report.
func (c *Config) InitializeLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(c.LogLevel)

	if c.Environment == "local" || c.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		return
	}
	log.Logger = zerolog.New(os.Stderr).
		With().
		Timestamp().
		Logger()
}

// PublishToS3 reports whether the GeoJSON should be uploaded
func (c *Config) PublishToS3() bool {
	return c.OutputBucket != ""
}

// PublishToDynamo reports whether comparisons should be stored in DynamoDB
func (c *Config) PublishToDynamo() bool {
	return c.ResultsTable != ""
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	defaults := DefaultGrids()
	return New(
		WithEnvironment(getEnvOrDefault("ENV", "production")),
		WithLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
		WithGrids(Grids{
			DVR90:     getEnvOrDefault("DVR90_GRID", defaults.DVR90),
			DKLAT:     getEnvOrDefault("DKLAT_GRID", defaults.DKLAT),
			DKMSL:     getEnvOrDefault("DKMSL_GRID", defaults.DKMSL),
			RelUplift: getEnvOrDefault("REL_UPLIFT_GRID", defaults.RelUplift),
		}),
		WithOutputPath(getEnvOrDefault("OUTPUT_PATH", "LAT.geojson")),
		WithS3Output(os.Getenv("OUTPUT_S3_BUCKET"), getEnvOrDefault("OUTPUT_S3_KEY", "LAT.geojson")),
		WithResultsTable(os.Getenv("RESULTS_TABLE")),
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
