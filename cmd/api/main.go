package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BunnyTheLifeguard/hcomp/internal/data"
	"github.com/BunnyTheLifeguard/hcomp/internal/jsonlog"
	"github.com/BunnyTheLifeguard/hcomp/internal/validator"
	"github.com/joho/godotenv"
)

const (
	defaultPort    = "8080"
	defaultVersion = "dev-local"
)

var errInvalidConfig = errors.New("invalid configuration")

// Config struct holds the settings read once at startup, never written afterwards
type config struct {
	port    int
	version string
}

// Application struct to hold dependencies for HTTP handlers, helpers & middleware
type application struct {
	config  config
	logger  *jsonlog.Logger
	phrases data.PhraseSet
}

func main() {
	// Initialize a new jsonlog.Logger writing messages at or above INFO severity to stdout
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	// A .env file is optional, variables already set in the environment win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.PrintFatal(err, nil)
	}

	cfg, err := parseConfig(os.Args[1:], os.Getenv)
	if err != nil {
		// -h already printed the usage
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		logger.PrintFatal(err, nil)
	}

	// Reject settings the server cannot start with, every failed field goes into the log entry
	v := validator.New()
	if validateConfig(v, cfg); !v.Valid() {
		logger.PrintFatal(errInvalidConfig, v.Errors)
	}

	phrases, err := data.NewPhraseSet(data.DefaultPhrases(), nil)
	if err != nil {
		logger.PrintFatal(err, nil)
	}

	// Declare an instance of the application struct containing config, logger & phrases
	app := &application{
		config:  cfg,
		logger:  logger,
		phrases: phrases,
	}

	// Start the HTTP server, blocks until shutdown
	err = app.serve()
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}

// parseConfig reads PORT and VERSION from the environment, then lets the -port and
// -version flags override them. Empty variables count as unset
func parseConfig(args []string, getenv func(string) string) (config, error) {
	var cfg config
	var port string

	flags := flag.NewFlagSet("api", flag.ContinueOnError)
	flags.StringVar(&port, "port", envOr(getenv, "PORT", defaultPort), "API server port")
	flags.StringVar(&cfg.version, "version", envOr(getenv, "VERSION", defaultVersion), "Version label echoed in responses")

	if err := flags.Parse(args); err != nil {
		return cfg, err
	}

	// PORT must be a plain decimal number
	n, err := strconv.Atoi(port)
	if err != nil {
		return cfg, fmt.Errorf("invalid port %q: %w", port, err)
	}
	cfg.port = n

	return cfg, nil
}

// validateConfig checks the port range. Port 0 asks the kernel for a free port, the
// version label is opaque and echoed as given
func validateConfig(v *validator.Validator, cfg config) {
	v.Check(validator.Between(cfg.port, 0, 65535), "port", "must be between 0 and 65535")
}

func envOr(getenv func(string) string, key, fallback string) string {
	if value := getenv(key); value != "" {
		return value
	}

	return fallback
}
