package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	RulesDir        string
	Debug           bool
	PrecomputeLimit int
	MaxYearSpan     int
	ShutdownTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	addr := os.Getenv("ALMANAC_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	limit, err := intFromEnv("ALMANAC_PRECOMPUTE_LIMIT", 8)
	if err != nil {
		return Server{}, err
	}
	span, err := intFromEnv("ALMANAC_MAX_YEAR_SPAN", 25)
	if err != nil {
		return Server{}, err
	}

	shutdown := 10 * time.Second
	if v := os.Getenv("ALMANAC_SHUTDOWN_TIMEOUT"); v != "" {
		shutdown, err = time.ParseDuration(v)
		if err != nil {
			return Server{}, fmt.Errorf("ALMANAC_SHUTDOWN_TIMEOUT: %w", err)
		}
	}

	return Server{
		Addr:            addr,
		RulesDir:        os.Getenv("ALMANAC_RULES_DIR"),
		Debug:           os.Getenv("ALMANAC_DEBUG") == "true",
		PrecomputeLimit: limit,
		MaxYearSpan:     span,
		ShutdownTimeout: shutdown,
	}, nil
}

func intFromEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, n)
	}
	return n, nil
}
