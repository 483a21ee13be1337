package main

import (
	"flag"
	"fmt"
	"os"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath  string
	Op          string
	Field       string
	Replacement string
	InputPath   string
	LogLevel    string
	LogFormat   string
	MetricsPort int
	ShowVersion bool
	ShowHelp    bool
}

var validOps = []string{"normalize", "parse", "get", "set", "serve"}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	// Define flags with environment variable fallback
	flag.StringVar(&cfg.ConfigPath, "config",
		getEnv("POSTER_CONFIG", ""),
		"Path to configuration file, JSON or YAML (env: POSTER_CONFIG)")

	flag.StringVar(&cfg.Op, "op", "normalize",
		"Operation: normalize, parse, get, set, serve")

	flag.StringVar(&cfg.Field, "field", "",
		"Address field for get/set (house, house_number, road, suburb, city_district, city, state_district, state, postal_code, country)")

	flag.StringVar(&cfg.Replacement, "replacement", "",
		"Replacement value broadcast to every address for set")

	flag.StringVar(&cfg.InputPath, "input", "-",
		"Input file with one address per line, empty line for missing; - for stdin")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("POSTER_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: POSTER_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("POSTER_LOG_FORMAT", "json"),
		"Log format: json, text (env: POSTER_LOG_FORMAT)")

	flag.IntVar(&cfg.MetricsPort, "metrics-port", 0,
		"Prometheus metrics port, 0 to disable")

	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flag.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")
	flag.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	flag.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")

	flag.Usage = printDetailedHelp

	flag.Parse()

	return cfg
}

func validateFlags(cfg *CLIConfig) error {
	// Skip validation for special flags
	if cfg.ShowVersion || cfg.ShowHelp {
		return nil
	}

	if !contains(validOps, cfg.Op) {
		return fmt.Errorf("invalid operation: %s", cfg.Op)
	}

	if (cfg.Op == "get" || cfg.Op == "set") && cfg.Field == "" {
		return fmt.Errorf("operation %s requires -field", cfg.Op)
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	validFormats := []string{"json", "text"}
	if !contains(validFormats, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	if cfg.MetricsPort < 0 || cfg.MetricsPort > 65535 {
		return fmt.Errorf("invalid metrics port: %d", cfg.MetricsPort)
	}

	return nil
}

func printDetailedHelp() {
	_, _ = fmt.Fprintf(os.Stderr, `%s - Vectorized postal-address batch harness

Usage: %s [options]

Options:
`, appName, os.Args[0])
	flag.PrintDefaults()
	_, _ = fmt.Fprintf(os.Stderr, `
Examples:
  # Normalize addresses from stdin
  echo "fourty seven love lane pinner" | %s -op normalize

  # Parse a file of addresses to JSON lines
  %s -op parse -input addresses.txt

  # Project the city field
  %s -op get -field city -input addresses.txt

  # Rewrite the road field everywhere
  %s -op set -field road -replacement "broadway" -input addresses.txt

  # Serve the batch operations over NATS
  %s -op serve -config poster.yaml

Version: %s
Build: %s
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], Version, BuildTime)
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Utility function to check if slice contains string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
