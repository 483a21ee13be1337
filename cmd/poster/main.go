// Package main implements the entry point for the poster harness: batch
// normalization and parsing of postal addresses from the command line, or
// served over NATS request-reply.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fahadshabir/poster/config"
	"github.com/fahadshabir/poster/engine"
	"github.com/fahadshabir/poster/metric"
	"github.com/fahadshabir/poster/postal"
	"github.com/fahadshabir/poster/service"
)

// Build information constants
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "poster"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("Application failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	cliCfg := parseFlags()
	if err := validateFlags(cliCfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil
	}
	if cliCfg.ShowHelp {
		printDetailedHelp()
		return nil
	}

	logger := setupLogger(cliCfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	cfg := config.Default()
	if cliCfg.ConfigPath != "" {
		var err error
		cfg, err = config.Load(cliCfg.ConfigPath)
		if err != nil {
			return err
		}
	}

	registry := metric.NewRegistry()
	if cliCfg.MetricsPort > 0 {
		serveMetrics(cliCfg.MetricsPort, registry, logger)
	}

	if cfg.Engine.DataDir != "" {
		// libpostal honors LIBPOSTAL_DATA_DIR at setup time.
		if err := os.Setenv("LIBPOSTAL_DATA_DIR", cfg.Engine.DataDir); err != nil {
			return fmt.Errorf("set engine data dir: %w", err)
		}
	}

	eng, err := engine.NewLibpostal()
	if err != nil {
		return err
	}

	handle, err := engine.Open(eng, logger)
	if err != nil {
		return err
	}
	defer handle.Close()
	registry.CoreMetrics().RecordEngineReady(true)

	proc := postal.NewProcessor(handle, logger, registry)
	proc.SetCheckpointInterval(cfg.Batch.CheckpointInterval)
	proc.SetDuplicatePolicy(cfg.DuplicatePolicy())
	proc.SetLanguages(cfg.Engine.Languages)
	proc.SetCountry(cfg.Engine.Country)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cliCfg.Op == "serve" {
		return serve(ctx, cfg, handle, proc, logger, registry)
	}
	return runBatch(ctx, cliCfg, proc)
}

// runBatch reads one address per line (empty line for missing), applies
// the requested operation, and writes one JSON value per line to stdout.
func runBatch(ctx context.Context, cliCfg *CLIConfig, proc *postal.Processor) error {
	addresses, err := readAddresses(cliCfg.InputPath)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	switch cliCfg.Op {
	case "normalize":
		output, err := proc.Normalize(ctx, addresses)
		if err != nil {
			return err
		}
		return writeValues(out, output)

	case "parse":
		columns, err := proc.Parse(ctx, addresses)
		if err != nil {
			return err
		}
		return writeColumns(out, columns)

	case "get":
		field, err := postal.ParseField(cliCfg.Field)
		if err != nil {
			return err
		}
		output, err := proc.GetField(ctx, addresses, field)
		if err != nil {
			return err
		}
		return writeValues(out, output)

	case "set":
		field, err := postal.ParseField(cliCfg.Field)
		if err != nil {
			return err
		}
		replacements := []postal.String{postal.NewString(cliCfg.Replacement)}
		if cliCfg.Replacement == "" {
			replacements[0] = postal.NullString()
		}
		output, err := proc.SetField(ctx, addresses, replacements, field)
		if err != nil {
			return err
		}
		return writeValues(out, output)

	default:
		return fmt.Errorf("unsupported operation: %s", cliCfg.Op)
	}
}

// serve runs the NATS request-reply surface until the context is
// canceled by a signal.
func serve(ctx context.Context, cfg *config.Config, handle *engine.Handle,
	proc *postal.Processor, logger *slog.Logger, registry *metric.Registry) error {
	nc, err := nats.Connect(cfg.NATS.URL, nats.Name(appName))
	if err != nil {
		return fmt.Errorf("connect to NATS: %w", err)
	}
	defer nc.Close()

	svc := service.New(nc, handle, proc, logger, registry,
		service.WithSubjectPrefix(cfg.NATS.SubjectPrefix))
	if err := svc.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return svc.Stop(shutdownCtx)
}

func serveMetrics(port int, registry *metric.Registry, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(
		registry.PrometheusRegistry(), promhttp.HandlerOpts{}))

	go func() {
		addr := fmt.Sprintf(":%d", port)
		logger.Info("Serving metrics", "addr", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Error("Metrics server failed", "error", err)
		}
	}()
}

func readAddresses(path string) ([]postal.String, error) {
	var reader io.Reader = os.Stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		reader = file
	}

	var addresses []postal.String
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		// Empty line marks a missing address.
		addresses = append(addresses, postal.FromRaw(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return addresses, nil
}

func writeValues(out *bufio.Writer, values []postal.String) error {
	enc := json.NewEncoder(out)
	for _, v := range values {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

func writeColumns(out *bufio.Writer, columns *postal.Columns) error {
	enc := json.NewEncoder(out)
	for i := 0; i < columns.Len(); i++ {
		row := make(map[string]postal.String, postal.NumFields)
		for _, f := range postal.Fields() {
			row[f.String()] = columns.Column(f)[i]
		}
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
