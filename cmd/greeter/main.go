// Package main is the entry point for the greeter server
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"greeter/internal/config"
	"greeter/internal/logging"
	"greeter/internal/server"
	"greeter/internal/system"
	"greeter/internal/telemetry"
	"greeter/internal/version"
)

const shutdownTimeout = 10 * time.Second

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Values already in the environment take precedence over .env
	if err := godotenv.Load(); err != nil {
		logging.Debug("No .env file loaded: %v", err)
	}

	versionInfo := version.Get()
	if isVersionArg(args) {
		fmt.Print(versionInfo.String())
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	logging.SetDebug(cfg.IsDevelopment())
	if cfg.LogDir != "" {
		if err := logging.Initialize(cfg.LogDir); err != nil {
			logging.Warning("Failed to initialize file logging: %v", err)
		} else {
			defer logging.Close() //nolint:errcheck // best effort on exit
			if stop, err := logging.StartRotation(cfg.LogRotation); err != nil {
				logging.Warning("Log rotation disabled: %v", err)
			} else {
				defer stop()
			}
		}
	}
	logging.Debug("Configuration: %s", cfg)

	if host, err := system.Describe(); err != nil {
		logging.Warning("Failed to describe host: %v", err)
	} else {
		logging.Info("Host: %s", host)
	}

	ctx := context.Background()
	shutdownTelemetry, enabled, err := telemetry.InitializeFromEnv(ctx, versionInfo.Version, cfg.Environment)
	if err != nil {
		logging.Warning("Failed to initialize telemetry: %v", err)
	} else if enabled {
		logging.Info("Telemetry enabled")
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			logging.Error("Error shutting down telemetry: %v", err)
		}
	}()

	srv, err := server.New(cfg, versionInfo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create server: %v\n", err)
		return 1
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		if err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			return 1
		}
		return 0
	case sig := <-sigCh:
		logging.Info("Received %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error("Graceful shutdown failed: %v", err)
		return 1
	}
	if err := <-errCh; err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		return 1
	}
	return 0
}

func isVersionArg(args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "version", "--version", "-version", "-v":
		return true
	}
	return false
}
