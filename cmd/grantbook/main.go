// Command grantbook serves the grant transaction tools over MCP on
// stdin/stdout. All logging goes to stderr; stdout belongs to the
// protocol.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"grantbook/internal/config"
	"grantbook/internal/log"
	"grantbook/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := log.New(log.Config{
		Level:  log.ParseLevel(cfg.LogLevel),
		JSON:   cfg.LogJSON,
		Output: os.Stderr,
	})
	log.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", log.FieldError, err)
		os.Exit(1)
	}

	srv, err := server.Bootstrap(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("startup failed", log.FieldError, err)
		os.Exit(1)
	}

	if err := srv.ServeStdio(); err != nil {
		logger.Error("stdio server exited", log.FieldError, err)
		os.Exit(1)
	}
}
