// Package memgate wires the stateless MCP stdio adapter for a remote memory
// service: a local protocol handler answers the handshake and static
// discovery methods, and a forwarding gateway relays everything else to the
// backend's HTTP JSON-RPC endpoint without touching the payload.
package memgate

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/memgate/memgate/catalog"
	"github.com/memgate/memgate/config"
	"github.com/memgate/memgate/gateway"
	"github.com/memgate/memgate/server"
)

// Run parses options, builds the adapter and serves stdio until the input
// stream closes.
func Run(args []string) error {
	// .env first so the option env fallbacks can see it
	_ = godotenv.Load()
	options := &config.Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	logger := newLogger()

	cfg := config.New(options)
	gw := gateway.New(cfg, gateway.WithLogger(logger))
	handler := server.New(catalog.New(), gw, server.WithLogger(logger))
	srv := server.NewStdio(handler, server.WithStdioLogger(logger))
	logger.WithField("url", cfg.URL).Info("serving MCP over stdio")
	return srv.ListenAndServe(context.Background())
}

// newLogger configures stderr-only diagnostics: the stdout channel is
// reserved for protocol lines.
func newLogger() *logrus.Entry {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	switch strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))) {
	case "trace":
		logrus.SetLevel(logrus.TraceLevel)
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
	return logrus.WithField("run", uuid.NewString())
}
