package main

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/phrazzld/task-api/internal/config"
	"github.com/stretchr/testify/require"
)

// testConfig returns a valid configuration for tests.
func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:              8080,
			LogLevel:          "debug",
			ShutdownTimeout:   2 * time.Second,
			ReadHeaderTimeout: time.Second,
		},
		Store: config.StoreConfig{InitialCapacity: 4},
	}
}

// newTestApplication builds an application that logs to nowhere.
func newTestApplication(t *testing.T) *application {
	t.Helper()

	app, err := newApplication(testConfig(), slog.New(slog.NewJSONHandler(io.Discard, nil)))
	require.NoError(t, err)
	return app
}
