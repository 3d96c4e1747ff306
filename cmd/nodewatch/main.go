// nodewatch is the host-side companion for the xG27-Sensor beacon: it
// scans for the node's advertisements, republishes decoded readings
// over MQTT and serves a live dashboard plus a small HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/belavarga1117/xg27-sensor-dashboard/internal/config"
	"github.com/belavarga1117/xg27-sensor-dashboard/internal/httpapi"
	"github.com/belavarga1117/xg27-sensor-dashboard/internal/logging"
	"github.com/belavarga1117/xg27-sensor-dashboard/internal/mqtt"
	"github.com/belavarga1117/xg27-sensor-dashboard/internal/payload"
	"github.com/belavarga1117/xg27-sensor-dashboard/internal/scan"
	"github.com/belavarga1117/xg27-sensor-dashboard/internal/views"
)

var appName = "xg27-nodewatch"

// bleRetryDelay is how long to wait before re-entering a scan that
// returned, so a flapping adapter keeps getting picked back up.
const bleRetryDelay = 5 * time.Second

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	slog.SetDefault(logging.New(cfg.AppEnv, cfg.LogLevel, appName))

	if err := views.LoadTemplates(); err != nil {
		slog.Error("failed to load templates", "error", err)
		os.Exit(1)
	}

	slog.Info("starting",
		"env", cfg.AppEnv,
		"log_level", cfg.LogLevel.String(),
		"device_name", cfg.DeviceName,
		"http_addr", cfg.HTTPAddr,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}

	slog.Info("shutting down")
}

func run(ctx context.Context, cfg config.Config) error {
	mqttClient := mqtt.NewClient(cfg, slog.Default())
	defer mqttClient.Disconnect()

	// Short timeout on the initial connect so a down broker does not
	// block the scanner; the client keeps retrying in the background.
	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	err := mqttClient.Connect(connectCtx)
	cancel()
	if err != nil {
		slog.Warn("mqtt connection failed (continuing without mqtt)", "error", err)
	}

	latest := &scan.Latest{}
	handler := scan.NewHandler(mqttClient, latest)
	listener := scan.NewListener(scan.Options{
		Adapter:    cfg.BLEAdapter,
		DeviceName: cfg.DeviceName,
		CompanyID:  payload.CompanyID,
	})

	go scan.Retry(ctx, bleRetryDelay, func(ctx context.Context) error {
		return listener.Run(ctx, handler.HandleMatch)
	})

	srv := &http.Server{
		Addr:        cfg.HTTPAddr,
		Handler:     httpapi.NewMux(cfg.DeviceName, latest),
		ReadTimeout: 5 * time.Second,
		// No write timeout: /events holds its connection open.
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http: listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
