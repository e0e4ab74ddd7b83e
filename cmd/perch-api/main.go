package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/birbparty/perch/internal/drift"
	"github.com/birbparty/perch/internal/gateway"
	"github.com/birbparty/perch/internal/instance"
	"github.com/birbparty/perch/internal/telemetry"
	"github.com/birbparty/perch/sdk"
)

func main() {
	telCfg := telemetry.NewConfigFromEnv("perch-api")
	if err := telemetry.Init(telCfg); err != nil {
		logrus.WithError(err).Fatal("Failed to initialize telemetry")
	}
	log := telemetry.L()

	cfg, err := gateway.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	details, err := instance.Default()
	if err != nil {
		log.WithError(err).Fatal("Failed to load instance details")
	}
	log.WithFields(logrus.Fields{
		"instance":    details.Name,
		"url":         details.URL,
		"api_version": details.APIVersion,
	}).Info("perch API starting")

	// Prometheus registry shared by client and HTTP metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	observers := []sdk.Observer{telemetry.NewClientMetrics(reg)}
	if telCfg.EnableMetrics {
		otelObserver, err := telemetry.NewOTELObserver(nil)
		if err != nil {
			log.WithError(err).Fatal("Failed to create OTEL observer")
		}
		observers = append(observers, otelObserver)
	}

	// Drift reporting is optional
	driftCfg, err := drift.NewConfigFromEnv()
	if err != nil {
		log.WithError(err).Fatal("Failed to load drift configuration")
	}
	var (
		driftClient *drift.Client
		reporter    *drift.Reporter
	)
	if driftCfg.Enabled() {
		driftClient, err = drift.NewClient(driftCfg)
		if err != nil {
			log.WithError(err).Fatal("Failed to connect drift reporting")
		}
		reporter = drift.NewReporter(driftClient, details.Name, driftCfg.BufferSize, driftCfg.PublishTimeout, log)
		observers = append(observers, reporter)
	} else {
		log.Info("NATS_URL not set, drift reporting disabled")
	}

	clientCfg, err := details.ClientConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to build client configuration")
	}
	client, err := sdk.NewClient(clientCfg.
		WithTimeout(cfg.RequestTimeout).
		WithLogger(log).
		WithObserver(sdk.NewCompositeObserver(observers...)).
		WithRoundTripper(telemetry.NewTracingRoundTripper))
	if err != nil {
		log.WithError(err).Fatal("Failed to create Lemmy client")
	}
	defer client.Close()

	handler := gateway.NewHandler(client, cfg.RequestTimeout)
	if driftClient != nil {
		handler.AddHealthCheck("drift", driftClient)
	}

	app := gateway.NewApp(cfg, handler, details, telemetry.NewHTTPMetrics(reg), reg)

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("Shutting down gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.WithError(err).Error("Server forced to shutdown")
		}
	}()

	log.WithField("addr", cfg.Addr()).Info("perch API listening")
	if err := app.Listen(cfg.Addr()); err != nil {
		log.WithError(err).Error("Server stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	// Flush queued drift reports before the connection goes away
	if reporter != nil {
		if err := reporter.Close(shutdownCtx); err != nil {
			log.WithError(err).Warn("Drift reports left unpublished")
		}
		stats := reporter.Stats()
		log.WithFields(logrus.Fields{
			"published": stats.Published,
			"failed":    stats.Failed,
			"dropped":   stats.Dropped,
		}).Info("Drift reporter stopped")
	}
	if driftClient != nil {
		if err := driftClient.Close(); err != nil {
			log.WithError(err).Warn("Failed to close NATS connection")
		}
	}

	telemetry.Shutdown(shutdownCtx)
}
