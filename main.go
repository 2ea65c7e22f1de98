// package main provides the entry point for the cvebump microservice:
// finding ingestion, report generation, advisory mirroring, package
// freshness polling, and the GraphQL dashboard API.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/ash3dwards/cvebump/config"
	"github.com/ash3dwards/cvebump/database"
	reportevents "github.com/ash3dwards/cvebump/events/modules/reports"
	"github.com/ash3dwards/cvebump/internal/api"
	"github.com/ash3dwards/cvebump/internal/kafka"
	"github.com/ash3dwards/cvebump/internal/services"
	"github.com/ash3dwards/cvebump/util"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfgPath := util.GetEnvDefault("CVEBUMP_CONFIG", "config.yaml")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db := database.InitializeDatabase()
	logger := database.InitLogger()

	producer := reportevents.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	defer producer.Close()

	// Delivery worker consuming report.generated events
	if err := kafka.RunEventProcessor(ctx, cfg); err != nil {
		logger.Sugar().Warnf("Kafka event processor not started: %v", err)
	}

	// Background advisory mirror and package freshness poller
	mirror := services.NewAdvisoryMirror(db, cfg.Registry.URL, cfg.Registry.Ecosystems, logger)
	go mirror.Run(ctx, cfg.PollInterval())

	poller := services.NewFreshnessPoller(db, cfg.Registry.URL, cfg.PollInterval(), logger)
	go poller.Run(ctx)

	app := api.NewFiberApp(db, cfg, producer)

	log.Printf("Starting cvebump API on port %d", cfg.Server.Port)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
