package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/config"
	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/http"
	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/log"
	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/repository"
	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/service"
	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/storage/db"
	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/storage/mq"
	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/telemetry"
	"github.com/fasia-660710731/CatfoodStore-FinalProject/pkg/cmdutil"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running api application: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log      config.Log
		Postgres config.Postgres
		HTTP     config.HTTP
		Kafka    config.Kafka
		Otel     config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("error creating pgx pool: %w", err)
	}
	defer pgxPool.Close()

	dbClient := db.NewClient(pgxPool)

	var producer mq.Producer = mq.NopProducer{}
	if cfg.Kafka.Enabled() {
		kafkaProducer, err := mq.NewKafkaProducer(ctx, cfg.Kafka)
		if err != nil {
			return fmt.Errorf("error creating kafka producer: %w", err)
		}
		defer kafkaProducer.Close()
		producer = kafkaProducer
	} else {
		logger.InfoContext(ctx, "kafka is not configured, product events are disabled")
	}

	productRepository := repository.NewProductRepository(dbClient)
	productService := service.NewProductService(logger, productRepository, producer)

	interruptChan := cmdutil.InterruptChan()

	svc := http.New(cfg.HTTP, logger, productService, dbClient)
	cleanup, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("error running http service: %w", err)
	}

	logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

	<-interruptChan

	logger.InfoContext(ctx, "http service is shutting down")
	if err := cleanup(ctx); err != nil {
		logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
	}

	logger.InfoContext(ctx, "http service is stopped")

	return nil
}
