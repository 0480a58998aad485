package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Greenrenge/cf-webhook-fanout/config"
	"github.com/Greenrenge/cf-webhook-fanout/deliverylog"
	logpostgres "github.com/Greenrenge/cf-webhook-fanout/deliverylog/postgres"
	"github.com/Greenrenge/cf-webhook-fanout/endpoint"
	endpointpostgres "github.com/Greenrenge/cf-webhook-fanout/endpoint/postgres"
	"github.com/Greenrenge/cf-webhook-fanout/fanout"
	"github.com/Greenrenge/cf-webhook-fanout/internal/http/chi"
	"github.com/Greenrenge/cf-webhook-fanout/metrics"
	"github.com/Greenrenge/cf-webhook-fanout/seed"
	"github.com/Greenrenge/cf-webhook-fanout/webhook"
	webhookpostgres "github.com/Greenrenge/cf-webhook-fanout/webhook/postgres"
	"github.com/rs/zerolog/log"
)

const TIMEOUT = 30 * time.Second

/*
 * Imports flow in one direction only: the application (api, cli) imports
 * the business layers, which import the storage layer.
 */

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	logger := log.With().Str("service", "webhook-fanout").Logger()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	endpointRepo, err := endpointpostgres.NewRepository(cfg.DatabaseURL)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer endpointRepo.Close(ctx)
	webhookRepo, err := webhookpostgres.NewRepository(cfg.DatabaseURL)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer webhookRepo.Close(ctx)
	logRepo, err := logpostgres.NewRepository(cfg.DatabaseURL)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer logRepo.Close(ctx)

	if err := createTables(ctx, endpointRepo, webhookRepo, logRepo); err != nil {
		fmt.Println(err)
		return
	}

	endpointService := endpoint.NewService(endpointRepo)
	logService := deliverylog.NewService(logRepo)
	dispatcher := fanout.NewEngine(cfg.GetDispatchTimeout(), logRepo, logger)
	webhookService := webhook.NewService(webhookRepo, endpointService, dispatcher, logRepo, logger)

	if cfg.SeedFile != "" {
		loader := seed.NewLoader()
		if err := loader.Load(cfg.SeedFile); err != nil {
			fmt.Println(err)
			return
		}
		created, err := loader.Apply(ctx, endpointService)
		if err != nil {
			fmt.Println(err)
			return
		}
		logger.Info().Int("created", created).Msg("endpoint seed applied")
	}

	collector := metrics.NewSQLCollector(webhookRepo.DB)
	exporter, err := metrics.NewOTelExporter(collector)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer exporter.Shutdown(ctx)

	r := chi.Handlers(ctx, cfg, endpointService, webhookService, logService, exporter.ServeHTTP())
	http.Handle("/", r)
	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      http.DefaultServeMux,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	fmt.Printf("Listening on port %s\n", cfg.Port)
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		fmt.Println(err)
		return
	}
	err = <-errShutdown
	if err != nil {
		fmt.Println(err)
		return
	}
}

func createTables(ctx context.Context, endpoints *endpointpostgres.Repository, webhooks *webhookpostgres.Repository, logs *logpostgres.Repository) error {
	if err := endpoints.CreateTable(ctx); err != nil {
		return err
	}
	if err := webhooks.CreateTable(ctx); err != nil {
		return err
	}
	return logs.CreateTable(ctx)
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		fmt.Printf("\nShutting down server...\n")
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	default:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	}
}
