package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	. "github.com/DrGermanius/advfood/internal"
)

func main() {
	//decimals at json as string
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := NewConfig()
	if err != nil {
		log.Fatal(err)
	}

	sugaredLogger, err := NewLogger(cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}
	defer sugaredLogger.Sync()

	shutdownTracing, err := InitTracing(cfg.Tracing)
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	repository, err := NewRepository(cfg.DatabaseURI, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}
	defer repository.Close()

	shipping, err := NewShippingClient(cfg.Shipping, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	events, err := NewEventPublisher(cfg.Events, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}
	defer events.Close()

	service := NewService(repository, shipping, events, cfg.AuthSecret, sugaredLogger)
	handlers := NewHandlers(service, sugaredLogger)
	app := NewRouter(handlers)

	go func() {
		sugaredLogger.Infow("listening", "address", cfg.RunAddress, "provider", shipping.Provider())
		if err := app.Listen(cfg.RunAddress); err != nil {
			sugaredLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugaredLogger.Info("Shutting down service...")

	if err = app.Shutdown(); err != nil {
		sugaredLogger.Errorw("server shutdown", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = shutdownTracing(ctx); err != nil {
		sugaredLogger.Errorw("tracing shutdown", "error", err)
	}
}
