package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/config"
	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/logger"
	"storefront/internal/order"
	"storefront/internal/relay"
	"storefront/internal/storage"
	transport "storefront/internal/transport/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)

	store, err := storage.OpenBadger(cfg.DataDir)
	if err != nil {
		log.Fatal("failed to open storage", zap.Error(err))
	}
	defer store.Close()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatal("failed to load catalog", zap.Error(err))
	}

	cartStore := cart.NewStore(store, log)
	recorder := order.NewRecorder(store, log)

	var submitter relay.Submitter
	switch cfg.Relay.Mode {
	case "smtp":
		submitter = relay.NewSMTPSender(relay.SMTPConfig{
			Host:     cfg.Relay.SMTP.Host,
			Port:     cfg.Relay.SMTP.Port,
			User:     cfg.Relay.SMTP.User,
			Password: cfg.Relay.SMTP.Password,
			From:     cfg.Relay.SMTP.From,
			To:       cfg.Relay.SMTP.To,
			Subject:  cfg.Relay.Subject,
		})
	default:
		submitter = relay.NewFormRelay(cfg.Relay.URL, cfg.Relay.Subject, log)
	}

	chk := checkout.New(cartStore, cat, recorder, submitter, log)

	h := transport.NewHandler(cat, cartStore, recorder, chk, log)
	r := transport.Router(h, log)

	srv := &http.Server{
		Addr:    cfg.Port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("Starting storefront HTTP server", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-quit
	log.Info("Shutting down storefront HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	log.Info("Storefront HTTP server stopped gracefully")
}
