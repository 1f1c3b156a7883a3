package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ledgerhub/backend/internal/application/bus"
	appevent "github.com/ledgerhub/backend/internal/application/event"
	ledgerapp "github.com/ledgerhub/backend/internal/application/ledger"
	partyapp "github.com/ledgerhub/backend/internal/application/party"
	"github.com/ledgerhub/backend/internal/infrastructure/config"
	infraevent "github.com/ledgerhub/backend/internal/infrastructure/event"
	"github.com/ledgerhub/backend/internal/infrastructure/logger"
	"github.com/ledgerhub/backend/internal/infrastructure/persistence"
	"github.com/ledgerhub/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&cfg.Log)
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.Migrate(); err != nil {
		return err
	}
	log.Info("database ready",
		zap.String("host", cfg.Database.Host),
		zap.String("dbname", cfg.Database.DBName))

	personRepo := persistence.NewGormPersonRepository(db.DB)
	payableRepo := persistence.NewGormAccountPayableRepository(db.DB)
	receivableRepo := persistence.NewGormAccountReceivableRepository(db.DB)

	b := bus.New()
	partyapp.Register(b, partyapp.NewHandlers(personRepo, b, log))
	ledgerapp.RegisterPayable(b, ledgerapp.NewPayableHandlers(payableRepo, personRepo, b, log))
	ledgerapp.RegisterReceivable(b, ledgerapp.NewReceivableHandlers(receivableRepo, personRepo, b, log))

	var publisher *infraevent.KafkaPublisher
	if cfg.Kafka.Enabled {
		publisher = infraevent.NewKafkaPublisher(&cfg.Kafka, log)
		defer func() { _ = publisher.Close() }()
		appevent.Register(b, appevent.NewForwarder(publisher, log))
		log.Info("kafka publisher enabled",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic_prefix", cfg.Kafka.TopicPrefix))
	}

	engine := router.New(cfg, log, b, db)
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
