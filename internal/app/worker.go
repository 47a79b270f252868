package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hris-payroll/internal/config"
	"hris-payroll/internal/messaging/kafka"
	"hris-payroll/internal/messaging/kafka/producer"
	"hris-payroll/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays outbox rows to Kafka until SIGINT or SIGTERM.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	if err := cfg.ValidateKafka(); err != nil {
		return err
	}

	in, err := connectDatabase(cfg)
	if err != nil {
		return err
	}
	defer in.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(in.sqlDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		cfg.Kafka.OutboxInterval,
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}
