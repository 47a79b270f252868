package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hris-payroll/internal/config"
	"hris-payroll/internal/events"
	"hris-payroll/internal/messaging/kafka/consumer"
	"hris-payroll/internal/shared/connection"

	"go.uber.org/zap"
)

// RunConsumer recalculates draft payroll runs when leave is approved.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if err := cfg.ValidateKafka(); err != nil {
		return err
	}

	in, err := connectDatabase(cfg)
	if err != nil {
		return err
	}
	defer in.Close()

	engine, err := loadEngine(cfg)
	if err != nil {
		return err
	}

	payrollService := newPayrollService(in, engine)

	reader := connection.KafkaReader(cfg.Kafka.Broker, events.LeaveLifecycleTopic, cfg.Kafka.ConsumerGroup)
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeLeaveLifecycle(ctx, reader, payrollService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
