package consumer

import (
	"context"
	"encoding/json"
	"time"

	"hris-payroll/internal/events"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// DraftRecalculator refreshes the employee's entry in every draft run whose
// month intersects [start, end] and reports how many runs it touched.
type DraftRecalculator interface {
	RecalculateDraftRuns(ctx context.Context, employeeID string, start, end time.Time) (int, error)
}

const maxRetryDelay = 30 * time.Second

// retryDelay doubles from one second up to maxRetryDelay.
var retryDelay = func(attempt int) time.Duration {
	d := time.Second << min(attempt-1, 5)
	return min(d, maxRetryDelay)
}

// ConsumeLeaveLifecycle keeps draft payroll runs in step with leave
// approvals. Undecodable and unrelated messages are committed and skipped.
// A failed recalculation is retried in place, so no later offset is
// committed past it.
func ConsumeLeaveLifecycle(
	ctx context.Context,
	reader MessageReader,
	recalculator DraftRecalculator,
	logger *zap.Logger,
) {
	if logger == nil {
		logger = zap.L()
	}
	log := logger.Named("kafka.consumer.leave_lifecycle")
	log.Info("leave lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave lifecycle consumer stopped")
				return
			}
			log.Error("fetch leave lifecycle message failed", zap.Error(err))
			continue
		}

		for attempt := 1; !handleLeaveMessage(ctx, msg, recalculator, log); attempt++ {
			delay := retryDelay(attempt)
			log.Warn("retrying leave lifecycle message",
				zap.Int64("offset", msg.Offset),
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay),
			)
			select {
			case <-ctx.Done():
				log.Info("leave lifecycle consumer stopped")
				return
			case <-time.After(delay):
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave lifecycle message failed", zap.Error(err))
		}
	}
}

// handleLeaveMessage reports whether msg should be committed.
func handleLeaveMessage(
	ctx context.Context,
	msg kafkago.Message,
	recalculator DraftRecalculator,
	log *zap.Logger,
) bool {
	var event events.LeaveApprovedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode leave event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		return true
	}

	if event.EventType != events.LeaveApproved {
		return true
	}

	if _, err := uuid.Parse(event.EmployeeID); err != nil {
		log.Warn("leave_approved event has invalid employee_id, skipping",
			zap.String("leave_id", event.LeaveID),
			zap.String("employee_id", event.EmployeeID),
		)
		return true
	}

	start, end, err := event.Dates()
	if err != nil {
		log.Warn("leave_approved event has invalid dates, skipping",
			zap.String("leave_id", event.LeaveID),
			zap.Error(err),
		)
		return true
	}

	count, err := recalculator.RecalculateDraftRuns(ctx, event.EmployeeID, start, end)
	if err != nil {
		log.Error("recalculate draft payroll runs failed",
			zap.String("leave_id", event.LeaveID),
			zap.String("employee_id", event.EmployeeID),
			zap.Error(err),
		)
		return false
	}

	log.Info("draft payroll runs recalculated from leave_approved event",
		zap.String("leave_id", event.LeaveID),
		zap.String("employee_id", event.EmployeeID),
		zap.Int("runs", count),
	)
	return true
}
