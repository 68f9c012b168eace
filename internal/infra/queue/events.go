package queue

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// JobEvent is emitted whenever a background job reaches a terminal state.
type JobEvent struct {
	Type       string    `json:"type"`
	JobID      uuid.UUID `json:"job_id"`
	ProjectID  uuid.UUID `json:"project_id"`
	Status     string    `json:"status"`
	Message    string    `json:"message,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

const (
	EventCSVIngest = "csv.ingest"
	EventExport    = "site.export"
	EventPublish   = "site.publish"
)

// EventPublisher publishes JobEvents. A nil connection disables it and
// Publish becomes a no-op, so deployments without a broker still work.
type EventPublisher struct {
	conn  *amqp.Connection
	queue string
	log   *zap.Logger

	mu  sync.Mutex
	pub *Publisher
}

func NewEventPublisher(conn *amqp.Connection, queue string, log *zap.Logger) *EventPublisher {
	return &EventPublisher{conn: conn, queue: queue, log: log}
}

func (e *EventPublisher) Enabled() bool {
	return e != nil && e.conn != nil
}

// Publish is best effort: failures are logged and never returned to the job.
func (e *EventPublisher) Publish(ctx context.Context, ev JobEvent) {
	if !e.Enabled() {
		return
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pub == nil {
		p, err := NewPublisher(e.conn, e.queue, e.log)
		if err != nil {
			e.log.Sugar().Warnw("job event publisher unavailable", "err", err)
			return
		}
		e.pub = p
	}
	if err := e.pub.PublishJSON(ctx, ev); err != nil {
		e.log.Sugar().Warnw("publish job event", "type", ev.Type, "job_id", ev.JobID, "err", err)
		// channel is likely closed; reopen on the next event
		_ = e.pub.Close()
		e.pub = nil
	}
}

func (e *EventPublisher) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pub != nil {
		err := e.pub.Close()
		e.pub = nil
		return err
	}
	return nil
}
