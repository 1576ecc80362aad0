package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/casaflow/casaflow/internal/mq"
)

// EventSink persists consumed events; satisfied by Store.
type EventSink interface {
	Create(ctx context.Context, record *EventRecord) error
}

// Worker consumes wizard events from Kafka and materialises them into the
// events table for the admin dashboard.
type Worker struct {
	sink EventSink
}

// NewWorker constructs an event worker.
func NewWorker(sink EventSink) *Worker {
	return &Worker{sink: sink}
}

// HandleMessage decodes and persists a single wizard event.
func (w *Worker) HandleMessage(ctx context.Context, msg mq.Message) error {
	if w == nil || w.sink == nil {
		return fmt.Errorf("analytics worker not initialised")
	}

	var event Event
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("decode wizard event: %w", err)
	}
	if strings.TrimSpace(event.Name) == "" {
		log.Printf("analytics worker: skipping event without a name (key=%s)", string(msg.Key))
		return nil
	}

	occurredAt := event.At
	if occurredAt.IsZero() {
		occurredAt = msg.Time
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	record := &EventRecord{
		Name:       event.Name,
		DraftID:    event.DraftID,
		UserID:     event.UserID,
		WizardType: event.WizardType,
		Step:       event.Step,
		OccurredAt: occurredAt,
	}
	if event.Payload != nil {
		record.Payload = datatypes.JSONMap(event.Payload)
	}

	if err := w.sink.Create(ctx, record); err != nil {
		return fmt.Errorf("persist wizard event %s: %w", event.Name, err)
	}
	return nil
}

// RunConsumer starts the provided consumer using the worker handler.
func (w *Worker) RunConsumer(ctx context.Context, consumer *mq.Consumer) error {
	if consumer == nil {
		return fmt.Errorf("consumer is nil")
	}
	return consumer.Run(ctx)
}
