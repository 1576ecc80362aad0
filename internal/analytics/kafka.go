package analytics

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/casaflow/casaflow/internal/mq"
)

// KafkaTracker publishes analytics events to the wizard events topic.
// Delivery failures are logged and swallowed so save and publish flows
// never fail because of analytics.
type KafkaTracker struct {
	producer *mq.Producer
}

// NewKafkaTracker wraps a producer as a Tracker.
func NewKafkaTracker(producer *mq.Producer) *KafkaTracker {
	return &KafkaTracker{producer: producer}
}

// Track implements Tracker.
func (t *KafkaTracker) Track(ctx context.Context, event Event) {
	if t == nil || t.producer == nil {
		return
	}

	if event.At.IsZero() {
		event.At = time.Now()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("analytics: failed to encode event %s: %v", event.Name, err)
		return
	}

	headers := map[string]string{"event": event.Name}
	if err := t.producer.Publish(ctx, event.DraftID, payload, headers); err != nil {
		log.Printf("analytics: failed to publish event %s for draft %s: %v", event.Name, event.DraftID, err)
	}
}
