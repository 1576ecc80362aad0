package analytics

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/casaflow/casaflow/internal/mq"
)

type fakeSink struct {
	records []*EventRecord
	err     error
}

func (f *fakeSink) Create(ctx context.Context, record *EventRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, record)
	return nil
}

func TestWorkerPersistsEvent(t *testing.T) {
	sink := &fakeSink{}
	worker := NewWorker(sink)

	event := Event{
		Name:       EventPublished,
		DraftID:    "draft-1",
		UserID:     "user-1",
		WizardType: "property",
		Payload:    map[string]any{"publishedId": "prop-1"},
		At:         time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	value, err := json.Marshal(event)
	require.NoError(t, err)

	err = worker.HandleMessage(context.Background(), mq.Message{Key: []byte("draft-1"), Value: value})
	require.NoError(t, err)

	require.Len(t, sink.records, 1)
	record := sink.records[0]
	require.Equal(t, EventPublished, record.Name)
	require.Equal(t, "draft-1", record.DraftID)
	require.Equal(t, "property", record.WizardType)
	require.Equal(t, "prop-1", record.Payload["publishedId"])
	require.True(t, record.OccurredAt.Equal(event.At))
}

func TestWorkerSkipsUnnamedEvents(t *testing.T) {
	sink := &fakeSink{}
	worker := NewWorker(sink)

	err := worker.HandleMessage(context.Background(), mq.Message{Value: []byte(`{"draftId":"d-1"}`)})
	require.NoError(t, err)
	require.Empty(t, sink.records)
}

func TestWorkerRejectsMalformedPayload(t *testing.T) {
	worker := NewWorker(&fakeSink{})

	err := worker.HandleMessage(context.Background(), mq.Message{Value: []byte("not-json")})
	require.Error(t, err)
}

func TestWorkerFallsBackToMessageTime(t *testing.T) {
	sink := &fakeSink{}
	worker := NewWorker(sink)

	value, err := json.Marshal(Event{Name: EventDraftSaved, DraftID: "draft-1"})
	require.NoError(t, err)

	msgTime := time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC)
	err = worker.HandleMessage(context.Background(), mq.Message{Value: value, Time: msgTime})
	require.NoError(t, err)

	require.True(t, sink.records[0].OccurredAt.Equal(msgTime))
}
