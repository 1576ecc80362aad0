package analytics

import (
	"context"
	"time"
)

// Event names emitted by the wizard flows.
const (
	EventStepStarted   = "wizard.step_started"
	EventStepCompleted = "wizard.step_completed"
	EventDraftSaved    = "wizard.draft_saved"
	EventPublished     = "wizard.published"
)

// Event is a fire-and-forget analytics record describing wizard activity.
type Event struct {
	Name       string         `json:"name"`
	DraftID    string         `json:"draftId"`
	UserID     string         `json:"userId"`
	WizardType string         `json:"wizardType"`
	Step       string         `json:"step,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
	At         time.Time      `json:"at"`
}

// Tracker receives analytics events. Implementations must never let a
// delivery failure escape to the caller; tracking is best effort.
type Tracker interface {
	Track(ctx context.Context, event Event)
}

// NopTracker discards all events.
type NopTracker struct{}

// Track implements Tracker.
func (NopTracker) Track(context.Context, Event) {}
