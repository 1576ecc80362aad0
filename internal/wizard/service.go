package wizard

import (
	"context"
	"strings"
	"time"

	"github.com/casaflow/casaflow/internal/analytics"
	"github.com/casaflow/casaflow/internal/observability"
)

// Creators groups the type-specific entity creation paths the publication
// flow dispatches to. Each performs its own validation and persistence.
type Creators struct {
	Property PropertyCreator
	Land     LandCreator
	Blog     BlogCreator
}

// ServiceConfig wires the collaborators of the wizard service.
type ServiceConfig struct {
	Repo     Repository
	Steps    StepProvider
	Creators Creators
	Media    MediaMover
	Tracker  analytics.Tracker
}

// Service orchestrates saving and publishing wizard drafts.
type Service struct {
	repo     Repository
	steps    StepProvider
	creators Creators
	media    MediaMover
	tracker  analytics.Tracker
}

// NewService constructs the wizard service. The step provider defaults to
// the built-in tables and the tracker to a no-op.
func NewService(cfg ServiceConfig) *Service {
	steps := cfg.Steps
	if steps == nil {
		steps = BuiltinSteps{}
	}
	tracker := cfg.Tracker
	if tracker == nil {
		tracker = analytics.NopTracker{}
	}

	return &Service{
		repo:     cfg.Repo,
		steps:    steps,
		creators: cfg.Creators,
		media:    cfg.Media,
		tracker:  tracker,
	}
}

// SaveDraftInput carries one step submission from the wizard UI.
type SaveDraftInput struct {
	DraftID        string
	UserID         string
	WizardType     string
	WizardConfigID string
	FormData       map[string]any
	CurrentStep    string
	Title          *string
	Description    *string
}

// DraftSummary is the result of a save operation. StepValid reports whether
// the submitted step passed validation; an invalid step is still persisted,
// only its completion bookkeeping is withheld.
type DraftSummary struct {
	ID                   string    `json:"id"`
	WizardType           string    `json:"wizardType"`
	CurrentStep          string    `json:"currentStep"`
	CompletionPercentage int       `json:"completionPercentage"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
	StepValid            bool      `json:"stepValid"`
	StepErrors           []string  `json:"stepErrors,omitempty"`
}

// SaveDraft loads or creates a draft, merges the submitted step data,
// recomputes completion, and persists with exactly one repository write.
// Ownership is checked before any mutation.
func (s *Service) SaveDraft(ctx context.Context, in SaveDraftInput) (*DraftSummary, error) {
	var draft *Draft

	if strings.TrimSpace(in.DraftID) != "" {
		record, err := s.repo.FindByID(ctx, in.DraftID)
		if err != nil {
			if isRecordMissing(err) {
				return nil, &NotFoundError{Entity: "wizard draft", ID: in.DraftID}
			}
			return nil, err
		}
		if record.UserID != strings.TrimSpace(in.UserID) {
			return nil, &UnauthorizedError{Reason: "not the owner of the draft"}
		}

		draft, err = FromRecord(record)
		if err != nil {
			return nil, err
		}
		draft.UpdateFormData(FormData(in.FormData))
		draft.UpdateCurrentStep(in.CurrentStep)
	} else {
		wizardType, err := ParseType(in.WizardType)
		if err != nil {
			return nil, err
		}
		draft, err = NewDraft(in.UserID, wizardType, in.WizardConfigID, FormData(in.FormData), in.CurrentStep)
		if err != nil {
			return nil, err
		}
	}

	if in.Title != nil {
		draft.UpdateTitle(*in.Title)
	}
	if in.Description != nil {
		draft.UpdateDescription(*in.Description)
	}

	steps, err := s.steps.Steps(draft.WizardType(), draft.ConfigID())
	if err != nil {
		return nil, err
	}

	draft.UpdateCompletionPercentage(Completion(draft.Progress(), draft.FormData(), steps))

	validation := ValidateStep(draft.CurrentStep(), draft.FormData(), steps)
	if validation.Valid {
		draft.MarkStepCompleted(draft.CurrentStep())
		// Marking can change what counts as satisfied; keep the stored
		// percentage in lockstep with the calculator.
		draft.UpdateCompletionPercentage(Completion(draft.Progress(), draft.FormData(), steps))
	}

	if err := s.repo.Save(ctx, draft.ToRecord()); err != nil {
		return nil, err
	}

	observability.DraftSaves.WithLabelValues(string(draft.WizardType())).Inc()
	s.tracker.Track(ctx, analytics.Event{
		Name:       analytics.EventDraftSaved,
		DraftID:    draft.ID(),
		UserID:     draft.UserID(),
		WizardType: string(draft.WizardType()),
		Step:       draft.CurrentStep(),
		At:         time.Now(),
	})
	if validation.Valid {
		s.tracker.Track(ctx, analytics.Event{
			Name:       analytics.EventStepCompleted,
			DraftID:    draft.ID(),
			UserID:     draft.UserID(),
			WizardType: string(draft.WizardType()),
			Step:       draft.CurrentStep(),
			At:         time.Now(),
		})
	}

	return &DraftSummary{
		ID:                   draft.ID(),
		WizardType:           string(draft.WizardType()),
		CurrentStep:          draft.CurrentStep(),
		CompletionPercentage: draft.Completion(),
		Title:                draft.Title(),
		Description:          draft.Description(),
		CreatedAt:            draft.CreatedAt(),
		UpdatedAt:            draft.UpdatedAt(),
		StepValid:            validation.Valid,
		StepErrors:           validation.Errors,
	}, nil
}

// GetDraft returns a draft record after enforcing ownership.
func (s *Service) GetDraft(ctx context.Context, draftID, userID string) (*DraftRecord, error) {
	record, err := s.repo.FindByID(ctx, draftID)
	if err != nil {
		if isRecordMissing(err) {
			return nil, &NotFoundError{Entity: "wizard draft", ID: draftID}
		}
		return nil, err
	}
	if record.UserID != strings.TrimSpace(userID) {
		return nil, &UnauthorizedError{Reason: "not the owner of the draft"}
	}
	return record, nil
}

// ListDrafts returns all drafts owned by a user.
func (s *Service) ListDrafts(ctx context.Context, userID string) ([]DraftRecord, error) {
	return s.repo.ListByUser(ctx, userID)
}

// DiscardDraft deletes a draft without publishing it.
func (s *Service) DiscardDraft(ctx context.Context, draftID, userID string) error {
	record, err := s.repo.FindByID(ctx, draftID)
	if err != nil {
		if isRecordMissing(err) {
			return &NotFoundError{Entity: "wizard draft", ID: draftID}
		}
		return err
	}
	if record.UserID != strings.TrimSpace(userID) {
		return &UnauthorizedError{Reason: "not the owner of the draft"}
	}

	if err := s.repo.Delete(ctx, draftID); err != nil {
		if isRecordMissing(err) {
			return &NotFoundError{Entity: "wizard draft", ID: draftID}
		}
		return err
	}
	return nil
}

// StepTable exposes the step definitions for a wizard type, used by clients
// to render navigation.
func (s *Service) StepTable(wizardType Type, configID string) ([]StepDefinition, error) {
	return s.steps.Steps(wizardType, configID)
}
