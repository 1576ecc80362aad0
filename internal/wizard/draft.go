package wizard

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// StepProgress records which steps were marked complete and when.
type StepProgress map[string]time.Time

// Completed reports whether a step has been marked complete.
func (p StepProgress) Completed(stepID string) bool {
	_, ok := p[stepID]
	return ok
}

// Clone returns a copy of the progress map.
func (p StepProgress) Clone() StepProgress {
	out := make(StepProgress, len(p))
	for stepID, at := range p {
		out[stepID] = at
	}
	return out
}

// Draft is the aggregate root of an in-progress wizard session. The owner
// and wizard type are fixed at creation; every mutation bumps updatedAt.
type Draft struct {
	id          string
	userID      string
	wizardType  Type
	configID    string
	formData    FormData
	currentStep string
	progress    StepProgress
	completion  int
	title       string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewDraft creates a fresh draft with a generated identity. The completion
// percentage starts at zero; orchestration recomputes it before the first
// persist.
func NewDraft(userID string, wizardType Type, configID string, data FormData, currentStep string) (*Draft, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, &ValidationError{Field: "userId", Message: "must not be empty"}
	}
	if !wizardType.Valid() {
		return nil, &ValidationError{Field: "wizardType", Message: "unsupported wizard type"}
	}
	if strings.TrimSpace(configID) == "" {
		configID = DefaultConfigID
	}

	now := time.Now()
	return &Draft{
		id:          uuid.NewString(),
		userID:      userID,
		wizardType:  wizardType,
		configID:    configID,
		formData:    data.Clone(),
		currentStep: currentStep,
		progress:    StepProgress{},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstituteParams carries the persisted fields of a draft.
type ReconstituteParams struct {
	ID          string
	UserID      string
	WizardType  Type
	ConfigID    string
	FormData    FormData
	CurrentStep string
	Progress    StepProgress
	Completion  int
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Reconstitute rebuilds a draft from persisted state. The stored completion
// percentage is trusted as-is; callers that mutate afterwards must recompute.
func Reconstitute(params ReconstituteParams) (*Draft, error) {
	if strings.TrimSpace(params.ID) == "" {
		return nil, &ValidationError{Field: "id", Message: "must not be empty"}
	}
	if strings.TrimSpace(params.UserID) == "" {
		return nil, &ValidationError{Field: "userId", Message: "must not be empty"}
	}
	if !params.WizardType.Valid() {
		return nil, &ValidationError{Field: "wizardType", Message: "unsupported wizard type"}
	}

	configID := params.ConfigID
	if strings.TrimSpace(configID) == "" {
		configID = DefaultConfigID
	}
	progress := params.Progress
	if progress == nil {
		progress = StepProgress{}
	}

	return &Draft{
		id:          params.ID,
		userID:      params.UserID,
		wizardType:  params.WizardType,
		configID:    configID,
		formData:    params.FormData.Clone(),
		currentStep: params.CurrentStep,
		progress:    progress.Clone(),
		completion:  clampPercentage(params.Completion),
		title:       params.Title,
		description: params.Description,
		createdAt:   params.CreatedAt,
		updatedAt:   params.UpdatedAt,
	}, nil
}

// UpdateFormData shallow-merges the partial data into the draft's form data.
func (d *Draft) UpdateFormData(partial FormData) {
	d.formData = d.formData.Merge(partial)
	d.touch()
}

// UpdateCurrentStep moves the "where the user left off" pointer. No
// validation happens here.
func (d *Draft) UpdateCurrentStep(stepID string) {
	d.currentStep = stepID
	d.touch()
}

// MarkStepCompleted records a step as complete. Re-marking an already
// complete step is a no-op.
func (d *Draft) MarkStepCompleted(stepID string) {
	if d.progress.Completed(stepID) {
		return
	}
	d.progress[stepID] = time.Now()
	d.touch()
}

// UpdateCompletionPercentage sets the derived completion value. Only
// orchestration calls this, immediately after running the calculator.
func (d *Draft) UpdateCompletionPercentage(value int) {
	d.completion = clampPercentage(value)
	d.touch()
}

// UpdateTitle sets the draft title.
func (d *Draft) UpdateTitle(title string) {
	d.title = title
	d.touch()
}

// UpdateDescription sets the draft description.
func (d *Draft) UpdateDescription(description string) {
	d.description = description
	d.touch()
}

func (d *Draft) ID() string { return d.id }

func (d *Draft) UserID() string { return d.userID }

func (d *Draft) WizardType() Type { return d.wizardType }

func (d *Draft) ConfigID() string { return d.configID }

func (d *Draft) FormData() FormData { return d.formData.Clone() }

func (d *Draft) CurrentStep() string { return d.currentStep }

func (d *Draft) Progress() StepProgress { return d.progress.Clone() }

func (d *Draft) Completion() int { return d.completion }

func (d *Draft) Title() string { return d.title }

func (d *Draft) Description() string { return d.description }

func (d *Draft) CreatedAt() time.Time { return d.createdAt }

func (d *Draft) UpdatedAt() time.Time { return d.updatedAt }

// touch bumps updatedAt, guaranteeing strict monotonic growth even when
// mutations land within the clock's resolution.
func (d *Draft) touch() {
	now := time.Now()
	if !now.After(d.updatedAt) {
		now = d.updatedAt.Add(time.Nanosecond)
	}
	d.updatedAt = now
}

func clampPercentage(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}
