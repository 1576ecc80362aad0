package wizard

import (
	"time"

	"gorm.io/datatypes"
)

// DraftRecord is the flattened persisted shape of a Draft. Form data and
// step progress are stored as jsonb; progress maps step ids to RFC 3339
// completion timestamps so the ToRecord/FromRecord round-trip is lossless.
type DraftRecord struct {
	ID                   string            `json:"id" gorm:"type:uuid;primaryKey"`
	UserID               string            `json:"userId" gorm:"type:uuid;not null;index"`
	WizardType           string            `json:"wizardType" gorm:"not null;index"`
	WizardConfigID       string            `json:"wizardConfigId" gorm:"not null;default:'default'"`
	FormData             datatypes.JSONMap `json:"formData" gorm:"type:jsonb"`
	CurrentStep          string            `json:"currentStep"`
	StepProgress         datatypes.JSONMap `json:"stepProgress" gorm:"type:jsonb"`
	CompletionPercentage int               `json:"completionPercentage" gorm:"not null;default:0"`
	Title                string            `json:"title"`
	Description          string            `json:"description"`
	CreatedAt            time.Time         `json:"createdAt"`
	UpdatedAt            time.Time         `json:"updatedAt"`
}

// TableName pins the storage table for draft records.
func (DraftRecord) TableName() string { return "wizard_drafts" }

// ToDTO converts a record into a response payload.
func (r DraftRecord) ToDTO() map[string]any {
	formData := map[string]any{}
	if r.FormData != nil {
		formData = map[string]any(r.FormData)
	}
	progress := map[string]any{}
	if r.StepProgress != nil {
		progress = map[string]any(r.StepProgress)
	}

	return map[string]any{
		"id":                   r.ID,
		"userId":               r.UserID,
		"wizardType":           r.WizardType,
		"wizardConfigId":       r.WizardConfigID,
		"formData":             formData,
		"currentStep":          r.CurrentStep,
		"stepProgress":         progress,
		"completionPercentage": r.CompletionPercentage,
		"title":                r.Title,
		"description":          r.Description,
		"createdAt":            r.CreatedAt,
		"updatedAt":            r.UpdatedAt,
	}
}

// ToRecord flattens the rich entity into its persisted representation.
func (d *Draft) ToRecord() *DraftRecord {
	progress := make(datatypes.JSONMap, len(d.progress))
	for stepID, at := range d.progress {
		progress[stepID] = at.UTC().Format(time.RFC3339Nano)
	}

	return &DraftRecord{
		ID:                   d.id,
		UserID:               d.userID,
		WizardType:           string(d.wizardType),
		WizardConfigID:       d.configID,
		FormData:             datatypes.JSONMap(d.formData.Clone()),
		CurrentStep:          d.currentStep,
		StepProgress:         progress,
		CompletionPercentage: d.completion,
		Title:                d.title,
		Description:          d.description,
		CreatedAt:            d.createdAt,
		UpdatedAt:            d.updatedAt,
	}
}

// FromRecord rebuilds the rich entity from a persisted record. Progress
// entries whose timestamps cannot be parsed keep the step marked, with the
// record's update time as completion time.
func FromRecord(record *DraftRecord) (*Draft, error) {
	progress := make(StepProgress, len(record.StepProgress))
	for stepID, raw := range record.StepProgress {
		text, _ := raw.(string)
		at, err := time.Parse(time.RFC3339Nano, text)
		if err != nil {
			at = record.UpdatedAt
		}
		progress[stepID] = at
	}

	return Reconstitute(ReconstituteParams{
		ID:          record.ID,
		UserID:      record.UserID,
		WizardType:  Type(record.WizardType),
		ConfigID:    record.WizardConfigID,
		FormData:    FormData(record.FormData),
		CurrentStep: record.CurrentStep,
		Progress:    progress,
		Completion:  record.CompletionPercentage,
		Title:       record.Title,
		Description: record.Description,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	})
}
