package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EventRecord persists a consumed wizard event for the admin dashboard.
type EventRecord struct {
	ID         string            `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string            `json:"name" gorm:"not null;index"`
	DraftID    string            `json:"draftId" gorm:"type:uuid;index"`
	UserID     string            `json:"userId" gorm:"type:uuid;index"`
	WizardType string            `json:"wizardType" gorm:"index"`
	Step       string            `json:"step"`
	Payload    datatypes.JSONMap `json:"payload" gorm:"type:jsonb"`
	OccurredAt time.Time         `json:"occurredAt" gorm:"index"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// TableName pins the storage table for event records.
func (EventRecord) TableName() string { return "wizard_events" }

// BeforeCreate ensures a UUID exists.
func (e *EventRecord) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// Store persists event records via GORM.
type Store struct {
	db *gorm.DB
}

// NewStore constructs an event store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts a new event record.
func (s *Store) Create(ctx context.Context, record *EventRecord) error {
	return s.db.WithContext(ctx).Create(record).Error
}

// CountByName aggregates event totals per event name since a cut-off.
func (s *Store) CountByName(ctx context.Context, since time.Time) (map[string]int, error) {
	type row struct {
		Name  string
		Total int
	}

	var rows []row
	err := s.db.WithContext(ctx).
		Model(&EventRecord{}).
		Select("name, COUNT(*) as total").
		Where("occurred_at >= ?", since).
		Group("name").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Name] = r.Total
	}
	return counts, nil
}
