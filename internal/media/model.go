package media

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item is a stored media asset. While authoring it belongs to a draft;
// publication moves ownership to the created entity.
type Item struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	DraftID    *string   `json:"draftId" gorm:"type:uuid;index"`
	EntityType string    `json:"entityType" gorm:"index"`
	EntityID   *string   `json:"entityId" gorm:"type:uuid;index"`
	URL        string    `json:"url" gorm:"not null"`
	Position   int       `json:"position" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName pins the storage table for media items.
func (Item) TableName() string { return "media_items" }

// BeforeCreate ensures a UUID exists.
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// ToDTO converts a media item into a response payload.
func (i Item) ToDTO() map[string]any {
	payload := map[string]any{
		"id":        i.ID,
		"url":       i.URL,
		"position":  i.Position,
		"createdAt": i.CreatedAt,
		"updatedAt": i.UpdatedAt,
	}
	if i.DraftID != nil {
		payload["draftId"] = *i.DraftID
	}
	if i.EntityID != nil {
		payload["entityId"] = *i.EntityID
		payload["entityType"] = i.EntityType
	}
	return payload
}
