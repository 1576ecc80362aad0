package media

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Repository persists media items via GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a media repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Attach stores a media item owned by a draft.
func (r *Repository) Attach(ctx context.Context, item *Item) error {
	if item.DraftID == nil || strings.TrimSpace(*item.DraftID) == "" {
		return errors.New("media item must reference a draft")
	}
	return r.db.WithContext(ctx).Create(item).Error
}

// ListByDraft returns all media items still owned by a draft, in position order.
func (r *Repository) ListByDraft(ctx context.Context, draftID string) ([]Item, error) {
	var items []Item
	err := r.db.WithContext(ctx).
		Where("draft_id = ?", draftID).
		Order("position ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// MoveToPublished reassigns every media item of a draft to the published
// entity. Reassigning a draft without media is not an error.
func (r *Repository) MoveToPublished(ctx context.Context, draftID, entityType, publishedID string) error {
	return r.db.WithContext(ctx).
		Model(&Item{}).
		Where("draft_id = ?", draftID).
		Updates(map[string]any{
			"draft_id":    nil,
			"entity_type": entityType,
			"entity_id":   publishedID,
		}).Error
}
