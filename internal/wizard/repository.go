package wizard

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository defines the persistence contract for wizard drafts.
type Repository interface {
	FindByID(ctx context.Context, id string) (*DraftRecord, error)
	ListByUser(ctx context.Context, userID string) ([]DraftRecord, error)
	Save(ctx context.Context, record *DraftRecord) error
	Delete(ctx context.Context, id string) error
}

// GormRepository implements Repository using GORM.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository constructs a repository.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// FindByID returns a draft record by ID.
func (r *GormRepository) FindByID(ctx context.Context, id string) (*DraftRecord, error) {
	var record DraftRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByUser returns all drafts owned by a user, most recently updated first.
func (r *GormRepository) ListByUser(ctx context.Context, userID string) ([]DraftRecord, error) {
	var records []DraftRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Save upserts a draft record by primary key.
func (r *GormRepository) Save(ctx context.Context, record *DraftRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(record).Error
}

// Delete removes a draft record.
func (r *GormRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&DraftRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// isRecordMissing reports whether a repository error means the row is gone.
func isRecordMissing(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
