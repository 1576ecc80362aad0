package listing

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository persists published listings via GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a listing repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateProperty persists a property listing.
func (r *Repository) CreateProperty(ctx context.Context, entity *Property) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// CreateLand persists a land listing.
func (r *Repository) CreateLand(ctx context.Context, entity *Land) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// CreateBlogPost persists a blog post.
func (r *Repository) CreateBlogPost(ctx context.Context, entity *BlogPost) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// ListProperties returns property listings, newest first.
func (r *Repository) ListProperties(ctx context.Context) ([]Property, error) {
	var entities []Property
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// ListLands returns land listings, newest first.
func (r *Repository) ListLands(ctx context.Context) ([]Land, error) {
	var entities []Land
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// ListBlogPosts returns blog posts, newest first.
func (r *Repository) ListBlogPosts(ctx context.Context) ([]BlogPost, error) {
	var entities []BlogPost
	if err := r.db.WithContext(ctx).Order("published_at DESC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// FindProperty returns a property by ID.
func (r *Repository) FindProperty(ctx context.Context, id string) (*Property, error) {
	var entity Property
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// FindLand returns a land parcel by ID.
func (r *Repository) FindLand(ctx context.Context, id string) (*Land, error) {
	var entity Land
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// FindBlogPost returns a blog post by ID.
func (r *Repository) FindBlogPost(ctx context.Context, id string) (*BlogPost, error) {
	var entity BlogPost
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// IsNotFound reports whether an error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
