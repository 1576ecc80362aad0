package listing

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Property is a published real-estate property listing.
type Property struct {
	ID           string                      `json:"id" gorm:"type:uuid;primaryKey"`
	Title        string                      `json:"title" gorm:"not null"`
	Description  string                      `json:"description"`
	Price        float64                     `json:"price" gorm:"not null"`
	Currency     string                      `json:"currency" gorm:"not null;default:'USD'"`
	PropertyType string                      `json:"propertyType" gorm:"not null;index"`
	Address      datatypes.JSONMap           `json:"address" gorm:"type:jsonb"`
	Features     datatypes.JSONMap           `json:"features" gorm:"type:jsonb"`
	Images       datatypes.JSONSlice[string] `json:"images" gorm:"type:jsonb"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}

// Land is a published land parcel listing.
type Land struct {
	ID          string                      `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string                      `json:"name" gorm:"not null"`
	Description string                      `json:"description"`
	Area        float64                     `json:"area" gorm:"not null"`
	Price       float64                     `json:"price" gorm:"not null"`
	Currency    string                      `json:"currency" gorm:"not null;default:'USD'"`
	LandType    string                      `json:"landType" gorm:"not null;index"`
	Location    datatypes.JSONMap           `json:"location" gorm:"type:jsonb"`
	Features    datatypes.JSONSlice[string] `json:"features" gorm:"type:jsonb"`
	Images      datatypes.JSONSlice[string] `json:"images" gorm:"type:jsonb"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

// BlogPost is a published blog article.
type BlogPost struct {
	ID          string                      `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string                      `json:"title" gorm:"not null"`
	Content     string                      `json:"content" gorm:"type:text;not null"`
	Author      string                      `json:"author"`
	Category    string                      `json:"category" gorm:"index"`
	Tags        datatypes.JSONSlice[string] `json:"tags" gorm:"type:jsonb"`
	Excerpt     string                      `json:"excerpt"`
	CoverImage  string                      `json:"coverImage"`
	SEO         datatypes.JSONMap           `json:"seo" gorm:"type:jsonb"`
	PublishedAt time.Time                   `json:"publishedAt"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

// BeforeCreate ensures a UUID exists.
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// BeforeCreate ensures a UUID exists.
func (l *Land) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// BeforeCreate ensures a UUID exists.
func (b *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// ToDTO converts a property into a response payload.
func (p Property) ToDTO() map[string]any {
	payload := map[string]any{
		"id":           p.ID,
		"title":        p.Title,
		"description":  p.Description,
		"price":        p.Price,
		"currency":     p.Currency,
		"propertyType": p.PropertyType,
		"images":       []string(p.Images),
		"createdAt":    p.CreatedAt,
		"updatedAt":    p.UpdatedAt,
	}
	payload["address"] = mapOrEmpty(p.Address)
	payload["features"] = mapOrEmpty(p.Features)
	return payload
}

// ToDTO converts a land parcel into a response payload.
func (l Land) ToDTO() map[string]any {
	payload := map[string]any{
		"id":          l.ID,
		"name":        l.Name,
		"description": l.Description,
		"area":        l.Area,
		"price":       l.Price,
		"currency":    l.Currency,
		"landType":    l.LandType,
		"features":    []string(l.Features),
		"images":      []string(l.Images),
		"createdAt":   l.CreatedAt,
		"updatedAt":   l.UpdatedAt,
	}
	payload["location"] = mapOrEmpty(l.Location)
	return payload
}

// ToDTO converts a blog post into a response payload.
func (b BlogPost) ToDTO() map[string]any {
	payload := map[string]any{
		"id":          b.ID,
		"title":       b.Title,
		"content":     b.Content,
		"author":      b.Author,
		"category":    b.Category,
		"tags":        []string(b.Tags),
		"excerpt":     b.Excerpt,
		"coverImage":  b.CoverImage,
		"publishedAt": b.PublishedAt,
		"createdAt":   b.CreatedAt,
		"updatedAt":   b.UpdatedAt,
	}
	payload["seo"] = mapOrEmpty(b.SEO)
	return payload
}

func mapOrEmpty(value datatypes.JSONMap) map[string]any {
	if value == nil {
		return map[string]any{}
	}
	return map[string]any(value)
}
