package listing

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/casaflow/casaflow/internal/wizard"
)

// Store is the persistence subset the creation service needs.
type Store interface {
	CreateProperty(ctx context.Context, entity *Property) error
	CreateLand(ctx context.Context, entity *Land) error
	CreateBlogPost(ctx context.Context, entity *BlogPost) error
}

// Service implements the entity creation paths the wizard dispatches to.
// Each path validates its own input and persists the entity.
type Service struct {
	store Store
}

// NewService constructs the creation service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// CreateProperty validates and persists a property listing.
func (s *Service) CreateProperty(ctx context.Context, in wizard.PropertyInput) (wizard.PublishedEntity, error) {
	title := strings.TrimSpace(in.Title)
	if len(title) < 2 {
		return wizard.PublishedEntity{}, errors.New("property title must be at least 2 characters")
	}
	if in.Price <= 0 {
		return wizard.PublishedEntity{}, errors.New("property price must be positive")
	}
	if strings.TrimSpace(in.PropertyType) == "" {
		return wizard.PublishedEntity{}, errors.New("property type is required")
	}

	entity := &Property{
		Title:        title,
		Description:  strings.TrimSpace(in.Description),
		Price:        in.Price,
		Currency:     currencyOrDefault(in.Currency),
		PropertyType: strings.TrimSpace(in.PropertyType),
		Images:       datatypes.NewJSONSlice(in.Images),
		Features: datatypes.JSONMap{
			"bedrooms":  in.Features.Bedrooms,
			"bathrooms": in.Features.Bathrooms,
			"area":      in.Features.Area,
			"amenities": in.Features.Amenities,
		},
	}
	if in.Address != nil {
		entity.Address = datatypes.JSONMap(in.Address)
	}

	if err := s.store.CreateProperty(ctx, entity); err != nil {
		return wizard.PublishedEntity{}, err
	}
	return wizard.PublishedEntity{ID: entity.ID, Title: entity.Title}, nil
}

// CreateLand validates and persists a land listing.
func (s *Service) CreateLand(ctx context.Context, in wizard.LandInput) (wizard.PublishedEntity, error) {
	name := strings.TrimSpace(in.Name)
	if len(name) < 2 {
		return wizard.PublishedEntity{}, errors.New("land name must be at least 2 characters")
	}
	if in.Area <= 0 {
		return wizard.PublishedEntity{}, errors.New("land area must be positive")
	}
	if in.Price <= 0 {
		return wizard.PublishedEntity{}, errors.New("land price must be positive")
	}
	if strings.TrimSpace(in.LandType) == "" {
		return wizard.PublishedEntity{}, errors.New("land type is required")
	}

	entity := &Land{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Area:        in.Area,
		Price:       in.Price,
		Currency:    currencyOrDefault(in.Currency),
		LandType:    strings.TrimSpace(in.LandType),
		Features:    datatypes.NewJSONSlice(in.Features),
		Images:      datatypes.NewJSONSlice(in.Images),
	}
	if in.Location != nil {
		entity.Location = datatypes.JSONMap(in.Location)
	}

	if err := s.store.CreateLand(ctx, entity); err != nil {
		return wizard.PublishedEntity{}, err
	}
	return wizard.PublishedEntity{ID: entity.ID, Title: entity.Name}, nil
}

// CreateBlogPost validates and persists a blog post.
func (s *Service) CreateBlogPost(ctx context.Context, in wizard.BlogPostInput) (wizard.PublishedEntity, error) {
	title := strings.TrimSpace(in.Title)
	if len(title) < 2 {
		return wizard.PublishedEntity{}, errors.New("blog title must be at least 2 characters")
	}
	if strings.TrimSpace(in.Content) == "" {
		return wizard.PublishedEntity{}, errors.New("blog content is required")
	}

	entity := &BlogPost{
		Title:       title,
		Content:     in.Content,
		Author:      strings.TrimSpace(in.Author),
		Category:    strings.TrimSpace(in.Category),
		Tags:        datatypes.NewJSONSlice(in.Tags),
		Excerpt:     strings.TrimSpace(in.Excerpt),
		CoverImage:  strings.TrimSpace(in.CoverImage),
		PublishedAt: time.Now(),
	}
	if in.SEO != nil {
		entity.SEO = datatypes.JSONMap(in.SEO)
	}

	if err := s.store.CreateBlogPost(ctx, entity); err != nil {
		return wizard.PublishedEntity{}, err
	}
	return wizard.PublishedEntity{ID: entity.ID, Title: entity.Title}, nil
}

func currencyOrDefault(currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return "USD"
	}
	return currency
}
