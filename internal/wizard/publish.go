package wizard

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/casaflow/casaflow/internal/analytics"
	"github.com/casaflow/casaflow/internal/observability"
)

// PublishedEntity is the opaque identity returned by a creation path.
type PublishedEntity struct {
	ID    string
	Title string
}

// PropertyInput is the creation shape mapped from property wizard form data.
type PropertyInput struct {
	Title        string
	Description  string
	Price        float64
	Currency     string
	PropertyType string
	Address      map[string]any
	Images       []string
	Features     PropertyFeatures
}

// PropertyFeatures is the features sub-object of a property listing.
type PropertyFeatures struct {
	Bedrooms  int
	Bathrooms int
	Area      float64
	Amenities []string
}

// LandInput is the creation shape mapped from land wizard form data.
type LandInput struct {
	Name        string
	Description string
	Area        float64
	Price       float64
	Currency    string
	LandType    string
	Location    map[string]any
	Features    []string
	Images      []string
}

// BlogPostInput is the creation shape mapped from blog wizard form data.
type BlogPostInput struct {
	Title      string
	Content    string
	Author     string
	Category   string
	Tags       []string
	Excerpt    string
	CoverImage string
	SEO        map[string]any
}

// PropertyCreator creates a property listing from wizard data.
type PropertyCreator interface {
	CreateProperty(ctx context.Context, in PropertyInput) (PublishedEntity, error)
}

// LandCreator creates a land listing from wizard data.
type LandCreator interface {
	CreateLand(ctx context.Context, in LandInput) (PublishedEntity, error)
}

// BlogCreator creates a blog post from wizard data.
type BlogCreator interface {
	CreateBlogPost(ctx context.Context, in BlogPostInput) (PublishedEntity, error)
}

// MediaMover reassigns media items from a draft to the published entity.
type MediaMover interface {
	MoveToPublished(ctx context.Context, draftID, entityType, publishedID string) error
}

// PublishInput requests the conversion of a draft into a published entity.
// FinalFormData, when non-nil, replaces the stored form data for this
// publication without a prior save round-trip.
type PublishInput struct {
	DraftID       string
	UserID        string
	FinalFormData map[string]any
}

// PublishSummary reports a successful publication.
type PublishSummary struct {
	PublishedID string    `json:"publishedId"`
	WizardType  string    `json:"wizardType"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"publishedAt"`
	DraftID     string    `json:"draftId"`
}

// Publish converts a draft into its concrete entity. Validation and creation
// failures leave the draft untouched; draft deletion is the final commit
// point, so a second publish of the same draft fails with not-found.
func (s *Service) Publish(ctx context.Context, in PublishInput) (*PublishSummary, error) {
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

	draft, err := FromRecord(record)
	if err != nil {
		return nil, err
	}

	effective := draft.FormData()
	if in.FinalFormData != nil {
		effective = FormData(in.FinalFormData)
	}

	steps, err := s.steps.Steps(draft.WizardType(), draft.ConfigID())
	if err != nil {
		return nil, err
	}

	if failures := readinessFailures(effective, steps); len(failures) > 0 {
		observability.PublishFailures.WithLabelValues("validation").Inc()
		return nil, &RuleViolationError{Code: CodePublishValidationFailed, Reasons: failures}
	}

	published, err := s.createEntity(ctx, draft.WizardType(), effective)
	if err != nil {
		if _, ok := AsRuleViolation(err); !ok {
			observability.PublishFailures.WithLabelValues("creation").Inc()
			err = fmt.Errorf("create %s from draft %s: %w", draft.WizardType(), draft.ID(), err)
		}
		return nil, err
	}

	// Past this point the entity exists. Media reassignment and draft
	// deletion are best effort: a failure leaves a published entity plus an
	// orphaned draft, which operators must reconcile from the logs.
	if s.media != nil {
		if err := s.media.MoveToPublished(ctx, draft.ID(), string(draft.WizardType()), published.ID); err != nil {
			observability.PublishFailures.WithLabelValues("media").Inc()
			log.Printf("wizard: ALERT %s %s created from draft %s but media reassignment failed, draft retained: %v",
				draft.WizardType(), published.ID, draft.ID(), err)
			return nil, fmt.Errorf("reassign media for draft %s: %w", draft.ID(), err)
		}
	}

	if err := s.repo.Delete(ctx, draft.ID()); err != nil && !isRecordMissing(err) {
		observability.PublishFailures.WithLabelValues("cleanup").Inc()
		log.Printf("wizard: ALERT %s %s created but draft %s could not be deleted: %v",
			draft.WizardType(), published.ID, draft.ID(), err)
		return nil, fmt.Errorf("delete draft %s after publish: %w", draft.ID(), err)
	}

	observability.Publishes.WithLabelValues(string(draft.WizardType())).Inc()
	s.tracker.Track(ctx, analytics.Event{
		Name:       analytics.EventPublished,
		DraftID:    draft.ID(),
		UserID:     draft.UserID(),
		WizardType: string(draft.WizardType()),
		Payload:    map[string]any{"publishedId": published.ID},
		At:         time.Now(),
	})

	return &PublishSummary{
		PublishedID: published.ID,
		WizardType:  string(draft.WizardType()),
		Title:       published.Title,
		PublishedAt: time.Now(),
		DraftID:     draft.ID(),
	}, nil
}

func (s *Service) createEntity(ctx context.Context, wizardType Type, data FormData) (PublishedEntity, error) {
	switch wizardType {
	case TypeProperty:
		if s.creators.Property == nil {
			return PublishedEntity{}, fmt.Errorf("property creation path not configured")
		}
		return s.creators.Property.CreateProperty(ctx, mapPropertyInput(data))
	case TypeLand:
		if s.creators.Land == nil {
			return PublishedEntity{}, fmt.Errorf("land creation path not configured")
		}
		return s.creators.Land.CreateLand(ctx, mapLandInput(data))
	case TypeBlog:
		if s.creators.Blog == nil {
			return PublishedEntity{}, fmt.Errorf("blog creation path not configured")
		}
		return s.creators.Blog.CreateBlogPost(ctx, mapBlogInput(data))
	}
	return PublishedEntity{}, &RuleViolationError{
		Code:    CodeUnsupportedWizardType,
		Reasons: []string{fmt.Sprintf("wizard type %q has no publication path", wizardType)},
	}
}

// readinessFailures runs the all-steps publish gate: every required step
// must have its required fields present in the effective form data. This is
// deliberately stronger than the single-step validator used during save.
func readinessFailures(data FormData, steps []StepDefinition) []string {
	var failures []string
	for _, step := range steps {
		if !step.Required {
			continue
		}
		var missing []string
		for _, field := range step.Fields {
			if field.Required && !data.HasValue(field.Key) {
				missing = append(missing, field.Key)
			}
		}
		if len(missing) > 0 {
			failures = append(failures, fmt.Sprintf("step %q is missing required fields: %s", step.ID, strings.Join(missing, ", ")))
		}
	}
	return failures
}

func mapPropertyInput(data FormData) PropertyInput {
	return PropertyInput{
		Title:        stringField(data, "title"),
		Description:  stringField(data, "description"),
		Price:        floatField(data, "price"),
		Currency:     stringField(data, "currency"),
		PropertyType: stringField(data, "type"),
		Address:      objectField(data, "address"),
		Images:       stringListField(data, "images"),
		Features: PropertyFeatures{
			Bedrooms:  intField(data, "bedrooms"),
			Bathrooms: intField(data, "bathrooms"),
			Area:      floatField(data, "area"),
			Amenities: stringListField(data, "amenities"),
		},
	}
}

func mapLandInput(data FormData) LandInput {
	return LandInput{
		Name:        stringField(data, "name"),
		Description: stringField(data, "description"),
		Area:        floatField(data, "area"),
		Price:       floatField(data, "price"),
		Currency:    stringField(data, "currency"),
		LandType:    stringField(data, "type"),
		Location:    objectField(data, "location"),
		Features:    stringListField(data, "features"),
		Images:      stringListField(data, "images"),
	}
}

func mapBlogInput(data FormData) BlogPostInput {
	return BlogPostInput{
		Title:      stringField(data, "title"),
		Content:    stringField(data, "content"),
		Author:     stringField(data, "author"),
		Category:   stringField(data, "category"),
		Tags:       stringListField(data, "tags"),
		Excerpt:    stringField(data, "excerpt"),
		CoverImage: stringField(data, "coverImage"),
		SEO:        objectField(data, "seo"),
	}
}

func stringField(data FormData, key string) string {
	value, _ := data[key].(string)
	return strings.TrimSpace(value)
}

func floatField(data FormData, key string) float64 {
	if f := asNumber(data[key]); f != nil {
		return *f
	}
	return 0
}

func intField(data FormData, key string) int {
	if f := asNumber(data[key]); f != nil {
		return int(*f)
	}
	return 0
}

func objectField(data FormData, key string) map[string]any {
	value, _ := data[key].(map[string]any)
	return value
}

func stringListField(data FormData, key string) []string {
	switch value := data[key].(type) {
	case []string:
		return value
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			if text, ok := item.(string); ok {
				out = append(out, text)
			}
		}
		return out
	}
	return nil
}
