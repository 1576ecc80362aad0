package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewDraftValidation(t *testing.T) {
	_, err := NewDraft("", TypeProperty, "", FormData{}, "general")
	require.True(t, IsValidation(err))

	_, err = NewDraft("user-1", Type("event"), "", FormData{}, "general")
	require.True(t, IsValidation(err))
}

func TestNewDraftDefaults(t *testing.T) {
	draft, err := NewDraft("user-1", TypeProperty, "", FormData{"title": "Casa"}, "general")
	require.NoError(t, err)

	require.NotEmpty(t, draft.ID())
	require.Equal(t, "user-1", draft.UserID())
	require.Equal(t, TypeProperty, draft.WizardType())
	require.Equal(t, DefaultConfigID, draft.ConfigID())
	require.Equal(t, "general", draft.CurrentStep())
	require.Equal(t, 0, draft.Completion())
	require.Empty(t, draft.Progress())
	require.Equal(t, draft.CreatedAt(), draft.UpdatedAt())
}

func TestReconstituteValidation(t *testing.T) {
	base := ReconstituteParams{
		ID:         "d-1",
		UserID:     "user-1",
		WizardType: TypeBlog,
	}

	missingID := base
	missingID.ID = ""
	_, err := Reconstitute(missingID)
	require.True(t, IsValidation(err))

	missingUser := base
	missingUser.UserID = " "
	_, err = Reconstitute(missingUser)
	require.True(t, IsValidation(err))

	badType := base
	badType.WizardType = Type("event")
	_, err = Reconstitute(badType)
	require.True(t, IsValidation(err))
}

func TestReconstituteTrustsStoredCompletion(t *testing.T) {
	draft, err := Reconstitute(ReconstituteParams{
		ID:         "d-1",
		UserID:     "user-1",
		WizardType: TypeProperty,
		Completion: 50,
	})
	require.NoError(t, err)

	// The persisted value is kept as-is even though the empty form data
	// would calculate to zero.
	require.Equal(t, 50, draft.Completion())
}

func TestUpdateFormDataMergesLastWriteWins(t *testing.T) {
	draft, err := NewDraft("user-1", TypeProperty, "", FormData{"title": "Casa", "price": float64(1)}, "general")
	require.NoError(t, err)

	draft.UpdateFormData(FormData{"price": float64(250000), "currency": "USD"})

	data := draft.FormData()
	require.Equal(t, "Casa", data["title"])
	require.Equal(t, float64(250000), data["price"])
	require.Equal(t, "USD", data["currency"])
}

func TestMarkStepCompletedIdempotent(t *testing.T) {
	draft, err := NewDraft("user-1", TypeProperty, "", FormData{}, "general")
	require.NoError(t, err)

	draft.MarkStepCompleted("general")
	progress := draft.Progress()
	updatedAt := draft.UpdatedAt()

	draft.MarkStepCompleted("general")

	require.Equal(t, progress, draft.Progress())
	require.Equal(t, updatedAt, draft.UpdatedAt())
}

func TestMutationsBumpUpdatedAtMonotonically(t *testing.T) {
	draft, err := NewDraft("user-1", TypeProperty, "", FormData{}, "general")
	require.NoError(t, err)

	previous := draft.UpdatedAt()
	mutations := []func(){
		func() { draft.UpdateFormData(FormData{"title": "Casa"}) },
		func() { draft.UpdateCurrentStep("location") },
		func() { draft.MarkStepCompleted("general") },
		func() { draft.UpdateCompletionPercentage(50) },
		func() { draft.UpdateTitle("Casa") },
		func() { draft.UpdateDescription("Una casa") },
	}

	for _, mutate := range mutations {
		mutate()
		require.True(t, draft.UpdatedAt().After(previous))
		previous = draft.UpdatedAt()
	}
}

func TestUpdateCompletionPercentageClamps(t *testing.T) {
	draft, err := NewDraft("user-1", TypeProperty, "", FormData{}, "general")
	require.NoError(t, err)

	draft.UpdateCompletionPercentage(120)
	require.Equal(t, 100, draft.Completion())

	draft.UpdateCompletionPercentage(-5)
	require.Equal(t, 0, draft.Completion())
}

func TestAccessorsReturnCopies(t *testing.T) {
	draft, err := NewDraft("user-1", TypeProperty, "", FormData{"title": "Casa"}, "general")
	require.NoError(t, err)
	draft.MarkStepCompleted("general")

	data := draft.FormData()
	data["title"] = "tampered"
	require.Equal(t, "Casa", draft.FormData()["title"])

	progress := draft.Progress()
	progress["location"] = time.Now()
	require.False(t, draft.Progress().Completed("location"))
}
