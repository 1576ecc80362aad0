package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRecordRoundTrip(t *testing.T) {
	draft, err := NewDraft("user-1", TypeProperty, "custom-set", FormData{
		"title": "Casa Grande",
		"price": float64(250000),
	}, "general")
	require.NoError(t, err)
	draft.MarkStepCompleted("general")
	draft.UpdateCompletionPercentage(50)
	draft.UpdateTitle("Casa Grande")
	draft.UpdateDescription("Una casa grande")

	restored, err := FromRecord(draft.ToRecord())
	require.NoError(t, err)

	require.Equal(t, draft.ID(), restored.ID())
	require.Equal(t, draft.UserID(), restored.UserID())
	require.Equal(t, draft.WizardType(), restored.WizardType())
	require.Equal(t, draft.ConfigID(), restored.ConfigID())
	require.Equal(t, draft.FormData(), restored.FormData())
	require.Equal(t, draft.CurrentStep(), restored.CurrentStep())
	require.Equal(t, draft.Completion(), restored.Completion())
	require.Equal(t, draft.Title(), restored.Title())
	require.Equal(t, draft.Description(), restored.Description())

	require.True(t, restored.Progress().Completed("general"))
	require.True(t, draft.Progress()["general"].Equal(restored.Progress()["general"]))
}

func TestFromRecordToleratesBadProgressTimestamp(t *testing.T) {
	draft, err := NewDraft("user-1", TypeBlog, "", FormData{}, "content")
	require.NoError(t, err)

	record := draft.ToRecord()
	record.StepProgress["content"] = 42 // not a timestamp string
	record.UpdatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	restored, err := FromRecord(record)
	require.NoError(t, err)

	// The step stays marked; the completion time falls back to the
	// record's update time.
	require.True(t, restored.Progress().Completed("content"))
	require.True(t, restored.Progress()["content"].Equal(record.UpdatedAt))
}

func TestFromRecordRejectsCorruptRecord(t *testing.T) {
	draft, err := NewDraft("user-1", TypeLand, "", FormData{}, "general")
	require.NoError(t, err)

	record := draft.ToRecord()
	record.WizardType = "carousel"

	_, err = FromRecord(record)
	require.True(t, IsValidation(err))
}
