package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

func TestMeetingRepository_Order(t *testing.T) {
	ctx := context.Background()
	repo := NewMeetingRepository()

	require.NoError(t, repo.Append(ctx, &entities.Meeting{ID: "1"}))
	require.NoError(t, repo.Append(ctx, &entities.Meeting{ID: "2"}))
	require.NoError(t, repo.Prepend(ctx, &entities.Meeting{ID: "custom-1"}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "custom-1", list[0].ID)
	assert.Equal(t, "1", list[1].ID)
	assert.Equal(t, "2", list[2].ID)
	assert.Equal(t, entities.MeetingStatusPending, list[0].Status)
}

func TestMeetingRepository_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewMeetingRepository()

	require.NoError(t, repo.Append(ctx, &entities.Meeting{ID: "1"}))
	err := repo.Prepend(ctx, &entities.Meeting{ID: "1"})
	assert.True(t, errors.Is(err, entities.ErrMeetingExists))

	assert.ErrorIs(t, repo.Append(ctx, &entities.Meeting{}), entities.ErrInvalidMeeting)
}

func TestMeetingRepository_MarkProcessed(t *testing.T) {
	ctx := context.Background()
	repo := NewMeetingRepository()
	require.NoError(t, repo.Append(ctx, &entities.Meeting{ID: "1"}))
	require.NoError(t, repo.Append(ctx, &entities.Meeting{ID: "2"}))

	record := &entities.AnalysisRecord{Summary: "done"}
	updated, err := repo.MarkProcessed(ctx, "1", record)
	require.NoError(t, err)
	assert.True(t, updated)

	updated, err = repo.MarkProcessed(ctx, "1", &entities.AnalysisRecord{Summary: "again"})
	require.NoError(t, err)
	assert.False(t, updated)

	m, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "done", m.Analysis.Summary)

	other, err := repo.FindByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, entities.MeetingStatusPending, other.Status)
	assert.Nil(t, other.Analysis)

	_, err = repo.MarkProcessed(ctx, "missing", record)
	assert.ErrorIs(t, err, entities.ErrMeetingNotFound)
}

func TestMeetingRepository_FindByIDReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewMeetingRepository()
	require.NoError(t, repo.Append(ctx, &entities.Meeting{ID: "1", Title: "Original"}))

	m, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	m.Title = "Changed"

	again, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Title)
}

func TestDecodeSeed(t *testing.T) {
	meetings, err := DecodeSeed(strings.NewReader(`
meetings:
  - id: "1"
    title: Q1 Product Roadmap Review
    date: "2025-01-15"
    time: "10:00 AM"
    attendees: 8
    organizer: Sarah Chen
    status: processed
    description: Review Q1 product roadmap priorities.
`))
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	assert.Equal(t, "Q1 Product Roadmap Review", meetings[0].Title)
	assert.Equal(t, 8, meetings[0].Attendees)
	assert.Equal(t, entities.MeetingStatusPending, meetings[0].Status)
}

func TestDecodeSeed_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{name: "missing id", doc: "meetings:\n  - title: x\n", want: entities.ErrInvalidMeeting},
		{name: "duplicate id", doc: "meetings:\n  - id: a\n  - id: a\n", want: entities.ErrMeetingExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSeed(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := DecodeSeed(strings.NewReader("meetings:\n  - id: a\n    colour: red\n"))
	assert.Error(t, err)
}

func TestDecodeSeed_Empty(t *testing.T) {
	meetings, err := DecodeSeed(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, meetings)
}

func TestLoadSeedFile_ExampleConfig(t *testing.T) {
	meetings, err := LoadSeedFile(filepath.Join("..", "..", "..", "configs", "meetings.example.yaml"))
	require.NoError(t, err)
	assert.Len(t, meetings, 4)
	assert.Equal(t, "Backend Architecture Discussion", meetings[1].Title)

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, os.IsNotExist(errors.Unwrap(err)))
}
