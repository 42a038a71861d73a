package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, time.March, 4, 15, 30, 45, 123456789, time.UTC)

func testJob() Job {
	return Job{
		Company:    "Acme",
		Title:      "Staff Engineer",
		Team:       "Platform",
		ListingURL: "https://job-boards.greenhouse.io/acme/jobs/1",
	}
}

func TestNewApplicationAt_SeedsAppliedStage(t *testing.T) {
	app := NewApplicationAt(testJob(), " 2025 ", t0)

	require.Len(t, app.Stages, 1)
	assert.Equal(t, StageApplied, app.Stages[0].StageType)
	assert.Equal(t, app.AppliedAt, app.Stages[0].StartTime)
	assert.Equal(t, "2025", app.Cycle)
	assert.Equal(t, t0.Truncate(time.Millisecond), app.AppliedAt)
	assert.NoError(t, app.Validate())
}

func TestLifecycle(t *testing.T) {
	tests := []struct {
		name         string
		stages       []Stage
		current      StageType
		active       bool
		interviewing bool
	}{
		{
			name:         "applied only",
			stages:       []Stage{NewStage(StageApplied, t0)},
			current:      StageApplied,
			active:       true,
			interviewing: false,
		},
		{
			name:         "screen after applied",
			stages:       []Stage{NewStage(StageApplied, t0), NewStage(StageScreen, t0.Add(time.Hour))},
			current:      StageScreen,
			active:       true,
			interviewing: true,
		},
		{
			name: "rejected after screen",
			stages: []Stage{
				NewStage(StageApplied, t0),
				NewStage(StageScreen, t0.Add(time.Hour)),
				NewStage(StageRejected, t0.Add(2*time.Hour)),
			},
			current:      StageRejected,
			active:       false,
			interviewing: false,
		},
		{
			name: "accepted is terminal",
			stages: []Stage{
				NewStage(StageApplied, t0),
				NewStage(StageNegotiation, t0.Add(time.Hour)),
				NewStage(StageAccepted, t0.Add(2*time.Hour)),
			},
			current:      StageAccepted,
			active:       false,
			interviewing: false,
		},
		{
			name:         "appended out of order",
			stages:       []Stage{NewStage(StageTechnical, t0.Add(2*time.Hour)), NewStage(StageApplied, t0), NewStage(StageScreen, t0.Add(time.Hour))},
			current:      StageTechnical,
			active:       true,
			interviewing: true,
		},
		{
			name:         "tie resolves to last appended",
			stages:       []Stage{NewStage(StageApplied, t0), NewStage(StageScreen, t0), NewStage(StageBehavioral, t0)},
			current:      StageBehavioral,
			active:       true,
			interviewing: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := Application{Job: testJob(), AppliedAt: t0, Stages: tt.stages}

			current, ok := app.CurrentStage()
			require.True(t, ok)
			assert.Equal(t, tt.current, current.StageType)
			assert.Equal(t, tt.active, app.IsActive())
			assert.Equal(t, tt.interviewing, app.IsInterviewing())
		})
	}
}

func TestLifecycle_NoStages(t *testing.T) {
	app := Application{Job: testJob(), AppliedAt: t0}

	_, ok := app.CurrentStage()
	assert.False(t, ok)
	assert.True(t, app.IsActive())
	assert.False(t, app.IsInterviewing())
	assert.Error(t, app.Validate())
}

func TestAddStage_RejectedDeactivates(t *testing.T) {
	app := NewApplicationAt(testJob(), "", t0)
	app.AddStage(NewStage(StageScreen, t0.Add(time.Hour)))
	assert.True(t, app.IsActive())

	app.AddStage(NewStage(StageRejected, t0.Add(2*time.Hour)))
	assert.False(t, app.IsActive())

	// Terminal stages do not block further appends.
	app.AddStage(NewStage(StageTechnical, t0.Add(3*time.Hour)))
	assert.Len(t, app.Stages, 4)
}

func TestCanonical_SortsWithoutMutating(t *testing.T) {
	app := Application{
		Job:       testJob(),
		AppliedAt: t0,
		Stages: []Stage{
			NewStage(StageScreen, t0.Add(time.Hour)),
			NewStage(StageApplied, t0),
		},
	}

	canonical := app.Canonical()
	assert.Equal(t, StageApplied, canonical.Stages[0].StageType)
	assert.Equal(t, StageScreen, canonical.Stages[1].StageType)
	assert.Equal(t, StageScreen, app.Stages[0].StageType, "original order must be untouched")
}

func TestIsGhosted(t *testing.T) {
	now := t0.Add(100 * 24 * time.Hour)
	ninetyDays := 90 * 24 * time.Hour

	app := NewApplicationAt(testJob(), "", t0)
	assert.True(t, app.IsGhosted(now, ninetyDays))
	assert.False(t, app.IsGhosted(t0.Add(time.Hour), ninetyDays))

	app.AddStage(NewStage(StageRejected, t0.Add(time.Hour)))
	assert.False(t, app.IsGhosted(now, ninetyDays))
}

func TestApplication_Filename(t *testing.T) {
	app := NewApplicationAt(testJob(), "", t0)
	assert.Equal(t, "20250304153045123.acme.staff_engineer.platform.md", app.Filename())

	same := NewApplicationAt(testJob(), "", t0.Add(500*time.Microsecond))
	assert.Equal(t, app.Filename(), same.Filename(), "same millisecond and role collide by construction")

	noTeam := testJob()
	noTeam.Team = ""
	assert.Equal(t, "20250304153045123.acme.staff_engineer.md", NewApplicationAt(noTeam, "", t0).Filename())
}

func TestApplication_FilenameIsChronological(t *testing.T) {
	earlier := NewApplicationAt(testJob(), "", t0).Filename()
	later := NewApplicationAt(testJob(), "", t0.Add(time.Millisecond)).Filename()
	assert.Less(t, earlier, later)
}

func TestApplication_ValidateRejectsMissingJobFields(t *testing.T) {
	app := NewApplicationAt(Job{Company: "Acme"}, "", t0)
	assert.Error(t, app.Validate())
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Acme: Staff Engineer (Platform)", NewApplicationAt(testJob(), "", t0).Summary())
	assert.Equal(t, "Acme: Engineer", Job{Company: "Acme", Title: "Engineer"}.Summary())
}
