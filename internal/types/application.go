package types

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Application tracks applying to a Job through its stages.
type Application struct {
	Job       Job       `yaml:"job"`
	AppliedAt time.Time `yaml:"applied_at"`
	Cycle     string    `yaml:"cycle,omitempty"`
	Stages    []Stage   `yaml:"stages" validate:"min=1"`
}

// NewApplication creates an application applied to now, seeded with an Applied stage.
func NewApplication(job Job, cycle string) Application {
	return NewApplicationAt(job, cycle, time.Now())
}

// NewApplicationAt is NewApplication with an explicit application time.
func NewApplicationAt(job Job, cycle string, at time.Time) Application {
	at = normalizeTime(at)
	return Application{
		Job:       job,
		AppliedAt: at,
		Cycle:     strings.TrimSpace(cycle),
		Stages:    []Stage{NewStage(StageApplied, at)},
	}
}

// AddStage appends a stage. Terminal stages do not block further appends; callers check
// IsActive first when that matters.
func (a *Application) AddStage(s Stage) {
	a.Stages = append(a.Stages, s)
}

// sortedStages returns the stages ordered by start time. Equal start times keep their
// insertion order.
func (a Application) sortedStages() []Stage {
	stages := make([]Stage, len(a.Stages))
	copy(stages, a.Stages)
	sort.SliceStable(stages, func(i, j int) bool {
		return stages[i].StartTime.Before(stages[j].StartTime)
	})
	return stages
}

// Canonical returns a copy with stages sorted by start time, the order they are persisted in.
func (a Application) Canonical() Application {
	out := a
	out.Stages = a.sortedStages()
	return out
}

// CurrentStage returns the stage with the latest start time. When several share it, the one
// appended last wins. ok is false when there are no stages.
func (a Application) CurrentStage() (Stage, bool) {
	if len(a.Stages) == 0 {
		return Stage{}, false
	}
	stages := a.sortedStages()
	return stages[len(stages)-1], true
}

// IsActive reports whether the current stage is not terminal. An application without
// stages counts as active.
func (a Application) IsActive() bool {
	current, ok := a.CurrentStage()
	if !ok {
		return true
	}
	return !current.StageType.IsTerminal()
}

// IsInterviewing reports whether the application is active and past the Applied stage.
func (a Application) IsInterviewing() bool {
	current, ok := a.CurrentStage()
	if !ok {
		return false
	}
	return !current.StageType.IsTerminal() && current.StageType > StageApplied
}

// IsGhosted reports whether the application is active and its current stage started more
// than after ago.
func (a Application) IsGhosted(now time.Time, after time.Duration) bool {
	current, ok := a.CurrentStage()
	if !ok || current.StageType.IsTerminal() {
		return false
	}
	return now.Sub(current.StartTime) > after
}

// Filename derives the document filename: a millisecond timestamp followed by the
// normalized company, title and team, joined by dots.
func (a Application) Filename() string {
	at := a.AppliedAt.UTC()
	stamp := fmt.Sprintf("%s%03d", at.Format("20060102150405"), at.Nanosecond()/int(time.Millisecond))
	parts := append([]string{stamp}, a.Job.filenameTokens()...)
	return strings.Join(append(parts, fileExtension), ".")
}

// Summary formats the application for one-line messages.
func (a Application) Summary() string {
	return a.Job.Summary()
}

// Validate validates the Application using the validator.
func (a Application) Validate() error {
	validate := validator.New()
	if err := validate.Struct(a); err != nil {
		return err
	}
	if a.AppliedAt.IsZero() {
		return errors.New("application has no applied_at time")
	}
	for _, s := range a.Stages {
		if err := s.validate(); err != nil {
			return err
		}
	}
	return nil
}
