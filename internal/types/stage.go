package types

import (
	"fmt"
	"strings"
	"time"
)

// StageType is the kind of step an application is at. Values are ordered:
// Applied < Screen < Technical < Behavioral < Negotiation < {Rejected, Accepted}.
type StageType int

const (
	StageApplied StageType = iota
	StageScreen
	StageTechnical
	StageBehavioral
	StageNegotiation
	StageRejected
	StageAccepted
)

var stageTypeNames = map[StageType]string{
	StageApplied:     "Applied",
	StageScreen:      "Screen",
	StageTechnical:   "Technical",
	StageBehavioral:  "Behavioral",
	StageNegotiation: "Negotiation",
	StageRejected:    "Rejected",
	StageAccepted:    "Accepted",
}

// StageTypes lists every stage type in order.
func StageTypes() []StageType {
	return []StageType{StageApplied, StageScreen, StageTechnical, StageBehavioral, StageNegotiation, StageRejected, StageAccepted}
}

// ParseStageType parses a stage type name case-insensitively. "Application" is accepted as
// the older spelling of Applied.
func ParseStageType(s string) (StageType, error) {
	name := strings.TrimSpace(s)
	if strings.EqualFold(name, "application") {
		return StageApplied, nil
	}
	for t, n := range stageTypeNames {
		if strings.EqualFold(name, n) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown stage type %q", s)
}

func (t StageType) String() string {
	if name, ok := stageTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("StageType(%d)", int(t))
}

// Valid reports whether t is one of the defined stage types.
func (t StageType) Valid() bool {
	_, ok := stageTypeNames[t]
	return ok
}

// IsTerminal reports whether no further progress is expected after t.
func (t StageType) IsTerminal() bool {
	return t == StageRejected || t == StageAccepted
}

// MarshalText encodes the stage type by name.
func (t StageType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid stage type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a stage type name.
func (t *StageType) UnmarshalText(text []byte) error {
	parsed, err := ParseStageType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Stage is one step in an application's progress.
type Stage struct {
	StartTime time.Time  `yaml:"start_time"`
	Deadline  *time.Time `yaml:"deadline,omitempty"`
	Name      string     `yaml:"name,omitempty"`
	StageType StageType  `yaml:"stage_type"`
}

// NewStage creates a stage of the given type starting at start.
func NewStage(stageType StageType, start time.Time) Stage {
	return Stage{StartTime: normalizeTime(start), StageType: stageType}
}

// WithDeadline returns a copy of s with the deadline set.
func (s Stage) WithDeadline(deadline time.Time) Stage {
	d := normalizeTime(deadline)
	s.Deadline = &d
	return s
}

func (s Stage) validate() error {
	if s.StartTime.IsZero() {
		return fmt.Errorf("stage %s has no start time", s.StageType)
	}
	if !s.StageType.Valid() {
		return fmt.Errorf("invalid stage type %d", int(s.StageType))
	}
	return nil
}

// normalizeTime drops the monotonic reading and sub-millisecond precision so a persisted
// timestamp reads back equal.
func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
