package risk

import (
	"encoding/json"
	"fmt"
)

// Level is the ordered risk classification produced by an assessment.
// The ordering None < Low < Medium < High < Critical is fixed; escalation
// logic relies on integer comparison and must never reinterpret it.
type Level int

const (
	None Level = iota
	Low
	Medium
	High
	Critical
)

var levelNames = map[Level]string{
	None:     "none",
	Low:      "low",
	Medium:   "medium",
	High:     "high",
	Critical: "critical",
}

// String returns the wire name for the level.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// MarshalJSON encodes the level as its wire name.
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a wire name back into a Level.
func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Parse converts a wire name into a Level.
func Parse(s string) (Level, error) {
	for l, name := range levelNames {
		if name == s {
			return l, nil
		}
	}
	return None, fmt.Errorf("unknown risk level %q", s)
}

// Escalate raises the level by the given number of steps, clamped at Critical.
func (l Level) Escalate(steps int) Level {
	out := l + Level(steps)
	if out > Critical {
		return Critical
	}
	return out
}

// Max returns the higher of two levels.
func Max(a, b Level) Level {
	if a > b {
		return a
	}
	return b
}
