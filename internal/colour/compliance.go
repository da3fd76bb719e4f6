package colour

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is returned by ParseLevel for names it does not recognise.
var ErrUnknownLevel = errors.New("unknown compliance level")

// Level identifies a WCAG 2.1 conformance level and text size.
type Level string

// WCAG 2.1 levels.
const (
	LevelAANormal  Level = "aa"
	LevelAALarge   Level = "aa-large"
	LevelAAANormal Level = "aaa"
	LevelAAALarge  Level = "aaa-large"
)

// Levels lists every level in display order.
var Levels = []Level{LevelAANormal, LevelAALarge, LevelAAANormal, LevelAAALarge}

// Threshold returns the minimum contrast ratio required by the level.
func (l Level) Threshold() float64 {
	switch l {
	case LevelAALarge:
		return 3.0
	case LevelAAANormal:
		return 7.0
	default:
		// AA normal text and AAA large text share 4.5:1.
		return 4.5
	}
}

// Label returns a human-readable name such as "AA Large Text".
func (l Level) Label() string {
	switch l {
	case LevelAANormal:
		return "AA Text"
	case LevelAALarge:
		return "AA Large Text"
	case LevelAAANormal:
		return "AAA Text"
	case LevelAAALarge:
		return "AAA Large Text"
	}
	return string(l)
}

// ParseLevel parses a level name case-insensitively.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Levels {
		if l == known {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid: aa, aa-large, aaa, aaa-large)", ErrUnknownLevel, s)
}

// Compliance holds pass/fail results for each WCAG 2.1 level.
type Compliance struct {
	AANormal  bool `json:"aa_normal"`
	AALarge   bool `json:"aa_large"`
	AAANormal bool `json:"aaa_normal"`
	AAALarge  bool `json:"aaa_large"`
}

// Evaluate derives compliance from a contrast ratio.
func Evaluate(ratio float64) Compliance {
	return Compliance{
		AANormal:  ratio >= LevelAANormal.Threshold(),
		AALarge:   ratio >= LevelAALarge.Threshold(),
		AAANormal: ratio >= LevelAAANormal.Threshold(),
		AAALarge:  ratio >= LevelAAALarge.Threshold(),
	}
}

// Passes reports whether the given level is met.
func (c Compliance) Passes(l Level) bool {
	switch l {
	case LevelAANormal:
		return c.AANormal
	case LevelAALarge:
		return c.AALarge
	case LevelAAANormal:
		return c.AAANormal
	case LevelAAALarge:
		return c.AAALarge
	}
	return false
}
