package models

import (
	"fmt"
	"github.com/gookit/validate"
	"strings"
)

// MaxPoints caps the points and bonus of a single goal.
const MaxPoints = 1_000_000_000

type Kind string

const (
	KindSimple    Kind = "simple"
	KindEternal   Kind = "eternal"
	KindChecklist Kind = "checklist"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) valid() bool {
	switch k {
	case KindSimple, KindEternal, KindChecklist:
		return true
	}
	return false
}

// ParseKind accepts either the menu number or the kind name.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", string(KindSimple):
		return KindSimple, nil
	case "2", string(KindEternal):
		return KindEternal, nil
	case "3", string(KindChecklist):
		return KindChecklist, nil
	}
	return "", fmt.Errorf("%w: unknown goal type %q", ErrInvalidGoal, s)
}

// Goal is a closed tagged variant: Kind selects which of the remaining
// fields carry state. Completed is used by simple goals only; Target,
// Current and Bonus by checklist goals only.
type Goal struct {
	Kind      Kind   `json:"kind"`
	Name      string `json:"name" validate:"required"`
	Points    int    `json:"points" validate:"int|min:0"`
	Completed bool   `json:"completed,omitempty"`
	Target    int    `json:"target,omitempty" validate:"int|min:0"`
	Current   int    `json:"current,omitempty" validate:"int|min:0"`
	Bonus     int    `json:"bonus,omitempty" validate:"int|min:0"`
}

func NewSimpleGoal(name string, points int) (*Goal, error) {
	return newGoal(&Goal{Kind: KindSimple, Name: name, Points: points})
}

func NewEternalGoal(name string, points int) (*Goal, error) {
	return newGoal(&Goal{Kind: KindEternal, Name: name, Points: points})
}

func NewChecklistGoal(name string, points, target, bonus int) (*Goal, error) {
	return newGoal(&Goal{Kind: KindChecklist, Name: name, Points: points, Target: target, Bonus: bonus})
}

func newGoal(g *Goal) (*Goal, error) {
	g.Name = strings.TrimSpace(g.Name)
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Goal) Validate() error {
	if !g.Kind.valid() {
		return fmt.Errorf("%w: unknown goal type %q", ErrInvalidGoal, g.Kind)
	}
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidGoal)
	}

	v := validate.Struct(g)
	if !v.Validate() {
		return fmt.Errorf("%w: %s", ErrInvalidGoal, v.Errors.One())
	}

	if g.Points > MaxPoints || g.Bonus > MaxPoints {
		return fmt.Errorf("%w: points and bonus may not exceed %d", ErrInvalidGoal, MaxPoints)
	}
	if g.Kind == KindChecklist && g.Target < 1 {
		return fmt.Errorf("%w: checklist target must be at least 1", ErrInvalidGoal)
	}
	return nil
}

// RecordEvent applies one unit of progress and returns the points it earns.
func (g *Goal) RecordEvent() int {
	switch g.Kind {
	case KindSimple:
		if g.Completed {
			return 0
		}
		g.Completed = true
		return g.Points
	case KindEternal:
		return g.Points
	case KindChecklist:
		// No cap: events past the target keep paying base points.
		g.Current++
		if g.Current == g.Target {
			return g.Points + g.Bonus
		}
		return g.Points
	}
	return 0
}

func (g *Goal) IsCompleted() bool {
	switch g.Kind {
	case KindSimple:
		return g.Completed
	case KindChecklist:
		return g.Current >= g.Target
	}
	return false
}

func (g *Goal) DisplayStatus() string {
	switch g.Kind {
	case KindEternal:
		return fmt.Sprintf("[∞] %s (%d pts)", g.Name, g.Points)
	case KindChecklist:
		return fmt.Sprintf("%s %s -- Completed %d/%d (%d pts, +%d bonus)",
			g.marker(), g.Name, g.Current, g.Target, g.Points, g.Bonus)
	}
	return fmt.Sprintf("%s %s (%d pts)", g.marker(), g.Name, g.Points)
}

func (g *Goal) marker() string {
	if g.IsCompleted() {
		return "[X]"
	}
	return "[ ]"
}
