package models

import (
	"fmt"
	"math"
)

// Ledger holds a user's score and goals in insertion order.
// It is not safe for concurrent use.
type Ledger struct {
	userName string
	score    int
	goals    []*Goal
	index    map[string]int
}

func NewLedger(userName string) *Ledger {
	return &Ledger{
		userName: userName,
		index:    make(map[string]int),
	}
}

func (l *Ledger) UserName() string {
	return l.userName
}

func (l *Ledger) SetUserName(name string) {
	l.userName = name
}

func (l *Ledger) Score() int {
	return l.score
}

// Level is derived from the score: every pointsPerLevel points is one level,
// starting at 1.
func (l *Ledger) Level(pointsPerLevel int) int {
	if pointsPerLevel <= 0 {
		return 1
	}
	return l.score/pointsPerLevel + 1
}

func (l *Ledger) Len() int {
	return len(l.goals)
}

// AddGoal stores a copy of goal. Names are unique within a ledger.
func (l *Ledger) AddGoal(goal *Goal) error {
	if goal == nil {
		return fmt.Errorf("%w: nil goal", ErrInvalidGoal)
	}
	if err := goal.Validate(); err != nil {
		return err
	}
	if _, ok := l.index[goal.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateGoal, goal.Name)
	}

	g := *goal
	l.index[g.Name] = len(l.goals)
	l.goals = append(l.goals, &g)
	return nil
}

// RecordEvent records progress on the named goal and returns the points
// added to the score. An unknown name leaves the ledger untouched.
func (l *Ledger) RecordEvent(name string) (int, error) {
	i, ok := l.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrGoalNotFound, name)
	}
	points := l.goals[i].RecordEvent()
	// The score saturates rather than wrapping, so it always stays loadable.
	if points > math.MaxInt-l.score {
		points = math.MaxInt - l.score
	}
	l.score += points
	return points, nil
}

func (l *Ledger) Goal(name string) (Goal, bool) {
	i, ok := l.index[name]
	if !ok {
		return Goal{}, false
	}
	return *l.goals[i], true
}

func (l *Ledger) Goals() []Goal {
	out := make([]Goal, 0, len(l.goals))
	for _, g := range l.goals {
		out = append(out, *g)
	}
	return out
}

func (l *Ledger) DisplayGoals() []string {
	lines := make([]string, 0, len(l.goals))
	for _, g := range l.goals {
		lines = append(lines, g.DisplayStatus())
	}
	return lines
}

func (l *Ledger) Snapshot() *Snapshot {
	return &Snapshot{
		Version:  SnapshotVersion,
		UserName: l.userName,
		Score:    l.score,
		Goals:    l.Goals(),
	}
}

// Restore replaces the whole ledger state with s. The ledger is left as it
// was when s does not validate.
func (l *Ledger) Restore(s *Snapshot) error {
	if s == nil {
		return fmt.Errorf("%w: nil snapshot", ErrInvalidSnapshot)
	}
	if err := s.Validate(); err != nil {
		return err
	}

	goals := make([]*Goal, 0, len(s.Goals))
	index := make(map[string]int, len(s.Goals))
	for i := range s.Goals {
		g := s.Goals[i]
		index[g.Name] = len(goals)
		goals = append(goals, &g)
	}

	l.userName = s.UserName
	l.score = s.Score
	l.goals = goals
	l.index = index
	return nil
}
