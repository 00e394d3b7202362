package models

import (
	"fmt"
	"github.com/gookit/validate"
)

// SnapshotVersion is the current persistence format. Files written before
// the version field existed decode as version 0 and are otherwise identical.
const SnapshotVersion = 1

// Snapshot is the persisted form of a Ledger.
type Snapshot struct {
	Version  int    `json:"version"`
	UserName string `json:"user_name" validate:"required"`
	Score    int    `json:"score" validate:"int|min:0"`
	Goals    []Goal `json:"goals"`
}

func (s *Snapshot) Validate() error {
	if s.Version < 0 || s.Version > SnapshotVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, s.Version)
	}

	v := validate.Struct(s)
	if !v.Validate() {
		return fmt.Errorf("%w: %s", ErrInvalidSnapshot, v.Errors.One())
	}

	seen := make(map[string]struct{}, len(s.Goals))
	for i := range s.Goals {
		g := &s.Goals[i]
		if err := g.Validate(); err != nil {
			return fmt.Errorf("%w: goal %d: %w", ErrInvalidSnapshot, i, err)
		}
		if _, ok := seen[g.Name]; ok {
			return fmt.Errorf("%w: %w: %q", ErrInvalidSnapshot, ErrDuplicateGoal, g.Name)
		}
		seen[g.Name] = struct{}{}
	}
	return nil
}
