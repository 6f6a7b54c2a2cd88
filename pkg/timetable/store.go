package timetable

import (
	"fmt"
	"slices"
	"strings"

	"github.com/limaJavier/sessiontable/pkg/model"
	"github.com/samber/lo"
)

// Store owns the committed sessions in insertion order. Every accessor returns a copy,
// so callers never hold a list that can drift from the store.
type Store struct {
	sessions []model.Session
	policy   model.ConflictPolicy
}

func NewStore() *Store {
	return &Store{
		sessions: make([]model.Session, 0),
		policy:   model.NewResourcePolicy(),
	}
}

// Load replaces the stored sessions with a copy of the given list without validating them
func (store *Store) Load(sessions []model.Session) {
	store.sessions = slices.Clone(sessions)
	if store.sessions == nil {
		store.sessions = make([]model.Session, 0)
	}
}

// Add appends candidate if it clashes with no stored session. Otherwise the store is left untouched
// and one description is returned per shared resource of every clashing session.
func (store *Store) Add(candidate model.Session) []string {
	conflicts := make([]string, 0)
	for _, existing := range store.sessions {
		if !store.policy.Clashes(existing, candidate) {
			continue
		}

		if existing.SameRoom(candidate) {
			conflicts = append(conflicts, fmt.Sprintf("ROOM conflict with %v", existing))
		}
		if existing.SameLecturer(candidate) {
			conflicts = append(conflicts, fmt.Sprintf("LECTURER conflict with %v", existing))
		}
		if existing.SameGroup(candidate) {
			conflicts = append(conflicts, fmt.Sprintf("GROUP conflict with %v", existing))
		}
	}

	if len(conflicts) == 0 {
		store.sessions = append(store.sessions, candidate)
	}
	return conflicts
}

func (store *Store) Sessions() []model.Session {
	return slices.Clone(store.sessions)
}

func (store *Store) Len() int {
	return len(store.sessions)
}

func (store *Store) At(index int) (model.Session, bool) {
	if index < 0 || index >= len(store.sessions) {
		return model.Session{}, false
	}
	return store.sessions[index], true
}

func (store *Store) ForLecturer(name string) []model.Session {
	return store.filter(func(session model.Session) bool {
		return strings.EqualFold(session.Lecturer.Name, name)
	})
}

func (store *Store) ForRoom(id string) []model.Session {
	return store.filter(func(session model.Session) bool {
		return strings.EqualFold(session.Room.Id, id)
	})
}

func (store *Store) ForModule(code string) []model.Session {
	return store.filter(func(session model.Session) bool {
		return strings.EqualFold(session.Module.Code, code)
	})
}

func (store *Store) filter(predicate func(session model.Session) bool) []model.Session {
	return lo.Filter(store.sessions, func(session model.Session, _ int) bool {
		return predicate(session)
	})
}

func (store *Store) removeAt(index int) model.Session {
	removed := store.sessions[index]
	store.sessions = slices.Delete(store.sessions, index, index+1)
	return removed
}

func (store *Store) insertAt(index int, session model.Session) {
	store.sessions = slices.Insert(store.sessions, index, session)
}
