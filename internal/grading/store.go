// Package grading holds the grade store of a form session and the
// transformation of its contents into an export snapshot.
package grading

import (
	"strconv"
	"strings"
	"sync"

	"github.com/tridenda/talentlytica/internal/model"
)

// Lookup answers point reads of a grade store.
type Lookup interface {
	Get(studentID, aspectID int) model.Grade
}

// Store maps (student, aspect) cells to grades. Cells are created on first
// write and overwritten in place afterwards; a cell that was never written
// reads as unset.
type Store struct {
	mu    sync.RWMutex
	cells map[model.GradeKey]model.Grade
}

// NewStore returns an empty store where every cell is unset.
func NewStore() *Store {
	return &Store{cells: make(map[model.GradeKey]model.Grade)}
}

// ParseGrade converts a raw selector value into a grade. An empty value
// means unset. Anything that is not a base-10 integer also degrades to
// unset. The range is not checked here.
func ParseGrade(raw string) model.Grade {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return model.Unset()
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return model.Unset()
	}
	return model.Score(v)
}

// Set parses raw and stores the result for the cell. It returns the
// stored grade.
func (s *Store) Set(studentID, aspectID int, raw string) model.Grade {
	g := ParseGrade(raw)
	s.Put(model.GradeKey{StudentID: studentID, AspectID: aspectID}, g)
	return g
}

// Put stores an already parsed grade.
func (s *Store) Put(key model.GradeKey, g model.Grade) {
	s.mu.Lock()
	s.cells[key] = g
	s.mu.Unlock()
}

// Get returns the grade of a cell, unset if it was never written.
func (s *Store) Get(studentID, aspectID int) model.Grade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cells[model.GradeKey{StudentID: studentID, AspectID: aspectID}]
}

// Cells returns a copy of every written cell, including cells that were
// written back to unset.
func (s *Store) Cells() map[model.GradeKey]model.Grade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[model.GradeKey]model.Grade, len(s.cells))
	for k, g := range s.cells {
		out[k] = g
	}
	return out
}

// Len reports how many cells have been written.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cells)
}
