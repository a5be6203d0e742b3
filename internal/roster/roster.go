// Package roster holds the fixed students and aspects a form is built from.
package roster

import (
	"errors"
	"fmt"

	"github.com/tridenda/talentlytica/internal/model"
)

var (
	ErrEmptyRoster = errors.New("roster has no entries")
	ErrDuplicateID = errors.New("duplicate roster id")
)

// Roster is an immutable, ordered set of students and aspects.
type Roster struct {
	students    []model.Student
	aspects     []model.Aspect
	studentByID map[int]model.Student
	aspectByID  map[int]model.Aspect
}

// New validates the lists and builds a Roster. Both lists must be non-empty
// and ids must be unique within each list. Names are not checked for slug
// collisions.
func New(students []model.Student, aspects []model.Aspect) (*Roster, error) {
	if len(students) == 0 {
		return nil, fmt.Errorf("students: %w", ErrEmptyRoster)
	}
	if len(aspects) == 0 {
		return nil, fmt.Errorf("aspects: %w", ErrEmptyRoster)
	}

	r := &Roster{
		students:    append([]model.Student(nil), students...),
		aspects:     append([]model.Aspect(nil), aspects...),
		studentByID: make(map[int]model.Student, len(students)),
		aspectByID:  make(map[int]model.Aspect, len(aspects)),
	}
	for _, s := range students {
		if _, dup := r.studentByID[s.ID]; dup {
			return nil, fmt.Errorf("student %d: %w", s.ID, ErrDuplicateID)
		}
		r.studentByID[s.ID] = s
	}
	for _, a := range aspects {
		if _, dup := r.aspectByID[a.ID]; dup {
			return nil, fmt.Errorf("aspect %d: %w", a.ID, ErrDuplicateID)
		}
		r.aspectByID[a.ID] = a
	}
	return r, nil
}

// Students returns the students in roster order.
func (r *Roster) Students() []model.Student {
	return append([]model.Student(nil), r.students...)
}

// Aspects returns the aspects in roster order.
func (r *Roster) Aspects() []model.Aspect {
	return append([]model.Aspect(nil), r.aspects...)
}

func (r *Roster) Student(id int) (model.Student, bool) {
	s, ok := r.studentByID[id]
	return s, ok
}

func (r *Roster) Aspect(id int) (model.Aspect, bool) {
	a, ok := r.aspectByID[id]
	return a, ok
}

// Choices returns the score options offered for every cell.
func Choices() []int {
	out := make([]int, 0, model.MaxScore-model.MinScore+1)
	for v := model.MinScore; v <= model.MaxScore; v++ {
		out = append(out, v)
	}
	return out
}
