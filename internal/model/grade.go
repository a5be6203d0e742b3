package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Score bounds offered by the form's selector.
const (
	MinScore = 0
	MaxScore = 10
)

// Grade is the value of one form cell. The zero Grade is unset, which is
// distinct from a stored score of 0.
type Grade struct {
	Value int
	Set   bool
}

// Unset returns the grade of a cell that has no score.
func Unset() Grade {
	return Grade{}
}

// Score returns a set grade holding v.
func Score(v int) Grade {
	return Grade{Value: v, Set: true}
}

// Int returns the score and whether the cell is set.
func (g Grade) Int() (int, bool) {
	return g.Value, g.Set
}

// String renders the grade the way the form's selector does: the numeral,
// or an empty string when unset.
func (g Grade) String() string {
	if !g.Set {
		return ""
	}
	return strconv.Itoa(g.Value)
}

// MarshalJSON encodes an unset grade as null and a set grade as an integer.
func (g Grade) MarshalJSON() ([]byte, error) {
	if !g.Set {
		return []byte("null"), nil
	}
	return json.Marshal(g.Value)
}

// UnmarshalJSON accepts null or an integer.
func (g *Grade) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*g = Unset()
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decode grade: %w", err)
	}
	*g = Score(v)
	return nil
}

// GradeKey addresses one cell of the form.
type GradeKey struct {
	StudentID int `json:"student_id"`
	AspectID  int `json:"aspect_id"`
}

// String returns "<studentID>:<aspectID>".
func (k GradeKey) String() string {
	return strconv.Itoa(k.StudentID) + ":" + strconv.Itoa(k.AspectID)
}

// ParseGradeKey is the inverse of GradeKey.String.
func ParseGradeKey(s string) (GradeKey, error) {
	studentPart, aspectPart, ok := strings.Cut(s, ":")
	if !ok {
		return GradeKey{}, fmt.Errorf("grade key %q: missing separator", s)
	}
	studentID, err := strconv.Atoi(studentPart)
	if err != nil {
		return GradeKey{}, fmt.Errorf("grade key %q: student id: %w", s, err)
	}
	aspectID, err := strconv.Atoi(aspectPart)
	if err != nil {
		return GradeKey{}, fmt.Errorf("grade key %q: aspect id: %w", s, err)
	}
	return GradeKey{StudentID: studentID, AspectID: aspectID}, nil
}

// SetGradeRequest is the payload of a single cell edit. An empty Value
// clears the cell.
type SetGradeRequest struct {
	StudentID *int   `json:"student_id" binding:"required"`
	AspectID  *int   `json:"aspect_id" binding:"required"`
	Value     string `json:"value" binding:"grade_choice"`
}

// GridCell is one cell of the rendered form.
type GridCell struct {
	AspectID int   `json:"aspect_id"`
	Grade    Grade `json:"grade"`
}

// GridRow is one student's row of the rendered form, cells in aspect order.
type GridRow struct {
	Student Student    `json:"student"`
	Cells   []GridCell `json:"cells"`
}
