package grading

import (
	"strconv"
	"testing"

	"github.com/tridenda/talentlytica/internal/model"
)

func TestStoreGetBeforeWrite(t *testing.T) {
	s := NewStore()
	for studentID := 1; studentID <= 10; studentID++ {
		for aspectID := 1; aspectID <= 4; aspectID++ {
			if g := s.Get(studentID, aspectID); g.Set {
				t.Fatalf("Get(%d, %d) = %v, want unset", studentID, aspectID, g)
			}
		}
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
}

func TestStoreSetThenGet(t *testing.T) {
	s := NewStore()
	for v := model.MinScore; v <= model.MaxScore; v++ {
		got := s.Set(2, 3, strconv.Itoa(v))
		if want := model.Score(v); got != want {
			t.Fatalf("Set returned %+v, want %+v", got, want)
		}
		if g := s.Get(2, 3); g != model.Score(v) {
			t.Fatalf("Get(2, 3) = %+v, want %d", g, v)
		}
	}
}

func TestStoreSetEmptyClears(t *testing.T) {
	t.Run("after_score", func(t *testing.T) {
		s := NewStore()
		s.Set(5, 4, "9")
		s.Set(5, 4, "")
		if g := s.Get(5, 4); g.Set {
			t.Fatalf("Get(5, 4) = %+v, want unset", g)
		}
	})

	t.Run("after_zero", func(t *testing.T) {
		s := NewStore()
		s.Set(5, 4, "0")
		s.Set(5, 4, "")
		if g := s.Get(5, 4); g.Set {
			t.Fatalf("Get(5, 4) = %+v, want unset", g)
		}
	})

	t.Run("fresh_cell", func(t *testing.T) {
		s := NewStore()
		s.Set(5, 4, "")
		if g := s.Get(5, 4); g.Set {
			t.Fatalf("Get(5, 4) = %+v, want unset", g)
		}
		if s.Len() != 1 {
			t.Fatalf("Len() = %d, want 1", s.Len())
		}
	})
}

func TestStoreWriteIsolation(t *testing.T) {
	s := NewStore()
	s.Set(1, 1, "7")
	s.Set(1, 2, "3")
	s.Set(2, 1, "0")

	s.Set(1, 1, "10")

	if g := s.Get(1, 2); g != model.Score(3) {
		t.Fatalf("Get(1, 2) = %+v, want 3", g)
	}
	if g := s.Get(2, 1); g != model.Score(0) {
		t.Fatalf("Get(2, 1) = %+v, want 0", g)
	}
	if g := s.Get(2, 2); g.Set {
		t.Fatalf("Get(2, 2) = %+v, want unset", g)
	}
}

func TestParseGrade(t *testing.T) {
	tests := []struct {
		raw  string
		want model.Grade
	}{
		{raw: "", want: model.Unset()},
		{raw: "0", want: model.Score(0)},
		{raw: "10", want: model.Score(10)},
		{raw: " 7 ", want: model.Score(7)},
		{raw: "42", want: model.Score(42)},
		{raw: "-1", want: model.Score(-1)},
		{raw: "abc", want: model.Unset()},
		{raw: "7.5", want: model.Unset()},
		{raw: "   ", want: model.Unset()},
	}
	for _, tt := range tests {
		if got := ParseGrade(tt.raw); got != tt.want {
			t.Errorf("ParseGrade(%q) = %+v, want %+v", tt.raw, got, tt.want)
		}
	}
}

func TestStoreCellsIsCopy(t *testing.T) {
	s := NewStore()
	s.Set(1, 1, "4")

	cells := s.Cells()
	cells[model.GradeKey{StudentID: 1, AspectID: 1}] = model.Score(9)
	cells[model.GradeKey{StudentID: 2, AspectID: 2}] = model.Score(1)

	if g := s.Get(1, 1); g != model.Score(4) {
		t.Fatalf("Get(1, 1) = %+v, want 4", g)
	}
	if g := s.Get(2, 2); g.Set {
		t.Fatalf("Get(2, 2) = %+v, want unset", g)
	}
}
