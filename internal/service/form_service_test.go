package service

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
	"github.com/tridenda/talentlytica/internal/model"
	"github.com/tridenda/talentlytica/internal/repository"
	"github.com/tridenda/talentlytica/internal/roster"
)

func newTestService(t *testing.T) *FormService {
	t.Helper()
	ro, err := roster.Default(10, 4, "Mahasiswa", "Aspek Penilaian")
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	return NewFormService(repository.NewMemoryFormRepository(), ro, zerolog.Nop())
}

func newTestForm(t *testing.T, s *FormService) string {
	t.Helper()
	id, err := s.CreateForm(context.Background())
	if err != nil {
		t.Fatalf("CreateForm: %v", err)
	}
	return id
}

func TestFormServiceScenarios(t *testing.T) {
	ctx := context.Background()

	emptyAspects := func() map[string]map[string]int {
		return map[string]map[string]int{
			"aspek_penilaian_1": {},
			"aspek_penilaian_2": {},
			"aspek_penilaian_3": {},
			"aspek_penilaian_4": {},
		}
	}

	tests := []struct {
		name  string
		edits [][3]any
		want  func() map[string]map[string]int
	}{
		{
			name: "empty_form",
			want: emptyAspects,
		},
		{
			name:  "single_score",
			edits: [][3]any{{1, 1, "7"}},
			want: func() map[string]map[string]int {
				m := emptyAspects()
				m["aspek_penilaian_1"]["mahasiswa_1"] = 7
				return m
			},
		},
		{
			name:  "zero_score",
			edits: [][3]any{{3, 2, "0"}},
			want: func() map[string]map[string]int {
				m := emptyAspects()
				m["aspek_penilaian_2"]["mahasiswa_3"] = 0
				return m
			},
		},
		{
			name:  "cleared_score",
			edits: [][3]any{{5, 4, "9"}, {5, 4, ""}},
			want:  emptyAspects,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(t)
			id := newTestForm(t, s)
			for _, e := range tt.edits {
				if _, err := s.SetGrade(ctx, id, e[0].(int), e[1].(int), e[2].(string)); err != nil {
					t.Fatalf("SetGrade(%v): %v", e, err)
				}
			}
			snap, err := s.Export(ctx, id)
			if err != nil {
				t.Fatalf("Export: %v", err)
			}
			if got, want := snap.Map(), tt.want(); !reflect.DeepEqual(got, want) {
				t.Fatalf("Export() = %v, want %v", got, want)
			}
		})
	}
}

func TestFormServiceGetGrade(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)
	id := newTestForm(t, s)

	g, err := s.GetGrade(ctx, id, 2, 2)
	if err != nil {
		t.Fatalf("GetGrade: %v", err)
	}
	if g.Set {
		t.Fatalf("GetGrade before write = %+v, want unset", g)
	}

	if _, err := s.SetGrade(ctx, id, 2, 2, "abc"); err != nil {
		t.Fatalf("SetGrade: %v", err)
	}
	if g, _ := s.GetGrade(ctx, id, 2, 2); g.Set {
		t.Fatalf("GetGrade after malformed write = %+v, want unset", g)
	}

	if _, err := s.SetGrade(ctx, id, 2, 2, "10"); err != nil {
		t.Fatalf("SetGrade: %v", err)
	}
	if g, _ := s.GetGrade(ctx, id, 2, 2); g != model.Score(10) {
		t.Fatalf("GetGrade = %+v, want 10", g)
	}
}

func TestFormServiceRosterChecks(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)
	id := newTestForm(t, s)

	if _, err := s.SetGrade(ctx, id, 11, 1, "5"); !errors.Is(err, ErrUnknownStudent) {
		t.Fatalf("SetGrade(student 11) error = %v, want ErrUnknownStudent", err)
	}
	if _, err := s.SetGrade(ctx, id, 1, 5, "5"); !errors.Is(err, ErrUnknownAspect) {
		t.Fatalf("SetGrade(aspect 5) error = %v, want ErrUnknownAspect", err)
	}
	if _, err := s.GetGrade(ctx, id, 0, 1); !errors.Is(err, ErrUnknownStudent) {
		t.Fatalf("GetGrade(student 0) error = %v, want ErrUnknownStudent", err)
	}
}

func TestFormServiceUnknownForm(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	if _, err := s.SetGrade(ctx, "missing", 1, 1, "5"); !errors.Is(err, repository.ErrFormNotFound) {
		t.Fatalf("SetGrade error = %v, want ErrFormNotFound", err)
	}
	if _, err := s.Export(ctx, "missing"); !errors.Is(err, repository.ErrFormNotFound) {
		t.Fatalf("Export error = %v, want ErrFormNotFound", err)
	}
	if err := s.DeleteForm(ctx, "missing"); !errors.Is(err, repository.ErrFormNotFound) {
		t.Fatalf("DeleteForm error = %v, want ErrFormNotFound", err)
	}
}

func TestFormServiceGrid(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)
	id := newTestForm(t, s)
	_, _ = s.SetGrade(ctx, id, 10, 4, "0")

	rows, err := s.Grid(ctx, id)
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	if len(rows) != 10 {
		t.Fatalf("len(rows) = %d, want 10", len(rows))
	}
	last := rows[9]
	if last.Student.ID != 10 || len(last.Cells) != 4 {
		t.Fatalf("rows[9] = %+v", last)
	}
	if last.Cells[3] != (model.GridCell{AspectID: 4, Grade: model.Score(0)}) {
		t.Fatalf("rows[9].Cells[3] = %+v, want aspect 4 score 0", last.Cells[3])
	}
	if rows[0].Cells[0].Grade.Set {
		t.Fatalf("rows[0].Cells[0] = %+v, want unset", rows[0].Cells[0])
	}
}

func TestFormServiceExportExcel(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)
	id := newTestForm(t, s)
	_, _ = s.SetGrade(ctx, id, 1, 1, "7")

	var buf bytes.Buffer
	if err := s.ExportExcel(ctx, id, &buf); err != nil {
		t.Fatalf("ExportExcel: %v", err)
	}
	// xlsx files are zip archives.
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Fatal("ExportExcel output is not a zip archive")
	}
}
