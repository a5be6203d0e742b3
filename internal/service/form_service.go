package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tridenda/talentlytica/internal/export"
	"github.com/tridenda/talentlytica/internal/grading"
	"github.com/tridenda/talentlytica/internal/model"
	"github.com/tridenda/talentlytica/internal/repository"
	"github.com/tridenda/talentlytica/internal/roster"
)

// Roster lookup errors.
var (
	ErrUnknownStudent = errors.New("student is not on the roster")
	ErrUnknownAspect  = errors.New("aspect is not on the roster")
)

// FormService runs grading form sessions over a fixed roster.
type FormService struct {
	repo   repository.FormRepository
	roster *roster.Roster
	log    zerolog.Logger
}

// NewFormService creates a new FormService.
func NewFormService(repo repository.FormRepository, ro *roster.Roster, log zerolog.Logger) *FormService {
	return &FormService{
		repo:   repo,
		roster: ro,
		log:    log.With().Str("component", "form_service").Logger(),
	}
}

// Roster returns the roster every form is built from.
func (s *FormService) Roster() *roster.Roster {
	return s.roster
}

// CreateForm opens a new form session with every cell unset.
func (s *FormService) CreateForm(ctx context.Context) (string, error) {
	formID := uuid.New().String()
	if err := s.repo.Create(ctx, formID); err != nil {
		return "", fmt.Errorf("create form: %w", err)
	}
	s.log.Info().Str("form_id", formID).Msg("Form created")
	return formID, nil
}

// SetGrade records one cell edit. An empty raw value clears the cell and a
// non-numeral is stored as unset.
func (s *FormService) SetGrade(ctx context.Context, formID string, studentID, aspectID int, raw string) (model.Grade, error) {
	if err := s.checkCell(studentID, aspectID); err != nil {
		return model.Grade{}, err
	}
	g := grading.ParseGrade(raw)
	key := model.GradeKey{StudentID: studentID, AspectID: aspectID}
	if err := s.repo.SetGrade(ctx, formID, key, g); err != nil {
		return model.Grade{}, err
	}
	s.log.Debug().
		Str("form_id", formID).
		Str("cell", key.String()).
		Str("value", g.String()).
		Msg("Grade set")
	return g, nil
}

// GetGrade returns one cell, unset if it was never written.
func (s *FormService) GetGrade(ctx context.Context, formID string, studentID, aspectID int) (model.Grade, error) {
	if err := s.checkCell(studentID, aspectID); err != nil {
		return model.Grade{}, err
	}
	store, err := s.repo.Load(ctx, formID)
	if err != nil {
		return model.Grade{}, err
	}
	return store.Get(studentID, aspectID), nil
}

// Grid returns every roster cell of the form, students and aspects in
// roster order.
func (s *FormService) Grid(ctx context.Context, formID string) ([]model.GridRow, error) {
	store, err := s.repo.Load(ctx, formID)
	if err != nil {
		return nil, err
	}

	aspects := s.roster.Aspects()
	students := s.roster.Students()
	rows := make([]model.GridRow, 0, len(students))
	for _, st := range students {
		cells := make([]model.GridCell, 0, len(aspects))
		for _, a := range aspects {
			cells = append(cells, model.GridCell{AspectID: a.ID, Grade: store.Get(st.ID, a.ID)})
		}
		rows = append(rows, model.GridRow{Student: st, Cells: cells})
	}
	return rows, nil
}

// Export builds the nested snapshot of the form as it is right now.
func (s *FormService) Export(ctx context.Context, formID string) (*grading.ExportSnapshot, error) {
	store, err := s.repo.Load(ctx, formID)
	if err != nil {
		return nil, err
	}
	snap := grading.Export(s.roster.Students(), s.roster.Aspects(), store)
	s.log.Info().Str("form_id", formID).Int("cells", store.Len()).Msg("Form exported")
	return snap, nil
}

// ExportExcel writes the form as a spreadsheet grid.
func (s *FormService) ExportExcel(ctx context.Context, formID string, w io.Writer) error {
	store, err := s.repo.Load(ctx, formID)
	if err != nil {
		return err
	}
	return export.WriteExcel(w, s.roster, store)
}

// DeleteForm ends a form session.
func (s *FormService) DeleteForm(ctx context.Context, formID string) error {
	if err := s.repo.Delete(ctx, formID); err != nil {
		return err
	}
	s.log.Info().Str("form_id", formID).Msg("Form deleted")
	return nil
}

func (s *FormService) checkCell(studentID, aspectID int) error {
	if _, ok := s.roster.Student(studentID); !ok {
		return fmt.Errorf("student %d: %w", studentID, ErrUnknownStudent)
	}
	if _, ok := s.roster.Aspect(aspectID); !ok {
		return fmt.Errorf("aspect %d: %w", aspectID, ErrUnknownAspect)
	}
	return nil
}
