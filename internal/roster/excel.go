package roster

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tridenda/talentlytica/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names of a roster workbook. Each sheet has a header row followed
// by rows of (id, name) in columns A and B.
const (
	StudentSheet = "Mahasiswa"
	AspectSheet  = "Aspek"
)

type entry struct {
	id   int
	name string
}

// LoadExcel reads a roster workbook. Rows with a missing id or name, or an
// id that is not an integer, are skipped and logged.
func LoadExcel(r io.Reader, log zerolog.Logger) (*Roster, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open roster workbook: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close roster workbook")
		}
	}()

	studentRows, err := readEntries(f, StudentSheet, log)
	if err != nil {
		return nil, err
	}
	aspectRows, err := readEntries(f, AspectSheet, log)
	if err != nil {
		return nil, err
	}

	students := make([]model.Student, 0, len(studentRows))
	for _, e := range studentRows {
		students = append(students, model.Student{ID: e.id, Name: e.name})
	}
	aspects := make([]model.Aspect, 0, len(aspectRows))
	for _, e := range aspectRows {
		aspects = append(aspects, model.Aspect{ID: e.id, Name: e.name})
	}

	ro, err := New(students, aspects)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("students", len(students)).
		Int("aspects", len(aspects)).
		Msg("Roster workbook loaded")
	return ro, nil
}

func readEntries(f *excelize.File, sheet string, log zerolog.Logger) ([]entry, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	entries := make([]entry, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // header
		}

		var rawID, name string
		if len(row) > 0 {
			rawID = strings.TrimSpace(row[0])
		}
		if len(row) > 1 {
			name = strings.TrimSpace(row[1])
		}
		if rawID == "" || name == "" {
			log.Warn().Str("sheet", sheet).Int("row", i+1).Msg("Skipping row with missing id or name")
			continue
		}

		id, err := strconv.Atoi(rawID)
		if err != nil {
			log.Warn().Str("sheet", sheet).Int("row", i+1).Str("id", rawID).Msg("Skipping row with non-integer id")
			continue
		}
		entries = append(entries, entry{id: id, name: name})
	}
	return entries, nil
}

// WriteExcel writes ro as a workbook LoadExcel can read back.
func WriteExcel(w io.Writer, ro *Roster) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), StudentSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(AspectSheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", AspectSheet, err)
	}

	students := make([]entry, 0, len(ro.students))
	for _, s := range ro.students {
		students = append(students, entry{id: s.ID, name: s.Name})
	}
	aspects := make([]entry, 0, len(ro.aspects))
	for _, a := range ro.aspects {
		aspects = append(aspects, entry{id: a.ID, name: a.Name})
	}

	if err := writeEntries(f, StudentSheet, "Nama Mahasiswa", students); err != nil {
		return err
	}
	if err := writeEntries(f, AspectSheet, "Nama Aspek", aspects); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write roster workbook: %w", err)
	}
	return nil
}

func writeEntries(f *excelize.File, sheet, nameHeader string, entries []entry) error {
	header := []any{"ID", nameHeader}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}
	for i, e := range entries {
		row := []any{e.id, e.name}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}
