package export

import (
	"fmt"
	"io"

	"github.com/tridenda/talentlytica/internal/grading"
	"github.com/tridenda/talentlytica/internal/roster"
	"github.com/xuri/excelize/v2"
)

const (
	// GradeSheet is the name of the only sheet of a downloaded form.
	GradeSheet = "Penilaian"
	// NameHeader heads the first column.
	NameHeader = "Nama Mahasiswa"
)

// XLSXContentType is the media type of WriteExcel's output.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WriteExcel writes the form as a grid: one header row of aspect names,
// then one row per student. Unset cells stay blank.
func WriteExcel(w io.Writer, ro *roster.Roster, lookup grading.Lookup) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), GradeSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	aspects := ro.Aspects()
	header := make([]any, 0, len(aspects)+1)
	header = append(header, NameHeader)
	for _, a := range aspects {
		header = append(header, a.Name)
	}
	if err := f.SetSheetRow(GradeSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, s := range ro.Students() {
		row := make([]any, 0, len(aspects)+1)
		row = append(row, s.Name)
		for _, a := range aspects {
			if v, ok := lookup.Get(s.ID, a.ID).Int(); ok {
				row = append(row, v)
			} else {
				row = append(row, nil)
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(GradeSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
