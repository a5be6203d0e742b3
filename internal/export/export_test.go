package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tridenda/talentlytica/internal/grading"
	"github.com/tridenda/talentlytica/internal/roster"
	"github.com/xuri/excelize/v2"
)

func TestWriteJSON(t *testing.T) {
	ro, err := roster.Default(2, 2, "Mahasiswa", "Aspek Penilaian")
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	s := grading.NewStore()
	s.Set(2, 1, "0")

	var buf bytes.Buffer
	if err := WriteJSON(&buf, grading.Export(ro.Students(), ro.Aspects(), s)); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	want := strings.Join([]string{
		`{`,
		`  "aspek_penilaian_1": {`,
		`    "mahasiswa_2": 0`,
		`  },`,
		`  "aspek_penilaian_2": {}`,
		`}`,
		``,
	}, "\n")
	if buf.String() != want {
		t.Fatalf("WriteJSON =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWriteExcel(t *testing.T) {
	ro, err := roster.Default(3, 2, "Mahasiswa", "Aspek Penilaian")
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	s := grading.NewStore()
	s.Set(1, 1, "7")
	s.Set(3, 2, "0")
	s.Set(2, 2, "5")
	s.Set(2, 2, "")

	var buf bytes.Buffer
	if err := WriteExcel(&buf, ro, s); err != nil {
		t.Fatalf("WriteExcel: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	cells := map[string]string{
		"A1": NameHeader,
		"B1": "Aspek Penilaian 1",
		"C1": "Aspek Penilaian 2",
		"A2": "Mahasiswa 1",
		"B2": "7",
		"C2": "",
		"A3": "Mahasiswa 2",
		"C3": "",
		"A4": "Mahasiswa 3",
		"B4": "",
		"C4": "0",
	}
	for cell, want := range cells {
		got, err := f.GetCellValue(GradeSheet, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		if got != want {
			t.Errorf("cell %s = %q, want %q", cell, got, want)
		}
	}
}
