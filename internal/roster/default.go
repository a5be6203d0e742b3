package roster

import (
	"fmt"

	"github.com/tridenda/talentlytica/internal/model"
)

// Default builds "<prefix> <n>" entries numbered from 1, the sample roster
// the form ships with ("Mahasiswa 1".."Mahasiswa 10", "Aspek Penilaian 1"..4).
func Default(studentCount, aspectCount int, studentPrefix, aspectPrefix string) (*Roster, error) {
	students := make([]model.Student, 0, studentCount)
	for i := 1; i <= studentCount; i++ {
		students = append(students, model.Student{ID: i, Name: fmt.Sprintf("%s %d", studentPrefix, i)})
	}
	aspects := make([]model.Aspect, 0, aspectCount)
	for i := 1; i <= aspectCount; i++ {
		aspects = append(aspects, model.Aspect{ID: i, Name: fmt.Sprintf("%s %d", aspectPrefix, i)})
	}
	return New(students, aspects)
}
