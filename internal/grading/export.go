package grading

import (
	"strings"

	"github.com/tridenda/talentlytica/internal/model"
)

// Slug lowercases a display name and replaces every space with an
// underscore. Other whitespace is left alone.
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// Export builds a snapshot of lookup keyed by aspect slug, then student
// slug, in roster order. Every aspect gets an entry even when none of its
// cells are set; unset cells are left out and a score of 0 is kept.
//
// Names that slug to the same key are not merged: the later one in roster
// order overwrites the earlier value and the key keeps its first position.
func Export(students []model.Student, aspects []model.Aspect, lookup Lookup) *ExportSnapshot {
	snap := newExportSnapshot()
	for _, aspect := range aspects {
		inner := newAspectScores()
		for _, student := range students {
			score, ok := lookup.Get(student.ID, aspect.ID).Int()
			if !ok {
				continue
			}
			inner.put(Slug(student.Name), score)
		}
		snap.put(Slug(aspect.Name), inner)
	}
	return snap
}
