package grading

import (
	"bytes"
	"encoding/json"
)

// AspectScores is the ordered student-slug to score mapping of one aspect.
type AspectScores struct {
	order  []string
	scores map[string]int
}

func newAspectScores() *AspectScores {
	return &AspectScores{scores: make(map[string]int)}
}

// put keeps the first-seen position of a slug and the last written value.
func (a *AspectScores) put(studentSlug string, score int) {
	if _, ok := a.scores[studentSlug]; !ok {
		a.order = append(a.order, studentSlug)
	}
	a.scores[studentSlug] = score
}

// Students returns the student slugs in roster order.
func (a *AspectScores) Students() []string {
	return append([]string(nil), a.order...)
}

// Score returns the score for a student slug.
func (a *AspectScores) Score(studentSlug string) (int, bool) {
	v, ok := a.scores[studentSlug]
	return v, ok
}

// Len reports how many students have a score.
func (a *AspectScores) Len() int {
	return len(a.order)
}

// MarshalJSON writes the mapping with keys in roster order.
func (a *AspectScores) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, slug := range a.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, slug, a.scores[slug]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ExportSnapshot is the nested aspect-slug then student-slug view of a
// form, built by Export. It holds its own copy of every score and has no
// exported mutators.
type ExportSnapshot struct {
	order   []string
	aspects map[string]*AspectScores
}

func newExportSnapshot() *ExportSnapshot {
	return &ExportSnapshot{aspects: make(map[string]*AspectScores)}
}

func (s *ExportSnapshot) put(aspectSlug string, scores *AspectScores) {
	if _, ok := s.aspects[aspectSlug]; !ok {
		s.order = append(s.order, aspectSlug)
	}
	s.aspects[aspectSlug] = scores
}

// Aspects returns the aspect slugs in roster order.
func (s *ExportSnapshot) Aspects() []string {
	return append([]string(nil), s.order...)
}

// Aspect returns the scores recorded under an aspect slug.
func (s *ExportSnapshot) Aspect(aspectSlug string) (*AspectScores, bool) {
	a, ok := s.aspects[aspectSlug]
	return a, ok
}

// Score returns the score of a student slug under an aspect slug.
func (s *ExportSnapshot) Score(aspectSlug, studentSlug string) (int, bool) {
	a, ok := s.aspects[aspectSlug]
	if !ok {
		return 0, false
	}
	return a.Score(studentSlug)
}

// Map flattens the snapshot into plain maps. Key order is lost.
func (s *ExportSnapshot) Map() map[string]map[string]int {
	out := make(map[string]map[string]int, len(s.order))
	for _, slug := range s.order {
		a := s.aspects[slug]
		inner := make(map[string]int, len(a.order))
		for _, student := range a.order {
			inner[student] = a.scores[student]
		}
		out[slug] = inner
	}
	return out
}

// MarshalJSON writes both levels with keys in roster order.
func (s *ExportSnapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, slug := range s.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, slug, s.aspects[slug]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key string, value any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}
