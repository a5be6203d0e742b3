package model

// Aspect represents a grading dimension applied to every student.
type Aspect struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
