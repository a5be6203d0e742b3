package model

// Student represents one row of the grading form.
type Student struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
