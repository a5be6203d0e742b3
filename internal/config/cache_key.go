package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// FormKey returns the marker key of a form session.
func (r *CacheKeyStruct) FormKey(formID string) string {
	return fmt.Sprintf("form:%s", formID)
}

// FormGradesKey returns the hash key holding a form's cells.
func (r *CacheKeyStruct) FormGradesKey(formID string) string {
	return fmt.Sprintf("form:%s:grades", formID)
}

var CacheKey = NewCacheKeyStruct()
