package repository

import (
	"context"
	"errors"

	"github.com/tridenda/talentlytica/internal/grading"
	"github.com/tridenda/talentlytica/internal/model"
)

var ErrFormNotFound = errors.New("form session not found or expired")

// FormRepository keeps the grade store of each live form session.
type FormRepository interface {
	Create(ctx context.Context, formID string) error
	Exists(ctx context.Context, formID string) (bool, error)
	SetGrade(ctx context.Context, formID string, key model.GradeKey, grade model.Grade) error
	// Load returns the form's grades. Callers must treat the store as
	// read-only; writes go through SetGrade.
	Load(ctx context.Context, formID string) (*grading.Store, error)
	Delete(ctx context.Context, formID string) error
}
