package repository

import (
	"context"
	"sync"
	"time"

	"github.com/tridenda/talentlytica/internal/grading"
	"github.com/tridenda/talentlytica/internal/model"
)

type memoryForm struct {
	store     *grading.Store
	touchedAt time.Time
}

// MemoryFormRepository keeps form sessions in process memory. Idle sessions
// are removed by Sweep.
type MemoryFormRepository struct {
	mu    sync.Mutex
	forms map[string]*memoryForm
	now   func() time.Time
}

// NewMemoryFormRepository creates an empty MemoryFormRepository.
func NewMemoryFormRepository() *MemoryFormRepository {
	return &MemoryFormRepository{
		forms: make(map[string]*memoryForm),
		now:   time.Now,
	}
}

func (r *MemoryFormRepository) Create(_ context.Context, formID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forms[formID] = &memoryForm{store: grading.NewStore(), touchedAt: r.now()}
	return nil
}

func (r *MemoryFormRepository) Exists(_ context.Context, formID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.forms[formID]
	return ok, nil
}

func (r *MemoryFormRepository) SetGrade(_ context.Context, formID string, key model.GradeKey, grade model.Grade) error {
	form, err := r.touch(formID)
	if err != nil {
		return err
	}
	form.store.Put(key, grade)
	return nil
}

func (r *MemoryFormRepository) Load(_ context.Context, formID string) (*grading.Store, error) {
	form, err := r.touch(formID)
	if err != nil {
		return nil, err
	}
	return form.store, nil
}

func (r *MemoryFormRepository) Delete(_ context.Context, formID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.forms[formID]; !ok {
		return ErrFormNotFound
	}
	delete(r.forms, formID)
	return nil
}

// Sweep removes sessions idle for longer than maxIdle and reports how many
// were removed.
func (r *MemoryFormRepository) Sweep(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().Add(-maxIdle)
	removed := 0
	for id, form := range r.forms {
		if form.touchedAt.Before(cutoff) {
			delete(r.forms, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions.
func (r *MemoryFormRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms)
}

func (r *MemoryFormRepository) touch(formID string) (*memoryForm, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	form, ok := r.forms[formID]
	if !ok {
		return nil, ErrFormNotFound
	}
	form.touchedAt = r.now()
	return form, nil
}
