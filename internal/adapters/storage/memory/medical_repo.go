package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"pet-clinic/internal/domain/medical"
)

type medicalRepo struct {
	mu   sync.RWMutex
	byID map[string]medical.Entry
}

func NewMedicalRepo() medical.Repository {
	return &medicalRepo{
		byID: make(map[string]medical.Entry),
	}
}

func (r *medicalRepo) Create(ctx context.Context, e medical.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[e.ID] = cloneEntry(e)
	return nil
}

func (r *medicalRepo) Update(ctx context.Context, e medical.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[e.ID]
	if !ok || cur.Kind != e.Kind {
		return medical.ErrNotFound
	}
	r.byID[e.ID] = cloneEntry(e)
	return nil
}

func (r *medicalRepo) GetByID(ctx context.Context, kind medical.Kind, id string) (medical.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok || e.Kind != kind {
		return medical.Entry{}, medical.ErrNotFound
	}
	return cloneEntry(e), nil
}

func (r *medicalRepo) ListByPet(ctx context.Context, kind medical.Kind, petID string) ([]medical.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]medical.Entry, 0)
	for _, e := range r.byID {
		if e.Kind == kind && e.PetID == petID {
			out = append(out, cloneEntry(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *medicalRepo) ListDue(ctx context.Context, kind medical.Kind, until time.Time) ([]medical.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]medical.Entry, 0)
	for _, e := range r.byID {
		if e.Kind == kind && e.DueAt != nil && !e.DueAt.After(until) {
			out = append(out, cloneEntry(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueAt.Before(*out[j].DueAt) })
	return out, nil
}

func (r *medicalRepo) Delete(ctx context.Context, kind medical.Kind, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok || e.Kind != kind {
		return medical.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func cloneEntry(e medical.Entry) medical.Entry {
	e.Details = append([]byte(nil), e.Details...)
	return e
}
