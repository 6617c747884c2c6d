package memory

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"
	"time"

	"pet-clinic/internal/domain/appointments"
)

type appointmentRepo struct {
	mu   sync.RWMutex
	byID map[string]appointments.Appointment
}

func NewAppointmentRepo() appointments.Repository {
	return &appointmentRepo{
		byID: make(map[string]appointments.Appointment),
	}
}

func (r *appointmentRepo) Create(ctx context.Context, a appointments.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; exists {
		return errors.New("appointment already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	return a, nil
}

// Update compara y escribe bajo el mismo lock.
func (r *appointmentRepo) Update(ctx context.Context, a appointments.Appointment, expected appointments.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[a.ID]
	if !ok {
		return appointments.ErrNotFound
	}
	if cur.Status != expected {
		return appointments.ErrInvalidState
	}
	r.byID[a.ID] = a
	return nil
}

func (r *appointmentRepo) ClaimReminder(ctx context.Context, id string, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[id]
	if !ok {
		return false, appointments.ErrNotFound
	}
	if cur.Status != appointments.StatusApproved || cur.ReminderSentAt != nil {
		return false, nil
	}
	cur.ReminderSentAt = &at
	r.byID[id] = cur
	return true, nil
}

func (r *appointmentRepo) List(ctx context.Context, f appointments.ListFilter) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]appointments.Appointment, 0)
	for _, a := range r.byID {
		if matches(a, f) {
			out = append(out, a)
		}
	}
	sortByRequested(out)
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *appointmentRepo) FindConflicts(ctx context.Context, vetUserID string, from, to time.Time, excludeID string) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]appointments.Appointment, 0)
	for _, a := range r.byID {
		if a.ID == excludeID || a.Status == appointments.StatusCancelled || !a.AssignedTo(vetUserID) {
			continue
		}
		if a.RequestedDateTime.After(from) && a.RequestedDateTime.Before(to) {
			out = append(out, a)
		}
	}
	sortByRequested(out)
	return out, nil
}

func (r *appointmentRepo) CountByStatus(ctx context.Context, from, to *time.Time) (map[appointments.Status]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[appointments.Status]int)
	for _, a := range r.byID {
		if inRange(a.RequestedDateTime, from, to) {
			out[a.Status]++
		}
	}
	return out, nil
}

func (r *appointmentRepo) CountPerDay(ctx context.Context, from, to time.Time) ([]appointments.DayCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int)
	for _, a := range r.byID {
		if inRange(a.RequestedDateTime, &from, &to) {
			counts[a.RequestedDateTime.UTC().Format(time.DateOnly)]++
		}
	}

	out := make([]appointments.DayCount, 0, len(counts))
	for day, n := range counts {
		out = append(out, appointments.DayCount{Date: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func matches(a appointments.Appointment, f appointments.ListFilter) bool {
	if f.OwnerUserID != "" && a.OwnerUserID != f.OwnerUserID {
		return false
	}
	if f.VetUserID != "" && !a.AssignedTo(f.VetUserID) {
		return false
	}
	if f.PetID != "" && a.PetID != f.PetID {
		return false
	}
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, a.Status) {
		return false
	}
	return inRange(a.RequestedDateTime, f.From, f.To)
}

// [from, to)
func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && !t.Before(*to) {
		return false
	}
	return true
}

func sortByRequested(items []appointments.Appointment) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].RequestedDateTime.Before(items[j].RequestedDateTime)
	})
}
