package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-clinic/internal/domain/appointments"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

const appointmentColumns = `
	id, pet_id, owner_user_id, vet_user_id,
	requested_at, actual_at,
	reason_for_visit, notes, admin_notes, cancellation_reason,
	status, reminder_sent_at,
	created_at, updated_at, updated_by_user_id`

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (`+appointmentColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		a.ID,
		a.PetID,
		a.OwnerUserID,
		toNullString(a.VetUserID),
		a.RequestedDateTime,
		toNullTime(a.ActualDateTime),
		a.ReasonForVisit,
		a.Notes,
		a.AdminNotes,
		a.CancellationReason,
		string(a.Status),
		toNullTime(a.ReminderSentAt),
		a.CreatedAt,
		a.UpdatedAt,
		a.UpdatedByUserID,
	)
	return err
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	id = strings.TrimSpace(id)
	if !validID(id) {
		return appointments.Appointment{}, appointments.ErrNotFound
	}

	a, err := scanAppointment(r.db.QueryRowContext(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	return a, err
}

// Update es compare-and-set sobre status: 0 filas => no existe o cambió.
func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment, expected appointments.Status) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments
		SET
			vet_user_id = $3,
			actual_at = $4,
			admin_notes = $5,
			cancellation_reason = $6,
			status = $7,
			reminder_sent_at = $8,
			updated_at = $9,
			updated_by_user_id = $10
		WHERE id = $1 AND status = $2
	`,
		a.ID,
		string(expected),
		toNullString(a.VetUserID),
		toNullTime(a.ActualDateTime),
		a.AdminNotes,
		a.CancellationReason,
		string(a.Status),
		toNullTime(a.ReminderSentAt),
		a.UpdatedAt,
		a.UpdatedByUserID,
	)
	if err != nil {
		return err
	}
	if rowsAffected(res) > 0 {
		return nil
	}

	if _, err := r.GetByID(ctx, a.ID); err != nil {
		return err
	}
	return appointments.ErrInvalidState
}

// ClaimReminder: 0 filas => ya reclamado, no Approved o inexistente.
func (r *AppointmentsRepo) ClaimReminder(ctx context.Context, id string, at time.Time) (bool, error) {
	if !validID(id) {
		return false, appointments.ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments
		SET reminder_sent_at = $2
		WHERE id = $1 AND status = $3 AND reminder_sent_at IS NULL
	`, id, at, string(appointments.StatusApproved))
	if err != nil {
		return false, err
	}
	return rowsAffected(res) > 0, nil
}

func (r *AppointmentsRepo) List(ctx context.Context, f appointments.ListFilter) ([]appointments.Appointment, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + appointmentColumns + ` FROM appointments WHERE 1=1`)

	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.OwnerUserID != "" {
		sb.WriteString(" AND owner_user_id = " + arg(f.OwnerUserID))
	}
	if f.VetUserID != "" {
		sb.WriteString(" AND vet_user_id = " + arg(f.VetUserID))
	}
	if f.PetID != "" {
		sb.WriteString(" AND pet_id = " + arg(f.PetID))
	}
	if len(f.Statuses) > 0 {
		placeholders := make([]string, 0, len(f.Statuses))
		for _, st := range f.Statuses {
			placeholders = append(placeholders, arg(string(st)))
		}
		sb.WriteString(" AND status IN (" + strings.Join(placeholders, ",") + ")")
	}
	if f.From != nil {
		sb.WriteString(" AND requested_at >= " + arg(*f.From))
	}
	if f.To != nil {
		sb.WriteString(" AND requested_at < " + arg(*f.To))
	}

	sb.WriteString(" ORDER BY requested_at ASC")
	if f.Limit > 0 {
		sb.WriteString(" LIMIT " + arg(f.Limit))
	}

	return r.query(ctx, sb.String(), args...)
}

func (r *AppointmentsRepo) FindConflicts(ctx context.Context, vetUserID string, from, to time.Time, excludeID string) ([]appointments.Appointment, error) {
	return r.query(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE vet_user_id = $1
			AND status <> $2
			AND requested_at > $3
			AND requested_at < $4
			AND id::text <> $5
		ORDER BY requested_at ASC
	`, vetUserID, string(appointments.StatusCancelled), from, to, excludeID)
}

func (r *AppointmentsRepo) CountByStatus(ctx context.Context, from, to *time.Time) (map[appointments.Status]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT status, COUNT(*)
		FROM appointments
		WHERE ($1::timestamptz IS NULL OR requested_at >= $1)
			AND ($2::timestamptz IS NULL OR requested_at < $2)
		GROUP BY status
	`, toNullTime(from), toNullTime(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[appointments.Status]int)
	for rows.Next() {
		var st string
		var n int
		if err := rows.Scan(&st, &n); err != nil {
			return nil, err
		}
		out[appointments.Status(st)] = n
	}
	return out, rows.Err()
}

func (r *AppointmentsRepo) CountPerDay(ctx context.Context, from, to time.Time) ([]appointments.DayCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT to_char(requested_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*)
		FROM appointments
		WHERE requested_at >= $1 AND requested_at < $2
		GROUP BY day
		ORDER BY day ASC
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.DayCount, 0)
	for rows.Next() {
		var dc appointments.DayCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, err
		}
		out = append(out, dc)
	}
	return out, rows.Err()
}

func (r *AppointmentsRepo) query(ctx context.Context, query string, args ...any) ([]appointments.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAppointment(s scanner) (appointments.Appointment, error) {
	var a appointments.Appointment
	var vet sql.NullString
	var actual, reminder sql.NullTime
	var status string
	if err := s.Scan(
		&a.ID,
		&a.PetID,
		&a.OwnerUserID,
		&vet,
		&a.RequestedDateTime,
		&actual,
		&a.ReasonForVisit,
		&a.Notes,
		&a.AdminNotes,
		&a.CancellationReason,
		&status,
		&reminder,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.UpdatedByUserID,
	); err != nil {
		return appointments.Appointment{}, err
	}

	a.VetUserID = fromNullString(vet)
	a.ActualDateTime = fromNullTime(actual)
	a.ReminderSentAt = fromNullTime(reminder)
	a.Status = appointments.Status(status)
	return a, nil
}
