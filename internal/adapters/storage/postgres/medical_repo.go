package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"pet-clinic/internal/domain/medical"
)

type MedicalRepo struct {
	db *sql.DB
}

func NewMedicalRepo(db *sql.DB) *MedicalRepo {
	return &MedicalRepo{db: db}
}

const medicalColumns = `
	id, kind, pet_id, vet_user_id, status, due_at, details::text,
	created_at, updated_at`

func (r *MedicalRepo) Create(ctx context.Context, e medical.Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medical_entries (
			id, kind, pet_id, vet_user_id, status, due_at, details,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7::jsonb,$8,$9)
	`,
		e.ID,
		string(e.Kind),
		e.PetID,
		e.VetUserID,
		e.Status,
		toNullTime(e.DueAt),
		string(e.Details),
		e.CreatedAt,
		e.UpdatedAt,
	)
	return err
}

func (r *MedicalRepo) Update(ctx context.Context, e medical.Entry) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE medical_entries
		SET
			status = $3,
			due_at = $4,
			details = $5::jsonb,
			updated_at = $6
		WHERE id = $1 AND kind = $2
	`,
		e.ID,
		string(e.Kind),
		e.Status,
		toNullTime(e.DueAt),
		string(e.Details),
		e.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if rowsAffected(res) == 0 {
		return medical.ErrNotFound
	}
	return nil
}

func (r *MedicalRepo) GetByID(ctx context.Context, kind medical.Kind, id string) (medical.Entry, error) {
	id = strings.TrimSpace(id)
	if !validID(id) {
		return medical.Entry{}, medical.ErrNotFound
	}

	e, err := scanEntry(r.db.QueryRowContext(ctx, `
		SELECT `+medicalColumns+`
		FROM medical_entries
		WHERE id = $1 AND kind = $2
	`, id, string(kind)))
	if errors.Is(err, sql.ErrNoRows) {
		return medical.Entry{}, medical.ErrNotFound
	}
	return e, err
}

func (r *MedicalRepo) ListByPet(ctx context.Context, kind medical.Kind, petID string) ([]medical.Entry, error) {
	return r.query(ctx, `
		SELECT `+medicalColumns+`
		FROM medical_entries
		WHERE kind = $1 AND pet_id = $2
		ORDER BY created_at DESC
	`, string(kind), petID)
}

func (r *MedicalRepo) ListDue(ctx context.Context, kind medical.Kind, until time.Time) ([]medical.Entry, error) {
	return r.query(ctx, `
		SELECT `+medicalColumns+`
		FROM medical_entries
		WHERE kind = $1 AND due_at IS NOT NULL AND due_at <= $2
		ORDER BY due_at ASC
	`, string(kind), until)
}

func (r *MedicalRepo) Delete(ctx context.Context, kind medical.Kind, id string) error {
	if !validID(id) {
		return medical.ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM medical_entries WHERE id = $1 AND kind = $2`, id, string(kind))
	if err != nil {
		return err
	}
	if rowsAffected(res) == 0 {
		return medical.ErrNotFound
	}
	return nil
}

func (r *MedicalRepo) query(ctx context.Context, query string, args ...any) ([]medical.Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medical.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanEntry(s scanner) (medical.Entry, error) {
	var e medical.Entry
	var kind, details string
	var due sql.NullTime
	if err := s.Scan(
		&e.ID,
		&kind,
		&e.PetID,
		&e.VetUserID,
		&e.Status,
		&due,
		&details,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return medical.Entry{}, err
	}
	e.Kind = medical.Kind(kind)
	e.DueAt = fromNullTime(due)
	e.Details = []byte(details)
	return e, nil
}
