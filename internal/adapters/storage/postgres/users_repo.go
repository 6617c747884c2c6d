package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-clinic/internal/domain/users"
	"pet-clinic/internal/ports/auth"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

const userColumns = `
	id, email, full_name, phone, password_hash, roles,
	created_at, updated_at`

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		u.ID,
		strings.ToLower(u.Email),
		u.FullName,
		u.Phone,
		u.PasswordHash,
		rolesToTextArray(u.Roles),
		u.CreatedAt,
		u.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return users.ErrEmailTaken
	}
	return err
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET
			email = $2,
			full_name = $3,
			phone = $4,
			password_hash = $5,
			roles = $6,
			updated_at = $7
		WHERE id = $1
	`,
		u.ID,
		strings.ToLower(u.Email),
		u.FullName,
		u.Phone,
		u.PasswordHash,
		rolesToTextArray(u.Roles),
		u.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return users.ErrEmailTaken
	}
	if err != nil {
		return err
	}
	if rowsAffected(res) == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	id = strings.TrimSpace(id)
	if !validID(id) {
		return users.User{}, users.ErrNotFound
	}
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, strings.ToLower(strings.TrimSpace(email)))
}

func (r *UsersRepo) ListByRole(ctx context.Context, role auth.Role) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE $1 = ANY(roles)
		ORDER BY full_name ASC
	`, string(role))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UsersRepo) getOne(ctx context.Context, query string, arg string) (users.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return users.User{}, users.ErrNotFound
	}
	return u, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (users.User, error) {
	var u users.User
	var roles []string
	if err := s.Scan(
		&u.ID,
		&u.Email,
		&u.FullName,
		&u.Phone,
		&u.PasswordHash,
		typeMap.SQLScanner(&roles),
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return users.User{}, err
	}
	u.Roles = textArrayToRoles(roles)
	return u, nil
}

func rolesToTextArray(in []auth.Role) []string {
	out := make([]string, 0, len(in))
	for _, r := range in {
		out = append(out, string(r))
	}
	return out
}

func textArrayToRoles(in []string) []auth.Role {
	out := make([]auth.Role, 0, len(in))
	for _, s := range in {
		if r, ok := auth.ParseRole(s); ok {
			out = append(out, r)
		}
	}
	return out
}
