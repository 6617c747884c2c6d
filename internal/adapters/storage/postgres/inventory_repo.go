package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-clinic/internal/domain/inventory"
)

type InventoryRepo struct {
	db *sql.DB
}

func NewInventoryRepo(db *sql.DB) *InventoryRepo {
	return &InventoryRepo{db: db}
}

const inventoryColumns = `
	id, name, category, sku, quantity, unit, reorder_level, unit_cost,
	expiry_date, supplier, notes, created_at, updated_at`

func (r *InventoryRepo) Create(ctx context.Context, it inventory.Item) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO inventory_items (`+inventoryColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		it.ID,
		it.Name,
		it.Category,
		nullableSKU(it.SKU),
		it.Quantity,
		it.Unit,
		it.ReorderLevel,
		it.UnitCost,
		toNullTime(it.ExpiryDate),
		it.Supplier,
		it.Notes,
		it.CreatedAt,
		it.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return inventory.ErrSKUTaken
	}
	return err
}

func (r *InventoryRepo) Update(ctx context.Context, it inventory.Item) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE inventory_items
		SET
			name = $2,
			category = $3,
			sku = $4,
			unit = $5,
			reorder_level = $6,
			unit_cost = $7,
			expiry_date = $8,
			supplier = $9,
			notes = $10,
			updated_at = $11
		WHERE id = $1
	`,
		it.ID,
		it.Name,
		it.Category,
		nullableSKU(it.SKU),
		it.Unit,
		it.ReorderLevel,
		it.UnitCost,
		toNullTime(it.ExpiryDate),
		it.Supplier,
		it.Notes,
		it.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return inventory.ErrSKUTaken
	}
	if err != nil {
		return err
	}
	if rowsAffected(res) == 0 {
		return inventory.ErrNotFound
	}
	return nil
}

func (r *InventoryRepo) GetByID(ctx context.Context, id string) (inventory.Item, error) {
	id = strings.TrimSpace(id)
	if !validID(id) {
		return inventory.Item{}, inventory.ErrNotFound
	}

	it, err := scanItem(r.db.QueryRowContext(ctx, `SELECT `+inventoryColumns+` FROM inventory_items WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return inventory.Item{}, inventory.ErrNotFound
	}
	return it, err
}

func (r *InventoryRepo) List(ctx context.Context, f inventory.ListFilter) ([]inventory.Item, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + inventoryColumns + ` FROM inventory_items WHERE 1=1`)
	args := []any{}

	if f.Category != "" {
		args = append(args, f.Category)
		sb.WriteString(fmt.Sprintf(" AND category = $%d", len(args)))
	}
	if f.LowStockOnly {
		sb.WriteString(" AND quantity <= reorder_level")
	}
	sb.WriteString(" ORDER BY name ASC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]inventory.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// Adjust aplica el delta en una sola sentencia; la condición evita cantidades negativas.
func (r *InventoryRepo) Adjust(ctx context.Context, id string, delta int, at time.Time) (inventory.Item, error) {
	if !validID(id) {
		return inventory.Item{}, inventory.ErrNotFound
	}
	it, err := scanItem(r.db.QueryRowContext(ctx, `
		UPDATE inventory_items
		SET quantity = quantity + $2, updated_at = $3
		WHERE id = $1 AND quantity + $2 >= 0
		RETURNING `+inventoryColumns,
		id, delta, at,
	))
	if errors.Is(err, sql.ErrNoRows) {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return inventory.Item{}, getErr
		}
		return inventory.Item{}, inventory.ErrInsufficientStock
	}
	return it, err
}

func (r *InventoryRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return inventory.ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rowsAffected(res) == 0 {
		return inventory.ErrNotFound
	}
	return nil
}

func scanItem(s scanner) (inventory.Item, error) {
	var it inventory.Item
	var sku sql.NullString
	var expiry sql.NullTime
	if err := s.Scan(
		&it.ID,
		&it.Name,
		&it.Category,
		&sku,
		&it.Quantity,
		&it.Unit,
		&it.ReorderLevel,
		&it.UnitCost,
		&expiry,
		&it.Supplier,
		&it.Notes,
		&it.CreatedAt,
		&it.UpdatedAt,
	); err != nil {
		return inventory.Item{}, err
	}
	it.SKU = sku.String
	it.ExpiryDate = fromNullTime(expiry)
	return it, nil
}

// SKU vacío se guarda como NULL para no chocar con el índice único.
func nullableSKU(sku string) sql.NullString {
	if sku == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: sku, Valid: true}
}
