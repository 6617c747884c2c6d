package inventory

import "time"

// Item es un insumo de la clínica (vacunas, medicamentos, descartables...).
type Item struct {
	ID       string
	Name     string
	Category string
	SKU      string

	Quantity     int // nunca negativa
	Unit         string
	ReorderLevel int
	UnitCost     float64

	ExpiryDate *time.Time
	Supplier   string
	Notes      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLowStock: cantidad igual o por debajo del punto de reposición.
func (i Item) IsLowStock() bool {
	return i.Quantity <= i.ReorderLevel
}

// crossedLowStock es true solo cuando el ítem pasa de stock normal a bajo.
func crossedLowStock(before, after Item) bool {
	return !before.IsLowStock() && after.IsLowStock()
}
