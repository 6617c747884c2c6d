package inventory

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pet-clinic/internal/domain/notifications"
	"pet-clinic/internal/platform/apperr"
	"pet-clinic/internal/platform/logger"
	"pet-clinic/internal/platform/metrics"
	"pet-clinic/internal/ports/auth"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = apperr.New(apperr.KindNotFound, "inventory item not found")
	ErrSKUTaken          = apperr.New(apperr.KindConflict, "sku already in use")
	ErrInsufficientStock = apperr.New(apperr.KindInvalidState, "adjustment would make quantity negative")
)

const lowStockCategory = "inventory_low_stock"

// Alerter avisa a los admins cuando un ítem entra en stock bajo.
type Alerter interface {
	NotifySystem(ctx context.Context, in notifications.SystemInput) ([]notifications.Notification, error)
}

type Service struct {
	repo    Repository
	alerter Alerter
	log     logger.Logger
	now     func() time.Time
}

func NewService(repo Repository, alerter Alerter, log logger.Logger) *Service {
	return &Service{
		repo:    repo,
		alerter: alerter,
		log:     log,
		now:     time.Now,
	}
}

type ItemInput struct {
	Name         string
	Category     string
	SKU          string
	Quantity     int // solo en Create; después se mueve con Adjust
	Unit         string
	ReorderLevel int
	UnitCost     float64
	ExpiryDate   *time.Time
	Supplier     string
	Notes        string
}

func (in ItemInput) validate() error {
	fe := apperr.FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		fe.Add("name", "required")
	}
	if strings.TrimSpace(in.Category) == "" {
		fe.Add("category", "required")
	}
	if in.Quantity < 0 {
		fe.Add("quantity", "cannot be negative")
	}
	if in.ReorderLevel < 0 {
		fe.Add("reorderLevel", "cannot be negative")
	}
	if in.UnitCost < 0 {
		fe.Add("unitCost", "cannot be negative")
	}
	return fe.Err()
}

func (s *Service) Create(ctx context.Context, in ItemInput) (Item, error) {
	if err := in.validate(); err != nil {
		return Item{}, err
	}

	now := s.now()
	it := Item{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Category:     strings.ToLower(strings.TrimSpace(in.Category)),
		SKU:          strings.ToUpper(strings.TrimSpace(in.SKU)),
		Quantity:     in.Quantity,
		Unit:         strings.TrimSpace(in.Unit),
		ReorderLevel: in.ReorderLevel,
		UnitCost:     in.UnitCost,
		ExpiryDate:   in.ExpiryDate,
		Supplier:     strings.TrimSpace(in.Supplier),
		Notes:        strings.TrimSpace(in.Notes),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return Item{}, err
	}

	s.log.Info("inventory item created", map[string]any{"item_id": it.ID, "sku": it.SKU, "quantity": it.Quantity})
	if it.IsLowStock() {
		s.alertLowStock(ctx, it)
	}
	return it, nil
}

// Update cambia los datos descriptivos y el punto de reposición. La cantidad no se toca.
func (s *Service) Update(ctx context.Context, id string, in ItemInput) (Item, error) {
	if err := in.validate(); err != nil {
		return Item{}, err
	}
	before, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Item{}, err
	}

	it := before
	it.Name = strings.TrimSpace(in.Name)
	it.Category = strings.ToLower(strings.TrimSpace(in.Category))
	it.SKU = strings.ToUpper(strings.TrimSpace(in.SKU))
	it.Unit = strings.TrimSpace(in.Unit)
	it.ReorderLevel = in.ReorderLevel
	it.UnitCost = in.UnitCost
	it.ExpiryDate = in.ExpiryDate
	it.Supplier = strings.TrimSpace(in.Supplier)
	it.Notes = strings.TrimSpace(in.Notes)
	it.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, it); err != nil {
		return Item{}, err
	}
	if crossedLowStock(before, it) {
		s.alertLowStock(ctx, it)
	}
	return it, nil
}

// Adjust suma (o resta) unidades. reason queda en el log de movimientos.
func (s *Service) Adjust(ctx context.Context, caller auth.Claims, id string, delta int, reason string) (Item, error) {
	fe := apperr.FieldErrors{}
	if delta == 0 {
		fe.Add("delta", "cannot be zero")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		fe.Add("reason", "required")
	}
	if err := fe.Err(); err != nil {
		return Item{}, err
	}

	id = strings.TrimSpace(id)
	after, err := s.repo.Adjust(ctx, id, delta, s.now())
	if err != nil {
		return Item{}, err
	}
	before := after
	before.Quantity = after.Quantity - delta

	s.log.Info("inventory adjusted", map[string]any{
		"item_id":  after.ID,
		"delta":    delta,
		"quantity": after.Quantity,
		"reason":   reason,
		"by":       caller.UserID,
	})
	if crossedLowStock(before, after) {
		s.alertLowStock(ctx, after)
	}
	return after, nil
}

func (s *Service) Get(ctx context.Context, id string) (Item, error) {
	return s.repo.GetByID(ctx, strings.TrimSpace(id))
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Item, error) {
	f.Category = strings.ToLower(strings.TrimSpace(f.Category))
	return s.repo.List(ctx, f)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, strings.TrimSpace(id))
}

// alertLowStock es best-effort: un fallo se loguea y no afecta la operación.
func (s *Service) alertLowStock(ctx context.Context, it Item) {
	metrics.RecordLowStock()
	if s.alerter == nil {
		return
	}
	_, err := s.alerter.NotifySystem(ctx, notifications.SystemInput{
		Role:     auth.RoleAdmin,
		Title:    "Low Stock",
		Message:  fmt.Sprintf("%s is low on stock (%d %s left, reorder level %d).", it.Name, it.Quantity, it.Unit, it.ReorderLevel),
		Category: lowStockCategory,
		Attributes: map[string]string{
			"itemId":       it.ID,
			"sku":          it.SKU,
			"quantity":     strconv.Itoa(it.Quantity),
			"reorderLevel": strconv.Itoa(it.ReorderLevel),
		},
	})
	if err != nil {
		s.log.Error("low stock alert failed", map[string]any{"item_id": it.ID, "err": err})
	}
}
