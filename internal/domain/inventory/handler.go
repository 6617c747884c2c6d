package inventory

import (
	"net/http"
	"time"

	"pet-clinic/internal/middleware"
	"pet-clinic/internal/platform/httpx"
	"pet-clinic/internal/platform/logger"
	"pet-clinic/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/inventory", func(ir chi.Router) {
		ir.Use(middleware.RequireRole(auth.RoleVet, auth.RoleAdmin))
		admin := middleware.RequireRole(auth.RoleAdmin)

		ir.Get("/", listItemsHandler(svc, log))
		ir.Get("/{itemID}", getItemHandler(svc, log))

		ir.With(admin).Post("/", createItemHandler(svc, log))
		ir.With(admin).Put("/{itemID}", updateItemHandler(svc, log))
		ir.With(admin).Post("/{itemID}/adjust", adjustItemHandler(svc, log))
		ir.With(admin).Delete("/{itemID}", deleteItemHandler(svc, log))
	})
}

type itemRequest struct {
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	SKU          string     `json:"sku"`
	Quantity     int        `json:"quantity"` // ignorado en PUT
	Unit         string     `json:"unit"`
	ReorderLevel int        `json:"reorderLevel"`
	UnitCost     float64    `json:"unitCost"`
	ExpiryDate   *time.Time `json:"expiryDate"`
	Supplier     string     `json:"supplier"`
	Notes        string     `json:"notes"`
}

func (req itemRequest) input() ItemInput {
	return ItemInput{
		Name:         req.Name,
		Category:     req.Category,
		SKU:          req.SKU,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		ReorderLevel: req.ReorderLevel,
		UnitCost:     req.UnitCost,
		ExpiryDate:   req.ExpiryDate,
		Supplier:     req.Supplier,
		Notes:        req.Notes,
	}
}

type adjustRequest struct {
	Delta  int    `json:"delta"`
	Reason string `json:"reason"`
}

type itemResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	SKU          string     `json:"sku,omitempty"`
	Quantity     int        `json:"quantity"`
	Unit         string     `json:"unit"`
	ReorderLevel int        `json:"reorderLevel"`
	UnitCost     float64    `json:"unitCost"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty"`
	Supplier     string     `json:"supplier,omitempty"`
	Notes        string     `json:"notes"`
	LowStock     bool       `json:"lowStock"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func toItemResponse(it Item) itemResponse {
	return itemResponse{
		ID:           it.ID,
		Name:         it.Name,
		Category:     it.Category,
		SKU:          it.SKU,
		Quantity:     it.Quantity,
		Unit:         it.Unit,
		ReorderLevel: it.ReorderLevel,
		UnitCost:     it.UnitCost,
		ExpiryDate:   it.ExpiryDate,
		Supplier:     it.Supplier,
		Notes:        it.Notes,
		LowStock:     it.IsLowStock(),
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}

// listItemsHandler godoc
// @Summary Listar inventario
// @Description Vet o admin. Filtra por categoría y/o solo ítems en stock bajo.
// @Tags inventory
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param category query string false "Categoría"
// @Param lowStock query bool false "Solo stock bajo"
// @Success 200 {array} itemResponse
// @Failure 403 {object} httpx.ErrorBody
// @Router /inventory [get]
func listItemsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), ListFilter{
			Category:     r.URL.Query().Get("category"),
			LowStockOnly: httpx.QueryBool(r, "lowStock"),
		})
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		out := make([]itemResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toItemResponse(it))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getItemHandler godoc
// @Summary Obtener ítem de inventario
// @Tags inventory
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param itemID path string true "ID del ítem"
// @Success 200 {object} itemResponse
// @Failure 404 {object} httpx.ErrorBody
// @Router /inventory/{itemID} [get]
func getItemHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		it, err := svc.Get(r.Context(), chi.URLParam(r, "itemID"))
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toItemResponse(it))
	}
}

// createItemHandler godoc
// @Summary Alta de ítem de inventario
// @Description Solo admin.
// @Tags inventory
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body itemRequest true "Datos del ítem"
// @Success 201 {object} itemResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 409 {object} httpx.ErrorBody "sku already in use"
// @Router /inventory [post]
func createItemHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req itemRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		it, err := svc.Create(r.Context(), req.input())
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toItemResponse(it))
	}
}

// updateItemHandler godoc
// @Summary Actualizar ítem de inventario
// @Description Solo admin. La cantidad se modifica con /adjust.
// @Tags inventory
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param itemID path string true "ID del ítem"
// @Param payload body itemRequest true "Datos del ítem"
// @Success 200 {object} itemResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Router /inventory/{itemID} [put]
func updateItemHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req itemRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		it, err := svc.Update(r.Context(), chi.URLParam(r, "itemID"), req.input())
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toItemResponse(it))
	}
}

// adjustItemHandler godoc
// @Summary Ajustar stock
// @Description Solo admin. `delta` positivo ingresa stock, negativo lo consume. Nunca deja la cantidad negativa.
// @Tags inventory
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param itemID path string true "ID del ítem"
// @Param payload body adjustRequest true "Movimiento"
// @Success 200 {object} itemResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Failure 409 {object} httpx.ErrorBody "insufficient stock"
// @Router /inventory/{itemID}/adjust [post]
func adjustItemHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.Caller(w, r)
		if !ok {
			return
		}

		var req adjustRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		it, err := svc.Adjust(r.Context(), claims, chi.URLParam(r, "itemID"), req.Delta, req.Reason)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toItemResponse(it))
	}
}

// deleteItemHandler godoc
// @Summary Borrar ítem de inventario
// @Description Solo admin.
// @Tags inventory
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param itemID path string true "ID del ítem"
// @Success 204
// @Failure 404 {object} httpx.ErrorBody
// @Router /inventory/{itemID} [delete]
func deleteItemHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "itemID")); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
