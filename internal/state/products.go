package state

import (
	"context"
	"fmt"
	"time"

	"github.com/mvsaqua/aquastore-backend/internal/clouddb"
	pkgerrors "github.com/mvsaqua/aquastore-backend/pkg/errors"
	"github.com/mvsaqua/aquastore-backend/pkg/models"
)

// Products returns a copy of the mirrored catalog.
func (h *Holder) Products() []models.Product {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]models.Product(nil), h.products...)
}

// ProductByID looks a product up in the mirror.
func (h *Holder) ProductByID(id string) (models.Product, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, p := range h.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// AddProduct assigns an identifier, prepends the product to the catalog and
// persists the new list. The mirror is updated even if persistence fails.
func (h *Holder) AddProduct(ctx context.Context, p models.Product) models.Product {
	p.ID = fmt.Sprintf("PROD-%d", time.Now().UnixMilli())

	h.mu.Lock()
	h.products = append([]models.Product{p}, h.products...)
	updated := append([]models.Product(nil), h.products...)
	h.mu.Unlock()

	h.persistProducts(ctx, updated)
	return p
}

// UpdateProduct replaces the catalog entry with the same identifier.
func (h *Holder) UpdateProduct(ctx context.Context, p models.Product) error {
	h.mu.Lock()
	found := false
	for i := range h.products {
		if h.products[i].ID == p.ID {
			h.products[i] = p
			found = true
			break
		}
	}
	if !found {
		h.mu.Unlock()
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	updated := append([]models.Product(nil), h.products...)
	h.mu.Unlock()

	h.persistProducts(ctx, updated)
	return nil
}

// DeleteProduct removes the product from the mirror and the persisted list.
// Existing order snapshots are untouched: orders embed their own copies.
func (h *Holder) DeleteProduct(ctx context.Context, id string) error {
	h.mu.Lock()
	kept := h.products[:0:0]
	found := false
	for _, p := range h.products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		h.mu.Unlock()
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	h.products = kept
	updated := append([]models.Product(nil), kept...)
	h.mu.Unlock()

	h.persistProducts(ctx, updated)
	return nil
}

func (h *Holder) persistProducts(ctx context.Context, products []models.Product) {
	// No rollback: the mirror already changed and stands on failure.
	if err := h.db.SaveDB(ctx, clouddb.ProductsPatch(products)); err != nil && h.logg != nil {
		h.logg.Error(ctx, "persisting product list", err)
	}
}
