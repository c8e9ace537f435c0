package state

import (
	"context"

	pkgerrors "github.com/mvsaqua/aquastore-backend/pkg/errors"
	"github.com/mvsaqua/aquastore-backend/pkg/models"
)

// Cart quantity bounds. A line can never leave [1, 50] no matter how many
// increments or decrements arrive.
const (
	MinQuantity = 1
	MaxQuantity = 50
)

// Cart returns a copy of the current cart lines.
func (h *Holder) Cart() []models.CartItem {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]models.CartItem(nil), h.cart...)
}

// AddToCart adds one unit of the product: an existing line is incremented
// (clamped at the ceiling), otherwise a new line opens with quantity 1.
func (h *Holder) AddToCart(ctx context.Context, productID string) (models.CartItem, error) {
	product, ok := h.ProductByID(productID)
	if !ok {
		return models.CartItem{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	h.mu.Lock()
	var line models.CartItem
	found := false
	for i := range h.cart {
		if h.cart[i].ID == productID {
			h.cart[i].Quantity = clampQuantity(h.cart[i].Quantity + 1)
			line = h.cart[i]
			found = true
			break
		}
	}
	if !found {
		line = models.CartItem{Product: product, Quantity: 1}
		h.cart = append(h.cart, line)
	}
	updated := append([]models.CartItem(nil), h.cart...)
	h.mu.Unlock()

	h.persistCart(ctx, updated)
	return line, nil
}

// UpdateCartQuantity applies a delta to an existing line, clamped to the
// allowed range.
func (h *Holder) UpdateCartQuantity(ctx context.Context, productID string, delta int) (models.CartItem, error) {
	h.mu.Lock()
	var line models.CartItem
	found := false
	for i := range h.cart {
		if h.cart[i].ID == productID {
			h.cart[i].Quantity = clampQuantity(h.cart[i].Quantity + delta)
			line = h.cart[i]
			found = true
			break
		}
	}
	if !found {
		h.mu.Unlock()
		return models.CartItem{}, pkgerrors.New(pkgerrors.CodeNotFound, "cart line not found")
	}
	updated := append([]models.CartItem(nil), h.cart...)
	h.mu.Unlock()

	h.persistCart(ctx, updated)
	return line, nil
}

// RemoveFromCart drops the line for the product. Removing an absent line is
// a no-op.
func (h *Holder) RemoveFromCart(ctx context.Context, productID string) {
	h.mu.Lock()
	kept := h.cart[:0:0]
	for _, line := range h.cart {
		if line.ID != productID {
			kept = append(kept, line)
		}
	}
	h.cart = kept
	updated := append([]models.CartItem(nil), kept...)
	h.mu.Unlock()

	h.persistCart(ctx, updated)
}

// ClearCart empties the cart.
func (h *Holder) ClearCart(ctx context.Context) {
	h.mu.Lock()
	h.cart = nil
	h.mu.Unlock()

	h.persistCart(ctx, nil)
}

func clampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}
