package state

import (
	"context"
	"time"

	"github.com/mvsaqua/aquastore-backend/internal/checkout"
	"github.com/mvsaqua/aquastore-backend/internal/clouddb"
	"github.com/mvsaqua/aquastore-backend/pkg/enums"
	pkgerrors "github.com/mvsaqua/aquastore-backend/pkg/errors"
	"github.com/mvsaqua/aquastore-backend/pkg/models"
	"github.com/mvsaqua/aquastore-backend/pkg/whatsapp"
)

const defaultCustomerName = "MVS Customer"

// Orders returns a copy of the mirrored order history, newest first.
func (h *Holder) Orders() []models.Order {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]models.Order(nil), h.orders...)
}

// OrderByID looks an order up in the mirror.
func (h *Holder) OrderByID(id string) (models.Order, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, o := range h.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// PlaceOrder snapshots the cart into a new order, prepends it to the
// history, empties the cart, and returns the order together with the
// WhatsApp hand-off link. Prior orders are never touched.
func (h *Holder) PlaceOrder(ctx context.Context, address string) (models.Order, string, error) {
	h.mu.Lock()
	if len(h.cart) == 0 {
		h.mu.Unlock()
		return models.Order{}, "", pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	name := defaultCustomerName
	email := ""
	if h.user != nil {
		name = "Admin"
		email = h.user.Email
	}

	order := checkout.NewOrder(checkout.OrderInput{
		Cart:          h.cart,
		Existing:      h.orders,
		CustomerName:  name,
		CustomerEmail: email,
		Address:       address,
		RatePerKg:     h.storeCfg.ShippingRatePerKg,
		Now:           time.Now(),
	})

	h.orders = append([]models.Order{order}, h.orders...)
	h.cart = nil
	updatedOrders := append([]models.Order(nil), h.orders...)
	h.mu.Unlock()

	link := whatsapp.OrderLink(h.storeCfg, order)

	// No rollback on failure: the order stays in memory and the cart
	// stays empty.
	if err := h.db.SaveDB(ctx, clouddb.OrdersPatch(updatedOrders)); err != nil && h.logg != nil {
		h.logg.Error(ctx, "persisting order", err)
	}
	h.persistCart(ctx, nil)

	return order, link, nil
}

// UpdateOrderStatus moves an order to the given status.
func (h *Holder) UpdateOrderStatus(ctx context.Context, id string, status enums.OrderStatus) (models.Order, error) {
	if !status.IsValid() {
		return models.Order{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status")
	}

	h.mu.Lock()
	idx := -1
	for i, o := range h.orders {
		if o.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		h.mu.Unlock()
		return models.Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	h.orders[idx].Status = status
	updated := h.orders[idx]
	updatedOrders := append([]models.Order(nil), h.orders...)
	h.mu.Unlock()

	if err := h.db.SaveDB(ctx, clouddb.OrdersPatch(updatedOrders)); err != nil && h.logg != nil {
		h.logg.Error(ctx, "persisting order status", err)
	}
	return updated, nil
}
