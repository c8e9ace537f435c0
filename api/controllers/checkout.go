package controllers

import (
	"context"
	"net/http"

	"github.com/mvsaqua/aquastore-backend/api/responses"
	"github.com/mvsaqua/aquastore-backend/api/validators"
	pkgerrors "github.com/mvsaqua/aquastore-backend/pkg/errors"
	"github.com/mvsaqua/aquastore-backend/pkg/logger"
	"github.com/mvsaqua/aquastore-backend/pkg/models"
)

// CheckoutStore turns the current cart into an order.
type CheckoutStore interface {
	PlaceOrder(ctx context.Context, address string) (models.Order, string, error)
}

type checkoutRequest struct {
	Address string `json:"address"`
}

type checkoutResponse struct {
	Order       models.Order `json:"order"`
	WhatsAppURL string       `json:"whatsapp_url"`
}

// Checkout places the order and hands back the WhatsApp link the storefront
// opens to finish the conversation with the seller.
func Checkout(store CheckoutStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout unavailable"))
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, link, err := store.PlaceOrder(r.Context(), payload.Address)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, checkoutResponse{
			Order:       order,
			WhatsAppURL: link,
		})
	}
}
