package controllers

import (
	"context"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/mvsaqua/aquastore-backend/api/responses"
	"github.com/mvsaqua/aquastore-backend/api/validators"
	pkgerrors "github.com/mvsaqua/aquastore-backend/pkg/errors"
	"github.com/mvsaqua/aquastore-backend/pkg/logger"
	"github.com/mvsaqua/aquastore-backend/pkg/models"
)

// CartStore is the cart surface of the state holder.
type CartStore interface {
	Cart() []models.CartItem
	AddToCart(ctx context.Context, productID string) (models.CartItem, error)
	UpdateCartQuantity(ctx context.Context, productID string, delta int) (models.CartItem, error)
	RemoveFromCart(ctx context.Context, productID string)
	ClearCart(ctx context.Context)
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type updateCartItemRequest struct {
	// Delta is a signed quantity adjustment. -1 and +1 are the only values
	// the storefront sends, but any delta clamps into range. Zero is
	// rejected rather than treated as a no-op.
	Delta int `json:"delta" validate:"ne=0"`
}

func GetCart(cart CartStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cart == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}
		responses.WriteSuccess(w, cart.Cart())
	}
}

func AddCartItem(cart CartStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cart == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := cart.AddToCart(r.Context(), payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

func UpdateCartItem(cart CartStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cart == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := cart.UpdateCartQuantity(r.Context(), chi.URLParam(r, "productId"), payload.Delta)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

func RemoveCartItem(cart CartStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cart == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		cart.RemoveFromCart(r.Context(), chi.URLParam(r, "productId"))
		responses.WriteSuccess(w, cart.Cart())
	}
}

func ClearCart(cart CartStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cart == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		cart.ClearCart(r.Context())
		responses.WriteSuccess(w, []models.CartItem{})
	}
}
