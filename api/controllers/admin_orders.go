package controllers

import (
	"context"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/mvsaqua/aquastore-backend/api/responses"
	"github.com/mvsaqua/aquastore-backend/api/validators"
	"github.com/mvsaqua/aquastore-backend/pkg/enums"
	pkgerrors "github.com/mvsaqua/aquastore-backend/pkg/errors"
	"github.com/mvsaqua/aquastore-backend/pkg/logger"
	"github.com/mvsaqua/aquastore-backend/pkg/models"
)

// OrderStore is the order history surface behind the admin gate.
type OrderStore interface {
	Orders() []models.Order
	OrderByID(id string) (models.Order, bool)
	UpdateOrderStatus(ctx context.Context, id string, status enums.OrderStatus) (models.Order, error)
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func AdminListOrders(orders OrderStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if orders == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders unavailable"))
			return
		}
		responses.WriteSuccess(w, orders.Orders())
	}
}

func AdminGetOrder(orders OrderStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if orders == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders unavailable"))
			return
		}

		order, ok := orders.OrderByID(chi.URLParam(r, "orderId"))
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "order not found"))
			return
		}
		responses.WriteSuccess(w, order)
	}
}

func AdminUpdateOrderStatus(orders OrderStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if orders == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders unavailable"))
			return
		}

		var payload updateOrderStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseOrderStatus(payload.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
			return
		}

		order, err := orders.UpdateOrderStatus(r.Context(), chi.URLParam(r, "orderId"), status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}
