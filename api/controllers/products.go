package controllers

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/mvsaqua/aquastore-backend/api/responses"
	pkgerrors "github.com/mvsaqua/aquastore-backend/pkg/errors"
	"github.com/mvsaqua/aquastore-backend/pkg/logger"
	"github.com/mvsaqua/aquastore-backend/pkg/models"
)

// Catalog is the read-only product surface the public storefront needs.
type Catalog interface {
	Products() []models.Product
	ProductByID(id string) (models.Product, bool)
}

// ListProducts returns the full catalog, newest first.
func ListProducts(catalog Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if catalog == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}
		responses.WriteSuccess(w, catalog.Products())
	}
}

func GetProduct(catalog Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if catalog == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		productID := chi.URLParam(r, "productId")
		product, ok := catalog.ProductByID(productID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, product)
	}
}
