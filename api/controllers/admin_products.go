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

// CatalogAdmin is the mutating product surface behind the admin gate.
type CatalogAdmin interface {
	AddProduct(ctx context.Context, p models.Product) models.Product
	UpdateProduct(ctx context.Context, p models.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

type productRequest struct {
	SKU         string  `json:"sku"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
	ImageURL    string  `json:"imageUrl"`
	Stock       int     `json:"stock" validate:"omitempty,min=0"`
	Weight      float64 `json:"weight" validate:"omitempty,gte=0"`
	Option      string  `json:"option"`
	Featured    bool    `json:"featured"`
}

func (p productRequest) toModel() models.Product {
	return models.Product{
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		Weight:      p.Weight,
		Option:      p.Option,
		Featured:    p.Featured,
	}
}

func AdminCreateProduct(catalog CatalogAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if catalog == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product := catalog.AddProduct(r.Context(), payload.toModel())
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

func AdminUpdateProduct(catalog CatalogAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if catalog == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product := payload.toModel()
		product.ID = chi.URLParam(r, "productId")
		if err := catalog.UpdateProduct(r.Context(), product); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

func AdminDeleteProduct(catalog CatalogAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if catalog == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		if err := catalog.DeleteProduct(r.Context(), chi.URLParam(r, "productId")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
