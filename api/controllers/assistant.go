package controllers

import (
	"net/http"

	"github.com/mvsaqua/aquastore-backend/api/responses"
	"github.com/mvsaqua/aquastore-backend/api/validators"
	assistantsvc "github.com/mvsaqua/aquastore-backend/internal/assistant"
	pkgerrors "github.com/mvsaqua/aquastore-backend/pkg/errors"
	"github.com/mvsaqua/aquastore-backend/pkg/logger"
)

type adviceRequest struct {
	Prompt string `json:"prompt" validate:"required,max=2000"`
}

type adviceResponse struct {
	Reply string `json:"reply"`
}

// Advice proxies storefront chat questions to the aquarium assistant. It
// always answers 200; model failures surface as the assistant's apology.
func Advice(svc assistantsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "assistant unavailable"))
			return
		}

		var payload adviceRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, adviceResponse{Reply: svc.Advice(r.Context(), payload.Prompt)})
	}
}
