package controllers

import (
	"net/http"

	"github.com/mvsaqua/aquastore-backend/api/responses"
	"github.com/mvsaqua/aquastore-backend/pkg/config"
	"github.com/mvsaqua/aquastore-backend/pkg/whatsapp"
)

type storeInfoResponse struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Instagram   string `json:"instagram"`
	YouTube     string `json:"youtube"`
	ChatURL     string `json:"chat_url"`
	TrackingURL string `json:"tracking_url"`
	GPayNumber  string `json:"gpay_number"`
}

// StoreInfo serves the storefront identity block the SPA renders in its
// header and footer.
func StoreInfo(cfg config.StoreConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, storeInfoResponse{
			Name:        cfg.Name,
			Address:     cfg.Address,
			Instagram:   cfg.Instagram,
			YouTube:     cfg.YouTube,
			ChatURL:     whatsapp.ChatLink(cfg),
			TrackingURL: cfg.TrackingURL,
			GPayNumber:  cfg.GPayNumber,
		})
	}
}
