// backend/src/handlers/upload_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/username/safrapanel/backend/src/config"
	"github.com/username/safrapanel/backend/src/logger"
	"github.com/username/safrapanel/backend/src/security/validation"
	"github.com/username/safrapanel/backend/src/services"
	"github.com/username/safrapanel/backend/src/utils"
)

type UploadHandler struct {
	uploadService services.UploadService
}

func NewUploadHandler(uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// HandleUploadDataset replaces one season dataset with the uploaded export.
// The payload is a JSON array of raw spreadsheet rows; ?kind= selects which
// dataset (tickets, advances, fuel) is being replaced.
func (h *UploadHandler) HandleUploadDataset(w http.ResponseWriter, r *http.Request) {
	seasonID := r.PathValue("id")
	kind := r.URL.Query().Get("kind")
	if kind == "" {
		kind = services.DatasetTickets
	}

	if err := validation.ValidateClientContentType(r.Header.Get("Content-Type")); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusUnsupportedMediaType)
		return
	}
	body := http.MaxBytesReader(w, r.Body, config.Cfg.MaxUploadSizeBytes)
	defer body.Close()

	kept, err := h.uploadService.StoreDataset(seasonID, kind, body)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownSeason):
			utils.SendJSONError(w, fmt.Sprintf("unknown season: %s", seasonID), http.StatusNotFound)
		case errors.Is(err, services.ErrUnknownDatasetKind),
			errors.Is(err, services.ErrDatasetDisabled):
			utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, services.ErrParsingFailed):
			utils.SendJSONError(w, "payload is not a valid JSON row array", http.StatusBadRequest)
		default:
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				utils.SendJSONError(w, "payload too large", http.StatusRequestEntityTooLarge)
				return
			}
			logger.L.Error("storing dataset", "season", seasonID, "kind", kind, "error", err)
			utils.SendJSONError(w, "error storing dataset", http.StatusInternalServerError)
		}
		return
	}

	response := struct {
		Season string `json:"safra"`
		Kind   string `json:"tipo"`
		Rows   int    `json:"linhas"`
	}{Season: seasonID, Kind: kind, Rows: kept}
	utils.SendJSON(w, response)
}
