// backend/src/handlers/season_handler.go
package handlers

import (
	"net/http"

	"github.com/username/safrapanel/backend/src/season"
	"github.com/username/safrapanel/backend/src/services"
	"github.com/username/safrapanel/backend/src/utils"
)

type SeasonHandler struct {
	reportService services.ReportService
}

func NewSeasonHandler(reportService services.ReportService) *SeasonHandler {
	return &SeasonHandler{reportService: reportService}
}

// HandleListSeasons returns the configured seasons, newest first, plus the
// default season id the frontend should select initially.
func (h *SeasonHandler) HandleListSeasons(w http.ResponseWriter, r *http.Request) {
	response := struct {
		Seasons []*season.Config `json:"safras"`
		Default string           `json:"padrao"`
	}{
		Seasons: h.reportService.Seasons(),
		Default: season.DefaultSeasonID,
	}
	utils.SendJSON(w, response)
}
