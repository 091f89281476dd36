// backend/src/handlers/dashboard_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/username/safrapanel/backend/src/logger"
	"github.com/username/safrapanel/backend/src/processors"
	"github.com/username/safrapanel/backend/src/services"
	"github.com/username/safrapanel/backend/src/utils"
)

type DashboardHandler struct {
	reportService services.ReportService
}

func NewDashboardHandler(reportService services.ReportService) *DashboardHandler {
	return &DashboardHandler{reportService: reportService}
}

// HandleGetDashboard serves the aggregated dashboard for one season.
// Query parameters "farm" and "warehouse" narrow the view; unknown season
// ids fall back to the default season. Responses carry an ETag so the
// frontend can poll cheaply.
func (h *DashboardHandler) HandleGetDashboard(w http.ResponseWriter, r *http.Request) {
	seasonID := r.PathValue("id")
	filter := processors.DashboardFilter{
		Farm:      r.URL.Query().Get("farm"),
		Warehouse: r.URL.Query().Get("warehouse"),
	}

	report, err := h.reportService.Dashboard(seasonID, filter)
	if err != nil {
		logger.L.Error("building dashboard", "season", seasonID, "error", err)
		utils.SendJSONError(w, fmt.Sprintf("error building dashboard for season %s", seasonID), http.StatusInternalServerError)
		return
	}

	if etag, err := utils.GenerateETag(report); err == nil {
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", etag)
	}
	utils.SendJSON(w, report)
}
