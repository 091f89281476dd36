// backend/src/handlers/freight_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/username/safrapanel/backend/src/logger"
	"github.com/username/safrapanel/backend/src/processors"
	"github.com/username/safrapanel/backend/src/services"
	"github.com/username/safrapanel/backend/src/utils"
)

type FreightHandler struct {
	reportService services.ReportService
	exportService services.ExportService
}

func NewFreightHandler(reportService services.ReportService, exportService services.ExportService) *FreightHandler {
	return &FreightHandler{reportService: reportService, exportService: exportService}
}

// parseFreightQuery maps the request's query string onto a freight query.
// Unknown values fall back to the defaults (floor rounding, simple layout,
// chronological order).
func parseFreightQuery(r *http.Request) processors.FreightQuery {
	q := r.URL.Query()
	query := processors.FreightQuery{
		Filter: processors.FreightFilter{
			Driver:    q.Get("driver"),
			Plate:     q.Get("plate"),
			Warehouse: q.Get("warehouse"),
		},
		Rounding: processors.RoundingFloor,
		Model:    processors.ModelSimple,
		SortKey:  q.Get("sort"),
		SortDesc: q.Get("order") == "desc",
	}
	if q.Get("rounding") == string(processors.RoundingExact) {
		query.Rounding = processors.RoundingExact
	}
	if q.Get("model") == string(processors.ModelByFarm) {
		query.Model = processors.ModelByFarm
	}
	return query
}

// HandleGetFreight serves the priced freight report with driver settlement.
func (h *FreightHandler) HandleGetFreight(w http.ResponseWriter, r *http.Request) {
	seasonID := r.PathValue("id")
	report, err := h.reportService.Freight(seasonID, parseFreightQuery(r))
	if err != nil {
		logger.L.Error("building freight report", "season", seasonID, "error", err)
		utils.SendJSONError(w, fmt.Sprintf("error building freight report for season %s", seasonID), http.StatusInternalServerError)
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

// HandleExportFreight streams the freight report as an XLSX download.
func (h *FreightHandler) HandleExportFreight(w http.ResponseWriter, r *http.Request) {
	seasonID := r.PathValue("id")
	workbook, err := h.exportService.FreightWorkbook(seasonID, parseFreightQuery(r))
	if err != nil {
		if errors.Is(err, services.ErrUnknownSeason) {
			utils.SendJSONError(w, fmt.Sprintf("unknown season: %s", seasonID), http.StatusNotFound)
			return
		}
		logger.L.Error("exporting freight report", "season", seasonID, "error", err)
		utils.SendJSONError(w, "error exporting freight report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=fretes_%s.xlsx", seasonID))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(workbook); err != nil {
		logger.L.Warn("writing freight export response", "season", seasonID, "error", err)
	}
}
