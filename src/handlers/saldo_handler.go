// backend/src/handlers/saldo_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/username/safrapanel/backend/src/logger"
	"github.com/username/safrapanel/backend/src/services"
	"github.com/username/safrapanel/backend/src/utils"
)

type SaldoHandler struct {
	reportService services.ReportService
}

func NewSaldoHandler(reportService services.ReportService) *SaldoHandler {
	return &SaldoHandler{reportService: reportService}
}

// HandleGetSaldo serves the stock-vs-contract reconciliation for one season.
func (h *SaldoHandler) HandleGetSaldo(w http.ResponseWriter, r *http.Request) {
	seasonID := r.PathValue("id")
	dashboard, err := h.reportService.Saldo(seasonID)
	if err != nil {
		logger.L.Error("building saldo", "season", seasonID, "error", err)
		utils.SendJSONError(w, fmt.Sprintf("error building saldo for season %s", seasonID), http.StatusInternalServerError)
		return
	}
	utils.SendJSON(w, dashboard)
}
