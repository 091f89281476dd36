package services

import (
	"io"

	"github.com/username/safrapanel/backend/src/models"
	"github.com/username/safrapanel/backend/src/processors"
	"github.com/username/safrapanel/backend/src/season"
)

// DashboardReport is the aggregated payload behind the main dashboard view.
type DashboardReport struct {
	Season         *season.Config            `json:"safra"`
	Kpis           models.KpiStats           `json:"kpis"`
	Discounts      models.DiscountStats      `json:"descontos"`
	Volume         models.VolumeStats        `json:"volume"`
	FarmChart      []models.ChartPoint       `json:"graficoFazendas"`
	WarehouseChart []models.ChartPoint       `json:"graficoArmazens"`
	Contracts      models.ContractPartitions `json:"contratos"`
	Farms          []string                  `json:"fazendas"`
	Warehouses     []string                  `json:"armazens"`
	TicketCount    int                       `json:"totalCargas"`
}

// DatasetService loads a season's normalized data files.
type DatasetService interface {
	Tickets(seasonID string) ([]models.DeliveryTicket, error)
	// ConsolidatedTotal returns the season-total net sacks captured from a
	// closed season's export, 0 when the season has none.
	ConsolidatedTotal(seasonID string) (float64, error)
	Advances(seasonID string) ([]models.CashAdvance, error)
	Fuel(seasonID string) ([]models.FuelPurchase, error)
	// Invalidate drops the cached datasets of one season.
	Invalidate(seasonID string)
}

// ReportService builds the derived read models served by the API.
type ReportService interface {
	Seasons() []*season.Config
	Dashboard(seasonID string, filter processors.DashboardFilter) (*DashboardReport, error)
	Freight(seasonID string, query processors.FreightQuery) (*processors.FreightReport, error)
	Saldo(seasonID string) (*processors.SaldoDashboard, error)
	// Invalidate drops the cached reports of one season.
	Invalidate(seasonID string)
}

// ExportService renders reports into downloadable workbooks.
type ExportService interface {
	FreightWorkbook(seasonID string, query processors.FreightQuery) ([]byte, error)
}

// UploadService ingests raw spreadsheet-export rows for one season dataset
// and persists the normalized records.
type UploadService interface {
	StoreDataset(seasonID, kind string, payload io.Reader) (int, error)
}

// Upload dataset kinds.
const (
	DatasetTickets  = "tickets"
	DatasetAdvances = "advances"
	DatasetFuel     = "fuel"
)
