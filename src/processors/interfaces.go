package processors

import (
	"github.com/username/safrapanel/backend/src/models"
	"github.com/username/safrapanel/backend/src/season"
)

// DashboardFilter holds the cross-filter state of the dashboard. Empty
// strings mean "no filter on that dimension".
type DashboardFilter struct {
	Farm      string
	Warehouse string
}

// KpiCalculator defines the interface for the headline aggregation cards.
type KpiCalculator interface {
	Calculate(tickets []models.DeliveryTicket, cfg *season.Config, filter DashboardFilter, consolidatedNetSacks float64) models.KpiStats
	Discounts(tickets []models.DeliveryTicket) models.DiscountStats
	Volume(tickets []models.DeliveryTicket, cfg *season.Config, filter DashboardFilter) models.VolumeStats
	FarmChart(tickets []models.DeliveryTicket, filter DashboardFilter) []models.ChartPoint
	WarehouseChart(tickets []models.DeliveryTicket, filter DashboardFilter) []models.ChartPoint
}

// ContractPartitioner defines the interface for the contract fulfillment split.
type ContractPartitioner interface {
	Partition(tickets []models.DeliveryTicket, cfg *season.Config) models.ContractPartitions
}

// BalanceCalculator defines the interface for the stock-vs-contract
// reconciliation view.
type BalanceCalculator interface {
	Calculate(tickets []models.DeliveryTicket, cfg *season.Config) SaldoDashboard
}
