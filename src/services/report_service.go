// backend/src/services/report_service.go
package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/username/safrapanel/backend/src/logger"
	"github.com/username/safrapanel/backend/src/models"
	"github.com/username/safrapanel/backend/src/processors"
	"github.com/username/safrapanel/backend/src/season"
)

const (
	ckDashboard = "rep_dash_%s_f=%s_w=%s"
	ckFreight   = "rep_freight_%s_d=%s_p=%s_w=%s_r=%s_m=%s_s=%s_o=%v"
	ckSaldo     = "rep_saldo_%s"
)

type reportServiceImpl struct {
	datasets    DatasetService
	aggregation processors.KpiCalculator
	contracts   processors.ContractPartitioner
	freight     *processors.FreightProcessor
	saldo       processors.BalanceCalculator
	reportCache *cache.Cache
	cacheTTL    time.Duration
}

func NewReportService(
	datasets DatasetService,
	aggregation processors.KpiCalculator,
	contracts processors.ContractPartitioner,
	freight *processors.FreightProcessor,
	saldo processors.BalanceCalculator,
	reportCache *cache.Cache,
	cacheTTL time.Duration,
) ReportService {
	return &reportServiceImpl{
		datasets:    datasets,
		aggregation: aggregation,
		contracts:   contracts,
		freight:     freight,
		saldo:       saldo,
		reportCache: reportCache,
		cacheTTL:    cacheTTL,
	}
}

func (s *reportServiceImpl) Seasons() []*season.Config {
	return season.Available
}

// Dashboard assembles the KPI/discount/volume/chart/contract payload for one
// season and filter combination. Unknown season ids fall back to the default
// season.
func (s *reportServiceImpl) Dashboard(seasonID string, filter processors.DashboardFilter) (*DashboardReport, error) {
	cfg := season.Get(seasonID)
	key := fmt.Sprintf(ckDashboard, cfg.ID, filter.Farm, filter.Warehouse)
	if cached, found := s.reportCache.Get(key); found {
		return cached.(*DashboardReport), nil
	}
	startTime := time.Now()

	tickets, err := s.datasets.Tickets(cfg.ID)
	if err != nil {
		return nil, err
	}
	consolidated, err := s.datasets.ConsolidatedTotal(cfg.ID)
	if err != nil {
		return nil, err
	}
	filtered := processors.FilterTickets(tickets, filter)

	report := &DashboardReport{
		Season:         cfg,
		Kpis:           s.aggregation.Calculate(filtered, cfg, filter, consolidated),
		Discounts:      s.aggregation.Discounts(filtered),
		Volume:         s.aggregation.Volume(filtered, cfg, filter),
		FarmChart:      s.aggregation.FarmChart(tickets, filter),
		WarehouseChart: s.aggregation.WarehouseChart(tickets, filter),
		Contracts:      s.contracts.Partition(tickets, cfg),
		Farms:          distinct(tickets, func(t models.DeliveryTicket) string { return t.Farm }),
		Warehouses:     distinct(tickets, func(t models.DeliveryTicket) string { return t.Warehouse }),
		TicketCount:    len(filtered),
	}

	s.reportCache.Set(key, report, s.cacheTTL)
	logger.L.Debug("dashboard built", "season", cfg.ID, "farm", filter.Farm,
		"warehouse", filter.Warehouse, "durationMs", time.Since(startTime).Milliseconds())
	return report, nil
}

func (s *reportServiceImpl) Freight(seasonID string, query processors.FreightQuery) (*processors.FreightReport, error) {
	cfg := season.Get(seasonID)
	key := fmt.Sprintf(ckFreight, cfg.ID, query.Filter.Driver, query.Filter.Plate,
		query.Filter.Warehouse, query.Rounding, query.Model, query.SortKey, query.SortDesc)
	if cached, found := s.reportCache.Get(key); found {
		return cached.(*processors.FreightReport), nil
	}

	tickets, err := s.datasets.Tickets(cfg.ID)
	if err != nil {
		return nil, err
	}
	advances, err := s.datasets.Advances(cfg.ID)
	if err != nil {
		return nil, err
	}
	fuel, err := s.datasets.Fuel(cfg.ID)
	if err != nil {
		return nil, err
	}

	report := s.freight.Process(tickets, advances, fuel, cfg, query)
	s.reportCache.Set(key, &report, s.cacheTTL)
	return &report, nil
}

func (s *reportServiceImpl) Saldo(seasonID string) (*processors.SaldoDashboard, error) {
	cfg := season.Get(seasonID)
	key := fmt.Sprintf(ckSaldo, cfg.ID)
	if cached, found := s.reportCache.Get(key); found {
		return cached.(*processors.SaldoDashboard), nil
	}

	tickets, err := s.datasets.Tickets(cfg.ID)
	if err != nil {
		return nil, err
	}
	dashboard := s.saldo.Calculate(tickets, cfg)
	s.reportCache.Set(key, &dashboard, s.cacheTTL)
	return &dashboard, nil
}

// Invalidate drops every cached report of one season. Report keys embed the
// filter state, so the whole cache namespace is scanned.
func (s *reportServiceImpl) Invalidate(seasonID string) {
	prefixes := []string{
		fmt.Sprintf("rep_dash_%s_", seasonID),
		fmt.Sprintf("rep_freight_%s_", seasonID),
		fmt.Sprintf(ckSaldo, seasonID),
	}
	for key := range s.reportCache.Items() {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				s.reportCache.Delete(key)
				break
			}
		}
	}
	logger.L.Debug("report cache invalidated", "season", seasonID)
}

func distinct(tickets []models.DeliveryTicket, pick func(models.DeliveryTicket) string) []string {
	seen := make(map[string]bool)
	for _, t := range tickets {
		if v := pick(t); v != "" {
			seen[v] = true
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
