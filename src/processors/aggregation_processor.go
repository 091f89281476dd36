// backend/src/processors/aggregation_processor.go
package processors

import (
	"sort"

	"github.com/username/safrapanel/backend/src/models"
	"github.com/username/safrapanel/backend/src/season"
	"github.com/username/safrapanel/backend/src/utils"
)

type AggregationProcessor struct{}

func NewAggregationProcessor() *AggregationProcessor { return &AggregationProcessor{} }

// Calculate produces the headline KPI cards over the filtered ticket subset.
// The reference area is the filtered farm's planted area when a farm filter
// is active, otherwise the season's total area.
//
// consolidatedNetSacks is the season-total record captured from a closed
// season's export; when present and no filter is active it replaces the
// summed net figures, because that record is not filterable per ticket.
func (p *AggregationProcessor) Calculate(tickets []models.DeliveryTicket, cfg *season.Config, filter DashboardFilter, consolidatedNetSacks float64) models.KpiStats {
	var netKg, grossKg, netSacks, grossSacks, discountKg float64
	for _, t := range tickets {
		netKg += t.NetWeightKg
		grossKg += t.GrossWeightKg
		netSacks += t.NetSacks
		grossSacks += t.GrossSacks
		discountKg += t.MoistureKg + t.ImpurityKg + t.BurntKg +
			t.DamagedKg + t.BrokenKg + t.ForeignMatterKg
	}

	if cfg.IsPast() && consolidatedNetSacks > 0 && filter.Farm == "" && filter.Warehouse == "" {
		netSacks = consolidatedNetSacks
		netKg = consolidatedNetSacks * models.KgPerSack
	}

	area := cfg.TotalAreaHectares()
	if filter.Farm != "" {
		area = cfg.FarmAreas[filter.Farm]
	}

	stats := models.KpiStats{
		TotalNetSacks:   utils.Round2(netSacks),
		TotalNetKg:      utils.Round2(netKg),
		TotalGrossSacks: utils.Round2(grossSacks),
		TotalGrossKg:    utils.Round2(grossKg),
		AreaHectares:    area,
		NetPerHectare:   "0.00",
		GrossPerHectare: "0.00",
		QualityPercent:  "0.00",
	}
	if area > 0 {
		stats.NetPerHectare = utils.FormatFixed(netSacks/area, 2)
		stats.GrossPerHectare = utils.FormatFixed(grossSacks/area, 2)
	}
	// Blended quality: every discount kind taken together, in sacks, as a
	// share of the gross sacks weighed in.
	if grossSacks > 0 {
		stats.QualityPercent = utils.FormatFixed(discountKg/models.KgPerSack/grossSacks*100, 2)
	}
	return stats
}

// Discounts decomposes the gross-to-net shrinkage of the filtered subset
// into the six discount kinds tracked on the tickets.
func (p *AggregationProcessor) Discounts(tickets []models.DeliveryTicket) models.DiscountStats {
	var d models.DiscountStats
	var grossSacks float64
	for _, t := range tickets {
		d.MoistureKg += t.MoistureKg
		d.ImpurityKg += t.ImpurityKg
		d.BurntKg += t.BurntKg
		d.DamagedKg += t.DamagedKg
		d.BrokenKg += t.BrokenKg
		d.ForeignKg += t.ForeignMatterKg
		grossSacks += t.GrossSacks
	}
	d.TotalKg = d.MoistureKg + d.ImpurityKg + d.BurntKg + d.DamagedKg + d.BrokenKg + d.ForeignKg

	d.MoistureSacks = utils.Round2(d.MoistureKg / models.KgPerSack)
	d.ImpuritySacks = utils.Round2(d.ImpurityKg / models.KgPerSack)
	d.BurntSacks = utils.Round2(d.BurntKg / models.KgPerSack)
	d.DamagedSacks = utils.Round2(d.DamagedKg / models.KgPerSack)
	d.BrokenSacks = utils.Round2(d.BrokenKg / models.KgPerSack)
	d.ForeignSacks = utils.Round2(d.ForeignKg / models.KgPerSack)
	d.TotalSacks = utils.Round2(d.TotalKg / models.KgPerSack)

	d.PercentOfGross = "0.00"
	if grossSacks > 0 {
		d.PercentOfGross = utils.FormatFixed(d.TotalKg/models.KgPerSack/grossSacks*100, 2)
	}

	d.MoistureKg = utils.Round2(d.MoistureKg)
	d.ImpurityKg = utils.Round2(d.ImpurityKg)
	d.BurntKg = utils.Round2(d.BurntKg)
	d.DamagedKg = utils.Round2(d.DamagedKg)
	d.BrokenKg = utils.Round2(d.BrokenKg)
	d.ForeignKg = utils.Round2(d.ForeignKg)
	d.TotalKg = utils.Round2(d.TotalKg)
	return d
}

// Volume computes per-ticket and per-day averages, the best delivery day,
// and the two progress estimates (harvested vs expected yield, delivered vs
// committed volume). Days are counted as distinct ticket dates; undated
// tickets contribute volume but no day.
func (p *AggregationProcessor) Volume(tickets []models.DeliveryTicket, cfg *season.Config, filter DashboardFilter) models.VolumeStats {
	var stats models.VolumeStats
	stats.BestDayDate = "-"
	stats.HarvestPercent = "0.0"
	stats.TargetPercent = "0.0"
	if len(tickets) == 0 {
		return stats
	}

	var netKg, netSacks float64
	dayKg := make(map[string]float64)
	daySacks := make(map[string]float64)
	for _, t := range tickets {
		netKg += t.NetWeightKg
		netSacks += t.NetSacks
		if t.Date != nil {
			dayKg[*t.Date] += t.NetWeightKg
			daySacks[*t.Date] += t.NetSacks
		}
	}

	count := float64(len(tickets))
	stats.AvgTicketKg = utils.Round2(netKg / count)
	stats.AvgTicketSacks = utils.Round2(netSacks / count)

	days := float64(len(dayKg))
	if days < 1 {
		days = 1
	}
	stats.AvgDayKg = utils.Round2(netKg / days)
	stats.AvgDaySacks = utils.Round2(netSacks / days)

	bestDate := ""
	for date, kg := range dayKg {
		if kg > stats.BestDayKg || (kg == stats.BestDayKg && (bestDate == "" || date < bestDate)) {
			stats.BestDayKg = kg
			bestDate = date
		}
	}
	if bestDate != "" {
		stats.BestDayKg = utils.Round2(stats.BestDayKg)
		stats.BestDaySacks = utils.Round2(daySacks[bestDate])
		stats.BestDayDate = utils.FormatBRDate(bestDate)
	}

	area := cfg.TotalAreaHectares()
	if filter.Farm != "" {
		area = cfg.FarmAreas[filter.Farm]
	}
	if expected := area * cfg.YieldPerHectare; expected > 0 {
		stats.HarvestPercent = utils.FormatFixed(netSacks/expected*100, 1)
	}
	if committed := cfg.TotalCommittedSacks(); committed > 0 {
		stats.TargetPercent = utils.FormatFixed(netSacks/committed*100, 1)
	}
	return stats
}

// FarmChart returns delivered net sacks per farm. The axis is built from the
// full season dataset so every farm keeps its bar (possibly zero-valued)
// when the warehouse filter narrows the data; only the warehouse dimension
// of the filter applies to the values.
func (p *AggregationProcessor) FarmChart(tickets []models.DeliveryTicket, filter DashboardFilter) []models.ChartPoint {
	return p.chart(tickets,
		func(t models.DeliveryTicket) string { return t.Farm },
		DashboardFilter{Warehouse: filter.Warehouse})
}

// WarehouseChart is the symmetric series: net sacks per warehouse, with only
// the farm dimension of the filter applied to the values.
func (p *AggregationProcessor) WarehouseChart(tickets []models.DeliveryTicket, filter DashboardFilter) []models.ChartPoint {
	return p.chart(tickets,
		func(t models.DeliveryTicket) string { return t.Warehouse },
		DashboardFilter{Farm: filter.Farm})
}

func (p *AggregationProcessor) chart(tickets []models.DeliveryTicket, axis func(models.DeliveryTicket) string, valueFilter DashboardFilter) []models.ChartPoint {
	// Axis names come from the unfiltered set; values from the filtered one.
	sums := make(map[string]float64)
	for _, t := range tickets {
		if name := axis(t); name != "" {
			sums[name] = 0
		}
	}
	for _, t := range FilterTickets(tickets, valueFilter) {
		if name := axis(t); name != "" {
			sums[name] += t.NetSacks
		}
	}

	points := make([]models.ChartPoint, 0, len(sums))
	for name, sacks := range sums {
		points = append(points, models.ChartPoint{Name: name, Sacks: utils.Round2(sacks)})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Sacks != points[j].Sacks {
			return points[i].Sacks > points[j].Sacks
		}
		return points[i].Name < points[j].Name
	})
	return points
}
