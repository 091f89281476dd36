package processors_test

import (
	"reflect"
	"testing"

	"github.com/username/safrapanel/backend/src/models"
	"github.com/username/safrapanel/backend/src/processors"
	"github.com/username/safrapanel/backend/src/season"
)

func strPtr(s string) *string { return &s }

func aggregationSeason() *season.Config {
	return &season.Config{
		ID:     "test",
		Status: season.StatusCurrent,
		FarmAreas: map[string]float64{
			"São Luiz":  100,
			"Castanhal": 100,
		},
		ContractVolumes: map[string]season.ContractVolume{
			"C1": {Name: "Venda Teste", TotalSacks: 2000},
		},
		YieldPerHectare: 60,
	}
}

func aggregationTickets() []models.DeliveryTicket {
	return []models.DeliveryTicket{
		{
			Date:          strPtr("2025-10-01"),
			Farm:          "São Luiz",
			Warehouse:     "COFCO NSH",
			NetWeightKg:   36000,
			GrossWeightKg: 37200,
			NetSacks:      600,
			GrossSacks:    620,
			MoistureKg:    600,
			ImpurityKg:    300,
			BurntKg:       100,
			DamagedKg:     100,
			BrokenKg:      100,
		},
		{
			Date:          strPtr("2025-10-02"),
			Farm:          "Castanhal",
			Warehouse:     "AMAGGI MATUPÁ",
			NetWeightKg:   30000,
			GrossWeightKg: 30600,
			NetSacks:      500,
			GrossSacks:    510,
			MoistureKg:    600,
		},
	}
}

func TestAggregation_Kpis(t *testing.T) {
	p := processors.NewAggregationProcessor()
	cfg := aggregationSeason()
	tickets := aggregationTickets()

	got := p.Calculate(tickets, cfg, processors.DashboardFilter{}, 0)
	if got.TotalNetSacks != 1100 || got.TotalGrossSacks != 1130 {
		t.Errorf("sack totals = %v/%v, want 1100/1130", got.TotalNetSacks, got.TotalGrossSacks)
	}
	if got.TotalNetKg != 66000 || got.TotalGrossKg != 67800 {
		t.Errorf("kg totals = %v/%v, want 66000/67800", got.TotalNetKg, got.TotalGrossKg)
	}
	if got.AreaHectares != 200 {
		t.Errorf("area = %v, want 200", got.AreaHectares)
	}
	if got.NetPerHectare != "5.50" {
		t.Errorf("net/ha = %q, want 5.50", got.NetPerHectare)
	}
	if got.QualityPercent != "2.65" {
		t.Errorf("quality = %q, want 2.65 (30 discount sacks of 1130 gross)", got.QualityPercent)
	}
}

func TestAggregation_QualityIsDiscountShareOfGrossSacks(t *testing.T) {
	p := processors.NewAggregationProcessor()
	tickets := []models.DeliveryTicket{
		{
			Date:          strPtr("2025-10-01"),
			NetWeightKg:   5400,
			GrossWeightKg: 6000,
			NetSacks:      90,
			GrossSacks:    100,
			MoistureKg:    400,
			ImpurityKg:    200,
		},
	}

	got := p.Calculate(tickets, aggregationSeason(), processors.DashboardFilter{}, 0)
	// 600 kg of discounts is 10 sacks over 100 gross sacks, not the 90.00
	// net-over-gross complement.
	if got.QualityPercent != "10.00" {
		t.Errorf("quality = %q, want 10.00", got.QualityPercent)
	}
}

func TestAggregation_KpisFarmFilterNarrowsArea(t *testing.T) {
	p := processors.NewAggregationProcessor()
	cfg := aggregationSeason()
	filter := processors.DashboardFilter{Farm: "São Luiz"}
	filtered := processors.FilterTickets(aggregationTickets(), filter)

	got := p.Calculate(filtered, cfg, filter, 0)
	if got.AreaHectares != 100 {
		t.Errorf("area = %v, want the filtered farm's 100", got.AreaHectares)
	}
	if got.NetPerHectare != "6.00" {
		t.Errorf("net/ha = %q, want 6.00", got.NetPerHectare)
	}
}

func TestAggregation_KpisEmptyDataset(t *testing.T) {
	p := processors.NewAggregationProcessor()
	cfg := aggregationSeason()

	got := p.Calculate(nil, cfg, processors.DashboardFilter{Farm: "Inexistente"}, 0)
	if got.TotalNetSacks != 0 || got.TotalNetKg != 0 {
		t.Errorf("totals = %v/%v, want zeros", got.TotalNetSacks, got.TotalNetKg)
	}
	if got.NetPerHectare != "0.00" || got.QualityPercent != "0.00" {
		t.Errorf("formatted fields = %q/%q, want 0.00 guards", got.NetPerHectare, got.QualityPercent)
	}
}

func TestAggregation_ClosedSeasonUsesConsolidatedTotal(t *testing.T) {
	p := processors.NewAggregationProcessor()
	cfg := aggregationSeason()
	cfg.Status = season.StatusPast
	tickets := aggregationTickets()

	got := p.Calculate(tickets, cfg, processors.DashboardFilter{}, 150000)
	if got.TotalNetSacks != 150000 || got.TotalNetKg != 9000000 {
		t.Errorf("net totals = %v sc / %v kg, want the consolidated 150000/9000000",
			got.TotalNetSacks, got.TotalNetKg)
	}
	// Gross is still summed from the tickets: the consolidated record only
	// carries a net figure.
	if got.TotalGrossSacks != 1130 {
		t.Errorf("gross sacks = %v, want 1130 from the tickets", got.TotalGrossSacks)
	}

	// With a filter active the consolidated total does not apply.
	filter := processors.DashboardFilter{Farm: "São Luiz"}
	filtered := processors.FilterTickets(tickets, filter)
	got = p.Calculate(filtered, cfg, filter, 150000)
	if got.TotalNetSacks != 600 {
		t.Errorf("filtered net sacks = %v, want the summed 600", got.TotalNetSacks)
	}

	// Open seasons never use it.
	cfg.Status = season.StatusCurrent
	got = p.Calculate(tickets, cfg, processors.DashboardFilter{}, 150000)
	if got.TotalNetSacks != 1100 {
		t.Errorf("current-season net sacks = %v, want the summed 1100", got.TotalNetSacks)
	}
}

func TestAggregation_DiscountsDecomposeShrinkage(t *testing.T) {
	p := processors.NewAggregationProcessor()
	tickets := aggregationTickets()

	got := p.Discounts(tickets)
	if got.MoistureKg != 1200 || got.ImpurityKg != 300 {
		t.Errorf("moisture/impurity = %v/%v, want 1200/300", got.MoistureKg, got.ImpurityKg)
	}
	if got.TotalKg != 1800 {
		t.Errorf("total discounts = %v kg, want 1800", got.TotalKg)
	}
	// The six kinds must account exactly for gross minus net.
	sum := got.MoistureKg + got.ImpurityKg + got.BurntKg + got.DamagedKg + got.BrokenKg + got.ForeignKg
	if sum != got.TotalKg {
		t.Errorf("kind sum %v != total %v", sum, got.TotalKg)
	}
	if got.TotalSacks != 30 {
		t.Errorf("total discounts = %v sacks, want 30", got.TotalSacks)
	}
	if got.PercentOfGross != "2.65" {
		t.Errorf("percent of gross = %q, want 2.65 (30 discount sacks of 1130 gross)", got.PercentOfGross)
	}
}

func TestAggregation_DiscountPercentUsesGrossSacks(t *testing.T) {
	p := processors.NewAggregationProcessor()
	tickets := []models.DeliveryTicket{
		{
			Date:          strPtr("2025-10-01"),
			NetWeightKg:   4800,
			GrossWeightKg: 6000,
			NetSacks:      80,
			GrossSacks:    90,
			MoistureKg:    600,
		},
	}

	got := p.Discounts(tickets)
	// 10 discount sacks over 90 gross sacks; the gross-kg base would give
	// 10.00 here and is the wrong denominator.
	if got.PercentOfGross != "11.11" {
		t.Errorf("percent of gross = %q, want 11.11", got.PercentOfGross)
	}
}

func TestAggregation_Volume(t *testing.T) {
	p := processors.NewAggregationProcessor()
	cfg := aggregationSeason()

	got := p.Volume(aggregationTickets(), cfg, processors.DashboardFilter{})
	if got.AvgTicketKg != 33000 || got.AvgTicketSacks != 550 {
		t.Errorf("avg ticket = %v kg / %v sc, want 33000/550", got.AvgTicketKg, got.AvgTicketSacks)
	}
	if got.AvgDayKg != 33000 {
		t.Errorf("avg day = %v kg, want 33000 over 2 distinct days", got.AvgDayKg)
	}
	if got.BestDayKg != 36000 || got.BestDaySacks != 600 {
		t.Errorf("best day = %v kg / %v sc, want 36000/600", got.BestDayKg, got.BestDaySacks)
	}
	if got.BestDayDate != "01/10/2025" {
		t.Errorf("best day date = %q, want 01/10/2025", got.BestDayDate)
	}
	if got.HarvestPercent != "9.2" {
		t.Errorf("harvest percent = %q, want 9.2 (1100 of 12000 expected)", got.HarvestPercent)
	}
	if got.TargetPercent != "55.0" {
		t.Errorf("target percent = %q, want 55.0 (1100 of 2000 committed)", got.TargetPercent)
	}
}

func TestAggregation_VolumeEmptyDataset(t *testing.T) {
	p := processors.NewAggregationProcessor()
	got := p.Volume(nil, aggregationSeason(), processors.DashboardFilter{})
	if got.AvgTicketKg != 0 || got.BestDayDate != "-" {
		t.Errorf("empty volume = %+v, want zeros with '-' date", got)
	}
	if got.HarvestPercent != "0.0" || got.TargetPercent != "0.0" {
		t.Errorf("percents = %q/%q, want 0.0 guards", got.HarvestPercent, got.TargetPercent)
	}
}

func TestAggregation_ChartsKeepAxisUnderFilter(t *testing.T) {
	p := processors.NewAggregationProcessor()
	tickets := aggregationTickets()

	// Warehouse filter narrows the values but every farm keeps its bar.
	got := p.FarmChart(tickets, processors.DashboardFilter{Warehouse: "COFCO NSH"})
	if len(got) != 2 {
		t.Fatalf("farm chart has %d bars, want 2", len(got))
	}
	if got[0].Name != "São Luiz" || got[0].Sacks != 600 {
		t.Errorf("first bar = %+v, want São Luiz/600", got[0])
	}
	if got[1].Name != "Castanhal" || got[1].Sacks != 0 {
		t.Errorf("second bar = %+v, want Castanhal kept at 0", got[1])
	}
}

func TestAggregation_ChartSumsMatchTotals(t *testing.T) {
	p := processors.NewAggregationProcessor()
	tickets := aggregationTickets()

	var sum float64
	for _, pt := range p.WarehouseChart(tickets, processors.DashboardFilter{}) {
		sum += pt.Sacks
	}
	if sum != 1100 {
		t.Errorf("warehouse chart sums to %v, want the 1100 net sacks total", sum)
	}
}

func TestAggregation_RecomputeIsIdentical(t *testing.T) {
	p := processors.NewAggregationProcessor()
	cfg := aggregationSeason()
	filter := processors.DashboardFilter{Warehouse: "COFCO NSH"}
	filtered := processors.FilterTickets(aggregationTickets(), filter)

	// Aggregating the same subset twice must yield bit-identical results.
	if first, second := p.Calculate(filtered, cfg, filter, 0), p.Calculate(filtered, cfg, filter, 0); !reflect.DeepEqual(first, second) {
		t.Errorf("kpis differ across runs: %+v vs %+v", first, second)
	}
	if first, second := p.Discounts(filtered), p.Discounts(filtered); !reflect.DeepEqual(first, second) {
		t.Errorf("discounts differ across runs: %+v vs %+v", first, second)
	}
	if first, second := p.Volume(filtered, cfg, filter), p.Volume(filtered, cfg, filter); !reflect.DeepEqual(first, second) {
		t.Errorf("volume differs across runs: %+v vs %+v", first, second)
	}
	if first, second := p.FarmChart(filtered, filter), p.FarmChart(filtered, filter); !reflect.DeepEqual(first, second) {
		t.Errorf("farm chart differs across runs: %+v vs %+v", first, second)
	}
}
