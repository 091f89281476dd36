// backend/src/processors/freight_processor.go
package processors

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/username/safrapanel/backend/src/models"
	"github.com/username/safrapanel/backend/src/season"
)

// RoundingMode selects how gross sacks are billed on a freight row.
type RoundingMode string

const (
	// RoundingFloor truncates gross sacks to whole sacks before pricing,
	// matching how the carriers invoice.
	RoundingFloor RoundingMode = "com"
	// RoundingExact bills gross sacks at two decimals.
	RoundingExact RoundingMode = "sem"
)

// ReportModel selects the freight report layout.
type ReportModel string

const (
	ModelSimple ReportModel = "simples"
	ModelByFarm ReportModel = "fazenda"
)

// Freight sort keys, matching the report column names.
const (
	SortByDate      = "data"
	SortBySacks     = "sacasBruto"
	SortByPlate     = "placa"
	SortByInvoice   = "nfe"
	SortByWarehouse = "armazem"
)

// FreightFilter narrows the freight report. Empty fields match everything.
type FreightFilter struct {
	Driver    string
	Plate     string
	Warehouse string
}

// FreightRow is one priced freight line.
type FreightRow struct {
	Date         *string `json:"data"`
	Invoice      float64 `json:"nfe"`
	Driver       string  `json:"motorista"`
	Plate        string  `json:"placa"`
	Warehouse    string  `json:"armazem"`
	Farm         string  `json:"fazenda"`
	BilledSacks  float64 `json:"sacasCobradas"`
	PricePerSack float64 `json:"precofrete"`
	Fee          float64 `json:"valorFrete"`
}

// FreightTotals is the sacks/value sum of a row set.
type FreightTotals struct {
	Sacks float64 `json:"sacas"`
	Value float64 `json:"valor"`
}

// FarmGroup is a report section grouping rows by origin farm.
type FarmGroup struct {
	Farm     string        `json:"fazenda"`
	Rows     []FreightRow  `json:"linhas"`
	Subtotal FreightTotals `json:"subtotal"`
}

// Settlement is the driver cash reconciliation: freight earned minus
// advances and fuel fronted by the farm.
type Settlement struct {
	FreightTotal float64               `json:"totalFrete"`
	AdvanceTotal float64               `json:"totalAdiantamentos"`
	FuelTotal    float64               `json:"totalAbastecimentos"`
	FuelLiters   float64               `json:"totalLitros"`
	Balance      float64               `json:"saldo"`
	Status       string                `json:"situacao"`
	Advances     []models.CashAdvance  `json:"adiantamentos"`
	Fuel         []models.FuelPurchase `json:"abastecimentos"`
}

// Driver settlement status values.
const (
	SettlementCreditor = "credor"
	SettlementDebtor   = "devedor"
)

// FreightReport is the full freight view for one season and filter.
type FreightReport struct {
	Rows       []FreightRow          `json:"linhas"`
	Groups     []FarmGroup           `json:"grupos,omitempty"`
	Totals     FreightTotals         `json:"totais"`
	Settlement *Settlement           `json:"acerto,omitempty"`
	Drivers    []string              `json:"motoristas"`
	Plates     []string              `json:"placas"`
	Warehouses []string              `json:"armazens"`
	PriceTable []season.FreightPrice `json:"tabelaPrecos"`
}

// FreightQuery bundles everything that shapes a freight report.
type FreightQuery struct {
	Filter   FreightFilter
	Rounding RoundingMode
	Model    ReportModel
	SortKey  string
	SortDesc bool
}

type FreightProcessor struct{}

func NewFreightProcessor() *FreightProcessor { return &FreightProcessor{} }

// unnamedFarm labels rows whose ticket carries no origin farm in the
// grouped report.
const unnamedFarm = "Não Informada"

// Process prices every matching ticket and assembles the freight report.
// Monetary math runs on decimals; only the final row and total figures are
// converted back to floats for the JSON payload.
func (p *FreightProcessor) Process(tickets []models.DeliveryTicket, advances []models.CashAdvance, fuel []models.FuelPurchase, cfg *season.Config, q FreightQuery) FreightReport {
	report := FreightReport{
		Rows:       []FreightRow{},
		PriceTable: cfg.FreightTable,
	}
	report.Drivers, report.Plates, report.Warehouses = filterOptions(tickets)

	matched := make([]models.DeliveryTicket, 0, len(tickets))
	for _, t := range tickets {
		if q.Filter.Driver != "" && t.Driver != q.Filter.Driver {
			continue
		}
		if q.Filter.Plate != "" && t.Plate != q.Filter.Plate {
			continue
		}
		if q.Filter.Warehouse != "" && t.Warehouse != q.Filter.Warehouse {
			continue
		}
		matched = append(matched, t)
	}
	sortFreightTickets(matched, q.SortKey, q.SortDesc)

	totalSacks := decimal.Zero
	totalValue := decimal.Zero
	for _, t := range matched {
		row, sacks, fee := priceTicket(t, q.Rounding)
		report.Rows = append(report.Rows, row)
		totalSacks = totalSacks.Add(sacks)
		totalValue = totalValue.Add(fee)
	}
	report.Totals = FreightTotals{
		Sacks: totalSacks.InexactFloat64(),
		Value: totalValue.Round(2).InexactFloat64(),
	}

	if q.Model == ModelByFarm {
		report.Groups = groupByFarm(report.Rows)
	}

	report.Settlement = p.settle(totalValue, advances, fuel, cfg, q.Filter.Driver)
	return report
}

// priceTicket bills one ticket: gross sacks under the chosen rounding mode
// times the per-ticket freight price.
func priceTicket(t models.DeliveryTicket, mode RoundingMode) (FreightRow, decimal.Decimal, decimal.Decimal) {
	var billed decimal.Decimal
	if mode == RoundingExact {
		billed = decimal.NewFromFloat(t.GrossSacks).Round(2)
	} else {
		billed = decimal.NewFromFloat(math.Floor(t.GrossSacks))
	}
	price := decimal.NewFromFloat(t.FreightPricePerSack)
	fee := billed.Mul(price).Round(2)

	row := FreightRow{
		Date:         t.Date,
		Invoice:      t.InvoiceNumber,
		Driver:       t.Driver,
		Plate:        t.Plate,
		Warehouse:    t.Warehouse,
		Farm:         t.Farm,
		BilledSacks:  billed.InexactFloat64(),
		PricePerSack: t.FreightPricePerSack,
		Fee:          fee.InexactFloat64(),
	}
	return row, billed, fee
}

// settle computes the driver balance. Seasons that do not track advances or
// fuel settle with zero deductions for that component.
func (p *FreightProcessor) settle(freightTotal decimal.Decimal, advances []models.CashAdvance, fuel []models.FuelPurchase, cfg *season.Config, driver string) *Settlement {
	s := &Settlement{
		FreightTotal: freightTotal.Round(2).InexactFloat64(),
		Advances:     []models.CashAdvance{},
		Fuel:         []models.FuelPurchase{},
	}

	advTotal := decimal.Zero
	if cfg.HasAdvances {
		for _, a := range advances {
			if driver != "" && a.Driver != driver {
				continue
			}
			s.Advances = append(s.Advances, a)
			advTotal = advTotal.Add(decimal.NewFromFloat(a.Amount))
		}
	}
	fuelTotal := decimal.Zero
	liters := decimal.Zero
	if cfg.HasFuel {
		for _, f := range fuel {
			if driver != "" && f.Driver != driver {
				continue
			}
			s.Fuel = append(s.Fuel, f)
			fuelTotal = fuelTotal.Add(decimal.NewFromFloat(f.Total))
			liters = liters.Add(decimal.NewFromFloat(f.Liters))
		}
	}

	balance := freightTotal.Sub(advTotal).Sub(fuelTotal).Round(2)
	s.AdvanceTotal = advTotal.Round(2).InexactFloat64()
	s.FuelTotal = fuelTotal.Round(2).InexactFloat64()
	s.FuelLiters = liters.Round(2).InexactFloat64()
	s.Balance = balance.InexactFloat64()
	if balance.IsNegative() {
		s.Status = SettlementDebtor
	} else {
		s.Status = SettlementCreditor
	}
	return s
}

func groupByFarm(rows []FreightRow) []FarmGroup {
	index := make(map[string]*FarmGroup)
	order := []string{}
	for _, row := range rows {
		farm := row.Farm
		if farm == "" {
			farm = unnamedFarm
		}
		g, ok := index[farm]
		if !ok {
			g = &FarmGroup{Farm: farm, Rows: []FreightRow{}}
			index[farm] = g
			order = append(order, farm)
		}
		g.Rows = append(g.Rows, row)
		g.Subtotal.Sacks += row.BilledSacks
		g.Subtotal.Value += row.Fee
	}
	sort.Strings(order)

	groups := make([]FarmGroup, 0, len(order))
	for _, farm := range order {
		g := index[farm]
		g.Subtotal.Value = decimal.NewFromFloat(g.Subtotal.Value).Round(2).InexactFloat64()
		groups = append(groups, *g)
	}
	return groups
}

// sortFreightTickets orders tickets by the requested report column. The sort
// is stable so ties keep the chronological (date, invoice) order applied
// first.
func sortFreightTickets(tickets []models.DeliveryTicket, key string, desc bool) {
	sorted := sortChronological(tickets)
	copy(tickets, sorted)

	var less func(a, b models.DeliveryTicket) bool
	switch key {
	case SortBySacks:
		less = func(a, b models.DeliveryTicket) bool { return a.GrossSacks < b.GrossSacks }
	case SortByPlate:
		less = func(a, b models.DeliveryTicket) bool { return a.Plate < b.Plate }
	case SortByInvoice:
		less = func(a, b models.DeliveryTicket) bool { return a.InvoiceNumber < b.InvoiceNumber }
	case SortByWarehouse:
		less = func(a, b models.DeliveryTicket) bool { return a.Warehouse < b.Warehouse }
	case SortByDate, "":
		// chronological order already applied
		if !desc {
			return
		}
		less = func(a, b models.DeliveryTicket) bool {
			switch {
			case a.Date == nil:
				return false
			case b.Date == nil:
				return true
			}
			return *a.Date < *b.Date
		}
	default:
		return
	}

	sort.SliceStable(tickets, func(i, j int) bool {
		if desc {
			return less(tickets[j], tickets[i])
		}
		return less(tickets[i], tickets[j])
	})
}

// filterOptions lists the distinct drivers, plates and warehouses present in
// the season, for populating the report filter controls.
func filterOptions(tickets []models.DeliveryTicket) (drivers, plates, warehouses []string) {
	d := map[string]bool{}
	p := map[string]bool{}
	w := map[string]bool{}
	for _, t := range tickets {
		if t.Driver != "" {
			d[t.Driver] = true
		}
		if t.Plate != "" {
			p[t.Plate] = true
		}
		if t.Warehouse != "" {
			w[t.Warehouse] = true
		}
	}
	collect := func(m map[string]bool) []string {
		out := make([]string, 0, len(m))
		for k := range m {
			out = append(out, k)
		}
		sort.Strings(out)
		return out
	}
	return collect(d), collect(p), collect(w)
}
