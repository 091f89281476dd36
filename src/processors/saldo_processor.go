// backend/src/processors/saldo_processor.go
package processors

import (
	"sort"
	"strings"

	"github.com/username/safrapanel/backend/src/models"
	"github.com/username/safrapanel/backend/src/season"
	"github.com/username/safrapanel/backend/src/utils"
)

// SaldoDashboard is the reconciliation view: fixed contracts cleared from
// earmarked warehouses, remaining inventory elsewhere, and the two row-level
// reconciliations (per warehouse, per contract).
type SaldoDashboard struct {
	FixedStockSacks   float64            `json:"estoqueArmazensFixos"`
	FixedVolumeSacks  float64            `json:"volumeContratosFixos"`
	FixedBalance      float64            `json:"saldoContratosFixos"`
	FixedWarehouses   []models.SaldoKpi  `json:"armazensFixos"`
	FixedContracts    []models.SaldoKpi  `json:"contratosFixos"`
	OtherStockSacks   float64            `json:"estoqueOutrosArmazens"`
	OtherWarehouses   []models.SaldoKpi  `json:"armazensOutros"`
	WarehouseBalances []models.SaldoItem `json:"saldoPorArmazem"`
	ContractBalances  []models.SaldoItem `json:"saldoPorContrato"`
}

type SaldoProcessor struct{}

func NewSaldoProcessor() *SaldoProcessor { return &SaldoProcessor{} }

// Calculate runs the stock-vs-contract reconciliation. Closed seasons are
// served from their frozen snapshot; live seasons derive everything from
// the tickets under the season's balance rules.
func (p *SaldoProcessor) Calculate(tickets []models.DeliveryTicket, cfg *season.Config) SaldoDashboard {
	if cfg.Frozen != nil {
		return p.fromSnapshot(cfg)
	}
	return p.fromTickets(tickets, cfg)
}

// fromTickets derives the reconciliation from delivered-stock tickets:
// postings whose type the season counts and whose issuer matches the
// balance rules.
func (p *SaldoProcessor) fromTickets(tickets []models.DeliveryTicket, cfg *season.Config) SaldoDashboard {
	rules := cfg.Balance
	stock := make([]models.DeliveryTicket, 0, len(tickets))
	for _, t := range tickets {
		if t.NetSacks <= 0 || t.Date == nil {
			continue
		}
		if rules.Issuer != "" && t.Issuer != rules.Issuer {
			continue
		}
		if !containsString(rules.CountedPostings, t.PostingType) {
			continue
		}
		stock = append(stock, t)
	}
	stock = sortChronological(stock)

	// Delivered stock per settlement warehouse, and per contract.
	warehouseStock := make(map[string]float64)
	contractStock := make(map[string]float64)
	// First-seen attribution: a contract's full committed volume is charged
	// to the warehouse its first matching ticket settles against. The
	// chronological sort above makes "first" deterministic.
	committedByWarehouse := make(map[string]float64)
	charged := make(map[string]bool)
	for _, t := range stock {
		wh := t.BalanceWarehouse()
		warehouseStock[wh] += t.NetSacks

		id := strings.TrimSpace(t.ContractID)
		if id == "" || id == models.NoContract {
			continue
		}
		contractStock[id] += t.NetSacks
		if vol, tracked := cfg.ContractVolumes[id]; tracked && !charged[id] {
			charged[id] = true
			committedByWarehouse[wh] += vol.TotalSacks
		}
	}

	d := SaldoDashboard{
		FixedWarehouses: []models.SaldoKpi{},
		FixedContracts:  []models.SaldoKpi{},
		OtherWarehouses: []models.SaldoKpi{},
	}

	fixedWh := make(map[string]bool, len(rules.FixedWarehouses))
	for _, w := range rules.FixedWarehouses {
		fixedWh[w] = true
	}
	for _, name := range sortedKeys(warehouseStock) {
		kpi := models.SaldoKpi{Name: name, Total: utils.Round2(warehouseStock[name])}
		if fixedWh[name] {
			d.FixedWarehouses = append(d.FixedWarehouses, kpi)
			d.FixedStockSacks += warehouseStock[name]
		} else {
			d.OtherWarehouses = append(d.OtherWarehouses, kpi)
			d.OtherStockSacks += warehouseStock[name]
		}
	}

	for _, id := range rules.FixedContractIDs {
		vol, ok := cfg.ContractVolumes[id]
		if !ok {
			continue
		}
		d.FixedContracts = append(d.FixedContracts, models.SaldoKpi{
			ID:    id,
			Name:  vol.Name,
			Total: vol.TotalSacks,
		})
		d.FixedVolumeSacks += vol.TotalSacks
	}
	d.FixedStockSacks = utils.Round2(d.FixedStockSacks)
	d.OtherStockSacks = utils.Round2(d.OtherStockSacks)
	d.FixedBalance = utils.Round2(d.FixedStockSacks - d.FixedVolumeSacks)

	d.WarehouseBalances = warehouseRows(warehouseStock, committedByWarehouse)
	d.ContractBalances = contractRows(contractStock, cfg)
	return d
}

// fromSnapshot maps a closed season's hand-entered figures onto the same
// dashboard shape. Snapshot contracts are named after the counterparty
// location they cleared from, which makes the per-warehouse reconciliation
// meaningful; contract rows report zero outstanding balance since the
// season is settled.
func (p *SaldoProcessor) fromSnapshot(cfg *season.Config) SaldoDashboard {
	f := cfg.Frozen
	d := SaldoDashboard{
		FixedWarehouses:   []models.SaldoKpi{},
		FixedContracts:    []models.SaldoKpi{},
		OtherWarehouses:   []models.SaldoKpi{},
		WarehouseBalances: []models.SaldoItem{},
		ContractBalances:  []models.SaldoItem{},
	}

	committedByName := make(map[string]float64)
	for _, c := range f.Contracts {
		committedByName[c.Name] += c.TotalSacks
		d.FixedContracts = append(d.FixedContracts, models.SaldoKpi{ID: c.ID, Name: c.Name, Total: c.TotalSacks})
		d.ContractBalances = append(d.ContractBalances, models.SaldoItem{
			Name:           c.Name,
			Type:           models.BalanceContract,
			DeliveredSacks: c.TotalSacks,
			CommittedSacks: c.TotalSacks,
			Balance:        0,
		})
	}
	for _, w := range f.Warehouses {
		d.FixedWarehouses = append(d.FixedWarehouses, models.SaldoKpi{Name: w.Name, Total: w.StockSacks})
		d.WarehouseBalances = append(d.WarehouseBalances, models.SaldoItem{
			Name:           w.Name,
			Type:           models.BalanceWarehouse,
			DeliveredSacks: w.StockSacks,
			CommittedSacks: committedByName[w.Name],
			Balance:        utils.Round2(w.StockSacks - committedByName[w.Name]),
		})
	}

	d.FixedStockSacks = utils.Round2(f.StockTotal())
	d.FixedVolumeSacks = utils.Round2(f.ContractTotal())
	d.FixedBalance = utils.Round2(d.FixedStockSacks - d.FixedVolumeSacks)
	return d
}

func warehouseRows(stock, committed map[string]float64) []models.SaldoItem {
	names := make(map[string]bool, len(stock))
	for n := range stock {
		names[n] = true
	}
	for n := range committed {
		names[n] = true
	}
	rows := make([]models.SaldoItem, 0, len(names))
	for _, name := range sortedKeys(names) {
		rows = append(rows, models.SaldoItem{
			Name:           name,
			Type:           models.BalanceWarehouse,
			DeliveredSacks: utils.Round2(stock[name]),
			CommittedSacks: utils.Round2(committed[name]),
			Balance:        utils.Round2(stock[name] - committed[name]),
		})
	}
	return rows
}

func contractRows(delivered map[string]float64, cfg *season.Config) []models.SaldoItem {
	names := make(map[string]bool, len(delivered))
	for id := range delivered {
		names[id] = true
	}
	for id := range cfg.ContractVolumes {
		names[id] = true
	}
	rows := make([]models.SaldoItem, 0, len(names))
	for _, id := range sortedKeys(names) {
		committed := cfg.ContractVolumes[id].TotalSacks
		rows = append(rows, models.SaldoItem{
			Name:           id,
			Type:           models.BalanceContract,
			DeliveredSacks: utils.Round2(delivered[id]),
			CommittedSacks: committed,
			Balance:        utils.Round2(delivered[id] - committed),
		})
	}
	return rows
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
