// backend/src/parsers/normalizer.go
package parsers

import (
	"strings"

	"github.com/username/safrapanel/backend/src/logger"
	"github.com/username/safrapanel/backend/src/models"
	"github.com/username/safrapanel/backend/src/security/validation"
	"github.com/username/safrapanel/backend/src/utils"
)

// RawRow is one spreadsheet row as exported: cells keyed by header text.
// Header whitespace is inconsistent across exports ("VALOR", " VALOR ").
type RawRow map[string]any

// fieldIndex maps trimmed header names to the actual keys of a file's rows.
// Resolved once per file so record processing never does trimmed-key lookup.
type fieldIndex map[string]string

func buildFieldIndex(rows []RawRow) fieldIndex {
	idx := make(fieldIndex)
	for _, row := range rows {
		for key := range row {
			trimmed := strings.TrimSpace(key)
			if _, seen := idx[trimmed]; !seen {
				idx[trimmed] = key
			}
		}
	}
	return idx
}

func (idx fieldIndex) cell(row RawRow, name string) any {
	key, ok := idx[name]
	if !ok {
		return nil
	}
	return row[key]
}

func (idx fieldIndex) str(row RawRow, name string) string {
	return validation.SanitizeCell(utils.CleanString(idx.cell(row, name)))
}

func (idx fieldIndex) num(row RawRow, name string) float64 {
	return utils.ParseLocaleNumber(idx.cell(row, name))
}

func (idx fieldIndex) date(row RawRow, name string) *string {
	switch v := idx.cell(row, name).(type) {
	case string:
		return utils.CanonicalDate(v)
	default:
		return nil
	}
}

// NormalizeTickets converts raw delivery-ticket rows into typed records.
// Rows with neither positive net sacks nor positive net weight are dropped
// (headers and other spreadsheet junk).
//
// Closed-season exports end with one dateless record whose net sacks carry
// the consolidated season total. That record is not a delivery and would
// double the season's volume if summed, so it is captured and returned
// separately instead of being kept as a ticket.
func NormalizeTickets(rows []RawRow) ([]models.DeliveryTicket, float64) {
	idx := buildFieldIndex(rows)
	tickets := make([]models.DeliveryTicket, 0, len(rows))
	var consolidatedNetSacks float64
	dropped := 0

	for _, row := range rows {
		t := models.DeliveryTicket{
			Date:                idx.date(row, "Data"),
			Contract:            idx.str(row, "Contrato"),
			ContractID:          idx.str(row, "ncontrato"),
			Issuer:              idx.str(row, "Emitente"),
			PostingType:         idx.str(row, "Tipo NF"),
			InvoiceNumber:       idx.num(row, "NFe"),
			DeliveryCity:        idx.str(row, "Cidade de Entrega"),
			Warehouse:           idx.str(row, "Armazem"),
			SettlementWarehouse: idx.str(row, "armazemsaldo"),
			Season:              idx.str(row, "Safra"),
			Farm:                idx.str(row, "Fazenda"),
			Plot:                idx.str(row, "Talhão"),
			Driver:              strings.ToUpper(idx.str(row, "Motorista")),
			Plate:               strings.ToUpper(idx.str(row, "Placa")),

			NetWeightKg:         idx.num(row, "Peso Liquido"),
			GrossWeightKg:       idx.num(row, "Peso Bruto"),
			NetSacks:            idx.num(row, "Sacas Liquida"),
			GrossSacks:          idx.num(row, "Sacas Bruto"),
			FreightPricePerSack: idx.num(row, "Preço Frete"),

			MoistureKg:      idx.num(row, "Umid"),
			ImpurityKg:      idx.num(row, "Impu"),
			BurntKg:         idx.num(row, "Ardi"),
			DamagedKg:       idx.num(row, "Avari"),
			BrokenKg:        idx.num(row, "Quebr"),
			ForeignMatterKg: idx.num(row, "Contaminantes"),
		}

		if t.Contract == "" {
			t.Contract = models.NoContract
		}
		if t.ContractID == "" {
			t.ContractID = models.NoContract
		}

		if t.Date == nil && t.NetSacks > 0 {
			consolidatedNetSacks = t.NetSacks
			continue
		}
		if t.NetSacks <= 0 && t.NetWeightKg <= 0 {
			dropped++
			continue
		}
		tickets = append(tickets, t)
	}

	if consolidatedNetSacks > 0 {
		logger.L.Debug("Captured consolidated season-total record", "netSacks", consolidatedNetSacks)
	}
	if dropped > 0 {
		logger.L.Debug("Dropped junk ticket rows during normalization", "dropped", dropped, "kept", len(tickets))
	}
	return tickets, consolidatedNetSacks
}

// NormalizeAdvances converts raw cash-advance rows. Rows without a driver or
// a positive amount are dropped.
func NormalizeAdvances(rows []RawRow) []models.CashAdvance {
	idx := buildFieldIndex(rows)
	advances := make([]models.CashAdvance, 0, len(rows))

	for _, row := range rows {
		a := models.CashAdvance{
			Driver: strings.ToUpper(idx.str(row, "Motorista")),
			Date:   idx.date(row, "DATA"),
			Bank:   idx.str(row, "BANCO"),
			Amount: idx.num(row, "VALOR"),
			Season: idx.str(row, "SAFRA"),
		}
		if a.Driver == "" || a.Amount <= 0 {
			continue
		}
		advances = append(advances, a)
	}
	return advances
}

// NormalizeFuel converts raw fuel-purchase rows. Rows without a driver or a
// positive total are dropped.
func NormalizeFuel(rows []RawRow) []models.FuelPurchase {
	idx := buildFieldIndex(rows)
	purchases := make([]models.FuelPurchase, 0, len(rows))

	for _, row := range rows {
		p := models.FuelPurchase{
			Driver:    strings.ToUpper(idx.str(row, "Motorista")),
			Date:      idx.date(row, "DATA"),
			Liters:    idx.num(row, "Litros"),
			UnitPrice: idx.num(row, "Preço"),
			Total:     idx.num(row, "TOTAL"),
			Season:    idx.str(row, "SAFRA"),
		}
		if p.Driver == "" || p.Total <= 0 {
			continue
		}
		purchases = append(purchases, p)
	}
	return purchases
}
