package parsers_test

import (
	"testing"

	"github.com/username/safrapanel/backend/src/parsers"
)

func TestNormalizeTickets(t *testing.T) {
	rows := []parsers.RawRow{
		{
			"Data":          "10/02/2026",
			"ncontrato":     "72208",
			"Emitente":      "Ildo Romancini",
			"Tipo NF":       "DEP",
			"NFe":           float64(1234),
			"Armazem":       "COFCO NSH",
			"Fazenda":       "São Luiz",
			"Motorista":     "joão da silva",
			"Placa":         "abc1234",
			"Peso Liquido":  "36.000",
			"Peso Bruto":    "37.200",
			"Sacas Liquida": "600",
			"Sacas Bruto":   "620",
			"Preço Frete":   "R$ 2,00",
			"Umid":          "600",
		},
		{
			"Data":          "2026-02-11T03:00:00.000Z",
			"ncontrato":     "",
			"Sacas Liquida": float64(500),
			"Peso Liquido":  float64(30000),
		},
		{
			// Junk row: no volume at all.
			"Data":          "12/02/2026",
			"Sacas Liquida": "0",
			"Peso Liquido":  "",
		},
	}

	tickets, consolidated := parsers.NormalizeTickets(rows)
	if len(tickets) != 2 {
		t.Fatalf("kept %d tickets, want 2 (junk row dropped)", len(tickets))
	}
	if consolidated != 0 {
		t.Errorf("consolidated total = %v, want 0 for a file without one", consolidated)
	}

	first := tickets[0]
	if first.Date == nil || *first.Date != "2026-02-10" {
		t.Errorf("date = %v, want 2026-02-10", first.Date)
	}
	if first.NetWeightKg != 36000 || first.FreightPricePerSack != 2.00 {
		t.Errorf("locale numbers = %v / %v, want 36000 / 2", first.NetWeightKg, first.FreightPricePerSack)
	}
	if first.Driver != "JOÃO DA SILVA" || first.Plate != "ABC1234" {
		t.Errorf("driver/plate = %q/%q, want uppercased", first.Driver, first.Plate)
	}
	if first.MoistureKg != 600 {
		t.Errorf("moisture = %v, want 600", first.MoistureKg)
	}

	second := tickets[1]
	if second.Date == nil || *second.Date != "2026-02-11" {
		t.Errorf("timestamped date = %v, want 2026-02-11", second.Date)
	}
	if second.ContractID != "S/C" {
		t.Errorf("empty contract id = %q, want the S/C sentinel", second.ContractID)
	}
	if second.NetSacks != 500 {
		t.Errorf("net sacks via padded header = %v, want 500", second.NetSacks)
	}
}

func TestNormalizeTickets_PaddedHeaders(t *testing.T) {
	// Some exports carry trailing whitespace on every header of the file.
	rows := []parsers.RawRow{
		{
			"Data ":          "10/02/2026",
			"Sacas Liquida ": "450",
			"Peso Liquido ":  "27.000",
		},
	}

	tickets, _ := parsers.NormalizeTickets(rows)
	if len(tickets) != 1 {
		t.Fatalf("kept %d tickets, want 1", len(tickets))
	}
	if tickets[0].NetSacks != 450 || tickets[0].NetWeightKg != 27000 {
		t.Errorf("ticket = %v sc / %v kg, want 450 / 27000", tickets[0].NetSacks, tickets[0].NetWeightKg)
	}
}

func TestNormalizeTickets_ConsolidatedTotalRecord(t *testing.T) {
	// Closed-season exports end with a dateless record carrying the whole
	// season's net total. It must not be kept as a deliverable ticket.
	rows := []parsers.RawRow{
		{
			"Data":          "10/02/2025",
			"Sacas Liquida": "600",
			"Peso Liquido":  "36.000",
		},
		{
			"Data":          nil,
			"Sacas Liquida": float64(150000),
		},
	}

	tickets, consolidated := parsers.NormalizeTickets(rows)
	if len(tickets) != 1 {
		t.Fatalf("kept %d tickets, want 1 (total record captured, not kept)", len(tickets))
	}
	var sum float64
	for _, tk := range tickets {
		sum += tk.NetSacks
	}
	if sum != 600 {
		t.Errorf("net sacks sum = %v, want 600 without the total record", sum)
	}
	if consolidated != 150000 {
		t.Errorf("consolidated total = %v, want 150000", consolidated)
	}
}

func TestNormalizeAdvances(t *testing.T) {
	rows := []parsers.RawRow{
		{"Motorista": "pedro", "DATA": "01/03/2026", "BANCO": "Sicredi", "VALOR": "1.500,00", "SAFRA": "Soja 25/26"},
		{"Motorista": "", "VALOR": "100"},     // no driver
		{"Motorista": "ana", "VALOR": "0"},    // nothing advanced
		{"Motorista": "ana", "VALOR": "-5,0"}, // negative junk
	}

	advances := parsers.NormalizeAdvances(rows)
	if len(advances) != 1 {
		t.Fatalf("kept %d advances, want 1", len(advances))
	}
	a := advances[0]
	if a.Driver != "PEDRO" || a.Amount != 1500 || a.Bank != "Sicredi" {
		t.Errorf("advance = %+v, want PEDRO / 1500 / Sicredi", a)
	}
}

func TestNormalizeFuel(t *testing.T) {
	rows := []parsers.RawRow{
		{"Motorista": "pedro", "DATA": "02/03/2026", "Litros": "250,5", "Preço": "5,89", "TOTAL": "1.475,45"},
		{"Motorista": "pedro", "TOTAL": ""},
	}

	fuel := parsers.NormalizeFuel(rows)
	if len(fuel) != 1 {
		t.Fatalf("kept %d purchases, want 1", len(fuel))
	}
	p := fuel[0]
	if p.Liters != 250.5 || p.UnitPrice != 5.89 || p.Total != 1475.45 {
		t.Errorf("purchase = %+v, want 250.5 / 5.89 / 1475.45", p)
	}
}
