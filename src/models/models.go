// backend/src/models/models.go
package models

// KgPerSack is the fixed conversion constant between kilograms and sacks
// (sacas). Brazilian grain trade settles in 60 kg sacks.
const KgPerSack = 60.0

// NoContract is the sentinel contract id for tickets that carry no contract
// ("sem contrato"). Volume on these tickets is never attributed to a contract.
const NoContract = "S/C"

// Posting types found on delivery tickets. Only deposits and to-be-priced
// sales count toward reconciled stock.
const (
	PostingDeposit   = "DEP"
	PostingSaleToFix = "VEN-FIXAR"
)

// DeliveryTicket is one normalized grain-delivery event (a "romaneio").
// The JSON tags match the column names of the normalized spreadsheet export,
// so the season data files can be decoded directly.
//
// GrossSacks/NetSacks and GrossWeightKg/NetWeightKg are independently sourced
// from the spreadsheet; NetSacks is not derived from NetWeightKg here and the
// two views must never be mixed downstream.
type DeliveryTicket struct {
	Date                *string `json:"data"` // ISO YYYY-MM-DD, or null
	Contract            string  `json:"contrato"`
	ContractID          string  `json:"ncontrato"`
	Issuer              string  `json:"emitente"`
	PostingType         string  `json:"tipoNF"`
	InvoiceNumber       float64 `json:"nfe"`
	DeliveryCity        string  `json:"cidadeEntrega"`
	Warehouse           string  `json:"armazem"`
	SettlementWarehouse string  `json:"armazemsaldo"`
	Season              string  `json:"safra"`
	Farm                string  `json:"fazenda"`
	Plot                string  `json:"talhao"`
	Driver              string  `json:"motorista"`
	Plate               string  `json:"placa"`

	NetWeightKg         float64 `json:"pesoLiquidoKg"`
	GrossWeightKg       float64 `json:"pesoBrutoKg"`
	NetSacks            float64 `json:"sacasLiquida"`
	GrossSacks          float64 `json:"sacasBruto"`
	FreightPricePerSack float64 `json:"precofrete"`

	// Quality discounts decomposing gross weight into net weight, all in kg.
	MoistureKg      float64 `json:"umidade"`
	ImpurityKg      float64 `json:"impureza"`
	BurntKg         float64 `json:"ardido"`
	DamagedKg       float64 `json:"avariados"`
	BrokenKg        float64 `json:"quebrados"`
	ForeignMatterKg float64 `json:"contaminantes"`
}

// BalanceWarehouse returns the warehouse used for contract-obligation
// attribution. Some tickets settle against a different warehouse than the
// one they were physically delivered to.
func (t DeliveryTicket) BalanceWarehouse() string {
	if t.SettlementWarehouse != "" {
		return t.SettlementWarehouse
	}
	return t.Warehouse
}

// CashAdvance is a normalized driver cash advance ("adiantamento").
type CashAdvance struct {
	Driver string  `json:"motorista"`
	Date   *string `json:"data"`
	Bank   string  `json:"banco"`
	Amount float64 `json:"valor"`
	Season string  `json:"safra"`
}

// FuelPurchase is a normalized driver fuel fill-up ("abastecimento").
type FuelPurchase struct {
	Driver    string  `json:"motorista"`
	Date      *string `json:"data"`
	Liters    float64 `json:"litros"`
	UnitPrice float64 `json:"preco"`
	Total     float64 `json:"total"`
	Season    string  `json:"safra"`
}
