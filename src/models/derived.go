// backend/src/models/derived.go
package models

// KpiStats is the headline bundle for the dashboard, computed over the
// filtered ticket subset. Productivity and quality fields are pre-formatted
// strings ("0.00" when the denominator is zero) so the presentation layer
// never has to guard a division itself.
type KpiStats struct {
	TotalNetSacks   float64 `json:"totalLiq"`
	TotalNetKg      float64 `json:"totalLiqKg"`
	TotalGrossSacks float64 `json:"totalBruta"`
	TotalGrossKg    float64 `json:"totalBrutaKg"`
	AreaHectares    float64 `json:"areaHa"`
	NetPerHectare   string  `json:"prodLiq"`
	GrossPerHectare string  `json:"prodBruta"`
	QualityPercent  string  `json:"qualidade"`
}

// DiscountStats decomposes gross-to-net shrinkage into the six discount
// kinds, each reported in kg and in 60 kg sacks.
type DiscountStats struct {
	MoistureKg     float64 `json:"umidadeKg"`
	MoistureSacks  float64 `json:"umidadeSc"`
	ImpurityKg     float64 `json:"impurezaKg"`
	ImpuritySacks  float64 `json:"impurezaSc"`
	BurntKg        float64 `json:"ardidoKg"`
	BurntSacks     float64 `json:"ardidoSc"`
	DamagedKg      float64 `json:"avariadosKg"`
	DamagedSacks   float64 `json:"avariadosSc"`
	ForeignKg      float64 `json:"contaminantesKg"`
	ForeignSacks   float64 `json:"contaminantesSc"`
	BrokenKg       float64 `json:"quebradosKg"`
	BrokenSacks    float64 `json:"quebradosSc"`
	TotalKg        float64 `json:"totalDescontosKg"`
	TotalSacks     float64 `json:"totalDescontosSc"`
	PercentOfGross string  `json:"percentualDesconto"`
}

// VolumeStats holds operational-efficiency figures for the filtered subset.
type VolumeStats struct {
	AvgTicketKg    float64 `json:"mediaCargaKg"`
	AvgTicketSacks float64 `json:"mediaCargaSc"`
	AvgDayKg       float64 `json:"mediaDiaKg"`
	AvgDaySacks    float64 `json:"mediaDiaSc"`
	BestDayKg      float64 `json:"melhorDiaKg"`
	BestDaySacks   float64 `json:"melhorDiaSc"`
	BestDayDate    string  `json:"melhorDiaData"`
	HarvestPercent string  `json:"percentualColhido"`
	TargetPercent  string  `json:"metaPercentual"`
}

// ChartPoint is one bar of a chart series (farm or warehouse axis).
type ChartPoint struct {
	Name  string  `json:"name"`
	Sacks float64 `json:"sacas"`
}

// ProcessedContract is a contract matched against delivered volume.
type ProcessedContract struct {
	ID             string  `json:"id"`
	Name           string  `json:"nome"`
	CommittedSacks float64 `json:"contratado"`
	FulfilledSacks float64 `json:"cumprido"`
	RemainingSacks float64 `json:"aCumprir"`
	CompletionPct  string  `json:"porcentagem"`
	IsConcluded    bool    `json:"isConcluido"`
}

// ContractPartitions splits the season's contracts into the two dashboard
// lists, each sorted descending by fulfilled volume.
type ContractPartitions struct {
	Pending   []ProcessedContract `json:"pendentes"`
	Fulfilled []ProcessedContract `json:"cumpridos"`
}

// BalanceType tags a SaldoItem row.
type BalanceType string

const (
	BalanceWarehouse BalanceType = "Armazem"
	BalanceContract  BalanceType = "Contrato"
)

// SaldoItem is one reconciliation row: delivered stock against committed
// volume. Balance >= 0 means surplus, < 0 means deficit.
type SaldoItem struct {
	Name           string      `json:"nome"`
	Type           BalanceType `json:"tipo"`
	DeliveredSacks float64     `json:"estoqueLiquido"`
	CommittedSacks float64     `json:"volumeContratado"`
	Balance        float64     `json:"saldo"`
}

// SaldoKpi is a simple name/total card (warehouse stock, fixed contract).
type SaldoKpi struct {
	ID    string  `json:"id,omitempty"`
	Name  string  `json:"nome"`
	Total float64 `json:"total"`
}
