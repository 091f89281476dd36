// backend/src/season/season.go
package season

// Status describes where a season sits in its lifecycle. Past seasons are
// historically closed: contracts are considered settled and balances come
// from a frozen snapshot instead of live ticket derivation.
type Status string

const (
	StatusCurrent Status = "Atual"
	StatusPast    Status = "Passada"
	StatusFuture  Status = "Futura"
)

// ContractVolume is a committed sale/barter volume for one contract id.
// TotalSacks == 0 marks an open-ended posting bucket (warehouse deposit or
// to-be-priced sale) rather than a fixed obligation.
type ContractVolume struct {
	Name       string  `json:"nome"`
	TotalSacks float64 `json:"total"`
}

// FreightPrice is one row of the season's reference price table.
type FreightPrice struct {
	Location     string  `json:"local"`
	PricePerSack float64 `json:"preco"`
}

// BalanceRules are the season-specific knobs of the reconciliation engine.
// They are configuration, not code: a new season's rules are additive data.
type BalanceRules struct {
	// Issuer whose tickets count as delivered stock.
	Issuer string
	// Posting types counted as stock (DEP always, VEN-FIXAR per season).
	CountedPostings []string
	// Contracts that must be cleared from specific physical storage,
	// reconciled separately from general inventory.
	FixedContractIDs []string
	// Warehouses earmarked for the fixed contracts above.
	FixedWarehouses []string
}

// FrozenContract is a hand-entered contract total in a closed season's
// snapshot.
type FrozenContract struct {
	ID         string  `json:"id"`
	Name       string  `json:"nome"`
	TotalSacks float64 `json:"total"`
}

// FrozenStock is a hand-entered final warehouse stock figure.
type FrozenStock struct {
	Name       string  `json:"nome"`
	StockSacks float64 `json:"estoqueLiquido"`
}

// FrozenBalance is the final inventory/contract snapshot of a closed season.
// When present it replaces the live ticket-derived reconciliation entirely.
type FrozenBalance struct {
	Warehouses []FrozenStock
	Contracts  []FrozenContract
}

// StockTotal sums the snapshot's warehouse stock.
func (f *FrozenBalance) StockTotal() float64 {
	var sum float64
	for _, w := range f.Warehouses {
		sum += w.StockSacks
	}
	return sum
}

// ContractTotal sums the snapshot's committed volumes.
func (f *FrozenBalance) ContractTotal() float64 {
	var sum float64
	for _, c := range f.Contracts {
		sum += c.TotalSacks
	}
	return sum
}

// Config is the static metadata of one harvest season.
type Config struct {
	ID     string `json:"id"`
	Name   string `json:"nome"`
	Crop   string `json:"tipo"`
	Status Status `json:"status"`

	// Planted area per farm, in hectares.
	FarmAreas map[string]float64 `json:"-"`
	// Committed volume per contract id.
	ContractVolumes map[string]ContractVolume `json:"-"`
	// Reference freight prices by destination.
	FreightTable []FreightPrice `json:"-"`

	// Expected yield in sacks/hectare, used for the harvest-progress
	// estimate only.
	YieldPerHectare float64 `json:"-"`

	// Whether the season tracks cash advances / fuel purchases. Seasons
	// without these datasets settle freight with zero deductions.
	HasAdvances bool `json:"-"`
	HasFuel     bool `json:"-"`

	Balance BalanceRules   `json:"-"`
	Frozen  *FrozenBalance `json:"-"`
}

// IsPast reports whether the season is historically closed.
func (c *Config) IsPast() bool { return c.Status == StatusPast }

// TotalCommittedSacks sums every contract's committed volume.
func (c *Config) TotalCommittedSacks() float64 {
	var sum float64
	for _, v := range c.ContractVolumes {
		sum += v.TotalSacks
	}
	return sum
}

// TotalAreaHectares sums all farm areas.
func (c *Config) TotalAreaHectares() float64 {
	var sum float64
	for _, a := range c.FarmAreas {
		sum += a
	}
	return sum
}

// DefaultSeasonID is the season served when an unknown id is requested.
const DefaultSeasonID = "soja2526"

var soja2526 = &Config{
	ID:     "soja2526",
	Name:   "Soja 25/26",
	Crop:   "Soja",
	Status: StatusCurrent,
	FarmAreas: map[string]float64{
		"São Luiz":   675,
		"Castanhal":  600,
		"Romancini":  435,
		"Estrelinha": 240,
	},
	ContractVolumes: map[string]ContractVolume{
		"72208":           {Name: "Venda Sipal 20 Mil Sacas", TotalSacks: 20000},
		"7.650SC":         {Name: "BEDIN", TotalSacks: 7650},
		"290925M339":      {Name: "Troca Adubo Sipal 29.500 Sacas", TotalSacks: 29500},
		"ARR-CST-USIMAT":  {Name: "Arrendamento CT", TotalSacks: 10000},
		"ARR-SLZ-COFCO":   {Name: "Arrendamento SL", TotalSacks: 4050},
		"Comissoes":       {Name: "Venda 800 Sacas Comissão", TotalSacks: 800},
		"DEP-MAT-AMAGGI":  {Name: "Depósito Amaggi Matupá", TotalSacks: 0},
		"DEP-LRV-SIPAL":   {Name: "Depósito Sipal LRV", TotalSacks: 0},
		"DEP-CLA-SIPAL":   {Name: "Depósito Sipal Cláudia", TotalSacks: 0},
		"VENDA-ADM-FIXAR": {Name: "Venda ADM a Fixar", TotalSacks: 0},
	},
	FreightTable: []FreightPrice{
		{Location: "MATUPÁ", PricePerSack: 1.80},
		{Location: "SINOP", PricePerSack: 2.00},
		{Location: "CLÁUDIA", PricePerSack: 1.50},
		{Location: "LUCAS DO RIO VERDE", PricePerSack: 2.50},
		{Location: "SANTA HELENA", PricePerSack: 3.00},
	},
	YieldPerHectare: 65,
	HasAdvances:     true,
	HasFuel:         true,
	Balance: BalanceRules{
		Issuer:           "Ildo Romancini",
		CountedPostings:  []string{"DEP", "VEN-FIXAR"},
		FixedContractIDs: []string{"72208", "290925M339"},
		FixedWarehouses:  []string{"COFCO NSH", "SIPAL MATUPÁ"},
	},
}

var soja2425 = &Config{
	ID:     "soja2425",
	Name:   "Soja 24/25",
	Crop:   "Soja",
	Status: StatusPast,
	FarmAreas: map[string]float64{
		"São Luiz":   700,
		"Castanhal":  600,
		"Romancini":  435,
		"Estrelinha": 225,
	},
	ContractVolumes: map[string]ContractVolume{
		"9058-8634":         {Name: "Barter Amaggi Matupá", TotalSacks: 5754},
		"9058-8633":         {Name: "Barter Amaggi Sinop", TotalSacks: 18000},
		"ARR-PC":            {Name: "Arrend. + Plant. + Insumos (PC)", TotalSacks: 11577},
		"SERV-D":            {Name: "Serviço Dieison", TotalSacks: 1032},
		"290925M51":         {Name: "Venda Sipal M51", TotalSacks: 3000},
		"290925M69":         {Name: "Venda Sipal M69", TotalSacks: 3000},
		"ILDIANA":           {Name: "Venda Amaggi Ildiana", TotalSacks: 3000},
		"20240105500994-1":  {Name: "Venda Amaggi LRV", TotalSacks: 18000},
		"1334P50762S":       {Name: "Venda ADM 20 Mil Sacas", TotalSacks: 20000},
		"51/2025":           {Name: "Venda GO AGRO", TotalSacks: 5916},
		"290925M282":        {Name: "Venda Sipal M282", TotalSacks: 3471},
		"960732":            {Name: "Venda ADM 960732 (Ildo)", TotalSacks: 1000},
		"ILDO-AMAGGI":       {Name: "Venda Amaggi Ildo (Total)", TotalSacks: 19042},
		"960734":            {Name: "Venda ADM 960734 (Ildo)", TotalSacks: 3948},
		"960737":            {Name: "Venda ADM 960737 (Ildiana)", TotalSacks: 393},
		"2025-01-055-01160": {Name: "Venda Amaggi LRV 1160", TotalSacks: 527},
		"COMISSAO-2425":     {Name: "Comissão Funcionários", TotalSacks: 1500},
	},
	YieldPerHectare: 62,
	Balance: BalanceRules{
		Issuer:          "Ildo Romancini",
		CountedPostings: []string{"DEP"},
	},
	Frozen: frozenSoja2425,
}

var milho25 = &Config{
	ID:     "milho25",
	Name:   "Milho 25",
	Crop:   "Milho",
	Status: StatusPast,
	FarmAreas: map[string]float64{
		"São Luiz":   600,
		"Castanhal":  600,
		"Romancini":  435,
		"Estrelinha": 225,
	},
	ContractVolumes: map[string]ContractVolume{
		"290924M180":       {Name: "Barter Sipal LRV M180", TotalSacks: 14297},
		"SEMENTES-KODIAK":  {Name: "Barter Kodiak/Agrofértil", TotalSacks: 5063},
		"SEMENTES-SIPAL":   {Name: "Barter Sipal/Agrofértil (Sementes)", TotalSacks: 2118},
		"INSUMOS-SIPAL":    {Name: "Barter Sipal/Agrofértil (Insumos)", TotalSacks: 380},
		"ARR-INPASA":       {Name: "Arrendamento Inpasa", TotalSacks: 6000},
		"20240106900533-1": {Name: "Barter Amaggi Matupá", TotalSacks: 14460},
		"21960":            {Name: "Venda Inpasa (21960)", TotalSacks: 60000},
		"28614":            {Name: "Venda Inpasa (28614)", TotalSacks: 536},
		"290925M216":       {Name: "Venda Sipal M216", TotalSacks: 10000},
		"1334P50494M":      {Name: "Venda ADM 1334P50494M", TotalSacks: 23522},
		"GRAO-DIRETO-AS":   {Name: "Venda Grão Direto Amaggi Sinop", TotalSacks: 694},
		"GRAO-DIRETO-AM":   {Name: "Venda Grão Direto Amaggi Matupá", TotalSacks: 10050},
		"COOP-LRV":         {Name: "Venda Cooperativa Sipal LRV", TotalSacks: 21173},
		"COOP-SM":          {Name: "Venda Cooperativa Sipal Matupá", TotalSacks: 935},
		"COOP-SC":          {Name: "Venda Cooperativa Sipal Cláudia", TotalSacks: 7308},
		"COMISSAO-M25":     {Name: "Comissão Funcionários", TotalSacks: 1500},
	},
	YieldPerHectare: 110,
	Balance: BalanceRules{
		Issuer:          "Ildo Romancini",
		CountedPostings: []string{"DEP"},
	},
	Frozen: frozenMilho25,
}

var milho26 = &Config{
	ID:     "milho26",
	Name:   "Milho 26",
	Crop:   "Milho",
	Status: StatusFuture,
	FarmAreas: map[string]float64{
		"São Luiz":   675,
		"Castanhal":  600,
		"Romancini":  435,
		"Estrelinha": 240,
	},
	ContractVolumes: map[string]ContractVolume{},
	YieldPerHectare: 110,
	Balance: BalanceRules{
		Issuer:          "Ildo Romancini",
		CountedPostings: []string{"DEP"},
	},
}

// Available lists every configured season, newest first.
var Available = []*Config{milho26, soja2526, milho25, soja2425}

var byID = func() map[string]*Config {
	m := make(map[string]*Config, len(Available))
	for _, c := range Available {
		m[c.ID] = c
	}
	return m
}()

// Get returns the config for seasonID, falling back to the default season
// for unknown ids. Callers never receive nil.
func Get(seasonID string) *Config {
	if c, ok := byID[seasonID]; ok {
		return c
	}
	return byID[DefaultSeasonID]
}

// Known reports whether seasonID maps to a configured season.
func Known(seasonID string) bool {
	_, ok := byID[seasonID]
	return ok
}
