// backend/src/season/frozen.go
package season

// Final hand-entered balances for closed seasons. These replace the live
// ticket-derived reconciliation once a season is settled.

var frozenSoja2425 = &FrozenBalance{
	Warehouses: []FrozenStock{
		{Name: "AMAGGI MATUPÁ", StockSacks: 17230},
		{Name: "AMAGGI SINOP", StockSacks: 29011},
		{Name: "AC GRÃOS STA HELENA", StockSacks: 37951},
		{Name: "SIPAL (BUNGE)", StockSacks: 247},
		{Name: "SIPAL LRV", StockSacks: 9225},
		{Name: "AMAGGI LRV", StockSacks: 18527},
		{Name: "SIPAL CLÁUDIA", StockSacks: 528},
		{Name: "GO AGRO ARMAZENS GERAIS LTDA", StockSacks: 5916},
	},
	Contracts: []FrozenContract{
		{ID: "9058-8634", Name: "AMAGGI MATUPÁ", TotalSacks: 5754},
		{ID: "9058-8633", Name: "AMAGGI SINOP", TotalSacks: 18000},
		{ID: "ARR-PC", Name: "ADM STA HELENA (AC GRÃOS)", TotalSacks: 11577},
		{ID: "SERV-D", Name: "ADM STA HELENA (AC GRÃOS)", TotalSacks: 1032},
		{ID: "290925M51", Name: "SIPAL", TotalSacks: 3000},
		{ID: "290925M69", Name: "SIPAL", TotalSacks: 3000},
		{ID: "ILDIANA", Name: "AMAGGI MATUPÁ", TotalSacks: 3000},
		{ID: "20240105500994-1", Name: "AMAGGI LRV", TotalSacks: 18000},
		{ID: "1334P50762S", Name: "ADM STA HELENA (AC GRÃOS)", TotalSacks: 20000},
		{ID: "51/2025", Name: "GO AGRO ARMAZENS GERAIS LTDA", TotalSacks: 5916},
		{ID: "290925M282", Name: "SIPAL", TotalSacks: 3471},
		{ID: "960732", Name: "ADM STA HELENA (AC GRÃOS)", TotalSacks: 1000},
		{ID: "ILDO-AMAGGI", Name: "AMAGGI MATUPÁ", TotalSacks: 5013},
		{ID: "ILDO-AMAGGI", Name: "AMAGGI SINOP", TotalSacks: 10340},
		{ID: "ILDO-AMAGGI", Name: "AMAGGI SINOP", TotalSacks: 671},
		{ID: "960734", Name: "ADM STA HELENA (AC GRÃOS)", TotalSacks: 3948},
		{ID: "960737", Name: "ADM STA HELENA (AC GRÃOS)", TotalSacks: 393},
		{ID: "ILDO-AMAGGI", Name: "AMAGGI MATUPÁ", TotalSacks: 3018},
		{ID: "2025-01-055-01160", Name: "AMAGGI LRV", TotalSacks: 527},
		{ID: "COMISSAO-2425", Name: "FUNCIONÁRIOS", TotalSacks: 1500},
	},
}

var frozenMilho25 = &FrozenBalance{
	Warehouses: []FrozenStock{
		{Name: "SIPAL LRV", StockSacks: 50968},
		{Name: "KODYAK", StockSacks: 5063},
		{Name: "AMAGGI MATUPÁ", StockSacks: 24510},
		{Name: "SIPAL MATUPÁ", StockSacks: 935},
		{Name: "INPASA", StockSacks: 66536},
		{Name: "SIPAL CLÁUDIA", StockSacks: 7308},
		{Name: "AMAGGI SINOP", StockSacks: 694},
		{Name: "AC GRÃOS", StockSacks: 23522},
	},
	Contracts: []FrozenContract{
		{ID: "290924M180", Name: "SIPAL LRV (Romancini - BARTER)", TotalSacks: 14297},
		{ID: "SEMENTES-KODIAK", Name: "KODIAK/ AGROFÉRTIL (BARTER)", TotalSacks: 5063},
		{ID: "SEMENTES-SIPAL", Name: "SIPAL LRV/ AGROFERTIL (BARTER)", TotalSacks: 2118},
		{ID: "INSUMOS-SIPAL", Name: "SIPAL LRV/ AGROFERTIL (BARTER)", TotalSacks: 380},
		{ID: "ARR-INPASA", Name: "INPASA (Castanhal - ARRENDAMENTO)", TotalSacks: 6000},
		{ID: "20240106900533-1", Name: "AMAGGI MATUPÁ (Estrelinha - BARTER)", TotalSacks: 14460},
		{ID: "21960-1", Name: "INPASA - 1º Pagamento (VENDA)", TotalSacks: 27665},
		{ID: "21960-2", Name: "INPASA - 1º Pagamento (VENDA)", TotalSacks: 11073},
		{ID: "21960-3", Name: "INPASA - 2º Pagamento (VENDA)", TotalSacks: 21262},
		{ID: "28614", Name: "INPASA (VENDA)", TotalSacks: 536},
		{ID: "290925M216", Name: "SIPAL LRV (VENDA)", TotalSacks: 10000},
		{ID: "1334P50494M", Name: "ADM DO BRASIL (N.S.H.) (VENDA)", TotalSacks: 23522},
		{ID: "GRAO-DIRETO-AS", Name: "AMAGGI SINOP (Grão Direto)", TotalSacks: 694},
		{ID: "GRAO-DIRETO-AM-1", Name: "AMAGGI MATUPÁ (Grão Direto)", TotalSacks: 6500},
		{ID: "GRAO-DIRETO-AM-2", Name: "AMAGGI MATUPÁ (Grão Direto)", TotalSacks: 1000},
		{ID: "GRAO-DIRETO-AM-3", Name: "AMAGGI MATUPÁ (Grão Direto)", TotalSacks: 2550},
		{ID: "COOP-LRV-1", Name: "SIPAL LRV (Cooperativa)", TotalSacks: 12000},
		{ID: "COOP-SM", Name: "SIPAL MATUPÁ (Cooperativa)", TotalSacks: 935},
		{ID: "COOP-SC", Name: "SIPAL CLÁUDIA (Cooperativa)", TotalSacks: 7308},
		{ID: "COOP-LRV-2", Name: "SIPAL LRV (Cooperativa)", TotalSacks: 9173},
		{ID: "COMISSAO-M25", Name: "FUNCIONÁRIOS (PGTO)", TotalSacks: 1500},
	},
}
