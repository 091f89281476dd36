package services_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/username/safrapanel/backend/src/processors"
	"github.com/username/safrapanel/backend/src/services"
)

func newTestServices(t *testing.T) (string, services.DatasetService, services.ReportService, services.UploadService) {
	t.Helper()
	dataDir := t.TempDir()
	datasets := services.NewDatasetService(dataDir, cache.New(cache.NoExpiration, 0))
	reports := services.NewReportService(
		datasets,
		processors.NewAggregationProcessor(),
		processors.NewContractProcessor(),
		processors.NewFreightProcessor(),
		processors.NewSaldoProcessor(),
		cache.New(time.Minute, 0),
		time.Minute,
	)
	uploads := services.NewUploadService(dataDir, datasets, reports)
	return dataDir, datasets, reports, uploads
}

const ticketUpload = `[
	{
		"Data": "10/02/2026",
		"ncontrato": "72208",
		"Emitente": "Ildo Romancini",
		"Tipo NF": "DEP",
		"NFe": 101,
		"Armazem": "COFCO NSH",
		"Fazenda": "São Luiz",
		"Motorista": "joão",
		"Placa": "abc1234",
		"Peso Liquido": "36.000",
		"Peso Bruto": "37.200",
		"Sacas Liquida": "600",
		"Sacas Bruto": "620",
		"Preço Frete": "2,00"
	},
	{"Data": "11/02/2026", "Sacas Liquida": "0", "Peso Liquido": ""}
]`

func TestUpload_StoreAndReadBack(t *testing.T) {
	dataDir, datasets, _, uploads := newTestServices(t)

	kept, err := uploads.StoreDataset("soja2526", services.DatasetTickets, strings.NewReader(ticketUpload))
	if err != nil {
		t.Fatalf("StoreDataset: %v", err)
	}
	if kept != 1 {
		t.Fatalf("kept %d rows, want 1 (junk row dropped)", kept)
	}

	// The dataset file is valid JSON on disk.
	raw, err := os.ReadFile(filepath.Join(dataDir, "soja2526", "tickets.json"))
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	var stored []map[string]any
	if err := json.Unmarshal(raw, &stored); err != nil {
		t.Fatalf("stored file is not valid JSON: %v", err)
	}

	tickets, err := datasets.Tickets("soja2526")
	if err != nil {
		t.Fatalf("Tickets: %v", err)
	}
	if len(tickets) != 1 || tickets[0].Driver != "JOÃO" || tickets[0].NetSacks != 600 {
		t.Errorf("read back %+v, want the normalized JOÃO ticket", tickets)
	}
}

func TestUpload_ConsolidatedSeasonTotalRoundTrip(t *testing.T) {
	_, datasets, reports, uploads := newTestServices(t)

	// A closed-season export ends with a dateless record carrying the
	// consolidated net total for the whole season.
	payload := `[
		{"Data": "10/02/2025", "Sacas Liquida": "600", "Sacas Bruto": "620", "Peso Liquido": "36.000", "Peso Bruto": "37.200"},
		{"Data": null, "Sacas Liquida": 150000}
	]`
	kept, err := uploads.StoreDataset("soja2425", services.DatasetTickets, strings.NewReader(payload))
	if err != nil {
		t.Fatalf("StoreDataset: %v", err)
	}
	if kept != 1 {
		t.Fatalf("kept %d rows, want 1 (total record is not a ticket)", kept)
	}

	tickets, err := datasets.Tickets("soja2425")
	if err != nil {
		t.Fatalf("Tickets: %v", err)
	}
	if len(tickets) != 1 || tickets[0].NetSacks != 600 {
		t.Fatalf("tickets = %+v, want only the 600-sack delivery", tickets)
	}
	total, err := datasets.ConsolidatedTotal("soja2425")
	if err != nil || total != 150000 {
		t.Fatalf("ConsolidatedTotal = %v, %v; want 150000", total, err)
	}

	// The unfiltered dashboard reports the consolidated season total, not
	// the 150600 a naive sum over both records would give.
	report, err := reports.Dashboard("soja2425", processors.DashboardFilter{})
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if report.Kpis.TotalNetSacks != 150000 {
		t.Errorf("unfiltered net sacks = %v, want 150000", report.Kpis.TotalNetSacks)
	}
	if report.TicketCount != 1 {
		t.Errorf("ticket count = %d, want 1", report.TicketCount)
	}
}

func TestUpload_InvalidatesReportCache(t *testing.T) {
	_, _, reports, uploads := newTestServices(t)

	before, err := reports.Dashboard("soja2526", processors.DashboardFilter{})
	if err != nil {
		t.Fatalf("Dashboard before upload: %v", err)
	}
	if before.Kpis.TotalNetSacks != 0 {
		t.Fatalf("empty season reported %v sacks", before.Kpis.TotalNetSacks)
	}

	if _, err := uploads.StoreDataset("soja2526", services.DatasetTickets, strings.NewReader(ticketUpload)); err != nil {
		t.Fatalf("StoreDataset: %v", err)
	}

	after, err := reports.Dashboard("soja2526", processors.DashboardFilter{})
	if err != nil {
		t.Fatalf("Dashboard after upload: %v", err)
	}
	if after.Kpis.TotalNetSacks != 600 {
		t.Errorf("dashboard after upload = %v sacks, want 600 (stale cache?)", after.Kpis.TotalNetSacks)
	}
}

func TestUpload_Rejections(t *testing.T) {
	_, _, _, uploads := newTestServices(t)

	if _, err := uploads.StoreDataset("nao-existe", services.DatasetTickets, strings.NewReader("[]")); !errors.Is(err, services.ErrUnknownSeason) {
		t.Errorf("unknown season error = %v, want ErrUnknownSeason", err)
	}
	if _, err := uploads.StoreDataset("soja2526", "outra-coisa", strings.NewReader("[]")); !errors.Is(err, services.ErrUnknownDatasetKind) {
		t.Errorf("unknown kind error = %v, want ErrUnknownDatasetKind", err)
	}
	if _, err := uploads.StoreDataset("soja2526", services.DatasetTickets, strings.NewReader("{not json")); !errors.Is(err, services.ErrParsingFailed) {
		t.Errorf("malformed payload error = %v, want ErrParsingFailed", err)
	}
	// milho26 tracks neither advances nor fuel.
	if _, err := uploads.StoreDataset("milho26", services.DatasetAdvances, strings.NewReader("[]")); !errors.Is(err, services.ErrDatasetDisabled) {
		t.Errorf("disabled dataset error = %v, want ErrDatasetDisabled", err)
	}
}

func TestDataset_MissingFileIsEmpty(t *testing.T) {
	_, datasets, _, _ := newTestServices(t)

	tickets, err := datasets.Tickets("soja2526")
	if err != nil {
		t.Fatalf("Tickets on empty data dir: %v", err)
	}
	if len(tickets) != 0 {
		t.Errorf("empty data dir yielded %d tickets", len(tickets))
	}
	advances, err := datasets.Advances("soja2526")
	if err != nil || len(advances) != 0 {
		t.Errorf("Advances = %v, %v; want empty, nil", advances, err)
	}
}
