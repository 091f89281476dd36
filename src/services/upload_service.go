// backend/src/services/upload_service.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/username/safrapanel/backend/src/logger"
	"github.com/username/safrapanel/backend/src/models"
	"github.com/username/safrapanel/backend/src/parsers"
	"github.com/username/safrapanel/backend/src/season"
	"github.com/username/safrapanel/backend/src/security/validation"
)

type uploadServiceImpl struct {
	dataDir  string
	datasets DatasetService
	reports  ReportService

	mu sync.Mutex // serializes dataset rewrites
}

// NewUploadService returns an UploadService persisting normalized datasets
// under dataDir and invalidating the affected caches after each rewrite.
func NewUploadService(dataDir string, datasets DatasetService, reports ReportService) UploadService {
	return &uploadServiceImpl{dataDir: dataDir, datasets: datasets, reports: reports}
}

// StoreDataset ingests one raw spreadsheet export (a JSON array of rows keyed
// by column header), normalizes it and atomically replaces the season's
// dataset file. Returns the number of rows kept after normalization.
//
// Uploads never fall back to the default season: writing data into the wrong
// season silently would be far worse than a 404.
func (s *uploadServiceImpl) StoreDataset(seasonID, kind string, payload io.Reader) (int, error) {
	startTime := time.Now()
	if !season.Known(seasonID) {
		return 0, fmt.Errorf("%w: %s", ErrUnknownSeason, seasonID)
	}
	cfg := season.Get(seasonID)

	raw, err := io.ReadAll(payload)
	if err != nil {
		return 0, fmt.Errorf("reading payload: %w", err)
	}
	if _, err := validation.ValidateFileContentByMagicBytes(bytes.NewReader(raw)); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParsingFailed, err)
	}
	var rows []parsers.RawRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return 0, fmt.Errorf("%w: payload is not a JSON row array: %v", ErrParsingFailed, err)
	}

	var normalized any
	var kept int
	switch kind {
	case DatasetTickets:
		tickets, consolidated := parsers.NormalizeTickets(rows)
		kept = len(tickets)
		if consolidated > 0 {
			// Closed-season files keep the dateless season-total record
			// at the end, where the dataset loader picks it back up.
			tickets = append(tickets, models.DeliveryTicket{NetSacks: consolidated})
		}
		normalized = tickets
	case DatasetAdvances:
		if !cfg.HasAdvances {
			return 0, fmt.Errorf("%w: advances for season %s", ErrDatasetDisabled, seasonID)
		}
		advances := parsers.NormalizeAdvances(rows)
		normalized, kept = advances, len(advances)
	case DatasetFuel:
		if !cfg.HasFuel {
			return 0, fmt.Errorf("%w: fuel for season %s", ErrDatasetDisabled, seasonID)
		}
		fuel := parsers.NormalizeFuel(rows)
		normalized, kept = fuel, len(fuel)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDatasetKind, kind)
	}

	if err := s.write(seasonID, kind, normalized); err != nil {
		return 0, err
	}

	s.datasets.Invalidate(seasonID)
	s.reports.Invalidate(seasonID)
	logger.L.Info("dataset stored", "season", seasonID, "kind", kind,
		"rowsIn", len(rows), "rowsKept", kept,
		"durationMs", time.Since(startTime).Milliseconds())
	return kept, nil
}

// write replaces the dataset file via a temp file and rename so readers
// never observe a half-written dataset.
func (s *uploadServiceImpl) write(seasonID, kind string, records any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Join(s.dataDir, seasonID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrStorageFailed, dir, err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding %s/%s: %v", ErrStorageFailed, seasonID, kind, err)
	}

	target := datasetPath(s.dataDir, seasonID, kind)
	tmp, err := os.CreateTemp(dir, kind+"-*.json.tmp")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", ErrStorageFailed, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing temp file: %v", ErrStorageFailed, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file: %v", ErrStorageFailed, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replacing %s: %v", ErrStorageFailed, target, err)
	}
	return nil
}
