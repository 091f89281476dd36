// backend/src/services/dataset_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/patrickmn/go-cache"

	"github.com/username/safrapanel/backend/src/logger"
	"github.com/username/safrapanel/backend/src/models"
)

const (
	ckTickets  = "ds_tickets_%s"
	ckAdvances = "ds_advances_%s"
	ckFuel     = "ds_fuel_%s"
)

type datasetServiceImpl struct {
	dataDir string
	cache   *cache.Cache
}

// NewDatasetService returns a DatasetService reading season data files from
// dataDir/<seasonID>/<kind>.json. A missing file is an empty dataset, not an
// error: new seasons start with no uploads.
func NewDatasetService(dataDir string, c *cache.Cache) DatasetService {
	return &datasetServiceImpl{dataDir: dataDir, cache: c}
}

func datasetPath(dataDir, seasonID, kind string) string {
	return filepath.Join(dataDir, seasonID, kind+".json")
}

// ticketFile is a season's ticket dataset after splitting out the dateless
// consolidated-total trailer a closed-season file may end with.
type ticketFile struct {
	tickets      []models.DeliveryTicket
	consolidated float64
}

func (s *datasetServiceImpl) Tickets(seasonID string) ([]models.DeliveryTicket, error) {
	f, err := s.loadTickets(seasonID)
	if err != nil {
		return nil, err
	}
	return f.tickets, nil
}

func (s *datasetServiceImpl) ConsolidatedTotal(seasonID string) (float64, error) {
	f, err := s.loadTickets(seasonID)
	if err != nil {
		return 0, err
	}
	return f.consolidated, nil
}

func (s *datasetServiceImpl) loadTickets(seasonID string) (ticketFile, error) {
	key := fmt.Sprintf(ckTickets, seasonID)
	if cached, found := s.cache.Get(key); found {
		return cached.(ticketFile), nil
	}
	var records []models.DeliveryTicket
	if err := s.load(seasonID, DatasetTickets, &records); err != nil {
		return ticketFile{}, err
	}
	var f ticketFile
	for _, t := range records {
		if t.Date == nil && t.NetSacks > 0 {
			f.consolidated = t.NetSacks
			continue
		}
		f.tickets = append(f.tickets, t)
	}
	s.cache.Set(key, f, cache.NoExpiration)
	return f, nil
}

func (s *datasetServiceImpl) Advances(seasonID string) ([]models.CashAdvance, error) {
	key := fmt.Sprintf(ckAdvances, seasonID)
	if cached, found := s.cache.Get(key); found {
		return cached.([]models.CashAdvance), nil
	}
	var advances []models.CashAdvance
	if err := s.load(seasonID, DatasetAdvances, &advances); err != nil {
		return nil, err
	}
	s.cache.Set(key, advances, cache.NoExpiration)
	return advances, nil
}

func (s *datasetServiceImpl) Fuel(seasonID string) ([]models.FuelPurchase, error) {
	key := fmt.Sprintf(ckFuel, seasonID)
	if cached, found := s.cache.Get(key); found {
		return cached.([]models.FuelPurchase), nil
	}
	var fuel []models.FuelPurchase
	if err := s.load(seasonID, DatasetFuel, &fuel); err != nil {
		return nil, err
	}
	s.cache.Set(key, fuel, cache.NoExpiration)
	return fuel, nil
}

func (s *datasetServiceImpl) Invalidate(seasonID string) {
	for _, pattern := range []string{ckTickets, ckAdvances, ckFuel} {
		s.cache.Delete(fmt.Sprintf(pattern, seasonID))
	}
	logger.L.Debug("dataset cache invalidated", "season", seasonID)
}

func (s *datasetServiceImpl) load(seasonID, kind string, out any) error {
	path := datasetPath(s.dataDir, seasonID, kind)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.L.Debug("dataset file absent, serving empty", "season", seasonID, "kind", kind)
			return nil
		}
		return fmt.Errorf("%w: reading %s: %v", ErrStorageFailed, path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", ErrStorageFailed, path, err)
	}
	return nil
}
