// backend/src/processors/contract_processor.go
package processors

import (
	"math"
	"sort"
	"strings"

	"github.com/username/safrapanel/backend/src/logger"
	"github.com/username/safrapanel/backend/src/models"
	"github.com/username/safrapanel/backend/src/season"
	"github.com/username/safrapanel/backend/src/utils"
)

// FulfillmentSource yields the delivered volume per contract id and tells
// whether the season is settled. Callers never branch on season identity:
// the source variant (computed vs settled) carries that decision.
type FulfillmentSource interface {
	FulfilledSacks(contractID string) float64
	// Settled seasons report every contract as fulfilled regardless of
	// the delivered volume still on record.
	Settled() bool
}

type computedSource struct {
	delivered map[string]float64
}

func (s computedSource) FulfilledSacks(contractID string) float64 { return s.delivered[contractID] }
func (s computedSource) Settled() bool                            { return false }

type settledSource struct {
	computedSource
}

func (s settledSource) Settled() bool { return true }

// NewFulfillmentSource builds the delivery-volume source for a season.
// Contract ids are matched after trimming; the no-contract sentinel never
// accrues volume.
func NewFulfillmentSource(cfg *season.Config, tickets []models.DeliveryTicket) FulfillmentSource {
	delivered := make(map[string]float64)
	for _, t := range tickets {
		id := strings.TrimSpace(t.ContractID)
		if id == "" || id == models.NoContract {
			continue
		}
		delivered[id] += t.NetSacks
	}
	for id, sacks := range delivered {
		if _, ok := cfg.ContractVolumes[id]; !ok {
			logger.L.Warn("delivered volume matches no configured contract",
				"season", cfg.ID, "contract", id, "netSacks", sacks)
		}
	}
	if cfg.IsPast() {
		return settledSource{computedSource{delivered}}
	}
	return computedSource{delivered}
}

type ContractProcessor struct{}

func NewContractProcessor() *ContractProcessor { return &ContractProcessor{} }

// Partition matches delivered volume against the season's contract registry
// and splits the result into pending and fulfilled lists.
//
// Fixed-volume contracts conclude when less than one sack remains. Contracts
// registered with zero committed volume are open-ended buckets: any delivery
// fulfills them, and with no deliveries they appear in neither list. For
// settled seasons everything lands in the fulfilled list.
func (p *ContractProcessor) Partition(tickets []models.DeliveryTicket, cfg *season.Config) models.ContractPartitions {
	source := NewFulfillmentSource(cfg, tickets)

	ids := make([]string, 0, len(cfg.ContractVolumes))
	for id := range cfg.ContractVolumes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	parts := models.ContractPartitions{
		Pending:   []models.ProcessedContract{},
		Fulfilled: []models.ProcessedContract{},
	}
	for _, id := range ids {
		vol := cfg.ContractVolumes[id]
		fulfilled := source.FulfilledSacks(id)

		pc := models.ProcessedContract{
			ID:             id,
			Name:           vol.Name,
			CommittedSacks: vol.TotalSacks,
			FulfilledSacks: utils.Round2(fulfilled),
		}

		switch {
		case source.Settled():
			pc.RemainingSacks = 0
			pc.CompletionPct = "100.0"
			pc.IsConcluded = true
		case vol.TotalSacks <= 0:
			if fulfilled <= 0 {
				continue // open bucket with no movement: not worth a row
			}
			pc.RemainingSacks = 0
			pc.CompletionPct = "100.0"
			pc.IsConcluded = true
		default:
			remaining := vol.TotalSacks - fulfilled
			if remaining < 0 {
				remaining = 0
			}
			pct := math.Min(fulfilled/vol.TotalSacks*100, 100)
			pc.RemainingSacks = utils.Round2(remaining)
			pc.CompletionPct = utils.FormatFixed(pct, 1)
			pc.IsConcluded = remaining < 1
		}

		if pc.IsConcluded {
			parts.Fulfilled = append(parts.Fulfilled, pc)
		} else {
			parts.Pending = append(parts.Pending, pc)
		}
	}

	byFulfilledDesc := func(list []models.ProcessedContract) {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].FulfilledSacks > list[j].FulfilledSacks
		})
	}
	byFulfilledDesc(parts.Pending)
	byFulfilledDesc(parts.Fulfilled)
	return parts
}
