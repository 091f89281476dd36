package processors

import (
	"sort"

	"github.com/username/safrapanel/backend/src/models"
)

// FilterTickets returns the subset of tickets matching both dimensions of
// the filter. An empty dimension matches everything.
func FilterTickets(tickets []models.DeliveryTicket, filter DashboardFilter) []models.DeliveryTicket {
	if filter.Farm == "" && filter.Warehouse == "" {
		return tickets
	}
	out := make([]models.DeliveryTicket, 0, len(tickets))
	for _, t := range tickets {
		if filter.Farm != "" && t.Farm != filter.Farm {
			continue
		}
		if filter.Warehouse != "" && t.Warehouse != filter.Warehouse {
			continue
		}
		out = append(out, t)
	}
	return out
}

// sortChronological orders tickets by (date, invoice number) so that any
// first-seen walk over them is deterministic regardless of file order.
// Tickets without a date sort last.
func sortChronological(tickets []models.DeliveryTicket) []models.DeliveryTicket {
	sorted := make([]models.DeliveryTicket, len(tickets))
	copy(sorted, tickets)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := sorted[i].Date, sorted[j].Date
		switch {
		case di == nil && dj == nil:
			return sorted[i].InvoiceNumber < sorted[j].InvoiceNumber
		case di == nil:
			return false
		case dj == nil:
			return true
		case *di != *dj:
			return *di < *dj
		}
		return sorted[i].InvoiceNumber < sorted[j].InvoiceNumber
	})
	return sorted
}
