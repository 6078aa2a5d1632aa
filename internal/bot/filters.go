package bot

import (
	"slices"
	"strings"

	"github.com/madzombie/spark-bot/internal/models"
)

// AccessPoints keeps devices whose model carries the access-point class
// prefix (first two characters, e.g. "MR").
func AccessPoints(devices []models.DeviceRecord, modelPrefix string) []models.DeviceRecord {
	var out []models.DeviceRecord
	for _, d := range devices {
		if strings.HasPrefix(d.Model, modelPrefix) {
			out = append(out, d)
		}
	}
	return out
}

// GuestAccessPoints keeps access-point devices additionally tagged with the
// guest marker. Both conditions are required.
func GuestAccessPoints(devices []models.DeviceRecord, modelPrefix, guestTag string) []models.DeviceRecord {
	var out []models.DeviceRecord
	for _, d := range devices {
		if strings.HasPrefix(d.Model, modelPrefix) && slices.Contains(d.Tags, guestTag) {
			out = append(out, d)
		}
	}
	return out
}

// OnSubnet keeps clients whose IP text contains the subnet fragment. This is
// a substring match, not CIDR containment: "110.4.17.9" matches "10.4.17".
// Loose on purpose; callers depend on the existing behavior.
func OnSubnet(clients []models.ClientRecord, subnet string) []models.ClientRecord {
	var out []models.ClientRecord
	for _, c := range clients {
		if strings.Contains(c.IP, subnet) {
			out = append(out, c)
		}
	}
	return out
}

// NormalizeClientName lower-cases the description and replaces spaces and
// periods with underscores. Distinct names that collide after normalization
// merge their usage totals; that merging is accepted behavior.
func NormalizeClientName(description string) string {
	s := strings.ToLower(description)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ".", "_")
	return s
}

// AggregateUsage accumulates sent+received kilobytes per normalized client
// name into totals, allocating it on first use. Accumulation is
// order-independent, so fan-out results can be folded in any sequence.
func AggregateUsage(totals map[string]float64, clients []models.ClientRecord) map[string]float64 {
	if totals == nil {
		totals = make(map[string]float64)
	}
	for _, c := range clients {
		totals[NormalizeClientName(c.Description)] += c.Usage.Sent + c.Usage.Recv
	}
	return totals
}
