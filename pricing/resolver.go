// Package pricing is the pure computation layer of the salon dashboard: it
// values a service record at creation time and reduces record collections
// into the day groups, rankings and KPI bundles the dashboard, report and
// analysis endpoints serve. Every function is a stateless reduction over its
// inputs; none perform I/O and none return errors — dangling references
// degrade to placeholder labels and zero denominators resolve to zero.
package pricing

import (
	"salonmanager-app/models"

	"github.com/google/uuid"
)

// ResolvePrice returns the price configuration for a procedure, preferring an
// active one when several exist. A missing configuration is not an error — a
// newly created procedure may simply have no price set yet — so the second
// return value reports presence.
func ResolvePrice(configs []models.PriceConfig, procedureID uuid.UUID) (models.PriceConfig, bool) {
	var first models.PriceConfig
	found := false
	for _, cfg := range configs {
		if cfg.ProcedureID != procedureID {
			continue
		}
		if cfg.IsActive {
			return cfg, true
		}
		if !found {
			first = cfg
			found = true
		}
	}
	return first, found
}
