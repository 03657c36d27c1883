package pricing

import (
	"salonmanager-app/models"

	"github.com/shopspring/decimal"
)

// ComputeValue calculates the monetary value of a service record from its
// price configuration, status and selected extras. The base amount is
// ValueDone when the service was performed and ValueNotDone otherwise; the
// flat ValueAdditional surcharge is added exactly once when any extras were
// selected, regardless of how many. Without a configuration the value is
// zero.
//
// Invoked once at record creation; the result is persisted on the record and
// never recomputed, so later price changes do not rewrite history.
func ComputeValue(config models.PriceConfig, ok bool, status string, extras []string) decimal.Decimal {
	if !ok {
		return decimal.Zero
	}
	value := config.ValueNotDone
	if status == models.StatusDone {
		value = config.ValueDone
	}
	if len(extras) > 0 {
		value = value.Add(config.ValueAdditional)
	}
	return value
}
