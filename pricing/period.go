package pricing

import (
	"sort"
	"strings"

	"salonmanager-app/models"

	"github.com/google/uuid"
)

// Period filter modes
const (
	PeriodMonth = "month"
	PeriodDay   = "day"
	PeriodRange = "range"
)

// Period scopes which records participate in a report or analysis. Value
// holds the YYYY-MM month or YYYY-MM-DD day for the month/day modes; Start
// and End bound the inclusive range mode. A non-nil CollaboratorID restricts
// the result to that collaborator regardless of mode.
type Period struct {
	Mode           string
	Value          string
	Start          string
	End            string
	CollaboratorID uuid.UUID
}

// FilterByPeriod selects the records whose date falls inside the period,
// ascending by date with ties kept in input order. Date comparison is
// lexical on the YYYY-MM-DD strings on purpose: converting to timestamps
// shifts dates across midnight for users in other timezones. A range with
// start after end yields an empty result, not an error.
func FilterByPeriod(records []models.ServiceRecord, p Period) []models.ServiceRecord {
	out := make([]models.ServiceRecord, 0, len(records))
	for _, r := range records {
		if p.CollaboratorID != uuid.Nil && r.CollaboratorID != p.CollaboratorID {
			continue
		}
		if !p.matches(r.Date) {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

func (p Period) matches(date string) bool {
	switch p.Mode {
	case PeriodMonth:
		return strings.HasPrefix(date, p.Value)
	case PeriodDay:
		return date == p.Value
	case PeriodRange:
		return date >= p.Start && date <= p.End
	}
	return false
}
