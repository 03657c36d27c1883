package pricing

import (
	"sort"

	"salonmanager-app/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnknownLabel stands in for references to deleted collaborators or
// procedures. One bad reference must never halt aggregation for the rest of
// the dataset.
const UnknownLabel = "Desconhecido"

// RankedEntry is one row of a top-N ranking.
type RankedEntry struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// RankBy folds records into per-key totals and returns the top n entries,
// descending by value. Ties keep the first-encountered key first (stable).
func RankBy(records []models.ServiceRecord, keyFn func(models.ServiceRecord) string, valueFn func(models.ServiceRecord) decimal.Decimal, n int) []RankedEntry {
	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, r := range records {
		key := keyFn(r)
		if _, ok := totals[key]; !ok {
			order = append(order, key)
		}
		totals[key] = totals[key].Add(valueFn(r))
	}

	entries := make([]RankedEntry, 0, len(order))
	for _, key := range order {
		entries = append(entries, RankedEntry{Label: key, Value: totals[key]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value.GreaterThan(entries[j].Value)
	})
	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// RevenueByCollaborator ranks collaborators by the sum of calculated values
// over performed records. NotDone records never contribute to revenue.
func RevenueByCollaborator(records []models.ServiceRecord, collabs []models.Collaborator, n int) []RankedEntry {
	names := make(map[uuid.UUID]string, len(collabs))
	for _, c := range collabs {
		names[c.ID] = c.Name
	}
	return RankBy(doneOnly(records),
		func(r models.ServiceRecord) string {
			if name, ok := names[r.CollaboratorID]; ok {
				return name
			}
			return UnknownLabel
		},
		func(r models.ServiceRecord) decimal.Decimal { return r.CalculatedValue },
		n)
}

// VolumeByProcedure ranks procedures by how many times they were performed.
func VolumeByProcedure(records []models.ServiceRecord, procs []models.Procedure, n int) []RankedEntry {
	names := make(map[uuid.UUID]string, len(procs))
	for _, p := range procs {
		names[p.ID] = p.Name
	}
	one := decimal.NewFromInt(1)
	return RankBy(doneOnly(records),
		func(r models.ServiceRecord) string {
			if name, ok := names[r.ProcedureID]; ok {
				return name
			}
			return UnknownLabel
		},
		func(models.ServiceRecord) decimal.Decimal { return one },
		n)
}

func doneOnly(records []models.ServiceRecord) []models.ServiceRecord {
	out := make([]models.ServiceRecord, 0, len(records))
	for _, r := range records {
		if r.Status == models.StatusDone {
			out = append(out, r)
		}
	}
	return out
}
