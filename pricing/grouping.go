package pricing

import (
	"sort"

	"salonmanager-app/models"
	"salonmanager-app/utils"

	"github.com/shopspring/decimal"
)

// DayGroup is one calendar day of a report: the day's records in their
// original relative order, the sum of their calculated values across both
// statuses (the day total deliberately includes NotDone amounts, unlike the
// revenue KPIs), and the per-status counts.
type DayGroup struct {
	Date         string                 `json:"date"`
	Records      []models.ServiceRecord `json:"records"`
	Total        decimal.Decimal        `json:"totalValue"`
	CountDone    int                    `json:"countDone"`
	CountNotDone int                    `json:"countNotDone"`
}

// GroupByDay partitions records into per-day buckets keyed by the raw date
// string, ascending by date. Keying by the string rather than a parsed date
// keeps the grouping immune to timezone normalization.
func GroupByDay(records []models.ServiceRecord) []DayGroup {
	return groupByDay(records, nil)
}

// GroupByDayRange groups like GroupByDay but first seeds every calendar day
// between start and end (inclusive) with an empty bucket, so charts get a
// gap-free contiguous axis even when data is sparse. Days are stepped one at
// a time from a noon-anchored date; an unparseable or inverted range seeds
// nothing.
func GroupByDayRange(records []models.ServiceRecord, start, end string) []DayGroup {
	var seed []string
	from, err1 := utils.ParseDay(start)
	to, err2 := utils.ParseDay(end)
	if err1 == nil && err2 == nil {
		for d := from; !d.After(to); d = utils.NextDay(d) {
			seed = append(seed, utils.FormatDay(d))
		}
	}
	return groupByDay(records, seed)
}

func groupByDay(records []models.ServiceRecord, seed []string) []DayGroup {
	groups := make(map[string]*DayGroup)
	order := make([]string, 0, len(seed))

	for _, date := range seed {
		if _, ok := groups[date]; ok {
			continue
		}
		groups[date] = &DayGroup{Date: date, Records: []models.ServiceRecord{}, Total: decimal.Zero}
		order = append(order, date)
	}

	for _, r := range records {
		g, ok := groups[r.Date]
		if !ok {
			g = &DayGroup{Date: r.Date, Total: decimal.Zero}
			groups[r.Date] = g
			order = append(order, r.Date)
		}
		g.Records = append(g.Records, r)
		g.Total = g.Total.Add(r.CalculatedValue)
		switch r.Status {
		case models.StatusDone:
			g.CountDone++
		case models.StatusNotDone:
			g.CountNotDone++
		}
	}

	sort.Strings(order)
	out := make([]DayGroup, 0, len(order))
	for _, date := range order {
		out = append(out, *groups[date])
	}
	return out
}
