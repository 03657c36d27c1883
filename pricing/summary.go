package pricing

import (
	"math"

	"salonmanager-app/models"

	"github.com/shopspring/decimal"
)

// Summary is the KPI bundle shown on the dashboard and analysis screens.
// TotalRevenue covers performed records only; LostRevenue is what the
// NotDone records would have been worth. EfficiencyRate is a whole percent.
type Summary struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	LostRevenue    decimal.Decimal `json:"lostRevenue"`
	TotalCount     int             `json:"totalCount"`
	DoneCount      int             `json:"doneCount"`
	NotDoneCount   int             `json:"notDoneCount"`
	AvgTicket      decimal.Decimal `json:"avgTicket"`
	EfficiencyRate int             `json:"efficiencyRate"`
}

// Summarize reduces an already-filtered record set into scalar KPIs. Every
// denominator is guarded: an empty set yields all zeros, never a division
// error.
func Summarize(records []models.ServiceRecord) Summary {
	s := Summary{
		TotalRevenue: decimal.Zero,
		LostRevenue:  decimal.Zero,
		AvgTicket:    decimal.Zero,
	}
	for _, r := range records {
		s.TotalCount++
		switch r.Status {
		case models.StatusDone:
			s.DoneCount++
			s.TotalRevenue = s.TotalRevenue.Add(r.CalculatedValue)
		case models.StatusNotDone:
			s.NotDoneCount++
			s.LostRevenue = s.LostRevenue.Add(r.CalculatedValue)
		}
	}
	if s.DoneCount > 0 {
		s.AvgTicket = s.TotalRevenue.DivRound(decimal.NewFromInt(int64(s.DoneCount)), 2)
	}
	if s.TotalCount > 0 {
		s.EfficiencyRate = int(math.Round(float64(s.DoneCount) / float64(s.TotalCount) * 100))
	}
	return s
}
