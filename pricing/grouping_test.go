package pricing

import (
	"testing"

	"salonmanager-app/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByDayTotalsIncludeBothStatuses(t *testing.T) {
	records := []models.ServiceRecord{
		testRecord("2024-03-01", models.StatusDone, "50.00"),
		testRecord("2024-03-01", models.StatusNotDone, "20.00"),
		testRecord("2024-03-02", models.StatusDone, "30.00"),
	}

	groups := GroupByDay(records)
	require.Len(t, groups, 2)

	first := groups[0]
	assert.Equal(t, "2024-03-01", first.Date)
	// The day total sums every record's value regardless of status; only
	// the revenue KPIs are Done-only.
	assert.True(t, first.Total.Equal(decimal.RequireFromString("70.00")), "got %s", first.Total)
	assert.Equal(t, 1, first.CountDone)
	assert.Equal(t, 1, first.CountNotDone)
	require.Len(t, first.Records, 2)
	assert.Equal(t, records[0].ID, first.Records[0].ID)
	assert.Equal(t, records[1].ID, first.Records[1].ID)

	second := groups[1]
	assert.Equal(t, "2024-03-02", second.Date)
	assert.True(t, second.Total.Equal(decimal.RequireFromString("30.00")), "got %s", second.Total)
	assert.Equal(t, 1, second.CountDone)
	assert.Equal(t, 0, second.CountNotDone)
}

func TestGroupByDayEmpty(t *testing.T) {
	assert.Empty(t, GroupByDay(nil))
}

func TestGroupByDaySortedAscending(t *testing.T) {
	records := []models.ServiceRecord{
		testRecord("2024-03-20", models.StatusDone, "1.00"),
		testRecord("2024-03-05", models.StatusDone, "2.00"),
		testRecord("2024-03-12", models.StatusDone, "3.00"),
	}

	groups := GroupByDay(records)
	require.Len(t, groups, 3)
	assert.Equal(t, "2024-03-05", groups[0].Date)
	assert.Equal(t, "2024-03-12", groups[1].Date)
	assert.Equal(t, "2024-03-20", groups[2].Date)
}

func TestGroupByDayRangeSeedsZeroActivityDays(t *testing.T) {
	records := []models.ServiceRecord{
		testRecord("2024-03-01", models.StatusDone, "50.00"),
		testRecord("2024-03-03", models.StatusDone, "30.00"),
	}

	groups := GroupByDayRange(records, "2024-03-01", "2024-03-03")
	require.Len(t, groups, 3)

	assert.Equal(t, "2024-03-02", groups[1].Date)
	assert.True(t, groups[1].Total.IsZero())
	assert.Empty(t, groups[1].Records)
	assert.Equal(t, 0, groups[1].CountDone)
	assert.Equal(t, 0, groups[1].CountNotDone)
}

func TestGroupByDayRangeCoversDSTTransition(t *testing.T) {
	// Brazil's old DST switched around midnight; a midnight-anchored
	// iteration used to skip or duplicate the boundary day. Stepping from a
	// noon anchor must yield every day exactly once.
	groups := GroupByDayRange(nil, "2018-11-03", "2018-11-05")
	require.Len(t, groups, 3)
	assert.Equal(t, "2018-11-03", groups[0].Date)
	assert.Equal(t, "2018-11-04", groups[1].Date)
	assert.Equal(t, "2018-11-05", groups[2].Date)
}

func TestGroupByDayRangeInvertedSeedsNothing(t *testing.T) {
	records := []models.ServiceRecord{
		testRecord("2024-03-02", models.StatusDone, "10.00"),
	}

	groups := GroupByDayRange(records, "2024-03-31", "2024-03-01")
	require.Len(t, groups, 1)
	assert.Equal(t, "2024-03-02", groups[0].Date)
}

func TestGroupByDayRangeRecordOutsideSeedStillGrouped(t *testing.T) {
	records := []models.ServiceRecord{
		testRecord("2024-04-15", models.StatusDone, "10.00"),
	}

	groups := GroupByDayRange(records, "2024-04-01", "2024-04-02")
	require.Len(t, groups, 3)
	assert.Equal(t, "2024-04-15", groups[2].Date)
}
