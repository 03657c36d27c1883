package pricing

import (
	"testing"

	"salonmanager-app/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(date, status, value string) models.ServiceRecord {
	return models.ServiceRecord{
		ID:              uuid.New(),
		Date:            date,
		CollaboratorID:  uuid.New(),
		ProcedureID:     uuid.New(),
		Status:          status,
		CalculatedValue: decimal.RequireFromString(value),
	}
}

func TestFilterByPeriodMonth(t *testing.T) {
	records := []models.ServiceRecord{
		testRecord("2024-03-15", models.StatusDone, "50.00"),
		testRecord("2024-04-01", models.StatusDone, "30.00"),
		testRecord("2024-03-02", models.StatusNotDone, "20.00"),
		testRecord("2023-03-10", models.StatusDone, "10.00"),
	}

	got := FilterByPeriod(records, Period{Mode: PeriodMonth, Value: "2024-03"})

	require.Len(t, got, 2)
	assert.Equal(t, "2024-03-02", got[0].Date)
	assert.Equal(t, "2024-03-15", got[1].Date)
}

func TestFilterByPeriodDay(t *testing.T) {
	records := []models.ServiceRecord{
		testRecord("2024-03-15", models.StatusDone, "50.00"),
		testRecord("2024-03-16", models.StatusDone, "30.00"),
	}

	got := FilterByPeriod(records, Period{Mode: PeriodDay, Value: "2024-03-16"})

	require.Len(t, got, 1)
	assert.Equal(t, "2024-03-16", got[0].Date)
}

func TestFilterByPeriodRangeInclusive(t *testing.T) {
	records := []models.ServiceRecord{
		testRecord("2024-02-29", models.StatusDone, "1.00"),
		testRecord("2024-03-01", models.StatusDone, "2.00"),
		testRecord("2024-03-10", models.StatusDone, "3.00"),
		testRecord("2024-03-31", models.StatusDone, "4.00"),
		testRecord("2024-04-01", models.StatusDone, "5.00"),
	}

	got := FilterByPeriod(records, Period{Mode: PeriodRange, Start: "2024-03-01", End: "2024-03-31"})

	require.Len(t, got, 3)
	assert.Equal(t, "2024-03-01", got[0].Date)
	assert.Equal(t, "2024-03-31", got[2].Date)
}

func TestFilterByPeriodInvertedRangeIsEmpty(t *testing.T) {
	records := []models.ServiceRecord{
		testRecord("2024-03-10", models.StatusDone, "3.00"),
	}

	got := FilterByPeriod(records, Period{Mode: PeriodRange, Start: "2024-03-31", End: "2024-03-01"})
	assert.Empty(t, got)
}

func TestFilterByPeriodEmptyInput(t *testing.T) {
	got := FilterByPeriod(nil, Period{Mode: PeriodMonth, Value: "2024-03"})
	assert.Empty(t, got)
}

func TestFilterByPeriodCollaborator(t *testing.T) {
	collabID := uuid.New()
	mine := testRecord("2024-03-10", models.StatusDone, "3.00")
	mine.CollaboratorID = collabID
	other := testRecord("2024-03-11", models.StatusDone, "4.00")

	got := FilterByPeriod([]models.ServiceRecord{mine, other}, Period{
		Mode:           PeriodMonth,
		Value:          "2024-03",
		CollaboratorID: collabID,
	})

	require.Len(t, got, 1)
	assert.Equal(t, mine.ID, got[0].ID)
}

func TestFilterByPeriodStableOnSameDate(t *testing.T) {
	a := testRecord("2024-03-10", models.StatusDone, "1.00")
	b := testRecord("2024-03-10", models.StatusDone, "2.00")
	c := testRecord("2024-03-09", models.StatusDone, "3.00")

	got := FilterByPeriod([]models.ServiceRecord{a, b, c}, Period{Mode: PeriodMonth, Value: "2024-03"})

	require.Len(t, got, 3)
	assert.Equal(t, c.ID, got[0].ID)
	assert.Equal(t, a.ID, got[1].ID)
	assert.Equal(t, b.ID, got[2].ID)
}

func TestFilterByPeriodIdempotent(t *testing.T) {
	records := []models.ServiceRecord{
		testRecord("2024-03-15", models.StatusDone, "50.00"),
		testRecord("2024-03-02", models.StatusNotDone, "20.00"),
	}
	p := Period{Mode: PeriodMonth, Value: "2024-03"}

	first := FilterByPeriod(records, p)
	second := FilterByPeriod(records, p)
	assert.Equal(t, first, second)
}
