package pricing

import (
	"testing"

	"salonmanager-app/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenueByCollaboratorDoneOnlyDescending(t *testing.T) {
	ana := models.Collaborator{ID: uuid.New(), Name: "Ana"}
	bia := models.Collaborator{ID: uuid.New(), Name: "Bia"}
	collabs := []models.Collaborator{ana, bia}

	records := []models.ServiceRecord{
		withCollab(testRecord("2024-03-01", models.StatusDone, "40.00"), ana.ID),
		withCollab(testRecord("2024-03-01", models.StatusDone, "100.00"), bia.ID),
		withCollab(testRecord("2024-03-02", models.StatusDone, "30.00"), ana.ID),
		withCollab(testRecord("2024-03-02", models.StatusNotDone, "500.00"), ana.ID),
	}

	got := RevenueByCollaborator(records, collabs, 5)

	require.Len(t, got, 2)
	assert.Equal(t, "Bia", got[0].Label)
	assert.True(t, got[0].Value.Equal(decimal.RequireFromString("100.00")), "got %s", got[0].Value)
	assert.Equal(t, "Ana", got[1].Label)
	assert.True(t, got[1].Value.Equal(decimal.RequireFromString("70.00")), "NotDone must not count, got %s", got[1].Value)
}

func TestRevenueByCollaboratorDanglingReference(t *testing.T) {
	records := []models.ServiceRecord{
		testRecord("2024-03-01", models.StatusDone, "40.00"),
	}

	got := RevenueByCollaborator(records, nil, 5)

	require.Len(t, got, 1)
	assert.Equal(t, UnknownLabel, got[0].Label)
}

func TestVolumeByProcedureCountsDone(t *testing.T) {
	corte := models.Procedure{ID: uuid.New(), Name: "Corte"}
	unha := models.Procedure{ID: uuid.New(), Name: "Unha"}
	procs := []models.Procedure{corte, unha}

	records := []models.ServiceRecord{
		withProc(testRecord("2024-03-01", models.StatusDone, "40.00"), corte.ID),
		withProc(testRecord("2024-03-01", models.StatusDone, "40.00"), corte.ID),
		withProc(testRecord("2024-03-02", models.StatusDone, "20.00"), unha.ID),
		withProc(testRecord("2024-03-02", models.StatusNotDone, "20.00"), unha.ID),
	}

	got := VolumeByProcedure(records, procs, 5)

	require.Len(t, got, 2)
	assert.Equal(t, "Corte", got[0].Label)
	assert.True(t, got[0].Value.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, "Unha", got[1].Label)
	assert.True(t, got[1].Value.Equal(decimal.NewFromInt(1)))
}

func TestRankByTruncatesToTopN(t *testing.T) {
	var records []models.ServiceRecord
	for i := 0; i < 10; i++ {
		records = append(records, testRecord("2024-03-01", models.StatusDone, "10.00"))
	}

	got := RankBy(records,
		func(r models.ServiceRecord) string { return r.ID.String() },
		func(r models.ServiceRecord) decimal.Decimal { return r.CalculatedValue },
		5)

	assert.Len(t, got, 5)
}

func TestRankByTiesKeepFirstEncounteredOrder(t *testing.T) {
	records := []models.ServiceRecord{
		testRecord("2024-03-01", models.StatusDone, "10.00"),
		testRecord("2024-03-01", models.StatusDone, "10.00"),
	}
	labels := map[uuid.UUID]string{records[0].ID: "first", records[1].ID: "second"}

	got := RankBy(records,
		func(r models.ServiceRecord) string { return labels[r.ID] },
		func(r models.ServiceRecord) decimal.Decimal { return r.CalculatedValue },
		5)

	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Label)
	assert.Equal(t, "second", got[1].Label)
}

func TestRankByEmpty(t *testing.T) {
	got := RankBy(nil,
		func(r models.ServiceRecord) string { return "" },
		func(r models.ServiceRecord) decimal.Decimal { return r.CalculatedValue },
		5)
	assert.Empty(t, got)
}

func withCollab(r models.ServiceRecord, id uuid.UUID) models.ServiceRecord {
	r.CollaboratorID = id
	return r
}

func withProc(r models.ServiceRecord, id uuid.UUID) models.ServiceRecord {
	r.ProcedureID = id
	return r
}
