package pricing

import (
	"testing"

	"salonmanager-app/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(procedureID uuid.UUID, done, notDone, additional string) models.PriceConfig {
	return models.PriceConfig{
		ID:              uuid.New(),
		ProcedureID:     procedureID,
		ValueDone:       decimal.RequireFromString(done),
		ValueNotDone:    decimal.RequireFromString(notDone),
		ValueAdditional: decimal.RequireFromString(additional),
		IsActive:        true,
	}
}

func TestComputeValueDoneUsesDoneAmount(t *testing.T) {
	cfg := testConfig(uuid.New(), "50.00", "20.00", "10.00")

	value := ComputeValue(cfg, true, models.StatusDone, nil)
	assert.True(t, value.Equal(decimal.RequireFromString("50.00")), "got %s", value)
}

func TestComputeValueNotDoneUsesNotDoneAmount(t *testing.T) {
	cfg := testConfig(uuid.New(), "50.00", "20.00", "10.00")

	value := ComputeValue(cfg, true, models.StatusNotDone, nil)
	assert.True(t, value.Equal(decimal.RequireFromString("20.00")), "got %s", value)
}

func TestComputeValueExtrasSurchargeIsFlat(t *testing.T) {
	cfg := testConfig(uuid.New(), "50.00", "20.00", "10.00")

	one := ComputeValue(cfg, true, models.StatusDone, []string{"Toalhas"})
	two := ComputeValue(cfg, true, models.StatusDone, []string{"Toalhas", "Limpeza"})

	require.True(t, one.Equal(decimal.RequireFromString("60.00")), "got %s", one)
	assert.True(t, two.Equal(one), "surcharge must not scale with extras count, got %s", two)
}

func TestComputeValueExtrasAppliesToNotDone(t *testing.T) {
	cfg := testConfig(uuid.New(), "50.00", "20.00", "10.00")

	value := ComputeValue(cfg, true, models.StatusNotDone, []string{"Limpeza"})
	assert.True(t, value.Equal(decimal.RequireFromString("30.00")), "got %s", value)
}

func TestComputeValueWithoutConfigIsZero(t *testing.T) {
	value := ComputeValue(models.PriceConfig{}, false, models.StatusDone, []string{"Toalhas"})
	assert.True(t, value.IsZero(), "got %s", value)
}

func TestResolvePricePrefersActiveConfig(t *testing.T) {
	procID := uuid.New()
	inactive := testConfig(procID, "99.00", "0.00", "0.00")
	inactive.IsActive = false
	active := testConfig(procID, "50.00", "20.00", "10.00")

	cfg, ok := ResolvePrice([]models.PriceConfig{inactive, active}, procID)
	require.True(t, ok)
	assert.Equal(t, active.ID, cfg.ID)
}

func TestResolvePriceFallsBackToInactive(t *testing.T) {
	procID := uuid.New()
	inactive := testConfig(procID, "99.00", "0.00", "0.00")
	inactive.IsActive = false

	cfg, ok := ResolvePrice([]models.PriceConfig{inactive}, procID)
	require.True(t, ok)
	assert.Equal(t, inactive.ID, cfg.ID)
}

func TestResolvePriceAbsent(t *testing.T) {
	other := testConfig(uuid.New(), "50.00", "20.00", "10.00")

	_, ok := ResolvePrice([]models.PriceConfig{other}, uuid.New())
	assert.False(t, ok)

	_, ok = ResolvePrice(nil, uuid.New())
	assert.False(t, ok)
}
