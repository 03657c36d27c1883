package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListRoundTrip(t *testing.T) {
	list := StringList{"Limpeza", "Toalhas"}

	value, err := list.Value()
	require.NoError(t, err)

	var got StringList
	require.NoError(t, got.Scan(value.([]byte)))
	assert.Equal(t, list, got)
}

func TestStringListNilMarshalsAsEmptyArray(t *testing.T) {
	var list StringList

	value, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(value.([]byte)))
}

func TestStringListContains(t *testing.T) {
	list := StringList{"Limpeza"}
	assert.True(t, list.Contains("Limpeza"))
	assert.False(t, list.Contains("Toalhas"))
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidRole(RoleManicure))
	assert.True(t, ValidRole(RoleBoth))
	assert.False(t, ValidRole("Gerente"))

	assert.True(t, ValidCategory(CategoryHairdresserFemale))
	assert.False(t, ValidCategory("Outro"))

	assert.True(t, ValidStatus(StatusDone))
	assert.True(t, ValidStatus(StatusNotDone))
	assert.False(t, ValidStatus("Talvez"))

	for _, opt := range ExtraOptions {
		assert.True(t, ValidExtra(opt))
	}
	assert.False(t, ValidExtra("Massagem"))
}
