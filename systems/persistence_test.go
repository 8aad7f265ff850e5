package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The gdata manager is never opened in tests, so these exercise the
// degraded path: no storage, everything still works in memory.

func TestLoadRecords_NoStorageFallsBackToZeroRecords(t *testing.T) {
	records := LoadRecords()

	require.NotNil(t, records)
	assert.Zero(t, records.BestDepth)
	assert.Zero(t, records.TotalRuns)
}

func TestLoadSettings_NoStorageReturnsNoSettings(t *testing.T) {
	saved, err := LoadSettings()

	assert.NoError(t, err)
	assert.Nil(t, saved)
}

func TestRecordRunEnd_FoldsTheRunIntoRecords(t *testing.T) {
	records, newRecord := RecordRunEnd(3, 17)

	assert.True(t, newRecord, "any depth beats an empty record")
	assert.Equal(t, 3, records.BestDepth)
	assert.Equal(t, 1, records.TotalRuns)
	assert.Equal(t, 17, records.TotalKills)
}
