package icron

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	_, err := Parse("0 * * * *")
	assert.NoError(t, err)

	_, err = Parse("@hourly")
	assert.NoError(t, err)

	_, err = Parse("not a cron expr")
	assert.Error(t, err)
}

func TestGetTriggerInfo(t *testing.T) {
	ref := time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)

	info, err := GetTriggerInfo("0 * * * *", ref)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 15, 13, 0, 0, 0, time.UTC), info.Next)
	assert.Equal(t, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC), info.Last)
	assert.Equal(t, 30*time.Minute, info.TimeSinceLast)
	assert.Equal(t, 30*time.Minute, info.TimeUntilNext)
}

func TestGetTriggerInfoInvalidExpr(t *testing.T) {
	_, err := GetTriggerInfo("bogus", time.Now())
	assert.Error(t, err)
}
