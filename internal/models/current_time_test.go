package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCurrentTimeData(t *testing.T) {
	now := time.Date(2021, time.January, 22, 13, 0, 5, 250*int(time.Millisecond), time.UTC)

	data := NewCurrentTimeData(now)

	assert.Equal(t, "22-01-2021 13:00:05", data.Entry.ReadableTime)
	assert.Equal(t, now.UnixMilli(), data.Entry.Time)
}

func TestCurrentTimeDataJSON(t *testing.T) {
	data := NewCurrentTimeData(time.Date(2021, time.January, 22, 13, 0, 0, 0, time.UTC))

	jsonData, err := json.Marshal(data)
	require.NoError(t, err)
	assert.JSONEq(t, `{"entry": {"readableTime": "22-01-2021 13:00:00", "time": 1611320400000}}`, string(jsonData))
}
