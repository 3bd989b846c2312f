package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTapType(t *testing.T) {
	tests := []struct {
		input string
		want  TapType
	}{
		{input: "ON", want: TapTypeOn},
		{input: "on", want: TapTypeOn},
		{input: "Off", want: TapTypeOff},
		{input: " OFF ", want: TapTypeUnknown},
		{input: "ON\n", want: TapTypeUnknown},
		{input: "", want: TapTypeUnknown},
		{input: "PAUSE", want: TapTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTapType(tt.input))
		})
	}
}

func TestTapUnmarshal(t *testing.T) {
	t.Run("decodes every field", func(t *testing.T) {
		data := `{
			"id": 1,
			"datetimeUTC": "22-01-2021 13:00:00",
			"tapType": "on",
			"stopId": "Stop1",
			"companyId": "Company1",
			"busId": "Bus37",
			"primaryAccountNumber": "5500005555555559"
		}`

		var tap Tap
		require.NoError(t, json.Unmarshal([]byte(data), &tap))

		assert.Equal(t, 1, tap.ID)
		assert.Equal(t, time.Date(2021, time.January, 22, 13, 0, 0, 0, time.UTC), tap.DateTimeUTC.Time)
		assert.Equal(t, TapTypeOn, tap.TapType)
		assert.Equal(t, "Stop1", tap.StopID)
		assert.Equal(t, "Company1", tap.CompanyID)
		assert.Equal(t, "Bus37", tap.BusID)
		assert.Equal(t, "5500005555555559", tap.PrimaryAccountNumber)
	})

	t.Run("unknown tap types do not fail decoding", func(t *testing.T) {
		for _, raw := range []string{`"SWIPE"`, `null`, `42`} {
			var tap Tap
			err := json.Unmarshal([]byte(`{"id": 2, "tapType": `+raw+`}`), &tap)
			require.NoError(t, err, raw)
			assert.Equal(t, TapTypeUnknown, tap.TapType, raw)
		}
	})

	t.Run("rejects malformed timestamps", func(t *testing.T) {
		var tap Tap
		err := json.Unmarshal([]byte(`{"datetimeUTC": "2021-01-22T13:00:00Z"}`), &tap)
		assert.Error(t, err)
	})

	t.Run("account number stays opaque", func(t *testing.T) {
		var tap Tap
		require.NoError(t, json.Unmarshal([]byte(`{"primaryAccountNumber": "0012 34"}`), &tap))
		assert.Equal(t, "0012 34", tap.PrimaryAccountNumber)
	})
}

func TestTapTypeMarshal(t *testing.T) {
	data, err := json.Marshal([]TapType{TapTypeOn, TapTypeOff, TapTypeUnknown})
	require.NoError(t, err)
	assert.JSONEq(t, `["ON", "OFF", null]`, string(data))
}

func TestSameJourneyKey(t *testing.T) {
	base := Tap{CompanyID: "Company1", BusID: "Bus37", PrimaryAccountNumber: "5500005555555559"}

	assert.True(t, base.SameJourneyKey(base))

	other := base
	other.BusID = "Bus38"
	assert.False(t, base.SameJourneyKey(other))

	other = base
	other.CompanyID = "Company2"
	assert.False(t, base.SameJourneyKey(other))

	other = base
	other.PrimaryAccountNumber = "4111111111111111"
	assert.False(t, base.SameJourneyKey(other))
}
