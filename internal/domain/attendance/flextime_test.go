package attendance

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexTimeUnmarshalFirestoreObject(t *testing.T) {
	var ft FlexTime
	require.NoError(t, json.Unmarshal([]byte(`{"seconds": 1741596300}`), &ft))
	require.True(t, ft.Valid())
	assert.False(t, ft.ClockOnly())

	instant, ok := ft.Resolve(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, time.Unix(1741596300, 0).UTC(), instant)
}

func TestFlexTimeUnmarshalUnderscoreSeconds(t *testing.T) {
	var ft FlexTime
	require.NoError(t, json.Unmarshal([]byte(`{"_seconds": 1741596300, "_nanoseconds": 0}`), &ft))
	require.True(t, ft.Valid())

	instant, ok := ft.Resolve(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, time.Unix(1741596300, 0).UTC(), instant)
}

func TestFlexTimeUnmarshalEpochNumber(t *testing.T) {
	var ft FlexTime
	require.NoError(t, json.Unmarshal([]byte(`1741596300`), &ft))
	require.True(t, ft.Valid())

	instant, ok := ft.Resolve(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, time.Unix(1741596300, 0).UTC(), instant)
}

func TestFlexTimeUnmarshalAbsoluteString(t *testing.T) {
	var ft FlexTime
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-10T09:05:00Z"`), &ft))
	require.True(t, ft.Valid())
	assert.False(t, ft.ClockOnly())

	instant, ok := ft.Resolve(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 10, 9, 5, 0, 0, time.UTC), instant)
}

func TestFlexTimeUnmarshalClockOnly(t *testing.T) {
	cases := []struct {
		raw  string
		hour int
		min  int
	}{
		{`"14:30"`, 14, 30},
		{`"02:30 PM"`, 14, 30},
		{`"9:05:30 am"`, 9, 5},
	}
	for _, c := range cases {
		var ft FlexTime
		require.NoError(t, json.Unmarshal([]byte(c.raw), &ft))
		require.True(t, ft.Valid(), "raw %s", c.raw)
		assert.True(t, ft.ClockOnly(), "raw %s", c.raw)

		date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		instant, ok := ft.Resolve(date)
		require.True(t, ok)
		assert.Equal(t, c.hour, instant.Hour(), "raw %s", c.raw)
		assert.Equal(t, c.min, instant.Minute(), "raw %s", c.raw)
		assert.Equal(t, "2025-03-10", instant.Format("2006-01-02"))
	}
}

func TestFlexTimeUnmarshalGarbageNeverFails(t *testing.T) {
	for _, raw := range []string{`"tomorrow morning"`, `true`, `{"minutes": 5}`, `[1, 2]`, `"25:99"`} {
		var ft FlexTime
		require.NoError(t, json.Unmarshal([]byte(raw), &ft), "raw %s", raw)
		assert.False(t, ft.Valid(), "raw %s", raw)

		_, ok := ft.Resolve(time.Now())
		assert.False(t, ok, "raw %s", raw)
	}
}

func TestFlexTimeRoundTrip(t *testing.T) {
	// Stored logs must re-emit the exact payload they were parsed from.
	for _, raw := range []string{`{"seconds":1741596300}`, `"02:30 PM"`, `"not a time"`, `1741596300`} {
		var ft FlexTime
		require.NoError(t, json.Unmarshal([]byte(raw), &ft))
		out, err := json.Marshal(ft)
		require.NoError(t, err)
		assert.JSONEq(t, raw, string(out))
	}
}

func TestParseFlexTime(t *testing.T) {
	ft := ParseFlexTime("17:05")
	require.True(t, ft.Valid())
	assert.True(t, ft.ClockOnly())

	ft = ParseFlexTime("2025-03-10 17:05:00")
	require.True(t, ft.Valid())
	assert.False(t, ft.ClockOnly())

	ft = ParseFlexTime("whenever")
	assert.False(t, ft.Valid())
}

func TestNewFlexTime(t *testing.T) {
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	ft := NewFlexTime(at)
	require.True(t, ft.Valid())

	instant, ok := ft.Resolve(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, at, instant)
}
