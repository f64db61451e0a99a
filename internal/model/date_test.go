package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.June, 15)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-15"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.SameDay(d))
}

func TestDateUnmarshal_Timestamp(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-06-15T10:30:00Z"`), &d))
	assert.True(t, d.SameDay(NewDate(2025, time.June, 15)))
}

func TestDateUnmarshal_Empty(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())
}

func TestDateZeroMarshalsEmpty(t *testing.T) {
	data, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, `""`, string(data))
}

func TestDaysSince(t *testing.T) {
	a := NewDate(2025, time.January, 1)
	b := NewDate(2025, time.January, 31)
	assert.Equal(t, 30, b.DaysSince(a))
	assert.Equal(t, -30, a.DaysSince(b))
	assert.Equal(t, 0, a.DaysSince(a))
}

func TestAddMonths_EndOfMonthRollsOver(t *testing.T) {
	// Jan 31 + 1 month normalizes past February; this rollover is load
	// bearing for recurrence stepping.
	d := NewDate(2025, time.January, 31).AddMonths(1)
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 3, d.Day())
}

func TestAddMonths_Quarterly(t *testing.T) {
	d := NewDate(2025, time.January, 15).AddMonths(3)
	assert.True(t, d.SameDay(NewDate(2025, time.April, 15)))
}
