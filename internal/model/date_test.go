package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	type payload struct {
		DueDate Date `json:"due_date"`
	}

	data, err := json.Marshal(payload{DueDate: NewDate(2026, time.September, 15)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"due_date":"2026-09-15"}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "2026-09-15", decoded.DueDate.String())
}

func TestDate_UnmarshalRejectsBadFormat(t *testing.T) {
	var d Date
	assert.Error(t, d.UnmarshalJSON([]byte(`"15/09/2026"`)))
	assert.Error(t, d.UnmarshalJSON([]byte(`"2026-13-40"`)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-01-31")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 31, d.Day())

	_, err = ParseDate("tomorrow")
	assert.Error(t, err)
}
