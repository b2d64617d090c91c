package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want TimeOfDay
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"13:30", 810},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ParseTimeOfDay(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, tc.in, got.String())
	}
}

func TestParseTimeOfDayRejects(t *testing.T) {
	for _, in := range []string{"", "9", "24:00", "12:60", "noon", "-1:30"} {
		_, err := ParseTimeOfDay(in)
		assert.Error(t, err, in)
	}
}

func TestTimeOfDayJSONRoundTrip(t *testing.T) {
	slot := Slot{Time: 870, Available: true}

	raw, err := json.Marshal(slot)
	require.NoError(t, err)
	assert.JSONEq(t, `{"time":"14:30","available":true}`, string(raw))

	var back Slot
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, slot, back)
}

func TestTimeOfDayUnmarshalRejectsBadInput(t *testing.T) {
	var v TimeOfDay
	assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &v))
	assert.Error(t, json.Unmarshal([]byte(`540`), &v))
}
