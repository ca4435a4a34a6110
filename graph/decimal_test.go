package graph

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalDecimal(t *testing.T) {
	cases := []struct {
		in       interface{}
		expected string
	}{
		{"1.25", "1.25"},
		{"1,250.50", "1250.5"},
		{" 0.875 kg ", "0.875"},
		{json.Number("2.4"), "2.4"},
		{int64(3), "3"},
		{1.5, "1.5"},
	}
	for _, tc := range cases {
		d, err := UnmarshalDecimal(tc.in)
		require.NoError(t, err, "UnmarshalDecimal(%v)", tc.in)
		assert.Equal(t, tc.expected, d.String())
	}
}

func TestUnmarshalDecimalRejects(t *testing.T) {
	for _, in := range []interface{}{"", "abc", true, nil} {
		_, err := UnmarshalDecimal(in)
		assert.Error(t, err, "UnmarshalDecimal(%v)", in)
	}
}

func TestMarshalDecimalQuotes(t *testing.T) {
	var buf bytes.Buffer
	MarshalDecimal(decimal.RequireFromString("1.050")).MarshalGQL(&buf)
	assert.Equal(t, `"1.05"`, buf.String())
}
