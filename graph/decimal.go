package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/99designs/gqlgen/graphql"
	"github.com/shopspring/decimal"
)

// MarshalDecimal writes the value as a JSON string so no precision is lost.
func MarshalDecimal(d decimal.Decimal) graphql.Marshaler {
	return graphql.WriterFunc(func(w io.Writer) {
		io.WriteString(w, strconv.Quote(d.String()))
	})
}

func UnmarshalDecimal(i interface{}) (decimal.Decimal, error) {
	switch v := i.(type) {
	case string:
		// Accept user-formatted strings like "1,250.5" or "1.2 kg".
		s := strings.TrimSpace(v)
		s = strings.ReplaceAll(s, ",", "")
		s = strings.TrimSpace(strings.TrimSuffix(strings.ToLower(s), "kg"))
		if s == "" {
			return decimal.Zero, fmt.Errorf("invalid decimal %q", v)
		}
		val, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid decimal %q", v)
		}
		return val, nil
	case json.Number:
		return decimal.NewFromString(v.String())
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	default:
		return decimal.Zero, fmt.Errorf("invalid decimal %T", i)
	}
}
