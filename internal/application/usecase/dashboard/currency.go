// Package dashboard contains the sales dashboard use cases and the temporal
// aggregation helpers they are built on.
package dashboard

import (
	"encoding/json"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/sales-dashboard/backend/internal/domain/entity"
)

// FormatUSD renders v as US dollars, e.g. "$1,234.50" or "-$12.00".
// Anything that is not a finite number, nil included, renders as "$0.00".
func FormatUSD(v any) string {
	amount, ok := toDecimal(v)
	if !ok {
		amount = decimal.Zero
	}
	amount = amount.Round(2)

	fixed := amount.Abs().StringFixed(2)
	dot := strings.IndexByte(fixed, '.')
	formatted := groupThousands(fixed[:dot]) + fixed[dot:]

	if amount.IsNegative() {
		return "-$" + formatted
	}
	return "$" + formatted
}

// groupThousands inserts US digit grouping into a string of decimal digits.
// Values that fit an int64 go through the locale printer, which formats
// integers exactly.
func groupThousands(digits string) string {
	whole, ok := new(big.Int).SetString(digits, 10)
	if ok && whole.IsInt64() {
		printer := message.NewPrinter(language.AmericanEnglish)
		return printer.Sprint(number.Decimal(whole.Int64()))
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return n, true
	case *decimal.Decimal:
		if n == nil {
			return decimal.Zero, false
		}
		return *n, true
	case entity.Amount:
		return fromFloat(n.Float64())
	case *entity.Amount:
		if n == nil {
			return decimal.Zero, false
		}
		return fromFloat(n.Float64())
	case float64:
		return fromFloat(n)
	case float32:
		return fromFloat(float64(n))
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int8:
		return decimal.NewFromInt(int64(n)), true
	case int16:
		return decimal.NewFromInt(int64(n)), true
	case int32:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case uint:
		return fromUint(uint64(n)), true
	case uint8:
		return decimal.NewFromInt(int64(n)), true
	case uint16:
		return decimal.NewFromInt(int64(n)), true
	case uint32:
		return decimal.NewFromInt(int64(n)), true
	case uint64:
		return fromUint(n), true
	case json.Number:
		return fromString(string(n))
	case string:
		return fromString(n)
	default:
		return decimal.Zero, false
	}
}

func fromFloat(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}

func fromUint(u uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)
}

func fromString(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
