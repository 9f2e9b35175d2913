package dashboard

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sales-dashboard/backend/internal/domain/entity"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"float", 1234.5, "$1,234.50"},
		{"integer", 42, "$42.00"},
		{"large", int64(1000000), "$1,000,000.00"},
		{"negative", -12.0, "-$12.00"},
		{"rounds half away from zero", 0.005, "$0.01"},
		{"amount", entity.Amount(99.999), "$100.00"},
		{"decimal", decimal.RequireFromString("2500.1"), "$2,500.10"},
		{"numeric string", "1999.99", "$1,999.99"},
		{"json number", json.Number("7"), "$7.00"},
		{"unsigned", uint64(5), "$5.00"},
		{"zero", 0, "$0.00"},
		{"nil", nil, "$0.00"},
		{"non numeric string", "abc", "$0.00"},
		{"empty string", "", "$0.00"},
		{"nan", math.NaN(), "$0.00"},
		{"infinity", math.Inf(-1), "$0.00"},
		{"nan amount", entity.Amount(math.NaN()), "$0.00"},
		{"unsupported type", struct{}{}, "$0.00"},
		{"beyond float precision", "90071992547409.93", "$90,071,992,547,409.93"},
		{"beyond int64 dollars", "123456789012345678901.99", "$123,456,789,012,345,678,901.99"},
		{"large negative decimal", decimal.RequireFromString("-9007199254740993.115"), "-$9,007,199,254,740,993.12"},
		{"max uint64", uint64(math.MaxUint64), "$18,446,744,073,709,551,615.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatUSD(tt.value))
		})
	}
}
