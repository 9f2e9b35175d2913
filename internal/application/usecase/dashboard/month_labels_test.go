package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sales-dashboard/backend/internal/domain/entity"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		label    string
		expected time.Month
		ok       bool
	}{
		{"Jan", time.January, true},
		{"JAN", time.January, true},
		{"january", time.January, true},
		{" February ", time.February, true},
		{"Sept", time.September, true},
		{"SEPT", time.September, true},
		{"sep", time.September, true},
		{"September", time.September, true},
		{"12", time.December, true},
		{"03", time.March, true},
		{"Smarch", 0, false},
		{"", 0, false},
		{"13", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			month, ok := ParseMonth(tt.label)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, month)
		})
	}
}

func TestQuarterForMonth(t *testing.T) {
	expected := map[string]entity.Quarter{
		"Jan": entity.QuarterQ1, "Feb": entity.QuarterQ1, "Mar": entity.QuarterQ1,
		"Apr": entity.QuarterQ2, "May": entity.QuarterQ2, "Jun": entity.QuarterQ2,
		"Jul": entity.QuarterQ3, "Aug": entity.QuarterQ3, "Sept": entity.QuarterQ3,
		"Oct": entity.QuarterQ4, "Nov": entity.QuarterQ4, "december": entity.QuarterQ4,
	}

	for label, quarter := range expected {
		got, ok := QuarterForMonth(label)
		assert.True(t, ok, label)
		assert.Equal(t, quarter, got, label)
	}

	_, ok := QuarterForMonth("Q1")
	assert.False(t, ok)
}

func TestCategories(t *testing.T) {
	assert.Equal(t,
		[]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		MonthCategories(),
	)
	assert.Equal(t, []string{"Q1", "Q2", "Q3", "Q4"}, QuarterCategories())
}
