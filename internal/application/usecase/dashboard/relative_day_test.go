package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sales-dashboard/backend/internal/domain/entity"
)

func TestRelativeDayClassifier_Classify(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		strict   bool
		input    string
		expected entity.RelativeDay
	}{
		{"today", false, "3/15/2024", entity.RelativeDayToday},
		{"today zero padded", false, "03/15/2024", entity.RelativeDayToday},
		{"today two digit year", false, "3/15/24", entity.RelativeDayToday},
		{"yesterday", false, "3/14/2024", entity.RelativeDayYesterday},
		{"seven days ago without strict mode", false, "3/8/2024", entity.RelativeDayNone},
		{"seven days ago in strict mode", true, "3/8/2024", entity.RelativeDayLastWeek},
		{"today wins in strict mode", true, "3/15/2024", entity.RelativeDayToday},
		{"six days ago in strict mode", true, "3/9/2024", entity.RelativeDayNone},
		{"older date", false, "1/1/2020", entity.RelativeDayNone},
		{"not a slash date", false, "2024-03-15", entity.RelativeDayNone},
		{"garbage", false, "whenever", entity.RelativeDayNone},
		{"empty", false, "", entity.RelativeDayNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := NewRelativeDayClassifier(tt.strict)
			assert.Equal(t, tt.expected, classifier.Classify(tt.input, now))
		})
	}
}

func TestRelativeDayClassifier_MonthBoundary(t *testing.T) {
	now := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)
	classifier := NewRelativeDayClassifier(true)

	assert.Equal(t, entity.RelativeDayYesterday, classifier.Classify("2/29/2024", now))
	assert.Equal(t, entity.RelativeDayLastWeek, classifier.Classify("2/23/2024", now))
}
