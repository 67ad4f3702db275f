package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected string
	}{
		{
			name:     "slash separated YYYY/MM/DD",
			lines:    []string{"2024/01/15 14:32"},
			expected: "2024-01-15",
		},
		{
			name:     "kanji separated date",
			lines:    []string{"2024年1月15日"},
			expected: "2024-01-15",
		},
		{
			name:     "MM/DD/YYYY",
			lines:    []string{"01/15/2024"},
			expected: "2024-01-15",
		},
		{
			name:     "two digit year",
			lines:    []string{"24/01/15"},
			expected: "2024-01-15",
		},
		{
			name:     "reiwa era",
			lines:    []string{"令和6年1月15日"},
			expected: "2024-01-15",
		},
		{
			name:     "year outside window is skipped",
			lines:    []string{"2035/01/15", "2024/02/03"},
			expected: "2024-02-03",
		},
		{
			name:     "heisei era resolves outside window",
			lines:    []string{"平成30年5月1日"}, // 2018, below the minimum year
			expected: "",
		},
		{
			name:     "invalid month rejected",
			lines:    []string{"2024/13/01"},
			expected: "",
		},
		{
			name:     "invalid day rejected",
			lines:    []string{"2024/01/32"},
			expected: "",
		},
		{
			name:     "no date at all",
			lines:    []string{"セブン-イレブン", "おにぎり ¥150"},
			expected: "",
		},
		{
			name:     "first acceptable match wins",
			lines:    []string{"2024/01/15", "2024/01/16"},
			expected: "2024-01-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Date(tt.lines, DefaultMinYear, DefaultMaxYear))
		})
	}
}

func TestDate_CustomYearWindow(t *testing.T) {
	assert.Equal(t, "2018-05-01", Date([]string{"平成30年5月1日"}, 2015, 2030))
}
