package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "empty input",
			raw:      "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			raw:      "   \n\t\n  ",
			expected: nil,
		},
		{
			name:     "trims and drops empty lines",
			raw:      "  セブン-イレブン  \n\nおにぎり ¥150\n   \n合計 ¥270",
			expected: []string{"セブン-イレブン", "おにぎり ¥150", "合計 ¥270"},
		},
		{
			name:     "folds full-width digits",
			raw:      "合計 ￥１２３４",
			expected: []string{"合計 ¥1234"},
		},
		{
			name:     "folds full-width symbols and collapses whitespace",
			raw:      "お茶　　１２０円\n２０２４／０１／１５",
			expected: []string{"お茶 120円", "2024/01/15"},
		},
		{
			name:     "collapses runs of mixed whitespace",
			raw:      "ポテト\t\t ¥300",
			expected: []string{"ポテト ¥300"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Lines(tt.raw))
		})
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, "¥980", Fold("￥９８０"))
	assert.Equal(t, "12:34", Fold("１２：３４"))
	assert.Equal(t, "(*)", Fold("（＊）"))
	assert.Equal(t, "already ascii", Fold("already ascii"))
}
