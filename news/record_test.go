package news_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pevans/newswatch/news"
)

// TestNormalizeTitle verifies whitespace normalization rules
func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain title", "Breaking News", "Breaking News"},
		{"leading and trailing spaces", "  Breaking News  ", "Breaking News"},
		{"internal runs collapsed", "Breaking    News", "Breaking News"},
		{"newlines and tabs", "Breaking\n\tNews\n", "Breaking News"},
		{"only whitespace", " \n\t ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, news.NormalizeTitle(tt.input))
		})
	}
}
