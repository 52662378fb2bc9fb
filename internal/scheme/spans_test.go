package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripSpans(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		spans []Span
		want  string
	}{
		{"no spans", " x ", nil, "x"},
		{"single", "白色衬衫", []Span{{0, 6}}, "衬衫"},
		{"overlapping", "abcdef", []Span{{1, 3}, {2, 4}}, "aef"},
		{"unordered", "abcdef", []Span{{4, 5}, {0, 1}}, "bcdf"},
		{"clamped", "abcdef", []Span{{-1, 2}, {5, 100}}, "cde"},
		{"nested", "abcdef", []Span{{0, 5}, {1, 2}}, "f"},
		{"empty span ignored", "abc", []Span{{1, 1}}, "abc"},
		{"everything", "abc", []Span{{0, 3}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripSpans(tt.in, tt.spans))
		})
	}
}
