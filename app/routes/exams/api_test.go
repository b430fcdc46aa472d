package exams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMark(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"plain number", "85", 85},
		{"zero", "0", 0},
		{"surrounding whitespace", "  42 ", 42},
		{"negative passes through", "-5", -5},
		{"non-numeric coerces to zero", "abc", 0},
		{"decimal coerces to zero", "7.5", 0},
		{"empty coerces to zero", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMark(tt.input))
		})
	}
}
