package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime12Hour(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00:00", "12:00 AM"},
		{"12:00", "12:00 PM"},
		{"13:05", "1:05 PM"},
		{"08:30", "8:30 AM"},
		{"11:59", "11:59 AM"},
		{"23:15", "11:15 PM"},
		{"", ""},
		{"noon", "noon"}, // not a clock time, passed through
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTime12Hour(tt.in))
		})
	}
}
