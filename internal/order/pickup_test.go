package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func localDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestMinPickupDate(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			// +1 lands on Thursday, no adjustment.
			name: "wednesday order",
			now:  time.Date(2025, time.March, 5, 10, 30, 0, 0, time.Local),
			want: localDate(2025, time.March, 6),
		},
		{
			// Saturday gets the 2-day offset, landing on Monday, which
			// rolls to Tuesday.
			name: "saturday order rolls past monday",
			now:  time.Date(2025, time.March, 1, 9, 0, 0, 0, time.Local),
			want: localDate(2025, time.March, 4),
		},
		{
			// +1 from Sunday is Monday; closed, so Tuesday.
			name: "sunday order rolls to tuesday",
			now:  time.Date(2025, time.March, 2, 14, 0, 0, 0, time.Local),
			want: localDate(2025, time.March, 4),
		},
		{
			// +1 from Friday is Saturday; open, no adjustment.
			name: "friday order",
			now:  time.Date(2025, time.March, 7, 8, 0, 0, 0, time.Local),
			want: localDate(2025, time.March, 8),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MinPickupDate(tt.now)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 0, got.Hour(), "result must be a bare date")
		})
	}
}

func TestIsValidPickupDate(t *testing.T) {
	tests := []struct {
		name    string
		dateStr string
		want    bool
	}{
		{"tuesday", "2025-03-04", true},
		{"wednesday", "2025-03-05", true},
		{"saturday", "2025-03-08", true},
		{"sunday is closed", "2025-03-09", false},
		{"monday is closed", "2025-03-03", false},
		{"empty input", "", false},
		{"unparseable input", "not-a-date", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPickupDate(tt.dateStr))
		})
	}
}
