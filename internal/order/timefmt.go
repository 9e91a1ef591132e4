// internal/order/timefmt.go
package order

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatTime12Hour converts a 24-hour "HH:MM" string to "H:MM AM/PM"
// (hour 0 → 12 AM, hour 12 → 12 PM). Input that doesn't look like a clock
// time is returned unchanged.
func FormatTime12Hour(time24 string) string {
	hourStr, minutes, ok := strings.Cut(time24, ":")
	if !ok {
		return time24
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return time24
	}

	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}

	return fmt.Sprintf("%d:%s %s", hour12, minutes, ampm)
}
