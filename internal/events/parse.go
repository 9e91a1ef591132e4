// internal/events/parse.go
package events

import (
	"regexp"
	"strings"

	"mahalo-service/utils"
)

// Pop-up pages follow an authoring convention agreed with the content
// editors: the body carries bold-labelled fields, e.g.
//
//	<strong>Date:</strong> March 5, 2025
//	<strong>Location:</strong> Lenexa Farmers Market
//	<strong>Caption:</strong> Fresh malasadas all morning!
//
// The label may be followed by further inline tags before the value; the
// value runs to the next tag. This is pattern matching over that convention,
// not an HTML parse — a page authored differently yields TBD fields.
var (
	dateRe     = regexp.MustCompile(`(?i)<strong>Date:</strong>(?:<[^>]*>)*\s*([^<]+)`)
	locationRe = regexp.MustCompile(`(?i)<strong>Location:</strong>(?:<[^>]*>)*\s*([^<]+)`)
	captionRe  = regexp.MustCompile(`(?i)<strong>Caption:</strong>\s*([^<]+)`)
)

// dateTBD marks a field the page didn't provide. TBD events are kept and
// sorted after dated ones.
const dateTBD = "TBD"

// EventFields are the values extracted from one pop-up page body.
type EventFields struct {
	Date     string
	Location string
	Caption  string
}

// ParseEventFields extracts the date, location and caption fields from a
// page's HTML body. Missing date or location default to "TBD", missing
// caption to "". Extracted values are entity-decoded and trimmed.
func ParseEventFields(html string) EventFields {
	return EventFields{
		Date:     extract(dateRe, html, dateTBD),
		Location: extract(locationRe, html, dateTBD),
		Caption:  extract(captionRe, html, ""),
	}
}

func extract(re *regexp.Regexp, html, fallback string) string {
	m := re.FindStringSubmatch(html)
	if m == nil {
		return fallback
	}
	value := strings.TrimSpace(m[1])
	if value == "" {
		return fallback
	}
	return utils.DecodeEntities(value)
}
