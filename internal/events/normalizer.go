// internal/events/normalizer.go
package events

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"mahalo-service/pkg/models"
	"mahalo-service/utils"
)

// titlePrefix marks the pages that announce pop-up events.
const titlePrefix = "Pop-up:"

// Normalizer turns the site's raw page collection into an ordered list of
// upcoming pop-up events. It holds no state and caches nothing — every call
// fetches fresh.
type Normalizer struct {
	client *Client
}

func NewNormalizer(client *Client) *Normalizer {
	return &Normalizer{client: client}
}

// UpcomingEvents fetches the page collection and returns the upcoming
// pop-up events, earliest first.
func (n *Normalizer) UpcomingEvents(ctx context.Context) ([]models.PopupEvent, error) {
	pages, err := n.client.FetchPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch pop-up pages: %w", err)
	}
	return Normalize(pages, time.Now()), nil
}

// Normalize filters pages to pop-up announcements, extracts their fields,
// drops events dated before the start of now's day and sorts the rest
// ascending by date. Events whose date is TBD or unparseable are kept
// (fail-open) and sort after every dated event.
func Normalize(pages []Page, now time.Time) []models.PopupEvent {
	events := make([]models.PopupEvent, 0, len(pages))
	for i := range pages {
		p := &pages[i]
		if !strings.HasPrefix(p.Title.Rendered, titlePrefix) {
			continue
		}
		fields := ParseEventFields(p.Content.Rendered)
		title := strings.TrimSpace(strings.TrimPrefix(p.Title.Rendered, titlePrefix))
		events = append(events, models.PopupEvent{
			ID:       p.ID,
			Title:    utils.DecodeEntities(title),
			Date:     fields.Date,
			Location: fields.Location,
			Caption:  fields.Caption,
			ImageURL: p.FeaturedImageURL(),
		})
	}

	today := startOfDay(now)
	upcoming := events[:0]
	for _, ev := range events {
		if d, ok := parseEventDate(ev.Date); ok && startOfDay(d).Before(today) {
			continue
		}
		upcoming = append(upcoming, ev)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return eventBefore(upcoming[i], upcoming[j])
	})
	return upcoming
}

// parseEventDate parses the free-text date an editor wrote ("March 5, 2025",
// "2025-03-05", ...). TBD and anything unparseable report ok=false.
func parseEventDate(s string) (time.Time, bool) {
	if s == dateTBD {
		return time.Time{}, false
	}
	d, err := dateparse.ParseLocal(s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// eventBefore orders events ascending by parsed date. TBD sorts last; when
// either date fails to parse the raw text decides lexicographically.
func eventBefore(a, b models.PopupEvent) bool {
	if a.Date == dateTBD {
		return false
	}
	if b.Date == dateTBD {
		return true
	}
	da, okA := parseEventDate(a.Date)
	db, okB := parseEventDate(b.Date)
	if !okA || !okB {
		return a.Date < b.Date
	}
	return da.Before(db)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
