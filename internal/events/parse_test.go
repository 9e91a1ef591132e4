package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEventFields(t *testing.T) {
	tests := []struct {
		name string
		html string
		want EventFields
	}{
		{
			name: "all fields present",
			html: `<p><strong>Date:</strong> March 5, 2025</p>` +
				`<p><strong>Location:</strong> Lenexa Farmers Market</p>` +
				`<p><strong>Caption:</strong> Fresh malasadas all morning!</p>`,
			want: EventFields{
				Date:     "March 5, 2025",
				Location: "Lenexa Farmers Market",
				Caption:  "Fresh malasadas all morning!",
			},
		},
		{
			name: "missing location defaults to TBD",
			html: `<p><strong>Date:</strong> March 5, 2025</p>`,
			want: EventFields{Date: "March 5, 2025", Location: "TBD", Caption: ""},
		},
		{
			name: "no markers at all",
			html: `<p>Just a regular page body.</p>`,
			want: EventFields{Date: "TBD", Location: "TBD", Caption: ""},
		},
		{
			name: "inline tags between label and value",
			html: `<p><strong>Date:</strong><em> March 5, 2025</em></p>`,
			want: EventFields{Date: "March 5, 2025", Location: "TBD", Caption: ""},
		},
		{
			name: "entities are decoded",
			html: `<p><strong>Location:</strong> Smith &amp; Sons Hall</p>` +
				`<p><strong>Caption:</strong> Don&#8217;t miss it</p>`,
			want: EventFields{Date: "TBD", Location: "Smith & Sons Hall", Caption: "Don’t miss it"},
		},
		{
			name: "labels are matched case-insensitively",
			html: `<p><strong>DATE:</strong> April 1, 2025</p>`,
			want: EventFields{Date: "April 1, 2025", Location: "TBD", Caption: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseEventFields(tt.html))
		})
	}
}
