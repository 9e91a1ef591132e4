package order

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mahalo-service/pkg/models"
)

func sampleOrder() *models.CookieOrder {
	return &models.CookieOrder{
		CouponCode:      "MOORE25",
		ClientName:      "Jamie Moore",
		CellPhoneNumber: "913-555-0142",
		EmailAddress:    "jamie@example.com",
		ReceiveTexts:    true,
		CookieQuantities: map[string]int{
			"Cookies n' Cream Cookie": 3,
			"Hawaiian Cookie":         0,
			"Confetti Cookie":         5,
			"Chocolate Chip Cookie":   0,
		},
		PreferredPickupDate: "2025-03-07",
		PreferredPickupTime: "09:30",
	}
}

func TestSelection(t *testing.T) {
	o := sampleOrder()
	assert.Equal(t, "Cookies n' Cream Cookie: 3; Confetti Cookie: 5", Selection(o.CookieQuantities))
	assert.Equal(t, 8, o.TotalCookies())
}

func TestSelectionEmpty(t *testing.T) {
	assert.Equal(t, "", Selection(map[string]int{"Hawaiian Cookie": 0}))
}

func TestSelectionLines(t *testing.T) {
	o := sampleOrder()
	assert.Equal(t, "Cookies n' Cream Cookie: 3\nConfetti Cookie: 5", SelectionLines(o.CookieQuantities))
}

func TestBuildCSV(t *testing.T) {
	o := sampleOrder()
	content, err := BuildCSV(o, "9:30 AM")
	require.NoError(t, err)

	r := csv.NewReader(strings.NewReader(content))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "header plus exactly one data row")

	assert.Equal(t, []string{
		"Coupon Code", "Client Name", "Cell Phone Number", "Email Address",
		"Receive Text Updates", "Preferred Pickup Date", "Preferred Pickup Time",
		"Total Cookies", "Cookie Selection",
	}, records[0])

	assert.Equal(t, []string{
		"MOORE25", "Jamie Moore", "913-555-0142", "jamie@example.com",
		"Yes", "2025-03-07", "9:30 AM",
		"8", "Cookies n' Cream Cookie: 3; Confetti Cookie: 5",
	}, records[1])
}

func TestBuildCSVEscapesTrickyFields(t *testing.T) {
	o := sampleOrder()
	o.ClientName = `Moore, "Jamie"` + "\nJr."
	o.ReceiveTexts = false

	content, err := BuildCSV(o, "9:30 AM")
	require.NoError(t, err)

	// A standard CSV reader must get the original field values back.
	r := csv.NewReader(strings.NewReader(content))
	records, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, o.ClientName, records[1][1])
	assert.Equal(t, "No", records[1][4])
}

func TestAttachmentFilename(t *testing.T) {
	sentAt := time.Date(2025, time.March, 6, 23, 45, 0, 0, time.UTC)
	assert.Equal(t, "moore_homes_order_MOORE25_2025-03-06.csv", AttachmentFilename("MOORE25", sentAt))
}

func TestIsCatalogItem(t *testing.T) {
	assert.True(t, IsCatalogItem("Hawaiian Cookie"))
	assert.False(t, IsCatalogItem("Snickerdoodle"))
}
