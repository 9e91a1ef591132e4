// internal/order/csv.go
package order

import (
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"mahalo-service/pkg/models"
)

// csvHeader is the fixed 9-column header of the order attachment.
var csvHeader = []string{
	"Coupon Code",
	"Client Name",
	"Cell Phone Number",
	"Email Address",
	"Receive Text Updates",
	"Preferred Pickup Date",
	"Preferred Pickup Time",
	"Total Cookies",
	"Cookie Selection",
}

// Selection formats the ordered cookies as "name: qty" pairs joined by "; ",
// skipping zero quantities. Pairs come out in catalog order — quantity maps
// are unordered and the attachment has to be reproducible.
func Selection(quantities map[string]int) string {
	pairs := make([]string, 0, len(quantities))
	for _, name := range Catalog {
		if qty := quantities[name]; qty > 0 {
			pairs = append(pairs, fmt.Sprintf("%s: %d", name, qty))
		}
	}
	return strings.Join(pairs, "; ")
}

// SelectionLines is the newline-joined form used in the email body.
func SelectionLines(quantities map[string]int) string {
	pairs := make([]string, 0, len(quantities))
	for _, name := range Catalog {
		if qty := quantities[name]; qty > 0 {
			pairs = append(pairs, fmt.Sprintf("%s: %d", name, qty))
		}
	}
	return strings.Join(pairs, "\n")
}

// BuildCSV renders the one-row order summary attached to the order email.
// Fields containing commas, quotes or newlines get standard CSV quoting.
func BuildCSV(o *models.CookieOrder, formattedPickupTime string) (string, error) {
	receiveTexts := "No"
	if o.ReceiveTexts {
		receiveTexts = "Yes"
	}

	row := []string{
		o.CouponCode,
		o.ClientName,
		o.CellPhoneNumber,
		o.EmailAddress,
		receiveTexts,
		o.PreferredPickupDate,
		formattedPickupTime,
		fmt.Sprintf("%d", o.TotalCookies()),
		Selection(o.CookieQuantities),
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)
	if err := w.WriteAll([][]string{csvHeader, row}); err != nil {
		return "", fmt.Errorf("write order csv: %w", err)
	}
	return buf.String(), nil
}

// AttachmentFilename names the CSV attachment after the coupon code and the
// UTC date the order email is sent.
func AttachmentFilename(couponCode string, sentAt time.Time) string {
	return fmt.Sprintf("moore_homes_order_%s_%s.csv", couponCode, sentAt.UTC().Format("2006-01-02"))
}
