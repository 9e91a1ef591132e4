package templates

import (
	_ "embed"
	"html/template"
	"strings"
)

//go:embed order.html
var orderHTML string

var orderTmpl = template.Must(template.New("order").Parse(orderHTML))

// OrderData holds the fields rendered into the cookie-order email body.
// Selection is the newline-joined "name: qty" lines for quantities > 0;
// PickupTime is already formatted as 12-hour clock text.
type OrderData struct {
	CouponCode   string
	ClientName   string
	CellPhone    string
	Email        string
	ReceiveTexts string
	TotalCookies int
	Selection    string
	PickupDate   string
	PickupTime   string
}

// RenderOrderEmail renders the HTML body for a Moore Homes cookie order.
func RenderOrderEmail(data OrderData) (string, error) {
	var buf strings.Builder
	err := orderTmpl.Execute(&buf, data)
	return buf.String(), err
}
