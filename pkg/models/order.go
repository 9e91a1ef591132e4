package models

// CookieOrder is the Moore Homes cookie-order payload. Quantities are keyed
// by cookie name and must match the fixed catalog; the relay re-checks the
// catalog, the 4–12 total bound and the pickup-date rules server-side.
type CookieOrder struct {
	CouponCode          string         `json:"couponCode" validate:"required"`
	ClientName          string         `json:"clientName" validate:"required"`
	CellPhoneNumber     string         `json:"cellPhoneNumber" validate:"required"`
	EmailAddress        string         `json:"emailAddress" validate:"required"`
	ReceiveTexts        bool           `json:"receiveTexts"`
	CookieQuantities    map[string]int `json:"cookieQuantities" validate:"required,dive,min=0,max=12"`
	PreferredPickupDate string         `json:"preferredPickupDate" validate:"required,datetime=2006-01-02"`
	PreferredPickupTime string         `json:"preferredPickupTime" validate:"required,datetime=15:04"`
}

// TotalCookies sums every quantity in the order.
func (o *CookieOrder) TotalCookies() int {
	total := 0
	for _, qty := range o.CookieQuantities {
		total += qty
	}
	return total
}
