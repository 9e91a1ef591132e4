// internal/order/catalog.go
package order

// Catalog is the closed set of cookies offered on the Moore Homes order
// form, in menu order. Quantity maps are validated against it — unknown
// names are rejected — and the CSV selection column is emitted in this
// order so output stays deterministic.
var Catalog = []string{
	"Cookies n' Cream Cookie",
	"Hawaiian Cookie",
	"Confetti Cookie",
	"Chocolate Chip Cookie",
}

// Total-cookie bounds for one order. The menu copy and the enforced rule
// both say 4; an order below the minimum or above the maximum is rejected.
const (
	MinTotalCookies = 4
	MaxTotalCookies = 12
)

// IsCatalogItem reports whether name is one of the offered cookies.
func IsCatalogItem(name string) bool {
	for _, item := range Catalog {
		if item == name {
			return true
		}
	}
	return false
}
