package models

// PopupEvent is one pop-up announcement derived from a remote content page.
// Date is free text as authored ("March 5, 2025", "TBD", ...) — it is not
// guaranteed to parse as a calendar date.
type PopupEvent struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Location string `json:"location"`
	Caption  string `json:"caption"`
	ImageURL string `json:"imageUrl,omitempty"`
}
