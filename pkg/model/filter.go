package model

// Filter narrows the venue catalog. The zero value matches every venue.
type Filter struct {
	Location   string   `json:"location"`
	MinPrice   float64  `json:"min_price"`
	MaxPrice   float64  `json:"max_price"` // <= 0 means no upper bound
	GuestCount int      `json:"guest_count"`
	Amenities  []string `json:"amenities"`
	Date       string   `json:"date,omitempty"`
}
