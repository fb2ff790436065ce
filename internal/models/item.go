package models

type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"owner_id"`
	RequestID   *int64 `json:"request_id,omitempty"`
}

// ItemPatch несёт частичное обновление: nil-поле оставляет сохранённое значение.
type ItemPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

// BookingRef is the short booking reference embedded into item views.
type BookingRef struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"booker_id"`
}

// ItemDetails is an item as returned to a viewer: the item itself plus the
// owner-scoped last/next booking and all comments.
type ItemDetails struct {
	Item
	LastBooking *BookingRef `json:"last_booking,omitempty"`
	NextBooking *BookingRef `json:"next_booking,omitempty"`
	Comments    []Comment   `json:"comments"`
}
