package models

import "time"

type Booking struct {
	ID       int64     `json:"id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Status   string    `json:"status"` // WAITING, APPROVED, REJECTED
	ItemID   int64     `json:"item_id"`
	ItemName string    `json:"item_name"`
	BookerID int64     `json:"booker_id"`
	// OwnerID дублирует владельца вещи для проверок доступа, в таблицу
	// bookings не пишется.
	OwnerID int64 `json:"-"`
}
