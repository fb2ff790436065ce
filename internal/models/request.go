package models

import "time"

type ItemRequest struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	RequesterID int64     `json:"requester_id"`
	Created     time.Time `json:"created"`
}

// ItemRequestDetails attaches the items answering the request. The relation
// is derived from items.request_id, nothing is stored on the request itself.
type ItemRequestDetails struct {
	ItemRequest
	Items []Item `json:"items"`
}
