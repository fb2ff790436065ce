package models

const (
	StatusWaiting  = "WAITING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

const (
	StateAll      = "ALL"
	StateCurrent  = "CURRENT"
	StatePast     = "PAST"
	StateFuture   = "FUTURE"
	StateWaiting  = "WAITING"
	StateRejected = "REJECTED"
)

const (
	// HeaderUserID несёт идентификатор вызывающего пользователя.
	// Значение принимается как аутентифицированное без проверки.
	HeaderUserID = "X-Sharer-User-Id"

	// DefaultPageFrom и DefaultPageSize — пагинация по умолчанию.
	DefaultPageFrom = 0
	DefaultPageSize = 20
)
