package domain

import "errors"

// Таксономия ошибок движка. Сервисы заворачивают их через fmt.Errorf("%w: ..."),
// HTTP-слой разворачивает errors.Is в статус.
//
// Отказ в доступе намеренно отдаётся как ErrNotFound, а не как Forbidden:
// постороннему не подтверждается само существование сущности.
var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
	ErrValidation = errors.New("validation failed")
)
