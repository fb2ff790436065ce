package models

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserPatch несёт частичное обновление: nil-поле оставляет сохранённое значение.
type UserPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
