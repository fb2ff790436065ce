package gateway

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"shareit/internal/models"
)

// Валидация формы запроса живет только на шлюзе: до серверного яруса
// доходят уже проверенные тела и параметры.

type bookingBody struct {
	ItemID int64      `json:"item_id"`
	Start  *time.Time `json:"start"`
	End    *time.Time `json:"end"`
}

func validateBookingBody(raw []byte, now time.Time) error {
	var body bookingBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return fmt.Errorf("invalid JSON body")
	}
	if body.ItemID <= 0 {
		return fmt.Errorf("item_id is required")
	}
	if body.Start == nil || body.End == nil {
		return fmt.Errorf("start and end are required")
	}
	if !body.Start.After(now) || !body.End.After(now) {
		return fmt.Errorf("start and end must be in the future")
	}
	if !body.Start.Before(*body.End) {
		return fmt.Errorf("start must be before end")
	}
	return nil
}

type userBody struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func validateUserCreate(raw []byte) error {
	var body userBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return fmt.Errorf("invalid JSON body")
	}
	if body.Name == nil || strings.TrimSpace(*body.Name) == "" {
		return fmt.Errorf("name must not be blank")
	}
	if body.Email == nil || strings.TrimSpace(*body.Email) == "" {
		return fmt.Errorf("email must not be blank")
	}
	if !strings.Contains(*body.Email, "@") {
		return fmt.Errorf("email must be a valid address")
	}
	return nil
}

func validateUserPatch(raw []byte) error {
	var body userBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return fmt.Errorf("invalid JSON body")
	}
	if body.Email != nil && !strings.Contains(*body.Email, "@") {
		return fmt.Errorf("email must be a valid address")
	}
	return nil
}

type itemBody struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

func validateItemCreate(raw []byte) error {
	var body itemBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return fmt.Errorf("invalid JSON body")
	}
	if body.Name == nil || strings.TrimSpace(*body.Name) == "" {
		return fmt.Errorf("name must not be blank")
	}
	if body.Description == nil || strings.TrimSpace(*body.Description) == "" {
		return fmt.Errorf("description must not be blank")
	}
	if body.Available == nil {
		return fmt.Errorf("available is required")
	}
	return nil
}

func validateCommentBody(raw []byte) error {
	var body struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return fmt.Errorf("invalid JSON body")
	}
	if strings.TrimSpace(body.Text) == "" {
		return fmt.Errorf("text must not be blank")
	}
	return nil
}

func validateRequestBody(raw []byte) error {
	var body struct {
		Description string `json:"description"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return fmt.Errorf("invalid JSON body")
	}
	if strings.TrimSpace(body.Description) == "" {
		return fmt.Errorf("description must not be blank")
	}
	return nil
}

func validatePaging(fromRaw, sizeRaw string) error {
	if fromRaw != "" {
		from, err := strconv.Atoi(fromRaw)
		if err != nil || from < 0 {
			return fmt.Errorf("from must be a non-negative number")
		}
	}
	if sizeRaw != "" {
		size, err := strconv.Atoi(sizeRaw)
		if err != nil || size <= 0 {
			return fmt.Errorf("size must be a positive number")
		}
	}
	return nil
}

func validateState(state string) error {
	switch state {
	case "", models.StateAll, models.StateCurrent, models.StatePast,
		models.StateFuture, models.StateWaiting, models.StateRejected:
		return nil
	}
	return fmt.Errorf("Unknown state: %s", state)
}
