package ui

import (
	"github.com/google/uuid"
)

// ActionDoneMsg carries the final status of an action back to the screen
// that started it.
type ActionDoneMsg struct {
	ScreenID uuid.UUID
	Status   string
}
