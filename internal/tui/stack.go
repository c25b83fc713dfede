package tui

import (
	"github.com/google/uuid"
)

// ScreenStack is the navigation history. The last screen is visible.
// A stack is never empty.
type ScreenStack struct {
	screens []Screen
}

// NewScreenStack creates a stack holding root.
func NewScreenStack(root Screen) *ScreenStack {
	return &ScreenStack{screens: []Screen{root}}
}

// Push makes s the visible screen.
func (s *ScreenStack) Push(screen Screen) {
	s.screens = append(s.screens, screen)
}

// Pop removes the visible screen. Popping the root is a no-op that
// returns false.
func (s *ScreenStack) Pop() (Screen, bool) {
	if len(s.screens) <= 1 {
		return nil, false
	}
	top := s.screens[len(s.screens)-1]
	s.screens[len(s.screens)-1] = nil
	s.screens = s.screens[:len(s.screens)-1]
	return top, true
}

// Top returns the visible screen.
func (s *ScreenStack) Top() Screen {
	return s.screens[len(s.screens)-1]
}

// Depth returns the number of screens.
func (s *ScreenStack) Depth() int {
	return len(s.screens)
}

// Reset discards every screen and makes root the only entry.
func (s *ScreenStack) Reset(root Screen) {
	clear(s.screens)
	s.screens = append(s.screens[:0], root)
}

// Find returns the screen with id.
func (s *ScreenStack) Find(id uuid.UUID) (Screen, bool) {
	for _, screen := range s.screens {
		if screen.ID() == id {
			return screen, true
		}
	}
	return nil, false
}

// Kinds returns the kind of every screen from root to top.
func (s *ScreenStack) Kinds() []Kind {
	kinds := make([]Kind, len(s.screens))
	for i, screen := range s.screens {
		kinds[i] = screen.Kind()
	}
	return kinds
}
