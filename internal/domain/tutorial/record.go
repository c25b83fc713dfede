// Package tutorial holds the static command tutorials shown by BigHelp.
package tutorial

import (
	"errors"
	"fmt"
)

// CategoryID identifies a tutorial category.
type CategoryID string

const (
	// CategoryBasic covers file and directory commands.
	CategoryBasic CategoryID = "basic"
	// CategoryNetwork covers network commands.
	CategoryNetwork CategoryID = "network"
	// CategorySystem covers system information and control commands.
	CategorySystem CategoryID = "system"
)

// Category describes a tutorial category for menus.
type Category struct {
	ID    CategoryID
	Title string // e.g. "🌐 Network Commands"
	Label string // menu label, e.g. "🌐 Network Commands (ping, wget...)"
}

// Example is one runnable example of a command.
type Example struct {
	Command     string `json:"command" yaml:"command" toml:"command"`
	Explanation string `json:"explanation" yaml:"explanation" toml:"explanation"`
}

// CommandRecord is a single tutorial entry.
type CommandRecord struct {
	Name        string    `json:"name" yaml:"name" toml:"name"`
	Category    string    `json:"category" yaml:"category" toml:"category"`
	Description string    `json:"description" yaml:"description" toml:"description"`
	Explanation string    `json:"explanation" yaml:"explanation" toml:"explanation"`
	Examples    []Example `json:"examples" yaml:"examples" toml:"examples"`
	Tip         string    `json:"tip" yaml:"tip" toml:"tip"`
	Safety      string    `json:"safety" yaml:"safety" toml:"safety"`
}

// clone returns a deep copy so callers never share the examples slice.
func (r CommandRecord) clone() CommandRecord {
	examples := make([]Example, len(r.Examples))
	copy(examples, r.Examples)
	r.Examples = examples
	return r
}

// ErrNotFound is matched by every NotFoundError via errors.Is.
var ErrNotFound = errors.New("tutorial not found")

// NotFoundError reports a missing category or command.
type NotFoundError struct {
	Category CategoryID
	Command  string
}

func (e *NotFoundError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("unknown tutorial category %q", e.Category)
	}
	return fmt.Sprintf("unknown command %q in category %q", e.Command, e.Category)
}

// Is makes errors.Is(err, ErrNotFound) succeed.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
