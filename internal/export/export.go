// Package export renders the tutorial store for the non-interactive
// commands: machine-readable dumps and plain or Markdown command pages.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/bighelp/internal/domain/tutorial"
)

// Format is a dump encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Formats lists the supported encodings.
var Formats = []Format{FormatYAML, FormatTOML, FormatJSON}

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatYAML, FormatTOML, FormatJSON:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want yaml, toml or json)", s)
	}
}

// Document is the serialized form of the store.
type Document struct {
	Categories []CategoryDocument `json:"categories" yaml:"categories" toml:"categories"`
}

// CategoryDocument is one category and its commands.
type CategoryDocument struct {
	ID       tutorial.CategoryID      `json:"id" yaml:"id" toml:"id"`
	Title    string                   `json:"title" yaml:"title" toml:"title"`
	Commands []tutorial.CommandRecord `json:"commands" yaml:"commands" toml:"commands"`
}

// Build collects every category of store in menu order.
func Build(store *tutorial.Store) (Document, error) {
	var doc Document
	for _, cat := range store.Categories() {
		records, err := store.ListCategory(cat.ID)
		if err != nil {
			return Document{}, err
		}
		doc.Categories = append(doc.Categories, CategoryDocument{
			ID:       cat.ID,
			Title:    cat.Title,
			Commands: records,
		})
	}
	return doc, nil
}

// Write encodes the whole store to w.
func Write(w io.Writer, store *tutorial.Store, format Format) error {
	doc, err := Build(store)
	if err != nil {
		return err
	}

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}
