package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/bighelp/internal/domain/tutorial"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"yaml", FormatYAML, false},
		{"YML", FormatYAML, false},
		{" toml ", FormatTOML, false},
		{"json", FormatJSON, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWrite_DecodesBackToTheStore(t *testing.T) {
	t.Parallel()

	store := tutorial.Default()
	want, err := Build(store)
	require.NoError(t, err)

	decoders := map[Format]func([]byte, *Document) error{
		FormatYAML: func(b []byte, d *Document) error { return yaml.Unmarshal(b, d) },
		FormatTOML: func(b []byte, d *Document) error { return toml.Unmarshal(b, d) },
		FormatJSON: func(b []byte, d *Document) error { return json.Unmarshal(b, d) },
	}

	for _, format := range Formats {
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, Write(&buf, store, format))

			var got Document
			require.NoError(t, decoders[format](buf.Bytes(), &got))
			assert.Equal(t, want, got)
		})
	}
}

func TestWrite_FieldNames(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tutorial.Default(), FormatYAML))

	out := buf.String()
	for _, key := range []string{"categories:", "commands:", "name: ls", "examples:", "tip:", "safety:"} {
		assert.Contains(t, out, key)
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := Write(&bytes.Buffer{}, tutorial.Default(), Format("xml"))
	assert.Error(t, err)
}

func TestBuild_Order(t *testing.T) {
	t.Parallel()

	doc, err := Build(tutorial.Default())
	require.NoError(t, err)

	require.Len(t, doc.Categories, 3)
	assert.Equal(t, tutorial.CategoryBasic, doc.Categories[0].ID)
	assert.Equal(t, "ls", doc.Categories[0].Commands[0].Name)
	assert.Equal(t, "shutdown", doc.Categories[2].Commands[len(doc.Categories[2].Commands)-1].Name)
}

func TestMarkdown_Sections(t *testing.T) {
	t.Parallel()

	record, err := tutorial.Default().Lookup(tutorial.CategoryNetwork, "ping")
	require.NoError(t, err)

	md := Markdown(record)

	sections := []string{"# 📚 ping", "## Description", "## What does it do?", "## Examples", "## 💡 Tip", "## ⚠️ Safety Note"}
	last := -1
	for _, s := range sections {
		i := strings.Index(md, s)
		require.GreaterOrEqual(t, i, 0, s)
		assert.Greater(t, i, last, "%s out of order", s)
		last = i
	}
	assert.Contains(t, md, "`ping -c 4 google.com`")
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	record, err := tutorial.Default().Lookup(tutorial.CategoryBasic, "pwd")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, record))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "✨ pwd ✨\n"))
	assert.Contains(t, out, "  $ pwd\n")
	assert.Contains(t, out, "💡 Tip: ")
	assert.Contains(t, out, "⚠️ Safety Note: ")
}
