package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/felixgeelhaar/bighelp/internal/domain/tutorial"
)

// Markdown renders a command page with the same sections as the detail
// screen: description, explanation, examples, tip and safety note.
func Markdown(r tutorial.CommandRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# 📚 %s\n\n", r.Name)
	fmt.Fprintf(&b, "## Description\n\n%s\n\n", r.Description)
	fmt.Fprintf(&b, "## What does it do?\n\n%s\n\n", r.Explanation)
	b.WriteString("## Examples\n\n")
	for _, ex := range r.Examples {
		fmt.Fprintf(&b, "- `%s`  \n  %s\n", ex.Command, ex.Explanation)
	}
	fmt.Fprintf(&b, "\n## 💡 Tip\n\n%s\n\n", r.Tip)
	fmt.Fprintf(&b, "## ⚠️ Safety Note\n\n%s\n", r.Safety)
	return b.String()
}

// WriteText prints a command page as plain text.
func WriteText(w io.Writer, r tutorial.CommandRecord) error {
	var b strings.Builder
	fmt.Fprintf(&b, "✨ %s ✨\n\n", r.Name)
	fmt.Fprintf(&b, "%s\n\n", r.Description)
	fmt.Fprintf(&b, "What does it do?\n%s\n\n", r.Explanation)
	b.WriteString("Try this:\n")
	for _, ex := range r.Examples {
		fmt.Fprintf(&b, "  $ %s\n    %s\n", ex.Command, ex.Explanation)
	}
	fmt.Fprintf(&b, "\n💡 Tip: %s\n", r.Tip)
	fmt.Fprintf(&b, "⚠️ Safety Note: %s\n", r.Safety)

	_, err := io.WriteString(w, b.String())
	return err
}
