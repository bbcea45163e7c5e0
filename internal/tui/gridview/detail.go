package gridview

import (
	"encoding/json"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultDetailTheme is the chroma style used for expanded rows.
const DefaultDetailTheme = "monokai"

const detailIndent = "  "

// DetailFunc renders the detail pane of an expanded row.
type DetailFunc[T any] func(item T) string

// JSONDetail renders a record as indented JSON.
func JSONDetail[T any](item T) string {
	b, err := json.MarshalIndent(item, "", "  ")
	if err != nil {
		return "error: " + err.Error()
	}
	return string(b)
}

type highlighter struct {
	lexer     chroma.Lexer
	formatter chroma.Formatter
	style     *chroma.Style
	enabled   bool
}

// newHighlighter returns a JSON highlighter. A disabled highlighter passes
// text through.
func newHighlighter(theme string, enabled bool) *highlighter {
	lexer := lexers.Get("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}
	if theme == "" {
		theme = DefaultDetailTheme
	}
	return &highlighter{
		lexer:     chroma.Coalesce(lexer),
		formatter: formatter,
		style:     styles.Get(theme),
		enabled:   enabled,
	}
}

func (h *highlighter) highlight(src string) string {
	if !h.enabled {
		return src
	}
	it, err := h.lexer.Tokenise(nil, src)
	if err != nil {
		return src
	}
	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, it); err != nil {
		return src
	}
	return strings.TrimRight(b.String(), "\n")
}

// detailLines renders the indented detail pane, one entry per line.
func detailLines(text string, h *highlighter) []string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(h.highlight(text), "\n")
	for i, l := range lines {
		lines[i] = detailIndent + l
	}
	return lines
}
