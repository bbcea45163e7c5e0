package gridview

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	ColorHeader    = lipgloss.Color("39")
	ColorMuted     = lipgloss.Color("245")
	ColorSelected  = lipgloss.Color("236")
	ColorFocus     = lipgloss.Color("212")
	ColorStatus    = lipgloss.Color("252")
	ColorHighlight = lipgloss.Color("214")
)

// Styles are the lipgloss styles used by the view.
type Styles struct {
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Focus    lipgloss.Style
	Pinned   lipgloss.Style
	Empty    lipgloss.Style
	Status   lipgloss.Style
	Filter   lipgloss.Style
}

// DefaultStyles returns the colored styles.
func DefaultStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Foreground(ColorHeader).Bold(true),
		Cell:     lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Background(ColorSelected),
		Focus:    lipgloss.NewStyle().Foreground(ColorFocus).Bold(true).Reverse(true),
		Pinned:   lipgloss.NewStyle().Foreground(ColorHighlight),
		Empty:    lipgloss.NewStyle().Foreground(ColorMuted).Italic(true),
		Status:   lipgloss.NewStyle().Foreground(ColorStatus),
		Filter:   lipgloss.NewStyle().Foreground(ColorHighlight),
	}
}

// PlainStyles returns styles that add no escape sequences, for NO_COLOR
// output and snapshots.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Header:   plain,
		Cell:     plain,
		Selected: plain,
		Focus:    plain,
		Pinned:   plain,
		Empty:    plain,
		Status:   plain,
		Filter:   plain,
	}
}
