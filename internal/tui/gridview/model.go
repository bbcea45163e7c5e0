package gridview

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/gridkit/internal/grid"
	"github.com/rshade/gridkit/internal/grid/focus"
	"github.com/rshade/gridkit/internal/grid/frame"
	"github.com/rshade/gridkit/internal/grid/selection"
)

// Default terminal size used until the first tea.WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

const (
	// ActionCopy is the built-in row action that copies the row to the
	// clipboard.
	ActionCopy = "copy"

	defaultHorizontalStep = 4
	wheelStep             = 3

	// maxFlushPasses bounds Flush when measurements keep changing heights.
	maxFlushPasses = 4
)

// FrameMsg delivers a scheduled frame.
type FrameMsg struct {
	Ticket frame.Ticket
}

// ActionMsg is emitted when a row action other than copy is activated.
type ActionMsg struct {
	RowID  string
	Action string
}

// Config configures a Model.
type Config[T any] struct {
	Columns   []grid.Column
	GetRowID  func(T) string
	CanExpand func(T) bool

	// CellText renders a plain cell. Nil renders every cell empty.
	CellText func(item T, columnID string) string

	// Detail renders the pane below an expanded row. Nil uses JSONDetail.
	Detail DetailFunc[T]

	InitialSelection selection.Set
	Overscan         int

	// EstimatedRowHeight is the line count assumed for rows not yet
	// drawn. Zero means 1.
	EstimatedRowHeight float64

	FrameInterval  time.Duration
	HorizontalStep int

	// DetailTheme names the chroma style for detail panes; Highlight
	// enables it.
	DetailTheme string
	Highlight   bool

	Styles *Styles
	KeyMap *KeyMap

	// Clipboard writes the copy action's text. Nil uses the system
	// clipboard.
	Clipboard func(string) error

	Logger *zerolog.Logger
}

// Model is a Bubble Tea model rendering a virtualized grid.
type Model[T any] struct {
	cfg    Config[T]
	logger zerolog.Logger

	grid      *grid.Grid[T]
	frame     grid.Frame[T]
	coalescer frame.Coalescer
	cmds      []tea.Cmd

	items []T

	keys        KeyMap
	styles      Styles
	help        help.Model
	filter      textinput.Model
	filtering   bool
	highlighter *highlighter
	details     map[string][]string
	printer     *message.Printer

	status   string
	width    int
	height   int
	quitting bool
}

// New returns a model showing items.
func New[T any](items []T, cfg Config[T]) *Model[T] {
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = frame.DefaultInterval
	}
	if cfg.EstimatedRowHeight <= 0 {
		cfg.EstimatedRowHeight = 1
	}
	if cfg.HorizontalStep <= 0 {
		cfg.HorizontalStep = defaultHorizontalStep
	}
	if cfg.CellText == nil {
		cfg.CellText = func(T, string) string { return "" }
	}
	if cfg.Detail == nil {
		cfg.Detail = JSONDetail[T]
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = clipboard.WriteAll
	}

	ti := textinput.New()
	ti.Placeholder = "filter..."
	ti.Prompt = "/ "
	ti.CharLimit = 100

	m := &Model[T]{
		cfg:         cfg,
		logger:      zerolog.Nop(),
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
		help:        help.New(),
		filter:      ti,
		highlighter: newHighlighter(cfg.DetailTheme, cfg.Highlight),
		details:     make(map[string][]string),
		printer:     message.NewPrinter(language.English),
	}
	if cfg.Logger != nil {
		m.logger = *cfg.Logger
	}
	if cfg.Styles != nil {
		m.styles = *cfg.Styles
	}
	if cfg.KeyMap != nil {
		m.keys = *cfg.KeyMap
	}

	m.grid = grid.New(grid.Options[T]{
		GetRowID:           cfg.GetRowID,
		CanExpand:          cfg.CanExpand,
		InitialSelection:   cfg.InitialSelection,
		EstimatedRowHeight: cfg.EstimatedRowHeight,
		Overscan:           cfg.Overscan,
		IntegralWidths:     true,
		RequestFrame:       m.requestFrame,
		Logger:             &m.logger,
	})
	m.grid.SetColumns(cfg.Columns)
	m.SetItems(items)
	m.resize(defaultWidth, defaultHeight)
	return m
}

// Init schedules the first frame (required for tea.Model interface).
func (m *Model[T]) Init() tea.Cmd {
	return m.takeCmds()
}

// Update handles input and frame messages.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case FrameMsg:
		if m.coalescer.Fire(msg.Ticket) {
			m.settle()
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	}
	return m, tea.Batch(cmd, m.takeCmds())
}

// SetItems replaces the data. Selection, expansion and row measurements
// carry over by row id; the active filter is reapplied.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	clear(m.details)
	m.applyFilter()
}

// Flush settles pending input immediately instead of waiting for the
// scheduled frame.
func (m *Model[T]) Flush() grid.Frame[T] {
	for range maxFlushPasses {
		m.coalescer.Cancel()
		m.settle()
		if !m.grid.Dirty() {
			m.cmds = nil
			break
		}
	}
	return m.frame
}

// Grid returns the underlying engine.
func (m *Model[T]) Grid() *grid.Grid[T] {
	return m.grid
}

// Frame returns the last settled frame.
func (m *Model[T]) Frame() grid.Frame[T] {
	return m.frame
}

// Selection returns the selected row ids.
func (m *Model[T]) Selection() selection.Set {
	return m.grid.Selection()
}

// Status returns the transient status message.
func (m *Model[T]) Status() string {
	return m.status
}

// SetStatus shows msg in the status line until the next key press.
func (m *Model[T]) SetStatus(msg string) {
	m.status = msg
}

// FrameStats returns how many frames fired and how many stale ones were
// dropped.
func (m *Model[T]) FrameStats() (fired, dropped uint64) {
	return m.coalescer.Stats()
}

func (m *Model[T]) requestFrame() {
	t, schedule := m.coalescer.Request()
	if !schedule {
		return
	}
	m.cmds = append(m.cmds, tea.Tick(m.cfg.FrameInterval, func(time.Time) tea.Msg {
		return FrameMsg{Ticket: t}
	}))
}

func (m *Model[T]) takeCmds() tea.Cmd {
	cmds := m.cmds
	m.cmds = nil
	return tea.Batch(cmds...)
}

// settle produces a frame and reports the height of every mounted row. A
// changed height schedules the next frame.
func (m *Model[T]) settle() {
	m.frame = m.grid.Settle()
	for _, r := range m.frame.Rows {
		m.grid.ReportHeight(r.ID, float64(m.rowHeight(r)))
	}
}

func (m *Model[T]) resize(width, height int) {
	m.width = max(0, width)
	m.height = max(0, height)
	m.help.Width = m.width
	m.filter.Width = max(0, m.width-len(m.filter.Prompt)-1)
	m.grid.Resize(float64(m.width), float64(m.bodyHeight()))
}

// bodyHeight is the number of lines left for rows after the header, filter
// prompt, status line and help footer.
func (m *Model[T]) bodyHeight() int {
	chrome := 2 + strings.Count(m.help.View(m.keys), "\n") + 1
	if m.showFilterLine() {
		chrome++
	}
	return max(0, m.height-chrome)
}

func (m *Model[T]) showFilterLine() bool {
	return m.filtering || m.filter.Value() != ""
}

//nolint:gocyclo // One branch per binding.
func (m *Model[T]) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.filtering {
		return m.handleFilterKey(msg)
	}
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.move(focus.Up)
	case key.Matches(msg, m.keys.Down):
		m.move(focus.Down)
	case key.Matches(msg, m.keys.Left):
		m.move(focus.Left)
	case key.Matches(msg, m.keys.Right):
		m.move(focus.Right)
	case key.Matches(msg, m.keys.ScrollLeft):
		m.grid.ScrollXBy(-float64(m.cfg.HorizontalStep))
	case key.Matches(msg, m.keys.ScrollRight):
		m.grid.ScrollXBy(float64(m.cfg.HorizontalStep))
	case key.Matches(msg, m.keys.PageUp):
		m.grid.ScrollBy(-float64(m.bodyHeight()))
	case key.Matches(msg, m.keys.PageDown):
		m.grid.ScrollBy(float64(m.bodyHeight()))
	case key.Matches(msg, m.keys.Home):
		m.grid.ScrollTo(0)
	case key.Matches(msg, m.keys.End):
		m.grid.ScrollTo(m.frame.TotalHeight)
	case key.Matches(msg, m.keys.Activate):
		return m.activate()
	case key.Matches(msg, m.keys.RangeSelect):
		if n, ok := m.grid.Focused(); ok && n.RowID != focus.HeaderRowID {
			m.grid.SelectRangeTo(n.RowID)
		}
	case key.Matches(msg, m.keys.SelectAll):
		m.grid.ToggleAll()
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.resize(m.width, m.height)
		return m.filter.Focus()
	case key.Matches(msg, m.keys.ClearFilter):
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.applyFilter()
			m.resize(m.width, m.height)
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
	}
	return nil
}

func (m *Model[T]) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	//nolint:exhaustive // Every other key goes to the text input.
	switch msg.Type {
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		m.resize(m.width, m.height)
		return nil
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		m.resize(m.width, m.height)
		return nil
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.applyFilter()
		m.grid.ScrollTo(0)
	}
	return cmd
}

func (m *Model[T]) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}
	//nolint:exhaustive // Only wheel events scroll.
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.grid.ScrollBy(-wheelStep)
	case tea.MouseButtonWheelDown:
		m.grid.ScrollBy(wheelStep)
	case tea.MouseButtonWheelLeft:
		m.grid.ScrollXBy(-float64(m.cfg.HorizontalStep))
	case tea.MouseButtonWheelRight:
		m.grid.ScrollXBy(float64(m.cfg.HorizontalStep))
	}
}

// move shifts focus. Without focus it focuses the first visible row. At the
// edge of the mounted window, or when nothing is focusable, it scrolls one
// line instead.
func (m *Model[T]) move(dir focus.Direction) {
	cur, ok := m.grid.Focused()
	if !ok {
		if !m.focusVisible() {
			m.scrollLine(dir)
		}
		return
	}

	n, ok := m.grid.Navigate(dir)
	if ok {
		if n.RowID != focus.HeaderRowID {
			m.grid.ScrollToRow(n.RowID)
		}
		return
	}

	row, found := m.grid.RowByID(cur.RowID)
	rng := m.frame.Range
	switch {
	case !found:
	case dir == focus.Down && row.Index == rng.End-1:
		m.scrollLine(dir)
	case dir == focus.Up && row.Index == rng.Start:
		m.scrollLine(dir)
	}
}

func (m *Model[T]) scrollLine(dir focus.Direction) {
	//nolint:exhaustive // Horizontal moves never scroll.
	switch dir {
	case focus.Up:
		m.grid.ScrollBy(-1)
	case focus.Down:
		m.grid.ScrollBy(1)
	}
}

// focusVisible requests focus on the first element of the first fully
// visible row.
func (m *Model[T]) focusVisible() bool {
	graph := m.frame.Graph()
	for _, r := range m.frame.Rows {
		if r.Index < m.frame.Range.VisibleStart {
			continue
		}
		if n, ok := graph.FirstInRow(r.ID); ok {
			m.grid.RequestFocus(n.Key())
			return true
		}
	}
	return false
}

func (m *Model[T]) activate() tea.Cmd {
	n, ok := m.grid.Focused()
	if !ok {
		return nil
	}
	act, ok := m.grid.Activate(n.Key())
	if !ok || act.Action == "" {
		return nil
	}
	return m.runAction(n.RowID, act.Action)
}

func (m *Model[T]) runAction(rowID, action string) tea.Cmd {
	m.logger.Debug().Str("row_id", rowID).Str("action", action).Msg("row action")
	if action != ActionCopy {
		return func() tea.Msg {
			return ActionMsg{RowID: rowID, Action: action}
		}
	}

	row, ok := m.grid.RowByID(rowID)
	if !ok {
		return nil
	}
	if err := m.cfg.Clipboard(m.rowText(row.Data, "\t")); err != nil {
		m.logger.Warn().Err(err).Str("row_id", rowID).Msg("clipboard write failed")
		m.status = "copy failed: " + err.Error()
		return nil
	}
	m.status = "copied " + rowID
	return nil
}

func (m *Model[T]) applyFilter() {
	shown := filterItems(m.items, func(item T) string {
		return m.rowText(item, " ")
	}, m.filter.Value())
	m.grid.SetData(shown)
}

// rowText joins the plain cells of a record.
func (m *Model[T]) rowText(item T, sep string) string {
	var parts []string
	for _, c := range m.cfg.Columns {
		if c.Kind != grid.KindPlain {
			continue
		}
		parts = append(parts, m.cfg.CellText(item, c.ID))
	}
	return strings.Join(parts, sep)
}
