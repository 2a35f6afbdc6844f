package widget

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/snapdeck/snapdeck/pkg/carousel"
	"github.com/snapdeck/snapdeck/pkg/carousel/autoplay"
	"github.com/snapdeck/snapdeck/pkg/deck"
)

// Frame cadence for flushing pending engine work and autoplay ticks.
const frameInterval = time.Second / 30

// Default slide sizes along the scroll axis when neither the slide nor the
// deck declares one. Horizontal sizes are columns, vertical sizes rows.
const (
	defaultSlideWidth  = 40
	defaultSlideHeight = 8
)

// Rows consumed by header and footer around the slide strip.
const chromeRows = 4

// mousePointerID identifies the terminal's single pointer to the engine.
const mousePointerID = 0

// frameMsg drives the per-frame Flush barrier and autoplay.
type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Config tunes a widget beyond what the deck manifest declares. The zero
// value is usable.
type Config struct {
	// Plugins are appended to the engine's plugin list.
	Plugins []carousel.Plugin

	// Autoplay enables automatic advancing at the given interval when
	// positive.
	Autoplay time.Duration

	// KeyMap overrides DefaultKeyMap when non-zero.
	KeyMap *KeyMap

	// Styles overrides DefaultStyles when non-nil.
	Styles *Styles
}

// Model is the bubbletea model presenting a deck. Create it with New and
// hand it to tea.NewProgram with mouse motion enabled.
type Model struct {
	deck   *deck.Deck
	car    *carousel.Carousel
	keys   KeyMap
	help   help.Model
	styles Styles

	auto *autoplay.Plugin
	prev *indicator
	next *indicator

	width    int
	height   int
	attached bool
}

// New builds a widget for the deck. The engine is configured from the
// deck's settings plus cfg and attached on the first window size message.
func New(d *deck.Deck, cfg Config) Model {
	keys := DefaultKeyMap()
	if cfg.KeyMap != nil {
		keys = *cfg.KeyMap
	}
	styles := DefaultStyles()
	if cfg.Styles != nil {
		styles = *cfg.Styles
	}

	opts := d.Options()
	opts.Plugins = append(opts.Plugins, cfg.Plugins...)

	var auto *autoplay.Plugin
	if cfg.Autoplay > 0 {
		auto = autoplay.New(cfg.Autoplay)
		opts.Plugins = append(opts.Plugins, auto)
	}

	m := Model{
		deck:   d,
		car:    carousel.New(opts),
		keys:   keys,
		help:   help.New(),
		styles: styles,
		auto:   auto,
		prev:   &indicator{glyph: "‹"},
		next:   &indicator{glyph: "›"},
	}
	m.car.RegisterPrev(m.prev)
	m.car.RegisterNext(m.next)
	return m
}

// Carousel exposes the underlying engine, mainly for plugins and tests.
func (m Model) Carousel() *carousel.Carousel { return m.car }

func (m Model) Init() tea.Cmd {
	return frameTick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.attached {
			m.attached = true
			m.car.Attach(m.viewportSize(), m.deck.Specs(m.fallbackSize()))
		} else {
			m.car.SetViewportSize(m.viewportSize())
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.car.Destroy()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.car.ScrollNext()
		case key.Matches(msg, m.keys.Prev):
			m.car.ScrollPrev()
		case key.Matches(msg, m.keys.First):
			m.car.ScrollTo(0)
		case key.Matches(msg, m.keys.Last):
			m.car.ScrollTo(len(m.car.Slides()) - 1)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case frameMsg:
		if m.auto != nil {
			m.auto.Tick(time.Time(msg))
		}
		if m.car.Dirty() {
			m.car.Flush()
		}
		return m, frameTick()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		if msg.Action == tea.MouseActionPress {
			m.car.ScrollPrev()
		}
		return
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		if msg.Action == tea.MouseActionPress {
			m.car.ScrollNext()
		}
		return
	}

	coord := m.axisCoord(msg)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.car.PointerDown(mousePointerID, coord)
		}
	case tea.MouseActionMotion:
		m.car.PointerMove(mousePointerID, coord)
	case tea.MouseActionRelease:
		m.car.PointerUp(mousePointerID)
	}
}

// axisCoord projects a mouse position onto the scroll axis.
func (m Model) axisCoord(msg tea.MouseMsg) float64 {
	if m.vertical() {
		return float64(msg.Y - 2)
	}
	return float64(msg.X)
}

func (m Model) vertical() bool {
	return m.car.Options().Orientation == carousel.OrientationVertical
}

// viewportSize is the strip extent along the scroll axis, in cells.
func (m Model) viewportSize() float64 {
	if m.vertical() {
		rows := m.height - chromeRows
		if rows < 3 {
			rows = 3
		}
		return float64(rows)
	}
	cols := m.width
	if cols < 10 {
		cols = 10
	}
	return float64(cols)
}

func (m Model) fallbackSize() float64 {
	if m.vertical() {
		return defaultSlideHeight
	}
	return defaultSlideWidth
}

// =============================================================================
// Rendering
// =============================================================================

func (m Model) View() string {
	if !m.attached {
		return "loading deck..."
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.deck.DisplayTitle()))
	b.WriteString("\n\n")
	b.WriteString(m.viewportView())
	b.WriteString("\n")
	b.WriteString(m.statusView())
	if m.help.ShowAll {
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

// viewportView renders the slide strip cropped to the viewport at the
// engine's scroll offset.
func (m Model) viewportView() string {
	strip := m.stripView()
	off := int(math.Round(m.car.ScrollOffset()))
	if off < 0 {
		off = 0
	}
	vp := int(m.car.ViewportSize())

	lines := strings.Split(strip, "\n")
	if m.vertical() {
		if off > len(lines) {
			off = len(lines)
		}
		end := off + vp
		if end > len(lines) {
			end = len(lines)
		}
		return strings.Join(lines[off:end], "\n")
	}

	for i, line := range lines {
		lines[i] = ansi.Cut(line, off, off+vp)
	}
	return strings.Join(lines, "\n")
}

// stripView renders every slide side by side along the scroll axis, with
// the configured gap between neighbors. Box extents match the engine's
// slide sizes so screen columns line up with snap geometry.
func (m Model) stripView() string {
	specs := m.car.Slides()
	selected := m.car.SelectedScrollSnap()
	gap := int(m.car.Options().Gap)

	boxes := make([]string, 0, len(specs)*2)
	for i, spec := range specs {
		if i > 0 && gap > 0 {
			boxes = append(boxes, m.gapView(gap))
		}
		boxes = append(boxes, m.slideView(i, spec, i == selected))
	}

	if m.vertical() {
		return lipgloss.JoinVertical(lipgloss.Left, boxes...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m Model) gapView(gap int) string {
	if m.vertical() {
		return strings.Repeat("\n", gap-1)
	}
	return strings.Repeat(" ", gap)
}

func (m Model) slideView(i int, spec carousel.SlideSpec, selected bool) string {
	slide := m.deck.Slides[i]

	style := m.styles.Slide
	if selected {
		style = m.styles.SelectedSlide
	}

	// Border cells sit outside the lipgloss content box, so the content
	// extent is the engine's slide size minus two.
	if m.vertical() {
		style = style.Width(maxInt(m.width-2, 4)).Height(maxInt(int(spec.Size)-2, 1))
	} else {
		style = style.Width(maxInt(int(spec.Size)-2, 4)).Height(maxInt(m.slideRows()-2, 1))
	}

	var content strings.Builder
	if slide.Title != "" {
		content.WriteString(m.styles.SlideTitle.Render(slide.Title))
		content.WriteString("\n\n")
	}
	content.WriteString(slide.Body)
	return style.Render(content.String())
}

// slideRows is the vertical extent of horizontal slides.
func (m Model) slideRows() int {
	rows := m.height - chromeRows
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (m Model) statusView() string {
	count := len(m.car.Slides())
	pos := fmt.Sprintf("[%d/%d]", m.car.SelectedScrollSnap()+1, count)

	parts := []string{
		m.prev.render(m.styles),
		m.styles.Status.Render(pos),
		m.next.render(m.styles),
	}
	line := strings.Join(parts, " ")
	if !m.help.ShowAll {
		line += "  " + m.help.ShortHelpView(m.keys.ShortHelp())
	}
	return line
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Ensure Model implements tea.Model.
var _ tea.Model = Model{}
