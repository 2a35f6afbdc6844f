package widget

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/snapdeck/snapdeck/pkg/deck"
)

func testDeck(t *testing.T) *deck.Deck {
	t.Helper()
	d, err := deck.Parse([]byte(`
title = "Demo"

[settings]
slide_width = 60

[[slides]]
id    = "a"
title = "One"
body  = "first"

[[slides]]
id    = "b"
title = "Two"
body  = "second"

[[slides]]
id    = "c"
title = "Three"
body  = "third"
`))
	if err != nil {
		t.Fatalf("parsing test deck: %v", err)
	}
	return d
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	return update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func TestWindowSizeAttachesEngine(t *testing.T) {
	m := New(testDeck(t), Config{})
	if m.Carousel().ViewportSize() != 0 {
		t.Fatal("engine attached before first window size")
	}

	m = sized(t, m)
	if got := m.Carousel().ViewportSize(); got != 80 {
		t.Errorf("viewport = %v, want 80", got)
	}
	if got := len(m.Carousel().Slides()); got != 3 {
		t.Errorf("slides = %d, want 3", got)
	}
}

func TestKeysNavigate(t *testing.T) {
	m := sized(t, New(testDeck(t), Config{}))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Carousel().SelectedScrollSnap(); got != 1 {
		t.Fatalf("after right: selected = %d, want 1", got)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	if got := m.Carousel().SelectedScrollSnap(); got != 2 {
		t.Fatalf("after G: selected = %d, want 2", got)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	if got := m.Carousel().SelectedScrollSnap(); got != 0 {
		t.Fatalf("after g: selected = %d, want 0", got)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Carousel().SelectedScrollSnap(); got != 0 {
		t.Fatalf("left at first slide: selected = %d, want 0", got)
	}
}

func TestMouseDragSettles(t *testing.T) {
	m := sized(t, New(testDeck(t), Config{}))

	m = update(t, m, tea.MouseMsg{X: 60, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.Carousel().Dragging() {
		t.Fatal("press did not start a drag")
	}

	// Dragging far left pulls later slides into view.
	m = update(t, m, tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if m.Carousel().Dragging() {
		t.Fatal("release did not end the drag")
	}
	if got := m.Carousel().SelectedScrollSnap(); got == 0 {
		t.Error("drag past midpoint did not change selection")
	}
}

func TestWheelNavigates(t *testing.T) {
	m := sized(t, New(testDeck(t), Config{}))

	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if got := m.Carousel().SelectedScrollSnap(); got != 1 {
		t.Fatalf("after wheel down: selected = %d, want 1", got)
	}
	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if got := m.Carousel().SelectedScrollSnap(); got != 0 {
		t.Fatalf("after wheel up: selected = %d, want 0", got)
	}
}

func TestFrameFlushesPendingWork(t *testing.T) {
	m := sized(t, New(testDeck(t), Config{}))

	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 24})
	if !m.Carousel().Dirty() {
		t.Fatal("resize did not schedule work")
	}

	m = update(t, m, frameMsg(time.Now()))
	if m.Carousel().Dirty() {
		t.Error("frame did not flush pending work")
	}
	if got := m.Carousel().ViewportSize(); got != 60 {
		t.Errorf("viewport after flush = %v, want 60", got)
	}
}

func TestViewShowsStatusAndSlides(t *testing.T) {
	m := sized(t, New(testDeck(t), Config{}))

	view := m.View()
	if !strings.Contains(view, "Demo") {
		t.Error("view missing deck title")
	}
	if !strings.Contains(view, "[1/3]") {
		t.Errorf("view missing status, got:\n%s", view)
	}
	if !strings.Contains(view, "first") {
		t.Error("view missing selected slide body")
	}
}

func TestViewBeforeAttach(t *testing.T) {
	m := New(testDeck(t), Config{})
	if v := m.View(); !strings.Contains(v, "loading") {
		t.Errorf("pre-attach view = %q", v)
	}
}

func TestQuitDestroysEngine(t *testing.T) {
	m := sized(t, New(testDeck(t), Config{}))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("quit returned no command")
	}

	// The engine ignores calls after destroy.
	m.Carousel().ScrollNext()
	if got := m.Carousel().SelectedScrollSnap(); got != 0 {
		t.Errorf("selected after destroy = %d, want 0", got)
	}
}
