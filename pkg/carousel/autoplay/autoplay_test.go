package autoplay

import (
	"testing"
	"time"

	"github.com/snapdeck/snapdeck/pkg/carousel"
)

func attach(t *testing.T, p *Plugin) *carousel.Carousel {
	t.Helper()
	c := carousel.New(carousel.Options{Plugins: []carousel.Plugin{p}})
	c.Attach(100, []carousel.SlideSpec{
		{ID: "a", Size: 100},
		{ID: "b", Size: 100},
		{ID: "c", Size: 100},
	})
	return c
}

func TestTickAdvancesAfterInterval(t *testing.T) {
	p := New(time.Second)
	c := attach(t, p)

	start := time.Now()
	p.last = start

	p.Tick(start.Add(500 * time.Millisecond))
	if got := c.SelectedScrollSnap(); got != 0 {
		t.Fatalf("advanced before interval elapsed: selected %d", got)
	}

	p.Tick(start.Add(time.Second))
	if got := c.SelectedScrollSnap(); got != 1 {
		t.Fatalf("selected after tick = %d, want 1", got)
	}
}

func TestPausesDuringDrag(t *testing.T) {
	p := New(time.Second)
	c := attach(t, p)

	start := time.Now()
	c.PointerDown(1, 50)
	p.last = start
	p.Tick(start.Add(2 * time.Second))
	if got := c.SelectedScrollSnap(); got != 0 {
		t.Fatalf("advanced while paused: selected %d", got)
	}

	// Settling resumes autoplay and resets the interval.
	c.PointerUp(1)
	p.Tick(time.Now().Add(500 * time.Millisecond))
	if got := c.SelectedScrollSnap(); got != 0 {
		t.Fatalf("advanced before resumed interval elapsed: selected %d", got)
	}
	p.Tick(time.Now().Add(2 * time.Second))
	if got := c.SelectedScrollSnap(); got != 1 {
		t.Fatalf("selected after resume = %d, want 1", got)
	}
}

func TestSettleResetsTimer(t *testing.T) {
	p := New(time.Second)
	c := attach(t, p)

	// A manual scroll settles the carousel, which pushes the next automatic
	// advance a full interval out.
	p.last = time.Now().Add(-2 * time.Second)
	c.ScrollTo(2)
	p.Tick(p.last.Add(500 * time.Millisecond))
	if got := c.SelectedScrollSnap(); got != 2 {
		t.Fatalf("advanced early after settle: selected %d", got)
	}
}

func TestTickAfterDestroyIsNoop(t *testing.T) {
	p := New(time.Second)
	c := attach(t, p)
	c.Destroy()

	p.Tick(time.Now().Add(time.Hour))
}

func TestNonPositiveIntervalUsesDefault(t *testing.T) {
	if p := New(0); p.interval != DefaultInterval {
		t.Errorf("interval = %v, want %v", p.interval, DefaultInterval)
	}
	if p := New(-time.Second); p.interval != DefaultInterval {
		t.Errorf("interval = %v, want %v", p.interval, DefaultInterval)
	}
}
