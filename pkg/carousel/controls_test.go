package carousel

import "testing"

func TestCanScroll(t *testing.T) {
	tests := []struct {
		name     string
		loop     bool
		selected int
		count    int
		wantPrev bool
		wantNext bool
	}{
		{"Middle", false, 2, 5, true, true},
		{"AtStart", false, 0, 5, false, true},
		{"AtEnd", false, 4, 5, true, false},
		{"AtStartLoop", true, 0, 5, true, true},
		{"AtEndLoop", true, 4, 5, true, true},
		{"SingleSlide", false, 0, 1, false, false},
		{"SingleSlideLoop", true, 0, 1, false, false},
		{"Empty", false, 0, 0, false, false},
		{"EmptyLoop", true, 0, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canScrollPrev(tt.loop, tt.selected, tt.count); got != tt.wantPrev {
				t.Errorf("canScrollPrev = %v, want %v", got, tt.wantPrev)
			}
			if got := canScrollNext(tt.loop, tt.selected, tt.count); got != tt.wantNext {
				t.Errorf("canScrollNext = %v, want %v", got, tt.wantNext)
			}
		})
	}
}

// fakeControl records SetDisabled calls.
type fakeControl struct {
	disabled bool
	calls    int
}

func (f *fakeControl) SetDisabled(d bool) {
	f.disabled = d
	f.calls++
}

func TestControlsSyncOnRegistration(t *testing.T) {
	c := New(Options{Align: AlignStart})
	c.Attach(10, specs(10, 10, 10))

	prev := &fakeControl{}
	next := &fakeControl{}
	c.RegisterPrev(prev)
	c.RegisterNext(next)

	if !prev.disabled {
		t.Error("prev control must start disabled at index 0")
	}
	if next.disabled {
		t.Error("next control must start enabled at index 0")
	}
}

func TestControlsSyncOnSelection(t *testing.T) {
	c := New(Options{Align: AlignStart})
	c.Attach(10, specs(10, 10, 10))

	prev := &fakeControl{}
	next := &fakeControl{}
	c.RegisterPrev(prev)
	c.RegisterNext(next)

	c.ScrollTo(2)
	if prev.disabled {
		t.Error("prev must be enabled at the last slide")
	}
	if !next.disabled {
		t.Error("next must be disabled at the last slide without loop")
	}

	c.SetLoop(true)
	if prev.disabled || next.disabled {
		t.Error("loop must enable both controls away from a single slide")
	}
}

func TestControlsDisabledForSingleSlide(t *testing.T) {
	c := New(Options{Loop: true, Align: AlignStart})
	c.Attach(10, specs(10, 10, 10))

	prev := &fakeControl{}
	next := &fakeControl{}
	c.RegisterPrev(prev)
	c.RegisterNext(next)

	c.SetSlides(specs(10))
	if !prev.disabled || !next.disabled {
		t.Error("single-slide carousel must disable both controls regardless of loop")
	}
}

func TestControlsSyncOnSlideCountChange(t *testing.T) {
	c := New(Options{Align: AlignStart})
	c.Attach(10, specs(10))

	next := &fakeControl{}
	c.RegisterNext(next)
	if !next.disabled {
		t.Fatal("next must start disabled with one slide")
	}

	c.SetSlides(specs(10, 10))
	if next.disabled {
		t.Error("adding slides must re-enable next")
	}
}
