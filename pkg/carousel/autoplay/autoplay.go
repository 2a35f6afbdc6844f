// Package autoplay provides a carousel plugin that advances to the next
// slide on a fixed interval.
//
// The engine has no clock, so the plugin doesn't either: the host feeds it
// wall time through [Plugin.Tick], typically once per rendering frame.
// Autoplay pauses while the user is interacting (from pointer-down) and
// resumes once the carousel settles.
package autoplay

import (
	"time"

	"github.com/snapdeck/snapdeck/pkg/carousel"
)

// DefaultInterval is used when New is given a non-positive interval.
const DefaultInterval = 5 * time.Second

// Plugin advances the carousel on host-driven ticks.
type Plugin struct {
	interval time.Duration
	car      *carousel.Carousel
	subs     []carousel.Subscription
	paused   bool
	last     time.Time
}

// New creates an autoplay plugin with the given advance interval.
func New(interval time.Duration) *Plugin {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Plugin{interval: interval}
}

// Init implements carousel.Plugin. It subscribes to pointer and settle
// events so autoplay yields to user interaction.
func (p *Plugin) Init(c *carousel.Carousel) {
	p.car = c
	p.paused = false
	p.last = time.Now()
	p.subs = append(p.subs,
		c.On(carousel.EventPointerDown, func(carousel.Payload) {
			p.paused = true
		}),
		c.On(carousel.EventSettle, func(carousel.Payload) {
			p.paused = false
			p.last = time.Now()
		}),
	)
}

// Tick advances the carousel when the interval has elapsed. Safe to call at
// any frequency; calls before Init or after Destroy do nothing.
func (p *Plugin) Tick(now time.Time) {
	if p.car == nil || p.paused || p.car.Dragging() {
		return
	}
	if now.Sub(p.last) < p.interval {
		return
	}
	p.last = now
	p.car.ScrollNext()
}

// Destroy implements carousel.Plugin and removes all subscriptions.
func (p *Plugin) Destroy() {
	for _, s := range p.subs {
		p.car.Off(s)
	}
	p.subs = nil
	p.car = nil
}

// Ensure Plugin implements carousel.Plugin.
var _ carousel.Plugin = (*Plugin)(nil)
