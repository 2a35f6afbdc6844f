// Package resume provides a carousel plugin that remembers the selected
// slide across sessions.
//
// On init the plugin looks up the deck's last saved position and scrolls to
// it; afterwards every selection change is written back to the store. Store
// failures are logged and swallowed so a broken state backend never breaks
// presenting.
package resume

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/snapdeck/snapdeck/pkg/carousel"
	"github.com/snapdeck/snapdeck/pkg/statestore"
)

// Plugin persists the selected slide index through a statestore.Store.
type Plugin struct {
	store  statestore.Store
	deck   string
	logger *log.Logger

	ctx context.Context
	sub carousel.Subscription
	car *carousel.Carousel
}

// New creates a resume plugin that tracks positions for the named deck.
// If logger is nil, log.Default() is used.
func New(ctx context.Context, store statestore.Store, deck string, logger *log.Logger) *Plugin {
	if logger == nil {
		logger = log.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return &Plugin{store: store, deck: deck, logger: logger, ctx: ctx}
}

// Init implements carousel.Plugin. It restores the saved position, then
// subscribes to selection changes to keep the store current.
func (p *Plugin) Init(c *carousel.Carousel) {
	p.car = c

	pos, err := p.store.Get(p.ctx, p.deck)
	switch {
	case errors.Is(err, statestore.ErrNotFound):
		// First session for this deck.
	case err != nil:
		p.logger.Warn("restoring deck position failed", "deck", p.deck, "error", err)
	default:
		c.ScrollTo(pos.Index)
		p.logger.Debug("restored deck position", "deck", p.deck, "index", pos.Index)
	}

	p.sub = c.On(carousel.EventSelect, func(pl carousel.Payload) {
		err := p.store.Set(p.ctx, statestore.Position{
			Deck:    p.deck,
			Index:   pl.Index,
			SavedAt: time.Now().UTC(),
		})
		if err != nil {
			p.logger.Warn("saving deck position failed", "deck", p.deck, "error", err)
		}
	})
}

// Destroy implements carousel.Plugin and stops persisting positions.
func (p *Plugin) Destroy() {
	p.car.Off(p.sub)
	p.sub = carousel.Subscription{}
	p.car = nil
}

// Ensure Plugin implements carousel.Plugin.
var _ carousel.Plugin = (*Plugin)(nil)
