package deck

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/snapdeck/snapdeck/pkg/carousel"
	snaperrors "github.com/snapdeck/snapdeck/pkg/errors"
)

// Settings holds presentation-wide options declared in the manifest.
// Zero values fall back to engine defaults.
type Settings struct {
	Orientation string  `toml:"orientation"`
	Align       string  `toml:"align"`
	Loop        bool    `toml:"loop"`
	Gap         float64 `toml:"gap"`

	// SlideWidth is the default size of slides along the scroll axis, in
	// terminal cells. Individual slides may override it.
	SlideWidth float64 `toml:"slide_width"`
}

// Slide is a single entry in a deck.
type Slide struct {
	ID    string  `toml:"id"`
	Title string  `toml:"title"`
	Body  string  `toml:"body"`
	Width float64 `toml:"width"`
}

// Deck is a parsed and validated slide deck.
type Deck struct {
	Title    string   `toml:"title"`
	Settings Settings `toml:"settings"`
	Slides   []Slide  `toml:"slides"`
}

// Load reads and parses a deck manifest from disk.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, snaperrors.New(snaperrors.ErrCodeFileNotFound, "deck file not found: %s", path)
	}
	if err != nil {
		return nil, snaperrors.Wrap(snaperrors.ErrCodeInternal, err, "reading deck file %s", path)
	}
	return Parse(data)
}

// Read parses a deck manifest from a reader.
func Read(r io.Reader) (*Deck, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, snaperrors.Wrap(snaperrors.ErrCodeInternal, err, "reading deck")
	}
	return Parse(data)
}

// Parse decodes and validates a TOML deck manifest. Slides without an id
// are assigned a random UUID so the engine and state stores can identify
// them across reloads within a session.
func Parse(data []byte) (*Deck, error) {
	var d Deck
	if err := toml.Unmarshal(data, &d); err != nil {
		return nil, snaperrors.Wrap(snaperrors.ErrCodeInvalidFormat, err, "decoding deck manifest")
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	for i := range d.Slides {
		if d.Slides[i].ID == "" {
			d.Slides[i].ID = uuid.NewString()
		}
	}
	return &d, nil
}

func (d *Deck) validate() error {
	if len(d.Slides) == 0 {
		return snaperrors.New(snaperrors.ErrCodeInvalidDeck, "deck has no slides")
	}
	if d.Settings.Orientation != "" {
		if _, ok := carousel.ParseOrientation(d.Settings.Orientation); !ok {
			return snaperrors.New(snaperrors.ErrCodeInvalidOption,
				"unknown orientation %q (want horizontal or vertical)", d.Settings.Orientation)
		}
	}
	if d.Settings.Align != "" {
		if _, ok := carousel.ParseAlign(d.Settings.Align); !ok {
			return snaperrors.New(snaperrors.ErrCodeInvalidOption,
				"unknown align %q (want start, center or end)", d.Settings.Align)
		}
	}
	if d.Settings.Gap < 0 {
		return snaperrors.New(snaperrors.ErrCodeInvalidDeck, "gap must not be negative")
	}
	if d.Settings.SlideWidth < 0 {
		return snaperrors.New(snaperrors.ErrCodeInvalidDeck, "slide_width must not be negative")
	}
	seen := make(map[string]int, len(d.Slides))
	for i, s := range d.Slides {
		if s.Width < 0 {
			return snaperrors.New(snaperrors.ErrCodeInvalidDeck, "slide %d: width must not be negative", i)
		}
		if s.ID == "" {
			continue
		}
		if prev, ok := seen[s.ID]; ok {
			return snaperrors.New(snaperrors.ErrCodeInvalidDeck,
				"slides %d and %d share id %q", prev, i, s.ID)
		}
		seen[s.ID] = i
	}
	return nil
}

// Specs converts the deck into carousel slide specs. Slides without an
// explicit width use the deck's slide_width setting, then fallbackWidth.
func (d *Deck) Specs(fallbackWidth float64) []carousel.SlideSpec {
	specs := make([]carousel.SlideSpec, len(d.Slides))
	for i, s := range d.Slides {
		size := s.Width
		if size == 0 {
			size = d.Settings.SlideWidth
		}
		if size == 0 {
			size = fallbackWidth
		}
		specs[i] = carousel.SlideSpec{ID: s.ID, Size: size}
	}
	return specs
}

// Options converts the deck's settings into engine options. Settings left
// empty in the manifest keep the engine defaults.
func (d *Deck) Options() carousel.Options {
	opts := carousel.Options{
		Loop: d.Settings.Loop,
		Gap:  d.Settings.Gap,
	}
	if o, ok := carousel.ParseOrientation(d.Settings.Orientation); ok {
		opts.Orientation = o
	}
	if a, ok := carousel.ParseAlign(d.Settings.Align); ok {
		opts.Align = a
	}
	return opts
}

// SlideByID returns the slide with the given id.
func (d *Deck) SlideByID(id string) (Slide, bool) {
	for _, s := range d.Slides {
		if s.ID == id {
			return s, true
		}
	}
	return Slide{}, false
}

// DisplayTitle returns the deck title, or a placeholder when the manifest
// doesn't declare one.
func (d *Deck) DisplayTitle() string {
	if t := strings.TrimSpace(d.Title); t != "" {
		return t
	}
	return "Untitled deck"
}
