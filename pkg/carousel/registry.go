package carousel

import "github.com/snapdeck/snapdeck/pkg/carousel/snap"

// SlideSpec declares one slide: a stable identity and its size along the
// scroll axis. Positions are derived by the registry, never supplied.
type SlideSpec struct {
	ID   string
	Size float64
}

// registry keeps the ordered slide list and its derived layout. Descriptors
// are rebuilt in full on every structural change and never persisted.
type registry struct {
	specs  []SlideSpec
	slides []snap.Slide
}

// set replaces the slide list and recomputes positions with the given gap.
func (r *registry) set(specs []SlideSpec, gap float64) {
	r.specs = make([]SlideSpec, len(specs))
	copy(r.specs, specs)
	r.relayout(gap)
}

// relayout recomputes slide positions from the current specs. Called after
// set and after option changes that affect spacing.
func (r *registry) relayout(gap float64) {
	sizes := make([]float64, len(r.specs))
	for i, s := range r.specs {
		sizes[i] = s.Size
	}
	r.slides = snap.Layout(sizes, gap)
}

func (r *registry) count() int {
	return len(r.specs)
}
