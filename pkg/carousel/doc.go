// Package carousel implements a snap-aligned item carousel engine.
//
// # Overview
//
// The engine owns the carousel's logical state: an ordered slide registry, a
// scroll offset with a pointer-drag state machine, per-slide snap points
// (computed by [github.com/snapdeck/snapdeck/pkg/carousel/snap]), the selected
// index, and enabled/disabled state for previous/next controls. Hosts feed it
// discrete input — pointer events, navigation calls, structural and resize
// notifications — and observe it through a typed event bus and read-only
// accessors. Rendering is entirely the host's concern.
//
// # Lifecycle
//
// A carousel is created with [New], becomes ready on the first [Carousel.Attach],
// and is torn down with [Carousel.Destroy]:
//
//	c := carousel.New(carousel.Options{Align: carousel.AlignStart})
//	c.Attach(40, []carousel.SlideSpec{{ID: "a", Size: 30}, {ID: "b", Size: 30}})
//	c.ScrollNext()
//	c.Destroy()
//
// Plugins registered in [Options.Plugins] are initialized in order during
// Attach and destroyed in reverse order during Destroy, exactly once. After
// Destroy every API call is a no-op.
//
// # Error model
//
// The engine absorbs invalid input instead of reporting it: out-of-range
// indices are clamped, unrecognized orientation/alignment strings leave the
// previous value in place, and every operation on an empty carousel is a
// no-op. No engine method returns an error or panics on bad input.
//
// # Concurrency
//
// The engine is single-threaded and synchronous. All methods must be called
// from one goroutine (for bubbletea hosts, the update loop). Work that must
// be coalesced — selection sync after external offset writes, reflow after
// resize bursts — is deferred to the [Carousel.Flush] frame barrier, which
// hosts call once per rendering frame while [Carousel.Dirty] reports true.
package carousel
