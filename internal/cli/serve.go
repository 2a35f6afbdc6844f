package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/snapdeck/snapdeck/pkg/carousel"
	"github.com/snapdeck/snapdeck/pkg/carousel/resume"
	"github.com/snapdeck/snapdeck/pkg/deck"
)

// serveViewport is the nominal viewport extent for headless engines. The
// HTTP surface only navigates between snap points, so the exact extent
// just needs to keep the snap geometry non-degenerate.
const serveViewport = 80

// serveShutdownTimeout bounds graceful shutdown after ctx cancellation.
const serveShutdownTimeout = 5 * time.Second

// newServeCmd creates the serve command exposing a deck over HTTP.
func newServeCmd() *cobra.Command {
	var (
		addr      string
		useResume bool
		store     storeFlags
	)

	cmd := &cobra.Command{
		Use:   "serve <deck.toml>",
		Short: "Serve a deck through an HTTP control surface",
		Long: `Serve runs a deck headless and exposes its carousel over HTTP:

  GET  /state         current selection and snap geometry
  POST /next          advance one slide
  POST /prev          go back one slide
  POST /goto/{index}  jump to a slide (clamped to the deck)
  POST /reinit        re-measure and settle on the nearest snap point

With --resume the selection is persisted, so a restarted server (or a
parallel present session pointed at the same store) picks up where the
deck left off.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			d, err := deck.Load(args[0])
			if err != nil {
				return err
			}

			opts := d.Options()
			if useResume {
				s, err := store.open(ctx)
				if err != nil {
					return err
				}
				defer s.Close()
				opts.Plugins = append(opts.Plugins, resume.New(ctx, s, deckKey(args[0]), logger))
			}

			srv := newDeckServer(d, opts, logger)
			return srv.listen(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&useResume, "resume", false, "persist the selection across restarts")
	store.register(cmd)

	return cmd
}

// =============================================================================
// Deck Server
// =============================================================================

// deckServer drives a headless carousel from HTTP requests. The engine is
// single-threaded, so every handler serializes through mu.
type deckServer struct {
	mu     sync.Mutex
	car    *carousel.Carousel
	deck   *deck.Deck
	logger *log.Logger
}

func newDeckServer(d *deck.Deck, opts carousel.Options, logger *log.Logger) *deckServer {
	car := carousel.New(opts)
	car.Attach(serveViewport, d.Specs(defaultServeSlideSize(opts)))
	return &deckServer{car: car, deck: d, logger: logger}
}

// defaultServeSlideSize keeps slides without declared sizes from collapsing
// the snap geometry to a single point.
func defaultServeSlideSize(opts carousel.Options) float64 {
	if opts.Orientation == carousel.OrientationVertical {
		return 8
	}
	return 40
}

func (s *deckServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/state", s.handleState)
	r.Post("/next", s.handleNext)
	r.Post("/prev", s.handlePrev)
	r.Post("/goto/{index}", s.handleGoto)
	r.Post("/reinit", s.handleReInit)

	return r
}

func (s *deckServer) listen(ctx context.Context, addr string) error {
	httpSrv := &http.Server{Addr: addr, Handler: s.routes()}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()
	s.logger.Info("serving deck", "title", s.deck.DisplayTitle(), "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serveShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}

// =============================================================================
// Handlers
// =============================================================================

// stateResponse is the JSON shape returned by every endpoint.
type stateResponse struct {
	Deck       string    `json:"deck"`
	Selected   int       `json:"selected"`
	Count      int       `json:"count"`
	SlideID    string    `json:"slideId,omitempty"`
	SlideTitle string    `json:"slideTitle,omitempty"`
	SnapPoints []float64 `json:"snapPoints"`
	Offset     float64   `json:"offset"`
	CanPrev    bool      `json:"canPrev"`
	CanNext    bool      `json:"canNext"`
}

func (s *deckServer) state() stateResponse {
	selected := s.car.SelectedScrollSnap()
	resp := stateResponse{
		Deck:       s.deck.DisplayTitle(),
		Selected:   selected,
		Count:      len(s.car.Slides()),
		SnapPoints: s.car.ScrollSnapList(),
		Offset:     s.car.ScrollOffset(),
		CanPrev:    s.car.CanScrollPrev(),
		CanNext:    s.car.CanScrollNext(),
	}
	if selected >= 0 && selected < len(s.deck.Slides) {
		resp.SlideID = s.deck.Slides[selected].ID
		resp.SlideTitle = s.deck.Slides[selected].Title
	}
	return resp
}

func (s *deckServer) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	resp := s.state()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *deckServer) handleNext(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.car.ScrollNext()
	resp := s.state()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *deckServer) handlePrev(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.car.ScrollPrev()
	resp := s.state()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *deckServer) handleGoto(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "index must be an integer"})
		return
	}

	s.mu.Lock()
	s.car.ScrollTo(index)
	resp := s.state()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *deckServer) handleReInit(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.car.ReInit()
	resp := s.state()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
