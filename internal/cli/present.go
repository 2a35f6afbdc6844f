package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/snapdeck/snapdeck/pkg/carousel"
	"github.com/snapdeck/snapdeck/pkg/carousel/resume"
	"github.com/snapdeck/snapdeck/pkg/deck"
	"github.com/snapdeck/snapdeck/pkg/widget"
)

// newPresentCmd creates the present command for interactive playback.
func newPresentCmd() *cobra.Command {
	var (
		loop        bool
		orientation string
		align       string
		autoplay    time.Duration
		useResume   bool
		store       storeFlags
	)

	cmd := &cobra.Command{
		Use:   "present <deck.toml>",
		Short: "Present a deck as an interactive terminal carousel",
		Long: `Present loads a TOML deck manifest and runs it as a swipeable carousel in
the terminal. Navigate with arrow keys, vim keys, or by dragging with the
mouse; the carousel snaps to the nearest slide when the drag ends.

Settings from the manifest can be overridden per run with flags, and
--resume continues from where the previous session left off.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			d, err := deck.Load(args[0])
			if err != nil {
				return err
			}
			logger.Debug("loaded deck", "title", d.DisplayTitle(), "slides", len(d.Slides))

			if cmd.Flags().Changed("loop") {
				d.Settings.Loop = loop
			}
			if cmd.Flags().Changed("orientation") {
				if _, ok := carousel.ParseOrientation(orientation); !ok {
					return fmt.Errorf("unknown orientation %q (want horizontal or vertical)", orientation)
				}
				d.Settings.Orientation = orientation
			}
			if cmd.Flags().Changed("align") {
				if _, ok := carousel.ParseAlign(align); !ok {
					return fmt.Errorf("unknown align %q (want start, center or end)", align)
				}
				d.Settings.Align = align
			}

			cfg := widget.Config{Autoplay: autoplay}
			if useResume {
				s, err := store.open(ctx)
				if err != nil {
					return err
				}
				defer s.Close()
				cfg.Plugins = append(cfg.Plugins, resume.New(ctx, s, deckKey(args[0]), logger))
			}

			p := tea.NewProgram(widget.New(d, cfg),
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
				tea.WithContext(ctx),
			)
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&loop, "loop", false, "wrap navigation past the first and last slide")
	cmd.Flags().StringVar(&orientation, "orientation", "", "scroll axis: horizontal or vertical")
	cmd.Flags().StringVar(&align, "align", "", "slide alignment: start, center or end")
	cmd.Flags().DurationVar(&autoplay, "autoplay", 0, "advance automatically at this interval (e.g. 10s)")
	cmd.Flags().BoolVar(&useResume, "resume", false, "continue from the last saved position")
	store.register(cmd)

	return cmd
}
