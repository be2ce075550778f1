package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/showcase/internal/content"
	"github.com/jask/showcase/internal/nav"
)

// playCmd auto-advances a carousel without the interactive UI and prints each
// slide as it comes up.
func (c *cli) playCmd() *cobra.Command {
	var (
		steps    int
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "play <carousel>",
		Short: "Print a carousel's slides as it auto-advances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			provider, closeProvider, err := c.provider(ctx)
			if err != nil {
				return err
			}
			defer closeProvider()

			comp, err := provider.Component(ctx, args[0])
			if err != nil {
				return err
			}
			if comp.Kind != content.KindCarousel {
				return fmt.Errorf("%s is a %s, not a carousel", comp.Name, comp.Kind)
			}
			out := cmd.OutOrStdout()
			if len(comp.Items) == 0 {
				fmt.Fprintf(out, "%s has no slides\n", comp.Name)
				return nil
			}
			printSlide(out, comp, 0)
			if len(comp.Items) == 1 || steps <= 0 {
				return nil
			}

			if interval <= 0 {
				interval = c.cfg.Carousel.Interval
			}
			// Every advance is handed over before the next tick fires; done
			// releases a pending send so Close can stop the ticker.
			changes := make(chan nav.CarouselState)
			done := make(chan struct{})
			carousel := nav.NewCarousel(len(comp.Items),
				nav.WithScheduler(nav.TickerScheduler{}),
				nav.WithInterval(interval),
				nav.WithOnChange(func(st nav.CarouselState) {
					select {
					case changes <- st:
					case <-done:
					}
				}),
			)
			defer carousel.Close()
			defer close(done)
			c.logger.Debug("playing carousel", zap.String("component", comp.Name), zap.Duration("interval", interval))

			for i := 0; i < steps; i++ {
				select {
				case st := <-changes:
					printSlide(out, comp, st.Index)
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 3, "number of advances to print")
	cmd.Flags().DurationVar(&interval, "interval", 0, "override carousel.interval")
	return cmd
}

func printSlide(w io.Writer, comp content.Component, index int) {
	item := comp.Items[index]
	line := fmt.Sprintf("[%d/%d] %s", index+1, len(comp.Items), item.Title)
	if item.Link.Visible() {
		line += " -> " + item.Link.Href
	}
	fmt.Fprintln(w, line)
}
