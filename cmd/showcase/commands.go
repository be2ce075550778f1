package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/showcase/internal/content"
	"github.com/jask/showcase/internal/database"
	"github.com/jask/showcase/internal/tui"
)

func (c *cli) runCmd() *cobra.Command {
	var component string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the interactive gallery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), component)
		},
	}
	cmd.Flags().StringVarP(&component, "component", "c", "", "component to focus first")
	return cmd
}

func (c *cli) run(ctx context.Context, start string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	provider, closeProvider, err := c.provider(ctx)
	if err != nil {
		return err
	}
	defer closeProvider()

	app := tui.New(ctx, provider, tui.Config{
		Theme:       c.cfg.UI.Theme,
		Interval:    c.cfg.Carousel.Interval,
		Autoplay:    c.cfg.Carousel.Autoplay,
		NarrowWidth: c.cfg.Tabs.NarrowWidth,
		Start:       start,
	}, c.logger)
	defer app.Close()

	c.logger.Info("gallery started", zap.String("start", start))
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("gallery: %w", err)
	}
	return nil
}

func (c *cli) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the database and store the demo page if it is empty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()
			fmt.Fprintf(cmd.OutOrStdout(), "database ready at %s\n", c.cfg.Database.Path)
			return nil
		},
	}
}

func (c *cli) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <layout.json>",
		Short: "Replace stored components with a layout file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read layout: %w", err)
			}
			page, err := content.Decode(data)
			if err != nil {
				return err
			}
			db, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()
			if err := database.ImportPage(cmd.Context(), db, page); err != nil {
				return fmt.Errorf("import: %w", err)
			}
			c.logger.Info("layout imported", zap.String("file", args[0]), zap.Int("components", len(page.Components)))
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d components\n", len(page.Components))
			return nil
		},
	}
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, closeProvider, err := c.provider(cmd.Context())
			if err != nil {
				return err
			}
			defer closeProvider()
			list, err := provider.Components(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tKIND\tVARIANT\tITEMS")
			for _, comp := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", comp.Name, comp.Kind, comp.Variant, len(comp.Items))
			}
			return w.Flush()
		},
	}
}
