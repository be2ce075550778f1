package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/showcase/internal/config"
	"github.com/jask/showcase/internal/content"
	"github.com/jask/showcase/internal/database"
	"github.com/jask/showcase/internal/logging"
)

// cli carries state shared by every subcommand.
type cli struct {
	configPath string
	verbose    bool
	cfg        config.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "showcase",
		Short: "Terminal gallery for CMS kit components",
		Long: `showcase renders carousel, tab, promo and link-list components from a
layout file or a local sqlite store.

Run without arguments to open the interactive gallery.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init(cmd.Name() == "run" || cmd.Name() == "showcase")
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), "")
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/showcase/config.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(c.runCmd(), c.playCmd(), c.seedCmd(), c.importCmd(), c.listCmd())
	return root
}

// init loads config and builds the logger. Interactive commands always log
// to a file because the terminal belongs to the UI.
func (c *cli) init(interactive bool) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.cfg = cfg

	opts := logging.Options{Level: cfg.Log.Level, File: cfg.Log.File}
	if c.verbose {
		opts.Level = "debug"
	}
	if interactive && opts.File == "" {
		opts.File = filepath.Join(filepath.Dir(cfg.Database.Path), "showcase.log")
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return fmt.Errorf("mkdir log dir: %w", err)
		}
	}
	logger, err := logging.New(opts)
	if err != nil {
		return err
	}
	c.logger = logger
	return nil
}

// openStore migrates and opens the sqlite store, seeding demo content on
// first use.
func (c *cli) openStore(ctx context.Context) (*sql.DB, error) {
	path := c.cfg.Database.Path
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(path); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}
	return db, nil
}

// provider prefers the configured layout file over the database. The returned
// closer is always safe to call.
func (c *cli) provider(ctx context.Context) (content.Provider, func(), error) {
	if c.cfg.Content.Path != "" {
		c.logger.Debug("using layout file", zap.String("path", c.cfg.Content.Path))
		return content.FileProvider{Path: c.cfg.Content.Path}, func() {}, nil
	}
	db, err := c.openStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	return database.NewProvider(db), func() { _ = db.Close() }, nil
}
