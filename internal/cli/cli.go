package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/inkwell/pkg/buildinfo"
	"github.com/matzehuels/inkwell/pkg/cache"
	"github.com/matzehuels/inkwell/pkg/config"
	"github.com/matzehuels/inkwell/pkg/frame"
	"github.com/matzehuels/inkwell/pkg/pipeline"
	"github.com/matzehuels/inkwell/pkg/surface"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "inkwell"

	// annotationSkipConfig marks commands that must run without a valid
	// config file.
	annotationSkipConfig = "inkwell/skip-config"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Inkwell renders styled, animated signatures",
		Long:         `Inkwell renders a line of text as a styled signature (calligraphy, handwriting, modern or elegant) and exports it as PNG, JPEG, SVG or an animation frame sequence.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/inkwell/config.toml)")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.framesCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.stylesCommand())
	root.AddCommand(c.fontsCommand())
	root.AddCommand(c.palettesCommand())
	root.AddCommand(c.examplesCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file and attaches the logger to the command
// context.
func (c *CLI) setup(cmd *cobra.Command) error {
	if cmd.Annotations[annotationSkipConfig] == "" {
		cfg, err := config.Load(c.configPath)
		if err != nil {
			return err
		}
		c.config = cfg
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// =============================================================================
// Pipeline Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the artifact cache.
func newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	c, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(c, newKeyer(), loggerFromContext(ctx)), nil
}

// newSurface mounts a controller for p on a window of the configured size.
func newSurface(ctx context.Context, sched frame.Scheduler, p surface.Params, cfg config.Config) (*surface.Controller, error) {
	opts, err := pipeline.FromConfig(cfg, p)
	if err != nil {
		return nil, err
	}
	runner := pipeline.NewRunner(nil, nil, loggerFromContext(ctx))
	return runner.Mount(ctx, sched, opts)
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return cache.Observed(fc, "artifact"), nil
}

// newKeyer scopes artifact keys to the running build so a new release never
// serves bytes rendered by an older one.
func newKeyer() cache.Keyer {
	return cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/inkwell/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// writeOutput writes data to path, or to stdout when path is "-".
func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
