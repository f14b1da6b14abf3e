// Package cli provides the themepal command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"themepal/internal/config"
	"themepal/internal/logger"
	"themepal/internal/output"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Options holds the mode switches of the root command.
type Options struct {
	Semantic bool
	DryRun   bool
	Report   bool
	Diff     bool
	JSON     bool
}

// App represents the themepal CLI application
type App struct {
	Options Options
	Config  *config.Config

	// Out receives all user-facing output. Defaults to os.Stdout.
	Out io.Writer

	viper   *viper.Viper
	printer *output.Printer
}

// NewApp creates a new themepal CLI application
func NewApp() *App {
	return &App{
		Out:   os.Stdout,
		viper: config.NewViper(),
	}
}

// CreateRootCommand creates and configures the root command
func (app *App) CreateRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "themepal",
		Short: "Normalize or semantically remap theme colors from a palette",
		Long: `themepal reads a markdown palette table and a YAML theme, then either
normalizes every hex color in the theme to canonical #RRGGBB form (default)
or assigns palette colors to theme entries by semantic role (--semantic).`,
		Example: `  themepal                          # normalize only
  themepal --semantic                   # semantic remap using default files
  themepal --semantic --dry-run         # show planned changes
  themepal --semantic --mappings tools/mappings.yaml --roles tools/roles.yaml`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.initialize,
		RunE: func(_ *cobra.Command, _ []string) error {
			if app.Options.Semantic {
				return app.runSemantic()
			}
			return app.runNormalize()
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVar(&app.Options.Semantic, "semantic", false, "Enable semantic role remapping mode")
	flags.BoolVar(&app.Options.DryRun, "dry-run", false, "Show planned changes without writing the theme")
	flags.BoolVar(&app.Options.Report, "report", false, "After applying, print a change report and palette usage audit")
	flags.BoolVar(&app.Options.Diff, "diff", false, "Print a line diff of the theme file")

	persistent := rootCmd.PersistentFlags()
	persistent.String(config.KeyRoot, "", "Project root (default: nearest directory containing the palette)")
	persistent.String(config.KeyPalette, config.DefaultPalette, "Path to the palette markdown table")
	persistent.String(config.KeyTheme, config.DefaultTheme, "Path to the theme YAML")
	persistent.String(config.KeyMappings, config.DefaultMappings, "Path to semantic mappings YAML")
	persistent.String(config.KeyRoles, config.DefaultRoles, "Path to role -> palette color YAML")
	persistent.String(config.KeyLogLevel, config.DefaultLogLevel, "Set log level (debug|info|warn|error)")
	persistent.String(config.KeyLogFile, "", "Write logs to file instead of stderr")
	persistent.Bool(config.KeyPlain, false, "Disable colors and styling")
	persistent.BoolVar(&app.Options.JSON, "json", false, "Emit output as JSON lines")

	for _, key := range []string{
		config.KeyRoot, config.KeyPalette, config.KeyTheme, config.KeyMappings,
		config.KeyRoles, config.KeyLogLevel, config.KeyLogFile, config.KeyPlain,
	} {
		if err := app.viper.BindPFlag(key, persistent.Lookup(key)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", key, err))
		}
	}

	app.addPaletteCommand(rootCmd)
	app.addOverlapsCommand(rootCmd)
	app.addVersionCommand(rootCmd)

	return rootCmd
}

// initialize loads configuration and sets up logging and output before any command runs.
func (app *App) initialize(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(app.viper)
	if err != nil {
		return err
	}
	app.Config = cfg

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}

	app.printer = output.NewPrinter(
		output.WithWriter(app.Out),
		output.ForTerminal(app.Options.JSON, cfg.Plain),
	)

	logger.Debug("Configuration resolved", "root", cfg.Root, "palette", cfg.Palette, "theme", cfg.Theme)
	return nil
}
