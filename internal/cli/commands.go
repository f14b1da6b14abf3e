package cli

import (
	"fmt"

	"themepal/internal/config"
	"themepal/internal/palette"
	"themepal/internal/report"
	"themepal/internal/semantic"
	"themepal/internal/version"

	"github.com/spf13/cobra"
)

// addPaletteCommand adds the palette listing command
func (app *App) addPaletteCommand(rootCmd *cobra.Command) {
	var render bool
	var style string
	var width int

	paletteCmd := &cobra.Command{
		Use:   "palette",
		Short: "List the palette colors",
		Long: `List every named palette color with its hex value and a color swatch.
With --render the palette markdown document is rendered for the terminal instead.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := config.RequireFile("", app.Config.Palette); err != nil {
				return err
			}
			if render {
				rendered, err := palette.Render(app.Config.Palette, style, width)
				if err != nil {
					return err
				}
				app.printer.Print(rendered)
				return nil
			}

			pal, err := palette.Load(app.Config.Palette)
			if err != nil {
				return err
			}
			for _, line := range pal.Listing(app.printer.IsStylable()) {
				app.printer.Println(line)
			}
			app.printer.Info(fmt.Sprintf("%d entries, %d distinct colors", pal.Len(), len(pal.Colors())))
			return nil
		},
	}

	paletteCmd.Flags().BoolVar(&render, "render", false, "Render the palette markdown document")
	paletteCmd.Flags().StringVar(&style, "style", "auto", "Markdown style (auto|dark|light|notty|ascii)")
	paletteCmd.Flags().IntVar(&width, "width", 80, "Word wrap width for --render")
	rootCmd.AddCommand(paletteCmd)
}

// addOverlapsCommand adds the mappings overlap check
func (app *App) addOverlapsCommand(rootCmd *cobra.Command) {
	overlapsCmd := &cobra.Command{
		Use:   "overlaps",
		Short: "Report classification keys claimed by more than one role",
		Long: `Check the mappings file for classification keys (compared case-insensitively)
that appear under several roles. The first role listed in the mappings file wins.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := config.RequireFile("mappings file ", app.Config.Mappings); err != nil {
				return err
			}
			mappings, err := semantic.LoadMappings(app.Config.Mappings)
			if err != nil {
				return err
			}
			overlaps := semantic.DetectOverlaps(mappings)
			if len(overlaps) == 0 {
				app.printer.Success("No overlapping classification keys.")
				return nil
			}
			report.New(app.printer).Overlaps(overlaps)
			return nil
		},
	}
	rootCmd.AddCommand(overlapsCmd)
}

// addVersionCommand adds the version command
func (app *App) addVersionCommand(rootCmd *cobra.Command) {
	var detailed bool

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			if detailed {
				app.printer.Println(version.GetDetailedVersion())
			} else {
				app.printer.Println(version.GetFormattedVersion())
			}
		},
	}

	versionCmd.Flags().BoolVar(&detailed, "detailed", false, "Show detailed version information")
	rootCmd.AddCommand(versionCmd)
}
