package cli

import (
	"fmt"
	"path/filepath"

	"themepal/internal/config"
	"themepal/internal/logger"
	"themepal/internal/palette"
	"themepal/internal/report"
	"themepal/internal/semantic"
	"themepal/internal/theme"
)

// loadInputs checks that the palette and theme exist, then loads both.
func (app *App) loadInputs() (*palette.Palette, *theme.Document, error) {
	if err := config.RequireFile("", app.Config.Palette); err != nil {
		return nil, nil, err
	}
	if err := config.RequireFile("", app.Config.Theme); err != nil {
		return nil, nil, err
	}

	pal, err := palette.Load(app.Config.Palette)
	if err != nil {
		return nil, nil, err
	}
	app.printer.Info(fmt.Sprintf("Loaded %d palette entries from %s", pal.Len(), filepath.Base(app.Config.Palette)))

	doc, err := theme.Load(app.Config.Theme)
	if err != nil {
		return nil, nil, err
	}
	return pal, doc, nil
}

// runNormalize rewrites every theme color into canonical hex form.
func (app *App) runNormalize() error {
	pal, doc, err := app.loadInputs()
	if err != nil {
		return err
	}
	rep := report.New(app.printer)
	name := filepath.Base(doc.Path())

	replaced := theme.NormalizeColors(doc, !app.Options.DryRun)
	logger.Debug("Normalization finished", "theme", doc.Path(), "replacements", len(replaced))

	if app.Options.DryRun {
		rep.Replacements("Normalize dry-run changes:", replaced)
		app.printer.Info(fmt.Sprintf("Planned %d changes.", len(replaced)))
		if app.Options.Diff {
			preview, err := theme.Parse(doc.Original())
			if err != nil {
				return err
			}
			theme.NormalizeColors(preview, true)
			return app.printDiff(rep, name, doc.Original(), preview)
		}
		return nil
	}

	if err := doc.Save(); err != nil {
		return err
	}
	app.printer.Success(fmt.Sprintf("Normalized %d color values in %s", len(replaced), name))
	app.printer.Println("(Use --semantic to apply role-based color assignments.)")

	if app.Options.Diff {
		if err := app.printDiff(rep, name, doc.Original(), doc); err != nil {
			return err
		}
	}
	if app.Options.Report {
		app.printer.Println("")
		rep.Replacements("Change Report:", replaced)
		rep.Audit(report.AuditPalette(doc.Values(), pal.SortedColors()))
	}
	return nil
}

// runSemantic assigns role colors to theme entries.
func (app *App) runSemantic() error {
	pal, doc, err := app.loadInputs()
	if err != nil {
		return err
	}
	if err := config.RequireFile("mappings file ", app.Config.Mappings); err != nil {
		return err
	}
	if err := config.RequireFile("roles file ", app.Config.Roles); err != nil {
		return err
	}

	mappings, roles, err := semantic.Load(app.Config.Mappings, app.Config.Roles)
	if err != nil {
		return err
	}

	rep := report.New(app.printer)
	rep.Overlaps(semantic.DetectOverlaps(mappings))

	colors := semantic.ResolveColors(roles, pal)
	rewriter := semantic.NewRewriter(mappings, colors)
	name := filepath.Base(doc.Path())

	if app.Options.DryRun {
		result := rewriter.Rewrite(doc, true)
		rep.PlannedChanges(result.Changes)
		if app.Options.Diff {
			preview, err := theme.Parse(doc.Original())
			if err != nil {
				return err
			}
			rewriter.Rewrite(preview, false)
			return app.printDiff(rep, name, doc.Original(), preview)
		}
		return nil
	}

	result := rewriter.Rewrite(doc, false)
	if err := doc.Save(); err != nil {
		return err
	}
	app.printer.Success(fmt.Sprintf("Applied %d semantic changes (fg+bg).", result.Applied))

	if app.Options.Diff {
		if err := app.printDiff(rep, name, doc.Original(), doc); err != nil {
			return err
		}
	}
	if app.Options.Report {
		rep.AppliedChanges(result.Changes)
		rep.Audit(report.AuditPalette(doc.Values(), pal.SortedColors()))
	}
	return nil
}

func (app *App) printDiff(rep *report.Reporter, name string, before []byte, after *theme.Document) error {
	data, err := after.Bytes()
	if err != nil {
		return err
	}
	if !rep.Diff(name, before, data) {
		app.printer.Info("No differences.")
	}
	return nil
}
