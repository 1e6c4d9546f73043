// Package apply runs the polywal pipeline: back up the target, read the
// pywal palette, load the polybar config, merge the profile, write it back.
package apply

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/localdumbkat/polywal/internal/config"
	"github.com/localdumbkat/polywal/internal/model"
	"github.com/localdumbkat/polywal/internal/storage"
	"github.com/localdumbkat/polywal/internal/ui"
)

// Applicator executes a RunConfig
type Applicator struct {
	out *ui.Printer
}

// New creates an Applicator reporting through out
func New(out *ui.Printer) *Applicator {
	return &Applicator{out: out}
}

// Run applies cfg. Fatal conditions are returned as *ExitError.
func (a *Applicator) Run(cfg config.RunConfig) error {
	path := cfg.TargetPath()
	profile := cfg.Profile()
	a.out.SetVerbose(cfg.Verbose())

	if cfg.Backup() {
		bak, err := storage.Backup(path)
		if err != nil {
			return &ExitError{
				Code: ExitFailure,
				Err:  fmt.Errorf("could not back up %s config: %w", cfg.Target(), err),
				Hint: privilegeHint(cfg, err),
			}
		}
		a.out.Info("Backup written to %s", bak)
	}

	palette, err := a.loadPalette(cfg)
	if err != nil {
		return err
	}

	doc, err := a.loadTarget(cfg)
	if err != nil {
		return err
	}

	for _, r := range Merge(doc, profile, palette) {
		a.report(r, palette)
	}

	if err := a.saveTarget(cfg, doc); err != nil {
		return err
	}

	a.out.Success("Applied %s to %s config %s", profile.Name, cfg.Target(), path)
	return nil
}

func (a *Applicator) loadPalette(cfg config.RunConfig) (model.Palette, error) {
	palette, err := storage.LoadPalette(cfg.PalettePath())
	if errors.Is(err, fs.ErrNotExist) {
		return model.Palette{}, &ExitError{
			Code: ExitMissingPalette,
			Err:  fmt.Errorf("color cache %s not found", cfg.PalettePath()),
			Hint: "run wal to generate a color scheme first",
		}
	}
	if err != nil {
		return model.Palette{}, &ExitError{Code: ExitMissingPalette, Err: err}
	}
	if palette.Len() == 0 {
		a.out.Warn("color cache %s is empty", cfg.PalettePath())
	}
	return palette, nil
}

// loadTarget reads the polybar config. A missing local config is created
// with an empty [colors] section and the run stops so the user can re-run;
// the global config must already exist.
func (a *Applicator) loadTarget(cfg config.RunConfig) (*storage.Document, error) {
	path := cfg.TargetPath()

	if cfg.Target() == config.TargetLocal {
		created, err := storage.Bootstrap(path, ColorsSection)
		if err != nil {
			return nil, &ExitError{Code: ExitBadTarget, Err: fmt.Errorf("could not read local polybar config: %w", err)}
		}
		if created {
			a.out.Info("Created new local polybar config at %s", path)
			return nil, &ExitError{
				Code: ExitBootstrapped,
				Err:  fmt.Errorf("local polybar config did not exist, no colors applied yet"),
				Hint: "run polywal again to apply colors",
			}
		}
	}

	doc, err := storage.LoadDocument(path)
	if err != nil {
		return nil, &ExitError{Code: ExitBadTarget, Err: fmt.Errorf("could not read %s polybar config: %w", cfg.Target(), err)}
	}
	return doc, nil
}

func (a *Applicator) saveTarget(cfg config.RunConfig, doc *storage.Document) error {
	err := storage.SaveDocument(cfg.TargetPath(), doc)
	if err == nil {
		return nil
	}

	return &ExitError{
		Code: ExitWriteFailed,
		Err:  fmt.Errorf("could not write to %s polybar config: %w", cfg.Target(), err),
		Hint: privilegeHint(cfg, err),
	}
}

// privilegeHint suggests sudo when a global run is denied access
func privilegeHint(cfg config.RunConfig, err error) string {
	if cfg.Target() == config.TargetGlobal && errors.Is(err, fs.ErrPermission) {
		return "the global config is usually owned by root; re-run with sudo"
	}
	return ""
}

func (a *Applicator) report(r model.Resolution, palette model.Palette) {
	switch r.Outcome {
	case model.Clamped:
		a.out.Warn("%s: palette index %s out of range (%d colors), using color %d", r.Slot, r.Source, palette.Len(), palette.Len())
	case model.Skipped:
		a.out.Warn("%s: palette is empty, leaving value unchanged", r.Slot)
		return
	}

	if _, isIndex := r.Source.(model.Index); isIndex {
		a.out.Detail("%-14s = %s (color %s)", r.Slot, r.Color, r.Source)
	} else {
		a.out.Detail("%-14s = %s", r.Slot, r.Color)
	}
}
