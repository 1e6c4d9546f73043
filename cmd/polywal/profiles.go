package main

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/localdumbkat/polywal/internal/model"
	"github.com/localdumbkat/polywal/internal/ui"
)

const swatchWidth = 9

func newProfilesCmd(p *ui.Printer) *cobra.Command {
	return &cobra.Command{
		Use:                "profiles",
		Short:              "List available color profiles",
		Long:               "List built-in and user-defined profiles with the colors each would write, resolved against the current pywal palette.",
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, paths, reg, err := setup(cmd)
			if err != nil {
				return err
			}
			palette := loadPreviewPalette(p, paths.Palette)
			printProfiles(p, reg.Profiles(), palette)
			return nil
		},
	}
}

func printProfiles(p *ui.Printer, profiles []model.Profile, palette model.Palette) {
	nameCol := len("PROFILE")
	for _, prof := range profiles {
		if w := runewidth.StringWidth(prof.Name); w > nameCol {
			nameCol = w
		}
	}

	var header strings.Builder
	header.WriteString("  " + runewidth.FillRight("PROFILE", nameCol) + "  ")
	for _, slot := range model.Slots {
		header.WriteString(runewidth.FillRight(runewidth.Truncate(string(slot), swatchWidth, "…"), swatchWidth))
	}
	fmt.Fprintln(p.Out(), p.Styles().Detail.Render(strings.TrimRight(header.String(), " ")))

	for _, prof := range profiles {
		kind := ui.IconUserMade
		if prof.BuiltIn {
			kind = ui.IconBuiltIn
		}

		cells := make(map[model.Slot]string, len(model.Slots))
		for _, res := range prof.Resolve(palette) {
			label := res.Color
			if res.Outcome == model.Skipped {
				label = "color " + res.Source.String()
			}
			cells[res.Slot] = ui.Swatch(p.Renderer(), res.Color, label, swatchWidth)
		}

		var row strings.Builder
		row.WriteString(kind + " " + p.Styles().Name.Render(runewidth.FillRight(prof.Name, nameCol)) + "  ")
		for _, slot := range model.Slots {
			cell, ok := cells[slot]
			if !ok {
				cell = runewidth.FillRight("", swatchWidth)
			}
			row.WriteString(cell)
		}
		if prof.Description != "" {
			row.WriteString("  " + p.Styles().Detail.Render(prof.Description))
		}
		fmt.Fprintln(p.Out(), row.String())
	}
}
