package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/localdumbkat/polywal/internal/apply"
	"github.com/localdumbkat/polywal/internal/tui"
	"github.com/localdumbkat/polywal/internal/ui"
)

func newPickCmd(p *ui.Printer) *cobra.Command {
	return &cobra.Command{
		Use:                "pick",
		Short:              "Choose a profile interactively and apply it",
		Long:               "Open a picker showing every profile's colors against the current palette. Enter applies the highlighted profile using the same flags as the root command.",
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, paths, reg, err := setup(cmd)
			if err != nil {
				return err
			}
			current, err := selectProfile(p, reg, f)
			if err != nil {
				return err
			}
			palette := loadPreviewPalette(p, paths.Palette)

			prog := tea.NewProgram(
				tui.New(reg.Profiles(), palette, current.Name),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			final, err := prog.Run()
			if err != nil {
				return fmt.Errorf("running picker: %w", err)
			}

			picked, ok := final.(tui.Model).Chosen()
			if !ok {
				p.Info("No profile applied")
				return nil
			}
			return apply.New(p).Run(newRunConfig(f, paths, picked))
		},
	}
}
