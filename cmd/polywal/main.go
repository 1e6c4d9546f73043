package main

import (
	"errors"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/localdumbkat/polywal/internal/apply"
	"github.com/localdumbkat/polywal/internal/config"
	"github.com/localdumbkat/polywal/internal/model"
	"github.com/localdumbkat/polywal/internal/storage"
	"github.com/localdumbkat/polywal/internal/ui"
)

// Set at build time with -ldflags "-X main.version=..."
var version = "dev"

func newRootCmd(p *ui.Printer) *cobra.Command {
	root := &cobra.Command{
		Use:   "polywal",
		Short: "Apply pywal colors to your polybar config",
		Long: `polywal copies the colors generated by pywal into the [colors] section
of your polybar config, using a color profile to decide which palette
entry goes to which slot.

Profiles map the slots background, background-alt, foreground, primary,
secondary and alert to either a palette index (1-based) or a fixed color.
Three profiles are built in; more can be defined in
$XDG_CONFIG_HOME/polywal/profiles.yaml.

Examples:
  polywal              apply profile1 to ~/.config/polybar/config.ini
  polywal -p2 -b       apply profile2 after writing config.ini.bak
  sudo polywal -g      apply profile1 to /etc/xdg/polybar/config.ini`,
		Version:            version,
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, paths, reg, err := setup(cmd)
			if err != nil {
				return err
			}
			profile, err := selectProfile(p, reg, f)
			if err != nil {
				return err
			}
			return apply.New(p).Run(newRunConfig(f, paths, profile))
		},
	}

	flags := root.PersistentFlags()
	flags.BoolP("global", "g", false, "modify the global config ("+config.GlobalPolybarConfig+")")
	flags.StringArrayP("profile", "p", nil, "profile to apply, by name or number (-p1, -p2, -p3)")
	flags.Bool("profile1", false, "apply profile1 (default)")
	flags.Bool("profile2", false, "apply profile2")
	flags.Bool("profile3", false, "apply profile3")
	flags.BoolP("backup", "b", false, "write a .bak copy of the config before modifying it")
	flags.Bool("verbose", false, "print every color written")
	flags.String("colors", "", "pywal color cache (default $XDG_CACHE_HOME/wal/colors)")
	flags.String("config", "", "polybar config to modify instead of the default path")
	flags.String("profiles", "", "profile definitions (default $XDG_CONFIG_HOME/polywal/profiles.yaml)")

	root.AddCommand(newProfilesCmd(p), newPickCmd(p))
	return root
}

type runFlags struct {
	global   bool
	backup   bool
	verbose  bool
	profile  []string
	profile1 bool
	profile2 bool
	profile3 bool
	colors   string
	config   string
	profiles string
}

func readFlags(cmd *cobra.Command) runFlags {
	var f runFlags
	flags := cmd.Flags()
	f.global, _ = flags.GetBool("global")
	f.backup, _ = flags.GetBool("backup")
	f.verbose, _ = flags.GetBool("verbose")
	f.profile, _ = flags.GetStringArray("profile")
	f.profile1, _ = flags.GetBool("profile1")
	f.profile2, _ = flags.GetBool("profile2")
	f.profile3, _ = flags.GetBool("profile3")
	f.colors, _ = flags.GetString("colors")
	f.config, _ = flags.GetString("config")
	f.profiles, _ = flags.GetString("profiles")
	return f
}

func resolvePaths(f runFlags) (config.Paths, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return config.Paths{}, err
	}
	if f.colors != "" {
		paths.Palette = f.colors
	}
	if f.profiles != "" {
		paths.Profiles = f.profiles
	}
	if f.config != "" {
		if f.global {
			paths.Global = f.config
		} else {
			paths.Local = f.config
		}
	}
	return paths, nil
}

// setup reads the flags shared by every command and loads the profiles
func setup(cmd *cobra.Command) (runFlags, config.Paths, *model.Registry, error) {
	f := readFlags(cmd)
	paths, err := resolvePaths(f)
	if err != nil {
		return f, config.Paths{}, nil, err
	}
	reg, err := config.LoadRegistry(paths.Profiles)
	if err != nil {
		return f, paths, nil, err
	}
	return f, paths, reg, nil
}

// selectProfile picks the lowest numbered profile requested through -pN or
// --profileN, then the last -p NAME, then the default. A number with no
// matching profile is ignored with a warning.
func selectProfile(p *ui.Printer, reg *model.Registry, f runFlags) (model.Profile, error) {
	var numbered []int
	for n, set := range []bool{f.profile1, f.profile2, f.profile3} {
		if set {
			numbered = append(numbered, n+1)
		}
	}

	var named string
	for _, v := range f.profile {
		n, err := strconv.Atoi(v)
		switch {
		case v == "":
		case err != nil:
			named = v
		case !hasProfile(reg, n):
			p.Warn("ignoring -p%s: no profile%s", v, v)
		default:
			numbered = append(numbered, n)
		}
	}

	if len(numbered) > 0 {
		return reg.Lookup(strconv.Itoa(slices.Min(numbered)))
	}
	if named != "" {
		return reg.Lookup(named)
	}
	return reg.Lookup(model.DefaultProfile)
}

func hasProfile(reg *model.Registry, n int) bool {
	if n < 1 {
		return false
	}
	_, err := reg.Lookup(strconv.Itoa(n))
	return err == nil
}

// trimDanglingProfileFlag drops a trailing -p with no value, which pflag
// would otherwise reject.
func trimDanglingProfileFlag(args []string) []string {
	if n := len(args); n > 0 && (args[n-1] == "-p" || args[n-1] == "--profile") {
		return args[:n-1]
	}
	return args
}

func newRunConfig(f runFlags, paths config.Paths, profile model.Profile) config.RunConfig {
	return config.New(config.Options{
		Global:  f.global,
		Backup:  f.backup,
		Verbose: f.verbose,
		Profile: profile,
		Paths:   paths,
	})
}

// loadPreviewPalette returns the palette for display, or an empty one
// with a warning when the cache cannot be read.
func loadPreviewPalette(p *ui.Printer, path string) model.Palette {
	palette, err := storage.LoadPalette(path)
	if err != nil {
		p.Warn("color cache unavailable, showing palette indices: %v", err)
		return model.NewPalette(nil)
	}
	return palette
}

func run(args []string, stdout, stderr io.Writer) int {
	p := ui.NewPrinter(stdout, stderr)
	cmd := newRootCmd(p)
	cmd.SetArgs(trimDanglingProfileFlag(args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		p.Error(err)
		var ee *apply.ExitError
		if errors.As(err, &ee) && ee.Hint != "" {
			p.Hint("%s", ee.Hint)
		}
	}
	return apply.ExitCode(err)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
