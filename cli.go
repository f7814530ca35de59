package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/ponysay/pkg/balloon"
	"gitlab.com/tinyland/lab/ponysay/pkg/config"
	"gitlab.com/tinyland/lab/ponysay/pkg/fortune"
	"gitlab.com/tinyland/lab/ponysay/pkg/listing"
	"gitlab.com/tinyland/lab/ponysay/pkg/pony"
	"gitlab.com/tinyland/lab/ponysay/pkg/render"
	"gitlab.com/tinyland/lab/ponysay/pkg/terminal"
)

var errNoMessage = errors.New("no message provided")

type cliOptions struct {
	pony        string
	balloon     string
	think       bool
	wrap        int
	ponyDirs    []string
	balloonDirs []string

	list        bool
	balloonList bool
	info        bool

	fortune      bool
	fortuneAll   bool
	fortuneEqual bool
	fortunePaths []string

	seed       uint64
	configPath string
	color      string
	verbose    bool
	version    bool
}

// ponyInfo is the --info document.
type ponyInfo struct {
	Path          string `yaml:"path"`
	pony.Metadata `yaml:",inline"`
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer, progName string) *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   progName + " [flags] [message...]",
		Short: "Print a message in a speech balloon spoken by a pony",
		Long: `Print a message in a speech balloon spoken by a pony.

The message is a random fortune when --fortune is given, otherwise the
arguments joined by spaces, otherwise standard input when it is not a
terminal.

Examples:
  ponysay hello
  ponysay -f twilight --think "what if"
  fortune | ponysay -b round
  ponysay --fortune --seed 7`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, args, stdin, stdout, stderr, progName)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVarP(&opts.pony, "pony", "f", "", "pony name or file")
	f.StringVarP(&opts.balloon, "balloon", "b", "", "balloon style name or file")
	f.BoolVar(&opts.think, "think", false, "use a thought balloon")
	f.IntVarP(&opts.wrap, "wrap", "W", 40, "balloon width in columns, 0 fits the terminal")
	f.StringArrayVar(&opts.ponyDirs, "ponydir", nil, "pony search directory (repeatable, colon lists accepted)")
	f.StringArrayVar(&opts.balloonDirs, "balloondir", nil, "balloon search directory (repeatable, colon lists accepted)")
	f.BoolVarP(&opts.list, "list", "l", false, "list available ponies")
	f.BoolVarP(&opts.balloonList, "balloonlist", "L", false, "list available balloon styles")
	f.BoolVar(&opts.info, "info", false, "print the selected pony's metadata as YAML")
	f.BoolVarP(&opts.fortune, "fortune", "F", false, "use a random fortune as the message")
	f.BoolVar(&opts.fortuneAll, "fortune-all", false, "include offensive fortune databases")
	f.BoolVar(&opts.fortuneEqual, "fortune-equal", false, "give every fortune database the same weight")
	f.StringArrayVar(&opts.fortunePaths, "fortune-path", nil, "fortune search directory (repeatable, colon lists accepted)")
	f.Uint64Var(&opts.seed, "seed", 0, "seed for pony and fortune selection")
	f.StringVar(&opts.configPath, "config", "", "path to configuration file")
	f.StringVar(&opts.color, "color", "", "color output: auto, always or never")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	f.BoolVar(&opts.version, "version", false, "print version and exit")

	return cmd
}

func runRoot(cmd *cobra.Command, opts *cliOptions, args []string, stdin io.Reader, stdout, stderr io.Writer, progName string) error {
	if opts.version {
		fmt.Fprintf(stdout, "ponysay %s (%s) built %s\n", version, commit, date)
		return nil
	}

	cfg, err := loadConfig(cmd, opts, progName)
	if err != nil {
		return err
	}
	logger := newLogger(stderr, cfg.Log.Level, opts.verbose)

	var seed *uint64
	if cmd.Flags().Changed("seed") {
		seed = &opts.seed
	}

	switch {
	case opts.list:
		lib := pony.Library{Roots: cfg.Paths.Ponies, Logger: logger}
		return writeList(stdout, lib.List())
	case opts.balloonList:
		return writeList(stdout, balloon.List(cfg.Paths.Balloons))
	case opts.info:
		return writeInfo(stdout, cfg, seed, logger)
	}

	message, err := resolveMessage(opts, cfg, args, stdin, seed, logger)
	if err != nil {
		logger.Warn("cli: no message", slog.String("error", err.Error()))
		return err
	}

	wrap := cfg.Render.Wrap
	if wrap == 0 {
		wrap = terminal.GetSize().Cols
	}

	out, err := render.Render(render.Options{
		Message:      message,
		Pony:         cfg.Render.Pony,
		PonyPaths:    cfg.Paths.Ponies,
		Seed:         seed,
		Balloon:      cfg.Render.Balloon,
		BalloonPaths: cfg.Paths.Balloons,
		Mode:         cfg.Mode(),
		WrapWidth:    max(1, wrap),
		Logger:       logger,
	})
	if err != nil {
		logger.Error("cli: render failed", slog.String("error", err.Error()))
		return err
	}

	w := terminal.Writer(stdout, terminal.ColorEnabled(cfg.ColorMode(), stdout))
	_, err = fmt.Fprintln(w, out)
	return err
}

// loadConfig reads the configuration file and lays the command line flags
// over it. Flags win over the file and the environment.
func loadConfig(cmd *cobra.Command, opts *cliOptions, progName string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFromFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if dirs := splitDirs(opts.ponyDirs); len(dirs) > 0 {
		cfg.Paths.Ponies = dirs
	}
	if dirs := splitDirs(opts.balloonDirs); len(dirs) > 0 {
		cfg.Paths.Balloons = dirs
	}
	if dirs := splitDirs(opts.fortunePaths); len(dirs) > 0 {
		cfg.Paths.Fortunes = dirs
	}
	if opts.pony != "" {
		cfg.Render.Pony = opts.pony
	}
	if opts.balloon != "" {
		cfg.Render.Balloon = opts.balloon
	}
	if opts.think || strings.Contains(progName, "think") {
		cfg.Render.Mode = balloon.ModeThink.String()
	}
	if cmd.Flags().Changed("wrap") {
		cfg.Render.Wrap = opts.wrap
	}
	if opts.color != "" {
		cfg.Render.Color = opts.color
	}
	if opts.fortuneAll {
		cfg.Fortune.IncludeOffensive = true
	}
	if opts.fortuneEqual {
		cfg.Fortune.EqualFiles = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func splitDirs(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, config.SplitPaths(v)...)
	}
	return out
}

func newLogger(w io.Writer, level string, verbose bool) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// resolveMessage picks the message source: a fortune when asked for, then
// the arguments, then standard input unless it is a terminal.
func resolveMessage(opts *cliOptions, cfg *config.Config, args []string, stdin io.Reader, seed *uint64, logger *slog.Logger) (string, error) {
	if opts.fortune {
		logger.Info("cli: using fortune")
		return fortune.Pick(fortune.Config{
			IncludeOffensive: cfg.Fortune.IncludeOffensive,
			EqualFiles:       cfg.Fortune.EqualFiles,
			Seed:             seed,
			SearchPaths:      cfg.Paths.Fortunes,
			Logger:           logger,
		})
	}

	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if stdin == nil {
		return "", errNoMessage
	}
	if f, ok := stdin.(*os.File); ok && terminal.IsTerminal(f) {
		return "", errNoMessage
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed reading stdin: %w", err)
	}
	if msg := strings.TrimSpace(string(data)); msg != "" {
		return msg, nil
	}
	return "", errNoMessage
}

func writeList(w io.Writer, names []string) error {
	width := 0
	if f, ok := w.(*os.File); ok && terminal.IsTerminal(f) {
		width = terminal.GetSizeFromFd(f.Fd()).Cols
	}
	if len(names) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, listing.Columns(names, width))
	return err
}

func writeInfo(w io.Writer, cfg *config.Config, seed *uint64, logger *slog.Logger) error {
	lib := pony.Library{Roots: cfg.Paths.Ponies, Logger: logger}
	name, err := lib.Select(cfg.Render.Pony, seed)
	if err != nil {
		return err
	}
	a, err := lib.Load(name)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ponyInfo{Path: a.Path, Metadata: a.Metadata}); err != nil {
		return fmt.Errorf("encode info: %w", err)
	}
	return enc.Close()
}
