package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pthm/scrutey/internal/config"
	"github.com/pthm/scrutey/internal/input"
	"github.com/pthm/scrutey/internal/presenter"
	"github.com/pthm/scrutey/internal/reporter"
	"github.com/pthm/scrutey/internal/scrutey"
	"github.com/pthm/scrutey/internal/strategy"
	"github.com/pthm/scrutey/internal/ui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Global flags
	cfgFile string
	verbose bool

	settings = viper.New()
	cfg      *config.Config
	logger   = logrus.New()
)

// RootCmd reads input, guesses its format and pretty prints it
var RootCmd = &cobra.Command{
	Use:   "scrutey [file...]",
	Short: "Scrutinize and pretty print formatted data",
	Long: `scrutey reads text from files or standard input, guesses what kind
of data it is and prints it in a readable, format-aware way.

Every detection strategy scores the input; the most confident one decides
how it is rendered. JSON is pretty printed, Base64 is decoded, YAML is
re-indented and anything unrecognised is shown as is.

Examples:
  echo '{"hello":"world"}' | scrutey
  scrutey payload.txt
  scrutey --all config.yaml
  scrutey --format json a.txt b.txt`,
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: loadSettings,
	RunE:              runScrutinize,
	SilenceUsage:      true,
}

func init() {
	pflags := RootCmd.PersistentFlags()
	pflags.StringVar(&cfgFile, "config", "", "Config file (default is $XDG_CONFIG_HOME/scrutey/config.yaml)")
	pflags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	pflags.StringP("format", "f", "text", "Output format (text, json)")
	pflags.String("color", ui.ColorAuto, "Colorize output (auto, always, never)")
	pflags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	pflags.StringSlice("disable", nil, "Strategy ids to skip (see 'scrutey strategies')")

	flags := RootCmd.Flags()
	flags.BoolP("all", "a", false, "Show every strategy's score instead of the rendered input")
	flags.Float64("min-confidence", 0, "Render as nonsense when the top score is below this")

	_ = settings.BindPFlag("format", pflags.Lookup("format"))
	_ = settings.BindPFlag("color", pflags.Lookup("color"))
	_ = settings.BindPFlag("log_level", pflags.Lookup("log-level"))
	_ = settings.BindPFlag("all", flags.Lookup("all"))
	_ = settings.BindPFlag("min_confidence", flags.Lookup("min-confidence"))
	_ = settings.BindPFlag("disable", pflags.Lookup("disable"))
}

func loadSettings(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(settings, cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded

	setupLogging(logger, cmd.ErrOrStderr(), cfg, verbose)
	return nil
}

func runScrutinize(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{input.Stdin}
	}
	return scrutinizePaths(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, paths)
}

// scrutinizePaths classifies every path ("-" is stdin) and writes the
// rendered input, or a report of every score, to w
func scrutinizePaths(ctx context.Context, stdin io.Reader, w, errW io.Writer, cfg *config.Config, paths []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	u := ui.New(w, errW, cfg.Format, cfg.Color)
	s, err := newScrutinizer(u, cfg)
	if err != nil {
		return err
	}
	report := u.IsJSON() || cfg.All

	if len(paths) == 1 && !report {
		out, err := s.Scrutinize(input.Read(stdin, paths[0]))
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, out)
		return err
	}

	texts := make([]string, len(paths))
	for i, path := range paths {
		text, err := input.Read(stdin, path)
		if err != nil {
			return err
		}
		texts[i] = text
	}

	results, err := s.ClassifyAll(ctx, texts)
	if err != nil {
		return err
	}

	if report {
		entries := make([]reporter.Entry, len(results))
		for i, result := range results {
			entries[i] = reporter.Entry{Source: paths[i], Result: result}
		}

		var rep reporter.Reporter
		if u.IsJSON() {
			rep = reporter.NewJSONReporter(w)
		} else {
			rep = reporter.NewTerminalReporter(w, u)
		}
		return rep.Report(entries)
	}

	var b strings.Builder
	for i, result := range results {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(u.Styles.Banner.Render(fmt.Sprintf("==> %s <==", paths[i])))
		b.WriteString("\n")
		b.WriteString(s.Render(result))
	}
	_, err = fmt.Fprint(w, b.String())
	return err
}

// enabledRegistry returns the built-in registry minus the disabled ids,
// rejecting ids it does not know
func enabledRegistry(disable []string) (*strategy.Registry, error) {
	registry := strategy.DefaultRegistry()
	for _, id := range disable {
		if !registry.Contains(id) {
			return nil, fmt.Errorf("unknown strategy %q (see 'scrutey strategies')", id)
		}
	}
	return registry.Without(disable...), nil
}

func newScrutinizer(u *ui.UI, cfg *config.Config) (*scrutey.Scrutinizer, error) {
	registry, err := enabledRegistry(cfg.Disable)
	if err != nil {
		return nil, err
	}
	logger.WithField("strategies", registry.Len()).Debug("registry ready")

	return &scrutey.Scrutinizer{
		Checker: registry,
		Presenter: &presenter.Presenter{
			Highlight: u.IsInteractive(),
			Styles:    u.Styles,
		},
		MinConfidence: cfg.MinConfidence,
		Log:           logger,
	}, nil
}
