// Package cmd implements the rexspan command line.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coregx/rexspan"
	"github.com/coregx/rexspan/internal/logging"
)

// Configuration keys shared by flags, environment and config file.
const (
	keyBackend       = "backend"
	keyCollapseEmpty = "collapse-empty"
	keyFormat        = "format"
	keyLogLevel      = "log-level"
	keyLogFile       = "log-file"
	keyNoColor       = "no-color"
)

var envReplacer = strings.NewReplacer("-", "_")

// ErrNoMatch is returned by match, capture and search when nothing matched.
// The command exits with status 1 without printing an error.
var ErrNoMatch = errors.New("no match")

// app carries the dependencies every command shares.
type app struct {
	fs     afero.Fs
	in     io.Reader
	out    io.Writer
	v      *viper.Viper
	logger *logging.Logger

	cfgFile string
}

// Option configures the command tree, mainly for tests.
type Option func(*app)

// WithFs sets the filesystem used for --file, scripts and config files.
func WithFs(fs afero.Fs) Option {
	return func(a *app) { a.fs = fs }
}

// WithIO sets standard input and output.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *app) {
		a.in = in
		a.out = out
	}
}

func newApp(opts ...Option) *app {
	a := &app{
		fs:  afero.NewOsFs(),
		in:  os.Stdin,
		out: os.Stdout,
		v:   viper.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run executes the command line with args. The log file, if any, is closed
// before Run returns, whatever the outcome.
func Run(args []string, opts ...Option) error {
	return newApp(opts...).run(args)
}

func (a *app) run(args []string) error {
	defer a.close()

	rootCmd := a.rootCmd()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// rootCmd builds the rexspan command tree.
func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rexspan",
		Short: "Match regular expressions and report capture spans",
		Long: `rexspan compiles a regular expression wrapped in one extra capturing
group and reports where it matches as byte offsets into the input.

Group 0 is always the whole match. Offsets refer to the original input even
when matching starts at --offset.

Examples:
  rexspan match '(a)(b)' ab
  rexspan capture '(a)(b)' xab --offset 1
  echo 'set key=value' | rexspan search '(\w+)=(\w+)'
  rexspan script check.lua
  rexspan tui`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.rexspan.yaml or ./.rexspan.yaml)")
	flags.String(keyBackend, rexspan.DefaultConfig().Backend, fmt.Sprintf("regex engine %v", rexspan.Backends()))
	flags.Bool(keyCollapseEmpty, false, "report zero-width captures as {-1,-1}")
	flags.String(keyFormat, "text", "output format: text or json")
	flags.String(keyLogLevel, "warn", "log level: debug, info, warn, error")
	flags.String(keyLogFile, "", "write logs to this file instead of stderr")
	flags.Bool(keyNoColor, false, "disable highlighting in text output")

	for _, key := range []string{keyBackend, keyCollapseEmpty, keyFormat, keyLogLevel, keyLogFile, keyNoColor} {
		a.v.BindPFlag(key, flags.Lookup(key))
	}

	rootCmd.AddCommand(
		newMatchCmd(a),
		newCaptureCmd(a),
		newSearchCmd(a),
		newScriptCmd(a),
		newTUICmd(a),
	)
	return rootCmd
}

// Execute runs the command line and returns the process exit status.
func Execute() int {
	if err := Run(os.Args[1:]); err != nil {
		if errors.Is(err, ErrNoMatch) {
			return 1
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 2
	}
	return 0
}

// setup reads the config file and environment and opens the logger.
func (a *app) setup() error {
	a.v.SetFs(a.fs)
	a.v.SetEnvPrefix("REXSPAN")
	a.v.SetEnvKeyReplacer(envReplacer)
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.AddConfigPath(".")
		a.v.SetConfigName(".rexspan")
		a.v.SetConfigType("yaml")
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	level := logging.ParseLevel(a.v.GetString(keyLogLevel))
	if path := a.v.GetString(keyLogFile); path != "" {
		logger, err := logging.NewFile(a.fs, path, level)
		if err != nil {
			return err
		}
		a.logger = logger
	} else {
		a.logger = logging.New(os.Stderr, level)
	}

	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debugf("using config file %s", used)
	}

	switch a.v.GetString(keyFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported format %q", a.v.GetString(keyFormat))
	}

	return a.patternConfig().Validate()
}

// patternConfig assembles the pattern configuration from viper.
func (a *app) patternConfig() rexspan.Config {
	return rexspan.Config{
		Backend:       a.v.GetString(keyBackend),
		CollapseEmpty: a.v.GetBool(keyCollapseEmpty),
	}
}

// compile compiles expr with the configured backend.
func (a *app) compile(expr string) (*rexspan.Pattern, error) {
	p, err := rexspan.CompileWithConfig(expr, a.patternConfig())
	if err != nil {
		return nil, err
	}
	a.logger.Debugf("compiled %s on %s, %d groups", p.Expr(), p.Backend(), p.NumGroups())
	return p, nil
}

// close releases the logger opened by setup.
func (a *app) close() {
	if a.logger != nil {
		a.logger.Close()
	}
}
