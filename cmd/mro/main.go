// cmd/mro/main.go
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/sghaida/oodesign/internal/config"
	"github.com/sghaida/oodesign/internal/logging"
	"github.com/sghaida/oodesign/mro"
)

// Exit codes.
const (
	exitOK       = 0
	exitNotFound = 1
	exitUsage    = 2
)

// app carries what every subcommand needs once flags and config are resolved.
type app struct {
	out io.Writer
	err io.Writer

	v          *viper.Viper
	configPath string

	cfg *config.Config
	log *zap.Logger

	title  *color.Color
	accent *color.Color
	muted  *color.Color
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{out: stdout, err: stderr, v: viper.New(), log: zap.NewNop()}
}

// setup loads config and builds the logger and palette. It runs before every subcommand.
func (a *app) setup() error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logging.New(a.err, cfg.LogLevel)
	if err != nil {
		return err
	}
	a.log = log

	a.title = color.New(color.Bold, color.FgCyan)
	a.accent = color.New(color.FgGreen)
	a.muted = color.New(color.FgHiBlack)
	if cfg.NoColor {
		a.title.DisableColor()
		a.accent.DisableColor()
		a.muted.DisableColor()
	}
	return nil
}

// registry builds the hierarchy from the configured file, or the built-in
// greetings hierarchy when no file is set.
func (a *app) registry() (*mro.Registry, error) {
	if strings.TrimSpace(a.cfg.File) == "" {
		a.log.Debug("using built-in hierarchy")
		return mro.Greetings(mro.WithLogger(a.log))
	}

	f, err := os.Open(a.cfg.File)
	if err != nil {
		return nil, fmt.Errorf("open hierarchy: %w", err)
	}
	defer f.Close()

	schema, err := mro.LoadSchema(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.cfg.File, err)
	}
	a.log.Debug("schema loaded",
		zap.String("file", a.cfg.File),
		zap.Int("bundles", len(schema.Bundles)),
		zap.Int("types", len(schema.Types)),
	)
	return schema.Registry(mro.WithLogger(a.log))
}

func (a *app) lookupType(reg *mro.Registry, name string) (*mro.Type, error) {
	t, ok := reg.Type(name)
	if !ok {
		return nil, fmt.Errorf("unknown type %q (have: %s)", name, strings.Join(reg.Types(), ", "))
	}
	return t, nil
}

// run executes the CLI and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	_ = a.log.Sync()
	if err == nil {
		return exitOK
	}

	_, _ = fmt.Fprintln(stderr, "error:", err)
	var nf mro.NotFoundError
	if errors.As(err, &nf) {
		return exitNotFound
	}
	return exitUsage
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "mro",
		Short: "Inspect method resolution over composed types",
		Long: `mro prints resolution orders and resolves method names over a hierarchy
of types, prepended bundles and included bundles described in YAML.

Without --file it uses the built-in ParentClass / ChildClass hierarchy.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./mro.yaml if present)")
	flags.String("file", "", "hierarchy YAML file")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.Bool("no-color", false, "disable colored output")

	_ = a.v.BindPFlag("file", flags.Lookup("file"))
	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("no_color", flags.Lookup("no-color"))

	root.AddCommand(newOrderCmd(a), newResolveCmd(a), newDemoCmd(a))
	return root
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
