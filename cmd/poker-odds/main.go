package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerodds/analysis"
	"github.com/lox/pokerodds/internal/config"
	"github.com/lox/pokerodds/internal/display"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every subcommand.
type Globals struct {
	Config   string `help:"Path to HCL configuration file" default:"poker-odds.hcl" type:"path"`
	LogLevel string `help:"Log level (debug, info, warn, error)" name:"log-level"`
	Workers  int    `help:"Worker goroutines for equity enumeration (0 uses the config value)"`
	NoColor  bool   `help:"Disable colored output" name:"no-color"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Odds    OddsCmd          `cmd:"" default:"withargs" help:"Calculate equity for two or more hands"`
	Eval    EvalCmd          `cmd:"" help:"Evaluate the best five card hand from 5 to 7 cards"`
	Deal    DealCmd          `cmd:"" help:"Deal a random hand and report equity on each street"`
}

// env is the runtime each subcommand works with.
type env struct {
	cfg      *config.Config
	logger   *log.Logger
	renderer *display.Renderer
	calc     *analysis.Calculator
}

func (g *Globals) setup(out io.Writer) (*env, error) {
	cfg, err := config.LoadConfig(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.Workers > 0 {
		cfg.Equity.Workers = g.Workers
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           cfg.Level(),
		ReportTimestamp: true,
		Prefix:          "poker-odds",
	})

	return &env{
		cfg:      cfg,
		logger:   logger,
		renderer: display.NewRenderer(out, !g.NoColor),
		calc: &analysis.Calculator{
			Workers: cfg.Equity.Workers,
			Logger:  logger,
		},
	}, nil
}

// newParser builds the command parser. Subcommands write their results to out.
func newParser(cli *CLI, out io.Writer, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("poker-odds"),
		kong.Description("Texas Hold'em hand evaluation and exact equity calculation"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(out, (*io.Writer)(nil)),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli, os.Stdout)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	err = ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
