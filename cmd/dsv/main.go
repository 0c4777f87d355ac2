package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"

	"github.com/shapestone/shape-dsv/pkg/dsv"
)

type CLI struct {
	Globals

	Check   CheckCLI   `cmd:"" help:"Validate documents and report the first error in each"`
	Convert ConvertCLI `cmd:"" help:"Re-encode a document with another separator"`
	Sniff   SniffCLI   `cmd:"" help:"Detect the separator of a document"`
}

// Globals are the format flags shared by every command.
type Globals struct {
	Separator string `help:"Field separator (default ,)" short:"s"`
	Comment   string `help:"Comment character (default #)" short:"c"`
	Escape    string `help:"Escape character (default double quote)" short:"e"`
	Verbose   bool   `help:"Enable debug logging" short:"v"`
}

// streams carries the standard streams so commands can be run in tests.
type streams struct {
	in  io.Reader
	out io.Writer
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("dsv"),
		kong.Description("Inspect and convert delimiter-separated text."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)
	return ctx.Run(logger, &cli.Globals, &streams{in: stdin, out: stdout})
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

// Config builds the format configuration from the flags.
// Unset flags take the library defaults.
func (g *Globals) Config() (dsv.Config, error) {
	var cfg dsv.Config
	var err error
	if cfg.Separator, err = parseChar("separator", g.Separator); err != nil {
		return cfg, err
	}
	if cfg.Comment, err = parseChar("comment", g.Comment); err != nil {
		return cfg, err
	}
	if cfg.Escape, err = parseChar("escape", g.Escape); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// parseChar accepts a single byte, or "tab" and `\t` for a tab.
func parseChar(flag, s string) (byte, error) {
	switch s {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}
	if len(s) != 1 {
		return 0, fmt.Errorf("--%s must be a single character, got %q", flag, s)
	}
	return s[0], nil
}

// readInput returns the contents of name, or standard input for "-".
func readInput(name string, s *streams) (string, error) {
	if name == "-" {
		b, err := io.ReadAll(s.in)
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return string(b), nil
}
