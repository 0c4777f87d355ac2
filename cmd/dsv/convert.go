package main

import (
	"fmt"
	"log/slog"

	"github.com/shapestone/shape-dsv/pkg/dsv"
)

type ConvertCLI struct {
	File        string `arg:"" help:"File to convert; - reads standard input"`
	ToSeparator string `help:"Separator of the output" name:"to-separator" short:"t" required:""`
	ToEscape    string `help:"Escape character of the output (default: input escape)" name:"to-escape"`
}

func (c *ConvertCLI) Run(logger *slog.Logger, g *Globals, s *streams) error {
	in, err := g.Config()
	if err != nil {
		return err
	}

	out := in
	if out.Separator, err = parseChar("to-separator", c.ToSeparator); err != nil {
		return err
	}
	if c.ToEscape != "" {
		if out.Escape, err = parseChar("to-escape", c.ToEscape); err != nil {
			return err
		}
	}
	if err := out.Validate(); err != nil {
		return fmt.Errorf("output format: %w", err)
	}

	text, err := readInput(c.File, s)
	if err != nil {
		return err
	}
	table, err := dsv.Decode(text, in)
	if err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}

	logger.Debug("converting", "file", c.File, "rows", table.Len(), "separator", string(out.Separator))

	w := dsv.NewWriter(s.out, out)
	if err := w.WriteTable(table); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
