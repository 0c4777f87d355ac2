package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/shapestone/shape-dsv/pkg/dsv"
)

type CheckCLI struct {
	Files []string `arg:"" name:"file" help:"Files to check; - reads standard input"`
}

func (c *CheckCLI) Run(logger *slog.Logger, g *Globals, s *streams) error {
	cfg, err := g.Config()
	if err != nil {
		return err
	}

	failed := 0
	for _, name := range c.Files {
		text, err := readInput(name, s)
		if err != nil {
			return err
		}

		table, err := dsv.Decode(text, cfg)
		if err != nil {
			failed++
			var pe *dsv.ParseError
			if errors.As(err, &pe) {
				logger.Error("invalid document", "file", name, "line", pe.Line, "column", pe.Column, "error", pe.Err)
				fmt.Fprintf(s.out, "%s:%d:%d: %v\n", name, pe.Line, pe.Column, pe.Err)
				continue
			}
			return err
		}

		logger.Debug("document ok", "file", name, "rows", table.Len())
		fmt.Fprintf(s.out, "%s: ok, %d rows\n", name, table.Len())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files invalid", failed, len(c.Files))
	}
	return nil
}
