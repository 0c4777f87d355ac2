package main

import (
	"fmt"
	"log/slog"

	"github.com/shapestone/shape-dsv/pkg/dsv"
)

type SniffCLI struct {
	File string `arg:"" help:"File to inspect; - reads standard input"`
}

func (c *SniffCLI) Run(logger *slog.Logger, g *Globals, s *streams) error {
	cfg, err := g.Config()
	if err != nil {
		return err
	}

	text, err := readInput(c.File, s)
	if err != nil {
		return err
	}

	sep := dsv.NewSniffer(text).WithCharacters(cfg.Comment, cfg.Escape).DetectSeparator()
	logger.Debug("detected separator", "file", c.File, "separator", string(sep))

	fmt.Fprintf(s.out, "%q\n", sep)
	return nil
}
