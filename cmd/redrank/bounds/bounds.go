// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package bounds implements a command to print
// the rank boundary table of a project.
package bounds

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/js-arias/command"
	"github.com/js-arias/redrank/logger"
	"github.com/js-arias/redrank/project"
	"github.com/js-arias/redrank/rank"
	"go.uber.org/zap"
)

var Command = &command.Command{
	Usage: `bounds [--debug] [--quiet] <project-file>`,
	Short: "print the rank boundary table",
	Long: `
Command bounds reads the RED parameters of a redrank project and prints the
rank boundary table into the standard output.

The argument of the command is the name of the project file.

The output is a tab-delimited table with the following columns:

	- rank      the name of the rank
	- RED       the upper boundary of the rank
	- interval  the label of the novelty bin of the rank

The first row is the root, with a boundary at 0, and the last row is
Species/Strain with a boundary at 1. The boundary of each rank from phylum to
genus is the mean between its median RED and the median RED of the next rank
(or 1 for genus).

The flag --debug prints additional information. The flag --quiet only prints
errors.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var logSw logger.Switches

func setFlags(c *command.Command) {
	logSw.SetFlags(c.Flags())
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	logSw.Init(c.Stderr())
	defer logger.Sync()

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	rp, err := p.Param()
	if err != nil {
		return err
	}
	logger.Debug("parameters", zap.String("domain", rp.Domain()), zap.Float64s("medians", rp.Medians()))
	if !rp.Ordered() {
		logger.Warn("median RED values are not in increasing order", zap.Float64s("medians", rp.Medians()))
	}

	bounds, err := rp.Bounds()
	if err != nil {
		return err
	}
	if err := writeBounds(c.Stdout(), bounds); err != nil {
		return err
	}
	return nil
}

func writeBounds(w io.Writer, bounds rank.Table) error {
	tsv := csv.NewWriter(w)
	tsv.Comma = '\t'

	if err := tsv.Write([]string{"rank", "RED", "interval"}); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for _, b := range bounds {
		rk := b.Rank
		if rk == "" {
			rk = "root"
		}
		row := []string{
			rk,
			strconv.FormatFloat(b.RED, 'f', 6, 64),
			b.Label,
		}
		if err := tsv.Write(row); err != nil {
			return fmt.Errorf("while writing data: %v", err)
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
