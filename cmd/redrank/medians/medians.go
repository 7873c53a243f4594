// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package medians implements a command to calculate
// the median RED values of the ranks
// from the decorated nodes of a node table.
package medians

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/redrank/logger"
	"github.com/js-arias/redrank/nodetable"
	"github.com/js-arias/redrank/project"
	"github.com/js-arias/redrank/rank"
	"github.com/js-arias/redrank/redparam"
	"go.uber.org/zap"
)

var Command = &command.Command{
	Usage: `medians [-i|--input <file>] [--set]
	[--debug] [--quiet]
	<project-file>`,
	Short: "calculate median RED values of ranks",
	Long: `
Command medians reads a node table and calculates the empirical median RED
value of each rank, from phylum to genus, using the nodes with both a
taxonomy and a RED value. A node contributes to each rank found in its
taxonomy (e.g., a node with taxonomy "o__Bacillales; f__Bacillaceae"
contributes to orders and families).

The argument of the command is the name of the project file.

By default, the node table of the project will be used. Use the flag -i, or
--input, to read a different node table.

By default, the median values will be printed in the standard output. If the
flag --set is given, the values will be stored as the median RED values of
the project parameters.

The flag --debug prints additional information. The flag --quiet only prints
errors.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var input string
var setFlag bool
var logSw logger.Switches

func setFlags(c *command.Command) {
	c.Flags().StringVar(&input, "input", "", "")
	c.Flags().StringVar(&input, "i", "", "")
	c.Flags().BoolVar(&setFlag, "set", false, "")
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
	tb, err := readTable(p)
	if err != nil {
		return err
	}

	dec := tb.Decorated()
	logger.Info("decorated nodes", zap.Int("nodes", len(dec)))
	m, err := rank.Medians(dec)
	if err != nil {
		return err
	}

	if !setFlag {
		for i, pm := range redparam.MedianParams {
			fmt.Fprintf(c.Stdout(), "%s\t%.6f\n", pm, m[i])
		}
		return nil
	}

	rp, err := p.Param()
	if err != nil {
		return err
	}
	if err := rp.SetMedians(m); err != nil {
		return err
	}
	if !rp.Ordered() {
		logger.Warn("median RED values are not in increasing order", zap.Float64s("medians", m))
	}
	if rp.Name() == "" {
		rp.SetName("red-param.tab")
	}
	if err := rp.Write(); err != nil {
		return err
	}
	logger.Info("parameters updated", zap.String("file", rp.Name()), zap.Float64s("medians", m))
	if p.Path(project.Param) != rp.Name() {
		p.Add(project.Param, rp.Name())
		if err := p.Write(); err != nil {
			return err
		}
	}
	return nil
}

func readTable(p *project.Project) (*nodetable.Table, error) {
	if input == "" {
		return p.Nodes()
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tb, err := nodetable.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", input, err)
	}
	return tb, nil
}
