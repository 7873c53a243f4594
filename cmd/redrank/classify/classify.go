// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package classify implements a command to assign
// the novelty bins of a node table
// using the current RED parameters.
package classify

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/js-arias/command"
	"github.com/js-arias/redrank/logger"
	"github.com/js-arias/redrank/nodetable"
	"github.com/js-arias/redrank/project"
	"go.uber.org/zap"
)

var Command = &command.Command{
	Usage: `classify [-i|--input <file>] [-o|--output <file>]
	[--debug] [--quiet]
	<project-file>`,
	Short: "assign novelty bins to a node table",
	Long: `
Command classify reads a node table and sets the novelty bin of each node
using the RED values of the table and the RED parameters of a redrank project.
It is useful to update a node table after the parameters of the project are
changed, without reading the tree again.

The argument of the command is the name of the project file.

By default, the node table of the project will be used. Use the flag -i, or
--input, to read a different node table.

By default, the table will be printed in the standard output. Use the flag -o,
or --output, to define an output file.

The flag --debug prints a record for each changed node. The flag --quiet only
prints errors.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var input string
var output string
var logSw logger.Switches

func setFlags(c *command.Command) {
	c.Flags().StringVar(&input, "input", "", "")
	c.Flags().StringVar(&input, "i", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
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
	rp, err := p.Param()
	if err != nil {
		return err
	}
	bounds, err := rp.Bounds()
	if err != nil {
		return err
	}

	prev := make([]nodetable.Node, len(tb.Nodes))
	copy(prev, tb.Nodes)
	tb.Classify(bounds)

	var changed int
	for i, n := range tb.Nodes {
		if n.Novelty == prev[i].Novelty {
			continue
		}
		changed++
		logger.Debug("novelty changed",
			zap.Int("node", n.ID),
			zap.Stringer("previous", prev[i].Novelty),
			zap.Stringer("novelty", n.Novelty),
		)
	}
	logger.Info("classified nodes", zap.Int("nodes", len(tb.Nodes)), zap.Int("changed", changed))

	var buf bytes.Buffer
	if output != "" {
		fmt.Fprintf(&buf, "# node table\n")
		fmt.Fprintf(&buf, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	}
	if err := tb.TSV(&buf); err != nil {
		return err
	}

	if output == "" {
		bw := bufio.NewWriter(c.Stdout())
		if _, err := buf.WriteTo(bw); err != nil {
			return err
		}
		return bw.Flush()
	}
	return os.WriteFile(output, buf.Bytes(), 0o644)
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
