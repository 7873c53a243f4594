// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package table implements a command to build
// the node table of a decorated tree.
package table

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
	Usage: `table [--clades] [-o|--output <file>]
	[--debug] [--quiet]
	<project-file>`,
	Short: "build the node table of a decorated tree",
	Long: `
Command table reads the decorated tree and the reference taxonomy of a
redrank project, and writes a table with a row for each node of the tree. Each
row contains the values decoded from the node label, the membership of the
node genome in the reference set, and the novelty bin of the node RED value
(see "redrank help node-tables").

The argument of the command is the name of the project file.

The novelty bins are defined by the RED parameters of the project (see
"redrank param"). If no parameters are defined, the median RED values of
bacteria in GTDB release 220 will be used.

By default, only terminals with a genome have a group. If the flag --clades
is given, internal nodes take the group of the genomes they contain, up to
the most recent common ancestor of the genomes of the group. Groups of
genomes outside the reference set are applied last.

By default, the table will be printed in the standard output. Use the flag -o,
or --output, to define an output file. If an output file is defined, it will
be stored as the node table of the project.

If any input file can not be read, no table will be written.

The flag --debug prints a record for each node. The flag --quiet only prints
errors.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var clades bool
var output string
var logSw logger.Switches

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&clades, "clades", false, "")
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

	t, err := p.Tree()
	if err != nil {
		return err
	}
	ref, err := p.Taxonomy()
	if err != nil {
		return err
	}
	rp, err := p.Param()
	if err != nil {
		return err
	}
	if !rp.Ordered() {
		logger.Warn("median RED values are not in increasing order", zap.Float64s("medians", rp.Medians()))
	}
	bounds, err := rp.Bounds()
	if err != nil {
		return err
	}

	tb, err := nodetable.Build(t, ref, bounds, nodetable.Options{
		Reference: rp.Reference(),
		Clades:    clades,
	})
	if err != nil {
		return fmt.Errorf("on project %q: %v", args[0], err)
	}
	summary(tb)

	var buf bytes.Buffer
	if output != "" {
		fmt.Fprintf(&buf, "# node table of tree %q\n", p.Path(project.Tree))
		fmt.Fprintf(&buf, "# reference: %s [%s]\n", rp.Reference(), p.Path(project.Taxonomy))
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

	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return err
	}
	p.Add(project.Nodes, output)
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func summary(tb *nodetable.Table) {
	var members, red, binned int
	for _, n := range tb.Nodes {
		if n.Membership != nodetable.Other {
			members++
		}
		if n.RED.Valid {
			red++
		}
		if n.Novelty.Valid {
			binned++
		}
		if n.RED.Valid && n.RED.Value != 0 && !n.Novelty.Valid {
			logger.Warn("RED value outside rank intervals", zap.Int("node", n.ID), zap.Float64("red", n.RED.Value))
		}
		logger.Debug("node",
			zap.Int("node", n.ID),
			zap.Int("parent", n.Parent),
			zap.String("label", n.Label),
			zap.Stringer("red", n.RED),
			zap.Stringer("novelty", n.Novelty),
		)
	}
	logger.Info("node table",
		zap.Int("nodes", len(tb.Nodes)),
		zap.Int("reference", members),
		zap.Int("red", red),
		zap.Int("binned", binned),
	)
}
