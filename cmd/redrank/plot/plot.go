// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package plot implements a command to plot
// the distribution of the RED values
// of the internal nodes of a node table.
package plot

import (
	"fmt"
	"os"
	"slices"

	"github.com/js-arias/command"
	"github.com/js-arias/redrank/logger"
	"github.com/js-arias/redrank/nodetable"
	"github.com/js-arias/redrank/palette"
	"github.com/js-arias/redrank/project"
	"github.com/js-arias/redrank/rank"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: `plot [-i|--input <file>] [-o|--output <file>]
	[--bins <number>] [--color <scheme>]
	[--debug] [--quiet]
	<project-file>`,
	Short: "plot the RED distribution of a node table",
	Long: `
Command plot reads a node table and draws a histogram of the RED values of
the internal nodes, with the rank boundaries of the project parameters as
vertical lines.

The argument of the command is the name of the project file.

By default, the node table of the project will be used. Use the flag -i, or
--input, to read a different node table.

By default, the output file is "red.png". Use the flag -o, or --output, to
define a different file name. The extension of the file defines the image
format (e.g., ".png", ".svg", ".pdf").

By default, 50 bins are used in the histogram. Use the flag --bins to define a
different number.

By default, boundary lines are colored with a rainbow scheme. Use the flag
--color to define a different scheme (see "redrank help draw" for the valid
schemes).

The flag --debug prints additional information. The flag --quiet only prints
errors.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var input string
var output string
var colorScheme string
var numBins int
var logSw logger.Switches

func setFlags(c *command.Command) {
	c.Flags().StringVar(&input, "input", "", "")
	c.Flags().StringVar(&input, "i", "", "")
	c.Flags().StringVar(&output, "output", "red.png", "")
	c.Flags().StringVar(&output, "o", "red.png", "")
	c.Flags().StringVar(&colorScheme, "color", "", "")
	c.Flags().IntVar(&numBins, "bins", 50, "")
	logSw.SetFlags(c.Flags())
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if numBins < 1 {
		return c.UsageError("flag --bins must be positive")
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
	g, err := palette.Scheme(colorScheme)
	if err != nil {
		return err
	}

	reds := internalRED(tb)
	if len(reds) == 0 {
		return fmt.Errorf("node table without RED values on internal nodes")
	}
	slices.Sort(reds)
	logger.Info("internal nodes",
		zap.Int("nodes", len(reds)),
		zap.Float64("mean", stat.Mean(reds, nil)),
		zap.Float64("median", stat.Quantile(0.5, stat.Empirical, reds, nil)),
	)

	if err := makePlot(reds, bounds, palette.NewKey(bounds, g)); err != nil {
		return err
	}
	logger.Info("plot saved", zap.String("file", output))
	return nil
}

// InternalRED returns the RED values
// of the internal nodes,
// excluding the root.
func internalRED(tb *nodetable.Table) []float64 {
	isParent := make(map[int]bool, len(tb.Nodes))
	for _, n := range tb.Nodes {
		if n.Parent != n.ID {
			isParent[n.Parent] = true
		}
	}

	var reds []float64
	for _, n := range tb.Nodes {
		if !isParent[n.ID] || n.Parent == n.ID {
			continue
		}
		if !n.RED.Valid {
			continue
		}
		reds = append(reds, n.RED.Value)
	}
	return reds
}

func makePlot(reds []float64, bounds rank.Table, key *palette.Key) error {
	p := plot.New()
	p.X.Label.Text = "RED"
	p.Y.Label.Text = "internal nodes"
	p.X.Min = 0
	p.X.Max = 1

	h, err := plotter.NewHist(plotter.Values(reds), numBins)
	if err != nil {
		return fmt.Errorf("while building histogram: %v", err)
	}
	h.LineStyle.Width = vg.Length(0)
	h.FillColor = palette.Unclassified
	p.Add(h)

	var max float64
	for _, b := range h.Bins {
		if b.Weight > max {
			max = b.Weight
		}
	}

	for _, b := range bounds[1 : len(bounds)-1] {
		l, err := plotter.NewLine(plotter.XYs{
			{X: b.RED, Y: 0},
			{X: b.RED, Y: max},
		})
		if err != nil {
			return fmt.Errorf("while building boundary %s: %v", b.Rank, err)
		}
		l.LineStyle.Color, _ = key.Color(b.Rank)
		l.LineStyle.Width = vg.Points(1.5)
		l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(l)
		p.Legend.Add(b.Label, l)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, output); err != nil {
		return err
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
