// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// the tree of a node table as an SVG file,
// with the nodes placed by their RED values.
package draw

import (
	"bufio"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/redrank/logger"
	"github.com/js-arias/redrank/nodetable"
	"github.com/js-arias/redrank/palette"
	"github.com/js-arias/redrank/project"
	"go.uber.org/zap"
)

var Command = &command.Command{
	Usage: `draw [-i|--input <file>] [-o|--output <file>]
	[--step <value>] [--color <scheme>] [--key <key-file>]
	[--debug] [--quiet]
	<project-file>`,
	Short: "draw a node table as an SVG tree",
	Long: `
Command draw reads a node table and draws the tree into an SVG-encoded file.
The horizontal position of each node is its RED value, and the branch of each
node is colored by its novelty bin. Vertical gray lines indicate the rank
boundaries of the project parameters.

Nodes without a RED value are drawn at the position of their parent, except
terminals, that are drawn at 1.

The argument of the command is the name of the project file.

By default, the node table of the project will be used. Use the flag -i, or
--input, to read a different node table.

By default, the output file is "tree.svg". Use the flag -o, or --output, to
define a different file name.

By default, the whole RED interval [0, 1] uses 1000 pixel units; use the flag
--step to define a different value.

By default, novelty bins are colored with a rainbow scheme. Use the flag
--color to define a different scheme. Valid schemes are:

	gray          a gray scale from gray to black
	lightgray     a gray scale from light gray to black
	incandescent  the incandescent scheme of Paul Tol
	iridescent    the iridescent scheme of Paul Tol
	rainbow       the rainbow scheme of Paul Tol (the default)

The flag --key defines a tab-delimited file with the colors of particular
novelty bins. The file must contain the columns "rank", with the rank name
of the bin, and "color", with comma-separated RGB values, for example:

	rank	color
	Genus	253, 231, 37

Nodes without a novelty bin are drawn in light gray.

The flag --debug prints additional information. The flag --quiet only prints
errors.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var input string
var output string
var colorScheme string
var keyFile string
var stepX float64
var logSw logger.Switches

func setFlags(c *command.Command) {
	c.Flags().StringVar(&input, "input", "", "")
	c.Flags().StringVar(&input, "i", "", "")
	c.Flags().StringVar(&output, "output", "tree.svg", "")
	c.Flags().StringVar(&output, "o", "tree.svg", "")
	c.Flags().StringVar(&colorScheme, "color", "", "")
	c.Flags().StringVar(&keyFile, "key", "", "")
	c.Flags().Float64Var(&stepX, "step", 1000, "")
	logSw.SetFlags(c.Flags())
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if stepX <= 0 {
		return c.UsageError("flag --step must be positive")
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
	key := palette.NewKey(bounds, g)
	if keyFile != "" {
		key, err = readKey(keyFile, key)
		if err != nil {
			return err
		}
	}

	t, err := copyTable(tb, stepX)
	if err != nil {
		return err
	}
	t.setColor(key)
	t.bounds = bounds
	logger.Debug("svg tree", zap.Int("nodes", len(tb.Nodes)), zap.Int("height", t.y))

	if err := writeSVG(output, t); err != nil {
		return err
	}
	logger.Info("tree drawn", zap.String("file", output))
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

func readKey(name string, base *palette.Key) (*palette.Key, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	k, err := palette.ReadKey(f, base)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return k, nil
}

func writeSVG(name string, t svgTree) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	if err := t.draw(bw); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}
