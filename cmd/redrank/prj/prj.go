// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prj implements a command to print
// the basic information of a project.
package prj

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/redrank/label"
	"github.com/js-arias/redrank/nodetable"
	"github.com/js-arias/redrank/project"
	"github.com/js-arias/redrank/rank"
)

var Command = &command.Command{
	Usage: "prj <project-file>",
	Short: "print information about a project",
	Long: `
Command prj reads a redrank project and prints the information of the
different project elements into the standard output.

The argument of the command is the name of the project file.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	if p.Path(project.Tree) != "" {
		if err := readTree(c.Stdout(), p); err != nil {
			return err
		}
	}
	if p.Path(project.Taxonomy) != "" {
		if err := readTaxonomy(c.Stdout(), p); err != nil {
			return err
		}
	}
	if err := readParam(c.Stdout(), p); err != nil {
		return err
	}
	if p.Path(project.Nodes) != "" {
		if err := readNodes(c.Stdout(), p); err != nil {
			return err
		}
	}
	return nil
}

func readTree(w io.Writer, p *project.Project) error {
	t, err := p.Tree()
	if err != nil {
		return err
	}

	var red int
	min := math.MaxFloat64
	var max float64
	for _, id := range t.Nodes() {
		v := label.RED(t.Label(id))
		if !v.Valid {
			continue
		}
		red++
		if v.Value < min {
			min = v.Value
		}
		if v.Value > max {
			max = v.Value
		}
	}

	fmt.Fprintf(w, "Decorated tree:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Tree))
	fmt.Fprintf(w, "\tnodes: %d\n", t.Len())
	fmt.Fprintf(w, "\tterminals: %d\n", t.Terms())
	fmt.Fprintf(w, "\tnodes with RED: %d\n", red)
	if red > 0 {
		fmt.Fprintf(w, "\tRED range: %.3f-%.3f\n", min, max)
	}
	fmt.Fprintf(w, "\n")
	return nil
}

func readTaxonomy(w io.Writer, p *project.Project) error {
	tx, err := p.Taxonomy()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Reference taxonomy:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Taxonomy))
	fmt.Fprintf(w, "\tgenomes: %d\n", tx.Len())
	fmt.Fprintf(w, "\n")
	return nil
}

func readParam(w io.Writer, p *project.Project) error {
	rp, err := p.Param()
	if err != nil {
		return err
	}
	name := rp.Name()
	if name == "" {
		name = "(default)"
	}

	fmt.Fprintf(w, "RED parameters:\n")
	fmt.Fprintf(w, "\tfile: %s\n", name)
	fmt.Fprintf(w, "\tdomain: %s\n", rp.Domain())
	fmt.Fprintf(w, "\treference: %s\n", rp.Reference())
	fmt.Fprintf(w, "\tmedians: %.3f\n", rp.Medians())
	fmt.Fprintf(w, "\n")
	return nil
}

func readNodes(w io.Writer, p *project.Project) error {
	tb, err := p.Nodes()
	if err != nil {
		return err
	}

	var members int
	bins := make(map[string]int)
	var labels []string
	for _, n := range tb.Nodes {
		if n.Membership != nodetable.Other {
			members++
		}
		if !n.Novelty.Valid {
			continue
		}
		if _, ok := bins[n.Novelty.Value]; !ok {
			labels = append(labels, n.Novelty.Value)
		}
		bins[n.Novelty.Value]++
	}

	slices.SortStableFunc(labels, func(a, b string) int {
		return rankIndex(a) - rankIndex(b)
	})

	fmt.Fprintf(w, "Node table:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Nodes))
	fmt.Fprintf(w, "\tnodes: %d\n", len(tb.Nodes))
	fmt.Fprintf(w, "\treference genomes: %d\n", members)
	for _, l := range labels {
		fmt.Fprintf(w, "\t%s: %d\n", l, bins[l])
	}
	fmt.Fprintf(w, "\n")
	return nil
}

// RankIndex returns the row of a novelty bin
// in a rank boundary table.
func rankIndex(bin string) int {
	if i := strings.Index(bin, " ("); i >= 0 {
		bin = bin[:i]
	}
	if i := slices.Index(rank.Ranks, bin); i >= 0 {
		return i
	}
	return len(rank.Ranks)
}
