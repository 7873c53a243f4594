// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add
// a decorated tree and a reference taxonomy
// to a redrank project.
package add

import (
	"errors"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/redrank/label"
	"github.com/js-arias/redrank/logger"
	"github.com/js-arias/redrank/newick"
	"github.com/js-arias/redrank/project"
	"github.com/js-arias/redrank/taxonomy"
	"go.uber.org/zap"
)

var Command = &command.Command{
	Usage: `add [--tree <tree-file>] [--taxonomy <taxonomy-file>]
	[--debug] [--quiet]
	<project-file>`,
	Short: "add a decorated tree and a taxonomy to a project",
	Long: `
Command add reads a decorated tree, a reference taxonomy, or both, and adds
them to a redrank project.

The argument of the command is the name of the project file. If no project
file exists, a new project will be created.

The flag --tree defines the decorated tree file. The tree must be in newick
format, and its node labels might carry bootstrap, taxonomy, genome, and RED
values (see "redrank help node-labels").

The flag --taxonomy defines the reference taxonomy. It is a tab-delimited
file without a header, with the genome ID in the first column, and the
taxonomy string in the second column. The genomes in this file define the
reference set.

Files are read before they are added to the project, so an invalid file will
not be added.

The flag --debug prints additional information while reading the files. The
flag --quiet only prints errors.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeFile string
var taxFile string
var logSw logger.Switches

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeFile, "tree", "", "")
	c.Flags().StringVar(&taxFile, "taxonomy", "", "")
	logSw.SetFlags(c.Flags())
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	logSw.Init(c.Stderr())
	defer logger.Sync()

	if treeFile == "" && taxFile == "" {
		return c.UsageError("expecting --tree or --taxonomy flags")
	}

	pFile := args[0]
	p, err := openProject(pFile)
	if err != nil {
		return err
	}

	if treeFile != "" {
		if err := readTree(treeFile); err != nil {
			return err
		}
		if prev := p.Add(project.Tree, treeFile); prev != "" && prev != treeFile {
			logger.Warn("tree replaced", zap.String("previous", prev), zap.String("file", treeFile))
		}
	}
	if taxFile != "" {
		if err := readTaxonomy(taxFile); err != nil {
			return err
		}
		if prev := p.Add(project.Taxonomy, taxFile); prev != "" && prev != taxFile {
			logger.Warn("taxonomy replaced", zap.String("previous", prev), zap.String("file", taxFile))
		}
	}

	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		logger.Info("new project", zap.String("project", name))
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

func readTree(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	t, err := newick.Read(f)
	if err != nil {
		return fmt.Errorf("while reading file %q: %v", name, err)
	}

	var red int
	for _, id := range t.Nodes() {
		lb := t.Label(id)
		if label.HasRED(lb) {
			red++
		}
		logger.Debug("node", zap.Int("node", id), zap.String("label", lb))
	}
	if red == 0 {
		logger.Warn("tree without RED values", zap.String("file", name))
	}
	logger.Info("tree",
		zap.String("file", name),
		zap.Int("nodes", t.Len()),
		zap.Int("terminals", t.Terms()),
		zap.Int("red", red),
	)
	return nil
}

func readTaxonomy(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	tx, err := taxonomy.Read(f)
	if err != nil {
		return fmt.Errorf("while reading file %q: %v", name, err)
	}
	logger.Info("taxonomy", zap.String("file", name), zap.Int("genomes", tx.Len()))
	return nil
}
