// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/js-arias/redrank/newick"
	"github.com/js-arias/redrank/nodetable"
	"github.com/js-arias/redrank/redparam"
	"github.com/js-arias/redrank/taxonomy"
)

// Nodes reads a node table file
// as defined in a project.
func (p *Project) Nodes() (*nodetable.Table, error) {
	name := p.Path(Nodes)
	if name == "" {
		return nil, fmt.Errorf("node table not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tb, err := nodetable.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return tb, nil
}

// Param reads the RED parameters
// as defined in a project.
// If the parameters are not defined,
// or the file does not exist,
// it returns the default parameters.
func (p *Project) Param() (*redparam.RP, error) {
	name := p.Path(Param)
	if name == "" {
		return redparam.New(""), nil
	}

	rp, err := redparam.Read(name)
	if errors.Is(err, fs.ErrNotExist) {
		return redparam.New(name), nil
	}
	if err != nil {
		return nil, err
	}
	return rp, nil
}

// Taxonomy reads a reference taxonomy file
// as defined in a project.
func (p *Project) Taxonomy() (*taxonomy.Taxonomy, error) {
	name := p.Path(Taxonomy)
	if name == "" {
		return nil, fmt.Errorf("taxonomy not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tx, err := taxonomy.Read(f)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return tx, nil
}

// Tree reads a tree file
// as defined in a project.
func (p *Project) Tree() (*newick.Tree, error) {
	name := p.Path(Tree)
	if name == "" {
		return nil, fmt.Errorf("tree not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := newick.Read(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return t, nil
}
