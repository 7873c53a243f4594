// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/redrank/project"
	"github.com/js-arias/redrank/rank"
)

type setPath struct {
	set  project.Dataset
	path string
}

func TestProject(t *testing.T) {
	p := project.New()

	sets := []setPath{
		{project.Tree, "gtdb.decorated.tree"},
		{project.Taxonomy, "taxonomy.tsv"},
		{project.Param, "red-param.tab"},
		{project.Nodes, "nodes.tab"},
	}

	for _, s := range sets {
		p.Add(s.set, s.path)
	}
	testProject(t, p, sets)

	name := filepath.Join(t.TempDir(), "project-for-test.tab")

	p.SetName(name)
	if err := p.Write(); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	np, err := project.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	if np.Name() != name {
		t.Errorf("name: got %q, want %q", np.Name(), name)
	}
	testProject(t, np, sets)

	if prev := np.Add(project.Nodes, ""); prev != "nodes.tab" {
		t.Errorf("remove: got %q, want %q", prev, "nodes.tab")
	}
	testProject(t, np, sets[:3])
}

func TestReadData(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"tree.nwk":     "((A:0.1,B:0.2)'0.98:g__Xenobium|RED=0.93':0.05,C:0.3)'|RED=0.000';\n",
		"taxonomy.tsv": "A\td__Bacteria;p__Bacillota\n",
	}
	for f, data := range files {
		if err := os.WriteFile(filepath.Join(dir, f), []byte(data), 0o644); err != nil {
			t.Fatalf("unable to write %q: %v", f, err)
		}
	}

	p := project.New()
	p.SetName(filepath.Join(dir, "project.tab"))
	p.Add(project.Tree, filepath.Join(dir, "tree.nwk"))
	p.Add(project.Taxonomy, filepath.Join(dir, "taxonomy.tsv"))

	tr, err := p.Tree()
	if err != nil {
		t.Fatalf("tree: %v", err)
	}
	if tr.Len() != 5 {
		t.Errorf("tree nodes: got %d, want %d", tr.Len(), 5)
	}

	tx, err := p.Taxonomy()
	if err != nil {
		t.Fatalf("taxonomy: %v", err)
	}
	if !tx.Has("A") {
		t.Errorf("taxonomy: genome %q not found", "A")
	}

	// undefined parameters are the defaults
	rp, err := p.Param()
	if err != nil {
		t.Fatalf("param: %v", err)
	}
	if !reflect.DeepEqual(rp.Medians(), rank.Bacteria) {
		t.Errorf("param: got %v, want %v", rp.Medians(), rank.Bacteria)
	}

	// a missing file is also the default
	p.Add(project.Param, filepath.Join(dir, "red-param.tab"))
	rp, err = p.Param()
	if err != nil {
		t.Fatalf("param: %v", err)
	}
	if rp.Name() != filepath.Join(dir, "red-param.tab") {
		t.Errorf("param name: got %q, want %q", rp.Name(), filepath.Join(dir, "red-param.tab"))
	}

	if _, err := p.Nodes(); err == nil {
		t.Errorf("nodes: expecting error")
	}
}

func TestReadKeywords(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "project.tab")
	data := "# redrank project files\nDataset\tPath\n Tree \ttree.nwk\nPARAM\t\n"
	if err := os.WriteFile(name, []byte(data), 0o644); err != nil {
		t.Fatalf("unable to write project: %v", err)
	}

	p, err := project.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	testProject(t, p, []setPath{{project.Tree, "tree.nwk"}})
}

func TestReadErrors(t *testing.T) {
	tests := map[string]struct {
		data string
		msg  string
	}{
		"missing path field": {
			data: "dataset\ntree\n",
			msg:  `expecting field "path"`,
		},
		"unknown dataset": {
			data: "dataset\tpath\ntree\ttree.nwk\ntrees\tother.nwk\n",
			msg:  `unknown dataset "trees"`,
		},
		"repeated dataset": {
			data: "dataset\tpath\ntree\ttree.nwk\nTree\tother.nwk\n",
			msg:  "already defined",
		},
	}

	dir := t.TempDir()
	for name, test := range tests {
		f := filepath.Join(dir, strings.ReplaceAll(name, " ", "-")+".tab")
		if err := os.WriteFile(f, []byte(test.data), 0o644); err != nil {
			t.Fatalf("unable to write project: %v", err)
		}
		_, err := project.Read(f)
		if err == nil {
			t.Errorf("%s: expecting error", name)
			continue
		}
		if !strings.Contains(err.Error(), test.msg) {
			t.Errorf("%s: got error %q, want %q", name, err, test.msg)
		}
	}

	if _, err := project.ParseDataset("genomes"); err == nil {
		t.Errorf("parse dataset: expecting error for %q", "genomes")
	}
	if set, err := project.ParseDataset(" Nodes"); err != nil || set != project.Nodes {
		t.Errorf("parse dataset: got %q (%v), want %q", set, err, project.Nodes)
	}
}

func testProject(t testing.TB, p *project.Project, sets []setPath) {
	t.Helper()

	for _, s := range sets {
		if path := p.Path(s.set); path != s.path {
			t.Errorf("set %s: got path %q, want %q", s.set, path, s.path)
		}
	}
	datasets := make([]project.Dataset, 0, len(sets))
	for _, v := range sets {
		datasets = append(datasets, v.set)
	}

	if ls := p.Sets(); !reflect.DeepEqual(ls, datasets) {
		t.Errorf("sets: got %v, want %v", ls, datasets)
	}
}
