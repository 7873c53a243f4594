// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Redrank is a tool to assign novelty bins
// to the nodes of a RED-decorated phylogenetic tree.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/redrank/cmd/redrank/add"
	"github.com/js-arias/redrank/cmd/redrank/bounds"
	"github.com/js-arias/redrank/cmd/redrank/classify"
	"github.com/js-arias/redrank/cmd/redrank/draw"
	"github.com/js-arias/redrank/cmd/redrank/medians"
	"github.com/js-arias/redrank/cmd/redrank/param"
	"github.com/js-arias/redrank/cmd/redrank/plot"
	"github.com/js-arias/redrank/cmd/redrank/prj"
	"github.com/js-arias/redrank/cmd/redrank/table"
)

var app = &command.Command{
	Usage: "redrank <command> [<argument>...]",
	Short: "a tool to assign novelty bins to RED-decorated trees",
}

func init() {
	app.Add(add.Command)
	app.Add(bounds.Command)
	app.Add(classify.Command)
	app.Add(draw.Command)
	app.Add(medians.Command)
	app.Add(param.Command)
	app.Add(plot.Command)
	app.Add(prj.Command)
	app.Add(table.Command)
}

func main() {
	app.Main()
}
