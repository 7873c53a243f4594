// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(nodeLabelsGuide)
	app.Add(nodeTablesGuide)
	app.Add(projectsGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
Redrank requires several files to read and process a decorated tree. To
reduce the burden of keeping track of many files, a single project file is
used to hold the reference of all files required in the analysis. This guide
explains the structure of the file, but most of the time, the best and most
secure way to edit or view this file is by using redrank commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# redrank project files
	dataset	path
	nodes	nodes.tab
	param	red-param.tab
	taxonomy	bac120_taxonomy_r220.tsv
	tree	gtdbtk.bac120.decorated.tree

The valid file types are:

- Decorated trees. Defined by the dataset keyword "tree". This file contains
  a single tree in newick format, in which node labels carry the bootstrap,
  taxonomy, genome, and RED values (see "redrank help node-labels"). The
  recommended way to add a tree is by using the command 'redrank add'.
- Reference taxonomy. Defined by the dataset keyword "taxonomy". This file is
  a tab-delimited file without header, with the genome ID in the first column
  and the taxonomy string in the second column. The recommended way to add a
  taxonomy is by using the command 'redrank add'.
- RED parameters. Defined by the dataset keyword "param". This file contains
  the domain, the name of the reference set, and the median RED values of
  each rank. If not defined, the GTDB values for bacteria will be used. The
  recommended way to edit the parameters is by using the command
  'redrank param'.
- Node tables. Defined by the dataset keyword "nodes". This file contains the
  table of tree nodes (see "redrank help node-tables"). It is created with the
  command 'redrank table'.
	`,
}

var nodeLabelsGuide = &command.Command{
	Usage: "node-labels",
	Short: "about the labels of decorated trees",
	Long: `
The node labels of a decorated tree encode several values. A label might
contain:

	- A RED suffix "|RED=<value>", for example "|RED=0.931". The suffix is
	  always removed before reading any other value.
	- A bootstrap value, with a single digit, a point, and one to three
	  digits, for example "0.996". A bootstrap can be the whole label, or
	  the prefix of a "<bootstrap>:<taxonomy>" label.
	- A taxonomy, after the colon of a "<bootstrap>:<taxonomy>" label, or
	  the whole label if it contains a rank marker "__", for example
	  "g__Escherichia".
	- A genome ID, if the label is not a bootstrap, and has neither a
	  colon nor a rank marker, for example "RS_GCF_000005845.2".

Spaces and surrounding quotes are ignored. Values that are not found or that
can not be read are set as null, and written as "NA".

Here are some examples:

	0.95
	    bootstrap 0.95
	'0.95:g__Xenobium|RED=0.931'
	    bootstrap 0.95, taxonomy "g__Xenobium", RED 0.931
	'g__Xenobium; s__Xenobium albus'
	    taxonomy "g__Xenobium; s__Xenobium albus"
	'GB_GCA_000123.1|RED=1.000'
	    genome "GB_GCA_000123.1", RED 1
	`,
}

var nodeTablesGuide = &command.Command{
	Usage: "node-tables",
	Short: "about node table files",
	Long: `
A node table is a tab-delimited file with a row for each node of a decorated
tree. It has the following columns:

	- parent         the ID of the parent node (the root is its own
	                 parent).
	- node           the ID of the node. Terminals are numbered from 1 in
	                 the order of the tree file, the root follows, and then
	                 the other internal nodes in pre-order.
	- branch.length  the length of the branch to the parent.
	- label          the raw label of the node.
	- nongtdb_group  for terminals, the lowercase name of the reference set
	                 (e.g., "gtdb") if the genome is in the reference, or
	                 the name with the "non" prefix (e.g., "nongtdb").
	- bootstrap      the bootstrap value of the node.
	- taxonomy       the taxonomy of the node.
	- genome         the genome ID of the node.
	- magset         the name of the reference set (e.g., "GTDB") if the
	                 genome is in the reference, or "other".
	- RED            the RED value of the node.
	- novelty_red    the novelty bin of the node RED value, for example
	                 "Genus (0.84-0.96]".

Null values are written as "NA".

Here is an example file:

	parent	node	branch.length	label	nongtdb_group	bootstrap	taxonomy	genome	magset	RED	novelty_red
	4	1	0.1	A	nongtdb	NA	NA	A	other	NA	NA
	4	2	0.2	RS_GCF_000005845.2	gtdb	NA	NA	RS_GCF_000005845.2	GTDB	NA	NA
	4	3	0.3	B	nongtdb	NA	NA	B	other	NA	NA
	4	4	NA	'|RED=0.000'	NA	NA	NA	NA	other	0	NA
	`,
}
