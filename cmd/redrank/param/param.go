// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package param implements a command to manage
// the RED parameters of a project.
package param

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/redrank/logger"
	"github.com/js-arias/redrank/project"
	"github.com/js-arias/redrank/redparam"
	"go.uber.org/zap"
)

var Command = &command.Command{
	Usage: `param [--add <param-file>] [--file <file-name>]
	[--domain <domain>] [--reference <name>]
	[--medians <phylum,class,order,family,genus>]
	[--debug] [--quiet]
	<project-file>`,
	Short: "manage RED parameters",
	Long: `
Command param manages the parameters used to assign novelty bins to the RED
values of a redrank project.

The argument of the command is the name of the project file.

By default, the command will print the currently defined parameters. If no
parameters are defined in the project, the default parameters will be
printed: the median RED values of bacteria in GTDB release 220, using GTDB as
the reference set.

If the flag --add is defined, it will use the indicated file for the RED
parameters.

By default, any change on the parameters will be stored in the current
parameters file. Use the flag --file to define a new parameters file. If the
project has no parameters file, the file "red-param.tab" will be used.

The flag --domain sets the domain of the genomes, and resets the median RED
values to the values of the domain. Valid values are "d__Bacteria" (or
"bacteria") and "d__Archaea" (or "archaea").

The flag --reference sets the name of the reference genome set. This name is
used in the membership column of the node table, and in lowercase for the
group column.

The flag --medians sets the median RED values of the ranks, from phylum to
genus, as five comma-separated values, for example
"0.22,0.39,0.53,0.73,0.91". If used with --domain, the values of --medians
will be used.

The flag --debug prints additional information. The flag --quiet only prints
errors.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var addFile string
var paramFile string
var domain string
var reference string
var mediansFlag string
var logSw logger.Switches

func setFlags(c *command.Command) {
	c.Flags().StringVar(&addFile, "add", "", "")
	c.Flags().StringVar(&paramFile, "file", "", "")
	c.Flags().StringVar(&domain, "domain", "", "")
	c.Flags().StringVar(&reference, "reference", "", "")
	c.Flags().StringVar(&mediansFlag, "medians", "", "")
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

	if addFile != "" {
		if _, err := redparam.Read(addFile); err != nil {
			return err
		}
		p.Add(project.Param, addFile)
		if err := p.Write(); err != nil {
			return err
		}
		return nil
	}

	rp, err := p.Param()
	if err != nil {
		return err
	}
	if paramFile != "" {
		rp.SetName(paramFile)
	}

	ed := false
	if domain != "" {
		if err := rp.SetDomain(domain); err != nil {
			return err
		}
		ed = true
	}
	if reference != "" {
		if err := rp.SetReference(reference); err != nil {
			return err
		}
		ed = true
	}
	if mediansFlag != "" {
		m, err := parseMedians(mediansFlag)
		if err != nil {
			return err
		}
		if err := rp.SetMedians(m); err != nil {
			return err
		}
		ed = true
	}
	if !rp.Ordered() {
		logger.Warn("median RED values are not in increasing order", zap.Float64s("medians", rp.Medians()))
	}

	if ed || p.Path(project.Param) != rp.Name() {
		if rp.Name() == "" {
			rp.SetName("red-param.tab")
		}
		if err := rp.Write(); err != nil {
			return err
		}
		logger.Info("parameters updated", zap.String("file", rp.Name()))
		if p.Path(project.Param) != rp.Name() {
			p.Add(project.Param, rp.Name())
			if err := p.Write(); err != nil {
				return err
			}
		}
		return nil
	}

	printParams(c.Stdout(), rp)
	return nil
}

func parseMedians(s string) ([]float64, error) {
	vals := strings.Split(s, ",")
	m := make([]float64, 0, len(vals))
	for i, v := range vals {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid median value %d: %q: %v", i+1, v, err)
		}
		m = append(m, f)
	}
	return m, nil
}

func printParams(w io.Writer, rp *redparam.RP) {
	name := rp.Name()
	if name == "" {
		name = "(default)"
	}
	fmt.Fprintf(w, "file:      %s\n", name)
	fmt.Fprintf(w, "domain:    %s\n", rp.Domain())
	fmt.Fprintf(w, "reference: %s\n", rp.Reference())
	m := rp.Medians()
	for i, p := range redparam.MedianParams {
		fmt.Fprintf(w, "%-10s %.6f\n", string(p)+":", m[i])
	}
}
