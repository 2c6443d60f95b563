package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/sandboxtools/seccomparch/pkg/seccomp/arch"
	"github.com/sandboxtools/seccomparch/pkg/system"
)

type resolution struct {
	Arch     system.ArchName `json:"arch"`
	Name     string          `json:"name,omitempty"`
	Num      int             `json:"num"`
	Resolved bool            `json:"resolved"`
}

var resolveCommand = &cli.Command{
	Name:    "resolve",
	Aliases: []string{"r"},
	Usage:   "Resolve syscall names or numbers on one architecture",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  FlagArch,
			Usage: "architecture name (default: native)",
		},
	},
	Action: onResolve,
}

func onResolve(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return fmt.Errorf("no syscall names or numbers given")
	}

	ai, err := archFromFlag(ctx, FlagArch)
	if err != nil {
		return err
	}

	logger := log.WithFields(log.Fields{"app": AppName, "cmd": "resolve", "arch": ai.Name})

	var results []resolution
	for _, query := range ctx.Args().Slice() {
		result := resolveQuery(ai, query)
		logger.WithFields(log.Fields{"query": query, "resolved": result.Resolved}).Debug("resolved query")
		results = append(results, result)
	}

	if jsonOutput(ctx) {
		printJSON(results)
		return nil
	}

	rows := make([]table.Row, 0, len(results))
	for _, result := range results {
		rows = append(rows, table.Row{result.Arch, result.Name, result.Num, result.Resolved})
	}
	printTable(table.Row{"Arch", "Name", "Num", "Resolved"}, rows)

	return nil
}

func resolveQuery(ai *arch.Info, query string) resolution {
	if num, err := strconv.Atoi(query); err == nil {
		name, rerr := ai.ResolveSyscallNumber(num)
		return resolution{
			Arch:     ai.Name,
			Name:     name,
			Num:      num,
			Resolved: rerr == nil,
		}
	}

	num, rerr := ai.ResolveSyscallName(query)
	return resolution{
		Arch:     ai.Name,
		Name:     query,
		Num:      num,
		Resolved: rerr == nil,
	}
}
