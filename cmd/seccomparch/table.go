package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

var tableCommand = &cli.Command{
	Name:    "table",
	Aliases: []string{"tbl"},
	Usage:   "Dump the syscall table of one architecture",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  FlagArch,
			Usage: "architecture name (default: native)",
		},
	},
	Action: onTable,
}

func onTable(ctx *cli.Context) error {
	ai, err := archFromFlag(ctx, FlagArch)
	if err != nil {
		return err
	}

	entries, err := ai.SyscallTable()
	if err != nil {
		return err
	}

	if jsonOutput(ctx) {
		printJSON(entries)
		return nil
	}

	rows := make([]table.Row, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, table.Row{entry.Name, entry.Num})
	}
	printTable(table.Row{"Name", "Num"}, rows)

	return nil
}
