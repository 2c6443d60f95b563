package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/sandboxtools/seccomparch/pkg/util/jsonutil"
)

func jsonOutput(ctx *cli.Context) bool {
	return ctx.String(FlagOutput) == OutputFormatJSON
}

func printJSON(input interface{}) {
	fmt.Printf("%s\n", jsonutil.ToPretty(input))
}

func printTable(header table.Row, rows []table.Row) {
	tw := table.NewWriter()
	tw.AppendHeader(header)

	for _, row := range rows {
		tw.AppendRow(row)
	}

	tw.SetStyle(table.StyleLight)
	tw.Style().Options.DrawBorder = false
	fmt.Printf("%s\n", tw.Render())
}
