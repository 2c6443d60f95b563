package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/sandboxtools/seccomparch/pkg/seccomp/arch"
	"github.com/sandboxtools/seccomparch/pkg/system"
)

type translation struct {
	Name       string          `json:"name,omitempty"`
	NativeNum  int             `json:"native_num"`
	TargetArch system.ArchName `json:"target_arch"`
	TargetNum  int             `json:"target_num"`
	Note       string          `json:"note,omitempty"`
}

var translateCommand = &cli.Command{
	Name:    "translate",
	Aliases: []string{"t"},
	Usage:   "Translate native syscalls to a target architecture, applying its rewrite rules",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     FlagTarget,
			Usage:    "target architecture name",
			Required: true,
		},
	},
	Action: onTranslate,
}

func onTranslate(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return fmt.Errorf("no syscall names or numbers given")
	}

	target, err := archFromFlag(ctx, FlagTarget)
	if err != nil {
		return err
	}

	logger := log.WithFields(log.Fields{"app": AppName, "cmd": "translate", "target": target.Name})

	var results []translation
	for _, query := range ctx.Args().Slice() {
		result := translateQuery(target, query)
		logger.WithFields(log.Fields{"query": query, "num": result.TargetNum}).Debug("translated query")
		results = append(results, result)
	}

	if jsonOutput(ctx) {
		printJSON(results)
		return nil
	}

	rows := make([]table.Row, 0, len(results))
	for _, result := range results {
		rows = append(rows, table.Row{
			result.Name, result.NativeNum, result.TargetArch, result.TargetNum, result.Note,
		})
	}
	printTable(table.Row{"Name", "Native", "Target Arch", "Target Num", "Note"}, rows)

	return nil
}

func translateQuery(target *arch.Info, query string) translation {
	native := arch.Native()
	result := translation{TargetArch: target.Name, TargetNum: arch.NumUnresolved}

	num, err := strconv.Atoi(query)
	if err != nil {
		num, err = native.ResolveSyscallName(query)
		if err != nil {
			result.Name = query
			result.NativeNum = arch.NumUnresolved
			result.Note = "not a native syscall"
			return result
		}
	}

	result.NativeNum = num
	if name, err := native.ResolveSyscallNumber(num); err == nil {
		result.Name = name
	}

	if err := target.TranslateSyscall(&num); err != nil {
		result.Note = err.Error()
		return result
	}

	if err := target.RewriteSyscall(&num); err != nil {
		if !errors.Is(err, arch.ErrArchNotSupported) {
			result.Note = err.Error()
			return result
		}
		// no rewrite rule registered; a leftover pseudo-syscall number
		// cannot be encoded into a filter as is
		if num < 0 {
			result.Note = "pseudo-syscall without a rewrite rule"
			return result
		}
	}

	result.TargetNum = num
	return result
}
