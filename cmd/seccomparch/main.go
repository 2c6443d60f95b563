package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/sandboxtools/seccomparch/pkg/seccomp/arch"
	"github.com/sandboxtools/seccomparch/pkg/system"
	v "github.com/sandboxtools/seccomparch/pkg/version"
)

const (
	AppName  = "seccomparch"
	AppUsage = "Inspect and translate syscall filter identifiers across architectures"
)

const (
	FlagDebug  = "debug"
	FlagOutput = "output"
	FlagArch   = "arch"
	FlagTarget = "target"
)

const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
)

func main() {
	app := &cli.App{
		Name:    AppName,
		Usage:   AppUsage,
		Version: v.Current(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  FlagDebug,
				Usage: "enable debug logs",
			},
			&cli.StringFlag{
				Name:  FlagOutput,
				Value: OutputFormatTable,
				Usage: "output format ('table' or 'json')",
			},
		},
		Before: func(ctx *cli.Context) error {
			if ctx.Bool(FlagDebug) {
				log.SetLevel(log.DebugLevel)
			}

			if host := system.HostArch(); host.Name != arch.Native().Name {
				log.WithFields(log.Fields{
					"host":   host.Name,
					"native": arch.Native().Name,
				}).Debug("seccomparch: running on a foreign kernel architecture")
			}

			return nil
		},
		Commands: []*cli.Command{
			resolveCommand,
			translateCommand,
			tableCommand,
			profileCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		os.Exit(1)
	}
}

func archFromFlag(ctx *cli.Context, flag string) (*arch.Info, error) {
	name := ctx.String(flag)
	if name == "" {
		return arch.Native(), nil
	}

	ai, err := arch.ForName(system.ArchName(name))
	if err != nil {
		return nil, fmt.Errorf("unknown architecture %q (supported: %s)", name, archNames())
	}

	return ai, nil
}

func archNames() string {
	var names []string
	for _, ai := range arch.Infos() {
		names = append(names, string(ai.Name))
	}

	return strings.Join(names, ", ")
}
