package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/sandboxtools/seccomparch/pkg/system"
)

// Minimal OCI runtime-spec seccomp profile subset, enough for container
// runtimes to consume.
type seccompArch string

const (
	seccompArchX86     seccompArch = "SCMP_ARCH_X86"
	seccompArchX86_64  seccompArch = "SCMP_ARCH_X86_64"
	seccompArchARM     seccompArch = "SCMP_ARCH_ARM"
	seccompArchAARCH64 seccompArch = "SCMP_ARCH_AARCH64"
)

type seccompAction string

const (
	seccompActAllow seccompAction = "SCMP_ACT_ALLOW"
	seccompActErrno seccompAction = "SCMP_ACT_ERRNO"
)

type seccompSyscall struct {
	Names  []string      `json:"names"`
	Action seccompAction `json:"action"`
}

type seccompProfile struct {
	DefaultAction seccompAction     `json:"defaultAction"`
	Architectures []seccompArch     `json:"architectures"`
	Syscalls      []*seccompSyscall `json:"syscalls"`
}

var seccompArchMap = map[system.ArchName]seccompArch{
	system.ArchName386:   seccompArchX86,
	system.ArchNameAmd64: seccompArchX86_64,
	system.ArchNameArm32: seccompArchARM,
	system.ArchNameArm64: seccompArchAARCH64,
}

var profileCommand = &cli.Command{
	Name:    "profile",
	Aliases: []string{"p"},
	Usage:   "Generate an allow-list seccomp profile from syscall names",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  FlagArch,
			Usage: "architecture name (default: native)",
		},
	},
	Action: onProfile,
}

func onProfile(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return fmt.Errorf("no syscall names given")
	}

	ai, err := archFromFlag(ctx, FlagArch)
	if err != nil {
		return err
	}

	logger := log.WithFields(log.Fields{"app": AppName, "cmd": "profile", "arch": ai.Name})

	allowed := &seccompSyscall{
		Action: seccompActAllow,
	}
	for _, name := range ctx.Args().Slice() {
		if _, rerr := ai.ResolveSyscallName(name); rerr != nil {
			logger.WithField("name", name).Debug("skipping syscall, not in the architecture's table")
			continue
		}
		allowed.Names = append(allowed.Names, name)
	}

	if len(allowed.Names) == 0 {
		return fmt.Errorf("none of the given names resolve on %s", ai.Name)
	}

	profile := &seccompProfile{
		DefaultAction: seccompActErrno,
		Architectures: []seccompArch{seccompArchMap[ai.Name]},
		Syscalls:      []*seccompSyscall{allowed},
	}

	printJSON(profile)
	return nil
}
