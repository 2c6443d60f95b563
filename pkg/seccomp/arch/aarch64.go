package arch

import (
	"golang.org/x/sys/unix"

	"github.com/sandboxtools/seccomparch/pkg/system"
)

const aarch64ArgCountMax = 6

var aarch64Info = &Info{
	Token:  unix.AUDIT_ARCH_AARCH64,
	Name:   system.ArchNameArm64,
	Size:   system.ArchBits64,
	Endian: system.EndianLittle,
}

func init() {
	register(&handler{
		info:        aarch64Info,
		table:       aarch64SyscallTable,
		argCountMax: aarch64ArgCountMax,
	})
}
