package arch

import (
	"golang.org/x/sys/unix"

	"github.com/sandboxtools/seccomparch/pkg/system"
)

const arm32ArgCountMax = 6

var arm32Info = &Info{
	Token:  unix.AUDIT_ARCH_ARM,
	Name:   system.ArchNameArm32,
	Size:   system.ArchBits32,
	Endian: system.EndianLittle,
}

// The EABI gives the socket and ipc families direct syscall numbers, so
// unlike 32-bit x86 there is nothing to demultiplex.
func init() {
	register(&handler{
		info:        arm32Info,
		table:       arm32SyscallTable,
		argCountMax: arm32ArgCountMax,
	})
}
