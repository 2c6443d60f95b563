package arch

import (
	"golang.org/x/sys/unix"

	"github.com/sandboxtools/seccomparch/pkg/system"
)

const x8664ArgCountMax = 6

var x8664Info = &Info{
	Token:  unix.AUDIT_ARCH_X86_64,
	Name:   system.ArchNameAmd64,
	Size:   system.ArchBits64,
	Endian: system.EndianLittle,
}

// x86_64 has no multiplexed dispatchers, so no rewrite rules are
// registered.
func init() {
	register(&handler{
		info:        x8664Info,
		table:       x8664SyscallTable,
		argCountMax: x8664ArgCountMax,
	})
}
