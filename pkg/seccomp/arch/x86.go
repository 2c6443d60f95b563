package arch

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"github.com/sandboxtools/seccomparch/pkg/system"
)

// The 32-bit x86 ABI multiplexes the socket and SysV IPC families behind
// two dispatcher syscalls selected by the first argument.
const (
	x86NRSocketcall = 102
	x86NRIpc        = 117
)

// Pseudo-syscall number bands for the multiplexed families. The
// dispatcher selector code recovers as base - num (socket = -101 -> 1).
const (
	x86PNRSocketBase = -100
	x86PNRSocketLast = -120
	x86PNRIpcBase    = -200
	x86PNRIpcLast    = -224
)

const x86ArgCountMax = 6

var x86Info = &Info{
	Token:  unix.AUDIT_ARCH_I386,
	Name:   system.ArchName386,
	Size:   system.ArchBits32,
	Endian: system.EndianLittle,
}

func init() {
	register(&handler{
		info:           x86Info,
		table:          x86SyscallTable,
		argCountMax:    x86ArgCountMax,
		rewriteSyscall: x86RewriteSyscall,
		rewriteFilter:  x86RewriteFilter,
	})
}

func x86IsSocketPseudo(num int) bool {
	return num < x86PNRSocketBase && num >= x86PNRSocketLast
}

func x86IsIpcPseudo(num int) bool {
	return num < x86PNRIpcBase && num >= x86PNRIpcLast
}

// x86RewriteSyscall folds the socket and ipc pseudo-syscalls back into
// their dispatcher entry points. Real syscall numbers pass through
// unchanged; a negative number outside the pseudo bands has no rewrite
// on this architecture.
func x86RewriteSyscall(num *int) error {
	switch {
	case *num >= 0:
		return nil
	case x86IsSocketPseudo(*num):
		*num = x86NRSocketcall
	case x86IsIpcPseudo(*num):
		*num = x86NRIpc
	default:
		return ErrArchNotSupported
	}

	return nil
}

// x86RewriteFilter rewrites a multiplexed syscall rule: the dispatcher's
// selector becomes a new arg0 equality comparison and the existing
// comparisons shift up one argument slot. A comparison already at the
// last slot cannot shift; strict mode fails the call, best-effort mode
// drops it.
func x86RewriteFilter(strict bool, num *int, chain *FilterChain) error {
	var dispatch, code int
	switch {
	case *num >= 0:
		return nil
	case x86IsSocketPseudo(*num):
		dispatch, code = x86NRSocketcall, x86PNRSocketBase-*num
	case x86IsIpcPseudo(*num):
		dispatch, code = x86NRIpc, x86PNRIpcBase-*num
	default:
		return ErrArchNotSupported
	}

	rewritten := make(FilterChain, 0, len(*chain)+1)
	rewritten = append(rewritten, ArgCmp{Arg: 0, Op: CmpEQ, Datum: uint64(code)})
	for _, cmp := range *chain {
		if int(cmp.Arg)+1 >= x86ArgCountMax {
			if strict {
				return ErrFilterNotPortable
			}
			log.WithFields(log.Fields{
				"arch": x86Info.Name,
				"arg":  cmp.Arg,
			}).Debug("arch.x86.RewriteFilter: dropping comparison, no argument slot left after the selector shift")
			continue
		}
		cmp.Arg++
		rewritten = append(rewritten, cmp)
	}

	*num = dispatch
	*chain = rewritten
	return nil
}
