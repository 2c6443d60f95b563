package arch

import (
	"errors"

	"github.com/sandboxtools/seccomparch/pkg/system"
)

// SyscallEntry is one row of an architecture's syscall table. Negative
// numbers are reserved for pseudo-syscalls that do not exist as direct
// kernel entry points on that architecture.
type SyscallEntry struct {
	Name string `json:"name"`
	Num  int    `json:"num"`
}

// NumUnresolved is the reserved table terminator number. It is never a
// valid syscall number, real or pseudo.
const NumUnresolved = -1

// tableEnd terminates every syscall table.
var tableEnd = SyscallEntry{Name: "", Num: NumUnresolved}

// Raw argument capture layout (struct seccomp_data): six 8-byte argument
// slots starting at byte 16.
const (
	argDataOffset = 16
	argDataSize   = 8
)

// resolveNameInTable returns the number of the first entry matching name,
// in table order. The scan stops at the table terminator.
func resolveNameInTable(table []SyscallEntry, name string) (int, error) {
	for _, entry := range table {
		if entry.Name == "" {
			break
		}
		if entry.Name == name {
			return entry.Num, nil
		}
	}

	return NumUnresolved, ErrSyscallNotFound
}

// resolveNumberInTable returns the name of the first entry matching num.
// The scan stops at the terminator number and never reads past it.
func resolveNumberInTable(table []SyscallEntry, num int) (string, error) {
	for _, entry := range table {
		if entry.Num == NumUnresolved {
			break
		}
		if entry.Num == num {
			return entry.Name, nil
		}
	}

	return "", ErrSyscallNotFound
}

// ResolveSyscallName resolves a syscall name to its number on this
// architecture. A miss is reported as ErrSyscallNotFound and is a normal
// outcome, not a failure of the call.
func (ai *Info) ResolveSyscallName(name string) (int, error) {
	h := handlerFor(ai.Token)
	if h == nil {
		return NumUnresolved, ErrArchNotSupported
	}

	return resolveNameInTable(h.table, name)
}

// ResolveSyscallNumber resolves a syscall number, including negative
// pseudo-syscall numbers, to its name on this architecture.
func (ai *Info) ResolveSyscallNumber(num int) (string, error) {
	h := handlerFor(ai.Token)
	if h == nil {
		return "", ErrArchNotSupported
	}

	return resolveNumberInTable(h.table, num)
}

// SyscallTable returns a copy of the architecture's syscall table without
// its terminator entry.
func (ai *Info) SyscallTable() ([]SyscallEntry, error) {
	h := handlerFor(ai.Token)
	if h == nil {
		return nil, ErrArchNotSupported
	}

	out := make([]SyscallEntry, 0, len(h.table)-1)
	for _, entry := range h.table {
		if entry.Name == "" && entry.Num == NumUnresolved {
			break
		}
		out = append(out, entry)
	}

	return out, nil
}

// ArgCountMax returns the maximum syscall argument count for this
// architecture.
func (ai *Info) ArgCountMax() (int, error) {
	h := handlerFor(ai.Token)
	if h == nil {
		return 0, ErrArchNotSupported
	}

	return h.argCountMax, nil
}

// ArgOffsetLo returns the byte offset of the low 32-bit half of argument
// arg in the raw argument capture layout. Defined only for 32-bit
// architectures, which split a 64-bit argument across two registers;
// everything else reports ErrArchNotSupported, which callers must not
// confuse with an offset of zero.
func (ai *Info) ArgOffsetLo(arg int) (int, error) {
	return ai.argOffset(arg, true)
}

// ArgOffsetHi returns the byte offset of the high 32-bit half of argument
// arg. Same domain restrictions as ArgOffsetLo.
func (ai *Info) ArgOffsetHi(arg int) (int, error) {
	return ai.argOffset(arg, false)
}

func (ai *Info) argOffset(arg int, low bool) (int, error) {
	h := handlerFor(ai.Token)
	if h == nil {
		return 0, ErrArchNotSupported
	}
	if ai.Size != system.ArchBits32 {
		return 0, ErrArchNotSupported
	}
	if arg < 0 || arg >= h.argCountMax {
		return 0, ErrArgOutOfRange
	}

	offset := argDataOffset + arg*argDataSize
	// which half sits first is an endianness property, not register order
	switch ai.Endian {
	case system.EndianLittle:
		if !low {
			offset += 4
		}
	case system.EndianBig:
		if low {
			offset += 4
		}
	default:
		return 0, ErrArchNotSupported
	}

	return offset, nil
}

// TranslateSyscall re-expresses num, captured in native-architecture
// terms, as the equivalent syscall number on this architecture. The name
// is the cross-architecture identity; numbers are never compared across
// architectures directly. On failure the in/out value is left alone, but
// callers must check the returned error, not the value.
func (ai *Info) TranslateSyscall(num *int) error {
	return translateSyscall(Native(), ai, num)
}

func translateSyscall(native *Info, target *Info, num *int) error {
	if target.Token == native.Token {
		return nil
	}

	name, err := native.ResolveSyscallNumber(*num)
	if err != nil {
		if errors.Is(err, ErrArchNotSupported) {
			return err
		}
		return ErrSyscallTranslation
	}

	targetNum, err := target.ResolveSyscallName(name)
	if err != nil {
		if errors.Is(err, ErrArchNotSupported) {
			return err
		}
		return ErrSyscallTranslation
	}

	*num = targetNum
	return nil
}

// RewriteSyscall applies the architecture's historical quirks to an
// already translated syscall number, folding multiplexed calls into their
// dispatcher entry point. Architectures without a rewrite rule report
// ErrArchNotSupported; callers decide whether that rejects the rule.
func (ai *Info) RewriteSyscall(num *int) error {
	h := handlerFor(ai.Token)
	if h == nil || h.rewriteSyscall == nil {
		return ErrArchNotSupported
	}

	return h.rewriteSyscall(num)
}
