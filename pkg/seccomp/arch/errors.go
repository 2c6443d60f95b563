package arch

import (
	"errors"
)

var (
	// ErrArchNotSupported - the architecture token has no registered
	// implementation for the requested operation.
	ErrArchNotSupported = errors.New("unsupported architecture")
	// ErrSyscallNotFound - lookup miss, a normal query outcome.
	ErrSyscallNotFound = errors.New("syscall not found")
	// ErrSyscallTranslation - no name-based counterpart exists in the
	// required syscall table.
	ErrSyscallTranslation = errors.New("no equivalent syscall on target architecture")
	// ErrFilterNotPortable - a strict rewrite could not preserve the
	// whole argument filter chain.
	ErrFilterNotPortable = errors.New("filter chain cannot be preserved")
	// ErrArgOutOfRange - syscall argument index outside the
	// architecture's argument count.
	ErrArgOutOfRange = errors.New("syscall argument index out of range")
)
