package arch

import (
	"fmt"
)

type syscallRewriteFunc func(num *int) error

type filterRewriteFunc func(strict bool, num *int, chain *FilterChain) error

// handler bundles everything registered for one architecture: its
// descriptor, syscall table, argument count, and the optional rewrite
// rules. Architectures without a rewrite rule leave the funcs nil and the
// corresponding operations report ErrArchNotSupported.
type handler struct {
	info           *Info
	table          []SyscallEntry
	argCountMax    int
	rewriteSyscall syscallRewriteFunc
	rewriteFilter  filterRewriteFunc
}

var (
	registry = map[uint32]*handler{}
	ordered  []*handler
)

// register adds an architecture implementation. Called from per-arch init
// funcs only; the registry is read-only afterwards.
func register(h *handler) {
	if _, ok := registry[h.info.Token]; ok {
		panic(fmt.Sprintf("arch: duplicate registration for token 0x%x", h.info.Token))
	}

	last := len(h.table) - 1
	if last < 0 || h.table[last].Name != "" || h.table[last].Num != NumUnresolved {
		panic(fmt.Sprintf("arch: %s syscall table is missing its terminator", h.info.Name))
	}

	registry[h.info.Token] = h
	ordered = append(ordered, h)
}

func handlerFor(token uint32) *handler {
	return registry[token]
}
