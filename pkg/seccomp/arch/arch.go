// Package arch is the architecture-translation layer of the filter
// pipeline. It resolves syscall names and numbers per architecture,
// translates native syscall numbers to other architectures using the name
// as the cross-architecture identity, and rewrites syscalls and argument
// filter chains for architectures with multiplexed dispatcher syscalls.
//
// All operations are pure functions over immutable registry data and are
// safe for concurrent use; the caller must have exclusive access to any
// in/out values it passes in for the duration of a call.
package arch

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/sandboxtools/seccomparch/pkg/system"
)

// Info describes one supported CPU/ABI combination. Token is the kernel
// audit architecture identifier the kernel reports in seccomp_data.
type Info struct {
	Token  uint32            `json:"token"`
	Name   system.ArchName   `json:"name"`
	Size   system.ArchBits   `json:"bits"`
	Endian system.Endianness `json:"endian"`
}

var (
	nativeOnce sync.Once
	nativeArch *Info
)

// Native returns the descriptor of the architecture this process was built
// for. It is computed once and never changes. An unclassifiable build
// architecture is a hard error, not a silent default.
func Native() *Info {
	nativeOnce.Do(func() {
		nativeArch = ForGoArch(runtime.GOARCH)
		if nativeArch == nil {
			panic(fmt.Sprintf("arch: no support for the %q build architecture", runtime.GOARCH))
		}
	})

	return nativeArch
}

// ForGoArch maps a runtime.GOARCH value to a registered descriptor.
// Returns nil for architectures this library was not built with.
func ForGoArch(goarch string) *Info {
	archInfo := system.GoArchToArch(goarch)
	for _, h := range ordered {
		if h.info.Name == archInfo.Name {
			return h.info
		}
	}

	return nil
}

// ForName maps an architecture name to a registered descriptor.
func ForName(name system.ArchName) (*Info, error) {
	for _, h := range ordered {
		if h.info.Name == name {
			return h.info, nil
		}
	}

	return nil, ErrArchNotSupported
}

// Lookup maps an audit architecture token to a registered descriptor.
func Lookup(token uint32) (*Info, error) {
	h := handlerFor(token)
	if h == nil {
		return nil, ErrArchNotSupported
	}

	return h.info, nil
}

// Supported reports whether the token has a registered implementation.
func Supported(token uint32) bool {
	return handlerFor(token) != nil
}

// Infos returns the registered descriptors in registration order.
func Infos() []*Info {
	out := make([]*Info, 0, len(ordered))
	for _, h := range ordered {
		out = append(out, h.info)
	}

	return out
}
