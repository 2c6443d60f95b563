package arch

import (
	"errors"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/sandboxtools/seccomparch/pkg/system"
)

func TestForGoArch(t *testing.T) {
	tt := []struct {
		goarch string
		name   system.ArchName
		bits   system.ArchBits
		endian system.Endianness
	}{
		{goarch: "386", name: system.ArchName386, bits: system.ArchBits32, endian: system.EndianLittle},
		{goarch: "amd64", name: system.ArchNameAmd64, bits: system.ArchBits64, endian: system.EndianLittle},
		{goarch: "arm", name: system.ArchNameArm32, bits: system.ArchBits32, endian: system.EndianLittle},
		{goarch: "arm64", name: system.ArchNameArm64, bits: system.ArchBits64, endian: system.EndianLittle},
	}

	for _, test := range tt {
		ai := ForGoArch(test.goarch)
		if ai == nil {
			t.Errorf("ForGoArch(%q) = nil, want descriptor", test.goarch)
			continue
		}
		if ai.Name != test.name || ai.Size != test.bits || ai.Endian != test.endian {
			t.Errorf("ForGoArch(%q) = {%s %d %s}, want {%s %d %s}",
				test.goarch, ai.Name, ai.Size, ai.Endian, test.name, test.bits, test.endian)
		}
	}

	for _, goarch := range []string{"", "mips", "riscv64", "wasm"} {
		if ai := ForGoArch(goarch); ai != nil {
			t.Errorf("ForGoArch(%q) = %v, want nil", goarch, ai)
		}
	}
}

func TestLookup(t *testing.T) {
	tt := []struct {
		token uint32
		name  system.ArchName
	}{
		{token: unix.AUDIT_ARCH_I386, name: system.ArchName386},
		{token: unix.AUDIT_ARCH_X86_64, name: system.ArchNameAmd64},
		{token: unix.AUDIT_ARCH_ARM, name: system.ArchNameArm32},
		{token: unix.AUDIT_ARCH_AARCH64, name: system.ArchNameArm64},
	}

	for _, test := range tt {
		ai, err := Lookup(test.token)
		if err != nil {
			t.Errorf("Lookup(0x%x) error: %v", test.token, err)
			continue
		}
		if ai.Name != test.name {
			t.Errorf("Lookup(0x%x) = %s, want %s", test.token, ai.Name, test.name)
		}
		if !Supported(test.token) {
			t.Errorf("Supported(0x%x) = false, want true", test.token)
		}
	}
}

func TestLookupUnknownToken(t *testing.T) {
	// an unrecognized token must be an error, never a native fallback
	for _, token := range []uint32{0, 0xdeadbeef, unix.AUDIT_ARCH_S390X} {
		ai, err := Lookup(token)
		if !errors.Is(err, ErrArchNotSupported) {
			t.Errorf("Lookup(0x%x) error = %v, want ErrArchNotSupported", token, err)
		}
		if ai != nil {
			t.Errorf("Lookup(0x%x) = %v, want nil", token, ai)
		}
		if Supported(token) {
			t.Errorf("Supported(0x%x) = true, want false", token)
		}
	}
}

func TestForName(t *testing.T) {
	for _, name := range []system.ArchName{
		system.ArchName386,
		system.ArchNameAmd64,
		system.ArchNameArm32,
		system.ArchNameArm64,
	} {
		ai, err := ForName(name)
		if err != nil {
			t.Errorf("ForName(%s) error: %v", name, err)
			continue
		}
		if ai.Name != name {
			t.Errorf("ForName(%s) = %s", name, ai.Name)
		}
	}

	if _, err := ForName(system.ArchNameUnknown); !errors.Is(err, ErrArchNotSupported) {
		t.Errorf("ForName(unknown) error = %v, want ErrArchNotSupported", err)
	}
}

func TestNativeIsRegistered(t *testing.T) {
	native := Native()
	if native == nil {
		t.Fatal("Native() = nil")
	}
	if !Supported(native.Token) {
		t.Errorf("native token 0x%x is not registered", native.Token)
	}
	if Native() != native {
		t.Error("Native() is not stable across calls")
	}
}

func TestInfos(t *testing.T) {
	infos := Infos()
	if len(infos) != 4 {
		t.Fatalf("Infos() returned %d descriptors, want 4", len(infos))
	}

	seen := map[uint32]bool{}
	for _, ai := range infos {
		if seen[ai.Token] {
			t.Errorf("duplicate token 0x%x", ai.Token)
		}
		seen[ai.Token] = true
	}
}
