package system

import (
	"testing"
)

func TestMachineToArch(t *testing.T) {
	tt := []struct {
		machine string
		name    ArchName
		bits    ArchBits
	}{
		{machine: "i386", name: ArchName386, bits: ArchBits32},
		{machine: "i586", name: ArchName386, bits: ArchBits32},
		{machine: "i686", name: ArchName386, bits: ArchBits32},
		{machine: "x86_64", name: ArchNameAmd64, bits: ArchBits64},
		{machine: "armv7l", name: ArchNameArm32, bits: ArchBits32},
		{machine: "aarch64", name: ArchNameArm64, bits: ArchBits64},
		{machine: "s390x", name: ArchNameUnknown, bits: ArchBitsUnknown},
		{machine: "", name: ArchNameUnknown, bits: ArchBitsUnknown},
	}

	for _, test := range tt {
		archInfo := MachineToArch(test.machine)
		if archInfo.Name != test.name || archInfo.Bits != test.bits {
			t.Errorf("MachineToArch(%q) = {%s %d}, want {%s %d}",
				test.machine, archInfo.Name, archInfo.Bits, test.name, test.bits)
		}
		if name := MachineToArchName(test.machine); name != test.name {
			t.Errorf("MachineToArchName(%q) = %s, want %s", test.machine, name, test.name)
		}
	}
}

func TestGoArchToArch(t *testing.T) {
	tt := []struct {
		goarch string
		name   ArchName
		endian Endianness
	}{
		{goarch: "386", name: ArchName386, endian: EndianLittle},
		{goarch: "amd64", name: ArchNameAmd64, endian: EndianLittle},
		{goarch: "arm", name: ArchNameArm32, endian: EndianLittle},
		{goarch: "arm64", name: ArchNameArm64, endian: EndianLittle},
		{goarch: "mips64", name: ArchNameUnknown, endian: EndianUnknown},
		{goarch: "", name: ArchNameUnknown, endian: EndianUnknown},
	}

	for _, test := range tt {
		archInfo := GoArchToArch(test.goarch)
		if archInfo.Name != test.name || archInfo.Endian != test.endian {
			t.Errorf("GoArchToArch(%q) = {%s %s}, want {%s %s}",
				test.goarch, archInfo.Name, archInfo.Endian, test.name, test.endian)
		}
	}
}

func TestEndiannessString(t *testing.T) {
	tt := []struct {
		endian Endianness
		want   string
	}{
		{endian: EndianLittle, want: "little"},
		{endian: EndianBig, want: "big"},
		{endian: EndianUnknown, want: "unknown"},
		{endian: Endianness(42), want: "unknown"},
	}

	for _, test := range tt {
		if got := test.endian.String(); got != test.want {
			t.Errorf("Endianness(%d).String() = %q, want %q", test.endian, got, test.want)
		}
	}
}
