package system

import (
	"golang.org/x/sys/unix"
)

type SystemInfo struct {
	Sysname  string
	Nodename string
	Release  string
	Version  string
	Machine  string
}

func newSystemInfo() SystemInfo {
	var sysInfo SystemInfo
	var unameInfo unix.Utsname

	if err := unix.Uname(&unameInfo); err != nil {
		return sysInfo
	}

	sysInfo.Sysname = unix.ByteSliceToString(unameInfo.Sysname[:])
	sysInfo.Nodename = unix.ByteSliceToString(unameInfo.Nodename[:])
	sysInfo.Machine = unix.ByteSliceToString(unameInfo.Machine[:])
	//kernel info
	sysInfo.Release = unix.ByteSliceToString(unameInfo.Release[:])
	sysInfo.Version = unix.ByteSliceToString(unameInfo.Version[:])

	return sysInfo
}

var defaultSysInfo = newSystemInfo()

func GetSystemInfo() SystemInfo {
	return defaultSysInfo
}

// HostMachine returns the running kernel's machine string (uname -m).
func HostMachine() string {
	return defaultSysInfo.Machine
}

// HostArch classifies the running kernel's machine string. Tools use this to
// cross-check the compiled-in native architecture against the actual host.
func HostArch() *ArchInfo {
	return MachineToArch(HostMachine())
}
