package expand

import "strings"

// DefaultCPU is used when no CPU is configured.
const DefaultCPU = "x86"

// CPU is the target processor family of the generated makefile.
type CPU int

const (
	CPUUnknown CPU = iota
	CPUx86
	CPUx64
)

// ParseCPU maps a CPU name such as "x86" or "x64" to a CPU. An empty name
// means DefaultCPU.
func ParseCPU(name string) CPU {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "x86", "i386", "i486", "i586", "i686":
		return CPUx86
	case "x64", "amd64", "x86_64":
		return CPUx64
	}
	return CPUUnknown
}

// Bits returns "32", "64" or "??".
func (c CPU) Bits() string {
	switch c {
	case CPUx86:
		return "32"
	case CPUx64:
		return "64"
	}
	return "??"
}

// Machine returns the linker machine name.
func (c CPU) Machine() string {
	switch c {
	case CPUx86:
		return "x86"
	case CPUx64:
		return "x64"
	}
	return "??"
}

// Target returns the windres --target value.
func (c CPU) Target() string {
	switch c {
	case CPUx86:
		return "pe-i386"
	case CPUx64:
		return "pe-x86-64"
	}
	return "??"
}
