// Package cpuinfo reports the CPU features stillcount's search loop would
// otherwise silently depend on, so calibration runs and bug reports can
// record what hardware a timing actually came from.
package cpuinfo

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Report is a snapshot of the running CPU's relevant feature bits.
type Report struct {
	Arch  string
	SSE41 bool
	AVX2  bool
	NEON  bool
}

// Detect returns a Report for the current process's CPU.
func Detect() Report {
	r := Report{Arch: runtime.GOARCH}
	r.SSE41 = cpu.X86.HasSSE41
	r.AVX2 = cpu.X86.HasAVX2
	r.NEON = cpu.ARM64.HasASIMD
	return r
}

// String renders the report as a short human-readable line, suitable for
// a calibration report header.
func (r Report) String() string {
	s := "cpu: " + r.Arch
	if r.Arch == "amd64" {
		s += " sse4.1=" + boolMark(r.SSE41) + " avx2=" + boolMark(r.AVX2)
	} else if r.Arch == "arm64" {
		s += " neon=" + boolMark(r.NEON)
	}
	return s
}

func boolMark(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
