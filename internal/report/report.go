// Package report prints code region findings as a human-readable, optionally
// colorized report.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/retroenv/n64coderegions/internal/region"
)

var (
	rangeColor  = color.New(color.FgCyan).SprintfFunc()
	sizeColor   = color.New(color.FgYellow).SprintfFunc()
	rspYesColor = color.New(color.FgGreen).SprintFunc()
	rspNoColor  = color.New(color.FgRed).SprintFunc()
)

// Print writes the region report to w. When diag is set, raw (unaligned)
// rom_start/rom_end are printed instead of the 16-byte-rounded form used by
// default.
func Print(w io.Writer, regions []region.CodeRegion, diag bool) {
	fmt.Fprintf(w, "Found %d code regions:\n", len(regions))
	for _, r := range regions {
		printRegion(w, r, diag)
	}
}

func printRegion(w io.Writer, r region.CodeRegion, diag bool) {
	start, end := r.RomStart, r.RomEnd
	if !diag {
		start = roundDown16(start)
		end = roundUp16(end)
	}
	size := end - start

	rsp := rspNoColor("false")
	if r.HasRSP {
		rsp = rspYesColor("true")
	}

	fmt.Fprintf(w, "  %s (%s) rsp: %s\n",
		rangeColor("0x%08X to 0x%08X", start, end),
		sizeColor("0x%X", size),
		rsp)
}

func roundDown16(offset int) int {
	return offset &^ 0xF
}

func roundUp16(offset int) int {
	return (offset + 0xF) &^ 0xF
}
