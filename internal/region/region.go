// Package region implements the Region Finder: candidate seeding from
// return instructions, bidirectional growth, trimming, adjacent-region
// merging, and RSP tail extension.
package region

import (
	"fmt"

	"github.com/retroenv/n64coderegions/internal/romimage"
)

// CodeRegion is a half-open byte interval [RomStart, RomEnd) that the
// analyzer claims contains code, plus whether that code is RSP microcode.
type CodeRegion struct {
	RomStart int
	RomEnd   int
	HasRSP   bool
}

// InstructionCount returns the number of 32-bit instruction words the
// region spans.
func (r CodeRegion) InstructionCount() int {
	return (r.RomEnd - r.RomStart) / 4
}

// Options controls the finder's tunables.
type Options struct {
	// WeakMode enables the Register-Init Analyzer's weak-mode initialized
	// set ($v0, $fv0, $fv0f). Default on.
	WeakMode bool
	// MinInstructions drops regions with fewer instructions than this from
	// the final output. Zero (the default) keeps every region.
	MinInstructions int
	// HeaderReserve is the lowest byte offset the finder will ever treat as
	// code (the standard N64 header reserve). Zero is normalized to 0x1000.
	HeaderReserve int
	// MicrocodeCheckThreshold is the maximum byte gap between two regions
	// that adjacent-region bridging will attempt to close. Zero is
	// normalized to 4096.
	MicrocodeCheckThreshold int
}

// DefaultOptions returns the tool's defaults: weak mode on, no minimum
// instruction floor, a 0x1000-byte header reserve, and a 4096-byte bridging
// threshold.
func DefaultOptions() Options {
	return Options{
		WeakMode:                true,
		MinInstructions:         0,
		HeaderReserve:           0x1000,
		MicrocodeCheckThreshold: 4096,
	}
}

func (o Options) normalize() Options {
	if o.HeaderReserve == 0 {
		o.HeaderReserve = 0x1000
	}
	if o.MicrocodeCheckThreshold == 0 {
		o.MicrocodeCheckThreshold = 4096
	}
	return o
}

// jrRa is the MIPS encoding of "jr $ra", the return-seed marker.
const jrRa = 0x03E00008

// FindCodeRegions is the core entry point: a pure function from an
// immutable byte image to an owned list of code regions. image.Len() must
// be a multiple of four and greater than the header reserve; violating
// either is reported as an error rather than a panic, since it is a
// precondition the host controls, not an internal invariant.
func FindCodeRegions(image []byte, opts Options) ([]CodeRegion, error) {
	img, err := romimage.New(image)
	if err != nil {
		return nil, fmt.Errorf("building image view: %w", err)
	}
	opts = opts.normalize()
	if img.Len() <= opts.HeaderReserve {
		return nil, fmt.Errorf("image length %#x does not exceed header reserve %#x", img.Len(), opts.HeaderReserve)
	}

	seeds := findReturnSeeds(img, opts)

	var regions []CodeRegion
	idx := 0
	for idx < len(seeds) {
		seed := seeds[idx]
		start := findCodeStart(img, seed, opts)
		end := findCodeEnd(img, seed, opts)
		idx = advancePast(seeds, idx, end)

		tentative := CodeRegion{RomStart: start, RomEnd: end}
		trimRegion(img, &tentative, opts)
		if tentative.RomStart >= tentative.RomEnd {
			// trimming consumed the entire tentative region: no real code
			// was found around this seed.
			continue
		}

		merged := false
		if n := len(regions); n > 0 {
			prev := &regions[n-1]
			if tryBridge(img, prev, tentative, opts) {
				merged = true
				extendRSPTail(img, prev, opts)
				idx = advancePast(seeds, idx, prev.RomEnd)
			}
		}
		if !merged {
			regions = append(regions, tentative)
			cur := &regions[len(regions)-1]
			if cur.HasRSP {
				extendRSPTail(img, cur, opts)
				idx = advancePast(seeds, idx, cur.RomEnd)
			}
		}
	}

	if opts.MinInstructions > 0 {
		regions = filterByMinInstructions(regions, opts.MinInstructions)
	}
	return regions, nil
}

func filterByMinInstructions(regions []CodeRegion, min int) []CodeRegion {
	out := regions[:0]
	for _, r := range regions {
		if r.InstructionCount() >= min {
			out = append(out, r)
		}
	}
	return out
}

// advancePast returns the first index in seeds whose offset is not less
// than boundary, starting the search from idx. Seeds are ascending, so this
// is a forward-only skip.
func advancePast(seeds []int, idx, boundary int) int {
	for idx < len(seeds) && seeds[idx] < boundary {
		idx++
	}
	return idx
}
