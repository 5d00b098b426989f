package region

import (
	"github.com/retroenv/n64coderegions/internal/mipsdecode"
	"github.com/retroenv/n64coderegions/internal/romimage"
)

// findReturnSeeds scans the image starting at the header reserve, in
// 4-byte steps, for "jr $ra" words whose delay slot is a plausible CPU or
// RSP instruction. Seeds are returned in ascending offset order.
func findReturnSeeds(img romimage.Image, opts Options) []int {
	seeds := make([]int, 0, 1024)
	for offset := opts.HeaderReserve; offset+8 <= img.Len(); offset += 4 {
		if img.ReadWordAt(offset) != jrRa {
			continue
		}
		delay := img.ReadWordAt(offset + 4)
		cpuDelay := mipsdecode.Decode(delay)
		rspDelay := mipsdecode.DecodeRSP(delay)
		if mipsdecode.IsValidCPU(cpuDelay) || mipsdecode.IsValidRSP(rspDelay) {
			seeds = append(seeds, offset)
		}
	}
	return seeds
}
