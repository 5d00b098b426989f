package region

import (
	"github.com/retroenv/n64coderegions/internal/mipsdecode"
	"github.com/retroenv/n64coderegions/internal/romimage"
)

// findCodeStart steps backward in 4-byte increments from seed while the
// candidate instruction is accepted by IsValidCPU, bottoming out at the
// header reserve.
func findCodeStart(img romimage.Image, seed int, opts Options) int {
	offset := seed
	for offset-4 >= opts.HeaderReserve {
		candidate := offset - 4
		instr := mipsdecode.Decode(img.ReadWordAt(candidate))
		if !mipsdecode.IsValidCPU(instr) {
			break
		}
		offset = candidate
	}
	return offset
}

// findCodeEnd steps forward in 4-byte increments from seed (which is
// already known valid, being a "jr $ra" with a valid delay slot) while the
// instruction is accepted by IsValidCPU, bottoming out at the image end.
// The returned offset is the first invalid word, i.e. the exclusive end of
// the half-open tentative region.
func findCodeEnd(img romimage.Image, seed int, opts Options) int {
	offset := seed
	for offset+4 <= img.Len() {
		instr := mipsdecode.Decode(img.ReadWordAt(offset))
		if !mipsdecode.IsValidCPU(instr) {
			break
		}
		offset += 4
	}
	return offset
}
