package region

import (
	"github.com/retroenv/n64coderegions/internal/mipsdecode"
	"github.com/retroenv/n64coderegions/internal/regstate"
	"github.com/retroenv/n64coderegions/internal/romimage"
)

// trimRegion advances rom_start past the leading junk instructions and
// leading zero words, then pulls rom_end back to the last well-terminated
// instruction (a non-linking unconditional branch followed by its delay
// slot).
func trimRegion(img romimage.Image, r *CodeRegion, opts Options) {
	invalid := regstate.CountInvalidStartInstructions(img, r.RomStart, r.RomEnd, opts.WeakMode)
	r.RomStart += 4 * invalid

	for r.RomStart < r.RomEnd && img.ReadWordAt(r.RomStart) == 0 {
		r.RomStart += 4
	}

	for r.RomEnd > r.RomStart {
		checkOffset := r.RomEnd - 8
		if checkOffset < 0 || !img.InBounds(checkOffset) {
			break
		}
		instr := mipsdecode.Decode(img.ReadWordAt(checkOffset))
		if isUnconditionalNonLinkingBranch(instr) {
			break
		}
		r.RomEnd -= 4
	}
}

// isUnconditionalNonLinkingBranch reports whether instr is "b" (the
// beq $r,$r pseudo-op), "j", or "jr" — the three terminators that end a
// well-formed function body, excluding the linking jumps jal/jalr which do
// not return control to the caller.
func isUnconditionalNonLinkingBranch(instr mipsdecode.Instruction) bool {
	switch instr.Opcode() {
	case mipsdecode.OpJ, mipsdecode.OpJR:
		return true
	case mipsdecode.OpBeq:
		return instr.Rs() == instr.Rt()
	default:
		return false
	}
}
