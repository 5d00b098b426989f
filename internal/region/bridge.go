package region

import (
	"github.com/retroenv/n64coderegions/internal/mipsdecode"
	"github.com/retroenv/n64coderegions/internal/romimage"
)

// tryBridge checks whether the gap between prev and next is small enough,
// then tests whether it decodes fully as CPU or (failing that) RSP code, and
// if so merges next into prev. CPU is tried first because CPU evidence is
// strictly stronger — it implies the surrounding regions are CPU, so no RSP
// flag needs to be raised.
func tryBridge(img romimage.Image, prev *CodeRegion, next CodeRegion, opts Options) bool {
	gap := next.RomStart - prev.RomEnd
	if gap < 0 || gap >= opts.MicrocodeCheckThreshold {
		return false
	}

	if checkRangeCPU(img, prev.RomEnd, next.RomStart) {
		prev.RomEnd = next.RomEnd
		return true
	}
	if checkRangeRSP(img, prev.RomEnd, next.RomStart) {
		prev.HasRSP = true
		prev.RomEnd = next.RomEnd
		return true
	}
	return false
}

// checkRangeCPU reports whether every word in [start, end) is accepted by
// IsValidCPU, and no three consecutive identical words are themselves loads
// or stores (three identical loads/stores in a row are treated as
// fabricated data, not code).
func checkRangeCPU(img romimage.Image, start, end int) bool {
	var prevWord uint32
	repeat := 0
	for offset := start; offset < end; offset += 4 {
		word := img.ReadWordAt(offset)
		instr := mipsdecode.Decode(word)
		if !mipsdecode.IsValidCPU(instr) {
			return false
		}
		if offset > start && word == prevWord {
			repeat++
		} else {
			repeat = 1
		}
		prevWord = word
		if repeat >= 3 && (instr.DoesLoad() || instr.DoesStore()) {
			return false
		}
	}
	return true
}

// checkRangeRSP is checkRangeCPU's RSP counterpart.
func checkRangeRSP(img romimage.Image, start, end int) bool {
	var prevWord uint32
	repeat := 0
	for offset := start; offset < end; offset += 4 {
		word := img.ReadWordAt(offset)
		instr := mipsdecode.DecodeRSP(word)
		if !mipsdecode.IsValidRSP(instr) {
			return false
		}
		if offset > start && word == prevWord {
			repeat++
		} else {
			repeat = 1
		}
		prevWord = word
		if repeat >= 3 && (instr.DoesLoad() || instr.DoesStore()) {
			return false
		}
	}
	return true
}

// extendRSPTail grows rom_end forward while the word there is valid RSP
// code, provided r is flagged has_rsp, then re-runs trimming.
func extendRSPTail(img romimage.Image, r *CodeRegion, opts Options) {
	if !r.HasRSP {
		return
	}
	for r.RomEnd < img.Len() {
		instr := mipsdecode.DecodeRSP(img.ReadWordAt(r.RomEnd))
		if !mipsdecode.IsValidRSP(instr) {
			break
		}
		r.RomEnd += 4
	}
	trimRegion(img, r, opts)
}
