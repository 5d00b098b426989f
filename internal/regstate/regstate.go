// Package regstate implements the Register-Init Analyzer: a heuristic,
// read-only scan that counts how many leading instructions of a candidate
// code region reference registers that could not plausibly be live yet.
package regstate

import (
	"github.com/retroenv/n64coderegions/internal/mipsdecode"
	"github.com/retroenv/n64coderegions/internal/romimage"
)

// State is the register-init vector: two fixed-size, 32-boolean sets, one
// per GPR and FPR file. It is read-only for the lifetime of a single
// analysis pass and is never mutated during scanning.
type State struct {
	gpr [32]bool
	fpr [32]bool
}

// NewState builds the initial register state. weak enables the "weak mode"
// default: $v0 and the fv0/fv0f return-value FPR pair are additionally
// considered initialized, matching a common compiler's habit of leaking the
// return register into uninitialized local slots.
func NewState(weak bool) State {
	var s State

	s.gpr[mipsdecode.RegZero] = true
	s.gpr[mipsdecode.RegSP] = true
	s.gpr[mipsdecode.RegRA] = true
	s.gpr[mipsdecode.RegA0] = true
	s.gpr[mipsdecode.RegA1] = true
	s.gpr[mipsdecode.RegA2] = true
	s.gpr[mipsdecode.RegA3] = true

	s.fpr[mipsdecode.RegFA0] = true
	s.fpr[mipsdecode.RegFA0F] = true
	s.fpr[mipsdecode.RegFA1] = true
	s.fpr[mipsdecode.RegFA1F] = true

	if weak {
		s.gpr[mipsdecode.RegV0] = true
		s.fpr[mipsdecode.RegFV0] = true
		s.fpr[mipsdecode.RegFV0F] = true
	}

	return s
}

// GPRInitialized reports whether GPR index r is considered initialized.
func (s State) GPRInitialized(r uint8) bool {
	return r < uint8(len(s.gpr)) && s.gpr[r]
}

// FPRInitialized reports whether FPR index r is considered initialized.
func (s State) FPRInitialized(r uint8) bool {
	return r < uint8(len(s.fpr)) && s.fpr[r]
}

// shiftOpcodes are the shift-by-immediate opcodes checked by
// isInvalidStartInstruction's "shift by rt==$zero, sa!=0" rule.
var shiftOpcodes = map[mipsdecode.Opcode]bool{
	mipsdecode.OpSLL: true, mipsdecode.OpSRL: true, mipsdecode.OpSRA: true,
	mipsdecode.OpDSLL: true, mipsdecode.OpDSLL32: true,
	mipsdecode.OpDSRL: true, mipsdecode.OpDSRL32: true,
	mipsdecode.OpDSRA: true, mipsdecode.OpDSRA32: true,
}

// CountInvalidStartInstructions scans forward from region start (byte
// offset) counting consecutive leading instructions rejected by
// isInvalidStartInstruction. It stops early at end (exclusive, byte offset)
// to guarantee termination, capping the scan to the candidate region's own
// length.
func CountInvalidStartInstructions(img romimage.Image, start, end int, weak bool) int {
	state := NewState(weak)
	count := 0
	for offset := start; offset < end; offset += 4 {
		word := img.ReadWordAt(offset)
		i := mipsdecode.Decode(word)
		if !isInvalidStartInstruction(i, state) {
			break
		}
		count++
	}
	return count
}

// isInvalidStartInstruction rejects an instruction as implausible for the
// very start of a function. State is used read-only.
func isInvalidStartInstruction(i mipsdecode.Instruction, state State) bool {
	if i.Opcode() == mipsdecode.OpNop {
		return true
	}
	if !mipsdecode.IsValidCPU(i) {
		return true
	}
	if writesToZero(i) {
		return true
	}
	if usesUninitializedOperand(i, state) {
		return true
	}
	if isUnconditionalOrLinkingJump(i) {
		return true
	}
	if shiftOpcodes[i.Opcode()] && i.Rt() == mipsdecode.RegZero && i.Sa() != 0 {
		return true
	}
	switch i.Opcode() {
	case mipsdecode.OpMTHI, mipsdecode.OpMTLO:
		return true
	case mipsdecode.OpBc1t, mipsdecode.OpBc1f, mipsdecode.OpBc1tl, mipsdecode.OpBc1fl:
		return true
	case mipsdecode.OpAdd, mipsdecode.OpSub:
		return true
	}
	return false
}

func writesToZero(i mipsdecode.Instruction) bool {
	if i.ModifiesRd() && i.Rd() == mipsdecode.RegZero {
		return true
	}
	if i.ModifiesRt() && i.Rt() == mipsdecode.RegZero {
		return true
	}
	return false
}

func usesUninitializedOperand(i mipsdecode.Instruction, state State) bool {
	if mipsdecode.OperandInput(i, mipsdecode.SlotRs) && !state.GPRInitialized(i.Rs()) {
		return true
	}
	if mipsdecode.OperandInput(i, mipsdecode.SlotRd) && !state.GPRInitialized(i.Rd()) {
		return true
	}
	if mipsdecode.OperandInput(i, mipsdecode.SlotRt) && !state.GPRInitialized(i.Rt()) {
		return true
	}
	if i.IsFloat() {
		if mipsdecode.OperandInput(i, mipsdecode.SlotFt) && !state.FPRInitialized(i.Ft()) {
			return true
		}
		if mipsdecode.OperandInput(i, mipsdecode.SlotFs) && !state.FPRInitialized(i.Fs()) {
			return true
		}
	}
	return false
}

func isUnconditionalOrLinkingJump(i mipsdecode.Instruction) bool {
	if i.IsUnconditionalBranch() {
		return true
	}
	switch i.Opcode() {
	case mipsdecode.OpJal, mipsdecode.OpJALR:
		return true
	case mipsdecode.OpJR:
		return i.Rs() == mipsdecode.RegZero
	}
	return false
}
