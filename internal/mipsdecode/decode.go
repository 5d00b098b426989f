package mipsdecode

// field extraction, MIPS-I encoding.
func opField(word uint32) uint8    { return uint8(word >> 26 & 0x3F) }
func rsField(word uint32) uint8    { return uint8(word >> 21 & 0x1F) }
func rtField(word uint32) uint8    { return uint8(word >> 16 & 0x1F) }
func rdField(word uint32) uint8    { return uint8(word >> 11 & 0x1F) }
func saField(word uint32) uint8    { return uint8(word >> 6 & 0x1F) }
func functField(word uint32) uint8 { return uint8(word & 0x3F) }

// Decode decodes word as a CPU instruction.
func Decode(word uint32) Instruction {
	return decode(word)
}

// DecodeRSP decodes word as an RSP microcode instruction. It shares the
// same field/opcode-identity extraction as Decode: the two instruction sets
// diverge in which opcodes are *accepted* as plausible code (see
// IsValidCPU/IsValidRSP), not in how a given bit pattern is named.
func DecodeRSP(word uint32) Instruction {
	return decode(word)
}

func decode(word uint32) *instr {
	i := &instr{
		word: word,
		rs:   rsField(word),
		rt:   rtField(word),
		rd:   rdField(word),
		sa:   saField(word),
		fs:   rdField(word),
		ft:   rtField(word),
		fd:   saField(word),
		// Most CPU/RSP encodings that reach this point use bits 21-25 as a
		// genuine rs GPR index; the exceptions below turn it back off.
		hasRsOperand: true,
	}

	op := opField(word)
	switch op {
	case 0x00:
		decodeSpecial(word, i)
	case 0x01:
		decodeRegimm(word, i)
	case 0x02:
		setOp(i, OpJ, true)
		i.isUncondBranch = true
		i.hasRsOperand = false
	case 0x03:
		setOp(i, OpJal, true)
		i.hasRsOperand = false
	case 0x04:
		setOp(i, OpBeq, true)
		if i.rs == i.rt {
			// beq $r,$r,offset is the assembler's unconditional "b" pseudo-op.
			i.isUncondBranch = true
		}
	case 0x05:
		setOp(i, OpBne, true)
	case 0x06:
		setOp(i, OpBlez, true)
	case 0x07:
		setOp(i, OpBgtz, true)
	case 0x08:
		setOp(i, OpAddi, true)
		i.modifiesRt = true
	case 0x09:
		setOp(i, OpAddiu, true)
		i.modifiesRt = true
	case 0x0A:
		setOp(i, OpSlti, true)
		i.modifiesRt = true
	case 0x0B:
		setOp(i, OpSltiu, true)
		i.modifiesRt = true
	case 0x0C:
		setOp(i, OpAndi, true)
		i.modifiesRt = true
	case 0x0D:
		setOp(i, OpOri, true)
		i.modifiesRt = true
	case 0x0E:
		setOp(i, OpXori, true)
		i.modifiesRt = true
	case 0x0F:
		setOp(i, OpLui, true)
		i.modifiesRt = true
		i.hasRsOperand = false
	case 0x10:
		decodeCop0(word, i)
	case 0x11:
		decodeCop1(word, i)
	case 0x14:
		setOp(i, OpBeql, true)
	case 0x15:
		setOp(i, OpBnel, true)
	case 0x16:
		setOp(i, OpBlezl, true)
	case 0x17:
		setOp(i, OpBgtzl, true)
	case 0x18:
		setOp(i, OpDaddi, true)
		i.modifiesRt = true
	case 0x19:
		setOp(i, OpDaddiu, true)
		i.modifiesRt = true
	case 0x1A:
		setOp(i, OpLdl, true)
		i.modifiesRt, i.doesLoad = true, true
	case 0x1B:
		setOp(i, OpLdr, true)
		i.modifiesRt, i.doesLoad = true, true
	case 0x20:
		setOp(i, OpLb, true)
		i.modifiesRt, i.doesLoad = true, true
	case 0x21:
		setOp(i, OpLh, true)
		i.modifiesRt, i.doesLoad = true, true
	case 0x22:
		setOp(i, OpLwl, true)
		i.modifiesRt, i.doesLoad = true, true
	case 0x23:
		setOp(i, OpLw, true)
		i.modifiesRt, i.doesLoad = true, true
	case 0x24:
		setOp(i, OpLbu, true)
		i.modifiesRt, i.doesLoad = true, true
	case 0x25:
		setOp(i, OpLhu, true)
		i.modifiesRt, i.doesLoad = true, true
	case 0x26:
		setOp(i, OpLwr, true)
		i.modifiesRt, i.doesLoad = true, true
	case 0x27:
		setOp(i, OpLwu, true)
		i.modifiesRt, i.doesLoad = true, true
	case 0x28:
		setOp(i, OpSb, true)
		i.doesStore = true
	case 0x29:
		setOp(i, OpSh, true)
		i.doesStore = true
	case 0x2A:
		setOp(i, OpSwl, true)
		i.doesStore = true
	case 0x2B:
		setOp(i, OpSw, true)
		i.doesStore = true
	case 0x2C:
		setOp(i, OpSdl, true)
		i.doesStore = true
	case 0x2D:
		setOp(i, OpSdr, true)
		i.doesStore = true
	case 0x2E:
		setOp(i, OpSwr, true)
		i.doesStore = true
	case 0x2F:
		setOp(i, OpCache, true)
		i.cacheOp = i.rt
	case 0x30:
		setOp(i, OpLl, true)
		i.modifiesRt, i.doesLoad = true, true
	case 0x31:
		setOp(i, OpLwc1, true)
		i.doesLoad, i.isFloat = true, true
	case 0x32:
		setOp(i, OpLwc2, true)
		i.doesLoad = true
	case 0x33:
		setOp(i, OpPref, true)
		i.cacheOp = i.rt
	case 0x34:
		setOp(i, OpLld, true)
		i.modifiesRt, i.doesLoad = true, true
	case 0x35:
		setOp(i, OpLdc1, true)
		i.doesLoad, i.isFloat = true, true
	case 0x36:
		setOp(i, OpLdc2, true)
		i.doesLoad = true
	case 0x37:
		setOp(i, OpLd, true)
		i.modifiesRt, i.doesLoad = true, true
	case 0x38:
		setOp(i, OpSc, true)
		i.modifiesRt, i.doesStore = true, true
	case 0x39:
		setOp(i, OpSwc1, true)
		i.doesStore, i.isFloat = true, true
	case 0x3A:
		setOp(i, OpSwc2, true)
		i.doesStore = true
	case 0x3C:
		setOp(i, OpScd, true)
		i.modifiesRt, i.doesStore = true, true
	case 0x3D:
		setOp(i, OpSdc1, true)
		i.doesStore, i.isFloat = true, true
	case 0x3E:
		setOp(i, OpSdc2, true)
		i.doesStore = true
	case 0x3F:
		setOp(i, OpSd, true)
		i.doesStore = true
	default:
		setOp(i, OpInvalid, false)
	}
	return i
}

func setOp(i *instr, op Opcode, valid bool) {
	i.op, i.valid = op, valid
}

func decodeSpecial(word uint32, i *instr) {
	funct := functField(word)
	switch funct {
	case 0x00:
		i.hasRsOperand = false
		if word == 0 {
			setOp(i, OpNop, true)
		} else {
			setOp(i, OpSLL, true)
			i.modifiesRd = true
		}
	case 0x02:
		setOp(i, OpSRL, true)
		i.modifiesRd = true
		i.hasRsOperand = false
	case 0x03:
		setOp(i, OpSRA, true)
		i.modifiesRd = true
		i.hasRsOperand = false
	case 0x04:
		setOp(i, OpSLLV, true)
		i.modifiesRd = true
	case 0x06:
		setOp(i, OpSRLV, true)
		i.modifiesRd = true
	case 0x07:
		setOp(i, OpSRAV, true)
		i.modifiesRd = true
	case 0x08:
		setOp(i, OpJR, true)
	case 0x09:
		setOp(i, OpJALR, true)
		i.modifiesRd = true
	case 0x0C:
		setOp(i, OpSyscall, true)
		i.hasRsOperand = false
	case 0x0D:
		setOp(i, OpBreak, true)
		i.hasRsOperand = false
	case 0x0F:
		setOp(i, OpSync, true)
		i.hasRsOperand = false
	case 0x10:
		setOp(i, OpMFHI, true)
		i.modifiesRd = true
		i.hasRsOperand = false
	case 0x11:
		setOp(i, OpMTHI, true)
	case 0x12:
		setOp(i, OpMFLO, true)
		i.modifiesRd = true
		i.hasRsOperand = false
	case 0x13:
		setOp(i, OpMTLO, true)
	case 0x14:
		setOp(i, OpDSLLV, true)
		i.modifiesRd = true
	case 0x16:
		setOp(i, OpDSRLV, true)
		i.modifiesRd = true
	case 0x17:
		setOp(i, OpDSRAV, true)
		i.modifiesRd = true
	case 0x18:
		setOp(i, OpMult, true)
	case 0x19:
		setOp(i, OpMultu, true)
	case 0x1A:
		setOp(i, OpDiv, true)
	case 0x1B:
		setOp(i, OpDivu, true)
	case 0x1C:
		setOp(i, OpDMult, true)
	case 0x1D:
		setOp(i, OpDMultu, true)
	case 0x1E:
		setOp(i, OpDDiv, true)
	case 0x1F:
		setOp(i, OpDDivu, true)
	case 0x20:
		setOp(i, OpAdd, true)
		i.modifiesRd = true
	case 0x21:
		setOp(i, OpAddu, true)
		i.modifiesRd = true
	case 0x22:
		setOp(i, OpSub, true)
		i.modifiesRd = true
	case 0x23:
		setOp(i, OpSubu, true)
		i.modifiesRd = true
	case 0x24:
		setOp(i, OpAnd, true)
		i.modifiesRd = true
	case 0x25:
		setOp(i, OpOr, true)
		i.modifiesRd = true
	case 0x26:
		setOp(i, OpXor, true)
		i.modifiesRd = true
	case 0x27:
		setOp(i, OpNor, true)
		i.modifiesRd = true
	case 0x2A:
		setOp(i, OpSlt, true)
		i.modifiesRd = true
	case 0x2B:
		setOp(i, OpSltu, true)
		i.modifiesRd = true
	case 0x2C:
		setOp(i, OpDAdd, true)
		i.modifiesRd = true
	case 0x2D:
		setOp(i, OpDAddu, true)
		i.modifiesRd = true
	case 0x2E:
		setOp(i, OpDSub, true)
		i.modifiesRd = true
	case 0x2F:
		setOp(i, OpDSubu, true)
		i.modifiesRd = true
	case 0x30:
		setOp(i, OpTge, true)
		i.isTrap = true
	case 0x31:
		setOp(i, OpTgeu, true)
		i.isTrap = true
	case 0x32:
		setOp(i, OpTlt, true)
		i.isTrap = true
	case 0x33:
		setOp(i, OpTltu, true)
		i.isTrap = true
	case 0x34:
		setOp(i, OpTeq, true)
		i.isTrap = true
	case 0x36:
		setOp(i, OpTne, true)
		i.isTrap = true
	case 0x38:
		setOp(i, OpDSLL, true)
		i.modifiesRd = true
		i.hasRsOperand = false
	case 0x3A:
		setOp(i, OpDSRL, true)
		i.modifiesRd = true
		i.hasRsOperand = false
	case 0x3B:
		setOp(i, OpDSRA, true)
		i.modifiesRd = true
		i.hasRsOperand = false
	case 0x3C:
		setOp(i, OpDSLL32, true)
		i.modifiesRd = true
		i.hasRsOperand = false
	case 0x3E:
		setOp(i, OpDSRL32, true)
		i.modifiesRd = true
		i.hasRsOperand = false
	case 0x3F:
		setOp(i, OpDSRA32, true)
		i.modifiesRd = true
		i.hasRsOperand = false
	default:
		setOp(i, OpInvalid, false)
	}
}

func decodeRegimm(word uint32, i *instr) {
	switch rtField(word) {
	case 0x00:
		setOp(i, OpBltz, true)
	case 0x01:
		setOp(i, OpBgez, true)
	case 0x02:
		setOp(i, OpBltzl, true)
	case 0x03:
		setOp(i, OpBgezl, true)
	case 0x08:
		setOp(i, OpTgei, true)
		i.isTrap = true
	case 0x09:
		setOp(i, OpTgeiu, true)
		i.isTrap = true
	case 0x0A:
		setOp(i, OpTlti, true)
		i.isTrap = true
	case 0x0B:
		setOp(i, OpTltiu, true)
		i.isTrap = true
	case 0x0C:
		setOp(i, OpTeqi, true)
		i.isTrap = true
	case 0x0E:
		setOp(i, OpTnei, true)
		i.isTrap = true
	case 0x10:
		setOp(i, OpBltzal, true)
	case 0x11:
		setOp(i, OpBgezal, true)
	case 0x12:
		setOp(i, OpBltzall, true)
	case 0x13:
		setOp(i, OpBgezall, true)
	default:
		setOp(i, OpInvalid, false)
	}
}

func decodeCop0(word uint32, i *instr) {
	// rs names the COP0 sub-opcode here, not a GPR.
	i.hasRsOperand = false
	switch rsField(word) {
	case 0x00:
		setOp(i, OpMfc0, true)
		i.modifiesRt = true
	case 0x02:
		setOp(i, OpCfc0, true)
		i.modifiesRt = true
	case 0x04:
		setOp(i, OpMtc0, true)
	case 0x06:
		setOp(i, OpCtc0, true)
	default:
		setOp(i, OpCop0Generic, true)
	}
}

func decodeCop1(word uint32, i *instr) {
	i.isFloat = true
	// rs names the COP1 format/sub-opcode selector here, not a GPR.
	i.hasRsOperand = false
	switch rsField(word) {
	case 0x00:
		setOp(i, OpMfc1, true)
		i.modifiesRt = true
	case 0x01:
		setOp(i, OpDmfc1, true)
		i.modifiesRt = true
	case 0x02:
		setOp(i, OpCfc1, true)
		i.modifiesRt = true
	case 0x04:
		setOp(i, OpMtc1, true)
	case 0x05:
		setOp(i, OpDmtc1, true)
	case 0x06:
		setOp(i, OpCtc1, true)
	case 0x08:
		decodeBc1(word, i)
	case 0x10, 0x11, 0x14, 0x15:
		setOp(i, OpFloatArith, true)
		i.modifiesRd = true
	default:
		setOp(i, OpInvalid, false)
	}
}

func decodeBc1(word uint32, i *instr) {
	i.isUncondBranch = false
	switch rtField(word) {
	case 0x00:
		setOp(i, OpBc1f, true)
	case 0x01:
		setOp(i, OpBc1t, true)
	case 0x02:
		setOp(i, OpBc1fl, true)
	case 0x03:
		setOp(i, OpBc1tl, true)
	default:
		setOp(i, OpInvalid, false)
	}
}
