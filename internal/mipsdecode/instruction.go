package mipsdecode

// Instruction is a decoded 32-bit MIPS word, shared by both the CPU and RSP
// decode paths: unique opcode identity, encoding validity, operand
// accessors, and the modifiesRd/modifiesRt/doesLoad/doesStore/isFloat/
// isTrap/isUnconditionalBranch predicates.
type Instruction interface {
	// Word returns the raw 32-bit encoding.
	Word() uint32
	// Opcode returns the unique opcode identity, or OpInvalid if the
	// encoding could not be recognized.
	Opcode() Opcode
	// Valid reports whether the encoding itself is well formed (no
	// reserved-bit violations). It does not perform any of the
	// domain-heuristic rejections that IsValidCPU/IsValidRSP layer on top.
	Valid() bool
	Rs() uint8
	Rt() uint8
	Rd() uint8
	Fs() uint8
	Ft() uint8
	Fd() uint8
	Sa() uint8
	// Op returns the cache-op field (the rt field on a CACHE instruction).
	Op() uint8
	// HasRsOperand reports whether the encoding's rs bit field names a real
	// GPR source operand. It is false for encodings that reuse those bits
	// for something else: COP0/COP1 sub-opcode selectors, lui's immediate,
	// j/jal's jump target, and shift-by-immediate/mfhi/mflo, which have no
	// rs operand at all.
	HasRsOperand() bool
	ModifiesRd() bool
	ModifiesRt() bool
	DoesLoad() bool
	DoesStore() bool
	IsFloat() bool
	IsTrap() bool
	// IsUnconditionalBranch reports whether the instruction always transfers
	// control: the assembler's "b" pseudo-op (beq $r,$r,offset) or a plain
	// "j". jr and the linking jumps (jal/jalr) are not unconditional
	// branches in this sense; callers that need to recognize them do so by
	// opcode identity directly.
	IsUnconditionalBranch() bool
}

// instr is the concrete Instruction implementation shared by both the CPU
// and RSP decode entry points. Decode-time field extraction lives here;
// instruction-set-specific acceptance rules live in classify.go.
type instr struct {
	word  uint32
	op    Opcode
	valid bool

	rs, rt, rd     uint8
	fs, ft, fd     uint8
	sa             uint8
	cacheOp        uint8
	hasRsOperand   bool
	modifiesRd     bool
	modifiesRt     bool
	doesLoad       bool
	doesStore      bool
	isFloat        bool
	isTrap         bool
	isUncondBranch bool
}

func (i *instr) Word() uint32              { return i.word }
func (i *instr) Opcode() Opcode            { return i.op }
func (i *instr) Valid() bool               { return i.valid }
func (i *instr) Rs() uint8                 { return i.rs }
func (i *instr) Rt() uint8                 { return i.rt }
func (i *instr) Rd() uint8                 { return i.rd }
func (i *instr) Fs() uint8                 { return i.fs }
func (i *instr) Ft() uint8                 { return i.ft }
func (i *instr) Fd() uint8                 { return i.fd }
func (i *instr) Sa() uint8                 { return i.sa }
func (i *instr) Op() uint8                 { return i.cacheOp }
func (i *instr) HasRsOperand() bool        { return i.hasRsOperand }
func (i *instr) ModifiesRd() bool          { return i.modifiesRd }
func (i *instr) ModifiesRt() bool          { return i.modifiesRt }
func (i *instr) DoesLoad() bool            { return i.doesLoad }
func (i *instr) DoesStore() bool           { return i.doesStore }
func (i *instr) IsFloat() bool             { return i.isFloat }
func (i *instr) IsTrap() bool              { return i.isTrap }
func (i *instr) IsUnconditionalBranch() bool { return i.isUncondBranch }
