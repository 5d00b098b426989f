package mipsdecode_test

import (
	"testing"

	"github.com/retroenv/n64coderegions/internal/mipsdecode"
	"github.com/retroenv/retrogolib/assert"
)

func TestIsValidCPU_Nop(t *testing.T) {
	instr := mipsdecode.Decode(0x00000000)
	assert.True(t, mipsdecode.IsValidCPU(instr))
	assert.Equal(t, mipsdecode.OpNop, instr.Opcode())
}

func TestIsValidCPU_ReservedCop0Register(t *testing.T) {
	reserved := []uint8{7, 21, 22, 23, 24, 25, 31}
	for _, r := range reserved {
		word := uint32(0x40080000) | uint32(r)<<11 // mfc0 $t0, <r>
		instr := mipsdecode.Decode(word)
		assert.Equal(t, mipsdecode.OpMfc0, instr.Opcode())
		assert.False(t, mipsdecode.IsValidCPU(instr), "cop0 register %d should be rejected", r)
	}
}

func TestIsValidCPU_LoadFromZeroBase(t *testing.T) {
	// lw $t0, 0($zero)
	word := uint32(0x23<<26) | uint32(0)<<21 | uint32(8)<<16
	instr := mipsdecode.Decode(word)
	assert.Equal(t, mipsdecode.OpLw, instr.Opcode())
	assert.False(t, mipsdecode.IsValidCPU(instr))
}

func TestIsValidCPU_N64UnusedOpcodes(t *testing.T) {
	tests := []struct {
		name string
		op   mipsdecode.Opcode
		word uint32
	}{
		{"ll", mipsdecode.OpLl, 0x30<<26},
		{"sc", mipsdecode.OpSc, 0x38<<26},
		{"lld", mipsdecode.OpLld, 0x34<<26},
		{"scd", mipsdecode.OpScd, 0x3C<<26},
		{"syscall", mipsdecode.OpSyscall, 0x0C},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word := tt.word | uint32(8)<<21 // non-zero base so the load/store rule doesn't also fire
			instr := mipsdecode.Decode(word)
			assert.Equal(t, tt.op, instr.Opcode())
			assert.False(t, mipsdecode.IsValidCPU(instr))
		})
	}
}

func TestIsValidCPU_Cache(t *testing.T) {
	tests := []struct {
		name  string
		op    uint8
		valid bool
	}{
		{"op0 type0", 0x00, true},
		{"op6 type1", (6 << 2) | 1, true},
		{"op7 type0", (7 << 2) | 0, false},
		{"op0 type2", 0x02, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word := uint32(0x2F<<26) | uint32(8)<<21 | uint32(tt.op)<<16
			instr := mipsdecode.Decode(word)
			assert.Equal(t, mipsdecode.OpCache, instr.Opcode())
			assert.Equal(t, tt.valid, mipsdecode.IsValidCPU(instr))
		})
	}
}

func TestIsValidCPU_Cop2LoadStore(t *testing.T) {
	ops := []struct {
		name string
		word uint32
	}{
		{"lwc2", 0x32 << 26},
		{"ldc2", 0x36 << 26},
		{"swc2", 0x3A << 26},
		{"sdc2", 0x3E << 26},
	}
	for _, tt := range ops {
		t.Run(tt.name, func(t *testing.T) {
			word := tt.word | uint32(8)<<21
			instr := mipsdecode.Decode(word)
			assert.False(t, mipsdecode.IsValidCPU(instr))
		})
	}
}

func TestIsValidCPU_Traps(t *testing.T) {
	// tge $t0, $t1
	word := uint32(8)<<21 | uint32(9)<<16 | 0x30
	instr := mipsdecode.Decode(word)
	assert.True(t, instr.IsTrap())
	assert.False(t, mipsdecode.IsValidCPU(instr))
}

func TestIsValidCPU_Ctc0Cfc0Pref(t *testing.T) {
	ctc0 := mipsdecode.Decode(uint32(0x10<<26) | uint32(6)<<21)
	assert.False(t, mipsdecode.IsValidCPU(ctc0))

	cfc0 := mipsdecode.Decode(uint32(0x10<<26) | uint32(2)<<21)
	assert.False(t, mipsdecode.IsValidCPU(cfc0))

	pref := mipsdecode.Decode(uint32(0x33 << 26))
	assert.False(t, mipsdecode.IsValidCPU(pref))
}

func TestIsValidCPU_ArithmeticToZeroAllowed(t *testing.T) {
	// addu $zero, $t0, $t1 -- allowed at the classifier level.
	word := uint32(8)<<21 | uint32(9)<<16 | uint32(0)<<11 | 0x21
	instr := mipsdecode.Decode(word)
	assert.Equal(t, mipsdecode.OpAddu, instr.Opcode())
	assert.True(t, mipsdecode.IsValidCPU(instr))
}

func TestIsValidRSP_ModifiesZero(t *testing.T) {
	// addu $zero, $t0, $t1
	word := uint32(8)<<21 | uint32(9)<<16 | uint32(0)<<11 | 0x21
	instr := mipsdecode.Decode(word)
	assert.False(t, mipsdecode.IsValidRSP(instr))
}

func TestIsValidRSP_Cop0RegisterRange(t *testing.T) {
	// mfc0 $t0, <reg> -- rt must be non-zero so only the cop0-range rule is exercised.
	inRange := mipsdecode.Decode(uint32(0x10<<26) | uint32(8)<<16 | uint32(15)<<11)
	assert.True(t, mipsdecode.IsValidRSP(inRange))

	outOfRange := mipsdecode.Decode(uint32(0x10<<26) | uint32(8)<<16 | uint32(16)<<11)
	assert.False(t, mipsdecode.IsValidRSP(outOfRange))
}

func TestIsValidRSP_UnsupportedOpcodes(t *testing.T) {
	tests := []uint32{
		0x31 << 26, // lwc1
		0x39 << 26, // swc1
		uint32(0x10<<26) | uint32(6)<<21, // ctc0
		uint32(0x10<<26) | uint32(2)<<21, // cfc0
		0x2F << 26,                       // cache
	}
	for _, word := range tests {
		instr := mipsdecode.Decode(word)
		assert.False(t, mipsdecode.IsValidRSP(instr))
	}
}

func TestOperandInput(t *testing.T) {
	lwc1 := mipsdecode.Decode(0x31 << 26)
	assert.False(t, mipsdecode.OperandInput(lwc1, mipsdecode.SlotFt))

	mtc1 := mipsdecode.Decode(uint32(0x11<<26) | uint32(4)<<21)
	assert.False(t, mipsdecode.OperandInput(mtc1, mipsdecode.SlotFs))

	assert.False(t, mipsdecode.OperandInput(lwc1, mipsdecode.SlotFd))
	assert.True(t, mipsdecode.OperandInput(lwc1, mipsdecode.SlotRs))
}

func TestOperandInput_RsGatedOnRealGPROperand(t *testing.T) {
	// add.s $f0,$f2,$f4 -- rs holds the COP1 fmt selector (0x10), not a GPR.
	floatArith := mipsdecode.Decode(uint32(0x11<<26) | uint32(0x10)<<21 | uint32(4)<<16 | uint32(2)<<11)
	assert.Equal(t, mipsdecode.OpFloatArith, floatArith.Opcode())
	assert.False(t, mipsdecode.OperandInput(floatArith, mipsdecode.SlotRs))

	// mtc0 $t0, $12 -- rs holds the COP0 sub-opcode selector, not a GPR.
	mtc0 := mipsdecode.Decode(uint32(0x10<<26) | uint32(4)<<21 | uint32(8)<<16 | uint32(12)<<11)
	assert.Equal(t, mipsdecode.OpMtc0, mtc0.Opcode())
	assert.False(t, mipsdecode.OperandInput(mtc0, mipsdecode.SlotRs))

	// lui $t0, 0x1234 -- no rs operand at all.
	lui := mipsdecode.Decode(uint32(0x0F<<26) | uint32(8)<<16 | 0x1234)
	assert.False(t, mipsdecode.OperandInput(lui, mipsdecode.SlotRs))

	// addiu $sp,$sp,-24 -- rs is a genuine GPR base register.
	addiu := mipsdecode.Decode(uint32(0x09<<26) | uint32(29)<<21 | uint32(29)<<16 | 0xFFE8)
	assert.True(t, mipsdecode.OperandInput(addiu, mipsdecode.SlotRs))
}
