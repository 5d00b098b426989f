// Package mipsdecode decodes 32-bit MIPS words into CPU or RSP instruction
// objects and classifies them as plausible real code on the N64.
package mipsdecode

// Opcode identifies a unique MIPS instruction mnemonic. Two opcodes that
// share a primary opcode field but differ by funct/rt/rs sub-field still get
// distinct identities.
type Opcode uint16

// Opcode identities. Not every MIPS-I/II opcode is named individually:
// opcodes the classifier never inspects by name are folded into a small
// number of generic buckets (OpFloatArith, OpCop0Generic)
// so DoesLoad/DoesStore/IsFloat/IsTrap remain correct without an exhaustive
// per-mnemonic table.
const (
	OpInvalid Opcode = iota
	OpNop
	OpSLL
	OpSRL
	OpSRA
	OpSLLV
	OpSRLV
	OpSRAV
	OpDSLL
	OpDSLL32
	OpDSRL
	OpDSRL32
	OpDSRA
	OpDSRA32
	OpDSLLV
	OpDSRLV
	OpDSRAV
	OpJR
	OpJALR
	OpSyscall
	OpBreak
	OpSync
	OpMFHI
	OpMTHI
	OpMFLO
	OpMTLO
	OpMult
	OpMultu
	OpDiv
	OpDivu
	OpDMult
	OpDMultu
	OpDDiv
	OpDDivu
	OpAdd
	OpAddu
	OpSub
	OpSubu
	OpAnd
	OpOr
	OpXor
	OpNor
	OpSlt
	OpSltu
	OpDAdd
	OpDAddu
	OpDSub
	OpDSubu
	OpTge
	OpTgeu
	OpTlt
	OpTltu
	OpTeq
	OpTne
	OpBltz
	OpBgez
	OpBltzl
	OpBgezl
	OpBltzal
	OpBgezal
	OpBltzall
	OpBgezall
	OpTgei
	OpTgeiu
	OpTlti
	OpTltiu
	OpTeqi
	OpTnei
	OpJ
	OpJal
	OpBeq
	OpBne
	OpBlez
	OpBgtz
	OpAddi
	OpAddiu
	OpSlti
	OpSltiu
	OpAndi
	OpOri
	OpXori
	OpLui
	OpMfc0
	OpCfc0
	OpMtc0
	OpCtc0
	OpCop0Generic
	OpMfc1
	OpDmfc1
	OpCfc1
	OpMtc1
	OpDmtc1
	OpCtc1
	OpBc1f
	OpBc1t
	OpBc1fl
	OpBc1tl
	OpFloatArith
	OpBeql
	OpBnel
	OpBlezl
	OpBgtzl
	OpDaddi
	OpDaddiu
	OpLdl
	OpLdr
	OpLb
	OpLh
	OpLwl
	OpLw
	OpLbu
	OpLhu
	OpLwr
	OpLwu
	OpSb
	OpSh
	OpSwl
	OpSw
	OpSdl
	OpSdr
	OpSwr
	OpCache
	OpLl
	OpLwc1
	OpLwc2
	OpPref
	OpLld
	OpLdc1
	OpLdc2
	OpLd
	OpSc
	OpSwc1
	OpSwc2
	OpScd
	OpSdc1
	OpSdc2
	OpSd
)

// GPR register indices used by the initialized-register sets and classifier
// rules.
const (
	RegZero uint8 = 0
	RegAT   uint8 = 1
	RegV0   uint8 = 2
	RegV1   uint8 = 3
	RegA0   uint8 = 4
	RegA1   uint8 = 5
	RegA2   uint8 = 6
	RegA3   uint8 = 7
	RegSP   uint8 = 29
	RegRA   uint8 = 31
)

// FPR register indices, using the standard N64/libultra o32 aliases: fv0/fv0f
// are the return-value pair, fa0/fa0f and fa1/fa1f are the first two
// double-precision argument registers.
const (
	RegFV0  uint8 = 0
	RegFV0F uint8 = 2
	RegFA0  uint8 = 12
	RegFA0F uint8 = 14
	RegFA1  uint8 = 16
	RegFA1F uint8 = 18
)

// cop0RegisterReservedCPU is the set of COP0 register indices reserved on the
// N64 CPU.
var cop0RegisterReservedCPU = map[uint8]bool{
	7: true, 21: true, 22: true, 23: true, 24: true, 25: true, 31: true,
}
