package mipsdecode

var opcodeNames = map[Opcode]string{
	OpInvalid: "invalid",
	OpNop:     "nop",
	OpSLL:     "sll", OpSRL: "srl", OpSRA: "sra",
	OpSLLV: "sllv", OpSRLV: "srlv", OpSRAV: "srav",
	OpDSLL: "dsll", OpDSLL32: "dsll32", OpDSRL: "dsrl", OpDSRL32: "dsrl32",
	OpDSRA: "dsra", OpDSRA32: "dsra32",
	OpDSLLV: "dsllv", OpDSRLV: "dsrlv", OpDSRAV: "dsrav",
	OpJR: "jr", OpJALR: "jalr",
	OpSyscall: "syscall", OpBreak: "break", OpSync: "sync",
	OpMFHI: "mfhi", OpMTHI: "mthi", OpMFLO: "mflo", OpMTLO: "mtlo",
	OpMult: "mult", OpMultu: "multu", OpDiv: "div", OpDivu: "divu",
	OpDMult: "dmult", OpDMultu: "dmultu", OpDDiv: "ddiv", OpDDivu: "ddivu",
	OpAdd: "add", OpAddu: "addu", OpSub: "sub", OpSubu: "subu",
	OpAnd: "and", OpOr: "or", OpXor: "xor", OpNor: "nor",
	OpSlt: "slt", OpSltu: "sltu",
	OpDAdd: "dadd", OpDAddu: "daddu", OpDSub: "dsub", OpDSubu: "dsubu",
	OpTge: "tge", OpTgeu: "tgeu", OpTlt: "tlt", OpTltu: "tltu",
	OpTeq: "teq", OpTne: "tne",
	OpBltz: "bltz", OpBgez: "bgez", OpBltzl: "bltzl", OpBgezl: "bgezl",
	OpBltzal: "bltzal", OpBgezal: "bgezal", OpBltzall: "bltzall", OpBgezall: "bgezall",
	OpTgei: "tgei", OpTgeiu: "tgeiu", OpTlti: "tlti", OpTltiu: "tltiu",
	OpTeqi: "teqi", OpTnei: "tnei",
	OpJ: "j", OpJal: "jal",
	OpBeq: "beq", OpBne: "bne", OpBlez: "blez", OpBgtz: "bgtz",
	OpAddi: "addi", OpAddiu: "addiu", OpSlti: "slti", OpSltiu: "sltiu",
	OpAndi: "andi", OpOri: "ori", OpXori: "xori", OpLui: "lui",
	OpMfc0: "mfc0", OpCfc0: "cfc0", OpMtc0: "mtc0", OpCtc0: "ctc0",
	OpCop0Generic: "cop0",
	OpMfc1:        "mfc1", OpDmfc1: "dmfc1", OpCfc1: "cfc1",
	OpMtc1: "mtc1", OpDmtc1: "dmtc1", OpCtc1: "ctc1",
	OpBc1f: "bc1f", OpBc1t: "bc1t", OpBc1fl: "bc1fl", OpBc1tl: "bc1tl",
	OpFloatArith: "cop1.fmt",
	OpBeql:       "beql", OpBnel: "bnel", OpBlezl: "blezl", OpBgtzl: "bgtzl",
	OpDaddi: "daddi", OpDaddiu: "daddiu", OpLdl: "ldl", OpLdr: "ldr",
	OpLb: "lb", OpLh: "lh", OpLwl: "lwl", OpLw: "lw",
	OpLbu: "lbu", OpLhu: "lhu", OpLwr: "lwr", OpLwu: "lwu",
	OpSb: "sb", OpSh: "sh", OpSwl: "swl", OpSw: "sw",
	OpSdl: "sdl", OpSdr: "sdr", OpSwr: "swr",
	OpCache: "cache", OpLl: "ll", OpLwc1: "lwc1", OpLwc2: "lwc2",
	OpPref: "pref", OpLld: "lld", OpLdc1: "ldc1", OpLdc2: "ldc2", OpLd: "ld",
	OpSc: "sc", OpSwc1: "swc1", OpSwc2: "swc2", OpScd: "scd",
	OpSdc1: "sdc1", OpSdc2: "sdc2", OpSd: "sd",
}

// String returns the mnemonic of op, or "unknown" if it has no name; this
// makes Opcode satisfy fmt.Stringer for use with log.Stringer field values.
func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return "unknown"
}
