package region

import "github.com/retroenv/n64coderegions/internal/romimage"

// wordsToBytes packs words as little-endian 32-bit words, matching the N64's
// native (already byte-swapped) in-memory layout.
func wordsToBytes(words []uint32) []byte {
	b := make([]byte, len(words)*4)
	for i, w := range words {
		b[i*4] = byte(w)
		b[i*4+1] = byte(w >> 8)
		b[i*4+2] = byte(w >> 16)
		b[i*4+3] = byte(w >> 24)
	}
	return b
}

func buildImg(words []uint32) romimage.Image {
	img, err := romimage.New(wordsToBytes(words))
	if err != nil {
		panic(err)
	}
	return img
}

const (
	wNop  = uint32(0)
	wJrRa = uint32(31)<<21 | 0x08
	wSysc = uint32(0x0C) // syscall: invalid CPU, valid RSP
	wCtc0 = uint32(0x10<<26) | uint32(0x06)<<21
)

func wAddiu(rt, rs uint32, imm uint16) uint32 {
	return 0x09<<26 | rs<<21 | rt<<16 | uint32(imm)
}

func wAdd(rd, rs, rt uint32) uint32 {
	return rs<<21 | rt<<16 | rd<<11 | 0x20
}
