// Package romload loads N64 ROM images from disk and normalizes their byte
// order to the little-endian-per-word layout internal/romimage expects.
package romload

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrogolib/log"
)

// N64 ROM magic words, read as a little-endian uint32 of the first four
// bytes exactly as they appear on disk. A real .z64 ROM's raw header bytes
// are 0x80,0x37,0x12,0x40, which read little-endian as 0x40123780; a real
// .n64 ROM's raw bytes are already word-swapped to 0x40,0x12,0x37,0x80,
// which read little-endian as 0x80371240.
const (
	magicNative      = 0x80371240 // n64: already little-endian, matches romimage's layout as-is
	magicWordSwapped = 0x40123780 // z64: big-endian, needs a full word swap
	magicByteSwapped = 0x12408037 // v64: byte-swapped pairs, not supported
)

// Loader reads a ROM file and returns its bytes in the little-endian-per-word
// order romimage.New expects.
type Loader struct {
	logger *log.Logger
}

// New creates a ROM loader.
func New(logger *log.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads path and normalizes its byte order.
func (l *Loader) Load(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening rom file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading rom file %s: %w", path, err)
	}
	return l.Normalize(data)
}

// Normalize inspects data's four-byte magic word and returns a copy in the
// word-reversed layout romimage.New expects. It never mutates data.
func (l *Loader) Normalize(data []byte) ([]byte, error) {
	if len(data) < 4 || len(data)%4 != 0 {
		return nil, fmt.Errorf("rom image length %d is not a positive multiple of 4", len(data))
	}

	magic := uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16 | uint32(data[3])<<24
	switch magic {
	case magicNative:
		l.logger.Debug("Detected little-endian N64 ROM, already in internal word order", log.Hex("magic", magic))
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil

	case magicWordSwapped:
		l.logger.Debug("Detected big-endian N64 ROM, converting to internal word order", log.Hex("magic", magic))
		return swapWords(data), nil

	case magicByteSwapped:
		return nil, fmt.Errorf("rom uses the v64 byte-swapped format, which is not supported")

	default:
		return nil, fmt.Errorf("file does not look like an N64 ROM (magic %#08x)", magic)
	}
}

// swapWords reverses the byte order of every 32-bit word.
func swapWords(data []byte) []byte {
	out := make([]byte, len(data))
	for i := 0; i+4 <= len(data); i += 4 {
		out[i], out[i+1], out[i+2], out[i+3] = data[i+3], data[i+2], data[i+1], data[i]
	}
	return out
}
