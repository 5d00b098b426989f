// Package romimage provides bounds-checked access to an in-memory,
// little-endian N64 ROM image.
package romimage

import "fmt"

// Image is an immutable, contiguously addressable byte sequence whose length
// is a multiple of four. Word reads are little-endian; the host is
// responsible for byte-swapping big-endian ROMs before constructing an
// Image.
type Image struct {
	bytes []byte
}

// New wraps a byte slice as an Image. The slice is not copied; callers must
// not mutate it afterward.
func New(b []byte) (Image, error) {
	if len(b)%4 != 0 {
		return Image{}, fmt.Errorf("image length %d is not a multiple of 4", len(b))
	}
	return Image{bytes: b}, nil
}

// Len returns the image length in bytes.
func (img Image) Len() int {
	return len(img.bytes)
}

// Bytes returns the underlying byte slice. Callers must treat it as
// read-only.
func (img Image) Bytes() []byte {
	return img.bytes
}

// ReadWordAt reads the 32-bit little-endian word at the given byte offset.
// offset must be a multiple of 4 and within [0, Len()); reads outside that
// range are a programming error and panic rather than returning a value.
func (img Image) ReadWordAt(offset int) uint32 {
	if offset < 0 || offset%4 != 0 || offset+4 > len(img.bytes) {
		panic(fmt.Sprintf("romimage: invalid word offset %#x for image of length %#x", offset, len(img.bytes)))
	}
	b := img.bytes[offset : offset+4]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// InBounds reports whether offset is a valid word-aligned offset in the
// image.
func (img Image) InBounds(offset int) bool {
	return offset >= 0 && offset%4 == 0 && offset+4 <= len(img.bytes)
}
