package romload_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/n64coderegions/internal/romload"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// Real N64 ROMs come in three raw byte-order flavors. A .n64 file already
// stores each word little-endian on disk: 0x40,0x12,0x37,0x80. A .z64 file
// stores it big-endian: 0x80,0x37,0x12,0x40. A .v64 file byte-swaps pairs:
// 0x37,0x80,0x40,0x12.

func TestNormalize_AlreadyLittleEndianPassesThrough(t *testing.T) {
	l := romload.New(log.NewTestLogger(t))
	data := []byte{0x40, 0x12, 0x37, 0x80, 0x01, 0x02, 0x03, 0x04}

	out, err := l.Normalize(data)
	assert.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestNormalize_BigEndianSwapsWords(t *testing.T) {
	l := romload.New(log.NewTestLogger(t))
	data := []byte{0x80, 0x37, 0x12, 0x40, 0x04, 0x03, 0x02, 0x01}

	out, err := l.Normalize(data)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x40, 0x12, 0x37, 0x80, 0x01, 0x02, 0x03, 0x04}, out)
}

func TestNormalize_RejectsV64(t *testing.T) {
	l := romload.New(log.NewTestLogger(t))
	data := []byte{0x37, 0x80, 0x40, 0x12}

	_, err := l.Normalize(data)
	assert.Error(t, err)
}

func TestNormalize_RejectsUnknownMagic(t *testing.T) {
	l := romload.New(log.NewTestLogger(t))
	data := []byte{0x00, 0x00, 0x00, 0x00}

	_, err := l.Normalize(data)
	assert.Error(t, err)
}

func TestNormalize_RejectsMisalignedLength(t *testing.T) {
	l := romload.New(log.NewTestLogger(t))
	data := []byte{0x80, 0x37, 0x12}

	_, err := l.Normalize(data)
	assert.Error(t, err)
}

func TestLoad_ReadsAndNormalizesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.z64")
	data := []byte{0x80, 0x37, 0x12, 0x40, 0xAA, 0xBB, 0xCC, 0xDD}
	assert.NoError(t, os.WriteFile(path, data, 0o600))

	l := romload.New(log.NewTestLogger(t))
	out, err := l.Load(path)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x40, 0x12, 0x37, 0x80, 0xDD, 0xCC, 0xBB, 0xAA}, out)
}

func TestLoad_ErrorOnMissingFile(t *testing.T) {
	l := romload.New(log.NewTestLogger(t))
	_, err := l.Load(filepath.Join(t.TempDir(), "missing.z64"))
	assert.Error(t, err)
}
