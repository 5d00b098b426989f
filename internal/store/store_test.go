package store_test

import (
	"context"
	"testing"

	"github.com/retroenv/n64coderegions/internal/region"
	"github.com/retroenv/n64coderegions/internal/store"
	"github.com/retroenv/retrogolib/assert"
)

func openMemory(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), "")
	assert.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordScan_RoundTripsRegions(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	regions := []region.CodeRegion{
		{RomStart: 0x1000, RomEnd: 0x1020, HasRSP: false},
		{RomStart: 0x1020, RomEnd: 0x1040, HasRSP: true},
	}

	id, err := s.RecordScan(ctx, "game.z64", 0x800000, regions)
	assert.NoError(t, err)
	assert.True(t, id != "")

	got, err := s.Regions(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(got))
	assert.Equal(t, 0x1000, got[0].RomStart)
	assert.False(t, got[0].HasRSP)
	assert.Equal(t, 0x1020, got[1].RomStart)
	assert.True(t, got[1].HasRSP)
}

func TestRecordScan_NoRegionsIsValid(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	id, err := s.RecordScan(ctx, "empty.z64", 0x100000, nil)
	assert.NoError(t, err)

	got, err := s.Regions(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(got))
}

func TestRegions_UnknownScanReturnsEmpty(t *testing.T) {
	s := openMemory(t)

	got, err := s.Regions(context.Background(), "does-not-exist")
	assert.NoError(t, err)
	assert.Equal(t, 0, len(got))
}
