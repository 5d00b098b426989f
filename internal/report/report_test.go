package report_test

import (
	"bytes"
	"testing"

	"github.com/fatih/color"

	"github.com/retroenv/n64coderegions/internal/region"
	"github.com/retroenv/n64coderegions/internal/report"
	"github.com/retroenv/retrogolib/assert"
)

func withNoColor(t *testing.T) {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })
}

func TestPrint_HeaderCountsRegions(t *testing.T) {
	withNoColor(t)
	var buf bytes.Buffer

	report.Print(&buf, nil, false)
	assert.Equal(t, "Found 0 code regions:\n", buf.String())
}

func TestPrint_RoundsToSixteenByteBoundaryByDefault(t *testing.T) {
	withNoColor(t)
	var buf bytes.Buffer

	regions := []region.CodeRegion{
		{RomStart: 0x1004, RomEnd: 0x1018, HasRSP: false},
	}
	report.Print(&buf, regions, false)

	want := "Found 1 code regions:\n" +
		"  0x00001000 to 0x00001020 (0x20) rsp: false\n"
	assert.Equal(t, want, buf.String())
}

func TestPrint_DiagPrintsRawOffsets(t *testing.T) {
	withNoColor(t)
	var buf bytes.Buffer

	regions := []region.CodeRegion{
		{RomStart: 0x1004, RomEnd: 0x1018, HasRSP: true},
	}
	report.Print(&buf, regions, true)

	want := "Found 1 code regions:\n" +
		"  0x00001004 to 0x00001018 (0x14) rsp: true\n"
	assert.Equal(t, want, buf.String())
}
