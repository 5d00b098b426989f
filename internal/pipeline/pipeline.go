// Package pipeline orchestrates the ROM analysis workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/retrogolib/log"

	"github.com/retroenv/n64coderegions/internal/mipsdecode"
	"github.com/retroenv/n64coderegions/internal/options"
	"github.com/retroenv/n64coderegions/internal/region"
	"github.com/retroenv/n64coderegions/internal/report"
	"github.com/retroenv/n64coderegions/internal/romimage"
	"github.com/retroenv/n64coderegions/internal/romload"
	"github.com/retroenv/n64coderegions/internal/store"
)

// Pipeline orchestrates loading a ROM, discovering its code regions and
// reporting or persisting the result.
type Pipeline struct {
	logger *log.Logger
	loader *romload.Loader
	store  *store.Store
}

// New creates a ROM analysis pipeline. st may be nil when scan results
// don't need to be persisted.
func New(logger *log.Logger, st *store.Store) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: romload.New(logger),
		store:  st,
	}
}

// Result is the outcome of analyzing a single ROM file.
type Result struct {
	Regions []region.CodeRegion
	ScanID  string
}

// Execute loads path from disk and runs the full analysis over it.
func (p *Pipeline) Execute(ctx context.Context, path string, opts options.Program, writer io.Writer) (*Result, error) {
	data, err := p.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading rom: %w", err)
	}

	return p.ExecuteWithImage(ctx, path, data, opts, writer)
}

// ExecuteWithImage runs the analysis over an already-loaded, normalized ROM
// image. This is useful for testing and programmatic usage where the image
// bytes are already in memory.
func (p *Pipeline) ExecuteWithImage(ctx context.Context, path string, data []byte, opts options.Program, writer io.Writer) (*Result, error) {
	regions, err := region.FindCodeRegions(data, opts.RegionOptions())
	if err != nil {
		return nil, fmt.Errorf("finding code regions: %w", err)
	}

	p.logger.Info("Analysis complete",
		log.String("file", path),
		log.Int("regions", len(regions)))
	p.logRegionOpcodes(data, regions)

	result := &Result{Regions: regions}

	if writer != nil {
		report.Print(writer, regions, opts.Diagnostic)
	}

	if p.store != nil {
		scanID, err := p.store.RecordScan(ctx, path, len(data), regions)
		if err != nil {
			return result, fmt.Errorf("recording scan: %w", err)
		}
		result.ScanID = scanID
	}

	return result, nil
}

// logRegionOpcodes emits a debug line per region naming the mnemonic its
// first instruction decodes to, useful for spot-checking whether a region
// boundary landed on a real function prologue.
func (p *Pipeline) logRegionOpcodes(data []byte, regions []region.CodeRegion) {
	img, err := romimage.New(data)
	if err != nil {
		return
	}
	for _, r := range regions {
		if r.RomStart+4 > img.Len() {
			continue
		}
		instr := mipsdecode.Decode(img.ReadWordAt(r.RomStart))
		p.logger.Debug("Region starts with",
			log.Int("rom_start", r.RomStart),
			log.Stringer("opcode", instr.Opcode()),
		)
	}
}
