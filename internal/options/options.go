// Package options contains the program options.
package options

import "github.com/retroenv/n64coderegions/internal/region"

// Parameters contains file path options.
type Parameters struct {
	Input    string `flag:"i" usage:"input N64 ROM file"`
	Output   string `flag:"o" usage:"output report file (default: stdout)"`
	Batch    string `flag:"batch" usage:"process every ROM matching this glob pattern"`
	Database string `flag:"db" usage:"SQLite database file to record results in"`
}

// Flags contains behavior options.
type Flags struct {
	Diagnostic      bool `flag:"diag" usage:"print an unaligned diagnostic report instead of the normal one"`
	NoWeak          bool `flag:"no-weak" usage:"disable weak-mode register liveness assumptions"`
	MinInstructions int  `flag:"min-instructions" usage:"drop regions shorter than this many instructions" default:"4"`
	Debug           bool `flag:"debug" usage:"enable debug logging"`
	Quiet           bool `flag:"q" usage:"quiet mode"`
}

// Program is the full set of options the CLI accepts.
type Program struct {
	Parameters
	Flags
}

// RegionOptions translates the CLI-facing option set into the region
// finder's own Options: weak mode on unless -no-weak, and the
// MinInstructions floor taken as is (the CLI's -min-instructions flag
// defaults it to 4; a zero value keeps every region).
func (p Program) RegionOptions() region.Options {
	opts := region.DefaultOptions()
	opts.WeakMode = !p.NoWeak
	opts.MinInstructions = p.MinInstructions
	return opts
}
