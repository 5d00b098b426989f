// Package cli handles command line interface logic.
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/retroenv/n64coderegions/internal/options"
)

// ParseFlags parses command line flags into a Program option set.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	root := &ffcli.Command{
		Name:       os.Args[0],
		ShortUsage: "n64coderegions [options] <rom file>",
		FlagSet:    flags,
		Exec:       func(context.Context, []string) error { return nil },
	}

	if err := root.Parse(os.Args[1:]); err != nil {
		return opts, &UsageError{cmd: root, msg: err.Error()}
	}

	args := flags.Args()
	if opts.Batch == "" {
		if len(args) > 0 {
			opts.Input = args[0]
		}
		if opts.Input == "" {
			return opts, &UsageError{cmd: root, msg: "no input ROM file given"}
		}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	return opts, nil
}

// UsageError represents an error that should show usage information.
type UsageError struct {
	cmd *ffcli.Command
	msg string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the command's usage summary and flag defaults.
func (e *UsageError) ShowUsage() {
	if e.cmd != nil {
		fmt.Println(ffcli.DefaultUsageFunc(e.cmd))
		return
	}
	fmt.Printf("usage: n64coderegions [options] <rom file>\n\n")
}

// validateArgs checks that no flag-like argument trails the positional file.
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && len(arg) > 0 && arg[0] == '-' {
			return &UsageError{msg: fmt.Sprintf(
				"potential flag %q found after the ROM file, pass it before the file argument", arg)}
		}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input N64 ROM file")
	flags.StringVar(&opts.Output, "o", "", "name of the output report file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of ROMs matching this glob pattern, for example *.z64")
	flags.StringVar(&opts.Database, "db", "", "SQLite database file to record scan results in")
	flags.BoolVar(&opts.Diagnostic, "diag", false, "print an unaligned diagnostic report instead of the normal one")
	flags.BoolVar(&opts.NoWeak, "no-weak", false, "disable weak-mode register liveness assumptions")
	var weak bool
	flags.BoolVar(&weak, "weak", true, "enable weak-mode register liveness assumptions (already the default; accepted for symmetry with -no-weak)")
	flags.IntVar(&opts.MinInstructions, "min-instructions", 4, "drop regions shorter than this many instructions")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
