// Package app provides application-level helpers shared by the command line
// entry point.
package app

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/log"

	"github.com/retroenv/n64coderegions/internal/options"
)

// NewLogger creates the logger used for the whole run. Debug takes priority
// over quiet if both are set.
func NewLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case debug:
		cfg.Level = log.DebugLevel
	case quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// PrintBanner prints the tool's version banner and its active region-finder
// mode unless quiet mode is on.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	buildDate := "unknown"
	if date != "" && !strings.Contains(date, "unknown") {
		buildDate = date
	}

	weakMode := "on"
	if opts.NoWeak {
		weakMode = "off"
	}

	logger.Info("n64coderegions",
		log.String("version", versionString),
		log.String("build_date", buildDate),
		log.String("weak_mode", weakMode),
	)
}
