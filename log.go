package hcsc

import (
	"log"
	"os"

	"github.com/hashicorp/logutils"
)

// NewLogger wires stdlib log through a logutils.LevelFilter for
// leveled diagnostics. minLevel is read from the HCSC_LOG environment
// variable (falling back to "WARN") unless overridden by the CLI's
// -log-level flag.
func NewLogger(minLevel string) *log.Logger {
	if minLevel == "" {
		minLevel = os.Getenv("HCSC_LOG")
	}
	if minLevel == "" {
		minLevel = "WARN"
	}

	filter := &logutils.LevelFilter{
		Levels:   []logutils.LogLevel{"DEBUG", "WARN", "ERROR"},
		MinLevel: logutils.LogLevel(minLevel),
		Writer:   os.Stderr,
	}
	return log.New(filter, "hcsc: ", 0)
}
