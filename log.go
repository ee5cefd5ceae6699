package jsontab

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger emits the non-fatal diagnostics (unsupported targets, shapes the
// normalizer passes through). Defaults to stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "jsontab",
})

// SetLogger replaces the diagnostic logger. Pass a logger writing to
// io.Discard to silence warnings. Not safe to call concurrently with
// running conversions.
func SetLogger(l *log.Logger) { logger = l }
