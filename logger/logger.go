// Package logger provides the shared logger used across cassowary
// components.
//
// The root logger uses github.com/rs/zerolog with a console writer. The
// solver only writes through it when pivot tracing is enabled, so the
// default configuration stays silent in normal use.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var root zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	root = zerolog.New(output).With().Timestamp().Logger()

	// Keep `go test` output clean unless a test opts back in via Set.
	if strings.HasSuffix(os.Args[0], ".test") {
		root = zerolog.Nop()
	}
}

// SetOutput redirects the shared logger to w.
func SetOutput(w io.Writer) {
	root = root.Output(w)
}

// Set replaces the shared logger wholesale.
func Set(l zerolog.Logger) {
	root = l
}

// Disable silences the shared logger.
func Disable() {
	root = zerolog.Nop()
}

// Logger returns the shared logger for a component to derive from.
func Logger() zerolog.Logger {
	return root
}
