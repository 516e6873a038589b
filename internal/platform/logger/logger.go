// Package logger builds the zerolog logger shared by the notepad service
// binaries.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a JSON logger on stdout tagged with the emitting binary's
// service name. Components receive it by injection at bootstrap.
func New(serviceName string) zerolog.Logger {
	return zerolog.New(os.Stdout).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}
