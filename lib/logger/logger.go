// Package logger provides the solver's structured logging surface.
//
// The call surface (Debug/Info/Warn/Error/DebugCell/InfoCell/SolvingStep)
// is intentionally stable across the engine so call sites never need to
// know the logging backend; underneath it is backed by zerolog instead of
// a hand-rolled writer. The cell-, constraint- and candidate-level helpers
// attach structured fields instead of interpolated text; the plain
// Debug/Info/Warn/Error/Fatal calls format their message with Msgf.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu    sync.RWMutex
	base  = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	level = zerolog.InfoLevel
)

// SetLevel sets the minimum level that will be emitted.
func SetLevel(l zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// SetOutput redirects log output, e.g. to io.Discard in tests or to a file
// in a long-running process. The engine must be fully driveable with
// output discarded — logging is a side channel, never part of the solver
// contract (spec.md §6).
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	base = zerolog.New(w).With().Timestamp().Logger()
}

func logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.Level(level)
}

func Debug(format string, args ...interface{}) {
	logger().Debug().Msgf(format, args...)
}

func Info(format string, args ...interface{}) {
	logger().Info().Msgf(format, args...)
}

func Warn(format string, args ...interface{}) {
	logger().Warn().Msgf(format, args...)
}

func Error(format string, args ...interface{}) {
	logger().Error().Msgf(format, args...)
}

func Fatal(format string, args ...interface{}) {
	logger().Fatal().Msgf(format, args...)
}

// DebugCell attaches row/col as structured fields rather than baking
// R{row}C{col} into the message, matching zerolog idiom in the pack.
func DebugCell(row, col int, format string, args ...interface{}) {
	logger().Debug().Int("row", row+1).Int("col", col+1).Msgf(format, args...)
}

func InfoCell(row, col int, format string, args ...interface{}) {
	logger().Info().Int("row", row+1).Int("col", col+1).Msgf(format, args...)
}

func DebugConstraint(name string, format string, args ...interface{}) {
	logger().Debug().Str("constraint", name).Msgf(format, args...)
}

func InfoConstraint(name string, format string, args ...interface{}) {
	logger().Info().Str("constraint", name).Msgf(format, args...)
}

// SolvingStep logs a step of the propagation/bifurcation controller.
func SolvingStep(technique string, format string, args ...interface{}) {
	logger().Info().Str("technique", technique).Msgf(format, args...)
}

func CandidateElimination(row, col, candidate int, reason string) {
	logger().Debug().Int("row", row+1).Int("col", col+1).Int("candidate", candidate).Str("reason", reason).Msg("candidate eliminated")
}

func CellSolved(row, col, value int, reason string) {
	logger().Info().Int("row", row+1).Int("col", col+1).Int("value", value).Str("reason", reason).Msg("cell solved")
}
