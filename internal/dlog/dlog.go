// Package dlog is Delilah's diagnostic logger.
//
// It wraps the standard library log.Logger rather than reaching for a
// structured logging library: nothing in the retrieval corpus establishes
// a structured-logging convention for this kind of software-rendering core,
// and the nearest precedent (noisetorch) logs through stdlib log as well.
package dlog

import (
	"fmt"
	"log"
	"os"
)

var std = log.New(os.Stderr, "delilah: ", log.LstdFlags)

// Warnf reports a non-fatal diagnostic, such as a frame skipped because
// the view matrix went non-finite.
func Warnf(format string, args ...any) {
	std.Printf(format, args...)
}

// Fault logs a programmer-error diagnostic and then panics. Used at
// setter/dispatch sites where the spec classifies the condition as a bug
// in the caller rather than a soft scene-data failure.
func Fault(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	std.Print(msg)
	panic(msg)
}
