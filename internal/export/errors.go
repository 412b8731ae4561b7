package export

import (
	"errors"
	"fmt"
)

// Sentinel errors for exports that need a message side the flow does not have.
var (
	ErrNoRequest  = errors.New("can't export flow with no request")
	ErrNoResponse = errors.New("can't export flow with no response")
	ErrNoContent  = errors.New("can't export flow with no request or response")
)

// UnknownFormatError is returned by [Registry.Lookup] for a format name
// outside the registered set.
type UnknownFormatError struct {
	Name string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("no such export format: %s", e.Name)
}

// SinkError wraps a failed write to an export destination. Sinks failing is
// not a defect in the formatted artifact, so the service reports these
// instead of propagating them.
type SinkError struct {
	Sink string // "file" or "clipboard"
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("writing to %s: %v", e.Sink, e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }
