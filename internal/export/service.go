package export

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/emrekoca/flowex/internal/flow"
)

// Service resolves a format, runs the formatter and delivers the artifact
// to a sink. Lookup and formatting failures abort the export; sink failures
// are reported through the logger and deliberately not propagated, since a
// broken destination is not a defect in the artifact.
type Service struct {
	registry *Registry
	clip     Clipboard
	logger   zerolog.Logger
}

// NewService returns a Service using the built-in format registry and the
// system clipboard.
func NewService(logger zerolog.Logger) *Service {
	return &Service{
		registry: NewRegistry(),
		clip:     systemClipboard{},
		logger:   logger,
	}
}

// Formats returns the supported format names, sorted.
func (s *Service) Formats() []string {
	return s.registry.Names()
}

// Format runs the named formatter on the flow and returns the artifact
// without writing it anywhere.
func (s *Service) Format(format string, f *flow.Flow) (Artifact, error) {
	fn, err := s.registry.Lookup(format)
	if err != nil {
		return Artifact{}, err
	}
	return fn(f)
}

// File exports the flow to path. Byte artifacts are written verbatim, text
// artifacts as UTF-8. A failed write is logged and the call still returns
// nil.
func (s *Service) File(format string, f *flow.Flow, path string) error {
	artifact, err := s.Format(format, f)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, artifact.Payload(), 0o644); err != nil {
		sinkErr := &SinkError{Sink: "file", Err: err}
		s.logger.Error().Err(sinkErr).Str("path", path).Str("format", format).Msg("export failed")
	}
	return nil
}

// Clip exports the flow to the system clipboard as text. A failed copy is
// logged and the call still returns nil.
func (s *Service) Clip(format string, f *flow.Flow) error {
	artifact, err := s.Format(format, f)
	if err != nil {
		return err
	}

	if err := s.clip.WriteAll(artifact.Display()); err != nil {
		sinkErr := &SinkError{Sink: "clipboard", Err: err}
		s.logger.Error().Err(sinkErr).Str("format", format).Msg("export failed")
	}
	return nil
}

// Write exports the flow to an arbitrary writer, propagating write errors.
// This is the stdout path of the CLI, where a failure should be visible.
func (s *Service) Write(w io.Writer, format string, f *flow.Flow) error {
	artifact, err := s.Format(format, f)
	if err != nil {
		return err
	}
	_, err = w.Write(artifact.Payload())
	return err
}
