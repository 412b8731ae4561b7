// Package export turns captured HTTP flows into reproducible artifacts:
// curl or httpie commands, or exact HTTP/1.x wire bytes. Artifacts are
// delivered to a file, the system clipboard, or any io.Writer.
package export

import (
	"sort"
	"unicode/utf8"

	"github.com/emrekoca/flowex/internal/flow"
)

// ArtifactKind says whether a formatter produced shell-ready text or raw
// wire bytes; sinks branch on this rather than inspecting the payload.
type ArtifactKind int

const (
	KindText ArtifactKind = iota
	KindBytes
)

// Artifact is the tagged result of a Formatter.
type Artifact struct {
	Kind  ArtifactKind
	Text  string
	Bytes []byte
}

func textArtifact(s string) Artifact  { return Artifact{Kind: KindText, Text: s} }
func bytesArtifact(b []byte) Artifact { return Artifact{Kind: KindBytes, Bytes: b} }

// Payload returns the artifact as bytes for a binary-capable sink. Text is
// UTF-8 encoded.
func (a Artifact) Payload() []byte {
	if a.Kind == KindBytes {
		return a.Bytes
	}
	return []byte(a.Text)
}

// Display returns the artifact as text for a text-only sink such as the
// clipboard. Byte artifacts pass through unchanged when they are valid
// UTF-8 and are otherwise rendered in the escaped display form, which is
// deterministic and keeps every byte recoverable.
func (a Artifact) Display() string {
	if a.Kind == KindText {
		return a.Text
	}
	if utf8.Valid(a.Bytes) {
		return string(a.Bytes)
	}
	return escapeBytes(a.Bytes, false)
}

// Formatter turns a flow into an export artifact.
type Formatter func(f *flow.Flow) (Artifact, error)

// Registry is the closed set of named export formats. It is built once and
// never mutated afterwards, so it is safe to share across goroutines
// without locking.
type Registry struct {
	formats map[string]Formatter
}

// NewRegistry returns the registry of built-in formats.
func NewRegistry() *Registry {
	return &Registry{
		formats: map[string]Formatter{
			"curl": func(f *flow.Flow) (Artifact, error) {
				cmd, err := curlCommand(f)
				if err != nil {
					return Artifact{}, err
				}
				return textArtifact(cmd), nil
			},
			"httpie": func(f *flow.Flow) (Artifact, error) {
				cmd, err := httpieCommand(f)
				if err != nil {
					return Artifact{}, err
				}
				return textArtifact(cmd), nil
			},
			"raw": func(f *flow.Flow) (Artifact, error) {
				data, err := assembleFlow(f)
				if err != nil {
					return Artifact{}, err
				}
				return bytesArtifact(data), nil
			},
			"raw_request": func(f *flow.Flow) (Artifact, error) {
				req, err := sanitizeRequest(f)
				if err != nil {
					return Artifact{}, err
				}
				return bytesArtifact(assembleRequest(req)), nil
			},
			"raw_response": func(f *flow.Flow) (Artifact, error) {
				resp, err := sanitizeResponse(f)
				if err != nil {
					return Artifact{}, err
				}
				return bytesArtifact(assembleResponse(resp)), nil
			},
		},
	}
}

// Lookup returns the formatter registered under name.
func (r *Registry) Lookup(name string) (Formatter, error) {
	fn, ok := r.formats[name]
	if !ok {
		return nil, &UnknownFormatError{Name: name}
	}
	return fn, nil
}

// Names returns all registered format names in lexicographic order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
