package export

import "github.com/atotto/clipboard"

// Clipboard abstracts the system clipboard so the service can be tested
// without one.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
