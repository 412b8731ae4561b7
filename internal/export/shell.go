package export

import (
	"fmt"
	"strings"

	"github.com/emrekoca/flowex/internal/flow"
)

// curlCommand renders the flow's request as a runnable curl command.
// Headers are emitted in their captured order; --compressed is added when
// the request advertised an Accept-Encoding.
func curlCommand(f *flow.Flow) (string, error) {
	req, err := sanitizeRequest(f)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("curl ")
	if req.Headers.Has("accept-encoding") {
		b.WriteString("--compressed ")
	}
	for _, h := range req.Headers {
		b.WriteString("-H ")
		b.WriteString(shellQuote(h.Name + ":" + h.Value))
		b.WriteString(" ")
	}
	if req.Method != "GET" {
		fmt.Fprintf(&b, "-X %s ", req.Method)
	}
	b.WriteString(shellQuote(req.URL))
	if len(req.Body) > 0 {
		b.WriteString(" --data-binary '")
		b.WriteString(escapeBytes(req.Body, true))
		b.WriteString("'")
	}
	return b.String(), nil
}

// httpieCommand renders the flow's request as an httpie invocation.
func httpieCommand(f *flow.Flow) (string, error) {
	req, err := sanitizeRequest(f)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "http %s %s", req.Method, req.URL)
	for _, h := range req.Headers {
		b.WriteString(" ")
		b.WriteString(shellQuote(h.Name + ":" + h.Value))
	}
	if len(req.Body) > 0 {
		b.WriteString(" <<< '")
		b.WriteString(escapeBytes(req.Body, true))
		b.WriteString("'")
	}
	return b.String(), nil
}
