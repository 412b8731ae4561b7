package export

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"

	"github.com/emrekoca/flowex/internal/flow"
)

// rawSeparator delimits the request and response assemblies in a combined
// raw export.
const rawSeparator = "\r\n\r\n"

// assembleRequest serializes a sanitized request into its exact HTTP/1.x
// wire bytes: start line, headers in original order (duplicates included),
// blank line, body verbatim.
func assembleRequest(req *flow.Request) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s %s %s\r\n", req.Method, requestTarget(req), protoOrDefault(req.Proto))
	writeHeaders(&b, req.Headers)
	b.WriteString("\r\n")
	b.Write(req.Body)
	return b.Bytes()
}

// assembleResponse is the response counterpart of assembleRequest.
func assembleResponse(resp *flow.Response) []byte {
	reason := resp.Reason
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "%s %d %s\r\n", protoOrDefault(resp.Proto), resp.StatusCode, reason)
	writeHeaders(&b, resp.Headers)
	b.WriteString("\r\n")
	b.Write(resp.Body)
	return b.Bytes()
}

// assembleFlow returns the request assembly, the response assembly, or both
// joined by the 4-byte CRLF CRLF separator when both sides are present.
func assembleFlow(f *flow.Flow) ([]byte, error) {
	if f == nil || (f.Request == nil && f.Response == nil) {
		return nil, ErrNoContent
	}

	var parts [][]byte
	if f.Request != nil {
		req, err := sanitizeRequest(f)
		if err != nil {
			return nil, err
		}
		parts = append(parts, assembleRequest(req))
	}
	if f.Response != nil {
		resp, err := sanitizeResponse(f)
		if err != nil {
			return nil, err
		}
		parts = append(parts, assembleResponse(resp))
	}
	return bytes.Join(parts, []byte(rawSeparator)), nil
}

func writeHeaders(b *bytes.Buffer, headers flow.Headers) {
	for _, f := range headers {
		fmt.Fprintf(b, "%s: %s\r\n", f.Name, f.Value)
	}
}

// requestTarget derives the origin-form target (path plus query) from the
// captured absolute URL. URLs that don't parse are emitted as captured.
func requestTarget(req *flow.Request) string {
	u, err := url.Parse(req.URL)
	if err != nil || u.Scheme == "" {
		return req.URL
	}
	target := u.Path
	if target == "" {
		target = "/"
	}
	if u.RawQuery != "" {
		target += "?" + u.RawQuery
	}
	return target
}

func protoOrDefault(proto string) string {
	if proto == "" {
		return "HTTP/1.1"
	}
	return proto
}
