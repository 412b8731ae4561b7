// Package capture loads flows from HAR 1.2 capture files, the interchange
// format most proxies and browser devtools can produce.
package capture

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/emrekoca/flowex/internal/flow"
)

// har mirrors the slice of the HAR 1.2 format we need. Header order inside
// each entry is meaningful and must survive the round trip into flows.
type har struct {
	Log harLog `json:"log"`
}

type harLog struct {
	Version string     `json:"version"`
	Entries []harEntry `json:"entries"`
}

type harEntry struct {
	Request  harRequest  `json:"request"`
	Response harResponse `json:"response"`
}

type harRequest struct {
	Method      string       `json:"method"`
	URL         string       `json:"url"`
	HTTPVersion string       `json:"httpVersion"`
	Headers     []harHeader  `json:"headers"`
	PostData    *harPostData `json:"postData,omitempty"`
}

type harResponse struct {
	Status      int         `json:"status"`
	StatusText  string      `json:"statusText"`
	HTTPVersion string      `json:"httpVersion"`
	Headers     []harHeader `json:"headers"`
	Content     harContent  `json:"content"`
}

type harHeader struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type harPostData struct {
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
}

type harContent struct {
	Size     int    `json:"size"`
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
	Encoding string `json:"encoding,omitempty"`
}

// Load parses a HAR capture and returns its entries as flows, in file
// order. Entries without a recorded response yield flows with a nil
// Response.
func Load(data []byte) ([]*flow.Flow, error) {
	var doc har
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing HAR: %w", err)
	}
	if len(doc.Log.Entries) == 0 {
		return nil, fmt.Errorf("capture contains no entries")
	}

	flows := make([]*flow.Flow, 0, len(doc.Log.Entries))
	for _, entry := range doc.Log.Entries {
		flows = append(flows, convertEntry(entry))
	}
	return flows, nil
}

// LoadFile reads and parses the HAR capture at path.
func LoadFile(path string) ([]*flow.Flow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading capture: %w", err)
	}
	return Load(data)
}

func convertEntry(entry harEntry) *flow.Flow {
	req := &flow.Request{
		ID:      uuid.New().String(),
		Method:  strings.ToUpper(entry.Request.Method),
		URL:     entry.Request.URL,
		Proto:   normalizeProto(entry.Request.HTTPVersion),
		Headers: convertHeaders(entry.Request.Headers),
	}
	if entry.Request.PostData != nil && entry.Request.PostData.Text != "" {
		req.Body = []byte(entry.Request.PostData.Text)
	}

	f := &flow.Flow{Request: req}

	if entry.Response.Status != 0 {
		f.Response = &flow.Response{
			Proto:      normalizeProto(entry.Response.HTTPVersion),
			StatusCode: entry.Response.Status,
			Reason:     entry.Response.StatusText,
			Headers:    convertHeaders(entry.Response.Headers),
			Body:       decodeContent(entry.Response.Content),
		}
	}
	return f
}

func convertHeaders(headers []harHeader) flow.Headers {
	out := make(flow.Headers, 0, len(headers))
	for _, h := range headers {
		out.Add(h.Name, h.Value)
	}
	return out
}

// decodeContent unwraps HAR's base64 transport encoding for binary bodies.
// Text that claims base64 but doesn't decode is kept verbatim.
func decodeContent(content harContent) []byte {
	if content.Text == "" {
		return nil
	}
	if strings.EqualFold(content.Encoding, "base64") {
		if decoded, err := base64.StdEncoding.DecodeString(content.Text); err == nil {
			return decoded
		}
	}
	return []byte(content.Text)
}

// normalizeProto maps the httpVersion strings found in the wild ("http/1.1",
// "HTTP/1.1", "h2", "") to the canonical HTTP/1.x spelling used in start
// lines.
func normalizeProto(version string) string {
	switch strings.ToLower(version) {
	case "", "unknown":
		return "HTTP/1.1"
	case "h2", "http/2", "http/2.0":
		return "HTTP/2.0"
	case "h3", "http/3", "http/3.0":
		return "HTTP/3.0"
	default:
		return strings.ToUpper(version)
	}
}
