package flow

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"io"
	"strconv"
	"strings"
)

// Decode best-effort reverses the transport Content-Encoding of the request
// body. On success the body is replaced with the decoded bytes, the
// Content-Encoding field is dropped and an existing Content-Length is
// updated in place. Undecodable content is left untouched; Decode never
// fails the caller.
func (r *Request) Decode() {
	decodeBody(&r.Headers, &r.Body)
}

// Decode is the response counterpart of [Request.Decode].
func (r *Response) Decode() {
	decodeBody(&r.Headers, &r.Body)
}

func decodeBody(h *Headers, body *[]byte) {
	encoding, ok := h.Get("Content-Encoding")
	if !ok {
		return
	}

	var decoded []byte
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "identity":
		decoded = *body
	case "gzip":
		r, err := gzip.NewReader(bytes.NewReader(*body))
		if err != nil {
			return
		}
		decoded, err = io.ReadAll(r)
		if err != nil {
			return
		}
	case "deflate":
		var err error
		decoded, err = inflate(*body)
		if err != nil {
			return
		}
	default:
		// br, zstd, multiple codings: pass through as-is
		return
	}

	*body = decoded
	h.Remove("Content-Encoding")
	if h.Has("Content-Length") {
		h.Set("Content-Length", strconv.Itoa(len(decoded)))
	}
}

// inflate handles both flavours of deflate seen in the wild: the zlib-wrapped
// form the RFC asks for and the raw stream some servers send anyway.
func inflate(data []byte) ([]byte, error) {
	if r, err := zlib.NewReader(bytes.NewReader(data)); err == nil {
		decoded, err := io.ReadAll(r)
		if err == nil {
			return decoded, nil
		}
	}
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()
	return io.ReadAll(r)
}
