// Package flow holds the in-memory model of a captured HTTP exchange: a
// request, a response, or both. The model is the input to the exporters in
// internal/export, which treat it as read-only and work on copies.
package flow

// Request is a captured HTTP request.
type Request struct {
	ID      string // assigned at load time, not part of the wire format
	Method  string
	URL     string // absolute URL as captured
	Proto   string // e.g. "HTTP/1.1"
	Headers Headers
	Body    []byte
}

// Copy returns a deep copy of the request. Mutating the copy's headers or
// body never affects the original.
func (r *Request) Copy() *Request {
	if r == nil {
		return nil
	}
	out := *r
	out.Headers = r.Headers.Copy()
	if r.Body != nil {
		out.Body = make([]byte, len(r.Body))
		copy(out.Body, r.Body)
	}
	return &out
}

// Response is a captured HTTP response.
type Response struct {
	Proto      string
	StatusCode int
	Reason     string
	Headers    Headers
	Body       []byte
}

// Copy returns a deep copy of the response.
func (r *Response) Copy() *Response {
	if r == nil {
		return nil
	}
	out := *r
	out.Headers = r.Headers.Copy()
	if r.Body != nil {
		out.Body = make([]byte, len(r.Body))
		copy(out.Body, r.Body)
	}
	return &out
}

// Flow is a captured exchange. Either side may be nil: a request that never
// got an answer, or a server push with no originating request.
type Flow struct {
	Request  *Request
	Response *Response
}
