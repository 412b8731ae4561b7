package export

import "github.com/emrekoca/flowex/internal/flow"

// sanitizeRequest produces an exportable copy of the flow's request: the
// body is leniently decoded, a vestigial `Content-Length: 0` on GET is
// dropped and the :authority pseudo-header is stripped. The original flow
// is never touched.
func sanitizeRequest(f *flow.Flow) (*flow.Request, error) {
	if f == nil || f.Request == nil {
		return nil, ErrNoRequest
	}

	req := f.Request.Copy()
	req.Decode()

	if req.Method == "GET" {
		if v, ok := req.Headers.Get("content-length"); ok && v == "0" {
			req.Headers.Remove("content-length")
		}
	}
	req.Headers.Remove(":authority")

	return req, nil
}

// sanitizeResponse is the response counterpart of sanitizeRequest.
func sanitizeResponse(f *flow.Flow) (*flow.Response, error) {
	if f == nil || f.Response == nil {
		return nil, ErrNoResponse
	}

	resp := f.Response.Copy()
	resp.Decode()
	resp.Headers.Remove(":authority")

	return resp, nil
}
