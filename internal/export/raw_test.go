package export

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"net/http"
	"reflect"
	"testing"

	"github.com/emrekoca/flowex/internal/flow"
)

func sampleRequest() *flow.Request {
	return &flow.Request{
		Method: "POST",
		URL:    "http://example.com/things?page=2",
		Proto:  "HTTP/1.1",
		Headers: flow.Headers{
			{Name: "Host", Value: "example.com"},
			{Name: "Content-Length", Value: "7"},
		},
		Body: []byte("payload"),
	}
}

func sampleResponse() *flow.Response {
	return &flow.Response{
		Proto:      "HTTP/1.1",
		StatusCode: 200,
		Reason:     "OK",
		Headers: flow.Headers{
			{Name: "Set-Cookie", Value: "a=1"},
			{Name: "Content-Length", Value: "5"},
			{Name: "Set-Cookie", Value: "b=2"},
		},
		Body: []byte("hello"),
	}
}

func TestAssembleRequestExactBytes(t *testing.T) {
	got := assembleRequest(sampleRequest())
	want := "POST /things?page=2 HTTP/1.1\r\n" +
		"Host: example.com\r\n" +
		"Content-Length: 7\r\n" +
		"\r\n" +
		"payload"
	if string(got) != want {
		t.Fatalf("assembled request = %q, want %q", got, want)
	}
}

func TestAssembleResponseExactBytes(t *testing.T) {
	got := assembleResponse(sampleResponse())
	want := "HTTP/1.1 200 OK\r\n" +
		"Set-Cookie: a=1\r\n" +
		"Content-Length: 5\r\n" +
		"Set-Cookie: b=2\r\n" +
		"\r\n" +
		"hello"
	if string(got) != want {
		t.Fatalf("assembled response = %q, want %q", got, want)
	}
}

func TestAssembleResponseFillsMissingReason(t *testing.T) {
	resp := &flow.Response{StatusCode: 404}
	got := assembleResponse(resp)
	if !bytes.HasPrefix(got, []byte("HTTP/1.1 404 Not Found\r\n")) {
		t.Fatalf("status line = %q, want HTTP/1.1 404 Not Found", got)
	}
}

func TestAssembledRequestRoundTrips(t *testing.T) {
	raw := assembleRequest(sampleRequest())

	parsed, err := http.ReadRequest(bufio.NewReader(bytes.NewReader(raw)))
	if err != nil {
		t.Fatalf("ReadRequest failed: %v", err)
	}
	if parsed.Method != "POST" {
		t.Fatalf("Method = %q, want POST", parsed.Method)
	}
	if parsed.URL.RequestURI() != "/things?page=2" {
		t.Fatalf("target = %q, want /things?page=2", parsed.URL.RequestURI())
	}
	if parsed.Host != "example.com" {
		t.Fatalf("Host = %q, want example.com", parsed.Host)
	}
	body, err := io.ReadAll(parsed.Body)
	if err != nil {
		t.Fatalf("reading body failed: %v", err)
	}
	if string(body) != "payload" {
		t.Fatalf("body = %q, want payload", body)
	}
}

func TestAssembledResponseRoundTrips(t *testing.T) {
	raw := assembleResponse(sampleResponse())

	parsed, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(raw)), nil)
	if err != nil {
		t.Fatalf("ReadResponse failed: %v", err)
	}
	if parsed.StatusCode != 200 {
		t.Fatalf("StatusCode = %d, want 200", parsed.StatusCode)
	}
	cookies := parsed.Header["Set-Cookie"]
	if !reflect.DeepEqual(cookies, []string{"a=1", "b=2"}) {
		t.Fatalf("Set-Cookie = %v, want [a=1 b=2] in order", cookies)
	}
	body, err := io.ReadAll(parsed.Body)
	if err != nil {
		t.Fatalf("reading body failed: %v", err)
	}
	if string(body) != "hello" {
		t.Fatalf("body = %q, want hello", body)
	}
}

func TestAssembleFlowCombinesBothSides(t *testing.T) {
	f := &flow.Flow{Request: sampleRequest(), Response: sampleResponse()}

	got, err := assembleFlow(f)
	if err != nil {
		t.Fatalf("assembleFlow failed: %v", err)
	}

	req, err := sanitizeRequest(f)
	if err != nil {
		t.Fatalf("sanitizeRequest failed: %v", err)
	}
	resp, err := sanitizeResponse(f)
	if err != nil {
		t.Fatalf("sanitizeResponse failed: %v", err)
	}
	want := append(assembleRequest(req), append([]byte("\r\n\r\n"), assembleResponse(resp)...)...)

	if !bytes.Equal(got, want) {
		t.Fatalf("combined assembly = %q, want %q", got, want)
	}
}

func TestAssembleFlowSingleSide(t *testing.T) {
	reqOnly := &flow.Flow{Request: sampleRequest()}
	got, err := assembleFlow(reqOnly)
	if err != nil {
		t.Fatalf("assembleFlow failed: %v", err)
	}
	if !bytes.Equal(got, assembleRequest(sampleRequest())) {
		t.Fatalf("request-only assembly = %q", got)
	}

	respOnly := &flow.Flow{Response: sampleResponse()}
	got, err = assembleFlow(respOnly)
	if err != nil {
		t.Fatalf("assembleFlow failed: %v", err)
	}
	if !bytes.Equal(got, assembleResponse(sampleResponse())) {
		t.Fatalf("response-only assembly = %q", got)
	}
}

func TestAssembleFlowEmpty(t *testing.T) {
	if _, err := assembleFlow(&flow.Flow{}); !errors.Is(err, ErrNoContent) {
		t.Fatalf("error = %v, want ErrNoContent", err)
	}
}

func TestRequestTargetFallsBackToRawURL(t *testing.T) {
	req := &flow.Request{Method: "GET", URL: "not a url", Proto: "HTTP/1.1"}
	if got := requestTarget(req); got != "not a url" {
		t.Fatalf("target = %q, want the captured URL", got)
	}

	root := &flow.Request{Method: "GET", URL: "http://example.com"}
	if got := requestTarget(root); got != "/" {
		t.Fatalf("target = %q, want /", got)
	}
}
