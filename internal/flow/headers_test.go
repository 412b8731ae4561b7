package flow

import (
	"reflect"
	"testing"
)

func TestHeadersPreserveOrderAndDuplicates(t *testing.T) {
	var h Headers
	h.Add("Host", "example.com")
	h.Add("Set-Cookie", "a=1")
	h.Add("Accept", "*/*")
	h.Add("Set-Cookie", "b=2")

	want := Headers{
		{"Host", "example.com"},
		{"Set-Cookie", "a=1"},
		{"Accept", "*/*"},
		{"Set-Cookie", "b=2"},
	}
	if !reflect.DeepEqual(h, want) {
		t.Fatalf("headers = %v, want %v", h, want)
	}

	values := h.Values("set-cookie")
	if !reflect.DeepEqual(values, []string{"a=1", "b=2"}) {
		t.Fatalf("Values(set-cookie) = %v, want [a=1 b=2]", values)
	}
}

func TestHeadersGetIsCaseInsensitive(t *testing.T) {
	h := Headers{{"Content-Length", "0"}}

	v, ok := h.Get("content-length")
	if !ok || v != "0" {
		t.Fatalf("Get(content-length) = %q, %v, want 0, true", v, ok)
	}
	if !h.Has("CONTENT-LENGTH") {
		t.Fatal("Has(CONTENT-LENGTH) = false, want true")
	}
	if h.Has("content-type") {
		t.Fatal("Has(content-type) = true, want false")
	}
}

func TestHeadersSetReplacesFirstInPlace(t *testing.T) {
	h := Headers{
		{"Content-Type", "text/html"},
		{"Content-Length", "10"},
		{"Server", "nginx"},
		{"content-length", "10"},
	}
	h.Set("Content-Length", "4")

	want := Headers{
		{"Content-Type", "text/html"},
		{"Content-Length", "4"},
		{"Server", "nginx"},
	}
	if !reflect.DeepEqual(h, want) {
		t.Fatalf("after Set = %v, want %v", h, want)
	}
}

func TestHeadersSetAppendsWhenMissing(t *testing.T) {
	h := Headers{{"Host", "example.com"}}
	h.Set("Accept", "*/*")

	if len(h) != 2 || h[1] != (Field{"Accept", "*/*"}) {
		t.Fatalf("after Set = %v, want Accept appended", h)
	}
}

func TestHeadersRemoveDropsAllMatches(t *testing.T) {
	h := Headers{
		{"Set-Cookie", "a=1"},
		{"Host", "example.com"},
		{"set-cookie", "b=2"},
	}
	h.Remove("Set-Cookie")

	want := Headers{{"Host", "example.com"}}
	if !reflect.DeepEqual(h, want) {
		t.Fatalf("after Remove = %v, want %v", h, want)
	}
}

func TestHeadersCopyIsIndependent(t *testing.T) {
	h := Headers{{"Host", "example.com"}}
	c := h.Copy()
	c.Set("Host", "evil.example")
	c.Add("Accept", "*/*")

	if v, _ := h.Get("Host"); v != "example.com" {
		t.Fatalf("original mutated through copy: Host = %q", v)
	}
	if len(h) != 1 {
		t.Fatalf("original grew through copy: %v", h)
	}
}
