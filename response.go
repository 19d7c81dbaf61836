package riptide

import (
	"net/http"
	"strconv"
	"strings"
)

// Response is a completed HTTP response, buffered so that Navigators and
// Routes can inspect its body more than once. Riptide treats the
// underlying transport as an external collaborator (see spec's
// RequestFactory); whatever produces a Response is responsible for
// draining the wire and handing over a value with the body already read,
// exactly once.
type Response struct {
	StatusCode int
	Reason     string // e.g. "OK", "Not Found" -- without the numeric prefix
	Header     http.Header
	Body       []byte
}

// Status renders the conventional "<code> <reason>" status line, e.g.
// "404 Not Found".
func (r *Response) Status() string {
	if r == nil {
		return ""
	}
	if r.Reason == "" {
		return strconv.Itoa(r.StatusCode)
	}
	return strconv.Itoa(r.StatusCode) + " " + r.Reason
}

// contentTypeHeader returns the raw Content-Type header value, or "" if
// absent.
func (r *Response) contentTypeHeader() string {
	if r == nil || r.Header == nil {
		return ""
	}
	return strings.TrimSpace(r.Header.Get("Content-Type"))
}
