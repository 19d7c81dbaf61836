package riptide

import "github.com/tidwall/gjson"

// jsonBody returns resp's body if it is non-empty, valid JSON, or ok ==
// false otherwise -- the one "unparseable => absent" gate both
// JSONField and MatchesNavigator run their gjson lookups behind.
func jsonBody(resp *Response) (raw []byte, ok bool) {
	if resp == nil || len(resp.Body) == 0 || !gjson.ValidBytes(resp.Body) {
		return nil, false
	}
	return resp.Body, true
}

// matchesNavigator implements a compound-condition navigator not in
// spec.md's table: it routes on whether a BodyPredicate matches the
// response body, letting a caller combine several field checks (And/Or)
// into one routing decision instead of chaining several JSONField
// bindings.
type matchesNavigator struct {
	pred BodyPredicate
}

// MatchesNavigator returns a Navigator that extracts whether pred matches
// the response body. A body that fails to parse as JSON extracts as
// absent, the same "unparseable => absent" rule every other Navigator
// follows.
func MatchesNavigator(pred BodyPredicate) Navigator[bool] { return matchesNavigator{pred: pred} }

func (n matchesNavigator) Extract(resp *Response) (bool, bool) {
	raw, ok := jsonBody(resp)
	if !ok {
		return false, false
	}
	return n.pred(raw), true
}

func (n matchesNavigator) Select(resp *Response, tree *RoutingTree[bool]) (Route, bool) {
	a, ok := n.Extract(resp)
	return DefaultSelect(tree, a, ok)
}

// statusCodeNavigator implements the "statusCode" navigator: integer
// 100-599, extracted directly from Response.StatusCode.
type statusCodeNavigator struct{}

// StatusCode returns a Navigator that routes on the raw numeric status
// code.
func StatusCode() Navigator[int] { return statusCodeNavigator{} }

func (statusCodeNavigator) Extract(resp *Response) (int, bool) {
	if resp == nil || resp.StatusCode < 100 || resp.StatusCode > 599 {
		return 0, false
	}
	return resp.StatusCode, true
}

func (n statusCodeNavigator) Select(resp *Response, tree *RoutingTree[int]) (Route, bool) {
	a, ok := n.Extract(resp)
	return DefaultSelect(tree, a, ok)
}

// statusNavigator implements the "status" navigator: the status code
// reified into a StatusEnum.
type statusNavigator struct{}

// Status returns a Navigator that routes on the status code reified as a
// StatusEnum.
func Status() Navigator[StatusEnum] { return statusNavigator{} }

func (statusNavigator) Extract(resp *Response) (StatusEnum, bool) {
	if resp == nil || resp.StatusCode < 100 || resp.StatusCode > 599 {
		return 0, false
	}
	return StatusEnum(resp.StatusCode), true
}

func (n statusNavigator) Select(resp *Response, tree *RoutingTree[StatusEnum]) (Route, bool) {
	a, ok := n.Extract(resp)
	return DefaultSelect(tree, a, ok)
}

// seriesNavigator implements the "series" navigator: status family
// derived by integer division of the status code by 100.
type seriesNavigator struct{}

// SeriesNavigator returns a Navigator that routes on the response's status family
// (INFORMATIONAL, SUCCESSFUL, REDIRECTION, CLIENT_ERROR, SERVER_ERROR).
func SeriesNavigator() Navigator[Series] { return seriesNavigator{} }

func (seriesNavigator) Extract(resp *Response) (Series, bool) {
	if resp == nil {
		return 0, false
	}
	return seriesOf(resp.StatusCode)
}

func (n seriesNavigator) Select(resp *Response, tree *RoutingTree[Series]) (Route, bool) {
	a, ok := n.Extract(resp)
	return DefaultSelect(tree, a, ok)
}

// contentTypeNavigator implements the "contentType" navigator with the
// resolved Open Question policy: exact match including parameters.
type contentTypeNavigator struct{}

// ContentType returns a Navigator that routes on the response's
// Content-Type header, parameters included (e.g. "text/plain;charset=utf-8"
// does not match a binding on bare "text/plain"). Use ContentTypeKind for
// parameter-insensitive matching.
func ContentType() Navigator[MediaType] { return contentTypeNavigator{} }

func (contentTypeNavigator) Extract(resp *Response) (MediaType, bool) {
	return ParseMediaType(resp.contentTypeHeader())
}

func (n contentTypeNavigator) Select(resp *Response, tree *RoutingTree[MediaType]) (Route, bool) {
	a, ok := n.Extract(resp)
	return DefaultSelect(tree, a, ok)
}

// contentTypeKindNavigator implements parameter-insensitive content-type
// matching, the second navigator the spec's Open Question asks for.
type contentTypeKindNavigator struct{}

// ContentTypeKind returns a Navigator that routes on the response's
// Content-Type type/subtype only, ignoring parameters such as charset.
func ContentTypeKind() Navigator[MediaType] { return contentTypeKindNavigator{} }

func (contentTypeKindNavigator) Extract(resp *Response) (MediaType, bool) {
	mt, ok := ParseMediaType(resp.contentTypeHeader())
	if !ok {
		return MediaType{}, false
	}
	return mt.Kind(), true
}

func (n contentTypeKindNavigator) Select(resp *Response, tree *RoutingTree[MediaType]) (Route, bool) {
	a, ok := n.Extract(resp)
	return DefaultSelect(tree, a, ok)
}

// reasonPhraseNavigator implements the "reasonPhrase" navigator.
type reasonPhraseNavigator struct{}

// ReasonPhrase returns a Navigator that routes on the response's reason
// phrase string (e.g. "Not Found").
func ReasonPhrase() Navigator[string] { return reasonPhraseNavigator{} }

func (reasonPhraseNavigator) Extract(resp *Response) (string, bool) {
	if resp == nil || resp.Reason == "" {
		return "", false
	}
	return resp.Reason, true
}

func (n reasonPhraseNavigator) Select(resp *Response, tree *RoutingTree[string]) (Route, bool) {
	a, ok := n.Extract(resp)
	return DefaultSelect(tree, a, ok)
}

// jsonFieldNavigator implements a body-driven navigator not in the spec's
// original table but licensed by "any user-supplied function of the
// response" -- it routes on a gjson path evaluated directly against the
// response body, the same "cheap field lookup over raw bytes" idea as the
// teacher's Discriminator, applied to a response body instead of a queue
// message.
type jsonFieldNavigator struct {
	path string
}

// JSONField returns a Navigator that routes on the string value of a
// gjson path within the response body (e.g. "error.code"). A missing path,
// a non-string value, or an unparseable body are all treated as absent.
func JSONField(path string) Navigator[string] { return jsonFieldNavigator{path: path} }

func (n jsonFieldNavigator) Extract(resp *Response) (string, bool) {
	raw, ok := jsonBody(resp)
	if !ok {
		return "", false
	}
	r := gjson.GetBytes(raw, n.path)
	if !r.Exists() || r.Type != gjson.String {
		return "", false
	}
	return r.String(), true
}

func (n jsonFieldNavigator) Select(resp *Response, tree *RoutingTree[string]) (Route, bool) {
	a, ok := n.Extract(resp)
	return DefaultSelect(tree, a, ok)
}
