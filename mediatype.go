package riptide

import (
	"mime"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var foldToken = cases.Lower(language.Und)

// MediaType is a comparable attribute value for the ContentType navigator.
// Go's mime package hands back a bare string plus a map of parameters;
// MediaType folds those into a single comparable value (type, subtype, and
// a canonical parameter encoding) so it can be used directly as a
// RoutingTree[MediaType] key.
type MediaType struct {
	Type    string
	Subtype string
	// params is a canonicalized "k=v;k=v" string, sorted by key, so two
	// MediaType values with the same parameters in different orders
	// compare equal.
	params string
}

// Common media types, mirroring the constants a caller would otherwise
// have to hand-construct.
var (
	ApplicationJSON = MediaType{Type: "application", Subtype: "json"}
	ApplicationXML  = MediaType{Type: "application", Subtype: "xml"}
	TextPlain       = MediaType{Type: "text", Subtype: "plain"}
	TextHTML        = MediaType{Type: "text", Subtype: "html"}
	Wildcard        = MediaType{Type: "*", Subtype: "*"}
)

// NewMediaType builds a MediaType from its components, folding the type
// and subtype tokens to lower case per RFC 9110 (media-type tokens are
// case-insensitive) and canonicalizing parameters.
func NewMediaType(typ, subtype string, params map[string]string) MediaType {
	return MediaType{
		Type:    foldToken.String(typ),
		Subtype: foldToken.String(subtype),
		params:  encodeParams(params),
	}
}

// ParseMediaType parses a Content-Type header value (e.g.
// "text/plain; charset=utf-8") into a MediaType. An empty or malformed
// header value returns ok == false, matching the spec's "extraction may
// return absent" contract.
func ParseMediaType(header string) (mt MediaType, ok bool) {
	if header == "" {
		return MediaType{}, false
	}
	full, params, err := mime.ParseMediaType(header)
	if err != nil {
		return MediaType{}, false
	}
	typ, subtype, found := strings.Cut(full, "/")
	if !found {
		return MediaType{}, false
	}
	return NewMediaType(typ, subtype, params), true
}

func encodeParams(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(foldToken.String(k))
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	return b.String()
}

// Kind returns a MediaType with the same type/subtype but no parameters,
// used by ContentTypeKind for parameter-insensitive matching.
func (m MediaType) Kind() MediaType {
	return MediaType{Type: m.Type, Subtype: m.Subtype}
}

// String renders the media type as "type/subtype" plus any parameters in
// canonical (sorted) order.
func (m MediaType) String() string {
	s := m.Type + "/" + m.Subtype
	if m.params == "" {
		return s
	}
	return s + ";" + m.params
}
