// Package base64 reads data URIs such as "data:image/png;base64,iVBOR...".
package base64

import (
	"strings"
)

const (
	dataPrefix   = "data:"
	base64Marker = ";base64,"
)

func split(uri string) (contentType, payload string, ok bool) {
	rest, ok := strings.CutPrefix(uri, dataPrefix)
	if !ok {
		return "", "", false
	}

	return strings.Cut(rest, base64Marker)
}

// GetContentType returns the media type of a data URI, or "" when uri is not one.
func GetContentType(uri string) string {
	contentType, _, ok := split(uri)
	if !ok {
		return ""
	}

	return contentType
}
