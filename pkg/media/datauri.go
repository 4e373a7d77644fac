// Package media handles inbound image payloads.
package media

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidImage = errors.New("invalid image payload")

// DecodeDataURI decodes a base64 data URI such as
// "data:image/png;base64,iVBOR..." into raw bytes and a content type.
// A bare base64 string is accepted too, with a generic content type.
func DecodeDataURI(s string) ([]byte, string, error) {
	contentType := "application/octet-stream"
	payload := s
	if rest, ok := strings.CutPrefix(s, "data:"); ok {
		meta, body, found := strings.Cut(rest, ",")
		if !found {
			return nil, "", ErrInvalidImage
		}
		payload = body
		if mt := strings.TrimSuffix(meta, ";base64"); mt != "" {
			contentType = mt
		}
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(data) == 0 {
		return nil, "", ErrInvalidImage
	}
	return data, contentType, nil
}
