// Package jsonp extracts JSON payloads from JSONP-wrapped response bodies.
package jsonp

import (
	"errors"
	"regexp"
)

// ErrNoEnvelope indicates the body was not a functionName(<json>) envelope.
var ErrNoEnvelope = errors.New("jsonp: body is not a jsonp envelope")

// envelopePattern captures the single top-level call argument of a JSONP
// body such as `matches_20240101({...});`.
var envelopePattern = regexp.MustCompile(`(?s)^\s*[A-Za-z_$][0-9A-Za-z_$]*\s*\((.*)\)\s*;?\s*$`)

// Unwrap returns the JSON argument of a JSONP envelope.
func Unwrap(body []byte) ([]byte, error) {
	matches := envelopePattern.FindSubmatch(body)
	if matches == nil {
		return nil, ErrNoEnvelope
	}
	return matches[1], nil
}
