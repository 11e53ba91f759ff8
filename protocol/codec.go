package protocol

import (
	"encoding/hex"
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	// MarkerLen is the number of leading characters stripped from a payload
	// before hex decoding.
	MarkerLen = 2

	// Marker prefixes every payload we encode.
	Marker = "0x"
)

var (
	ErrPayloadTooShort = errors.New("Payload is malformed, it is shorter than the 0x marker")
	ErrMalformedHex    = errors.New("Payload is not valid hex")
	ErrInvalidUTF8     = errors.New("Payload is not valid UTF-8")
)

// DecodeHex strips the payload marker and hex decodes the remainder.
func DecodeHex(payload string) ([]byte, error) {
	if len(payload) < MarkerLen {
		return nil, ErrPayloadTooShort
	}

	data, err := hex.DecodeString(payload[MarkerLen:])
	if err != nil {
		return nil, fmt.Errorf("Failed to decode '%s': %v: %w", payload, err, ErrMalformedHex)
	}

	return data, nil
}

// DecodeText decodes a payload that must hold UTF-8 text.
func DecodeText(payload string) (string, error) {
	data, err := DecodeHex(payload)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}

	return string(data), nil
}

func EncodeHex(data []byte) string {
	return Marker + hex.EncodeToString(data)
}

func EncodeText(s string) string {
	return EncodeHex([]byte(s))
}
