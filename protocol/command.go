package protocol

import (
	"errors"
	"fmt"
	"math"

	"github.com/tidwall/gjson"
)

var (
	ErrMalformedCommand = errors.New("Command is malformed, it is not a JSON object")
	ErrMissingField     = errors.New("Command is missing a required field")
	ErrMistypedField    = errors.New("Command field has the wrong type")
)

// Command is the structured object decoded from a request payload. Fields are
// read lazily so each handler only pays for the fields it uses.
type Command struct {
	raw gjson.Result
}

// ParseCommand validates text as a JSON object and wraps it as a Command.
func ParseCommand(text string) (*Command, error) {
	if !gjson.Valid(text) {
		return nil, fmt.Errorf("Failed to parse '%s': %w", text, ErrMalformedCommand)
	}

	raw := gjson.Parse(text)
	if !raw.IsObject() {
		return nil, fmt.Errorf("Failed to parse '%s': %w", text, ErrMalformedCommand)
	}

	return &Command{raw: raw}, nil
}

// DecodeCommand runs the full payload pipeline: strip marker, hex decode,
// UTF-8 check and JSON parse.
func DecodeCommand(payload string) (*Command, error) {
	text, err := DecodeText(payload)
	if err != nil {
		return nil, err
	}

	return ParseCommand(text)
}

// Discriminant returns the first of keys that holds a string value.
func (c *Command) Discriminant(keys ...string) (string, bool) {
	for _, key := range keys {
		if v := c.raw.Get(key); v.Type == gjson.String {
			return v.Str, true
		}
	}

	return "", false
}

func (c *Command) String(key string) (string, error) {
	v, err := c.field(key, gjson.String)
	if err != nil {
		return "", err
	}

	return v.Str, nil
}

func (c *Command) Float(key string) (float64, error) {
	v, err := c.field(key, gjson.Number)
	if err != nil {
		return 0, err
	}

	return v.Num, nil
}

// Uint reads a non-negative whole number.
func (c *Command) Uint(key string) (uint64, error) {
	v, err := c.field(key, gjson.Number)
	if err != nil {
		return 0, err
	}

	if v.Num < 0 || v.Num >= math.MaxUint64 || v.Num != math.Trunc(v.Num) {
		return 0, fmt.Errorf("'%s' is %s, want a non-negative integer: %w", key, v.Raw, ErrMistypedField)
	}

	return v.Uint(), nil
}

func (c *Command) Raw() string {
	return c.raw.Raw
}

func (c *Command) field(key string, want gjson.Type) (gjson.Result, error) {
	v := c.raw.Get(key)

	if !v.Exists() || v.Type == gjson.Null {
		return v, fmt.Errorf("'%s': %w", key, ErrMissingField)
	}

	if v.Type != want {
		return v, fmt.Errorf("'%s' is %s, want %s: %w", key, v.Type, want, ErrMistypedField)
	}

	return v, nil
}
