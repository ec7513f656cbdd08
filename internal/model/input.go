package model

import (
	"bytes"
	"encoding/json"
)

// Input is a request body value bound to a statement in its text form.
//
// Any JSON value is accepted: a string binds as its contents, numbers
// and booleans as their literal text, objects and arrays as JSON text,
// and null or an absent field as NULL. Postgres does the type coercion,
// so a value the column cannot hold fails in storage.
type Input struct {
	text *string
}

// NewInput returns an Input holding s.
func NewInput(s string) Input {
	return Input{text: &s}
}

func (in *Input) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		in.text = nil
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		in.text = &s
		return nil
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return err
	}
	s := compact.String()
	in.text = &s
	return nil
}

// Text returns the value to bind, nil for SQL NULL.
func (in Input) Text() *string {
	return in.text
}
