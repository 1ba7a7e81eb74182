package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Token is an opaque scalar (an id or a generation label) that keeps the
// source's textual form. Numeric tokens round-trip as JSON numbers, the
// rest as JSON strings.
type Token struct {
	Text    string
	Numeric bool
}

func StringToken(s string) Token {
	return Token{Text: s}
}

func NumberToken(f float64) Token {
	return Token{Text: strconv.FormatFloat(f, 'f', -1, 64), Numeric: true}
}

func (t Token) String() string { return t.Text }

func (t Token) IsZero() bool { return t.Text == "" }

func (t Token) MarshalJSON() ([]byte, error) {
	if t.Numeric && t.Text != "" {
		return []byte(t.Text), nil
	}
	return json.Marshal(t.Text)
}

func (t *Token) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*t = Token{}
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = StringToken(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*t = Token{Text: n.String(), Numeric: true}
		return nil
	}
}
