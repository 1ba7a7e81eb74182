package pokemon

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"pokedex/pkg/models"
)

// SpriteSyntaxError reports where a sprites literal stopped making sense.
type SpriteSyntaxError struct {
	Offset int
	Msg    string
}

func (e *SpriteSyntaxError) Error() string {
	return fmt.Sprintf("sprites literal: %s at offset %d", e.Msg, e.Offset)
}

// ParseSpriteLiteral decodes the textual dict encoding the dataset uses for
// its sprites column, e.g.
//
//	{'normal': 'https://.../1.png', 'animated': 'https://.../1.gif'}
//
// Keys and values are single- or double-quoted strings; a value may also be
// None, read as "". JSON objects of strings are accepted as well.
func ParseSpriteLiteral(s string) (models.SpriteSet, error) {
	p := &literalParser{src: s}
	out, err := p.object()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.done() {
		return nil, p.errorf("unexpected %q after closing brace", p.src[p.pos])
	}
	return out, nil
}

// sprites converts a raw sprites value of any supported shape. The caller
// substitutes EmptySprites on error.
func sprites(v any) (models.SpriteSet, error) {
	switch t := v.(type) {
	case nil:
		return nil, fmt.Errorf("sprites missing")
	case string:
		set, err := ParseSpriteLiteral(t)
		if err != nil {
			return nil, err
		}
		return set.Complete(), nil
	case map[string]any:
		set := make(models.SpriteSet, len(t))
		for k, raw := range t {
			if raw == nil {
				set[k] = ""
				continue
			}
			set[k] = spriteValue(raw)
		}
		return set.Complete(), nil
	case map[string]string:
		set := make(models.SpriteSet, len(t))
		for k, str := range t {
			set[k] = str
		}
		return set.Complete(), nil
	default:
		return nil, fmt.Errorf("sprites: unsupported type %T", v)
	}
}

// spriteValue renders one value of a structured sprites mapping. Scalars
// become their text form; nested values are kept as compact JSON.
func spriteValue(v any) string {
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

type literalParser struct {
	src string
	pos int
}

func (p *literalParser) done() bool { return p.pos >= len(p.src) }

func (p *literalParser) errorf(format string, args ...any) error {
	return &SpriteSyntaxError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *literalParser) skipSpace() {
	for !p.done() {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *literalParser) expect(c byte) error {
	p.skipSpace()
	if p.done() {
		return p.errorf("expected %q, got end of input", c)
	}
	if p.src[p.pos] != c {
		return p.errorf("expected %q, got %q", c, p.src[p.pos])
	}
	p.pos++
	return nil
}

func (p *literalParser) peek() (byte, bool) {
	p.skipSpace()
	if p.done() {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *literalParser) object() (models.SpriteSet, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	out := make(models.SpriteSet)
	for {
		c, ok := p.peek()
		if !ok {
			return nil, p.errorf("unterminated mapping")
		}
		if c == '}' {
			p.pos++
			return out, nil
		}

		key, err := p.str()
		if err != nil {
			return nil, err
		}
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		out[key] = val

		c, ok = p.peek()
		switch {
		case !ok:
			return nil, p.errorf("unterminated mapping")
		case c == ',':
			p.pos++
		case c == '}':
			// closed on the next iteration
		default:
			return nil, p.errorf("expected ',' or '}', got %q", c)
		}
	}
}

func (p *literalParser) value() (string, error) {
	p.skipSpace()
	if strings.HasPrefix(p.src[p.pos:], "None") {
		p.pos += len("None")
		return "", nil
	}
	return p.str()
}

func (p *literalParser) str() (string, error) {
	c, ok := p.peek()
	if !ok {
		return "", p.errorf("expected string, got end of input")
	}
	if c != '\'' && c != '"' {
		return "", p.errorf("expected string, got %q", c)
	}
	quote := c
	p.pos++

	var b strings.Builder
	for !p.done() {
		c := p.src[p.pos]
		switch {
		case c == quote:
			p.pos++
			return b.String(), nil
		case c == '\n':
			return "", p.errorf("newline in string")
		case c == '\\':
			if p.pos+1 >= len(p.src) {
				return "", p.errorf("dangling escape")
			}
			p.pos++
			b.WriteString(unescape(p.src[p.pos]))
			p.pos++
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return "", p.errorf("unterminated string")
}

// unescape handles the escapes that show up in URL-bearing literals. Unknown
// sequences keep their backslash.
func unescape(c byte) string {
	switch c {
	case '\\', '\'', '"', '/':
		return string(c)
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	default:
		return "\\" + string(c)
	}
}
