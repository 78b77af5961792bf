package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ParseAttributes decodes an attribute column that may hold a JSON object
// or the python repr of a dict, e.g. "{'WiFi': u'free', 'BusinessParking':
// {'garage': False}}". Empty, "None" and "null" decode to nil.
func ParseAttributes(s string) (Attributes, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "none", "null", "nan", "{}":
		return nil, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &obj); err == nil {
		return obj, nil
	}

	p := &pyParser{src: s}
	p.skipSpace()
	if !p.peek('{') {
		return nil, fmt.Errorf("attributes: expected a dict, got %q", truncate(s, 32))
	}
	dict, err := p.dict()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("attributes: trailing data at offset %d", p.pos)
	}
	return dict, nil
}

// pyParser reads the subset of python literal syntax str(dict) produces
type pyParser struct {
	src string
	pos int
}

func (p *pyParser) skipSpace() {
	for p.pos < len(p.src) && strings.IndexByte(" \t\r\n", p.src[p.pos]) >= 0 {
		p.pos++
	}
}

func (p *pyParser) peek(c byte) bool {
	return p.pos < len(p.src) && p.src[p.pos] == c
}

func (p *pyParser) expect(c byte) error {
	p.skipSpace()
	if !p.peek(c) {
		return fmt.Errorf("attributes: expected %q at offset %d", c, p.pos)
	}
	p.pos++
	return nil
}

func (p *pyParser) dict() (map[string]json.RawMessage, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	out := make(map[string]json.RawMessage)
	for {
		p.skipSpace()
		if p.peek('}') {
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

		p.skipSpace()
		if p.peek(',') {
			p.pos++
			continue
		}
		if err := p.expect('}'); err != nil {
			return nil, err
		}
		return out, nil
	}
}

func (p *pyParser) value() (json.RawMessage, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, fmt.Errorf("attributes: unexpected end of input")
	}

	switch c := p.src[p.pos]; {
	case c == '{':
		d, err := p.dict()
		if err != nil {
			return nil, err
		}
		return json.Marshal(d)
	case c == '\'' || c == '"' || p.prefixedString():
		s, err := p.str()
		if err != nil {
			return nil, err
		}
		return json.Marshal(s)
	}

	start := p.pos
	for p.pos < len(p.src) && strings.IndexByte(",:}] \t\r\n", p.src[p.pos]) < 0 {
		p.pos++
	}
	word := p.src[start:p.pos]
	switch word {
	case "True":
		return json.RawMessage("true"), nil
	case "False":
		return json.RawMessage("false"), nil
	case "None", "nan":
		return json.RawMessage("null"), nil
	}
	if _, err := strconv.ParseFloat(word, 64); err != nil {
		return nil, fmt.Errorf("attributes: unexpected token %q at offset %d", word, start)
	}
	return json.RawMessage(word), nil
}

// prefixedString reports a u'' or b'' literal at the cursor
func (p *pyParser) prefixedString() bool {
	if p.pos+1 >= len(p.src) {
		return false
	}
	c, q := p.src[p.pos], p.src[p.pos+1]
	return strings.IndexByte("uUbB", c) >= 0 && (q == '\'' || q == '"')
}

func (p *pyParser) str() (string, error) {
	p.skipSpace()
	if p.prefixedString() {
		p.pos++
	}
	if p.pos >= len(p.src) || (p.src[p.pos] != '\'' && p.src[p.pos] != '"') {
		return "", fmt.Errorf("attributes: expected a string at offset %d", p.pos)
	}
	quote := p.src[p.pos]
	p.pos++

	var b strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		p.pos++
		switch {
		case c == quote:
			return b.String(), nil
		case c == '\\' && p.pos < len(p.src):
			esc := p.src[p.pos]
			p.pos++
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(esc)
			}
		default:
			b.WriteByte(c)
		}
	}
	return "", fmt.Errorf("attributes: unterminated string")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
