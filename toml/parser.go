package toml

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads TOML source into nested maps.
// Supported: [tables], dotted keys, basic and literal strings, integers,
// floats, booleans and arrays.
func Parse(data []byte) (map[string]any, error) {
	p := &parser{lex: newLexer(data), root: map[string]any{}, defined: map[string]bool{}}
	p.scope = p.root
	p.next()
	return p.root, p.parse()
}

type parser struct {
	lex   *lexer
	cur   token
	root  map[string]any
	scope map[string]any

	// headers already declared with [name]
	defined map[string]bool
}

func (p *parser) next() {
	p.cur = p.lex.next()
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("toml line %d: %s", p.cur.line, fmt.Sprintf(format, args...))
}

func (p *parser) parse() error {
	for {
		switch p.cur.kind {
		case tokEOF:
			return nil
		case tokNewline:
			p.next()
			continue
		case tokLBracket:
			if err := p.table(); err != nil {
				return err
			}
		case tokKey, tokString, tokInt, tokBool:
			if err := p.keyValue(p.scope); err != nil {
				return err
			}
		case tokError:
			return p.errorf("%s", p.cur.text)
		default:
			return p.errorf("unexpected %s", p.cur)
		}

		if p.cur.kind != tokNewline && p.cur.kind != tokEOF {
			return p.errorf("expected end of line, got %s", p.cur)
		}
	}
}

// table handles a [a.b] header
func (p *parser) table() error {
	p.next()
	if p.cur.kind == tokLBracket {
		return p.errorf("arrays of tables are not supported")
	}
	path, err := p.key()
	if err != nil {
		return err
	}
	if p.cur.kind != tokRBracket {
		return p.errorf("expected ] after table name, got %s", p.cur)
	}
	p.next()

	name := strings.Join(path, ".")
	if p.defined[name] {
		return p.errorf("table [%s] defined more than once", name)
	}
	p.defined[name] = true

	m := p.root
	for _, k := range path {
		child, ok := m[k]
		if !ok {
			nm := map[string]any{}
			m[k] = nm
			m = nm
			continue
		}
		cm, ok := child.(map[string]any)
		if !ok {
			return p.errorf("key %q is not a table", strings.Join(path, "."))
		}
		m = cm
	}
	p.scope = m
	return nil
}

func (p *parser) key() ([]string, error) {
	var parts []string
	for {
		switch p.cur.kind {
		case tokKey, tokString, tokInt, tokBool:
			parts = append(parts, p.cur.text)
		default:
			return nil, p.errorf("expected key, got %s", p.cur)
		}
		p.next()
		if p.cur.kind != tokDot {
			return parts, nil
		}
		p.next()
	}
}

func (p *parser) keyValue(scope map[string]any) error {
	path, err := p.key()
	if err != nil {
		return err
	}
	if p.cur.kind != tokEqual {
		return p.errorf("expected = after key %q, got %s", strings.Join(path, "."), p.cur)
	}
	p.next()

	val, err := p.value()
	if err != nil {
		return err
	}

	m := scope
	for _, k := range path[:len(path)-1] {
		child, ok := m[k]
		if !ok {
			nm := map[string]any{}
			m[k] = nm
			m = nm
			continue
		}
		cm, ok := child.(map[string]any)
		if !ok {
			return p.errorf("key %q is not a table", k)
		}
		m = cm
	}

	last := path[len(path)-1]
	if _, dup := m[last]; dup {
		return p.errorf("duplicate key %q", strings.Join(path, "."))
	}
	m[last] = val
	return nil
}

func (p *parser) value() (any, error) {
	tok := p.cur
	switch tok.kind {
	case tokString:
		p.next()
		return tok.text, nil
	case tokBool:
		p.next()
		return tok.text == "true", nil
	case tokInt:
		n, err := strconv.ParseInt(strings.ReplaceAll(tok.text, "_", ""), 10, 64)
		if err != nil {
			return nil, p.errorf("bad integer %q", tok.text)
		}
		p.next()
		return n, nil
	case tokFloat:
		f, err := strconv.ParseFloat(strings.ReplaceAll(tok.text, "_", ""), 64)
		if err != nil {
			return nil, p.errorf("bad float %q", tok.text)
		}
		p.next()
		return f, nil
	case tokLBracket:
		return p.array()
	case tokError:
		return nil, p.errorf("%s", tok.text)
	}
	return nil, p.errorf("unexpected value %s", tok)
}

func (p *parser) array() ([]any, error) {
	p.next()
	out := []any{}
	for {
		for p.cur.kind == tokNewline {
			p.next()
		}
		if p.cur.kind == tokRBracket {
			p.next()
			return out, nil
		}

		v, err := p.value()
		if err != nil {
			return nil, err
		}
		out = append(out, v)

		for p.cur.kind == tokNewline {
			p.next()
		}
		switch p.cur.kind {
		case tokComma:
			p.next()
		case tokRBracket:
		default:
			return nil, p.errorf("expected , or ] in array, got %s", p.cur)
		}
	}
}
