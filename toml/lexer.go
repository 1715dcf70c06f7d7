package toml

import (
	"strings"
	"unicode/utf8"
)

// lexer splits TOML source into tokens; comments are dropped here
type lexer struct {
	src  []byte
	pos  int
	line int
}

func newLexer(src []byte) *lexer {
	return &lexer{src: src, line: 1}
}

func (l *lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r, _ := utf8.DecodeRune(l.src[l.pos:])
	return r
}

func (l *lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r, w := utf8.DecodeRune(l.src[l.pos:])
	l.pos += w
	if r == '\n' {
		l.line++
	}
	return r
}

func (l *lexer) emit(kind tokenKind, text string) token {
	return token{kind: kind, text: text, line: l.line}
}

func (l *lexer) next() token {
	for {
		switch l.peek() {
		case ' ', '\t', '\r':
			l.advance()
			continue
		case '#':
			for l.pos < len(l.src) && l.peek() != '\n' {
				l.advance()
			}
			continue
		}
		break
	}

	if l.pos >= len(l.src) {
		return l.emit(tokEOF, "")
	}

	ch := l.peek()
	switch ch {
	case '\n':
		tok := l.emit(tokNewline, "\n")
		l.advance()
		return tok
	case '=':
		l.advance()
		return l.emit(tokEqual, "=")
	case '.':
		l.advance()
		return l.emit(tokDot, ".")
	case ',':
		l.advance()
		return l.emit(tokComma, ",")
	case '[':
		l.advance()
		return l.emit(tokLBracket, "[")
	case ']':
		l.advance()
		return l.emit(tokRBracket, "]")
	case '"':
		return l.quoted()
	case '\'':
		return l.literal()
	}

	if isBareChar(ch) || ch == '+' {
		return l.bare()
	}

	l.advance()
	return l.emit(tokError, "unexpected character "+string(ch))
}

// quoted reads a basic string with the common escapes
func (l *lexer) quoted() token {
	l.advance()
	var sb strings.Builder
	for l.pos < len(l.src) {
		ch := l.advance()
		switch ch {
		case '\n':
			return l.emit(tokError, "newline in string")
		case '"':
			return l.emit(tokString, sb.String())
		case '\\':
			switch esc := l.advance(); esc {
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			case 'r':
				sb.WriteRune('\r')
			case '"', '\\':
				sb.WriteRune(esc)
			default:
				return l.emit(tokError, "unknown escape \\"+string(esc))
			}
		default:
			sb.WriteRune(ch)
		}
	}
	return l.emit(tokError, "unterminated string")
}

// literal reads a single-quoted string, no escapes
func (l *lexer) literal() token {
	l.advance()
	start := l.pos
	for l.pos < len(l.src) {
		switch l.peek() {
		case '\n':
			return l.emit(tokError, "newline in string")
		case '\'':
			text := string(l.src[start:l.pos])
			l.advance()
			return l.emit(tokString, text)
		}
		l.advance()
	}
	return l.emit(tokError, "unterminated string")
}

// bare reads a bare key, number or boolean; '.' is kept only inside numbers
func (l *lexer) bare() token {
	start := l.pos
	numeric := isDigit(l.peek()) || l.peek() == '+' || l.peek() == '-'
	for l.pos < len(l.src) {
		ch := l.peek()
		if isBareChar(ch) || ch == '+' || (ch == '.' && numeric) {
			l.advance()
			continue
		}
		break
	}
	text := string(l.src[start:l.pos])

	switch {
	case text == "true" || text == "false":
		return l.emit(tokBool, text)
	case !numeric:
		return l.emit(tokKey, text)
	}

	digits := strings.TrimLeft(text, "+-")
	if digits == "" {
		return l.emit(tokKey, text)
	}
	for _, r := range digits {
		if !isDigit(r) && r != '_' && r != '.' && r != 'e' && r != 'E' && r != '+' && r != '-' {
			return l.emit(tokKey, text)
		}
	}
	if strings.ContainsAny(digits, ".eE") {
		return l.emit(tokFloat, text)
	}
	return l.emit(tokInt, text)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isBareChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || isDigit(r) || r == '_' || r == '-'
}
