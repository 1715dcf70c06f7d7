package toml

import "fmt"

// tokenKind classifies a lexical token
type tokenKind int

const (
	tokError tokenKind = iota
	tokEOF
	tokNewline

	tokKey    // bare key
	tokString // "quoted"
	tokInt
	tokFloat
	tokBool

	tokEqual    // =
	tokDot      // .
	tokComma    // ,
	tokLBracket // [
	tokRBracket // ]
)

type token struct {
	kind tokenKind
	text string
	line int
}

func (t token) String() string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokNewline:
		return "newline"
	case tokError:
		return fmt.Sprintf("error(%s)", t.text)
	}
	return fmt.Sprintf("%q", t.text)
}
