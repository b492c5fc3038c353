package token

import (
	"iter"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenizer is a pull scanner over SQL text.
// Tokens are produced one at a time; the input is never copied.
type Tokenizer struct {
	src    string
	pos    int
	syntax Syntax

	// last scanned token, used to detect E'...' prefixes
	last Token

	peeked  Token
	hasPeek bool
}

// New creates a Tokenizer over src
func New(src string, syntax Syntax) *Tokenizer {
	return &Tokenizer{src: src, syntax: syntax}
}

// Next returns the next token, or false once the input is exhausted
func (t *Tokenizer) Next() (Token, bool) {
	if t.hasPeek {
		t.hasPeek = false
		return t.peeked, true
	}

	return t.scan()
}

// Peek returns the token Next would return without consuming it
func (t *Tokenizer) Peek() (Token, bool) {
	if t.hasPeek {
		return t.peeked, true
	}

	tok, ok := t.scan()
	if !ok {
		return Token{}, false
	}

	t.peeked, t.hasPeek = tok, true
	return tok, true
}

// All returns a sequence over the tokens of src.
// Every range over the sequence starts again from the beginning of src.
func All(src string, syntax Syntax) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		t := New(src, syntax)
		for tok, ok := t.Next(); ok; tok, ok = t.Next() {
			if !yield(tok) {
				return
			}
		}
	}
}

// Tokenize returns all the tokens of src
func Tokenize(src string, syntax Syntax) []Token {
	return slices.Collect(All(src, syntax))
}

// Join concatenates the text of the tokens
func Join(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Text)
	}

	return b.String()
}

func (t *Tokenizer) scan() (Token, bool) {
	if t.pos >= len(t.src) {
		return Token{}, false
	}

	r, size := utf8.DecodeRuneInString(t.src[t.pos:])

	var tok Token
	switch {
	case unicode.IsSpace(r):
		tok = t.run(Space, unicode.IsSpace)
	case isWord(r):
		tok = t.run(Unquoted, isWord)
	case t.hasLineComment():
		tok = t.lineComment()
	case t.syntax.BlockComments && strings.HasPrefix(t.src[t.pos:], "/*"):
		tok = t.blockComment()
	case r == '$' && t.syntax.DollarQuotes && !t.afterWord() && t.dollarTag() != "":
		tok = t.dollarQuoted(t.dollarTag())
	case r < utf8.RuneSelf && strings.IndexByte(t.syntax.Quotes, byte(r)) >= 0:
		tok = t.quoted(byte(r))
	default:
		tok = t.emit(Punctuation, t.pos+size, false)
	}

	return tok, true
}

func (t *Tokenizer) emit(kind Kind, end int, unterminated bool) Token {
	tok := Token{
		Kind:         kind,
		Text:         t.src[t.pos:end],
		Offset:       t.pos,
		Unterminated: unterminated,
	}
	t.pos = end
	t.last = tok

	return tok
}

func (t *Tokenizer) run(kind Kind, accept func(rune) bool) Token {
	end := t.pos
	for end < len(t.src) {
		r, size := utf8.DecodeRuneInString(t.src[end:])
		if !accept(r) {
			break
		}
		end += size
	}

	return t.emit(kind, end, false)
}

func (t *Tokenizer) hasLineComment() bool {
	for _, prefix := range t.syntax.LineComments {
		if prefix == "" || !strings.HasPrefix(t.src[t.pos:], prefix) {
			continue
		}
		if prefix == "--" && t.syntax.SpacedDashComments && !t.spacedAfter(len(prefix)) {
			continue
		}
		return true
	}

	return false
}

func (t *Tokenizer) spacedAfter(n int) bool {
	if t.pos+n >= len(t.src) {
		return true
	}

	r, _ := utf8.DecodeRuneInString(t.src[t.pos+n:])
	return unicode.IsSpace(r) || unicode.IsControl(r)
}

// the newline is left for the following Space token
func (t *Tokenizer) lineComment() Token {
	i := strings.IndexByte(t.src[t.pos:], '\n')
	if i < 0 {
		return t.emit(Comment, len(t.src), false)
	}

	return t.emit(Comment, t.pos+i, false)
}

func (t *Tokenizer) blockComment() Token {
	i := strings.Index(t.src[t.pos+2:], "*/")
	if i < 0 {
		return t.emit(Comment, len(t.src), true)
	}

	return t.emit(Comment, t.pos+2+i+2, false)
}

// a $ directly after a word is part of an identifier such as a$b
func (t *Tokenizer) afterWord() bool {
	return t.last.Kind == Unquoted && t.last.Offset+len(t.last.Text) == t.pos
}

// dollarTag returns the opening $tag$ at the current position, or "" if there is none
func (t *Tokenizer) dollarTag() string {
	s := t.src[t.pos:]
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '$':
			return s[:i+1]
		case c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z'):
		case '0' <= c && c <= '9' && i > 1:
		default:
			return ""
		}
	}

	return ""
}

func (t *Tokenizer) dollarQuoted(tag string) Token {
	body := t.pos + len(tag)
	i := strings.Index(t.src[body:], tag)
	if i < 0 {
		return t.emit(Quoted, len(t.src), true)
	}

	return t.emit(Quoted, body+i+len(tag), false)
}

func (t *Tokenizer) quoted(open byte) Token {
	closing := open
	if open == '[' {
		closing = ']'
	}
	backslash := t.backslashEscapes(open)

	i := t.pos + 1
	for i < len(t.src) {
		c := t.src[i]
		switch {
		case backslash && c == '\\':
			i += 2
		case c == closing:
			// a doubled closing quote is part of the literal
			if i+1 < len(t.src) && t.src[i+1] == closing {
				i += 2
				continue
			}
			return t.emit(Quoted, i+1, false)
		default:
			i++
		}
	}

	return t.emit(Quoted, len(t.src), true)
}

func (t *Tokenizer) backslashEscapes(open byte) bool {
	switch t.syntax.Backslash {
	case EscapeAlways:
		return open == '\'' || open == '"'
	case EscapePrefixed:
		return open == '\'' && t.afterWord() && (t.last.Text == "E" || t.last.Text == "e")
	default:
		return false
	}
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
