package token

import (
	"bufio"
	"io"
)

// Lexer produces HCL tokens from a forward byte stream. It keeps a
// 1-based line counter and a 0-based column counter; the column resets
// on newline. After the input is exhausted it yields TEndOfFile
// indefinitely.
type Lexer struct {
	br   *bufio.Reader
	line int
	col  int

	// pathMode makes '.' terminate identifiers so dotted-path
	// strings split into Ident/Period sequences. In document mode a
	// dot continues the identifier and "foo.bar" is one token.
	pathMode bool
}

func NewLexer(r io.Reader) *Lexer {
	return &Lexer{br: bufio.NewReader(r), line: 1}
}

// NewPathLexer returns a lexer for dotted-path strings such as the
// keys given to Find and Set.
func NewPathLexer(r io.Reader) *Lexer {
	return &Lexer{br: bufio.NewReader(r), line: 1, pathMode: true}
}

func (l *Lexer) Line() int { return l.line }
func (l *Lexer) Col() int  { return l.col }

func (l *Lexer) current() (byte, bool) {
	d, err := l.br.Peek(1)
	if err != nil {
		return 0, false
	}
	return d[0], true
}

func (l *Lexer) next() {
	c, err := l.br.ReadByte()
	if err != nil {
		return
	}
	if c == '\n' {
		l.col = 0
		l.line++
	} else {
		l.col++
	}
}

func (l *Lexer) consume(c byte) bool {
	x, ok := l.current()
	if !ok || x != c {
		return false
	}
	l.next()
	return true
}

// SkipBOM consumes a UTF-8 byte order mark if present. A partial mark
// (0xEF not followed by 0xBB 0xBF) returns false.
func (l *Lexer) SkipBOM() bool {
	c, ok := l.current()
	if !ok || c != 0xEF {
		return true
	}
	l.next()
	if !l.consume(0xBB) {
		return false
	}
	return l.consume(0xBF)
}

func (l *Lexer) skipUntilNewline() {
	for {
		c, ok := l.current()
		if !ok || c == '\n' {
			return
		}
		l.next()
	}
}

func illegal(msg string) Token {
	return Token{Type: TIllegal, Str: msg}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isLetter treats every byte with the high bit set as a letter so that
// multi-byte UTF-8 identifiers pass through whole.
func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c >= 0x80
}

func isIdentByte(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_' || c == '-' || c == '.'
}

// Next returns the next token.
func (l *Lexer) Next() Token {
	for {
		c, ok := l.current()
		if !ok {
			return Token{Type: TEndOfFile}
		}
		if isWhitespace(c) {
			l.next()
			continue
		}
		if c == '#' {
			l.skipUntilNewline()
			continue
		}
		switch c {
		case '=':
			l.next()
			return Token{Type: TAssign, Str: "="}
		case '+':
			l.next()
			return Token{Type: TAdd, Str: "+"}
		case '-':
			l.next()
			if c, ok := l.current(); ok && isDigit(c) {
				return l.nextNumber(false, true)
			}
			return Token{Type: TSub, Str: "-"}
		case '{':
			l.next()
			return Token{Type: TLBrace, Str: "{"}
		case '}':
			l.next()
			return Token{Type: TRBrace, Str: "}"}
		case '[':
			l.next()
			return Token{Type: TLBrack, Str: "["}
		case ']':
			l.next()
			return Token{Type: TRBrack, Str: "]"}
		case ',':
			l.next()
			return Token{Type: TComma, Str: ","}
		case '.':
			l.next()
			if c, ok := l.current(); ok && isDigit(c) {
				return l.nextNumber(true, false)
			}
			return Token{Type: TPeriod, Str: "."}
		case '"':
			return l.nextStringDoubleQuote()
		case '\'':
			return l.nextStringSingleQuote()
		case '<':
			return l.nextHeredoc()
		case '/':
			l.next()
			if c, ok := l.current(); ok && c == '/' {
				l.skipUntilNewline()
				continue
			}
			return illegal("unterminated comment")
		default:
			return l.nextValueToken()
		}
	}
}

func (l *Lexer) nextValueToken() Token {
	c, ok := l.current()
	if ok && (isLetter(c) || c == '_') {
		var s []byte
		s = append(s, c)
		l.next()
		for {
			c, ok := l.current()
			if !ok || !isIdentByte(c) || l.pathMode && c == '.' {
				break
			}
			s = append(s, c)
			l.next()
		}
		switch string(s) {
		case "true":
			return Token{Type: TBool, Bool: true}
		case "false":
			return Token{Type: TBool, Bool: false}
		}
		return Token{Type: TIdent, Str: string(s)}
	}
	return l.nextNumber(false, false)
}
