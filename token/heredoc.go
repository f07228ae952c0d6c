package token

import "strings"

func isAlnum(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// nextHeredoc scans <<ANCHOR or <<-ANCHOR multi-line strings. The body
// runs until a line whose only content is the anchor; the token value
// is the body with a trailing newline. The indented form strips a
// uniform space prefix, sized by the first body line, from every body
// line; a non-blank line with fewer leading spaces is an error.
func (l *Lexer) nextHeredoc() Token {
	if !l.consume('<') {
		return illegal("heredoc didn't start with '<<'?")
	}
	if !l.consume('<') {
		return illegal("heredoc didn't start with '<<'?")
	}

	indented := false
	if c, ok := l.current(); ok && c == '-' {
		indented = true
		l.next()
	}

	var anchor []byte
	for {
		c, ok := l.current()
		if !ok || !isAlnum(c) {
			break
		}
		anchor = append(anchor, c)
		l.next()
	}
	if len(anchor) == 0 {
		return illegal("zero-length heredoc anchor")
	}
	if c, ok := l.current(); ok && c == '\r' {
		l.next()
	}
	if c, ok := l.current(); !ok || c != '\n' {
		return illegal("invalid characters in heredoc anchor")
	}
	l.next()

	var lines []string
	closed := false
	for !closed {
		line, sawNL := l.readLine()
		if isAnchorLine(line, string(anchor), indented) {
			closed = true
			break
		}
		if !sawNL {
			break
		}
		lines = append(lines, line)
	}
	if !closed {
		return illegal("heredoc not terminated")
	}

	if indented {
		strip := 0
		if len(lines) > 0 {
			for strip < len(lines[0]) && lines[0][strip] == ' ' {
				strip++
			}
		}
		for i, line := range lines {
			if line == "" {
				continue
			}
			if len(line) < strip || strings.TrimLeft(line[:strip], " ") != "" {
				return illegal("expected heredoc to be properly indented")
			}
			lines[i] = line[strip:]
		}
	}

	return Token{Type: THeredoc, Str: strings.Join(lines, "\n") + "\n"}
}

// readLine consumes up to and including the next newline, dropping a
// CR immediately before it. sawNL is false when input ended first.
func (l *Lexer) readLine() (string, bool) {
	var line []byte
	for {
		c, ok := l.current()
		if !ok {
			return string(line), false
		}
		l.next()
		if c == '\n' {
			if n := len(line); n > 0 && line[n-1] == '\r' {
				line = line[:n-1]
			}
			return string(line), true
		}
		line = append(line, c)
	}
}

func isAnchorLine(line, anchor string, indented bool) bool {
	if indented {
		return strings.TrimLeft(line, " \t") == anchor
	}
	return line == anchor
}
