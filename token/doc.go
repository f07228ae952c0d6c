// Package token provides HCL tokenization support.
//
// The Lexer reads a forward byte stream and produces Tokens one at a
// time. Context-sensitive lexemes (signed numbers vs subtraction,
// interpolated strings, heredocs) are resolved here so the parser can
// work with one token of lookahead.
package token
