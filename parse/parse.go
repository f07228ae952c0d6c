// Package parse provides HCL parsing support.
package parse

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/microhcl/hcl-format/go-hcl/debug"
	"github.com/microhcl/hcl-format/go-hcl/ir"
	"github.com/microhcl/hcl-format/go-hcl/token"
)

// Parse reads one HCL document from r. The result is always an
// object; on failure the value is nil and the error carries the line
// number of the first problem found.
func Parse(r io.Reader) (*ir.Value, error) {
	p := newParser(r)
	v := p.parse()
	if p.errorReason != "" {
		return nil, fmt.Errorf("%w: %s", ErrParse, p.errorReason)
	}
	return v, nil
}

func ParseBytes(d []byte) (*ir.Value, error) {
	return Parse(bytes.NewReader(d))
}

func ParseFile(path string) (*ir.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

type parser struct {
	lx          *token.Lexer
	tok         token.Token
	errorReason string
}

func newParser(r io.Reader) *parser {
	p := &parser{lx: token.NewLexer(r)}
	if !p.lx.SkipBOM() {
		p.tok = token.Token{Type: token.TIllegal, Str: "invalid UTF8 BOM"}
		return p
	}
	p.nextToken()
	return p
}

func (p *parser) nextToken() {
	p.tok = p.lx.Next()
	if debug.Parse() {
		debug.Logf("parse: %s\n", p.tok.Info())
	}
}

// addError records the first error only; followups are cascade noise
// and dropped.
func (p *parser) addError(reason string) {
	if p.errorReason != "" {
		return
	}
	p.errorReason = fmt.Sprintf("line %d: %s", p.lx.Line(), reason)
}

func (p *parser) parse() *ir.Value {
	if p.tok.Type == token.TIllegal {
		p.addError(p.tok.Str)
		return ir.Null()
	}
	return p.parseObjectList(false)
}

// parseObjectList parses a sequence of object items. At the top level
// the sequence runs to end of input; nested it stops at the closing
// brace, which is left in the current token.
func (p *parser) parseObjectList(nested bool) *ir.Value {
	node := ir.NewObject()
	for {
		if p.tok.Type == token.TEndOfFile {
			break
		}
		if nested && p.tok.Type == token.TRBrace {
			break
		}

		keys, ok := p.parseKeys()
		if !ok {
			return ir.Null()
		}

		v, ok := p.parseObjectItem()
		if !ok {
			return ir.Null()
		}

		p.nextToken()

		// object lists can be optionally comma-delimited e.g. when a
		// list of maps is being expressed, so a comma is allowed here
		// - it's simply consumed
		if p.tok.Type == token.TComma {
			p.nextToken()
		}

		if err := node.MergeObjects(keys, v); err != nil {
			p.addError(err.Error())
			return ir.Null()
		}
	}
	return node
}

// parseKeys collects the key sequence that starts a statement and
// stops on '=' or '{'. One key at most may precede '=', one or more
// may precede '{'.
func (p *parser) parseKeys() ([]string, bool) {
	var keys []string
	for {
		switch p.tok.Type {
		case token.TEndOfFile:
			p.addError("end of file reached")
			return nil, false
		case token.TAssign:
			if len(keys) > 1 {
				p.addError("nested object expected: LBRACE got: =")
				return nil, false
			}
			if len(keys) == 0 {
				p.addError("expected to find at least one object key")
				return nil, false
			}
			return keys, true
		case token.TLBrace:
			if len(keys) == 0 {
				p.addError("expected IDENT | STRING got: LBRACE")
				return nil, false
			}
			return keys, true
		case token.TIdent, token.TString:
			keys = append(keys, p.tok.Str)
			p.nextToken()
		case token.TIllegal:
			p.addError(p.tok.Str)
			return nil, false
		default:
			p.addError("expected IDENT | STRING | ASSIGN | LBRACE got: " + p.tok.Type.String())
			return nil, false
		}
	}
}

func (p *parser) parseObjectItem() (*ir.Value, bool) {
	switch p.tok.Type {
	case token.TAssign:
		return p.parseObject()
	case token.TLBrace:
		return p.parseObjectType()
	default:
		p.addError("expected start of object ('{') or assignment ('=')")
		return nil, false
	}
}

// parseObject parses the right hand side of an assignment.
func (p *parser) parseObject() (*ir.Value, bool) {
	p.nextToken()
	switch p.tok.Type {
	case token.TNumber, token.TFloat, token.TBool, token.TString, token.THeredoc, token.TIdent:
		return p.parseLiteralType()
	case token.TLBrace:
		return p.parseObjectType()
	case token.TLBrack:
		return p.parseListType()
	case token.TIllegal:
		p.addError(p.tok.Str)
		return nil, false
	case token.TEndOfFile:
		p.addError("reached end of file")
		return nil, false
	default:
		p.addError("unknown token: " + p.tok.Type.String())
		return nil, false
	}
}

// parseObjectType parses a brace-delimited nested object list.
func (p *parser) parseObjectType() (*ir.Value, bool) {
	if p.tok.Type != token.TLBrace {
		p.addError("object list did not start with LBRACE")
		return nil, false
	}
	p.nextToken()
	result := p.parseObjectList(true)
	if p.errorReason != "" {
		return nil, false
	}
	if p.tok.Type != token.TRBrace {
		p.addError("object expected closing RBRACE got: " + p.tok.Type.String())
		return nil, false
	}
	return result, true
}

// parseListType parses a bracket-delimited list. A trailing comma is
// allowed; two adjacent values without a comma are not.
func (p *parser) parseListType() (*ir.Value, bool) {
	l := ir.NewList()
	needComma := false
	for {
		p.nextToken()

		if needComma {
			switch p.tok.Type {
			case token.TComma, token.TRBrack:
			default:
				p.addError("error parsing list, expected comma or list end, got: " + p.tok.Type.String())
				return nil, false
			}
		}

		switch p.tok.Type {
		case token.TBool, token.TNumber, token.TFloat, token.TString, token.THeredoc, token.TIdent:
			lit, ok := p.parseLiteralType()
			if !ok {
				return nil, false
			}
			l.List = append(l.List, lit)
			needComma = true
		case token.TComma:
			needComma = false
		case token.TLBrace:
			obj, ok := p.parseObjectType()
			if !ok {
				return nil, false
			}
			l.List = append(l.List, obj)
			needComma = true
		case token.TLBrack:
			nested, ok := p.parseListType()
			if !ok {
				return nil, false
			}
			l.List = append(l.List, nested)
			needComma = true
		case token.TRBrack:
			return l, true
		case token.TIllegal:
			p.addError(p.tok.Str)
			return nil, false
		default:
			p.addError("unexpected token while parsing list: " + p.tok.Type.String())
			return nil, false
		}
	}
}

func (p *parser) parseLiteralType() (*ir.Value, bool) {
	switch p.tok.Type {
	case token.TString, token.THeredoc, token.TIdent:
		return ir.FromString(p.tok.Str), true
	case token.TBool:
		return ir.FromBool(p.tok.Bool), true
	case token.TNumber:
		return ir.FromInt(p.tok.Int), true
	case token.TFloat:
		return ir.FromDouble(p.tok.Float), true
	case token.TIllegal:
		p.addError(p.tok.Str)
		return nil, false
	default:
		p.addError("unexpected token")
		return nil, false
	}
}
