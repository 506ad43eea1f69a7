// Copyright (C) 2026 The jsonwell authors. All Rights Reserved.

package jsonwell

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// DefaultMaxDepth is the nesting depth limit applied to a Parser unless the
// caller overrides it with SetMaxDepth.
const DefaultMaxDepth = 1000

// Validate reports whether input is a well-formed JSON document: exactly one
// object or array value followed by the end of the input. Validate never
// panics; any lexical or syntactic violation yields false.
func Validate(input string) bool { return Check(input) == nil }

// Check verifies that input is a well-formed JSON document and reports nil if
// so. Otherwise it returns an error of concrete type [*SyntaxError] describing
// the first violation found.
func Check(input string) error {
	return NewParser(strings.NewReader(input)).Validate()
}

// A Parser checks a token stream against the JSON grammar by recursive
// descent, keeping a single token of lookahead. A Parser validates exactly
// one document and is not reused; each Validate or Check call constructs a
// fresh one.
type Parser struct {
	sc  *Scanner
	tok Token // the buffered lookahead token

	depth    int // current object/array nesting depth
	maxDepth int
}

// NewParser constructs a Parser that consumes input from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{sc: NewScanner(r), maxDepth: DefaultMaxDepth}
}

// SetMaxDepth sets the maximum permitted nesting depth of objects and arrays.
// Input nested more deeply fails validation rather than growing the call
// stack without bound. If n <= 0 the depth check is disabled.
func (p *Parser) SetMaxDepth(n int) { p.maxDepth = n }

// Validate consumes the parser's input and reports nil if it contains exactly
// one well-formed document: an object or array value followed by the end of
// the input. In case of a violation the returned error has concrete type
// [*SyntaxError].
func (p *Parser) Validate() (err error) {
	defer p.recoverSyntaxError(&err)

	p.advance() // prime the lookahead
	switch p.peek() {
	case LBrace:
		p.parseObject()
	case LSquare:
		p.parseArray()
	default:
		p.syntaxError(nil, "document root must be an object or array, got %v", p.peek())
	}
	p.expect(EOF)
	return nil
}

// parseValue consumes a single value of any type.
// Precondition: the lookahead holds the first token of the value.
func (p *Parser) parseValue() {
	switch tok := p.peek(); tok {
	case LBrace:
		p.parseObject()
	case LSquare:
		p.parseArray()
	case Integer, Number, String, True, False, Null:
		p.advance()
	default:
		p.syntaxError(nil, "unexpected %v at value position", tok)
	}
}

// parseObject consumes an object: "{" followed by zero or more key:value
// members separated by commas, then "}". A comma must introduce another
// member, so a trailing comma before "}" is a syntax error.
func (p *Parser) parseObject() {
	p.push()
	p.expect(LBrace)
	if p.peek() == RBrace {
		p.advance()
		p.pop()
		return // empty object
	}
	for {
		// Parse a single member: "key": value
		p.expect(String)
		p.expect(Colon)
		p.parseValue()

		// Check whether we have more members (",") or are done ("}").
		if p.expect(RBrace, Comma) == RBrace {
			p.pop()
			return // end of object
		}
	}
}

// parseArray consumes an array: "[" followed by zero or more comma-separated
// values, then "]", with the same no-trailing-comma rule as objects.
func (p *Parser) parseArray() {
	p.push()
	p.expect(LSquare)
	if p.peek() == RSquare {
		p.advance()
		p.pop()
		return // empty array
	}
	for {
		p.parseValue()
		if p.expect(RSquare, Comma) == RSquare {
			p.pop()
			return // end of array
		}
	}
}

// peek returns the buffered lookahead token without consuming it.
func (p *Parser) peek() Token { return p.tok }

// advance replaces the lookahead with the next token from the scanner.
// Exhausted input becomes the EOF token; scanner errors abort the parse.
func (p *Parser) advance() {
	if err := p.sc.Next(); err == io.EOF {
		p.tok = EOF
	} else if err != nil {
		p.syntaxError(err, "%v", err)
	} else {
		p.tok = p.sc.Token()
	}
}

// expect is the sole point of token consumption in the grammar rules: it
// checks the lookahead against the permitted tokens, aborts the parse with an
// expected-vs-got diagnostic on a mismatch, and otherwise advances past the
// matched token and returns it.
func (p *Parser) expect(tokens ...Token) Token {
	tok := p.peek()
	if !slices.Contains(tokens, tok) {
		p.syntaxError(nil, "%v", tokLabel(tokens, tok))
	}
	p.advance()
	return tok
}

func (p *Parser) push() {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		p.syntaxError(nil, "nesting too deep (more than %d levels)", p.maxDepth)
	}
}

func (p *Parser) pop() { p.depth-- }

func (p *Parser) recoverSyntaxError(errp *error) {
	if v := recover(); v != nil {
		serr, ok := v.(*SyntaxError)
		if !ok {
			panic(v)
		}
		*errp = serr
	}
}

func (p *Parser) syntaxError(err error, msg string, args ...any) {
	panic(&SyntaxError{
		Location: p.sc.Location().First,
		Message:  fmt.Sprintf(msg, args...),
		err:      err,
	})
}

// tokLabel makes a human-readable summary string for the given token types.
func tokLabel(tokens []Token, got any) string {
	if len(tokens) == 0 {
		return fmt.Sprint(got)
	}
	var exp string
	if len(tokens) == 1 {
		exp = tokens[0].String()
	} else {
		last := len(tokens) - 1
		ss := make([]string, len(tokens)-1)
		for i, tok := range tokens[:last] {
			ss[i] = tok.String()
		}
		exp = strings.Join(ss, ", ") + " or " + tokens[last].String()
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Location LineCol
	Message  string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
