// Copyright (C) 2026 The jsonwell authors. All Rights Reserved.

package jsonwell

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jsonwell/jsonwell/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return escape.Quote(mem.S(src)).StringCopy() }

// Unquote decodes a JSON string value.  Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error for an incomplete escape sequence.
func Unquote(src []byte) ([]byte, error) {
	n := len(src)
	if n < 2 || src[0] != '"' || src[n-1] != '"' {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.B(src[1 : n-1]))
}

// Unquoted returns the decoded payload of the current token, which must be of
// type String.
func (s *Scanner) Unquoted() ([]byte, error) {
	if s.tok != String {
		return nil, fmt.Errorf("token is %v, not %v", s.tok, String)
	}
	return Unquote(s.Text())
}

// Int64 returns the numeric payload of the current token as an int64.
// The token must be of type Integer.
func (s *Scanner) Int64() (int64, error) {
	if s.tok != Integer {
		return 0, fmt.Errorf("token is %v, not %v", s.tok, Integer)
	}
	return strconv.ParseInt(s.textString(), 10, 64)
}

// Float64 returns the numeric payload of the current token as a float64.
// The token must be of type Integer or Number.
func (s *Scanner) Float64() (float64, error) {
	if s.tok != Integer && s.tok != Number {
		return 0, fmt.Errorf("token is %v, not a number", s.tok)
	}
	return strconv.ParseFloat(s.textString(), 64)
}

func (s *Scanner) textString() string { return s.buf.String() }
