// Copyright (C) 2026 The jsonwell authors. All Rights Reserved.

package jsonwell

import (
	"strings"
	"testing"

	"github.com/creachadair/mds/mtest"
)

// Grammar rule violations unwind as a *SyntaxError panic that must not
// escape the Validate boundary.
func TestSyntaxErrorPanicDiscipline(t *testing.T) {
	t.Run("RulesPanic", func(t *testing.T) {
		p := NewParser(strings.NewReader("{"))
		v := mtest.MustPanic(t, func() { p.syntaxError(nil, "induced failure") })
		serr, ok := v.(*SyntaxError)
		if !ok {
			t.Fatalf("Panic value has type %T, want *SyntaxError", v)
		}
		if !strings.Contains(serr.Error(), "induced failure") {
			t.Errorf("Panic message: got %q, want it to mention the failure", serr.Error())
		}
	})

	t.Run("ExpectPanics", func(t *testing.T) {
		p := NewParser(strings.NewReader("[]"))
		p.advance()
		v := mtest.MustPanic(t, func() { p.expect(RBrace) })
		if _, ok := v.(*SyntaxError); !ok {
			t.Fatalf("Panic value has type %T, want *SyntaxError", v)
		}
	})

	t.Run("ValidateRecovers", func(t *testing.T) {
		// The same violations must surface as plain errors from Validate.
		for _, doc := range []string{"{", "[}", `{"a"}`, "", "@"} {
			p := NewParser(strings.NewReader(doc))
			if err := p.Validate(); err == nil {
				t.Errorf("Validate %#q: got nil, want error", doc)
			}
		}
	})

	t.Run("ForeignPanicEscapes", func(t *testing.T) {
		// Panics that are not syntax failures are not swallowed.
		p := new(Parser)
		mtest.MustPanic(t, func() {
			defer p.recoverSyntaxError(new(error))
			panic("not a syntax error")
		})
	})
}
