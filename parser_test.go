// Copyright (C) 2026 The jsonwell authors. All Rights Reserved.

package jsonwell_test

import (
	"strings"
	"testing"

	"github.com/jsonwell/jsonwell"
	"github.com/jsonwell/jsonwell/internal/fixture"
	"github.com/tailscale/hujson"
)

var validDocs = []string{
	`{}`,
	`[]`,
	` { } `,
	"\n\t[]\r\n",
	`{"a":1}`,
	`[1,2,3]`,
	`{"v": true}`,
	`{"a":1,"a":2}`, // duplicate keys are a syntactic non-event
	`[0]`,
	`[-0]`,
	`[""]`,
	`[1e5, 1.5E-3, -0.25e+2]`,
	`["Abc", "a\tb", "\\"]`,
	`[{}]`,
	`{"empty": []}`,
	`[[[[[[[[[[]]]]]]]]]]`,
	`{"nested": [{"x": [[]]}], "s": "a\nb", "n": -0.5e+2, "t": true, "f": false, "z": null}`,
	`[true, false, null]`,
	`{"deep": {"deeper": {"deepest": {}}}}`,
}

var invalidDocs = []string{
	// Bare scalars at the root
	`true`,
	`false`,
	`null`,
	`42`,
	`"a string"`,

	// Empty and whitespace-only input
	``,
	`   `,
	"\n\t",

	// Unbalanced or mismatched brackets
	`{`,
	`[`,
	`}`,
	`]`,
	`{]`,
	`[}`,
	`[1,2`,
	`{"a":1`,
	`[[]`,
	`{}}`,

	// Trailing commas
	`{"a":1,}`,
	`[1,2,]`,
	`[,1]`,
	`{,}`,
	`[1,,2]`,

	// Malformed members
	`{"a" 1}`,
	`{"a":}`,
	`{:1}`,
	`{1:2}`,
	`{"a":1 "b":2}`,
	`{"a":1;"b":2}`,

	// Trailing content after the root value
	`{} {}`,
	`[] []`,
	`{}x`,
	`[]"tail"`,

	// Lexical failures
	`{"a": tru}`,
	`{"a": 01}`,
	`['a']`,
	`["unterminated]`,
	`[1 2]`,
}

func TestValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		for _, doc := range validDocs {
			if !jsonwell.Validate(doc) {
				t.Errorf("Validate %#q: got false, want true (diagnostic: %v)",
					doc, jsonwell.Check(doc))
			}
		}
	})
	t.Run("Invalid", func(t *testing.T) {
		for _, doc := range invalidDocs {
			if jsonwell.Validate(doc) {
				t.Errorf("Validate %#q: got true, want false", doc)
			}
		}
	})
}

// Any document the checker accepts must also parse under hujson, which
// accepts a superset of the JSON grammar.
func TestValidate_hujsonOracle(t *testing.T) {
	for _, doc := range validDocs {
		if !jsonwell.Validate(doc) {
			continue // reported by TestValidate
		}
		if _, err := hujson.Parse([]byte(doc)); err != nil {
			t.Errorf("hujson rejects %#q, accepted here: %v", doc, err)
		}
	}
}

func TestValidate_idempotent(t *testing.T) {
	docs := append(append([]string(nil), validDocs...), invalidDocs...)
	for _, doc := range docs {
		first := jsonwell.Validate(doc)
		second := jsonwell.Validate(doc)
		if first != second {
			t.Errorf("Validate %#q: first call %v, second call %v", doc, first, second)
		}
	}
}

func TestCheck_diagnostics(t *testing.T) {
	tests := []struct {
		input string
		etext string // a substring the diagnostic must contain
	}{
		{`true`, "document root must be an object or array"},
		{`"str"`, "document root must be an object or array"},
		{``, "document root must be an object or array"},
		{`{"a":1,}`, `expected string, got "}"`},
		{`[1,2,]`, `unexpected "]" at value position`},
		{`[}`, `unexpected "}" at value position`},
		{`{"a" 1}`, `expected ":", got integer`},
		{`{1:2}`, `expected string, got integer`},
		{`{"a":1 "b":2}`, `expected "}" or ","`},
		{`{} {}`, `expected end of input, got "{"`},
		{`{"a": 01}`, "extra leading zeroes"},
		{`{"a": tru}`, "unknown constant"},
		{`["unterminated]`, "unterminated string"},
	}
	for _, test := range tests {
		err := jsonwell.Check(test.input)
		if err == nil {
			t.Errorf("Check %#q: got nil, want error containing %q", test.input, test.etext)
			continue
		}
		if _, ok := err.(*jsonwell.SyntaxError); !ok {
			t.Errorf("Check %#q: error has type %T, want *SyntaxError", test.input, err)
		}
		if !strings.Contains(err.Error(), test.etext) {
			t.Errorf("Check %#q: got error %v, want substring %q", test.input, err, test.etext)
		}
	}
}

func nestedArrays(depth int) string {
	return strings.Repeat("[", depth) + strings.Repeat("]", depth)
}

func TestParser_maxDepth(t *testing.T) {
	t.Run("Configured", func(t *testing.T) {
		const limit = 8

		p := jsonwell.NewParser(strings.NewReader(nestedArrays(limit)))
		p.SetMaxDepth(limit)
		if err := p.Validate(); err != nil {
			t.Errorf("Validate at depth %d: unexpected error: %v", limit, err)
		}

		p = jsonwell.NewParser(strings.NewReader(nestedArrays(limit + 1)))
		p.SetMaxDepth(limit)
		err := p.Validate()
		if err == nil {
			t.Fatalf("Validate at depth %d: got nil, want error", limit+1)
		}
		if !strings.Contains(err.Error(), "nesting too deep") {
			t.Errorf("Validate at depth %d: got %v, want nesting diagnostic", limit+1, err)
		}
	})

	t.Run("Default", func(t *testing.T) {
		if !jsonwell.Validate(nestedArrays(jsonwell.DefaultMaxDepth)) {
			t.Errorf("Validate at the default depth limit: got false, want true")
		}
		doc := nestedArrays(jsonwell.DefaultMaxDepth + 1)
		if jsonwell.Validate(doc) {
			t.Errorf("Validate beyond the default depth limit: got true, want false")
		}
		if err := jsonwell.Check(doc); err == nil || !strings.Contains(err.Error(), "nesting too deep") {
			t.Errorf("Check beyond the default depth limit: got %v, want nesting diagnostic", err)
		}
	})

	t.Run("Disabled", func(t *testing.T) {
		const depth = 2 * jsonwell.DefaultMaxDepth
		p := jsonwell.NewParser(strings.NewReader(nestedArrays(depth)))
		p.SetMaxDepth(0)
		if err := p.Validate(); err != nil {
			t.Errorf("Validate with depth check disabled: unexpected error: %v", err)
		}
	})
}

func TestValidate_fixtures(t *testing.T) {
	report, err := fixture.Run("testdata/suite", jsonwell.Validate)
	if err != nil {
		t.Fatalf("Running fixture suite: %v", err)
	}
	for _, r := range report.Results {
		if !r.OK() {
			t.Errorf("Fixture %s: got valid=%v, want valid=%v", r.Name, r.GotValid, r.WantValid)
		}
	}
	t.Logf("Fixture suite: %d/%d passed (%.1f%%)", report.Passed, report.Total(), report.Percent())
}
