// Copyright (C) 2026 The jsonwell authors. All Rights Reserved.

// Package jsonwell implements a strict JSON well-formedness checker.
//
// # Validating
//
// The Validate function reports whether a string is a syntactically
// well-formed JSON document, meaning exactly one object or array value
// followed by the end of the input:
//
//	if jsonwell.Validate(`{"a": 1}`) {
//	   log.Print("well-formed")
//	}
//
// Validation constructs no value tree: the input is tokenized and checked
// against the grammar, and the only result is the verdict. To obtain a
// diagnostic for a rejected document, use Check, which returns nil for a
// well-formed document and otherwise an error of concrete type
// [*SyntaxError]:
//
//	if err := jsonwell.Check(`[1, 2,]`); err != nil {
//	   log.Printf("Rejected: %v", err)
//	}
//
// Callers that need to read from a stream or to adjust the nesting depth
// limit construct a Parser directly:
//
//	p := jsonwell.NewParser(input)
//	p.SetMaxDepth(64)
//	err := p.Validate()
//
// A Parser checks exactly one document and is discarded afterward; no state
// is shared between calls to Validate or Check.
//
// # Scanning
//
// The Scanner type implements the lexical layer. Construct a scanner from an
// io.Reader and call its Next method to iterate over the stream. Next
// advances to the next input token and returns nil, or reports an error:
//
//	s := jsonwell.NewScanner(input)
//	for s.Next() == nil {
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// Next returns io.EOF when the input has been fully consumed, and keeps
// returning io.EOF on subsequent calls. Any other error indicates an I/O or
// lexical error in the input:
//
//	if s.Err() != io.EOF {
//	   log.Fatalf("Scanning failed: %v", s.Err())
//	}
//
// The scanner does not interpret grammar: it classifies one token per call
// and exposes the undecoded text of the current token via Text. The payload
// of a scalar token can be recovered with the Unquoted, Int64, and Float64
// methods.
//
// # Grammar notes
//
// The checker accepts the JSON grammar with two deliberate strictures: the
// root value must be an object or an array (bare scalars are rejected at the
// root), and trailing commas in objects and arrays are syntax errors.
// Duplicate object keys are syntactically accepted. Nesting depth is bounded
// by DefaultMaxDepth unless configured otherwise.
package jsonwell
