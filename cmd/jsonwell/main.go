// Copyright (C) 2026 The jsonwell authors. All Rights Reserved.

// Program jsonwell checks documents for JSON well-formedness.
//
// Usage:
//
//	jsonwell check '{"a": 1}'      # validate a document given as an argument
//	jsonwell check --file doc.json # validate the contents of a file
//	jsonwell suite testdata/suite  # run a directory of pass*/fail* fixtures
//
// The check command exits 0 for a valid document and 1 otherwise. The suite
// command exits 0 only if every fixture verdict matches its expectation.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/jsonwell/jsonwell"
	"github.com/jsonwell/jsonwell/internal/fixture"
)

var cli struct {
	Check checkCmd `cmd:"" default:"withargs" help:"Validate a single JSON document."`
	Suite suiteCmd `cmd:"" help:"Validate a directory of fixture files."`
}

// errRejected distinguishes a failed verdict, already reported to the user,
// from an internal error that still needs printing.
var errRejected = errors.New("document rejected")

type checkCmd struct {
	Doc  string `arg:"" optional:"" default:"{}" help:"Document text to validate."`
	File string `help:"Read the document from this file instead." short:"f" type:"existingfile"`
}

func (c *checkCmd) Run() error {
	doc := c.Doc
	if c.File != "" {
		data, err := os.ReadFile(c.File)
		if err != nil {
			return err
		}
		doc = string(data)
	}
	if err := jsonwell.Check(doc); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Println("Invalid JSON")
		return errRejected
	}
	fmt.Println("Valid JSON")
	return nil
}

type suiteCmd struct {
	Dir     string `arg:"" help:"Directory of fixture files." type:"existingdir"`
	Verbose bool   `help:"Print a verdict line for every fixture." short:"v"`
}

func (c *suiteCmd) Run() error {
	report, err := fixture.Run(c.Dir, jsonwell.Validate)
	if err != nil {
		return err
	}
	for _, r := range report.Results {
		if r.OK() && !c.Verbose {
			continue
		}
		status := "ok"
		if !r.OK() {
			status = "MISMATCH"
		}
		fmt.Printf("%-10s %s (want valid=%v, got valid=%v)\n", status, r.Name, r.WantValid, r.GotValid)
	}
	fmt.Printf("%d/%d fixtures passed (%.1f%%)\n", report.Passed, report.Total(), report.Percent())
	if report.Failed > 0 {
		return errRejected
	}
	return nil
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("jsonwell"),
		kong.Description("A strict JSON well-formedness checker."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintln(os.Stderr, "jsonwell:", err)
		}
		os.Exit(1)
	}
}
