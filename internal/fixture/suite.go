// Copyright (C) 2026 The jsonwell authors. All Rights Reserved.

// Package fixture runs directories of JSON conformance fixtures.
//
// A fixture is a file containing one candidate document. The expected verdict
// is encoded in the file name: a name beginning with "pass" means the
// document must validate, any other name means it must be rejected.
package fixture

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// A Result records the outcome of checking a single fixture.
type Result struct {
	Name      string // base name of the fixture file
	WantValid bool   // the verdict encoded in the file name
	GotValid  bool   // the verdict reported by the checker
}

// OK reports whether the checker agreed with the expected verdict.
func (r Result) OK() bool { return r.WantValid == r.GotValid }

// A Report aggregates the results of a fixture suite run.
type Report struct {
	Results []Result
	Passed  int // fixtures whose verdict matched
	Failed  int // fixtures whose verdict did not match
}

// Total returns the number of fixtures checked.
func (r Report) Total() int { return len(r.Results) }

// Percent returns the pass rate as a percentage, or 0 for an empty report.
func (r Report) Percent() float64 {
	if r.Total() == 0 {
		return 0
	}
	return 100 * float64(r.Passed) / float64(r.Total())
}

// Run checks every regular file in dir with check and reports the tally.
// Fixtures are visited in lexical order. It is an error for dir to contain
// no fixtures.
func Run(dir string, check func(string) bool) (Report, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Report{}, err
	}

	var report Report
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return report, err
		}
		res := Result{
			Name:      e.Name(),
			WantValid: strings.HasPrefix(e.Name(), "pass"),
			GotValid:  check(string(data)),
		}
		if res.OK() {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, res)
	}
	if report.Total() == 0 {
		return report, fmt.Errorf("no fixtures found in %s", dir)
	}
	return report, nil
}
