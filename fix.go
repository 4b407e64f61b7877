package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// fixFixtures parses the test output named by cfg and updates the fixture of
// every failing test. It only returns an error if the test output cannot be
// read; fixture problems are reported and counted in the Summary.
func fixFixtures(cfg Config, rep *reporter) (Summary, error) {
	var sum Summary

	f, err := os.Open(cfg.LogFile)
	if errors.Is(err, fs.ErrNotExist) {
		return sum, &NotFoundError{Path: cfg.LogFile, Err: err}
	} else if err != nil {
		return sum, err
	}
	defer f.Close()

	rep.parsing()
	failures, err := parseFailures(f)
	if err != nil {
		return sum, err
	}
	rep.found(len(failures))

	for _, failure := range failures {
		name := failure.Name + ".xml"
		path := filepath.Join(cfg.FixtureDir, name)

		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			rep.missing(name)
			sum.Missing++
			continue
		}

		if err := updateFixture(path, failure.Actual, failure.Mapping); err != nil {
			rep.failed(name, err)
			sum.Errors++
			continue
		}
		rep.updated(name)
		sum.Updated++
	}

	rep.summary(sum)
	return sum, nil
}
