package main

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Failure holds the sections of one failure block in the test output.
type Failure struct {
	Name     string
	Expected string
	Actual   string
	Mapping  string
}

var (
	failureStart    = regexp.MustCompile(`=== FAILURE: (\w+) ===\n`)
	expectedSection = regexp.MustCompile(`(?s)Expected:\n(.*?)\n---`)
	actualSection   = regexp.MustCompile(`(?s)Actual:\n(.*?)\n---`)
	mappingSection  = regexp.MustCompile(`(?s)Mapping:\n(.*)`)
)

// parseFailures reads test output and returns one Failure per test name, in
// the order the names first appear. A later block for the same test replaces
// the sections of an earlier one.
func parseFailures(input io.Reader) ([]Failure, error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return nil, fmt.Errorf("error reading test output: %w", err)
	}
	content := strings.ReplaceAll(string(data), "\r\n", "\n")

	var failures []Failure
	seen := make(map[string]int)

	pos := 0
	for pos < len(content) {
		loc := failureStart.FindStringSubmatchIndex(content[pos:])
		if loc == nil {
			break
		}
		name := content[pos+loc[2] : pos+loc[3]]
		bodyStart := pos + loc[1]

		// RE2 has no backreferences, so the END marker is matched by hand.
		endMarker := "=== END " + name + " ==="
		end := strings.Index(content[bodyStart:], endMarker)
		if end < 0 {
			// Unterminated block; resume just past this start marker.
			pos += loc[0] + 1
			continue
		}

		f := parseBlock(name, content[bodyStart:bodyStart+end])
		if i, ok := seen[name]; ok {
			failures[i] = f
		} else {
			seen[name] = len(failures)
			failures = append(failures, f)
		}
		pos = bodyStart + end + len(endMarker)
	}

	return failures, nil
}

// parseBlock extracts the labeled sections from the body of one block.
func parseBlock(name, body string) Failure {
	return Failure{
		Name:     name,
		Expected: section(expectedSection, body),
		Actual:   section(actualSection, body),
		Mapping:  section(mappingSection, body),
	}
}

func section(re *regexp.Regexp, body string) string {
	m := re.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
