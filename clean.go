package main

import "strings"

// cleanMappingLines drops the lines of a mapping that hold nothing but a
// comma. They are separators left behind by the test runner's list output.
func cleanMappingLines(mapping string) string {
	lines := strings.Split(mapping, "\n")
	cleaned := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) == "," {
			continue
		}
		cleaned = append(cleaned, line)
	}
	return strings.Join(cleaned, "\n")
}
