package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testConfig(t *testing.T, log string) Config {
	t.Helper()
	dir := t.TempDir()
	cfg := Config{
		LogFile:    filepath.Join(dir, logFileName),
		FixtureDir: filepath.Join(dir, "fixtures"),
	}
	if err := os.MkdirAll(cfg.FixtureDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfg.LogFile, []byte(log), 0o644); err != nil {
		t.Fatal(err)
	}
	return cfg
}

const missingFixtureLog = `=== FAILURE: GhostTest ===
Actual:
boo
---
Mapping:
a -> b:
=== END GhostTest ===
`

func TestFixFixturesMissingFixture(t *testing.T) {
	cfg := testConfig(t, missingFixtureLog)

	var out bytes.Buffer
	sum, err := fixFixtures(cfg, newReporter(&out))
	if err != nil {
		t.Fatalf("fixFixtures() error = %v", err)
	}
	if diff := cmp.Diff(Summary{Missing: 1}, sum); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(out.String(), "⚠ Fixture not found: GhostTest.xml\n") {
		t.Errorf("output has no missing fixture warning:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Summary: 0 fixtures updated, 0 errors\n") {
		t.Errorf("output has no summary:\n%s", out.String())
	}

	entries, err := os.ReadDir(cfg.FixtureDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("fixture directory has %d entries, want none created", len(entries))
	}
}

func TestFixFixturesEmptyLog(t *testing.T) {
	cfg := testConfig(t, "")

	var out bytes.Buffer
	sum, err := fixFixtures(cfg, newReporter(&out))
	if err != nil {
		t.Fatalf("fixFixtures() error = %v", err)
	}
	if diff := cmp.Diff(Summary{}, sum); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}

	want := `Parsing test output...
Found 0 failing tests

============================================================
Summary: 0 fixtures updated, 0 errors
============================================================
`
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestFixFixturesCounts(t *testing.T) {
	log := `=== FAILURE: Good ===
Actual:
ok
---
=== END Good ===
=== FAILURE: Bad ===
Actual:
nope
---
=== END Bad ===
=== FAILURE: Gone ===
Actual:
x
---
=== END Gone ===
`
	cfg := testConfig(t, log)
	writeTestFile(t, filepath.Join(cfg.FixtureDir, "Good.xml"), []byte(`<test><retraced/><mapping/></test>`))
	writeTestFile(t, filepath.Join(cfg.FixtureDir, "Bad.xml"), []byte(`<test><retraced>`))

	var out bytes.Buffer
	sum, err := fixFixtures(cfg, newReporter(&out))
	if err != nil {
		t.Fatalf("fixFixtures() error = %v", err)
	}
	if diff := cmp.Diff(Summary{Updated: 1, Errors: 1, Missing: 1}, sum); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}

	for _, line := range []string{
		"Found 3 failing tests\n",
		"✓ Updated Good.xml\n",
		"✗ Error updating Bad.xml: parsing fixture: ",
		"⚠ Fixture not found: Gone.xml\n",
		"Summary: 1 fixtures updated, 1 errors\n",
	} {
		if !strings.Contains(out.String(), line) {
			t.Errorf("output missing %q:\n%s", line, out.String())
		}
	}
}

func TestFixFixturesMissingLog(t *testing.T) {
	cfg := Config{
		LogFile:    filepath.Join(t.TempDir(), logFileName),
		FixtureDir: t.TempDir(),
	}

	var out bytes.Buffer
	_, err := fixFixtures(cfg, newReporter(&out))
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("fixFixtures() error = %v, want *NotFoundError", err)
	}
	if nf.Path != cfg.LogFile {
		t.Errorf("NotFoundError.Path = %q, want %q", nf.Path, cfg.LogFile)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output before failing: %q", out.String())
	}
}

func TestReporterColor(t *testing.T) {
	plain := &reporter{w: &bytes.Buffer{}}
	if got := plain.mark(markUpdated, colorGreen); got != "✓" {
		t.Errorf("plain mark = %q, want %q", got, "✓")
	}

	colored := &reporter{w: &bytes.Buffer{}, color: true}
	if got, want := colored.mark(markError, colorRed), "\033[31m✗\033[0m"; got != want {
		t.Errorf("colored mark = %q, want %q", got, want)
	}

	if newReporter(&bytes.Buffer{}).color {
		t.Error("newReporter colors output that is not a terminal")
	}
}
