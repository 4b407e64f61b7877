package main

import (
	"os"
	"path/filepath"
	"runtime"
)

// Config holds the locations the tool reads and rewrites.
type Config struct {
	LogFile    string // test output with the failure blocks
	FixtureDir string // directory of <TestName>.xml fixtures
}

const (
	logFileName        = "test-output.txt"
	fixtureDirFromTool = "../src/fixtures/xml"
)

// DefaultConfig returns the fixed locations, relative to the tool's directory.
func DefaultConfig() (Config, error) {
	dir, err := toolDir()
	if err != nil {
		return Config{}, err
	}
	return configFor(dir), nil
}

func configFor(dir string) Config {
	return Config{
		LogFile:    filepath.Join(dir, logFileName),
		FixtureDir: filepath.Join(dir, filepath.FromSlash(fixtureDirFromTool)),
	}
}

// toolDir returns the directory holding the tool's source when it is present
// (go run, or a binary used in the checkout it was built from), and the
// directory of the executable otherwise.
func toolDir() (string, error) {
	if _, file, _, ok := runtime.Caller(0); ok && filepath.IsAbs(file) {
		dir := filepath.Dir(file)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}
