package main

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/beevik/etree"
)

const (
	retracedTag = "retraced"
	mappingTag  = "mapping"
	lineTag     = "line"
)

// updateFixture replaces the recorded retrace output and mapping of the XML
// fixture at path with output and mapping. Sections missing from the fixture
// are left alone, as is every other element.
//
// Text is stored as it appears in the test output. Escapes such as \t or \"
// are already in the form the fixtures use.
func updateFixture(path, output, mapping string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &NotFoundError{Path: path, Err: err}
	} else if err != nil {
		return err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return &ParseError{Path: path, Err: err}
	}
	root := doc.Root()
	if root == nil {
		return &ParseError{Path: path, Err: errors.New("no root element")}
	}

	if retraced := root.SelectElement(retracedTag); retraced != nil {
		replaceLines(retraced, output)
	}
	if m := root.SelectElement(mappingTag); m != nil {
		replaceLines(m, cleanMappingLines(mapping))
	}

	formatFixture(doc)
	err = writeFileAtomic(path, info.Mode().Perm(), func(w io.Writer) error {
		_, err := doc.WriteTo(w)
		return err
	})
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// replaceLines removes every <line> child of e and, unless text is empty,
// appends one <line> per line of text. Blank lines become empty elements.
func replaceLines(e *etree.Element, text string) {
	// Indentation is dropped too; formatFixture puts it back.
	for _, t := range slices.Clone(e.Child) {
		switch t := t.(type) {
		case *etree.Element:
			if t.Tag == lineTag {
				e.RemoveChild(t)
			}
		case *etree.CharData:
			if t.IsWhitespace() {
				e.RemoveChild(t)
			}
		}
	}
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		e.CreateElement(lineTag).SetText(line)
	}
}

// formatFixture sets the XML declaration, indentation and write settings
// used for every fixture, so a rewritten fixture is stable across runs.
func formatFixture(doc *etree.Document) {
	for _, t := range doc.Child {
		if p, ok := t.(*etree.ProcInst); ok && p.Target == "xml" {
			doc.RemoveChild(p)
			break
		}
	}
	doc.InsertChildAt(0, etree.NewProcInst("xml", `version="1.0" encoding="UTF-8"`))

	s := etree.NewIndentSettings()
	s.Spaces = 2
	s.PreserveLeafWhitespace = true
	doc.IndentWithSettings(s)

	doc.WriteSettings.CanonicalEndTags = true
	doc.WriteSettings.CanonicalText = true
}
