package main

import "fmt"

// NotFoundError is returned when the test output or a fixture does not exist.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: not found", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a fixture is not a well-formed XML document.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing fixture: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// WriteError is returned when an updated fixture cannot be written back.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing fixture: %v", e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
