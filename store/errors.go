package store

import (
	"fmt"
)

// IOError reports that the backing file or its directory is not accessible.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s '%s': %s", e.Op, e.Path, e.Err.Error())
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError reports a numeric field that could not be converted. Under the
// strict policy it aborts the whole load.
type ParseError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: parse %s '%s': %s", e.Line, e.Field, e.Value, e.Err.Error())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ShapeError reports a structurally invalid line: wrong field count or an
// over-length text field. The line is dropped and the load continues.
type ShapeError struct {
	Line   int
	Reason string
	Raw    string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}
