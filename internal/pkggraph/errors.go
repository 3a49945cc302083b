package pkggraph

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidGraph     = errors.New("invalid package graph")
	ErrCyclicGraph      = errors.New("cyclic dependency graph")
	ErrDuplicatePackage = errors.New("duplicate package")
)

// GraphError reports a graph construction failure. Kind is one of the
// sentinel errors above and is matched with errors.Is.
type GraphError struct {
	Kind error
	Msg  string
}

func (e *GraphError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *GraphError) Unwrap() error { return e.Kind }

func invalidf(format string, args ...any) error {
	return &GraphError{Kind: ErrInvalidGraph, Msg: fmt.Sprintf(format, args...)}
}

func cycleError(path []string) error {
	return &GraphError{Kind: ErrCyclicGraph, Msg: strings.Join(path, " -> ")}
}

func duplicateError(id string) error {
	return &GraphError{
		Kind: ErrDuplicatePackage,
		Msg:  fmt.Sprintf("%q is reachable through two different package instances", id),
	}
}
