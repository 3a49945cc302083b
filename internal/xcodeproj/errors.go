package xcodeproj

import (
	"errors"
	"fmt"
)

var (
	ErrNoModules          = errors.New("no modules to generate a project for")
	ErrOnlyForeignModule  = errors.New("project contains only foreign modules")
	ErrInvalidProjectName = errors.New("invalid project name")
	ErrInvalidModule      = errors.New("invalid module")
	ErrDuplicateModule    = errors.New("duplicate module name")
	ErrInvalidProduct     = errors.New("invalid product")
	ErrDuplicateProduct   = errors.New("duplicate product name")
)

// OnlyForeignModuleError names the foreign module that left the native build
// system with nothing to compile.
type OnlyForeignModuleError struct {
	Name string
}

func (e *OnlyForeignModuleError) Error() string {
	return fmt.Sprintf("%s: %q", ErrOnlyForeignModule.Error(), e.Name)
}

func (e *OnlyForeignModuleError) Unwrap() error { return ErrOnlyForeignModule }
