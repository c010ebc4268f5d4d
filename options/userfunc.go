package options

import "github.com/TheSnook/mediaspider/callable"

// UserFunc is how a structure node option is supplied as a native Go
// function rather than a literal string/regex/bool, for configurations
// built directly in Go rather than decoded from YAML (YAML scalars can
// only ever produce the literal forms). Names declares which Kit fields
// Fn reads; Variadic marks a function that accepts the whole Kit
// regardless of name.
type UserFunc[T any] struct {
	Source   string
	Names    []string
	Variadic bool
	Fn       func(callable.Kit) (T, error)
}
