// Package mserrors defines the three error kinds the site-configuration
// evaluator can raise: a bad configuration, a failed content assertion,
// or a user-supplied component that misbehaved at runtime.
package mserrors

import (
	"fmt"
	"strings"
)

// ConfigError reports a structural or semantic problem with a site
// configuration, discovered while compiling it or, when no url matcher
// accepts the start URL, while planning the start response. It is
// unrecoverable: the caller must fix the configuration.
type ConfigError struct {
	Message string
	Source  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s:\n%s", e.Message, indent(e.Source))
}

// AssertionFailedError reports that a structure node's assert option
// returned false (or its XPath's boolean(...) evaluated to "0").
type AssertionFailedError struct {
	Source string
}

func (e *AssertionFailedError) Error() string {
	return fmt.Sprintf("assertion failed:\n%s", indent(e.Source))
}

// RuntimeComponentError wraps a failure from a user-supplied callable:
// it returned callable's nil-result sentinel (callable.ErrNilResult), or
// it returned an error of its own.
type RuntimeComponentError struct {
	Source string
	Err    error
}

func (e *RuntimeComponentError) Error() string {
	return fmt.Sprintf("component failed (%v):\n%s", e.Err, indent(e.Source))
}

func (e *RuntimeComponentError) Unwrap() error { return e.Err }

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "    " + l
	}
	return strings.Join(lines, "\n")
}
