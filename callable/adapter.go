package callable

import (
	"errors"

	"github.com/TheSnook/mediaspider/mserrors"
)

// ErrNilResult is the sentinel a user-supplied function returns to
// signal "no value produced": like any other error it returns, Invoke
// reports it as a RuntimeComponentError rather than a silent no-op.
var ErrNilResult = errors.New("callable: component returned no result")

// Adapter wraps one compiled component of a structure node: a function
// from a Kit to a typed result, together with the metadata needed to
// dispatch it correctly (which Kit fields it reads, and whether it
// needs the fetched response at all).
type Adapter[T any] struct {
	source          string
	acceptedNames   map[string]bool
	acceptsVariadic bool
	needsResponse   bool
	fn              func(Kit) (T, error)
}

// New builds an Adapter. acceptedNames lists the Kit fields (by name:
// "url", "link_el", "url_match", "res", "content_node") that fn
// actually consumes; acceptsVariadic marks a component declared to
// accept any of them. canAcceptResponse is the option schema's own
// declaration of whether its slot is ever allowed to see the response
// (e.g. an as_url converter never is); NeedsResponse is only true when
// both that is granted and the accepted names explicitly ask for "res"
// or "content_node" — a variadic component that never names either does
// not by itself force the response to be fetched.
func New[T any](source string, acceptedNames []string, acceptsVariadic, canAcceptResponse bool, fn func(Kit) (T, error)) *Adapter[T] {
	names := make(map[string]bool, len(acceptedNames))
	for _, n := range acceptedNames {
		names[n] = true
	}
	needsResponse := canAcceptResponse && (names["res"] || names["content_node"])
	return &Adapter[T]{
		source:          source,
		acceptedNames:   names,
		acceptsVariadic: acceptsVariadic,
		needsResponse:   needsResponse,
		fn:              fn,
	}
}

// NeedsResponse reports whether this component must observe the
// response to produce its result.
func (a *Adapter[T]) NeedsResponse() bool { return a.needsResponse }

// AcceptsName reports whether this component declared the given Kit
// field name as one it consumes.
func (a *Adapter[T]) AcceptsName(name string) bool {
	return a.acceptsVariadic || a.acceptedNames[name]
}

// SourceString is a textual reproduction of the component, for
// diagnostic messages.
func (a *Adapter[T]) SourceString() string { return a.source }

// Invoke calls the wrapped function with kit, wrapping any sentinel nil
// result or returned error as a RuntimeComponentError.
func (a *Adapter[T]) Invoke(kit Kit) (T, error) {
	result, err := a.fn(kit)
	if err != nil {
		var zero T
		return zero, &mserrors.RuntimeComponentError{Source: a.source, Err: err}
	}
	return result, nil
}

// ValidateNames checks that every name a component declared falls
// within the permitted subset for its option slot: a callable declaring
// required parameters outside that set fails validation.
func ValidateNames(source string, names []string, variadic bool, permitted map[string]bool) error {
	if variadic {
		return nil
	}
	for _, n := range names {
		if !permitted[n] {
			return &mserrors.ConfigError{
				Message: "unsupported argument name \"" + n + "\" for this option",
				Source:  source,
			}
		}
	}
	return nil
}
