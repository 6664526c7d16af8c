package sash

import "fmt"

// ErrorKind classifies toolkit errors. The toolkit reports every failure
// through a single typed error so hosts can switch on the kind; it never
// swallows one internally.
type ErrorKind uint8

const (
	// ErrInvalidWidgetId reports a lookup by an id not present in the tree.
	ErrInvalidWidgetId ErrorKind = iota + 1

	// ErrInvalidLayoutReference reports a layout that names a widget not yet
	// resolved in the current pass, or a nonexistent relative sibling.
	ErrInvalidLayoutReference

	// ErrUnboundTracker reports a dereference of a cleared tracker.
	ErrUnboundTracker

	// ErrMisuseBeforeSetup reports an event, draw, or serialize call made
	// before the screen was set up and activated, or a re-entrant event call.
	ErrMisuseBeforeSetup

	// ErrAdapterAbsent reports a draw attempted with no adapter in the call,
	// the screen, or the environment.
	ErrAdapterAbsent
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidWidgetId:
		return "invalid widget id"
	case ErrInvalidLayoutReference:
		return "invalid layout reference"
	case ErrUnboundTracker:
		return "unbound tracker"
	case ErrMisuseBeforeSetup:
		return "misuse before setup"
	case ErrAdapterAbsent:
		return "adapter absent"
	}
	return "unknown"
}

// Error is the single error type produced by the toolkit. Widget and Index
// carry optional context: the id of the offending widget and, for layout
// reference failures, the sibling index involved.
type Error struct {
	Kind   ErrorKind
	Widget WidgetId
	Index  int
	msg    string
}

func (e *Error) Error() string {
	s := e.Kind.String()
	if e.msg != "" {
		s += ": " + e.msg
	}
	if e.Widget.IsSet() {
		s += fmt.Sprintf(" (widget %s)", e.Widget)
	}
	return s
}

// IsKind reports whether err is a toolkit error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	te, ok := err.(*Error)
	return ok && te.Kind == kind
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Index: -1, msg: fmt.Sprintf(format, args...)}
}

func widgetError(kind ErrorKind, id WidgetId, format string, args ...any) *Error {
	e := newError(kind, format, args...)
	e.Widget = id
	return e
}
