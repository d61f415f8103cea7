// Package errors annotates errors with a stack frame and structured [slog.Attr] so that failures can be
// logged with their context at the boundary where they are handled.
package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"runtime"
)

// Re-exported so that callers only need to import this package.
var (
	Is     = stderrors.Is
	As     = stderrors.As
	Unwrap = stderrors.Unwrap
	Join   = stderrors.Join
)

type annotatedError struct {
	msg         string
	cause       error
	annotations []slog.Attr
	file        string
	line        int
}

func (e *annotatedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.cause
}

// callerSkip skips newAnnotated and the exported constructor.
const callerSkip = 2

func newAnnotated(msg string, cause error, attrs []slog.Attr) *annotatedError {
	_, file, line, _ := runtime.Caller(callerSkip)
	return &annotatedError{
		msg:         msg,
		cause:       cause,
		annotations: attrs,
		file:        file,
		line:        line,
	}
}

// New creates an error annotated with the caller location and attrs.
func New(msg string, attrs ...slog.Attr) error {
	return newAnnotated(msg, nil, attrs)
}

// NewSentinel creates a plain error meant to be compared with [Is]. Sentinels carry no stack frame since they
// are usually declared at package level.
func NewSentinel(msg string) error {
	return stderrors.New(msg)
}

// Wrap annotates err with msg, the caller location and attrs. Wrapping a nil error yields an error with only msg.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return newAnnotated(msg, err, attrs)
}

// DecoratePanic converts a recovered panic value into an annotated error. Returns nil if nothing was recovered.
func DecoratePanic(recovered any) error {
	if recovered == nil {
		return nil
	}
	if err, ok := recovered.(error); ok {
		return newAnnotated("panic", err, nil)
	}
	return newAnnotated(fmt.Sprintf("panic: %v", recovered), nil, nil)
}

// SlogError renders err as a slog group with the message, the innermost known location and all annotations
// collected along the wrap chain.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}

	var (
		annotations []any
		source      string
	)
	for cur := err; cur != nil; cur = stderrors.Unwrap(cur) {
		var ae *annotatedError
		if !stderrors.As(cur, &ae) {
			break
		}
		for _, a := range ae.annotations {
			annotations = append(annotations, a)
		}
		source = fmt.Sprintf("%s:%d", ae.file, ae.line)
		cur = ae
	}

	attrs := []any{slog.String("message", err.Error())}
	if source != "" {
		attrs = append(attrs, slog.String("source", source))
	}
	if len(annotations) > 0 {
		attrs = append(attrs, slog.Group("annotations", annotations...))
	}
	return slog.Group("error", attrs...)
}
