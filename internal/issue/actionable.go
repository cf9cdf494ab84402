// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

// ActionableError carries enough context to tell the user what failed and
// what to do about it: the operation attempted, the resource involved, fix
// suggestions, and the underlying cause.
//
// Construct one with the ErrorContext builder:
//
//	err := issue.NewErrorContext().
//		WithOperation("load launchfile").
//		WithResource("./launchfile.cue").
//		WithSuggestion("Run 'gantry init' to create one").
//		Wrap(originalErr).
//		Build()
type ActionableError struct {
	// Operation is the verb phrase that failed ("load launchfile",
	// "launch target").
	Operation string
	// Resource is the file, path, or entity involved; may be empty.
	Resource string
	// Suggestions are fix hints shown under the message; may be empty.
	Suggestions []string
	// Cause is the wrapped underlying error; may be nil.
	Cause error
}

// ErrorContext accumulates error context incrementally, so a command can
// set the operation and resource up front and attach the cause where the
// failure actually happens:
//
//	ctx := issue.NewErrorContext().
//		WithOperation("parse config").
//		WithResource("~/.config/gantry/config.cue")
//
//	return ctx.WithSuggestion("Check CUE syntax").Wrap(err).Build()
type ErrorContext struct {
	operation   string
	resource    string
	suggestions []string
	cause       error
}

// NewActionableError creates an ActionableError for the given operation.
// For anything beyond an operation name, use the ErrorContext builder.
func NewActionableError(operation string) *ActionableError {
	return &ActionableError{Operation: operation}
}

// NewErrorContext creates an empty ErrorContext builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// WrapWithOperation attaches an operation to err. Returns nil for a nil err
// so it can wrap return values directly.
func WrapWithOperation(err error, operation string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{Operation: operation, Cause: err}
}

// WrapWithContext attaches an operation and a resource to err. Returns nil
// for a nil err.
func WrapWithContext(err error, operation, resource string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{Operation: operation, Resource: resource, Cause: err}
}

// Error returns the concise one-line message used in non-verbose output:
// "failed to <operation>[: <resource>][: <cause>]".
func (e *ActionableError) Error() string {
	parts := make([]string, 0, 3)
	parts = append(parts, "failed to "+e.Operation)
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format renders the full user-facing message: the one-line error, then a
// bullet per suggestion, and - in verbose mode - the numbered error chain.
func (e *ActionableError) Format(verbose bool) string {
	var b strings.Builder
	b.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		b.WriteString("\n")
		for _, s := range e.Suggestions {
			b.WriteString("\n  • ")
			b.WriteString(s)
		}
	}

	if verbose && e.Cause != nil {
		b.WriteString("\n\nError chain:")
		writeChain(&b, e.Cause)
	}

	return b.String()
}

// writeChain renders each error in the unwrap chain on its own numbered line.
func writeChain(b *strings.Builder, err error) {
	for depth := 1; err != nil; depth++ {
		fmt.Fprintf(b, "\n  %d. %s", depth, err.Error())
		err = errors.Unwrap(err)
	}
}

// HasSuggestions reports whether any fix hints are attached.
func (e *ActionableError) HasSuggestions() bool {
	return len(e.Suggestions) > 0
}

// WithOperation sets the verb phrase being attempted.
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.operation = op
	return c
}

// WithResource sets the file, path, or entity involved.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.resource = res
	return c
}

// WithSuggestion appends one fix hint; call repeatedly to add more.
func (c *ErrorContext) WithSuggestion(sug string) *ErrorContext {
	c.suggestions = append(c.suggestions, sug)
	return c
}

// WithSuggestions appends several fix hints at once.
func (c *ErrorContext) WithSuggestions(sugs ...string) *ErrorContext {
	c.suggestions = append(c.suggestions, sugs...)
	return c
}

// Wrap records the underlying cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.cause = err
	return c
}

// Build assembles the ActionableError. The operation is required; without
// one Build returns nil.
func (c *ErrorContext) Build() *ActionableError {
	if c.operation == "" {
		return nil
	}
	return &ActionableError{
		Operation:   c.operation,
		Resource:    c.resource,
		Suggestions: c.suggestions,
		Cause:       c.cause,
	}
}

// BuildError is Build returning the error interface, for use directly in
// return statements. Returns nil when no operation is set.
func (c *ErrorContext) BuildError() error {
	ae := c.Build()
	if ae == nil {
		return nil
	}
	return ae
}
