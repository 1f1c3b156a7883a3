package shared

import "fmt"

// Result is a success-or-failure outcome used in place of errors for
// expected, recoverable rule violations. A failed Result carries the
// domain-facing message; callers match on message content, not codes.
type Result struct {
	failure string
	ok      bool
}

// OkResult returns a successful Result
func OkResult() Result {
	return Result{ok: true}
}

// FailResult returns a failed Result with the given message
func FailResult(message string) Result {
	return Result{failure: message}
}

// FailResultf returns a failed Result with a formatted message
func FailResultf(format string, args ...any) Result {
	return Result{failure: fmt.Sprintf(format, args...)}
}

// IsSuccess reports whether the result is successful
func (r Result) IsSuccess() bool {
	return r.ok
}

// IsFailure reports whether the result is a failure
func (r Result) IsFailure() bool {
	return !r.ok
}

// FailureMessage returns the failure message, empty on success
func (r Result) FailureMessage() string {
	return r.failure
}

// Err converts a failed Result into a *DomainError, nil on success
func (r Result) Err() error {
	if r.ok {
		return nil
	}
	return NewDomainError("VALIDATION_FAILED", r.failure)
}

// DomainResult is a Result that carries a value on success.
type DomainResult[T any] struct {
	Result
	value T
}

// Ok returns a successful DomainResult carrying the given value
func Ok[T any](value T) DomainResult[T] {
	return DomainResult[T]{Result: OkResult(), value: value}
}

// Fail returns a failed DomainResult with the given message
func Fail[T any](message string) DomainResult[T] {
	return DomainResult[T]{Result: FailResult(message)}
}

// Failf returns a failed DomainResult with a formatted message
func Failf[T any](format string, args ...any) DomainResult[T] {
	return DomainResult[T]{Result: FailResultf(format, args...)}
}

// Value returns the carried value; the zero value on failure
func (r DomainResult[T]) Value() T {
	return r.value
}
