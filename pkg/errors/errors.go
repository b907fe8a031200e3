package errors

import (
	"errors"
	"fmt"
)

// SearchError reports a search that failed for one (input, word) pair.
type SearchError struct {
	InputID  string
	Word     string
	Panicked bool
	err      error
}

func NewSearchError(inputID, word string, err error) *SearchError {
	return &SearchError{InputID: inputID, Word: word, err: err}
}

func NewSearchPanicError(inputID, word string, rec any) *SearchError {
	return &SearchError{
		InputID:  inputID,
		Word:     word,
		Panicked: true,
		err:      fmt.Errorf("search panicked: %v", rec),
	}
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("search for %q in input %q failed: %v", e.Word, e.InputID, e.err)
}

func (e *SearchError) Unwrap() error {
	return e.err
}

func IsSearchError(err error) bool {
	var e *SearchError
	return errors.As(err, &e)
}

// AsSearchError returns the SearchError wrapped in err, if any.
func AsSearchError(err error) (*SearchError, bool) {
	var e *SearchError
	ok := errors.As(err, &e)
	return e, ok
}

// ResolutionError reports a handle whose outcome could not be read.
type ResolutionError struct {
	err error
}

func NewResolutionError(err error) *ResolutionError {
	return &ResolutionError{err: err}
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve search result: %v", e.err)
}

func (e *ResolutionError) Unwrap() error {
	return e.err
}

func IsResolutionError(err error) bool {
	var e *ResolutionError
	return errors.As(err, &e)
}

type ValidationError struct {
	msg string
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.msg
}

func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// RunInProgressError is returned when a dispatcher is asked to start a second run.
type RunInProgressError struct{}

func NewRunInProgressError() *RunInProgressError {
	return &RunInProgressError{}
}

func (e *RunInProgressError) Error() string {
	return "a search run is already in progress"
}

func IsRunInProgressError(err error) bool {
	var e *RunInProgressError
	return errors.As(err, &e)
}
