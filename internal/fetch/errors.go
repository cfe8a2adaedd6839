package fetch

import (
	"errors"
	"fmt"
)

// ErrFetch matches every FetchError via errors.Is.
var ErrFetch = errors.New("fetch catalog")

// FetchError is the single failure kind of a catalog fetch. It covers
// transport failures, unexpected status codes and undecodable bodies alike.
type FetchError struct {
	Source     string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch catalog from %s: status %d: %v", e.Source, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch catalog from %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

var (
	errNotArray     = errors.New("catalog payload is not an array")
	errTrailingData = errors.New("catalog payload has data after the array")
)
