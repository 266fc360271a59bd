package page

import (
	"errors"
	"fmt"
)

// ErrInvalidURL is returned for URLs that are not absolute http(s) URLs.
var ErrInvalidURL = errors.New("invalid page URL")

// ErrBadStatus is the cause of a FetchError for non-2xx responses.
var ErrBadStatus = errors.New("unexpected response status")

// FetchError describes a failed page download.
type FetchError struct {
	URL        string
	StatusCode int
	Cause      error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: %v: %d", e.URL, e.Cause, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Cause)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}
