package upstream

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// FetchError describes a failed page request.
type FetchError struct {
	URL     string
	Status  int
	Timeout bool
	Err     error
}

func (e *FetchError) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf("fetch %s: timeout", e.URL)
	case e.Status != 0:
		return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("fetch %s: failed", e.URL)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsTimeout reports whether err was caused by a fetch timing out.
func IsTimeout(err error) bool {
	var fe *FetchError
	if errors.As(err, &fe) && fe.Timeout {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func newFetchError(url string, err error) *FetchError {
	return &FetchError{URL: url, Timeout: IsTimeout(err), Err: err}
}
