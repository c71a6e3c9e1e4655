package apiclient

import (
	"fmt"
	"net/http"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
)

// IsSuccess reports whether the remote API accepted a request. Only 200 and
// 201 count; any other status, 2xx included, is a rejection.
func IsSuccess(status int) bool {
	return status == http.StatusOK || status == http.StatusCreated
}

// StatusError is returned when the remote API answers with a non-success
// status. It matches domain.ErrRejected, and domain.ErrNotFound for a 404.
type StatusError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Status)
}

func (e *StatusError) Unwrap() error {
	return domain.ErrRejected
}

func (e *StatusError) Is(target error) bool {
	return target == domain.ErrNotFound && e.Status == http.StatusNotFound
}

func (e *StatusError) StatusCode() int {
	return e.Status
}
