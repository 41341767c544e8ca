package baserow

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned when the remote table store answers with a non-2xx
// status. The body is embedded so upstream failures stay diagnosable from a
// single log line.
type APIError struct {
	StatusCode int
	Body       string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("baserow request failed: status %d, body: %s, url: %s", e.StatusCode, e.Body, e.URL)
}

// IsNotFound reports whether err is a remote 404, i.e. the requested row
// does not exist.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
