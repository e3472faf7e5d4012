package request

import "fmt"

// APIError is returned when the backend answers with a non-2xx status carrying
// the portal's JSON failure contract ({"detail": "..."}).
//
// Error() is the server's detail string so callers can surface it to users
// unchanged. An absent detail field yields an empty message, mirroring the
// backend contract rather than papering over it.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return e.Detail
}

// String includes the status code for diagnostics where the bare detail
// message would be ambiguous.
func (e *APIError) String() string {
	return fmt.Sprintf("portal: status %d: %s", e.StatusCode, e.Detail)
}
