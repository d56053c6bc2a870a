// Package transport performs authenticated request/response exchanges with
// the remote service and maps failures onto the task error kinds.
package transport

import (
	"context"
	"net/url"
)

// Transport is the session collaborator the backend talks through. Do issues
// a single authenticated request: body is JSON-encoded when non-nil, the
// response body is decoded into out when out is non-nil. Failures carry
// exactly one of the service error kinds.
type Transport interface {
	Do(ctx context.Context, method, path string, query url.Values, body, out any) error
}
