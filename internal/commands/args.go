package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"htask/internal/exitcode"
	"htask/internal/service"
)

// parseID parses a positive numeric id; what names it in error messages.
func parseID(s, what string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %s", what, s)
	}
	return id, nil
}

// parseRef parses a "type/id" reference, e.g. "item/7".
func parseRef(s string) (service.Reference, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return service.Reference{}, fmt.Errorf("%w: expected type/id, got %q", service.ErrInvalidReference, s)
	}
	refType, err := service.ParseRefType(parts[0])
	if err != nil {
		return service.Reference{}, err
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return service.Reference{}, fmt.Errorf("%w: bad id %q", service.ErrInvalidReference, parts[1])
	}
	ref := service.Reference{Type: refType, ID: id}
	if err := ref.Validate(); err != nil {
		return service.Reference{}, err
	}
	return ref, nil
}

// writeError prints a service failure and returns the matching exit code.
func writeError(errOut io.Writer, err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidReference),
		errors.Is(err, service.ErrValidationFailed),
		errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrRemoteRejected):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	case errors.Is(err, service.ErrUnauthorized):
		fmt.Fprintf(errOut, "error: %v (run: htask login)\n", err)
		return exitcode.AuthError
	default:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
}
