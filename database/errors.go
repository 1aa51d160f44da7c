package database

import (
	"errors"
	"fmt"
)

// ErrRowNotFound is wrapped by a GatewayError when the addressed row does not
// exist or belongs to another user.
var ErrRowNotFound = errors.New("row not found")

// GatewayError is the single failure kind reported by the gateway. Transport,
// constraint and missing-row failures all surface through it.
type GatewayError struct {
	Op    string
	Table string
	Err   error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Op, e.Table, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// IsGatewayError reports whether err carries a GatewayError.
func IsGatewayError(err error) bool {
	var gwErr *GatewayError
	return errors.As(err, &gwErr)
}
