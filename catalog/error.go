package catalog

import "github.com/viant/jsonrpc"

const (
	// MissingCredential is returned when a forwarded call is attempted
	// without a bearer token in the environment.
	MissingCredential = -32000
)

// NewMissingCredential creates the fail-fast error for an absent bearer token.
func NewMissingCredential(envKey string) *jsonrpc.Error {
	return jsonrpc.NewError(MissingCredential, envKey+" is required but missing from environment", nil)
}
