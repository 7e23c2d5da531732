// Package config resolves the adapter configuration once at process start.
// The resulting Config is immutable and passed explicitly into the gateway;
// nothing re-reads the environment mid-request.
package config

// Environment surface of the adapter.
const (
	EnvURL   = "MEMORY_API_URL"
	EnvToken = "MEMORY_API_TOKEN"

	// DefaultURL is the well-known memory service endpoint used when
	// MEMORY_API_URL is unset.
	DefaultURL = "http://localhost:8787/rpc"
)

// Options captures command line flags, with environment fallbacks.
type Options struct {
	URL   string `short:"u" long:"url" description:"memory service JSON-RPC endpoint" env:"MEMORY_API_URL" default:"http://localhost:8787/rpc"`
	Token string `short:"t" long:"token" description:"bearer token for the memory service" env:"MEMORY_API_TOKEN"`
}

// Config holds the resolved, process-wide configuration. A missing token is
// not an error here: the gateway fails fast when a forwarded call actually
// needs it, so handshake-only sessions run without credentials.
type Config struct {
	URL   string
	Token string
}

// New builds a Config from parsed options.
func New(options *Options) *Config {
	ret := &Config{URL: options.URL, Token: options.Token}
	if ret.URL == "" {
		ret.URL = DefaultURL
	}
	return ret
}
