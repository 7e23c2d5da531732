// Package gateway performs the single outbound HTTP JSON-RPC call per
// forwarded request and relays the backend envelope without interpreting its
// payload.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/viant/jsonrpc"

	"github.com/memgate/memgate/catalog"
	"github.com/memgate/memgate/config"
	"github.com/memgate/memgate/internal/conv"
)

// Gateway authenticates, transmits and relays. The result/error payload of a
// conformant backend reply is opaque cargo: it is re-emitted verbatim, never
// extracted, renamed or normalized.
type Gateway struct {
	config *config.Config
	client *http.Client
	logger *logrus.Entry
}

// Option customizes a Gateway.
type Option func(*Gateway)

// WithHTTPClient overrides the HTTP client, mostly for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(g *Gateway) {
		g.client = client
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *logrus.Entry) Option {
	return func(g *Gateway) {
		g.logger = logger
	}
}

// New creates a Gateway bound to the supplied configuration.
func New(cfg *config.Config, options ...Option) *Gateway {
	ret := &Gateway{
		config: cfg,
		client: http.DefaultClient,
		logger: logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Forward relays one request to the backend and returns a response envelope
// addressed to the inbound id. It never returns nil and performs at most one
// network call, with no retries.
func (g *Gateway) Forward(ctx context.Context, request *jsonrpc.Request) *jsonrpc.Response {
	if g.config.Token == "" {
		// hard fail-fast gate: no network I/O without a credential
		g.logger.WithField("method", request.Method).
			Errorf("FATAL: %v is required but missing from environment", config.EnvToken)
		return &jsonrpc.Response{
			Jsonrpc: jsonrpc.Version,
			Id:      request.Id,
			Error:   catalog.NewMissingCredential(config.EnvToken),
		}
	}

	outbound := &jsonrpc.Request{
		Jsonrpc: jsonrpc.Version,
		Method:  request.Method,
		Params:  request.Params,
		Id:      request.Id,
	}
	data, err := json.Marshal(outbound)
	if err != nil {
		return g.internalError(request.Id, err)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, g.config.URL, bytes.NewReader(data))
	if err != nil {
		return g.internalError(request.Id, err)
	}
	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.Header.Set("Accept", "application/json")
	httpRequest.Header.Set("Authorization", "Bearer "+g.config.Token)

	started := time.Now()
	httpResponse, err := g.client.Do(httpRequest)
	if err != nil {
		g.logger.WithFields(logrus.Fields{"method": request.Method, "url": g.config.URL}).
			WithError(err).Error("backend call failed")
		return g.internalError(request.Id, err)
	}
	defer httpResponse.Body.Close()

	body, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return g.internalError(request.Id, err)
	}
	g.logger.WithFields(logrus.Fields{
		"method":  request.Method,
		"url":     g.config.URL,
		"status":  httpResponse.StatusCode,
		"elapsed": time.Since(started),
	}).Info("forwarded")
	return g.relay(request.Id, body)
}

// relay applies the passthrough contract to the raw backend body.
func (g *Gateway) relay(id interface{}, body []byte) *jsonrpc.Response {
	if !json.Valid(body) {
		return &jsonrpc.Response{
			Jsonrpc: jsonrpc.Version,
			Id:      id,
			Error:   jsonrpc.NewParsingError(fmt.Sprintf("parse error: backend returned invalid JSON: %s", snippet(body)), nil),
		}
	}
	envelope := &jsonrpc.Response{}
	if err := json.Unmarshal(body, envelope); err != nil || !conformant(envelope, id) {
		// valid JSON without a conformant envelope: the backend is presumed
		// non-conformant but its data is not dropped
		return &jsonrpc.Response{
			Jsonrpc: jsonrpc.Version,
			Id:      id,
			Result:  json.RawMessage(body),
		}
	}
	return envelope
}

func (g *Gateway) internalError(id interface{}, err error) *jsonrpc.Response {
	return &jsonrpc.Response{
		Jsonrpc: jsonrpc.Version,
		Id:      id,
		Error:   jsonrpc.NewInternalError(fmt.Sprintf("internal error: %v", err), nil),
	}
}

// conformant reports whether the backend reply is a well formed response
// envelope addressed to the outbound request: version tag, matching id, and
// exactly one of result/error.
func conformant(response *jsonrpc.Response, id interface{}) bool {
	if response.Jsonrpc != jsonrpc.Version {
		return false
	}
	if !conv.EqualRequestId(response.Id, id) {
		return false
	}
	hasResult := len(response.Result) > 0 && !bytes.Equal(response.Result, []byte("null"))
	hasError := response.Error != nil
	return hasResult != hasError
}

func snippet(body []byte) string {
	const max = 128
	if len(body) > max {
		body = body[:max]
	}
	return string(body)
}
