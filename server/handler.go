// Package server implements the local MCP protocol handler: it terminates the
// handshake and static discovery methods from the catalog and delegates every
// other method, unmodified, to the forwarding gateway.
package server

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"

	"github.com/memgate/memgate/catalog"
	"github.com/memgate/memgate/gateway"
)

// Handler dispatches inbound requests by method name. Dispatch depends only
// on the method string and, for prompts/get and resources/read, on the
// presence of a static catalog match.
type Handler struct {
	catalog *catalog.Catalog
	gateway *gateway.Gateway
	logger  *logrus.Entry
}

// Reply is the ordered set of wire messages produced for one request. The
// notification, when present, is written strictly after the response line;
// the ordering is carried by the type, not by write sequencing at call sites.
type Reply struct {
	Response     *jsonrpc.Response
	Notification *jsonrpc.Notification
}

// Option customizes a Handler.
type Option func(*Handler)

// WithLogger sets the diagnostic logger.
func WithLogger(logger *logrus.Entry) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// New creates a Handler over a static catalog and a forwarding gateway.
func New(cat *catalog.Catalog, gw *gateway.Gateway, options ...Option) *Handler {
	ret := &Handler{
		catalog: cat,
		gateway: gw,
		logger:  logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Serve handles one inbound JSON-RPC request and returns the messages to
// write. No method triggers more than one outbound network call.
func (h *Handler) Serve(ctx context.Context, request *jsonrpc.Request) *Reply {
	response := &jsonrpc.Response{Jsonrpc: jsonrpc.Version, Id: request.Id}
	reply := &Reply{Response: response}

	switch request.Method {
	case schema.MethodInitialize:
		result, notification := h.Initialize(ctx, request)
		h.setResponse(response, result, nil)
		reply.Notification = notification
	case schema.MethodToolsList:
		result, err := h.ListTools(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodResourcesList:
		result, err := h.ListResources(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodResourcesTemplatesList:
		result, err := h.ListResourceTemplates(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodPromptsList:
		result, err := h.ListPrompts(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodPromptsGet:
		result, ok, err := h.GetPrompt(ctx, request)
		if err != nil {
			response.Error = err
			return reply
		}
		if !ok {
			// the backend may serve dynamic prompts
			reply.Response = h.gateway.Forward(ctx, request)
			return reply
		}
		response.Result = result
	case schema.MethodResourcesRead:
		result, ok, err := h.ReadResource(ctx, request)
		if err != nil {
			response.Error = err
			return reply
		}
		if !ok {
			reply.Response = h.gateway.Forward(ctx, request)
			return reply
		}
		response.Result = result
	default:
		// tools/call and everything unrecognized: delegate verbatim
		reply.Response = h.gateway.Forward(ctx, request)
	}
	return reply
}

// OnNotification handles inbound JSON-RPC notifications. Notifications carry
// no id, so they never produce output.
func (h *Handler) OnNotification(ctx context.Context, notification *jsonrpc.Notification) {
	switch notification.Method {
	case schema.MethodNotificationInitialized:
		// peer acknowledgment of the handshake, nothing to do
	default:
		h.logger.WithField("method", notification.Method).Debug("dropped notification")
	}
}

func (h *Handler) setResponse(response *jsonrpc.Response, result interface{}, rpcError *jsonrpc.Error) {
	if rpcError != nil {
		response.Error = rpcError
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		response.Error = jsonrpc.NewInternalError(err.Error(), nil)
		return
	}
	response.Result = data
}
