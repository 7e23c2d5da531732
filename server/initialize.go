package server

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"

	"github.com/memgate/memgate/catalog"
)

// Initialize answers the MCP handshake locally. The returned notification is
// the adapter's own notifications/initialized message and must follow the
// response on the wire; Reply guarantees that ordering.
func (h *Handler) Initialize(ctx context.Context, request *jsonrpc.Request) (*schema.InitializeResult, *jsonrpc.Notification) {
	if len(request.Params) > 0 {
		params := schema.InitializeRequestParams{}
		// params are informational only; the handshake succeeds without them
		if err := json.Unmarshal(request.Params, &params); err == nil {
			h.logger.WithFields(logrus.Fields{
				"client":          params.ClientInfo.Name,
				"protocolVersion": params.ProtocolVersion,
			}).Debug("initialize")
		}
	}
	result := &schema.InitializeResult{
		ProtocolVersion: catalog.ProtocolVersion,
		ServerInfo:      schema.Implementation{Name: catalog.ServerName, Version: catalog.ServerVersion},
		Capabilities:    h.catalog.Capabilities(),
	}
	notification := &jsonrpc.Notification{
		Jsonrpc: jsonrpc.Version,
		Method:  schema.MethodNotificationInitialized,
		Params:  json.RawMessage("{}"),
	}
	return result, notification
}
