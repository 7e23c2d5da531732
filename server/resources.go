package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// ListResources serves the advertised static resources.
func (h *Handler) ListResources(ctx context.Context, request *jsonrpc.Request) (*schema.ListResourcesResult, *jsonrpc.Error) {
	return &schema.ListResourcesResult{Resources: h.catalog.Resources()}, nil
}

// ListResourceTemplates serves the advertised resource templates.
func (h *Handler) ListResourceTemplates(ctx context.Context, request *jsonrpc.Request) (*schema.ListResourceTemplatesResult, *jsonrpc.Error) {
	return &schema.ListResourceTemplatesResult{ResourceTemplates: h.catalog.ResourceTemplates()}, nil
}

// ReadResource looks up a static resource by uri. A miss is not an error:
// backend-owned resources such as memory://index are served by forwarding.
func (h *Handler) ReadResource(ctx context.Context, request *jsonrpc.Request) (json.RawMessage, bool, *jsonrpc.Error) {
	readRequest := &schema.ReadResourceRequest{Method: schema.MethodResourcesRead}
	if err := json.Unmarshal(request.Params, &readRequest.Params); err != nil {
		return nil, false, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
	}
	result, ok := h.catalog.ResourceResult(readRequest.Params.Uri)
	return result, ok, nil
}
