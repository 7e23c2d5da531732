package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// ListPrompts serves the static prompt catalog.
func (h *Handler) ListPrompts(ctx context.Context, request *jsonrpc.Request) (*schema.ListPromptsResult, *jsonrpc.Error) {
	return &schema.ListPromptsResult{Prompts: h.catalog.Prompts()}, nil
}

// GetPrompt looks up a static prompt by name. A miss is not an error: the
// caller delegates to the gateway so the backend can serve dynamic prompts.
func (h *Handler) GetPrompt(ctx context.Context, request *jsonrpc.Request) (json.RawMessage, bool, *jsonrpc.Error) {
	getPromptRequest := &schema.GetPromptRequest{Method: schema.MethodPromptsGet}
	if err := json.Unmarshal(request.Params, &getPromptRequest.Params); err != nil {
		return nil, false, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
	}
	result, ok := h.catalog.PromptResult(getPromptRequest.Params.Name)
	return result, ok, nil
}
