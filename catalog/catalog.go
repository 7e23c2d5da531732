// Package catalog holds the static capability surface of the adapter: the
// tool, resource and prompt contracts advertised to MCP clients. The catalog
// is built once at process start and is read-only afterwards; no request ever
// mutates it.
package catalog

import (
	"encoding/json"

	"github.com/viant/mcp-protocol/schema"
)

const (
	// ProtocolVersion is the MCP revision this adapter speaks.
	ProtocolVersion = "2024-11-05"

	// ServerName and ServerVersion identify the adapter in the handshake.
	ServerName    = "memgate"
	ServerVersion = "0.1.0"
)

// Well-known URIs of the memory service surface.
const (
	IndexURI       = "memory://index"
	EntryTemplate  = "memory://{id}"
	SchemaURI      = "memory://schema"
	schemaMimeType = "application/json"
)

// Catalog is the static capability descriptor served by the local protocol
// handler. Listing methods return its entries verbatim.
type Catalog struct {
	tools     []schema.Tool
	resources []schema.Resource
	templates []schema.ResourceTemplate
	prompts   []schema.Prompt

	promptResults   map[string]json.RawMessage
	resourceResults map[string]json.RawMessage
}

// New builds the catalog. Membership and field content are part of the
// adapter's contract with callers: initialize advertises exactly what the
// list methods return.
func New() *Catalog {
	ret := &Catalog{
		tools:           tools(),
		resources:       resources(),
		templates:       templates(),
		prompts:         prompts(),
		promptResults:   map[string]json.RawMessage{},
		resourceResults: map[string]json.RawMessage{},
	}
	ret.promptResults["memory-context"] = rawJSON(map[string]interface{}{
		"description": "Bring relevant stored memories into the conversation",
		"messages": []interface{}{
			map[string]interface{}{
				"role": "user",
				"content": map[string]interface{}{
					"type": "text",
					"text": "Search the memory service for entries relevant to the topic at hand, then summarise what is already known before answering.",
				},
			},
		},
	})
	ret.promptResults["memory-review"] = rawJSON(map[string]interface{}{
		"description": "Review recently written memories for accuracy",
		"messages": []interface{}{
			map[string]interface{}{
				"role": "user",
				"content": map[string]interface{}{
					"type": "text",
					"text": "List the most recent memory entries, flag duplicates or contradictions, and propose updates or deletions where warranted.",
				},
			},
		},
	})

	contract := schema.ReadResourceResult{}
	mimeType := schemaMimeType
	contract.Contents = append(contract.Contents, schema.ReadResourceResultContentsElem{
		Uri:      SchemaURI,
		MimeType: &mimeType,
		Text:     string(rawJSON(toolContract())),
	})
	ret.resourceResults[SchemaURI] = rawJSON(contract)
	return ret
}

// Capabilities advertises the top-level features backed by the catalog and
// the forwarding gateway. It must match what the list methods actually serve.
func (c *Catalog) Capabilities() schema.ServerCapabilities {
	return schema.ServerCapabilities{
		Tools:     &schema.ServerCapabilitiesTools{},
		Resources: &schema.ServerCapabilitiesResources{},
		Prompts:   &schema.ServerCapabilitiesPrompts{},
	}
}

// Tools returns the fixed tool contract.
func (c *Catalog) Tools() []schema.Tool {
	return c.tools
}

// Resources returns the advertised static resources.
func (c *Catalog) Resources() []schema.Resource {
	return c.resources
}

// ResourceTemplates returns the advertised resource templates.
func (c *Catalog) ResourceTemplates() []schema.ResourceTemplate {
	return c.templates
}

// Prompts returns the advertised prompts.
func (c *Catalog) Prompts() []schema.Prompt {
	return c.prompts
}

// PromptResult returns the wire-ready prompts/get payload for a static
// prompt. The second result is false when the prompt is not served locally.
func (c *Catalog) PromptResult(name string) (json.RawMessage, bool) {
	result, ok := c.promptResults[name]
	return result, ok
}

// ResourceResult returns the wire-ready resources/read payload for a static
// resource. The second result is false when the resource is backend-owned.
func (c *Catalog) ResourceResult(uri string) (json.RawMessage, bool) {
	result, ok := c.resourceResults[uri]
	return result, ok
}

// MemoryTypes enumerates the memory classification accepted by write and
// search tools.
var MemoryTypes = []interface{}{"note", "fact", "decision", "insight"}

// LinkRelations enumerates the relations accepted by memory-link.
var LinkRelations = []interface{}{"relates-to", "supersedes", "contradicts"}

func tools() []schema.Tool {
	return []schema.Tool{
		{
			Name:        "memory-write",
			Description: ptr("Store a new memory entry in the memory service"),
			InputSchema: schema.ToolInputSchema{
				Type: "object",
				Properties: schema.ToolInputSchemaProperties{
					"content":    {"type": "string", "description": "Memory content to store"},
					"type":       {"type": "string", "enum": MemoryTypes, "description": "Memory classification"},
					"id":         {"type": "string", "description": "Optional client-chosen identifier"},
					"importance": {"type": "number", "description": "Optional importance between 0 and 1"},
					"tags":       {"type": "array", "items": map[string]interface{}{"type": "string"}, "description": "Optional tags"},
				},
				Required: []string{"content", "type"},
			},
		},
		{
			Name:        "memory-update",
			Description: ptr("Update an existing memory entry"),
			InputSchema: schema.ToolInputSchema{
				Type: "object",
				Properties: schema.ToolInputSchemaProperties{
					"id":         {"type": "string", "description": "Identifier of the entry to update"},
					"content":    {"type": "string", "description": "Replacement content"},
					"importance": {"type": "number", "description": "Replacement importance between 0 and 1"},
					"tags":       {"type": "array", "items": map[string]interface{}{"type": "string"}, "description": "Replacement tags"},
				},
				Required: []string{"id"},
			},
		},
		{
			Name:        "memory-delete",
			Description: ptr("Delete a memory entry"),
			InputSchema: schema.ToolInputSchema{
				Type: "object",
				Properties: schema.ToolInputSchemaProperties{
					"id": {"type": "string", "description": "Identifier of the entry to delete"},
				},
				Required: []string{"id"},
			},
		},
		{
			Name:        "memory-search",
			Description: ptr("Search stored memories by relevance"),
			InputSchema: schema.ToolInputSchema{
				Type: "object",
				Properties: schema.ToolInputSchemaProperties{
					"query": {"type": "string", "description": "Free text query"},
					"limit": {"type": "integer", "description": "Maximum number of results"},
					"type":  {"type": "string", "enum": MemoryTypes, "description": "Restrict results to one classification"},
				},
				Required: []string{"query"},
			},
		},
		{
			Name:        "memory-link",
			Description: ptr("Link two memory entries"),
			InputSchema: schema.ToolInputSchema{
				Type: "object",
				Properties: schema.ToolInputSchemaProperties{
					"source":   {"type": "string", "description": "Identifier of the source entry"},
					"target":   {"type": "string", "description": "Identifier of the target entry"},
					"relation": {"type": "string", "enum": LinkRelations, "description": "Relation between the entries"},
				},
				Required: []string{"source", "target", "relation"},
			},
		},
	}
}

func resources() []schema.Resource {
	jsonMime := schemaMimeType
	return []schema.Resource{
		{
			Name:        "memory-index",
			Uri:         IndexURI,
			Description: ptr("Discovery index of stored memories, served by the memory service"),
			MimeType:    &jsonMime,
		},
		{
			Name:        "memory-schema",
			Uri:         SchemaURI,
			Description: ptr("Tool and data contract of this adapter"),
			MimeType:    &jsonMime,
		},
	}
}

func templates() []schema.ResourceTemplate {
	jsonMime := schemaMimeType
	return []schema.ResourceTemplate{
		{
			Name:        "memory-index",
			UriTemplate: IndexURI,
			Description: ptr("Discovery index of stored memories"),
			MimeType:    &jsonMime,
		},
		{
			Name:        "memory-entry",
			UriTemplate: EntryTemplate,
			Description: ptr("A single memory entry by identifier"),
			MimeType:    &jsonMime,
		},
	}
}

func prompts() []schema.Prompt {
	return []schema.Prompt{
		{
			Name:        "memory-context",
			Description: ptr("Bring relevant stored memories into the conversation"),
			Arguments: []schema.PromptArgument{
				{Name: "topic", Description: ptr("Topic to recall memories for"), Required: ptrBool(true)},
			},
		},
		{
			Name:        "memory-review",
			Description: ptr("Review recently written memories for accuracy"),
		},
	}
}

// toolContract renders a compact description of the tool surface for the
// memory://schema resource.
func toolContract() map[string]interface{} {
	names := make([]interface{}, 0, 5)
	for _, tool := range tools() {
		names = append(names, tool.Name)
	}
	return map[string]interface{}{
		"protocolVersion": ProtocolVersion,
		"tools":           names,
		"memoryTypes":     MemoryTypes,
		"linkRelations":   LinkRelations,
	}
}

func rawJSON(v interface{}) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}

func ptr(s string) *string {
	return &s
}

func ptrBool(b bool) *bool {
	return &b
}
