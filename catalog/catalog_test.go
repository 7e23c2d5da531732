package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_ToolContract(t *testing.T) {
	cat := New()
	tools := cat.Tools()
	var names []string
	for _, tool := range tools {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{"memory-write", "memory-update", "memory-delete", "memory-search", "memory-link"}, names)

	write := tools[0]
	assert.Equal(t, "object", write.InputSchema.Type)
	assert.ElementsMatch(t, []string{"content", "type"}, write.InputSchema.Required)
	require.Contains(t, write.InputSchema.Properties, "type")
	assert.Equal(t, MemoryTypes, write.InputSchema.Properties["type"]["enum"])
	// optional fields stay out of required but remain in the schema
	assert.Contains(t, write.InputSchema.Properties, "id")
	assert.Contains(t, write.InputSchema.Properties, "importance")
	assert.NotContains(t, write.InputSchema.Required, "id")
	assert.NotContains(t, write.InputSchema.Required, "importance")

	link := tools[4]
	assert.ElementsMatch(t, []string{"source", "target", "relation"}, link.InputSchema.Required)
	assert.Equal(t, LinkRelations, link.InputSchema.Properties["relation"]["enum"])
}

func TestCatalog_Templates(t *testing.T) {
	cat := New()
	var uris []string
	for _, template := range cat.ResourceTemplates() {
		uris = append(uris, template.UriTemplate)
	}
	// the discovery template and the entry template, nothing else
	assert.Equal(t, []string{IndexURI, EntryTemplate}, uris)
}

func TestCatalog_StaticPayloads(t *testing.T) {
	cat := New()
	for _, name := range []string{"memory-context", "memory-review"} {
		payload, ok := cat.PromptResult(name)
		require.True(t, ok, name)
		var result map[string]interface{}
		require.NoError(t, json.Unmarshal(payload, &result))
		assert.Contains(t, result, "messages")
	}
	_, ok := cat.PromptResult("unknown")
	assert.False(t, ok)

	payload, ok := cat.ResourceResult(SchemaURI)
	require.True(t, ok)
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &result))
	assert.Contains(t, result, "contents")

	_, ok = cat.ResourceResult(IndexURI)
	assert.False(t, ok)
}

func TestCatalog_CapabilitiesMatchSurface(t *testing.T) {
	cat := New()
	capabilities := cat.Capabilities()
	assert.NotNil(t, capabilities.Tools)
	assert.NotNil(t, capabilities.Resources)
	assert.NotNil(t, capabilities.Prompts)
	assert.NotEmpty(t, cat.Tools())
	assert.NotEmpty(t, cat.Resources())
	assert.NotEmpty(t, cat.Prompts())
}
