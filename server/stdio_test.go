package server

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"

	"github.com/memgate/memgate/catalog"
	"github.com/memgate/memgate/config"
	"github.com/memgate/memgate/gateway"
)

func runStdio(t *testing.T, input string, token string) []string {
	cfg := &config.Config{URL: config.DefaultURL, Token: token}
	handler := New(catalog.New(), gateway.New(cfg))
	output := &bytes.Buffer{}
	stdio := NewStdio(handler, WithInput(strings.NewReader(input)), WithOutput(output))
	require.NoError(t, stdio.ListenAndServe(context.Background()))
	var lines []string
	for _, line := range strings.Split(output.String(), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestStdio_HandshakeOrdering(t *testing.T) {
	lines := runStdio(t, `{"jsonrpc":"2.0","method":"initialize","id":1}`+"\n", "")
	require.Len(t, lines, 2)

	var response jsonrpc.Response
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &response))
	assert.EqualValues(t, 1, response.Id)
	require.Nil(t, response.Error)
	var result schema.InitializeResult
	require.NoError(t, json.Unmarshal(response.Result, &result))
	assert.Equal(t, "2024-11-05", result.ProtocolVersion)

	var notification jsonrpc.Notification
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &notification))
	assert.Equal(t, schema.MethodNotificationInitialized, notification.Method)
}

func TestStdio_MalformedLineProducesNoOutput(t *testing.T) {
	input := "{not json}\n" + `{"jsonrpc":"2.0","method":"tools/list","id":2}` + "\n"
	lines := runStdio(t, input, "")
	// the malformed line is dropped, the next line is still served
	require.Len(t, lines, 1)
	var response jsonrpc.Response
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &response))
	assert.EqualValues(t, 2, response.Id)
	assert.Nil(t, response.Error)
}

func TestStdio_InboundInitializedIsNoOp(t *testing.T) {
	lines := runStdio(t, `{"jsonrpc":"2.0","method":"notifications/initialized"}`+"\n", "")
	assert.Empty(t, lines)
}

func TestStdio_MissingCredentialScenario(t *testing.T) {
	input := `{"jsonrpc":"2.0","method":"initialize","id":1}` + "\n" +
		`{"jsonrpc":"2.0","method":"tools/call","params":{"name":"memory-search","arguments":{}},"id":3}` + "\n"
	lines := runStdio(t, input, "")
	require.Len(t, lines, 3)

	// handshake succeeds without a credential
	var initResponse jsonrpc.Response
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &initResponse))
	assert.Nil(t, initResponse.Error)

	// the forwarded call fails fast with exactly one error line
	var callResponse jsonrpc.Response
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &callResponse))
	assert.EqualValues(t, 3, callResponse.Id)
	require.NotNil(t, callResponse.Error)
	assert.Equal(t, catalog.MissingCredential, callResponse.Error.Code)
	assert.Contains(t, callResponse.Error.Message, "missing")
}
