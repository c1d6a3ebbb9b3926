package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mwiater/mealdb/mcp/tools"
)

// NewSDKServer registers every dispatcher tool on an MCP SDK server. The
// handlers are registered without SDK-side schema validation so argument
// errors surface as the dispatcher's own isError results.
func NewSDKServer(d *tools.Dispatcher, info Info) (*mcp.Server, error) {
	server := mcp.NewServer(&mcp.Implementation{Name: info.Name, Version: info.Version}, nil)
	for _, def := range d.ListTools() {
		schema, err := json.Marshal(def.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("tool %s: encode input schema: %w", def.Name, err)
		}
		server.AddTool(&mcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: json.RawMessage(schema),
		}, sdkHandler(d, def.Name))
	}
	return server, nil
}

func sdkHandler(d *tools.Dispatcher, name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := map[string]any{}
		if req != nil && req.Params != nil && len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return toSDKResult(tools.Result{
					Content: []tools.ContentPart{{Type: "text", Text: tools.ErrorText(fmt.Errorf("invalid arguments: %w", err))}},
					IsError: true,
				}), nil
			}
		}
		return toSDKResult(d.Call(ctx, tools.CallRequest{Name: name, Arguments: args})), nil
	}
}

func toSDKResult(res tools.Result) *mcp.CallToolResult {
	content := make([]mcp.Content, 0, len(res.Content))
	for _, part := range res.Content {
		content = append(content, &mcp.TextContent{Text: part.Text})
	}
	return &mcp.CallToolResult{Content: content, IsError: res.IsError}
}

// RunSDK serves the dispatcher over the given MCP transport until the peer
// disconnects or ctx is cancelled.
func RunSDK(ctx context.Context, d *tools.Dispatcher, info Info, transport mcp.Transport) error {
	server, err := NewSDKServer(d, info)
	if err != nil {
		return err
	}
	return server.Run(ctx, transport)
}
