// Package mcpadapter exposes the bridge entry points as MCP tools.
package mcpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"battlebridge/internal/app/action"
	"battlebridge/internal/app/bridge"
	"battlebridge/internal/app/observe"
	"battlebridge/internal/app/schema"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ToolObserveBattle  = "observe_battle"
	ToolPressButton    = "press_button"
	ToolDescribeSchema = "describe_schema"
)

var (
	ErrBridgeUnbound         = errors.New("no scene registered with the bridge")
	ErrActionChannelDisabled = errors.New("action channel is disabled")
)

type Endpoints interface {
	SnapshotFunc() (bridge.SnapshotFunc, bool)
	ActionFunc() (bridge.ActionFunc, bool)
	ActionsEnabled() bool
	Table() schema.Table
}

type snapshotRecorder interface {
	Record(ctx context.Context, snap observe.Snapshot) error
}

type ObserveInput struct{}

type PressButtonInput struct {
	Command string `json:"command" jsonschema:"one of up, down, left, right, confirm"`
}

type DescribeSchemaInput struct{}

// NewServer builds an MCP server with the bridge tools registered.
// press_button is only listed when the action channel is enabled.
func NewServer(b Endpoints, recorder snapshotRecorder, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "battlebridge", Version: version}, nil)
	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolObserveBattle,
		Description: "Returns the current battle snapshot: both parties, the active phase and battle metadata where the schema version exposes them",
	}, observeHandler(b, recorder))
	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolDescribeSchema,
		Description: "Returns the JSON Schema of the snapshot document for the bound schema version",
	}, describeSchemaHandler(b))
	if b.ActionsEnabled() {
		mcp.AddTool(server, &mcp.Tool{
			Name:        ToolPressButton,
			Description: "Presses and releases one input button in the running scene. The input is applied on the next simulation update",
		}, pressButtonHandler(b))
	}
	return server
}

// Run serves tools over transport until ctx is cancelled or the client
// disconnects.
func Run(ctx context.Context, server *mcp.Server, transport mcp.Transport) error {
	hlog.CtxInfof(ctx, "mcp server starting")
	return server.Run(ctx, transport)
}

func observeHandler(b Endpoints, recorder snapshotRecorder) mcp.ToolHandlerFor[ObserveInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ObserveInput) (*mcp.CallToolResult, any, error) {
		take, ok := b.SnapshotFunc()
		if !ok {
			return nil, nil, ErrBridgeUnbound
		}
		snap := take()
		if recorder != nil {
			if err := recorder.Record(ctx, snap); err != nil {
				hlog.CtxWarnf(ctx, "record observation failed: %v", err)
			}
		}
		return jsonResult(snap)
	}
}

func describeSchemaHandler(b Endpoints) mcp.ToolHandlerFor[DescribeSchemaInput, any] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ DescribeSchemaInput) (*mcp.CallToolResult, any, error) {
		return jsonResult(b.Table().JSONSchema())
	}
}

func pressButtonHandler(b Endpoints) mcp.ToolHandlerFor[PressButtonInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PressButtonInput) (*mcp.CallToolResult, any, error) {
		if !b.ActionsEnabled() {
			return nil, nil, ErrActionChannelDisabled
		}
		cmd, err := action.ParseCommand(input.Command)
		if err != nil {
			return nil, nil, err
		}
		act, ok := b.ActionFunc()
		if !ok {
			return nil, nil, ErrBridgeUnbound
		}
		if err := act(cmd); err != nil {
			return nil, nil, fmt.Errorf("press %s: %w", cmd, err)
		}
		hlog.CtxDebugf(ctx, "mcp action dispatched command=%s", cmd)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("pressed %s", cmd)}},
		}, nil, nil
	}
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, nil, fmt.Errorf("encode result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(b)}},
	}, nil, nil
}
