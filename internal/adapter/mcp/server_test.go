package mcpadapter

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	scenemem "battlebridge/internal/adapter/scene/memory"
	"battlebridge/internal/app/bridge"
	"battlebridge/internal/app/schema"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type discardLogger struct{}

func (discardLogger) Infof(string, ...interface{}) {}

func connect(t *testing.T, b Endpoints) *mcp.ClientSession {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := NewServer(b, nil, "test").Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("connect server: %v", err)
	}
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("connect client: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func newBridge(t *testing.T, actions bool) *bridge.Bridge {
	t.Helper()
	b, err := bridge.New(bridge.NewCell(), bridge.Config{Version: schema.V3, ActionsEnabled: actions, Logger: discardLogger{}})
	if err != nil {
		t.Fatalf("bridge.New error: %v", err)
	}
	return b
}

func callTool(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		t.Fatalf("call %s: %v", name, err)
	}
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatalf("empty tool result")
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("content type=%T want *mcp.TextContent", res.Content[0])
	}
	return text.Text
}

func TestObserveBattle_ReturnsSnapshot(t *testing.T) {
	b := newBridge(t, false)
	if err := b.Register(scenemem.NewDemo()); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	session := connect(t, b)

	res := callTool(t, session, ToolObserveBattle, map[string]any{})
	if res.IsError {
		t.Fatalf("observe_battle failed: %s", resultText(t, res))
	}
	var snap struct {
		Version string           `json:"version"`
		Player  []map[string]any `json:"player"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snap.Version != "v3" || len(snap.Player) != 3 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if _, ok := snap.Player[0]["teraType"]; !ok {
		t.Fatalf("expected v3 field teraType in %v", snap.Player[0])
	}
}

func TestObserveBattle_UnboundIsToolError(t *testing.T) {
	session := connect(t, newBridge(t, false))

	res := callTool(t, session, ToolObserveBattle, map[string]any{})
	if !res.IsError {
		t.Fatalf("expected tool error before a scene is registered")
	}
	if !strings.Contains(resultText(t, res), "no scene registered") {
		t.Fatalf("unexpected error text: %s", resultText(t, res))
	}
}

func TestPressButton_ListedOnlyWhenEnabled(t *testing.T) {
	for _, enabled := range []bool{false, true} {
		session := connect(t, newBridge(t, enabled))
		tools, err := session.ListTools(context.Background(), nil)
		if err != nil {
			t.Fatalf("list tools: %v", err)
		}
		found := false
		for _, tool := range tools.Tools {
			if tool.Name == ToolPressButton {
				found = true
			}
		}
		if found != enabled {
			t.Fatalf("press_button listed=%v want %v", found, enabled)
		}
	}
}

func TestPressButton_QueuesInput(t *testing.T) {
	scene := scenemem.NewDemo()
	scene.Step()
	b := newBridge(t, true)
	if err := b.Register(scene); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	session := connect(t, b)

	res := callTool(t, session, ToolPressButton, map[string]any{"command": "down"})
	if res.IsError {
		t.Fatalf("press_button failed: %s", resultText(t, res))
	}
	scene.Step()
	if got := scene.Cursor(); got != scenemem.MenuPokemon {
		t.Fatalf("cursor=%d want %d", got, scenemem.MenuPokemon)
	}

	res = callTool(t, session, ToolPressButton, map[string]any{"command": "jump"})
	if !res.IsError {
		t.Fatalf("expected tool error for unknown command")
	}
}

func TestDescribeSchema(t *testing.T) {
	session := connect(t, newBridge(t, false))

	res := callTool(t, session, ToolDescribeSchema, map[string]any{})
	var doc struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &doc); err != nil {
		t.Fatalf("decode schema: %v", err)
	}
	if doc.Title != "Battle scene snapshot v3" {
		t.Fatalf("title=%q", doc.Title)
	}
}
