package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"battlebridge/internal/app/journal"
	"battlebridge/internal/app/schema"
	"battlebridge/internal/config"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func testConfig() config.Config {
	return config.Config{
		Addr:          ":0",
		SchemaVersion: "v4",
		LogLevel:      "info",
		TickInterval:  10 * time.Millisecond,
	}
}

func TestBuildApp_UnknownVersionIsFatal(t *testing.T) {
	cfg := testConfig()
	cfg.SchemaVersion = "v7"
	if _, err := buildApp(context.Background(), cfg); !errors.Is(err, schema.ErrUnknownVersion) {
		t.Fatalf("expected ErrUnknownVersion, got %v", err)
	}
}

func TestBuildApp_RegistersDemoScene(t *testing.T) {
	a, err := buildApp(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("buildApp error: %v", err)
	}
	take, ok := a.bridge.SnapshotFunc()
	if !ok {
		t.Fatalf("expected snapshot entry point after build")
	}
	snap := take()
	if snap.Version != schema.V4 || len(snap.Player) != 3 {
		t.Fatalf("unexpected snapshot: version=%s player=%d", snap.Version, len(snap.Player))
	}
	if _, ok := a.bridge.ActionFunc(); ok {
		t.Fatalf("action channel must stay unpublished by default")
	}
	if a.handler.JournalUC.Repo != nil || a.handler.Recorder != nil {
		t.Fatalf("journal must be off without BRIDGE_RECORD_OBSERVATIONS or BRIDGE_DB_DSN")
	}
}

func TestBuildApp_RecordsInMemoryWithoutDSN(t *testing.T) {
	cfg := testConfig()
	cfg.RecordObservations = true
	a, err := buildApp(context.Background(), cfg)
	if err != nil {
		t.Fatalf("buildApp error: %v", err)
	}
	if a.handler.Recorder == nil || a.handler.JournalUC.Repo == nil {
		t.Fatalf("expected in-memory journal to be wired")
	}
}

func TestRunScene_StepsUntilCancelled(t *testing.T) {
	a, err := buildApp(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("buildApp error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		runScene(ctx, a.scene, time.Millisecond)
		close(done)
	}()
	deadline := time.Now().Add(2 * time.Second)
	for a.scene.Ticks() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	cancel()
	<-done
	if a.scene.Ticks() < 3 {
		t.Fatalf("ticks=%d want at least 3", a.scene.Ticks())
	}
}

func observeOverMCP(t *testing.T, a *application) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := a.mcp.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("connect server: %v", err)
	}
	t.Cleanup(func() { _ = serverSession.Close() })
	session, err := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil).Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("connect client: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })

	res, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "observe_battle"})
	if err != nil {
		t.Fatalf("call observe_battle: %v", err)
	}
	if res.IsError {
		t.Fatalf("observe_battle returned a tool error: %+v", res.Content)
	}
}

func TestBuildApp_MCPObservesWithoutJournal(t *testing.T) {
	a, err := buildApp(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("buildApp error: %v", err)
	}
	observeOverMCP(t, a)
}

func TestBuildApp_MCPObservationsAreRecorded(t *testing.T) {
	cfg := testConfig()
	cfg.RecordObservations = true
	a, err := buildApp(context.Background(), cfg)
	if err != nil {
		t.Fatalf("buildApp error: %v", err)
	}
	observeOverMCP(t, a)

	out, err := a.handler.JournalUC.Execute(context.Background(), journal.Request{})
	if err != nil {
		t.Fatalf("journal Execute error: %v", err)
	}
	if len(out.Observations) != 1 {
		t.Fatalf("observations=%d want 1", len(out.Observations))
	}
}
