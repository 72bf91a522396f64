package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"time"

	httpadapter "battlebridge/internal/adapter/http"
	mcpadapter "battlebridge/internal/adapter/mcp"
	metricsinmem "battlebridge/internal/adapter/metrics/inmemory"
	gormrepo "battlebridge/internal/adapter/repo/gorm"
	memrepo "battlebridge/internal/adapter/repo/memory"
	scenemem "battlebridge/internal/adapter/scene/memory"
	"battlebridge/internal/app/bridge"
	"battlebridge/internal/app/journal"
	"battlebridge/internal/app/ports"
	"battlebridge/internal/config"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverVersion = "0.4.0"

type application struct {
	bridge  *bridge.Bridge
	scene   *scenemem.Scene
	handler httpadapter.Handler
	mcp     *mcp.Server
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		hlog.Fatalf("load config: %v", err)
	}
	level, _ := cfg.HlogLevel()
	hlog.SetLevel(level)
	hlog.SetOutput(os.Stderr)

	a, err := buildApp(context.Background(), cfg)
	if err != nil {
		hlog.Fatalf("build bridge: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go runScene(ctx, a.scene, cfg.TickInterval)

	if cfg.MCPStdio {
		go func() {
			if err := mcpadapter.Run(ctx, a.mcp, &mcp.StdioTransport{}); err != nil {
				hlog.Errorf("mcp stdio stopped: %v", err)
			}
		}()
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	a.handler.RegisterRoutes(s)

	hlog.Infof("battlebridge listening on %s (schema %s, actions enabled=%t)", cfg.Addr, a.bridge.Version(), cfg.ActionsEnabled)
	s.Spin()
}

// buildApp wires every component. An unknown schema version fails here,
// before anything is served.
func buildApp(ctx context.Context, cfg config.Config) (*application, error) {
	kpi := metricsinmem.NewRecorder()
	b, err := bridge.New(bridge.NewCell(), bridge.Config{
		Version:        cfg.Version(),
		ActionsEnabled: cfg.ActionsEnabled,
		Metrics:        kpi,
		Logger:         hlog.DefaultLogger(),
	})
	if err != nil {
		return nil, err
	}

	scene := scenemem.NewDemo()
	if err := b.Register(scene); err != nil {
		return nil, fmt.Errorf("register scene: %w", err)
	}

	h := httpadapter.Handler{Bridge: b, KPI: kpi}
	if cfg.RecordObservations || cfg.DBDSN != "" {
		repo, err := buildObservationRepo(ctx, cfg)
		if err != nil {
			return nil, err
		}
		h.JournalUC = journal.UseCase{Repo: repo}
		if cfg.RecordObservations {
			h.Recorder = journal.Recorder{Repo: repo, Now: time.Now}
		}
	}

	mcpServer := mcpadapter.NewServer(b, h.Recorder, serverVersion)

	return &application{
		bridge:  b,
		scene:   scene,
		handler: h,
		mcp:     mcpServer,
	}, nil
}

func buildObservationRepo(ctx context.Context, cfg config.Config) (ports.ObservationRepository, error) {
	if cfg.DBDSN == "" {
		hlog.Infof("observation journal kept in memory")
		return memrepo.NewObservationRepo(memrepo.NewStore()), nil
	}
	db, err := gormrepo.OpenPostgres(cfg.DBDSN)
	if err != nil {
		return nil, err
	}
	var migrations fs.FS = gormrepo.Migrations()
	if cfg.MigrationsDir != "" {
		migrations = os.DirFS(cfg.MigrationsDir)
	}
	applied, err := gormrepo.ApplyMigrations(ctx, db, migrations)
	if err != nil {
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	hlog.Infof("observation journal on postgres (%d migrations applied)", len(applied))
	return gormrepo.NewObservationRepo(db), nil
}

func runScene(ctx context.Context, scene *scenemem.Scene, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			scene.Step()
		}
	}
}
