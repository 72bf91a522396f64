package bridge

import (
	"errors"
	"fmt"
	"sync"

	"battlebridge/internal/app/action"
	"battlebridge/internal/app/observe"
	"battlebridge/internal/app/ports"
	"battlebridge/internal/app/schema"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var (
	ErrNilScene = errors.New("nil scene handle")
	ErrNilCell  = errors.New("nil scene cell")
)

type Logger interface {
	Infof(format string, v ...interface{})
}

type Config struct {
	Version        schema.Version
	Registry       *schema.Registry
	ActionsEnabled bool
	Metrics        ports.BridgeMetrics
	Logger         Logger
}

// SnapshotFunc is the published zero-argument observation entry point.
type SnapshotFunc func() observe.Snapshot

type ActionFunc func(cmd action.Command) error

type Bridge struct {
	cell           *Cell
	table          schema.Table
	actionsEnabled bool
	dispatcher     action.Dispatcher
	metrics        ports.BridgeMetrics
	logger         Logger

	mu       sync.RWMutex
	snapshot SnapshotFunc
	act      ActionFunc
}

// New binds the bridge to one schema version. An unknown version is an
// error; there is no fallback to another version.
func New(cell *Cell, cfg Config) (*Bridge, error) {
	if cell == nil {
		return nil, ErrNilCell
	}
	registry := cfg.Registry
	if registry == nil {
		registry = schema.Default()
	}
	table, err := registry.Lookup(cfg.Version)
	if err != nil {
		return nil, fmt.Errorf("bridge: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = hlog.DefaultLogger()
	}
	return &Bridge{
		cell:           cell,
		table:          table,
		actionsEnabled: cfg.ActionsEnabled,
		dispatcher:     action.Dispatcher{Scenes: cell, Metrics: cfg.Metrics},
		metrics:        cfg.Metrics,
		logger:         logger,
	}, nil
}

// Register binds scene into the cell and publishes the entry points on the
// first call. Later calls only retarget them.
func (b *Bridge) Register(scene ports.SceneHandle) error {
	if scene == nil {
		return ErrNilScene
	}
	rebound := b.cell.Bind(scene)

	b.mu.Lock()
	if b.snapshot == nil {
		b.snapshot = b.takeSnapshot
		if b.actionsEnabled {
			b.act = b.dispatcher.Dispatch
		}
	}
	b.mu.Unlock()

	if rebound {
		b.logger.Infof("bridge: scene rebound version=%s", b.table.Version)
	} else {
		b.logger.Infof("bridge: scene registered version=%s actions=%t", b.table.Version, b.actionsEnabled)
	}
	return nil
}

func (b *Bridge) SnapshotFunc() (SnapshotFunc, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snapshot, b.snapshot != nil
}

// ActionFunc is published only when actions are enabled and a scene has
// been registered.
func (b *Bridge) ActionFunc() (ActionFunc, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.act, b.act != nil
}

func (b *Bridge) ActionsEnabled() bool {
	return b.actionsEnabled
}

func (b *Bridge) Version() schema.Version {
	return b.table.Version
}

func (b *Bridge) Table() schema.Table {
	return b.table
}

func (b *Bridge) takeSnapshot() observe.Snapshot {
	scene, ok := b.cell.Load()
	if !ok {
		return observe.Snapshot{Version: b.table.Version, Player: []observe.View{}, Enemy: []observe.View{}}
	}
	var snap observe.Snapshot
	scene.RunInLoop(func() {
		snap = observe.Aggregate(scene, b.table)
	})
	if b.metrics != nil {
		b.metrics.RecordSnapshot()
	}
	return snap
}
