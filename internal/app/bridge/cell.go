package bridge

import (
	"sync"

	"battlebridge/internal/app/ports"
)

// Cell holds the one live scene handle. It is owned by the host and shared
// with the bridge, and a new Bind replaces the previous handle.
type Cell struct {
	mu    sync.RWMutex
	scene ports.SceneHandle
}

func NewCell() *Cell {
	return &Cell{}
}

// Bind stores scene and reports whether it replaced an earlier handle.
func (c *Cell) Bind(scene ports.SceneHandle) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	rebound := c.scene != nil
	c.scene = scene
	return rebound
}

func (c *Cell) Load() (ports.SceneHandle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scene, c.scene != nil
}
