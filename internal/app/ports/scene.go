package ports

import "battlebridge/internal/domain/battle"

// SceneHandle is the live scene a host binds to the bridge.
type SceneHandle interface {
	battle.Simulation
	Input() battle.InputController
	// RunInLoop runs fn synchronously between two simulation updates.
	RunInLoop(fn func())
}
