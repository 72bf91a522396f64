package action

import (
	"fmt"

	"battlebridge/internal/app/ports"
)

type SceneSource interface {
	Load() (ports.SceneHandle, bool)
}

// Dispatcher turns commands into a key press on the bound scene's input
// controller. With no scene bound a valid command is dropped silently.
type Dispatcher struct {
	Scenes  SceneSource
	Metrics ports.BridgeMetrics
}

func (d Dispatcher) Dispatch(cmd Command) error {
	code, ok := cmd.Keycode()
	if !ok {
		if d.Metrics != nil {
			d.Metrics.RecordActionRejected()
		}
		return fmt.Errorf("%w: %q", ErrInvalidCommand, cmd)
	}
	var scene ports.SceneHandle
	if d.Scenes != nil {
		scene, ok = d.Scenes.Load()
	}
	if !ok || scene == nil {
		if d.Metrics != nil {
			d.Metrics.RecordActionDropped()
		}
		return nil
	}
	pressed := false
	scene.RunInLoop(func() {
		in := scene.Input()
		if in == nil {
			return
		}
		in.KeyDown(code)
		in.KeyUp(code)
		pressed = true
	})
	if d.Metrics == nil {
		return nil
	}
	if pressed {
		d.Metrics.RecordActionDispatched(string(cmd))
	} else {
		d.Metrics.RecordActionDropped()
	}
	return nil
}
