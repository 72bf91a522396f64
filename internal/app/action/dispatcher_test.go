package action

import (
	"errors"
	"testing"

	"battlebridge/internal/app/ports"
	"battlebridge/internal/domain/battle"
	"battlebridge/internal/domain/battle/mocks"

	"go.uber.org/mock/gomock"
)

type fakeScene struct {
	input     battle.InputController
	loopCalls int
}

func (s *fakeScene) Party() []battle.Combatant                { return nil }
func (s *fakeScene) EnemyParty() []battle.Combatant           { return nil }
func (s *fakeScene) CurrentPhase() (battle.Phase, bool)       { return "", false }
func (s *fakeScene) CurrentBattle() (battle.BattleInfo, bool) { return battle.BattleInfo{}, false }
func (s *fakeScene) Input() battle.InputController            { return s.input }

func (s *fakeScene) RunInLoop(fn func()) {
	s.loopCalls++
	fn()
}

type fixedSource struct {
	scene ports.SceneHandle
}

func (f fixedSource) Load() (ports.SceneHandle, bool) {
	return f.scene, f.scene != nil
}

type countingMetrics struct {
	dispatched []string
	dropped    int
	rejected   int
}

func (m *countingMetrics) RecordSnapshot()                 {}
func (m *countingMetrics) RecordActionDispatched(c string) { m.dispatched = append(m.dispatched, c) }
func (m *countingMetrics) RecordActionDropped()            { m.dropped++ }
func (m *countingMetrics) RecordActionRejected()           { m.rejected++ }

var _ ports.SceneHandle = (*fakeScene)(nil)
var _ ports.BridgeMetrics = (*countingMetrics)(nil)

func TestParseCommand(t *testing.T) {
	cmd, err := ParseCommand("  Confirm ")
	if err != nil {
		t.Fatalf("ParseCommand error: %v", err)
	}
	if cmd != CommandConfirm {
		t.Fatalf("cmd=%q want %q", cmd, CommandConfirm)
	}
	if _, err := ParseCommand("jump"); !errors.Is(err, ErrInvalidCommand) {
		t.Fatalf("expected ErrInvalidCommand, got %v", err)
	}
}

func TestDispatch_PressesAndReleasesKey(t *testing.T) {
	cases := []struct {
		cmd  Command
		code battle.Keycode
	}{
		{CommandUp, 38},
		{CommandDown, 40},
		{CommandLeft, 37},
		{CommandRight, 39},
		{CommandConfirm, 32},
	}
	for _, tc := range cases {
		t.Run(string(tc.cmd), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			input := mocks.NewMockInputController(ctrl)
			gomock.InOrder(
				input.EXPECT().KeyDown(tc.code),
				input.EXPECT().KeyUp(tc.code),
			)
			scene := &fakeScene{input: input}
			metrics := &countingMetrics{}

			d := Dispatcher{Scenes: fixedSource{scene: scene}, Metrics: metrics}
			if err := d.Dispatch(tc.cmd); err != nil {
				t.Fatalf("Dispatch error: %v", err)
			}
			if scene.loopCalls != 1 {
				t.Fatalf("loopCalls=%d want 1", scene.loopCalls)
			}
			if len(metrics.dispatched) != 1 || metrics.dispatched[0] != string(tc.cmd) {
				t.Fatalf("dispatched=%v want [%s]", metrics.dispatched, tc.cmd)
			}
		})
	}
}

func TestDispatch_ConfirmWithoutSceneIsNoop(t *testing.T) {
	metrics := &countingMetrics{}
	d := Dispatcher{Scenes: fixedSource{}, Metrics: metrics}
	if err := d.Dispatch(CommandConfirm); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if metrics.dropped != 1 {
		t.Fatalf("dropped=%d want 1", metrics.dropped)
	}

	if err := (Dispatcher{}).Dispatch(CommandConfirm); err != nil {
		t.Fatalf("zero dispatcher error: %v", err)
	}
}

func TestDispatch_SceneWithoutInputIsDropped(t *testing.T) {
	scene := &fakeScene{}
	metrics := &countingMetrics{}
	d := Dispatcher{Scenes: fixedSource{scene: scene}, Metrics: metrics}

	if err := d.Dispatch(CommandUp); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if scene.loopCalls != 1 {
		t.Fatalf("loopCalls=%d want 1", scene.loopCalls)
	}
	if metrics.dropped != 1 || len(metrics.dispatched) != 0 {
		t.Fatalf("dropped=%d dispatched=%v want one drop", metrics.dropped, metrics.dispatched)
	}
}

func TestDispatch_RejectsUnknownCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	input := mocks.NewMockInputController(ctrl)
	metrics := &countingMetrics{}

	d := Dispatcher{Scenes: fixedSource{scene: &fakeScene{input: input}}, Metrics: metrics}
	if err := d.Dispatch(Command("jump")); !errors.Is(err, ErrInvalidCommand) {
		t.Fatalf("expected ErrInvalidCommand, got %v", err)
	}
	if metrics.rejected != 1 {
		t.Fatalf("rejected=%d want 1", metrics.rejected)
	}
}
