package memory

import (
	"sync"

	"battlebridge/internal/app/ports"
	"battlebridge/internal/domain/battle"
)

// Command menu slots, laid out as a 2x2 grid.
const (
	MenuFight = iota
	MenuBall
	MenuPokemon
	MenuRun
)

type keyEvent struct {
	code battle.Keycode
	down bool
}

// Scene is a small turn loop used as the host simulation in the demo server
// and in tests. All state changes happen inside Step or RunInLoop.
type Scene struct {
	mu     sync.Mutex
	party  []*battle.Pokemon
	enemy  []*battle.Pokemon
	phase  battle.Phase
	info   *battle.BattleInfo
	cursor int
	held   map[battle.Keycode]bool
	ticks  uint64
	spawn  func(wave int) *battle.Pokemon

	input *inputQueue
}

type Option func(*Scene)

// WithSpawner replaces the enemy generated when a wave is cleared.
func WithSpawner(fn func(wave int) *battle.Pokemon) Option {
	return func(s *Scene) {
		s.spawn = fn
	}
}

func New(party, enemy []*battle.Pokemon, opts ...Option) *Scene {
	s := &Scene{
		party: party,
		enemy: enemy,
		held:  map[battle.Keycode]bool{},
		input: &inputQueue{},
		spawn: defaultSpawn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scene) Party() []battle.Combatant {
	return combatants(s.party)
}

func (s *Scene) EnemyParty() []battle.Combatant {
	return combatants(s.enemy)
}

func (s *Scene) CurrentPhase() (battle.Phase, bool) {
	return s.phase, s.phase != ""
}

func (s *Scene) CurrentBattle() (battle.BattleInfo, bool) {
	if s.info == nil {
		return battle.BattleInfo{}, false
	}
	return *s.info, true
}

func (s *Scene) Input() battle.InputController {
	return s.input
}

func (s *Scene) RunInLoop(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// StartBattle enters the encounter for the given wave.
func (s *Scene) StartBattle(info battle.BattleInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = &info
	s.phase = battle.PhaseEncounter
	s.cursor = MenuFight
}

func (s *Scene) SetPhase(p battle.Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = p
}

func (s *Scene) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

func (s *Scene) Ticks() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}

// Step runs one update: queued key events are applied, then the turn
// advances.
func (s *Scene) Step() {
	events := s.input.drain()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ticks++
	for _, ev := range events {
		s.applyKey(ev)
	}
	s.advance()
}

func (s *Scene) applyKey(ev keyEvent) {
	if !ev.down {
		delete(s.held, ev.code)
		return
	}
	if s.held[ev.code] {
		return
	}
	s.held[ev.code] = true
	if s.phase != battle.PhaseCommand {
		return
	}
	switch ev.code {
	case battle.KeyLeft, battle.KeyRight:
		s.cursor ^= 1
	case battle.KeyUp, battle.KeyDown:
		s.cursor ^= 2
	case battle.KeySpace, battle.KeyEnter:
		s.phase = battle.PhaseTurnEnd
	}
}

func (s *Scene) advance() {
	switch s.phase {
	case battle.PhaseEncounter:
		for _, p := range s.enemy {
			p.IsVisible = true
		}
		s.phase = battle.PhaseCommand
	case battle.PhaseTurnEnd:
		s.resolveTurn()
	}
}

func (s *Scene) resolveTurn() {
	if len(s.enemy) == 0 || len(s.party) == 0 {
		s.phase = battle.PhaseCommand
		return
	}
	target := s.enemy[0]
	switch s.cursor {
	case MenuFight:
		target.CurrentHP -= max(1, s.party[0].StatValues[battle.StatAtk]/4)
	case MenuRun:
		s.enemy = s.enemy[:0]
	}
	if len(s.enemy) > 0 && target.CurrentHP > 0 {
		s.phase = battle.PhaseCommand
		return
	}
	wave := 1
	if s.info != nil {
		wave = s.info.WaveIndex + 1
	}
	next := battle.BattleInfo{WaveIndex: wave}
	s.info = &next
	s.enemy = []*battle.Pokemon{s.spawn(wave)}
	s.phase = battle.PhaseEncounter
	s.cursor = MenuFight
}

func combatants(ps []*battle.Pokemon) []battle.Combatant {
	out := make([]battle.Combatant, 0, len(ps))
	for _, p := range ps {
		out = append(out, p)
	}
	return out
}

func defaultSpawn(wave int) *battle.Pokemon {
	return &battle.Pokemon{
		PokemonID:   1000 + wave,
		SpeciesData: &battle.Species{ID: 19 + wave%10},
		CurrentHP:   20 + wave*2,
		StatValues:  battle.StatBlock{20 + wave*2, 10 + wave, 10 + wave, 8 + wave, 8 + wave, 12 + wave},
		LevelValue:  wave + 2,
		GenderValue: battle.GenderMale,
		Tera:        battle.TypeUnknown,
	}
}

type inputQueue struct {
	mu      sync.Mutex
	pending []keyEvent
}

func (q *inputQueue) KeyDown(code battle.Keycode) {
	q.push(keyEvent{code: code, down: true})
}

func (q *inputQueue) KeyUp(code battle.Keycode) {
	q.push(keyEvent{code: code, down: false})
}

func (q *inputQueue) push(ev keyEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, ev)
}

func (q *inputQueue) drain() []keyEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}

var _ ports.SceneHandle = (*Scene)(nil)
