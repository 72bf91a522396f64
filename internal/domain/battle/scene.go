package battle

type Phase string

const (
	PhaseTitle          Phase = "TitlePhase"
	PhaseEncounter      Phase = "EncounterPhase"
	PhaseCommand        Phase = "CommandPhase"
	PhaseSelectModifier Phase = "SelectModifierPhase"
	PhaseLearnMove      Phase = "LearnMovePhase"
	PhaseTurnEnd        Phase = "TurnEndPhase"
)

type BattleInfo struct {
	WaveIndex int
	Double    bool
}

// Simulation is what the bridge reads from a live scene. Party and
// EnemyParty return the scene's current slot order.
type Simulation interface {
	Party() []Combatant
	EnemyParty() []Combatant
	CurrentPhase() (Phase, bool)
	CurrentBattle() (BattleInfo, bool)
}
