package observe

import (
	"battlebridge/internal/app/schema"
	"battlebridge/internal/domain/battle"
)

// Aggregate builds a fresh snapshot of the simulation under one schema
// table. It reads live state and must run inside the simulation's loop.
func Aggregate(sim battle.Simulation, table schema.Table) Snapshot {
	snap := Snapshot{
		Version: table.Version,
		Player:  projectAll(sim.Party(), table.Party),
		Enemy:   projectAll(sim.EnemyParty(), table.Enemy),
	}
	if table.Has(schema.SectionPhase) {
		if phase, ok := sim.CurrentPhase(); ok {
			snap.Phase = string(phase)
		}
	}
	if table.Has(schema.SectionMeta) {
		if info, ok := sim.CurrentBattle(); ok {
			snap.Meta = &BattleMeta{WaveIndex: info.WaveIndex, Double: info.Double}
		}
	}
	return snap
}
