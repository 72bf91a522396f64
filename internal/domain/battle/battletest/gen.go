// Package battletest holds rapid generators for battle domain values.
package battletest

import (
	"battlebridge/internal/domain/battle"

	"pgregory.net/rapid"
)

func StatBlock() *rapid.Generator[battle.StatBlock] {
	return rapid.Custom(func(t *rapid.T) battle.StatBlock {
		var s battle.StatBlock
		for i := range s {
			s[i] = rapid.IntRange(0, 999).Draw(t, "stat")
		}
		return s
	})
}

// Pokemon draws a combatant whose optional nested state is independently
// present or absent.
func Pokemon() *rapid.Generator[*battle.Pokemon] {
	return rapid.Custom(func(t *rapid.T) *battle.Pokemon {
		p := &battle.Pokemon{
			PokemonID:       rapid.IntRange(1, 1<<30).Draw(t, "id"),
			Form:            rapid.IntRange(0, 8).Draw(t, "form"),
			CurrentHP:       rapid.IntRange(0, 999).Draw(t, "hp"),
			StatValues:      StatBlock().Draw(t, "stats"),
			IsVisible:       rapid.Bool().Draw(t, "visible"),
			LevelValue:      rapid.IntRange(1, 200).Draw(t, "level"),
			LuckValue:       rapid.IntRange(0, 14).Draw(t, "luck"),
			IsTerastallized: rapid.Bool().Draw(t, "tera"),
			NatureValue:     battle.Nature(rapid.IntRange(0, 24).Draw(t, "nature")),
			HasPassive:      rapid.Bool().Draw(t, "passive"),
			Ability:         rapid.IntRange(0, 2).Draw(t, "ability"),
			GenderValue:     battle.Gender(rapid.IntRange(-1, 1).Draw(t, "gender")),
			Tera:            battle.Type(rapid.IntRange(-1, 18).Draw(t, "teraType")),
		}
		if rapid.Bool().Draw(t, "hasSpecies") {
			p.SpeciesData = &battle.Species{ID: rapid.IntRange(1, 1025).Draw(t, "species")}
		}
		if rapid.Bool().Draw(t, "hasMoves") {
			ids := rapid.SliceOfN(rapid.IntRange(1, 900), 0, 4).Draw(t, "moves")
			p.Moves = make([]battle.Move, 0, len(ids))
			for _, id := range ids {
				p.Moves = append(p.Moves, battle.Move{ID: id, PP: 10})
			}
		}
		if rapid.Bool().Draw(t, "hasIVs") {
			ivs := StatBlock().Draw(t, "ivs")
			p.IndividualStats = &ivs
		}
		return p
	})
}

func Party(maxLen int) *rapid.Generator[[]*battle.Pokemon] {
	return rapid.SliceOfN(Pokemon(), 0, maxLen)
}

func Combatants(party []*battle.Pokemon) []battle.Combatant {
	out := make([]battle.Combatant, 0, len(party))
	for _, p := range party {
		out = append(out, p)
	}
	return out
}
