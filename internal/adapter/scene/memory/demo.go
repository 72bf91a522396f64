package memory

import "battlebridge/internal/domain/battle"

// NewDemo builds a scene with a three-member party. The last party member
// has not loaded its species, moveset or IVs yet.
func NewDemo() *Scene {
	ivs := battle.StatBlock{31, 20, 25, 31, 18, 27}
	party := []*battle.Pokemon{
		{
			PokemonID:       1,
			SpeciesData:     &battle.Species{ID: 4},
			CurrentHP:       39,
			StatValues:      battle.StatBlock{39, 52, 43, 60, 50, 65},
			IsVisible:       true,
			Moves:           []battle.Move{{ID: 10, PP: 35}, {ID: 45, PP: 40}, {ID: 52, PP: 25}},
			LevelValue:      12,
			LuckValue:       1,
			NatureValue:     3,
			Ability:         0,
			GenderValue:     battle.GenderMale,
			IndividualStats: &ivs,
			Tera:            9,
		},
		{
			PokemonID:   2,
			Form:        1,
			SpeciesData: &battle.Species{ID: 25},
			CurrentHP:   35,
			StatValues:  battle.StatBlock{35, 55, 40, 50, 50, 90},
			Moves:       []battle.Move{{ID: 84, PP: 30}},
			LevelValue:  10,
			HasPassive:  true,
			Ability:     1,
			GenderValue: battle.GenderFemale,
			Tera:        12,
		},
		{
			PokemonID:   3,
			CurrentHP:   44,
			StatValues:  battle.StatBlock{44, 48, 65, 50, 64, 43},
			LevelValue:  9,
			GenderValue: battle.GenderGenderless,
			Tera:        battle.TypeUnknown,
		},
	}
	s := New(party, nil)
	s.StartBattle(battle.BattleInfo{WaveIndex: 1})
	s.enemy = []*battle.Pokemon{defaultSpawn(1)}
	return s
}
