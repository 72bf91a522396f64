package schema

import "battlebridge/internal/domain/battle"

type Kind string

const (
	KindInteger   Kind = "integer"
	KindBoolean   Kind = "boolean"
	KindStatBlock Kind = "stat_block"
	KindMoveList  Kind = "move_list"
)

// Extractor reads one value from a combatant. The bool is false when the
// value comes from nested state the combatant has not initialized.
type Extractor func(c battle.Combatant) (any, bool)

type Field struct {
	Name     string
	Kind     Kind
	Optional bool
	Extract  Extractor
}

// MoveRef is the projected form of one moveset slot.
type MoveRef struct {
	ID int `json:"id"`
}

func always(fn func(c battle.Combatant) any) Extractor {
	return func(c battle.Combatant) (any, bool) {
		return fn(c), true
	}
}

var (
	FieldID = Field{Name: "id", Kind: KindInteger, Extract: always(func(c battle.Combatant) any {
		return c.ID()
	})}
	FieldFormIndex = Field{Name: "formIndex", Kind: KindInteger, Extract: always(func(c battle.Combatant) any {
		return c.FormIndex()
	})}
	FieldDexNr = Field{Name: "dex_nr", Kind: KindInteger, Optional: true, Extract: func(c battle.Combatant) (any, bool) {
		species, ok := c.Species()
		if !ok {
			return nil, false
		}
		return species.ID, true
	}}
	FieldHP = Field{Name: "hp", Kind: KindInteger, Extract: always(func(c battle.Combatant) any {
		return c.HP()
	})}
	FieldStats = Field{Name: "stats", Kind: KindStatBlock, Extract: always(func(c battle.Combatant) any {
		return c.Stats()
	})}
	FieldVisible = Field{Name: "visible", Kind: KindBoolean, Extract: always(func(c battle.Combatant) any {
		return c.Visible()
	})}
	FieldMoveset = Field{Name: "moveset", Kind: KindMoveList, Optional: true, Extract: func(c battle.Combatant) (any, bool) {
		moves, ok := c.Moveset()
		if !ok {
			return nil, false
		}
		out := make([]MoveRef, 0, len(moves))
		for _, m := range moves {
			out = append(out, MoveRef{ID: m.ID})
		}
		return out, true
	}}
	FieldLevel = Field{Name: "level", Kind: KindInteger, Extract: always(func(c battle.Combatant) any {
		return c.Level()
	})}
	FieldLuck = Field{Name: "luck", Kind: KindInteger, Extract: always(func(c battle.Combatant) any {
		return c.Luck()
	})}
	FieldTerastallized = Field{Name: "isTerastallized", Kind: KindBoolean, Extract: always(func(c battle.Combatant) any {
		return c.Terastallized()
	})}
	FieldNature = Field{Name: "nature", Kind: KindInteger, Extract: always(func(c battle.Combatant) any {
		return int(c.Nature())
	})}
	FieldPassive = Field{Name: "passive", Kind: KindBoolean, Extract: always(func(c battle.Combatant) any {
		return c.Passive()
	})}
	FieldAbilityIndex = Field{Name: "abilityIndex", Kind: KindInteger, Extract: always(func(c battle.Combatant) any {
		return c.AbilityIndex()
	})}
	FieldGender = Field{Name: "gender", Kind: KindInteger, Extract: always(func(c battle.Combatant) any {
		return int(c.Gender())
	})}
	FieldIVs = Field{Name: "ivs", Kind: KindStatBlock, Optional: true, Extract: func(c battle.Combatant) (any, bool) {
		ivs, ok := c.IVs()
		if !ok {
			return nil, false
		}
		return ivs, true
	}}
	FieldTeraType = Field{Name: "teraType", Kind: KindInteger, Extract: always(func(c battle.Combatant) any {
		return int(c.TeraType())
	})}
)
