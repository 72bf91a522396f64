package schema

import (
	"fmt"

	"github.com/iancoleman/orderedmap"
	"github.com/invopop/jsonschema"
)

// JSONSchema describes the snapshot document produced under this table.
func (t Table) JSONSchema() *jsonschema.Schema {
	props := orderedmap.New()
	props.Set("version", &jsonschema.Schema{Type: "string", Description: "schema version tag"})
	props.Set("player", &jsonschema.Schema{Type: "array", Items: combatantSchema(t.Party)})
	props.Set("enemy", &jsonschema.Schema{Type: "array", Items: combatantSchema(t.Enemy)})
	if t.Has(SectionPhase) {
		props.Set("phase", &jsonschema.Schema{Type: "string", Description: "current phase name, omitted when no phase is active"})
	}
	if t.Has(SectionMeta) {
		meta := orderedmap.New()
		meta.Set("waveIndex", &jsonschema.Schema{Type: "integer"})
		meta.Set("isDoubleFight", &jsonschema.Schema{Type: "boolean"})
		props.Set("metaData", &jsonschema.Schema{
			Type:        "object",
			Properties:  meta,
			Required:    []string{"waveIndex", "isDoubleFight"},
			Description: "current battle, omitted outside of a battle",
		})
	}
	return &jsonschema.Schema{
		Version:     jsonschema.Version,
		Title:       fmt.Sprintf("Battle scene snapshot %s", t.Version),
		Description: "Point-in-time observation of both parties",
		Type:        "object",
		Properties:  props,
		Required:    []string{"version", "player", "enemy"},
	}
}

func combatantSchema(fields []Field) *jsonschema.Schema {
	props := orderedmap.New()
	required := make([]string, 0, len(fields))
	for _, f := range fields {
		s := kindSchema(f.Kind)
		if f.Optional {
			s = &jsonschema.Schema{OneOf: []*jsonschema.Schema{s, {Type: "null"}}}
		}
		props.Set(f.Name, s)
		required = append(required, f.Name)
	}
	return &jsonschema.Schema{Type: "object", Properties: props, Required: required}
}

func kindSchema(k Kind) *jsonschema.Schema {
	switch k {
	case KindBoolean:
		return &jsonschema.Schema{Type: "boolean"}
	case KindStatBlock:
		return &jsonschema.Schema{
			Type:        "array",
			Items:       &jsonschema.Schema{Type: "integer"},
			Description: "hp, atk, def, spatk, spdef, spd",
		}
	case KindMoveList:
		move := orderedmap.New()
		move.Set("id", &jsonschema.Schema{Type: "integer"})
		return &jsonschema.Schema{
			Type:  "array",
			Items: &jsonschema.Schema{Type: "object", Properties: move, Required: []string{"id"}},
		}
	default:
		return &jsonschema.Schema{Type: "integer"}
	}
}
