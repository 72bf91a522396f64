package observe

import (
	"battlebridge/internal/app/schema"
	"battlebridge/internal/domain/battle"
)

// Project reads the listed fields from a live combatant. Fields backed by
// uninitialized nested state come out absent instead of failing.
func Project(c battle.Combatant, fields []schema.Field) View {
	entries := make([]Entry, 0, len(fields))
	for _, f := range fields {
		value, ok := f.Extract(c)
		if !ok {
			value = nil
		}
		entries = append(entries, Entry{Name: f.Name, Value: value, Present: ok})
	}
	return View{entries: entries}
}

func projectAll(party []battle.Combatant, fields []schema.Field) []View {
	out := make([]View, 0, len(party))
	for _, c := range party {
		out = append(out, Project(c, fields))
	}
	return out
}
