package observe

import (
	"encoding/json"

	"battlebridge/internal/app/schema"

	"github.com/iancoleman/orderedmap"
)

// Entry is one projected field. Value is nil when Present is false.
type Entry struct {
	Name    string
	Value   any
	Present bool
}

// View is the plain projection of one combatant, in schema field order.
type View struct {
	entries []Entry
}

func (v View) Len() int {
	return len(v.entries)
}

func (v View) Get(name string) (Entry, bool) {
	for _, e := range v.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

func (v View) Names() []string {
	out := make([]string, 0, len(v.entries))
	for _, e := range v.entries {
		out = append(out, e.Name)
	}
	return out
}

func (v View) Entries() []Entry {
	return append([]Entry(nil), v.entries...)
}

// MarshalJSON writes fields in schema order; absent fields become null.
func (v View) MarshalJSON() ([]byte, error) {
	o := orderedmap.New()
	for _, e := range v.entries {
		if !e.Present {
			o.Set(e.Name, nil)
			continue
		}
		o.Set(e.Name, e.Value)
	}
	return json.Marshal(o)
}

type BattleMeta struct {
	WaveIndex int  `json:"waveIndex"`
	Double    bool `json:"isDoubleFight"`
}

type Snapshot struct {
	Version schema.Version `json:"version"`
	Player  []View         `json:"player"`
	Enemy   []View         `json:"enemy"`
	Phase   string         `json:"phase,omitempty"`
	Meta    *BattleMeta    `json:"metaData,omitempty"`
}
