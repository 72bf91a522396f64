package schema

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownVersion  = errors.New("unknown schema version")
	ErrInvalidRevision = errors.New("invalid schema revision")
)

type Version string

func ParseVersion(raw string) Version {
	return Version(strings.ToLower(strings.TrimSpace(raw)))
}

type Side string

const (
	SideParty Side = "party"
	SideEnemy Side = "enemy"
)

// Section is a snapshot-level block outside the per-combatant views.
type Section string

const (
	SectionPhase Section = "phase"
	SectionMeta  Section = "metaData"
)

// Revision describes one version as a delta over the version before it.
type Revision struct {
	Version     Version
	Party       []Field
	Enemy       []Field
	Sections    []Section
	RetireParty []string
	RetireEnemy []string
}

type Table struct {
	Version  Version
	Party    []Field
	Enemy    []Field
	Sections []Section
}

func (t Table) Has(s Section) bool {
	for _, have := range t.Sections {
		if have == s {
			return true
		}
	}
	return false
}

func (t Table) Fields(side Side) []Field {
	if side == SideEnemy {
		return t.Enemy
	}
	return t.Party
}

func (t Table) FieldNames(side Side) []string {
	fields := t.Fields(side)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Name)
	}
	return out
}

func (t Table) clone() Table {
	return Table{
		Version:  t.Version,
		Party:    append([]Field(nil), t.Party...),
		Enemy:    append([]Field(nil), t.Enemy...),
		Sections: append([]Section(nil), t.Sections...),
	}
}

type Registry struct {
	order  []Version
	tables map[Version]Table
}

// NewRegistry folds revisions in order. Every field of a version carries
// into the next one under the same name unless the revision retires it.
func NewRegistry(revisions ...Revision) (*Registry, error) {
	r := &Registry{tables: make(map[Version]Table, len(revisions))}
	prev := Table{}
	for _, rev := range revisions {
		if strings.TrimSpace(string(rev.Version)) == "" {
			return nil, fmt.Errorf("%w: empty version", ErrInvalidRevision)
		}
		if _, dup := r.tables[rev.Version]; dup {
			return nil, fmt.Errorf("%w: duplicate version %s", ErrInvalidRevision, rev.Version)
		}
		party, err := applyDelta(prev.Party, rev.Party, rev.RetireParty)
		if err != nil {
			return nil, fmt.Errorf("%w: %s party: %v", ErrInvalidRevision, rev.Version, err)
		}
		enemy, err := applyDelta(prev.Enemy, rev.Enemy, rev.RetireEnemy)
		if err != nil {
			return nil, fmt.Errorf("%w: %s enemy: %v", ErrInvalidRevision, rev.Version, err)
		}
		sections := append([]Section(nil), prev.Sections...)
		for _, s := range rev.Sections {
			if (Table{Sections: sections}).Has(s) {
				return nil, fmt.Errorf("%w: %s section %s already enabled", ErrInvalidRevision, rev.Version, s)
			}
			sections = append(sections, s)
		}
		next := Table{Version: rev.Version, Party: party, Enemy: enemy, Sections: sections}
		r.tables[rev.Version] = next
		r.order = append(r.order, rev.Version)
		prev = next
	}
	return r, nil
}

func applyDelta(base, added []Field, retired []string) ([]Field, error) {
	drop := make(map[string]bool, len(retired))
	for _, name := range retired {
		drop[name] = true
	}
	out := make([]Field, 0, len(base)+len(added))
	seen := make(map[string]bool, len(base)+len(added))
	for _, f := range base {
		if drop[f.Name] {
			delete(drop, f.Name)
			continue
		}
		out = append(out, f)
		seen[f.Name] = true
	}
	for name := range drop {
		return nil, fmt.Errorf("retires unknown field %q", name)
	}
	for _, f := range added {
		if f.Name == "" || f.Extract == nil {
			return nil, fmt.Errorf("field %q has no name or extractor", f.Name)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("field %q already present", f.Name)
		}
		seen[f.Name] = true
		out = append(out, f)
	}
	return out, nil
}

func (r *Registry) Lookup(v Version) (Table, error) {
	t, ok := r.tables[v]
	if !ok {
		return Table{}, fmt.Errorf("%w: %q", ErrUnknownVersion, v)
	}
	return t.clone(), nil
}

func (r *Registry) Versions() []Version {
	return append([]Version(nil), r.order...)
}

func (r *Registry) Latest() Version {
	if len(r.order) == 0 {
		return ""
	}
	return r.order[len(r.order)-1]
}
