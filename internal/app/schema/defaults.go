package schema

const (
	V1 Version = "v1"
	V2 Version = "v2"
	V3 Version = "v3"
	V4 Version = "v4"
)

func DefaultRevisions() []Revision {
	return []Revision{
		{
			Version: V1,
			Party:   []Field{FieldFormIndex, FieldDexNr, FieldHP, FieldStats, FieldVisible, FieldMoveset},
			Enemy:   []Field{FieldFormIndex, FieldDexNr, FieldHP, FieldStats},
		},
		{
			Version:  V2,
			Sections: []Section{SectionPhase},
		},
		{
			Version: V3,
			Party: []Field{
				FieldLevel, FieldLuck, FieldTerastallized, FieldNature, FieldPassive,
				FieldAbilityIndex, FieldGender, FieldIVs, FieldTeraType,
			},
			Enemy: []Field{FieldLuck},
		},
		{
			Version:  V4,
			Party:    []Field{FieldID},
			Enemy:    []Field{FieldID},
			Sections: []Section{SectionMeta},
		},
	}
}

// Default returns the registry of every shipped version.
func Default() *Registry {
	r, err := NewRegistry(DefaultRevisions()...)
	if err != nil {
		panic(err)
	}
	return r
}
