package battle

type Stat int

const (
	StatHP Stat = iota
	StatAtk
	StatDef
	StatSpAtk
	StatSpDef
	StatSpd
	StatCount
)

// StatBlock is indexed by Stat. It is an array so that assignment copies it.
type StatBlock [StatCount]int

type Gender int

const (
	GenderGenderless Gender = -1
	GenderMale       Gender = 0
	GenderFemale     Gender = 1
)

type Nature int

type Type int

const TypeUnknown Type = -1

type Species struct {
	ID int
}

type Move struct {
	ID int
	PP int
}

// Combatant is the read surface of one creature in battle. Accessors that
// return a bool report whether the nested state has been initialized.
type Combatant interface {
	ID() int
	FormIndex() int
	Species() (Species, bool)
	HP() int
	Stats() StatBlock
	Visible() bool
	Moveset() ([]Move, bool)
	Level() int
	Luck() int
	Terastallized() bool
	Nature() Nature
	Passive() bool
	AbilityIndex() int
	Gender() Gender
	IVs() (StatBlock, bool)
	TeraType() Type
}

// Pokemon is the concrete combatant owned by a scene. A nil Species, a nil
// Moveset or a nil IVs pointer means that part has not been loaded yet.
type Pokemon struct {
	PokemonID       int
	Form            int
	SpeciesData     *Species
	CurrentHP       int
	StatValues      StatBlock
	IsVisible       bool
	Moves           []Move
	LevelValue      int
	LuckValue       int
	IsTerastallized bool
	NatureValue     Nature
	HasPassive      bool
	Ability         int
	GenderValue     Gender
	IndividualStats *StatBlock
	Tera            Type
}

var _ Combatant = (*Pokemon)(nil)

func (p *Pokemon) ID() int        { return p.PokemonID }
func (p *Pokemon) FormIndex() int { return p.Form }
func (p *Pokemon) HP() int        { return p.CurrentHP }

func (p *Pokemon) Species() (Species, bool) {
	if p.SpeciesData == nil {
		return Species{}, false
	}
	return *p.SpeciesData, true
}

func (p *Pokemon) Stats() StatBlock { return p.StatValues }
func (p *Pokemon) Visible() bool    { return p.IsVisible }

// Moveset returns a fresh slice; callers may keep it.
func (p *Pokemon) Moveset() ([]Move, bool) {
	if p.Moves == nil {
		return nil, false
	}
	out := make([]Move, len(p.Moves))
	copy(out, p.Moves)
	return out, true
}

func (p *Pokemon) Level() int          { return p.LevelValue }
func (p *Pokemon) Luck() int           { return p.LuckValue }
func (p *Pokemon) Terastallized() bool { return p.IsTerastallized }
func (p *Pokemon) Nature() Nature      { return p.NatureValue }
func (p *Pokemon) Passive() bool       { return p.HasPassive }
func (p *Pokemon) AbilityIndex() int   { return p.Ability }
func (p *Pokemon) Gender() Gender      { return p.GenderValue }

func (p *Pokemon) IVs() (StatBlock, bool) {
	if p.IndividualStats == nil {
		return StatBlock{}, false
	}
	return *p.IndividualStats, true
}

func (p *Pokemon) TeraType() Type { return p.Tera }
