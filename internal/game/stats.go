package game

import "math/rand"

// --- Unit class ---

// UnitClass determines a unit's attribute affinities.
type UnitClass int

const (
	ClassHeromancer UnitClass = iota
	ClassUbermensch
	ClassSoulLinked
	ClassRealmWalker
	ClassWargi
	ClassMagi
	unitClassCount // sentinel
)

func (c UnitClass) String() string {
	switch c {
	case ClassHeromancer:
		return "heromancer"
	case ClassUbermensch:
		return "ubermensch"
	case ClassSoulLinked:
		return "soul_linked"
	case ClassRealmWalker:
		return "realm_walker"
	case ClassWargi:
		return "wargi"
	case ClassMagi:
		return "magi"
	default:
		return "unknown"
	}
}

// --- Attributes ---

// Attributes is the nine-attribute block every unit carries. Physical,
// magical and spiritual capability each draw on a different triple.
type Attributes struct {
	Wisdom    int
	Wonder    int
	Worthy    int
	Faith     int
	Finesse   int
	Fortitude int
	Speed     int
	Spirit    int
	Strength  int
}

// classBonuses maps each class to accessors for its three gifted
// attributes. A rolled unit gets +3..8 on each.
var classBonuses = map[UnitClass][3]func(*Attributes) *int{
	ClassHeromancer: {
		func(a *Attributes) *int { return &a.Speed },
		func(a *Attributes) *int { return &a.Strength },
		func(a *Attributes) *int { return &a.Finesse },
	},
	ClassUbermensch: {
		func(a *Attributes) *int { return &a.Speed },
		func(a *Attributes) *int { return &a.Strength },
		func(a *Attributes) *int { return &a.Fortitude },
	},
	ClassSoulLinked: {
		func(a *Attributes) *int { return &a.Faith },
		func(a *Attributes) *int { return &a.Fortitude },
		func(a *Attributes) *int { return &a.Worthy },
	},
	ClassRealmWalker: {
		func(a *Attributes) *int { return &a.Spirit },
		func(a *Attributes) *int { return &a.Faith },
		func(a *Attributes) *int { return &a.Worthy },
	},
	ClassWargi: {
		func(a *Attributes) *int { return &a.Wisdom },
		func(a *Attributes) *int { return &a.Wonder },
		func(a *Attributes) *int { return &a.Spirit },
	},
	ClassMagi: {
		func(a *Attributes) *int { return &a.Wisdom },
		func(a *Attributes) *int { return &a.Wonder },
		func(a *Attributes) *int { return &a.Finesse },
	},
}

// RollAttributes rolls a fresh attribute block: 5-15 base on every
// attribute, plus 3-8 on each of the class's three gifted attributes.
func RollAttributes(class UnitClass, rng *rand.Rand) Attributes {
	roll := func() int { return 5 + rng.Intn(11) }
	a := Attributes{
		Wisdom:    roll(),
		Wonder:    roll(),
		Worthy:    roll(),
		Faith:     roll(),
		Finesse:   roll(),
		Fortitude: roll(),
		Speed:     roll(),
		Spirit:    roll(),
		Strength:  roll(),
	}
	for _, get := range classBonuses[class] {
		*get(&a) += 3 + rng.Intn(6)
	}
	return a
}

// --- Derived stats ---

// MaxHP derives the hit point pool: the physical/faith block times five.
func (a Attributes) MaxHP() int {
	return (a.Strength + a.Fortitude + a.Faith + a.Worthy) * 5
}

// MaxMP derives the mana pool: the mental block times three.
func (a Attributes) MaxMP() int {
	return (a.Wisdom + a.Wonder + a.Spirit + a.Finesse) * 3
}

// MaxAP derives action points, equal to speed.
func (a Attributes) MaxAP() int { return a.Speed }

// MovePoints derives tiles of movement per turn.
func (a Attributes) MovePoints() int { return a.Speed/2 + 2 }

// BaseAttack returns the unmodified attack value for an attack type,
// before equipment bonuses and the attack roll.
func (a Attributes) BaseAttack(kind AttackType) int {
	switch kind {
	case AttackPhysical:
		return a.Strength + a.Finesse
	case AttackMagical:
		return a.Wonder + a.Spirit
	case AttackSpiritual:
		return a.Faith + a.Worthy
	default:
		return 0
	}
}

// BaseDefense returns the unmodified defense value against an attack type,
// before equipment bonuses.
func (a Attributes) BaseDefense(kind AttackType) int {
	switch kind {
	case AttackPhysical:
		return a.Fortitude + a.Strength/2
	case AttackMagical:
		return a.Spirit + a.Wisdom/2
	case AttackSpiritual:
		return a.Worthy + a.Faith/2
	default:
		return 0
	}
}
