package game

import "math/rand"

// --- Unit ---

// Unit is one combatant on the tactical grid. It owns its equipment; grid
// position is authoritative on the Grid, mirrored here for convenience.
type Unit struct {
	ID    int
	Name  string
	Class UnitClass
	Team  int

	X, Y int // grid coordinate, kept in sync by Grid.PlaceUnit/MoveUnit

	Attr Attributes

	HP, MaxHP int
	MP, MaxMP int
	AP, MaxAP int

	MovePoints        int
	CurrentMovePoints int

	Alive bool

	Equipment *EquipmentSlots
}

// NewUnit creates a unit with rolled attributes for its class and full
// resource pools. The rng drives the attribute roll and later equipment
// damage selection.
func NewUnit(id int, name string, class UnitClass, rng *rand.Rand) *Unit {
	attr := RollAttributes(class, rng)
	return newUnitWithAttributes(id, name, class, attr, rng)
}

// NewUnitWithAttributes creates a unit with a fixed attribute block,
// bypassing the roll. Used by scenario setups and tests that need
// deterministic stats.
func NewUnitWithAttributes(id int, name string, class UnitClass, attr Attributes, rng *rand.Rand) *Unit {
	return newUnitWithAttributes(id, name, class, attr, rng)
}

func newUnitWithAttributes(id int, name string, class UnitClass, attr Attributes, rng *rand.Rand) *Unit {
	u := &Unit{
		ID:                id,
		Name:              name,
		Class:             class,
		Attr:              attr,
		MaxHP:             attr.MaxHP(),
		MaxMP:             attr.MaxMP(),
		MaxAP:             attr.MaxAP(),
		MovePoints:        attr.MovePoints(),
		CurrentMovePoints: attr.MovePoints(),
		Alive:             true,
		Equipment:         NewEquipmentSlots(rng),
	}
	u.HP = u.MaxHP
	u.MP = u.MaxMP
	u.AP = u.MaxAP
	return u
}

// Attack returns the unit's attack value for an attack type, equipment
// bonuses folded in at their current effective (condition-scaled) strength.
func (u *Unit) Attack(kind AttackType) int {
	base := u.Attr.BaseAttack(kind)
	eq := u.Equipment.TotalBonuses()
	switch kind {
	case AttackPhysical:
		return base + int(eq.PhysicalAttack)
	case AttackMagical:
		return base + int(eq.MagicalAttack)
	case AttackSpiritual:
		return base + int(eq.SpiritualAttack)
	default:
		return base
	}
}

// Defense returns the unit's defense value against an attack type,
// equipment bonuses folded in.
func (u *Unit) Defense(kind AttackType) int {
	base := u.Attr.BaseDefense(kind)
	eq := u.Equipment.TotalBonuses()
	switch kind {
	case AttackPhysical:
		return base + int(eq.PhysicalDefense)
	case AttackMagical:
		return base + int(eq.MagicalDefense)
	case AttackSpiritual:
		return base + int(eq.SpiritualDefense)
	default:
		return base
	}
}

// AttackRange returns the unit's reach in tiles: the weapon's range bonus
// when it exceeds the bare-handed baseline of one.
func (u *Unit) AttackRange() int {
	r := 1
	if wr := int(u.Equipment.TotalBonuses().AttackRange); wr > r {
		r = wr
	}
	return r
}

// EffectArea returns the radius of splash around an attack's target tile.
// Zero means the target tile only.
func (u *Unit) EffectArea() int {
	return int(u.Equipment.TotalBonuses().EffectArea)
}

// TakeDamage subtracts hp, clamping at zero and clearing Alive on a kill.
func (u *Unit) TakeDamage(dmg int) {
	u.HP -= dmg
	if u.HP <= 0 {
		u.HP = 0
		u.Alive = false
	}
}

// RefreshTurn restores action points and movement at the start of a round.
func (u *Unit) RefreshTurn() {
	u.AP = u.MaxAP
	u.CurrentMovePoints = u.MovePoints
}
