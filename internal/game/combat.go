package game

import "math/rand"

// --- Combat constants ---

const (
	attackRollDie   = 6   // 1dN added to every attack
	minDamage       = 1   // a landed hit always does something
	attackAPCost    = 2   // action points per attack
	weaponWearOnHit = 1.0 // durability the attacker's gear loses per landed hit
)

// AttackType selects which attack/defense triple an attack resolves against.
type AttackType int

const (
	AttackPhysical AttackType = iota
	AttackMagical
	AttackSpiritual
)

func (t AttackType) String() string {
	switch t {
	case AttackPhysical:
		return "physical"
	case AttackMagical:
		return "magical"
	case AttackSpiritual:
		return "spiritual"
	default:
		return "unknown"
	}
}

// AttackResult describes the outcome of one resolved attack.
type AttackResult struct {
	Damage      int
	Killed      bool
	BrokenItems []string // attacker gear that broke from wear
}

// ResolveAttack applies one attack from attacker to target: attack value
// (equipment included) plus 1d6, minus the matching defense, floored at
// minDamage. The attacker's equipment takes wear on every landed hit.
func ResolveAttack(attacker, target *Unit, kind AttackType, rng *rand.Rand) AttackResult {
	return ResolveAttackWithCover(attacker, target, kind, 0, rng)
}

// ResolveAttackWithCover is ResolveAttack with terrain folded in: cover is
// the fraction of incoming damage the target's tile negates, clamped to
// [0,1]. A landed hit still does at least minDamage.
func ResolveAttackWithCover(attacker, target *Unit, kind AttackType, cover float64, rng *rand.Rand) AttackResult {
	dmg := attacker.Attack(kind) + 1 + rng.Intn(attackRollDie) - target.Defense(kind)
	if cover > 0 {
		if cover > 1 {
			cover = 1
		}
		dmg = int(float64(dmg) * (1 - cover))
	}
	if dmg < minDamage {
		dmg = minDamage
	}
	target.TakeDamage(dmg)

	broken := attacker.Equipment.TakeEquipmentDamage(weaponWearOnHit)

	return AttackResult{
		Damage:      dmg,
		Killed:      !target.Alive,
		BrokenItems: broken,
	}
}
