package game

import (
	"math/rand"
	"testing"
)

func TestResolveAttack_DamageBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	attacker := testUnit(t, 1, "att", 10)
	target := testUnit(t, 2, "def", 10)

	atk := attacker.Attack(AttackPhysical)
	def := target.Defense(AttackPhysical)
	before := target.HP

	res := ResolveAttack(attacker, target, AttackPhysical, rng)
	lo, hi := atk+1-def, atk+attackRollDie-def
	if lo < minDamage {
		lo = minDamage
	}
	if res.Damage < lo || res.Damage > hi {
		t.Fatalf("damage %d outside [%d,%d]", res.Damage, lo, hi)
	}
	if target.HP != before-res.Damage {
		t.Fatalf("hp %d, want %d", target.HP, before-res.Damage)
	}
}

func TestResolveAttack_CoverReducesDamage(t *testing.T) {
	attacker := testUnit(t, 1, "att", 10)
	if err := attacker.Equipment.Equip(testWeapon(40)); err != nil {
		t.Fatal(err)
	}

	// Same seed with and without cover: the covered hit must land softer.
	open := testUnit(t, 2, "open", 10)
	bunkered := testUnit(t, 3, "bunkered", 10)
	openRes := ResolveAttackWithCover(attacker, open, AttackPhysical, 0, rand.New(rand.NewSource(9)))
	coverRes := ResolveAttackWithCover(attacker, bunkered, AttackPhysical, 0.5, rand.New(rand.NewSource(9)))
	if coverRes.Damage >= openRes.Damage {
		t.Fatalf("covered damage %d not below open damage %d", coverRes.Damage, openRes.Damage)
	}

	// Full cover still lands the minimum.
	walled := testUnit(t, 4, "walled", 10)
	fullRes := ResolveAttackWithCover(attacker, walled, AttackPhysical, 1.5, rand.New(rand.NewSource(9)))
	if fullRes.Damage != minDamage {
		t.Fatalf("full-cover damage = %d, want %d", fullRes.Damage, minDamage)
	}
}

func TestResolveAttack_MinimumDamage(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	weak := NewUnitWithAttributes(1, "weak", ClassMagi, Attributes{
		Strength: 1, Finesse: 1, Fortitude: 1, Faith: 1, Worthy: 1,
		Wisdom: 1, Wonder: 1, Spirit: 1, Speed: 1,
	}, rng)
	tank := testUnit(t, 2, "tank", 10)
	if err := tank.Equipment.Equip(&Item{
		Name: "Tower Shield", Category: CategoryArmor,
		Bonuses:       StatBonuses{PhysicalDefense: 500},
		MaxDurability: 10, Durability: 10,
	}); err != nil {
		t.Fatal(err)
	}

	res := ResolveAttack(weak, tank, AttackPhysical, rng)
	if res.Damage != minDamage {
		t.Fatalf("damage = %d, want floor of %d", res.Damage, minDamage)
	}
}

func TestResolveAttack_Kill(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	attacker := testUnit(t, 1, "att", 10)
	target := testUnit(t, 2, "def", 10)
	target.HP = 1

	res := ResolveAttack(attacker, target, AttackPhysical, rng)
	if !res.Killed || target.Alive {
		t.Fatal("one-hp target should die")
	}
	if target.HP != 0 {
		t.Fatalf("hp should clamp at 0, got %d", target.HP)
	}
}

func TestResolveAttack_WearsAttackerGear(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	attacker := testUnit(t, 1, "att", 10)
	target := testUnit(t, 2, "def", 10)
	w := testWeapon(10)
	if err := attacker.Equipment.Equip(w); err != nil {
		t.Fatal(err)
	}

	ResolveAttack(attacker, target, AttackPhysical, rng)
	if w.Durability != w.MaxDurability-weaponWearOnHit {
		t.Fatalf("weapon durability = %v, want %v", w.Durability, w.MaxDurability-weaponWearOnHit)
	}
}

// --- Unit derived getters ---

func TestUnitAttack_IncludesEquipment(t *testing.T) {
	u := testUnit(t, 1, "a", 10)
	base := u.Attack(AttackPhysical)
	if err := u.Equipment.Equip(testWeapon(10)); err != nil {
		t.Fatal(err)
	}
	if got := u.Attack(AttackPhysical); got != base+10 {
		t.Fatalf("attack = %d, want %d", got, base+10)
	}
}

func TestUnitAttackRange(t *testing.T) {
	u := testUnit(t, 1, "a", 10)
	if u.AttackRange() != 1 {
		t.Fatalf("bare-handed range = %d, want 1", u.AttackRange())
	}
	if err := u.Equipment.Equip(&Item{
		Name: "Bow", Category: CategoryWeapon,
		Bonuses:       StatBonuses{AttackRange: 4},
		MaxDurability: 10, Durability: 10,
	}); err != nil {
		t.Fatal(err)
	}
	if u.AttackRange() != 4 {
		t.Fatalf("bow range = %d, want 4", u.AttackRange())
	}
}

func TestNewUnit_PoolsMatchAttributes(t *testing.T) {
	u := NewUnitWithAttributes(1, "a", ClassWargi, fixedAttr, rand.New(rand.NewSource(1)))
	if u.HP != fixedAttr.MaxHP() || u.MP != fixedAttr.MaxMP() || u.AP != fixedAttr.MaxAP() {
		t.Fatalf("pools %d/%d/%d do not match attributes", u.HP, u.MP, u.AP)
	}
	if !u.Alive {
		t.Fatal("fresh unit should be alive")
	}
}
