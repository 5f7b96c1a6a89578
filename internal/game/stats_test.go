package game

import (
	"math/rand"
	"testing"
)

// fixedAttr is a deterministic attribute block used across tests.
var fixedAttr = Attributes{
	Wisdom: 10, Wonder: 10, Worthy: 10, Faith: 10, Finesse: 10,
	Fortitude: 10, Speed: 10, Spirit: 10, Strength: 10,
}

// --- Derived stats ---

func TestDerivedStats(t *testing.T) {
	a := fixedAttr
	if got := a.MaxHP(); got != 200 {
		t.Fatalf("max hp = %d, want 200", got)
	}
	if got := a.MaxMP(); got != 120 {
		t.Fatalf("max mp = %d, want 120", got)
	}
	if got := a.MaxAP(); got != 10 {
		t.Fatalf("max ap = %d, want 10", got)
	}
	if got := a.MovePoints(); got != 7 {
		t.Fatalf("move points = %d, want 7", got)
	}
}

func TestBaseAttack(t *testing.T) {
	a := Attributes{Strength: 12, Finesse: 8, Wonder: 6, Spirit: 4, Faith: 3, Worthy: 2}
	if got := a.BaseAttack(AttackPhysical); got != 20 {
		t.Fatalf("physical attack = %d, want 20", got)
	}
	if got := a.BaseAttack(AttackMagical); got != 10 {
		t.Fatalf("magical attack = %d, want 10", got)
	}
	if got := a.BaseAttack(AttackSpiritual); got != 5 {
		t.Fatalf("spiritual attack = %d, want 5", got)
	}
}

func TestBaseDefense(t *testing.T) {
	a := Attributes{Fortitude: 10, Strength: 9, Spirit: 8, Wisdom: 7, Worthy: 6, Faith: 5}
	if got := a.BaseDefense(AttackPhysical); got != 14 {
		t.Fatalf("physical defense = %d, want 14", got)
	}
	if got := a.BaseDefense(AttackMagical); got != 11 {
		t.Fatalf("magical defense = %d, want 11", got)
	}
	if got := a.BaseDefense(AttackSpiritual); got != 8 {
		t.Fatalf("spiritual defense = %d, want 8", got)
	}
}

// --- Rolling ---

func TestRollAttributes_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		a := RollAttributes(ClassMagi, rng)
		// Magi is gifted in wisdom, wonder, finesse: 5-15 base plus 3-8.
		for name, v := range map[string]int{
			"wisdom": a.Wisdom, "wonder": a.Wonder, "finesse": a.Finesse,
		} {
			if v < 8 || v > 23 {
				t.Fatalf("gifted %s = %d, want 8..23", name, v)
			}
		}
		// Ungifted attributes stay in the base roll range.
		for name, v := range map[string]int{
			"worthy": a.Worthy, "faith": a.Faith, "fortitude": a.Fortitude,
			"speed": a.Speed, "spirit": a.Spirit, "strength": a.Strength,
		} {
			if v < 5 || v > 15 {
				t.Fatalf("base %s = %d, want 5..15", name, v)
			}
		}
	}
}

func TestRollAttributes_Deterministic(t *testing.T) {
	a := RollAttributes(ClassHeromancer, rand.New(rand.NewSource(9)))
	b := RollAttributes(ClassHeromancer, rand.New(rand.NewSource(9)))
	if a != b {
		t.Fatalf("same seed should roll the same block: %+v vs %+v", a, b)
	}
}

func TestUnitClassString(t *testing.T) {
	if ClassSoulLinked.String() != "soul_linked" {
		t.Fatalf("got %q", ClassSoulLinked.String())
	}
	if UnitClass(99).String() != "unknown" {
		t.Fatal("out-of-range class should stringify as unknown")
	}
}
