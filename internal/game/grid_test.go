package game

import (
	"image/color"
	"math/rand"
	"testing"
)

func testUnit(t *testing.T, id int, name string, speed int) *Unit {
	t.Helper()
	attr := fixedAttr
	attr.Speed = speed
	return NewUnitWithAttributes(id, name, ClassHeromancer, attr, rand.New(rand.NewSource(int64(id))))
}

// --- Placement ---

func TestPlaceUnit(t *testing.T) {
	g := NewGrid(4, 4, NewBatchManager())
	u := testUnit(t, 1, "a", 10)

	if !g.PlaceUnit(u, 2, 3) {
		t.Fatal("placement on an empty tile should succeed")
	}
	if g.UnitAt(2, 3) != u || u.X != 2 || u.Y != 3 {
		t.Fatal("unit position not recorded")
	}
	if g.PlaceUnit(testUnit(t, 2, "b", 10), 2, 3) {
		t.Fatal("placement on an occupied tile should fail")
	}
	if g.PlaceUnit(testUnit(t, 3, "c", 10), 4, 0) {
		t.Fatal("out-of-bounds placement should fail")
	}
}

func TestMoveUnit(t *testing.T) {
	g := NewGrid(4, 4, NewBatchManager())
	u := testUnit(t, 1, "a", 10)
	g.PlaceUnit(u, 0, 0)

	if !g.MoveUnit(u, 1, 0) {
		t.Fatal("move to an open tile should succeed")
	}
	if g.UnitAt(0, 0) != nil {
		t.Fatal("source tile should be vacated")
	}
	if g.UnitAt(1, 0) != u {
		t.Fatal("destination tile should hold the unit")
	}

	blocker := testUnit(t, 2, "b", 10)
	g.PlaceUnit(blocker, 2, 0)
	if g.MoveUnit(u, 2, 0) {
		t.Fatal("move onto an occupied tile should fail")
	}
	if g.UnitAt(1, 0) != u {
		t.Fatal("failed move must leave the unit in place")
	}
}

func TestMoveUnit_InvalidTile(t *testing.T) {
	g := NewGrid(4, 4, NewBatchManager())
	u := testUnit(t, 1, "a", 10)
	g.PlaceUnit(u, 0, 0)
	g.TileAt(1, 0).SetState(TileInvalid, nil)
	if g.MoveUnit(u, 1, 0) {
		t.Fatal("move onto an invalid tile should fail")
	}
}

func TestRemoveUnit(t *testing.T) {
	g := NewGrid(4, 4, NewBatchManager())
	u := testUnit(t, 1, "a", 10)
	g.PlaceUnit(u, 1, 1)
	g.RemoveUnit(u)
	if g.UnitAt(1, 1) != nil {
		t.Fatal("removed unit should free its tile")
	}
}

// --- Highlighting ---

func TestHighlightMovementRange(t *testing.T) {
	b := NewBatchManager()
	g := NewGrid(8, 8, b)
	u := testUnit(t, 1, "a", 4) // 4/2+2 = 4 move points
	g.PlaceUnit(u, 3, 3)

	g.HighlightMovementRange(u)
	b.Flush()

	if got := g.TileAt(3, 3).State(); got != TileSelected {
		t.Fatalf("origin tile state = %v, want selected", got)
	}
	if got := g.TileAt(3, 4).State(); got != TileMovementRange {
		t.Fatalf("adjacent tile state = %v, want movement range", got)
	}
	if got := g.TileAt(3, 7).State(); got != TileMovementRange {
		t.Fatalf("tile at exact range state = %v, want movement range", got)
	}
	if got := g.TileAt(0, 0).State(); got != TileNormal {
		t.Fatalf("tile beyond range state = %v, want normal", got)
	}
}

func TestHighlightMovementRange_SkipsOccupied(t *testing.T) {
	b := NewBatchManager()
	g := NewGrid(8, 8, b)
	u := testUnit(t, 1, "a", 4)
	g.PlaceUnit(u, 3, 3)
	g.PlaceUnit(testUnit(t, 2, "b", 4), 3, 4)

	g.HighlightMovementRange(u)
	b.Flush()

	if got := g.TileAt(3, 4).State(); got != TileNormal {
		t.Fatalf("occupied tile must not join the movement range, got %v", got)
	}
}

func TestHighlightAttackRange(t *testing.T) {
	b := NewBatchManager()
	g := NewGrid(8, 8, b)
	u := testUnit(t, 1, "a", 4)
	g.PlaceUnit(u, 3, 3)
	// Occupied tiles stay targetable.
	g.PlaceUnit(testUnit(t, 2, "b", 4), 4, 3)

	g.HighlightAttackRange(u) // bare hands: range 1
	b.Flush()

	if got := g.TileAt(3, 3).State(); got == TileAttackRange {
		t.Fatal("unit's own tile must not be attackable")
	}
	if got := g.TileAt(4, 3).State(); got != TileAttackRange {
		t.Fatalf("occupied adjacent tile state = %v, want attack range", got)
	}
	if got := g.TileAt(5, 3).State(); got != TileNormal {
		t.Fatalf("tile beyond reach state = %v, want normal", got)
	}
}

func TestHighlightAttackRange_WeaponReach(t *testing.T) {
	b := NewBatchManager()
	g := NewGrid(8, 8, b)
	u := testUnit(t, 1, "a", 4)
	g.PlaceUnit(u, 3, 3)
	if err := u.Equipment.Equip(&Item{
		Name: "Spear", Category: CategoryWeapon,
		Bonuses:       StatBonuses{AttackRange: 3},
		MaxDurability: 10, Durability: 10,
	}); err != nil {
		t.Fatal(err)
	}

	g.HighlightAttackRange(u)
	b.Flush()

	if got := g.TileAt(6, 3).State(); got != TileAttackRange {
		t.Fatalf("tile at weapon reach state = %v, want attack range", got)
	}
}

func TestHighlightEffectArea(t *testing.T) {
	b := NewBatchManager()
	g := NewGrid(8, 8, b)
	g.HighlightEffectArea(4, 4, 1)
	b.Flush()

	for _, c := range [][2]int{{4, 4}, {3, 4}, {5, 4}, {4, 3}, {4, 5}} {
		if got := g.TileAt(c[0], c[1]).State(); got != TileEffectArea {
			t.Fatalf("tile (%d,%d) state = %v, want effect area", c[0], c[1], got)
		}
	}
	if got := g.TileAt(3, 3).State(); got != TileNormal {
		t.Fatalf("diagonal outside radius state = %v, want normal", got)
	}
}

func TestHighlightPath_OverridesRangeColor(t *testing.T) {
	b := NewBatchManager()
	g := NewGrid(8, 8, b)
	u := testUnit(t, 1, "a", 4)
	g.PlaceUnit(u, 3, 3)

	step := g.TileAt(3, 4)
	v := &fakeVisual{}
	step.AttachVisual(v)

	pathBlue := color.RGBA{R: 60, G: 100, B: 230, A: 255}
	g.HighlightMovementRange(u)
	g.HighlightPath([][2]int{{3, 4}}, pathBlue)
	b.Flush()

	if step.State() != TileMovementRange {
		t.Fatalf("path tile keeps the range state underneath, got %v", step.State())
	}
	if v.last != pathBlue {
		t.Fatalf("path colour should win the flush, visual shows %v", v.last)
	}
}

func TestClearHighlights(t *testing.T) {
	b := NewBatchManager()
	g := NewGrid(8, 8, b)
	u := testUnit(t, 1, "a", 4)
	g.PlaceUnit(u, 3, 3)

	g.HighlightMovementRange(u)
	b.Flush()
	g.ClearHighlights()
	b.Flush()

	for _, tl := range g.Tiles() {
		if tl.State() != TileNormal {
			t.Fatalf("tile (%d,%d) state = %v after clear, want normal", tl.GX, tl.GY, tl.State())
		}
	}
}

// --- Area queries ---

func TestUnitsInEffectArea(t *testing.T) {
	g := NewGrid(8, 8, NewBatchManager())
	a := testUnit(t, 1, "a", 4)
	bUnit := testUnit(t, 2, "b", 4)
	far := testUnit(t, 3, "c", 4)
	dead := testUnit(t, 4, "d", 4)
	dead.Alive = false

	g.PlaceUnit(a, 4, 4)
	g.PlaceUnit(bUnit, 4, 5)
	g.PlaceUnit(far, 0, 0)
	g.PlaceUnit(dead, 5, 4)

	got := g.UnitsInEffectArea(4, 4, 1)
	if len(got) != 2 {
		t.Fatalf("expected 2 living units in area, got %d", len(got))
	}
}

func TestGridDestroy(t *testing.T) {
	g := NewGrid(2, 2, NewBatchManager())
	v := &fakeVisual{}
	g.TileAt(0, 0).AttachVisual(v)
	g.Destroy()
	if !v.destroyed {
		t.Fatal("grid destroy should tear down tile visuals")
	}
}
