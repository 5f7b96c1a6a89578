package game

import (
	"strings"
	"testing"
)

func duelSim(seed int64) *BattleSim {
	return NewBattleSim(
		WithGridSize(8, 8),
		WithSeed(seed),
		WithFixedUnit("red", ClassHeromancer, 0, 1, 4, fixedAttr),
		WithFixedUnit("blue", ClassUbermensch, 1, 6, 4, fixedAttr),
		WithEquippedItem("red", testWeapon(10)),
		WithEquippedItem("blue", testArmor()),
	)
}

func TestBattleSim_Construction(t *testing.T) {
	bs := duelSim(11)
	if bs.Grid.Width != 8 || bs.Grid.Height != 8 {
		t.Fatalf("grid %dx%d, want 8x8", bs.Grid.Width, bs.Grid.Height)
	}
	red := bs.UnitByName("red")
	if red == nil || red.X != 1 || red.Y != 4 {
		t.Fatal("red unit not placed at (1,4)")
	}
	if red.Equipment.Equipped(CategoryWeapon) == nil {
		t.Fatal("construction gear should be equipped")
	}
	if bs.UnitByName("nobody") != nil {
		t.Fatal("unknown name should return nil")
	}
}

func TestBattleSim_EquipRejectionLogged(t *testing.T) {
	bs := NewBattleSim(
		WithFixedUnit("red", ClassHeromancer, 0, 0, 0, fixedAttr),
		WithEquippedItem("red", &Item{
			Name: "Ration", Category: CategoryConsumable,
			MaxDurability: 1, Durability: 1,
		}),
	)
	if entries := bs.Log.Filter("equip", "rejected"); len(entries) != 1 {
		t.Fatalf("expected one rejection entry, got %d", len(entries))
	}
}

func TestBattleSim_StepClosesDistance(t *testing.T) {
	bs := duelSim(11)
	red := bs.UnitByName("red")
	blue := bs.UnitByName("blue")
	before := manhattan(red.X, red.Y, blue.X, blue.Y)

	bs.Step()

	after := manhattan(red.X, red.Y, blue.X, blue.Y)
	if after >= before {
		t.Fatalf("distance %d -> %d, expected the acting unit to advance", before, after)
	}
}

func TestBattleSim_StepLeavesBoardClean(t *testing.T) {
	bs := duelSim(11)
	bs.Step()
	for _, tl := range bs.Grid.Tiles() {
		if tl.State() != TileNormal {
			t.Fatalf("tile (%d,%d) left in state %v after a step", tl.GX, tl.GY, tl.State())
		}
	}
	if bs.Batch.PendingCount() != 0 {
		t.Fatal("step should flush everything it queues")
	}
}

func TestBattleSim_AutoBattleFinishes(t *testing.T) {
	bs := duelSim(11)
	outcome := bs.RunAutoBattle(100)
	if outcome.Winner == -1 {
		t.Fatal("a duel within the round limit should produce a winner")
	}
	if bs.Turns.AliveCount() != 1 {
		t.Fatalf("expected a sole survivor, got %d alive", bs.Turns.AliveCount())
	}
	if bs.Log.Len() == 0 {
		t.Fatal("battle should record log entries")
	}
	if len(bs.Log.Filter("attack", "hit")) == 0 {
		t.Fatal("battle should record at least one hit")
	}
}

func TestBattleSim_Deterministic(t *testing.T) {
	a := duelSim(23).RunAutoBattle(100)
	b := duelSim(23).RunAutoBattle(100)
	if a != b {
		t.Fatalf("same seed diverged: %+v vs %+v", a, b)
	}
}

// --- Report ---

func TestBuildReport(t *testing.T) {
	bs := duelSim(11)
	outcome := bs.RunAutoBattle(100)
	rep := bs.BuildReport(outcome)

	if rep.Rounds != outcome.Rounds || rep.Winner != outcome.Winner {
		t.Fatal("report should mirror the outcome")
	}
	if len(rep.Units) != 2 {
		t.Fatalf("expected 2 unit reports, got %d", len(rep.Units))
	}
	var dealt float64
	for _, ur := range rep.Units {
		dealt += ur.DamageDealt
	}
	if dealt <= 0 {
		t.Fatal("someone must have dealt damage")
	}

	s := rep.String()
	if !strings.Contains(s, "battle report") || !strings.Contains(s, "red") {
		t.Fatalf("unexpected report text:\n%s", s)
	}
}

// --- Log ---

func TestBattleLog_Filters(t *testing.T) {
	bl := NewBattleLog()
	bl.Add(1, "red", "attack", "hit", "blue", 12)
	bl.Add(1, "blue", "move", "step", "(1,2)", 0)
	bl.Add(2, "red", "attack", "kill", "blue", 0)

	if got := bl.Filter("attack", "hit"); len(got) != 1 || got[0].NumVal != 12 {
		t.Fatalf("filter(attack,hit) = %v", got)
	}
	if got := bl.Filter("attack", ""); len(got) != 2 {
		t.Fatalf("filter(attack,*) returned %d entries, want 2", len(got))
	}
	if got := bl.FilterUnit("blue"); len(got) != 1 {
		t.Fatalf("filterUnit(blue) returned %d entries, want 1", len(got))
	}
}

func TestBattleLogEntry_String(t *testing.T) {
	e := BattleLogEntry{Round: 3, Unit: "Kira", Category: "attack", Key: "hit", Value: "Bruno"}
	s := e.String()
	if !strings.HasPrefix(s, "[R=003]") || !strings.Contains(s, "Kira") {
		t.Fatalf("unexpected log line %q", s)
	}
}
