package game

import "math/rand"

// BattleSim is a headless battle harness used by tests and the report tool.
// It drives the same grid, batch, equipment and turn code as the windowed
// game but has no ebiten dependency and supports deterministic seeding.
type BattleSim struct {
	Grid  *Grid
	Batch *BatchManager
	Units []*Unit
	Turns *TurnManager
	Log   *BattleLog

	rng    *rand.Rand
	nextID int

	width, height int
	pendingUnits  []simUnitSpec
	pendingGear   []simGearSpec
}

type simUnitSpec struct {
	name  string
	class UnitClass
	team  int
	x, y  int
	attr  *Attributes // nil = roll
}

type simGearSpec struct {
	unitName string
	item     *Item
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // grid size, seed — applied first
	simOptUnit                       // add units — applied once the grid exists
	simOptGear                       // equip items — applied once units exist
)

// SimOption is a builder function applied to a BattleSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*BattleSim)
}

// WithGridSize sets the battlefield dimensions.
func WithGridSize(w, h int) SimOption {
	return SimOption{simOptInfra, func(bs *BattleSim) {
		bs.width = w
		bs.height = h
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(bs *BattleSim) {
		bs.rng = rand.New(rand.NewSource(seed))
	}}
}

// WithBattleUnit adds a unit with rolled attributes at a grid position.
func WithBattleUnit(name string, class UnitClass, team, x, y int) SimOption {
	return SimOption{simOptUnit, func(bs *BattleSim) {
		bs.pendingUnits = append(bs.pendingUnits, simUnitSpec{
			name: name, class: class, team: team, x: x, y: y,
		})
	}}
}

// WithFixedUnit adds a unit with an explicit attribute block, for tests
// that need exact stat numbers.
func WithFixedUnit(name string, class UnitClass, team, x, y int, attr Attributes) SimOption {
	return SimOption{simOptUnit, func(bs *BattleSim) {
		a := attr
		bs.pendingUnits = append(bs.pendingUnits, simUnitSpec{
			name: name, class: class, team: team, x: x, y: y, attr: &a,
		})
	}}
}

// WithEquippedItem equips an item on the named unit during construction.
func WithEquippedItem(unitName string, item *Item) SimOption {
	return SimOption{simOptGear, func(bs *BattleSim) {
		bs.pendingGear = append(bs.pendingGear, simGearSpec{unitName: unitName, item: item})
	}}
}

// NewBattleSim builds a harness from options. Defaults: 8×8 grid, seed 1.
func NewBattleSim(opts ...SimOption) *BattleSim {
	bs := &BattleSim{
		width:  8,
		height: 8,
		rng:    rand.New(rand.NewSource(1)),
		Log:    NewBattleLog(),
		nextID: 1,
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(bs)
		}
	}
	bs.Batch = NewBatchManager()
	bs.Grid = NewGrid(bs.width, bs.height, bs.Batch)

	for _, o := range opts {
		if o.kind == simOptUnit {
			o.fn(bs)
		}
	}
	for _, spec := range bs.pendingUnits {
		var u *Unit
		if spec.attr != nil {
			u = NewUnitWithAttributes(bs.nextID, spec.name, spec.class, *spec.attr, bs.rng)
		} else {
			u = NewUnit(bs.nextID, spec.name, spec.class, bs.rng)
		}
		u.Team = spec.team
		bs.nextID++
		bs.Grid.PlaceUnit(u, spec.x, spec.y)
		bs.Units = append(bs.Units, u)
	}
	bs.pendingUnits = nil

	for _, o := range opts {
		if o.kind == simOptGear {
			o.fn(bs)
		}
	}
	for _, spec := range bs.pendingGear {
		if u := bs.UnitByName(spec.unitName); u != nil {
			if err := u.Equipment.Equip(spec.item); err != nil {
				bs.Log.Add(0, u.Name, "equip", "rejected", spec.item.Name, 0)
			} else {
				bs.Log.Add(0, u.Name, "equip", "equipped", spec.item.Name, 0)
			}
		}
	}
	bs.pendingGear = nil

	bs.Turns = NewTurnManager(bs.Units)
	return bs
}

// UnitByName finds a unit by name, or nil.
func (bs *BattleSim) UnitByName(name string) *Unit {
	for _, u := range bs.Units {
		if u.Name == name {
			return u
		}
	}
	return nil
}

// nearestEnemy returns the closest living unit on another team.
func (bs *BattleSim) nearestEnemy(u *Unit) *Unit {
	var best *Unit
	bestD := 0
	for _, o := range bs.Units {
		if o.Team == u.Team || !o.Alive {
			continue
		}
		d := manhattan(u.X, u.Y, o.X, o.Y)
		if best == nil || d < bestD {
			best, bestD = o, d
		}
	}
	return best
}

// Step runs one unit turn: highlight the unit's movement range, advance
// toward the nearest enemy, attack when in reach, then clear highlights.
// Each phase flushes the batch, exactly as the windowed game does per frame.
func (bs *BattleSim) Step() {
	u := bs.Turns.CurrentUnit()
	if u == nil {
		return
	}
	round := bs.Turns.Round()

	bs.Grid.HighlightMovementRange(u)
	bs.Batch.Flush()

	enemy := bs.nearestEnemy(u)
	if enemy != nil {
		bs.advanceToward(u, enemy)
		if manhattan(u.X, u.Y, enemy.X, enemy.Y) <= u.AttackRange() && u.AP >= attackAPCost {
			cover := 0.0
			if et := bs.Grid.TileAt(enemy.X, enemy.Y); et != nil {
				cover = et.Cover
			}
			res := ResolveAttackWithCover(u, enemy, AttackPhysical, cover, bs.rng)
			u.AP -= attackAPCost
			bs.Log.Add(round, u.Name, "attack", "hit",
				enemy.Name, float64(res.Damage))
			for _, name := range res.BrokenItems {
				bs.Log.Add(round, u.Name, "equip", "broken", name, 0)
			}
			if res.Killed {
				bs.Log.Add(round, u.Name, "attack", "kill", enemy.Name, 0)
				bs.Grid.RemoveUnit(enemy)
			}
		}
	}

	bs.Grid.ClearHighlights()
	bs.Batch.Flush()
	bs.Turns.NextTurn()
}

// advanceToward moves u one tile at a time toward target until movement
// runs out or the target is in attack reach.
func (bs *BattleSim) advanceToward(u, target *Unit) {
	for u.CurrentMovePoints > 0 {
		if manhattan(u.X, u.Y, target.X, target.Y) <= u.AttackRange() {
			return
		}
		nx, ny := u.X, u.Y
		if u.X != target.X {
			if u.X < target.X {
				nx++
			} else {
				nx--
			}
		} else if u.Y < target.Y {
			ny++
		} else {
			ny--
		}
		if !bs.Grid.MoveUnit(u, nx, ny) {
			return // blocked; this simple policy does not path around
		}
		u.CurrentMovePoints--
		bs.Log.Add(bs.Turns.Round(), u.Name, "move", "step",
			u.Name+" -> tile", float64(nx*bs.Grid.Width+ny))
	}
}

// Outcome summarises a finished auto battle.
type Outcome struct {
	Winner int // winning team, or -1 for a draw / round limit
	Rounds int
}

// RunAutoBattle steps units until one team stands alone or maxRounds pass.
func (bs *BattleSim) RunAutoBattle(maxRounds int) Outcome {
	for bs.Turns.Round() <= maxRounds {
		if w, ok := bs.winner(); ok {
			return Outcome{Winner: w, Rounds: bs.Turns.Round()}
		}
		bs.Step()
	}
	if w, ok := bs.winner(); ok {
		return Outcome{Winner: w, Rounds: bs.Turns.Round()}
	}
	return Outcome{Winner: -1, Rounds: bs.Turns.Round()}
}

// winner reports the sole surviving team, if any.
func (bs *BattleSim) winner() (int, bool) {
	team := -1
	for _, u := range bs.Units {
		if !u.Alive {
			continue
		}
		if team == -1 {
			team = u.Team
		} else if u.Team != team {
			return 0, false
		}
	}
	if team == -1 {
		return 0, false
	}
	return team, true
}
