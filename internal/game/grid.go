package game

import "image/color"

// --- Grid ---

// defaultTileSize is the world-space edge length of one cell.
const defaultTileSize = 1.0

// Grid is the tactical battlefield: a W×H arena of tiles plus the units
// standing on them. All bulk recolouring goes through the batch manager the
// grid was constructed with, so a whole-range highlight costs one flush.
type Grid struct {
	Width, Height int
	TileSize      float64

	tiles []*Tile
	batch *BatchManager
}

// NewGrid builds a w×h grid of normal tiles wired to batch. OnTileClick
// handlers and visuals are attached afterwards by the owning scene.
func NewGrid(w, h int, batch *BatchManager) *Grid {
	g := &Grid{
		Width:    w,
		Height:   h,
		TileSize: defaultTileSize,
		tiles:    make([]*Tile, w*h),
		batch:    batch,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.tiles[y*w+x] = NewTile(x, y, g.TileSize)
		}
	}
	return g
}

// Batch returns the batch manager the grid schedules through.
func (g *Grid) Batch() *BatchManager { return g.batch }

// InBounds reports whether (x, y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// TileAt returns the tile at (x, y), or nil out of bounds.
func (g *Grid) TileAt(x, y int) *Tile {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.tiles[y*g.Width+x]
}

// Tiles returns every tile in row-major order.
func (g *Grid) Tiles() []*Tile { return g.tiles }

// UnitAt returns the unit standing at (x, y), or nil.
func (g *Grid) UnitAt(x, y int) *Unit {
	t := g.TileAt(x, y)
	if t == nil {
		return nil
	}
	return t.Occupant()
}

// PlaceUnit puts a unit on (x, y). Fails if out of bounds or occupied.
func (g *Grid) PlaceUnit(u *Unit, x, y int) bool {
	t := g.TileAt(x, y)
	if t == nil || t.IsOccupied() {
		return false
	}
	t.SetOccupant(u)
	u.X, u.Y = x, y
	return true
}

// MoveUnit relocates a unit to (x, y). Fails if the destination is out of
// bounds, occupied, or marked invalid; the unit stays put on failure.
func (g *Grid) MoveUnit(u *Unit, x, y int) bool {
	dst := g.TileAt(x, y)
	if dst == nil || !dst.IsValidForMovement() {
		return false
	}
	if src := g.TileAt(u.X, u.Y); src != nil && src.Occupant() == u {
		src.SetOccupant(nil)
	}
	dst.SetOccupant(u)
	u.X, u.Y = x, y
	return true
}

// RemoveUnit takes a unit off the grid (death, retreat).
func (g *Grid) RemoveUnit(u *Unit) {
	if t := g.TileAt(u.X, u.Y); t != nil && t.Occupant() == u {
		t.SetOccupant(nil)
	}
}

// manhattan is the grid walking distance between two cells.
func manhattan(x1, y1, x2, y2 int) int {
	dx := x1 - x2
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y2
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// --- Highlighting ---

// HighlightMovementRange marks every tile the unit can reach this turn.
// The unit's own tile is shown selected; reachable open tiles get the
// movement-range state. Everything is batched into one flush.
func (g *Grid) HighlightMovementRange(u *Unit) {
	var reachable []*Tile
	for _, t := range g.tiles {
		d := manhattan(t.GX, t.GY, u.X, u.Y)
		if d == 0 {
			g.batch.ScheduleStateUpdate(t, TileSelected)
			continue
		}
		if d <= u.CurrentMovePoints && t.IsValidForMovement() {
			reachable = append(reachable, t)
		}
	}
	g.batch.ScheduleStateUpdates(reachable, TileMovementRange)
}

// HighlightAttackRange marks every tile within the unit's attack reach,
// excluding its own cell. Occupied tiles stay included: units are targets.
func (g *Grid) HighlightAttackRange(u *Unit) {
	var inRange []*Tile
	reach := u.AttackRange()
	for _, t := range g.tiles {
		d := manhattan(t.GX, t.GY, u.X, u.Y)
		if d >= 1 && d <= reach && t.IsValidForAttack() {
			inRange = append(inRange, t)
		}
	}
	g.batch.ScheduleStateUpdates(inRange, TileAttackRange)
}

// HighlightEffectArea marks the splash zone around a target cell.
func (g *Grid) HighlightEffectArea(cx, cy, radius int) {
	var area []*Tile
	for _, t := range g.tiles {
		if manhattan(t.GX, t.GY, cx, cy) <= radius {
			area = append(area, t)
		}
	}
	g.batch.ScheduleStateUpdates(area, TileEffectArea)
}

// HighlightPath paints a planned path with an explicit colour override.
// Overrides flush after state batches, so the path stays visible on top of
// a movement-range highlight queued in the same tick.
func (g *Grid) HighlightPath(path [][2]int, c color.RGBA) {
	for _, p := range path {
		if t := g.TileAt(p[0], p[1]); t != nil {
			g.batch.ScheduleColorUpdate(t, c)
		}
	}
}

// ClearHighlights resets every non-normal tile, batched.
func (g *Grid) ClearHighlights() {
	var marked []*Tile
	for _, t := range g.tiles {
		if t.State() != TileNormal {
			marked = append(marked, t)
		}
	}
	g.batch.ScheduleStateUpdates(marked, TileNormal)
}

// UnitsInEffectArea returns every living unit within radius of a target
// cell, the target cell included.
func (g *Grid) UnitsInEffectArea(cx, cy, radius int) []*Unit {
	var units []*Unit
	for _, t := range g.tiles {
		if manhattan(t.GX, t.GY, cx, cy) > radius {
			continue
		}
		if u := t.Occupant(); u != nil && u.Alive {
			units = append(units, u)
		}
	}
	return units
}

// Destroy detaches every tile's render handle.
func (g *Grid) Destroy() {
	for _, t := range g.tiles {
		t.Destroy()
	}
}
