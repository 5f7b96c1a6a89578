package game

import "image/color"

// --- Tile state ---

// TileState is the interaction state of one grid cell.
type TileState int

const (
	TileNormal        TileState = iota // idle, default coloring
	TileHighlighted                    // generic highlight
	TileSelected                       // actively selected cell
	TileMovementRange                  // reachable this turn
	TileAttackRange                    // attackable this turn
	TileEffectArea                     // inside an ability's area of effect
	TileInvalid                        // unusable cell (hole, blocked)
	TileHovered                        // pointer is over the cell
	tileStateCount                     // sentinel
)

func (s TileState) String() string {
	switch s {
	case TileNormal:
		return "normal"
	case TileHighlighted:
		return "highlighted"
	case TileSelected:
		return "selected"
	case TileMovementRange:
		return "movement_range"
	case TileAttackRange:
		return "attack_range"
	case TileEffectArea:
		return "effect_area"
	case TileInvalid:
		return "invalid"
	case TileHovered:
		return "hovered"
	default:
		return "unknown"
	}
}

// tileStateColors maps each TileState to its render colour.
var tileStateColors = [tileStateCount]color.RGBA{
	TileNormal:        {R: 96, G: 96, B: 104, A: 255},  // slate grey
	TileHighlighted:   {R: 240, G: 220, B: 80, A: 255}, // warm yellow
	TileSelected:      {R: 255, G: 255, B: 255, A: 255},
	TileMovementRange: {R: 70, G: 190, B: 90, A: 255},  // green
	TileAttackRange:   {R: 210, G: 60, B: 60, A: 255},  // red
	TileEffectArea:    {R: 230, G: 140, B: 40, A: 255}, // orange
	TileInvalid:       {R: 40, G: 40, B: 44, A: 255},   // near-black
	TileHovered:       {R: 150, G: 200, B: 255, A: 255},
}

// ColorOf returns the base render colour for a state, ignoring hover.
func (s TileState) ColorOf() color.RGBA {
	if s < 0 || s >= tileStateCount {
		return tileStateColors[TileNormal]
	}
	return tileStateColors[s]
}

// --- Tile visual handle ---

// TileVisual is the narrow capability a tile needs from whatever renders it.
// The ebiten shell supplies one per tile; headless simulations supply none.
type TileVisual interface {
	SetColor(c color.RGBA)
	Destroy()
}

// --- Tile ---

// Tile is one addressable cell of the tactical grid. It tracks interaction
// state and an optional occupying unit; its displayed colour is a pure
// function of (state, hovered).
type Tile struct {
	GX, GY     int     // grid coordinate
	WX, WY, WZ float64 // world position of the cell centre
	Size       float64 // world-space edge length

	// Terrain annotations consumed by movement/combat systems.
	MoveCost float64 // movement point cost to enter (1.0 = open ground)
	Cover    float64 // 0-1 defensive cover granted to the occupant

	state    TileState
	hovered  bool
	occupant *Unit

	// OnClick is invoked with the tile itself when the pointer layer
	// reports a click. Click performs no state mutation of its own.
	OnClick func(*Tile)

	visual TileVisual
}

// NewTile creates a tile at the given grid coordinate. World position is the
// cell centre; size is the edge length used by the renderer.
func NewTile(gx, gy int, size float64) *Tile {
	return &Tile{
		GX:       gx,
		GY:       gy,
		WX:       (float64(gx) + 0.5) * size,
		WY:       0,
		WZ:       (float64(gy) + 0.5) * size,
		Size:     size,
		MoveCost: 1.0,
		state:    TileNormal,
	}
}

// AttachVisual binds a render handle and pushes the current colour to it.
func (t *Tile) AttachVisual(v TileVisual) {
	t.visual = v
	t.refreshColor()
}

// State returns the tile's current interaction state.
func (t *Tile) State() TileState { return t.state }

// IsHovered reports whether the pointer is currently over the tile.
func (t *Tile) IsHovered() bool { return t.hovered }

// SetState transitions the tile to a new state. With a nil batch the change
// is applied immediately (state + colour); otherwise it is enqueued and the
// tile's state does not change until the batch flushes.
func (t *Tile) SetState(s TileState, b *BatchManager) {
	if b == nil {
		t.applyState(s)
		return
	}
	b.ScheduleStateUpdate(t, s)
}

// Highlight is shorthand for SetState(TileHighlighted, b).
func (t *Tile) Highlight(b *BatchManager) {
	t.SetState(TileHighlighted, b)
}

// HighlightColor writes an explicit colour to the render handle, bypassing
// the state enum entirely. Batched overrides are applied after all state
// batches in the same flush, so they always visually win.
func (t *Tile) HighlightColor(c color.RGBA, b *BatchManager) {
	if b == nil {
		t.writeColor(c)
		return
	}
	b.ScheduleColorUpdate(t, c)
}

// ResetToNormal is shorthand for SetState(TileNormal, b).
func (t *Tile) ResetToNormal(b *BatchManager) {
	t.SetState(TileNormal, b)
}

// SetOccupant sets or clears (nil) the occupying unit.
func (t *Tile) SetOccupant(u *Unit) { t.occupant = u }

// Occupant returns the occupying unit, or nil.
func (t *Tile) Occupant() *Unit { return t.occupant }

// IsOccupied reports whether a unit stands on the tile.
func (t *Tile) IsOccupied() bool { return t.occupant != nil }

// IsValidForMovement reports whether a unit may end a move on this tile.
func (t *Tile) IsValidForMovement() bool {
	return !t.IsOccupied() && t.state != TileInvalid
}

// IsValidForAttack reports whether the tile may be targeted by an attack.
// Occupancy is irrelevant: an occupied tile is exactly what you attack.
func (t *Tile) IsValidForAttack() bool {
	return t.state != TileInvalid
}

// DisplayColor resolves the colour the tile should render with right now.
// Hover wins over every state except Selected, so a selection stays
// visibly distinct while the pointer passes over it.
func (t *Tile) DisplayColor() color.RGBA {
	if t.hovered && t.state != TileSelected {
		return tileStateColors[TileHovered]
	}
	return t.state.ColorOf()
}

// HoverEnter marks the tile hovered and recolours it immediately. Hover
// feedback is never batched: it must not lag a frame.
func (t *Tile) HoverEnter() {
	t.hovered = true
	t.refreshColor()
}

// HoverExit clears the hover flag and recolours immediately.
func (t *Tile) HoverExit() {
	t.hovered = false
	t.refreshColor()
}

// Click invokes the stored callback, if any.
func (t *Tile) Click() {
	if t.OnClick != nil {
		t.OnClick(t)
	}
}

// Destroy detaches and destroys the render handle. The tile itself stays
// usable headlessly afterwards.
func (t *Tile) Destroy() {
	if t.visual != nil {
		t.visual.Destroy()
		t.visual = nil
	}
}

// applyState mutates the state and recolours. Called either synchronously
// from SetState or during a batch flush.
func (t *Tile) applyState(s TileState) {
	t.state = s
	t.refreshColor()
}

func (t *Tile) refreshColor() {
	if t.visual != nil {
		t.visual.SetColor(t.DisplayColor())
	}
}

// writeColor pushes a raw colour to the render handle without touching state.
func (t *Tile) writeColor(c color.RGBA) {
	if t.visual != nil {
		t.visual.SetColor(c)
	}
}
