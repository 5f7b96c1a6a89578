package game

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// --- Window layout ---

const (
	tilePx      = 64 // on-screen tile edge in pixels
	boardOffX   = 24 // pixel gap between window edge and board
	boardOffY   = 24
	sidePanelW  = 300 // HUD panel to the right of the board
	demoGridW   = 10
	demoGridH   = 8
	repairPulse = 10.0 // durability restored per repair keypress
)

// rectVisual is the ebiten-side render handle for one tile. The core only
// sees the TileVisual interface; the shell reads the stored colour back
// each frame.
type rectVisual struct {
	c     color.RGBA
	alive bool
}

func (v *rectVisual) SetColor(c color.RGBA) { v.c = c }
func (v *rectVisual) Destroy()              { v.alive = false }

// Game is the windowed front end: it owns the scene's batch manager, feeds
// pointer events into tiles, and flushes the batch once per frame before
// anything renders.
type Game struct {
	grid  *Grid
	batch *BatchManager
	units []*Unit
	turns *TurnManager
	log   *BattleLog
	feed  *EventFeed
	rng   *rand.Rand

	visuals map[*Tile]*rectVisual

	selected   *Unit
	attackMode bool
	hoverTile  *Tile

	prevMouseLeft bool
	prevKeys      map[ebiten.Key]bool

	face font.Face
}

// New builds the demo battle: two squads with starter gear on a 10×8 board.
func New() *Game {
	g := &Game{
		batch:    NewBatchManager(),
		log:      NewBattleLog(),
		feed:     NewEventFeed(),
		rng:      rand.New(rand.NewSource(42)),
		visuals:  make(map[*Tile]*rectVisual),
		prevKeys: make(map[ebiten.Key]bool),
		face:     basicfont.Face7x13,
	}
	g.grid = NewGrid(demoGridW, demoGridH, g.batch)

	for _, t := range g.grid.Tiles() {
		v := &rectVisual{alive: true}
		g.visuals[t] = v
		t.AttachVisual(v)
		t.OnClick = g.onTileClick
	}

	g.spawnDemoUnits()
	g.placeDemoTerrain()
	g.turns = NewTurnManager(g.units)
	return g
}

// placeDemoTerrain scatters rough ground and barricades over the demo board.
func (g *Game) placeDemoTerrain() {
	for _, p := range [][2]int{{4, 1}, {4, 2}, {5, 5}, {5, 6}} {
		if t := g.grid.TileAt(p[0], p[1]); t != nil {
			t.MoveCost = 2.0
		}
	}
	for _, p := range [][2]int{{3, 4}, {6, 3}} {
		if t := g.grid.TileAt(p[0], p[1]); t != nil {
			t.Cover = 0.5
		}
	}
}

func (g *Game) spawnDemoUnits() {
	type spawn struct {
		name  string
		class UnitClass
		team  int
		x, y  int
	}
	spawns := []spawn{
		{"Kira", ClassHeromancer, 0, 1, 2},
		{"Bruno", ClassUbermensch, 0, 1, 4},
		{"Sela", ClassMagi, 0, 1, 6},
		{"Vex", ClassSoulLinked, 1, 8, 2},
		{"Orin", ClassRealmWalker, 1, 8, 4},
		{"Tamsin", ClassWargi, 1, 8, 6},
	}
	for i, s := range spawns {
		u := NewUnit(i+1, s.name, s.class, g.rng)
		u.Team = s.team
		g.grid.PlaceUnit(u, s.x, s.y)
		g.units = append(g.units, u)
	}

	// Starter gear: front-liners get demo weapons, everyone gets armor.
	for _, u := range g.units {
		_ = u.Equipment.Equip(&Item{
			Name: "Iron Blade", Category: CategoryWeapon, Tier: "BASE",
			Bonuses:       StatBonuses{PhysicalAttack: 8, AttackRange: 2},
			MaxDurability: 100, Durability: 100, BaseValue: 120,
		})
		_ = u.Equipment.Equip(&Item{
			Name: "Leather Cuirass", Category: CategoryArmor, Tier: "BASE",
			Bonuses:       StatBonuses{PhysicalDefense: 5, MagicalDefense: 2},
			MaxDurability: 80, Durability: 80, BaseValue: 90,
		})
	}
}

// onTileClick routes a tile click according to the current mode: attack
// targeting, unit selection, or movement.
func (g *Game) onTileClick(t *Tile) {
	round := g.turns.Round()

	if g.attackMode && g.selected != nil {
		target := t.Occupant()
		inReach := manhattan(t.GX, t.GY, g.selected.X, g.selected.Y) <= g.selected.AttackRange()
		if target != nil && target != g.selected && inReach && t.IsValidForAttack() {
			res := ResolveAttackWithCover(g.selected, target, AttackPhysical, t.Cover, g.rng)
			g.log.Add(round, g.selected.Name, "attack", "hit", target.Name, float64(res.Damage))
			g.feed.Push(round, g.selected.Team, fmt.Sprintf("%s hits %s for %d", g.selected.Name, target.Name, res.Damage))
			for _, broken := range res.BrokenItems {
				g.feed.Push(round, g.selected.Team, fmt.Sprintf("%s's %s broke", g.selected.Name, broken))
			}
			if res.Killed {
				g.log.Add(round, g.selected.Name, "attack", "kill", target.Name, 0)
				g.feed.Push(round, g.selected.Team, fmt.Sprintf("%s falls", target.Name))
				g.grid.RemoveUnit(target)
			}
		}
		g.attackMode = false
		g.grid.ClearHighlights()
		if g.selected != nil {
			g.grid.HighlightMovementRange(g.selected)
		}
		return
	}

	if u := t.Occupant(); u != nil {
		g.selected = u
		g.attackMode = false
		g.grid.ClearHighlights()
		g.grid.HighlightMovementRange(u)
		g.log.Add(round, u.Name, "turn", "selected", u.Name, 0)
		return
	}

	if g.selected != nil {
		dist := manhattan(t.GX, t.GY, g.selected.X, g.selected.Y)
		cost := dist
		if t.MoveCost > 1 {
			cost = int(float64(dist) * t.MoveCost)
		}
		if cost <= g.selected.CurrentMovePoints && t.IsValidForMovement() {
			if g.grid.MoveUnit(g.selected, t.GX, t.GY) {
				g.selected.CurrentMovePoints -= cost
				g.log.Add(round, g.selected.Name, "move", "step",
					fmt.Sprintf("(%d,%d)", t.GX, t.GY), 0)
				g.feed.Push(round, g.selected.Team,
					fmt.Sprintf("%s moves to (%d,%d)", g.selected.Name, t.GX, t.GY))
			}
			g.grid.ClearHighlights()
			g.grid.HighlightMovementRange(g.selected)
			return
		}
	}

	// Empty tile outside any mode: drop the selection.
	g.selected = nil
	g.attackMode = false
	g.grid.ClearHighlights()
}

func (g *Game) Update() error {
	g.handleInput()

	// All state changes queued this frame land before Draw runs.
	g.batch.FlushPending()
	return nil
}

func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	// A: arm attack targeting for the selected unit.
	if pressed(ebiten.KeyA) && g.selected != nil {
		g.attackMode = true
		g.grid.ClearHighlights()
		g.grid.HighlightAttackRange(g.selected)
	}

	// R: field repair for the selected unit's gear.
	if pressed(ebiten.KeyR) && g.selected != nil {
		g.selected.Equipment.RepairAll(repairPulse)
		g.log.Add(g.turns.Round(), g.selected.Name, "equip", "repair", "", repairPulse)
		g.feed.Push(g.turns.Round(), g.selected.Team, fmt.Sprintf("%s repairs gear", g.selected.Name))
	}

	// Space: end the current unit's turn.
	if pressed(ebiten.KeySpace) {
		g.turns.NextTurn()
		g.selected = nil
		g.attackMode = false
		g.grid.ClearHighlights()
	}

	// Escape: drop selection.
	if pressed(ebiten.KeyEscape) {
		g.selected = nil
		g.attackMode = false
		g.grid.ClearHighlights()
	}

	g.updateHover()

	// Edge-triggered left click dispatches to the hovered tile.
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !g.prevMouseLeft && g.hoverTile != nil {
			g.hoverTile.Click()
		}
	}
	g.prevMouseLeft = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	g.prevKeys = currentKeys
}

// updateHover maps the cursor to a tile and fires enter/exit handlers.
// Hover recolouring is immediate, never routed through the batch.
func (g *Game) updateHover() {
	mx, my := ebiten.CursorPosition()
	gx := (mx - boardOffX) / tilePx
	gy := (my - boardOffY) / tilePx
	var over *Tile
	if mx >= boardOffX && my >= boardOffY {
		over = g.grid.TileAt(gx, gy)
	}
	if over == g.hoverTile {
		return
	}
	if g.hoverTile != nil {
		g.hoverTile.HoverExit()
	}
	if over != nil {
		over.HoverEnter()
	}
	g.hoverTile = over
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 14, G: 14, B: 18, A: 255})

	// Board: one filled rect per tile at its handle's current colour.
	for _, t := range g.grid.Tiles() {
		v := g.visuals[t]
		if v == nil || !v.alive {
			continue
		}
		x := float32(boardOffX + t.GX*tilePx)
		y := float32(boardOffY + t.GY*tilePx)
		vector.FillRect(screen, x+1, y+1, tilePx-2, tilePx-2, v.c, false)

		// Terrain markers: corner notch for cover, pips for rough ground.
		if t.Cover > 0 {
			vector.FillRect(screen, x+3, y+3, 10, 10, color.RGBA{R: 90, G: 74, B: 48, A: 255}, false)
		}
		if t.MoveCost > 1 {
			for i := 0; i < 3; i++ {
				vector.FillRect(screen, x+8+float32(i)*10, y+tilePx-10, 4, 4,
					color.RGBA{R: 70, G: 70, B: 60, A: 255}, false)
			}
		}
	}

	// Units: team-coloured discs on top of their tiles.
	teamColors := [2]color.RGBA{
		{R: 60, G: 120, B: 220, A: 255},
		{R: 220, G: 80, B: 60, A: 255},
	}
	for _, u := range g.units {
		if !u.Alive {
			continue
		}
		cx := float32(boardOffX + u.X*tilePx + tilePx/2)
		cy := float32(boardOffY + u.Y*tilePx + tilePx/2)
		vector.FillCircle(screen, cx, cy, float32(tilePx)/3, teamColors[u.Team%2], true)
	}

	g.drawHUD(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	x := boardOffX + demoGridW*tilePx + 24
	y := boardOffY + 16
	line := func(s string) {
		text.Draw(screen, s, g.face, x, y, color.White)
		y += 16
	}

	line(fmt.Sprintf("round %d", g.turns.Round()))
	if cu := g.turns.CurrentUnit(); cu != nil {
		line(fmt.Sprintf("acting: %s (team %d)", cu.Name, cu.Team))
	}
	y += 8

	if u := g.selected; u != nil {
		eq := u.Equipment.TotalBonuses()
		line(fmt.Sprintf("%s  [%s]", u.Name, u.Class))
		line(fmt.Sprintf("hp %d/%d  ap %d  move %d", u.HP, u.MaxHP, u.AP, u.CurrentMovePoints))
		line(fmt.Sprintf("p.atk %d (+%.0f)  p.def %d (+%.0f)",
			u.Attack(AttackPhysical), eq.PhysicalAttack,
			u.Defense(AttackPhysical), eq.PhysicalDefense))
		line(fmt.Sprintf("range %d  gear value %.0f", u.AttackRange(), u.Equipment.EquipmentValue()))
		for _, it := range u.Equipment.EquippedItems() {
			line(fmt.Sprintf("  %s %.0f%%", it.Name, it.ConditionModifier()*100))
		}
		y += 8
		if g.attackMode {
			line("click a red tile to attack")
		} else {
			line("click green to move, A attack")
		}
		line("R repair, Space end turn")
	} else {
		line("click a unit to select")
	}

	feedTop := boardOffY + 300
	panelBottom := boardOffY + demoGridH*tilePx
	g.feed.Draw(screen, g.face, x, feedTop, sidePanelW-48, panelBottom)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return boardOffX*2 + demoGridW*tilePx + sidePanelW, boardOffY*2 + demoGridH*tilePx
}
