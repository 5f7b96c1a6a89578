package game

import "sort"

// --- Turn manager ---

// TurnManager sequences unit turns. Initiative is speed descending, stable
// for ties, fixed when combat starts; dead units are skipped in place
// rather than removed, so the round structure stays predictable.
type TurnManager struct {
	order []*Unit
	idx   int
	round int
}

// NewTurnManager starts combat with the given units, sorting them into
// initiative order.
func NewTurnManager(units []*Unit) *TurnManager {
	order := make([]*Unit, len(units))
	copy(order, units)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Attr.Speed > order[j].Attr.Speed
	})
	return &TurnManager{order: order, round: 1}
}

// Round returns the current round number, starting at 1.
func (tm *TurnManager) Round() int { return tm.round }

// InitiativeOrder returns the fixed turn order.
func (tm *TurnManager) InitiativeOrder() []*Unit { return tm.order }

// CurrentUnit returns the unit whose turn it is, skipping the dead. Returns
// nil when no unit is left alive.
func (tm *TurnManager) CurrentUnit() *Unit {
	for i := 0; i < len(tm.order); i++ {
		u := tm.order[(tm.idx+i)%len(tm.order)]
		if u.Alive {
			// Skipping dead units mid-round still counts the wrap-around
			// as a round boundary, handled in NextTurn.
			tm.idx = (tm.idx + i) % len(tm.order)
			return u
		}
	}
	return nil
}

// NextTurn ends the current unit's turn and advances. Completing a pass
// over the whole order starts a new round: every living unit refreshes its
// action points and movement.
func (tm *TurnManager) NextTurn() *Unit {
	if len(tm.order) == 0 {
		return nil
	}
	tm.idx++
	if tm.idx >= len(tm.order) {
		tm.idx = 0
		tm.round++
		for _, u := range tm.order {
			if u.Alive {
				u.RefreshTurn()
			}
		}
	}
	return tm.CurrentUnit()
}

// AliveCount returns how many units in the order are still alive.
func (tm *TurnManager) AliveCount() int {
	n := 0
	for _, u := range tm.order {
		if u.Alive {
			n++
		}
	}
	return n
}
