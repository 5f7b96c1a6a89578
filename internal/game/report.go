package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// --- Battle report ---

// UnitReport aggregates one unit's battle log entries.
type UnitReport struct {
	Name        string
	Team        int
	Alive       bool
	HP, MaxHP   int
	DamageDealt float64
	Hits        int
	Kills       int
	BrokenGear  []string
	GearValue   float64
}

// BattleReport summarises a finished (or in-progress) battle.
type BattleReport struct {
	Rounds int
	Winner int // -1 = no winner
	Units  []UnitReport
}

// BuildReport aggregates the sim's log into per-unit summaries.
func (bs *BattleSim) BuildReport(outcome Outcome) BattleReport {
	rep := BattleReport{
		Rounds: outcome.Rounds,
		Winner: outcome.Winner,
	}
	for _, u := range bs.Units {
		ur := UnitReport{
			Name:      u.Name,
			Team:      u.Team,
			Alive:     u.Alive,
			HP:        u.HP,
			MaxHP:     u.MaxHP,
			GearValue: u.Equipment.EquipmentValue(),
		}
		for _, e := range bs.Log.FilterUnit(u.Name) {
			switch {
			case e.Category == "attack" && e.Key == "hit":
				ur.Hits++
				ur.DamageDealt += e.NumVal
			case e.Category == "attack" && e.Key == "kill":
				ur.Kills++
			case e.Category == "equip" && e.Key == "broken":
				ur.BrokenGear = append(ur.BrokenGear, e.Value)
			}
		}
		rep.Units = append(rep.Units, ur)
	}
	return rep
}

// String formats the report as a fixed-width text block.
func (r BattleReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- battle report ---\n")
	if r.Winner >= 0 {
		fmt.Fprintf(&b, "rounds=%d winner=team %d\n\n", r.Rounds, r.Winner)
	} else {
		fmt.Fprintf(&b, "rounds=%d winner=none\n\n", r.Rounds)
	}
	fmt.Fprintf(&b, "%-12s %-4s %-6s %-9s %-6s %-5s %-5s %s\n",
		"unit", "team", "alive", "hp", "dmg", "hits", "kills", "gear_value")
	for _, u := range r.Units {
		fmt.Fprintf(&b, "%-12s %-4d %-6t %4d/%-4d %-6.0f %-5d %-5d %.1f\n",
			u.Name, u.Team, u.Alive, u.HP, u.MaxHP, u.DamageDealt, u.Hits, u.Kills, u.GearValue)
		for _, g := range u.BrokenGear {
			fmt.Fprintf(&b, "    broke: %s\n", g)
		}
	}
	return b.String()
}

// CopyToClipboard puts the formatted report on the system clipboard.
func (r BattleReport) CopyToClipboard() error {
	if err := clipboard.WriteAll(r.String()); err != nil {
		return fmt.Errorf("copy battle report: %w", err)
	}
	return nil
}
