package game

import "fmt"

// --- Battle log ---

// BattleLogEntry is one recorded event during a battle.
type BattleLogEntry struct {
	Round    int
	Unit     string  // unit name, or "--" for global events
	Category string  // turn, move, attack, equip, highlight
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[R=003] Kira   attack   hit   Bruno for 14
func (e BattleLogEntry) String() string {
	return fmt.Sprintf("[R=%03d] %-10s %-9s %-16s %s",
		e.Round, e.Unit, e.Category, e.Key, e.Value)
}

// BattleLog collects structured events during a battle. It is unbounded
// and machine-readable; the report layer aggregates it.
type BattleLog struct {
	entries []BattleLogEntry
}

// NewBattleLog creates an empty log.
func NewBattleLog() *BattleLog {
	return &BattleLog{}
}

// Add records a new entry.
func (bl *BattleLog) Add(round int, unit, category, key, value string, numVal float64) {
	bl.entries = append(bl.entries, BattleLogEntry{
		Round:    round,
		Unit:     unit,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// Entries returns every recorded entry in order.
func (bl *BattleLog) Entries() []BattleLogEntry { return bl.entries }

// Filter returns entries matching category and key. Empty key matches all
// keys within the category.
func (bl *BattleLog) Filter(category, key string) []BattleLogEntry {
	var out []BattleLogEntry
	for _, e := range bl.entries {
		if e.Category == category && (key == "" || e.Key == key) {
			out = append(out, e)
		}
	}
	return out
}

// FilterUnit returns every entry recorded for the named unit.
func (bl *BattleLog) FilterUnit(name string) []BattleLogEntry {
	var out []BattleLogEntry
	for _, e := range bl.entries {
		if e.Unit == name {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of recorded entries.
func (bl *BattleLog) Len() int { return len(bl.entries) }
