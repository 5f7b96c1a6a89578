package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Calverly/Grid-Tactics/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	outcome game.Outcome
	report  game.BattleReport
}

// demoSim builds one battle: two squads of three, mirrored spawns. Gear
// comes from the item catalog when one is given, otherwise from built-in
// starter items.
func demoSim(seed int64, defs map[string]game.ItemDef) *game.BattleSim {
	opts := []game.SimOption{
		game.WithGridSize(10, 8),
		game.WithSeed(seed),
		game.WithBattleUnit("Kira", game.ClassHeromancer, 0, 1, 2),
		game.WithBattleUnit("Bruno", game.ClassUbermensch, 0, 1, 4),
		game.WithBattleUnit("Sela", game.ClassMagi, 0, 1, 6),
		game.WithBattleUnit("Vex", game.ClassSoulLinked, 1, 8, 2),
		game.WithBattleUnit("Orin", game.ClassRealmWalker, 1, 8, 4),
		game.WithBattleUnit("Tamsin", game.ClassWargi, 1, 8, 6),
	}

	names := []string{"Kira", "Bruno", "Sela", "Vex", "Orin", "Tamsin"}
	for _, n := range names {
		opts = append(opts, game.WithEquippedItem(n, starterWeapon(defs)))
		opts = append(opts, game.WithEquippedItem(n, starterArmor(defs)))
	}
	return game.NewBattleSim(opts...)
}

func starterWeapon(defs map[string]game.ItemDef) *game.Item {
	if d, ok := defs["iron_blade"]; ok {
		return d.Build()
	}
	return &game.Item{
		Name: "Iron Blade", Category: game.CategoryWeapon, Tier: "BASE",
		Bonuses:       game.StatBonuses{PhysicalAttack: 8, AttackRange: 2},
		MaxDurability: 100, Durability: 100, BaseValue: 120,
	}
}

func starterArmor(defs map[string]game.ItemDef) *game.Item {
	if d, ok := defs["leather_cuirass"]; ok {
		return d.Build()
	}
	return &game.Item{
		Name: "Leather Cuirass", Category: game.CategoryArmor, Tier: "BASE",
		Bonuses:       game.StatBonuses{PhysicalDefense: 5, MagicalDefense: 2},
		MaxDurability: 80, Durability: 80, BaseValue: 90,
	}
}

func main() {
	var runs int
	var maxRounds int
	var seedBase int64
	var seedStep int64
	var itemsPath string
	var toClipboard bool
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless battle runs")
	flag.IntVar(&maxRounds, "rounds", 50, "round limit per battle")
	flag.Int64Var(&seedBase, "seed", 1000, "seed for the first run")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&itemsPath, "items", "", "optional JSON item catalog for starter gear")
	flag.BoolVar(&toClipboard, "clipboard", false, "copy the final report to the clipboard")
	flag.BoolVar(&verbose, "v", false, "print the full battle log of every run")
	flag.Parse()

	var defs map[string]game.ItemDef
	if itemsPath != "" {
		var err error
		defs, err = game.LoadItemDefs(itemsPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	var stats []runStats
	wins := map[int]int{}
	totalRounds := 0

	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		sim := demoSim(seed, defs)
		outcome := sim.RunAutoBattle(maxRounds)
		report := sim.BuildReport(outcome)

		stats = append(stats, runStats{runIndex: i, seed: seed, outcome: outcome, report: report})
		wins[outcome.Winner]++
		totalRounds += outcome.Rounds

		fmt.Printf("=== run %d (seed=%d) ===\n", i, seed)
		fmt.Print(report.String())
		if verbose {
			for _, e := range sim.Log.Entries() {
				fmt.Println(e.String())
			}
		}
		fmt.Println()
	}

	fmt.Printf("--- summary over %d runs ---\n", runs)
	fmt.Printf("team 0 wins: %d   team 1 wins: %d   draws: %d\n",
		wins[0], wins[1], wins[-1])
	fmt.Printf("avg rounds: %.1f\n", float64(totalRounds)/float64(runs))

	if toClipboard && len(stats) > 0 {
		last := stats[len(stats)-1].report
		if err := last.CopyToClipboard(); err != nil {
			log.Printf("clipboard: %v", err)
		} else {
			fmt.Println("final report copied to clipboard")
		}
	}
}
