package game

import (
	"encoding/json"
	"fmt"
	"os"
)

// --- Item definitions ---

// ItemDef is one catalog entry from the item definitions file. Catalog
// content is external configuration; Build instantiates gameplay items
// from it.
type ItemDef struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Type       string      `json:"type"` // "Weapons", "Armor", "Accessories", "Consumables", "Materials"
	Tier       string      `json:"tier"`
	Stats      StatBonuses `json:"stats"`
	Durability float64     `json:"durability"`
	Value      float64     `json:"value"`
	Abilities  []string    `json:"special_abilities"`
}

// itemCategoryNames maps catalog type strings to categories.
var itemCategoryNames = map[string]ItemCategory{
	"Weapons":     CategoryWeapon,
	"Armor":       CategoryArmor,
	"Accessories": CategoryAccessory,
	"Consumables": CategoryConsumable,
	"Materials":   CategoryMaterial,
}

// Category resolves the definition's type string.
func (d ItemDef) Category() (ItemCategory, error) {
	cat, ok := itemCategoryNames[d.Type]
	if !ok {
		return 0, fmt.Errorf("item %q: unknown type %q", d.ID, d.Type)
	}
	return cat, nil
}

// validate rejects definitions the game cannot use.
func (d ItemDef) validate() error {
	if d.ID == "" {
		return fmt.Errorf("item definition with empty id")
	}
	if d.Name == "" {
		return fmt.Errorf("item %q: empty name", d.ID)
	}
	if _, err := d.Category(); err != nil {
		return err
	}
	if d.Durability <= 0 {
		return fmt.Errorf("item %q: durability must be positive, got %g", d.ID, d.Durability)
	}
	if d.Value < 0 {
		return fmt.Errorf("item %q: negative value %g", d.ID, d.Value)
	}
	return nil
}

// Build instantiates a fresh item at full durability from the definition.
func (d ItemDef) Build() *Item {
	cat, _ := d.Category() // validated at load time
	return &Item{
		Name:          d.Name,
		Category:      cat,
		Tier:          d.Tier,
		Bonuses:       d.Stats,
		MaxDurability: d.Durability,
		Durability:    d.Durability,
		BaseValue:     d.Value,
		Abilities:     d.Abilities,
	}
}

// LoadItemDefs reads a JSON item catalog and returns the definitions keyed
// by id. The whole file is rejected on the first invalid entry.
func LoadItemDefs(path string) (map[string]ItemDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read item definitions: %w", err)
	}
	return ParseItemDefs(data)
}

// ParseItemDefs decodes and validates a JSON item catalog.
func ParseItemDefs(data []byte) (map[string]ItemDef, error) {
	var defs []ItemDef
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("unmarshal item definitions: %w", err)
	}
	lib := make(map[string]ItemDef, len(defs))
	for _, d := range defs {
		if err := d.validate(); err != nil {
			return nil, fmt.Errorf("invalid item definition: %w", err)
		}
		if _, dup := lib[d.ID]; dup {
			return nil, fmt.Errorf("duplicate item id %q", d.ID)
		}
		lib[d.ID] = d
	}
	return lib, nil
}
