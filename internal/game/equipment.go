package game

import (
	"errors"
	"math/rand"
)

// ErrIncompatibleSlot is returned by Equip for a non-equippable category.
var ErrIncompatibleSlot = errors.New("item category has no equipment slot")

// --- Equipment slots ---

// EquipmentSlots holds one unit's equipped items (at most one per equippable
// category) and its loose inventory. An item is either in exactly one slot
// or in the inventory, never both.
//
// The combined stat bonus across all equipped items is memoized behind a
// dirty flag: equip/unequip/wear events mark it stale and the next
// TotalBonuses call recomputes it.
type EquipmentSlots struct {
	slots     map[ItemCategory]*Item
	inventory []*Item

	// BreakThreshold is the durability at or below which damage from
	// TakeEquipmentDamage breaks an item, unequipping it. Zero means an
	// item only breaks when fully worn out.
	BreakThreshold float64

	dirty  bool
	cached StatBonuses

	rng *rand.Rand
}

// NewEquipmentSlots creates an empty slot set. The rng drives random item
// selection in TakeEquipmentDamage; pass a seeded source for deterministic
// runs.
func NewEquipmentSlots(rng *rand.Rand) *EquipmentSlots {
	return &EquipmentSlots{
		slots: make(map[ItemCategory]*Item),
		rng:   rng,
	}
}

// Equipped returns the item occupying the slot for cat, or nil.
func (e *EquipmentSlots) Equipped(cat ItemCategory) *Item {
	return e.slots[cat]
}

// EquippedItems returns the currently equipped items in fixed category
// order (weapon, armor, accessory).
func (e *EquipmentSlots) EquippedItems() []*Item {
	var items []*Item
	for _, cat := range equippableCategories {
		if it := e.slots[cat]; it != nil {
			items = append(items, it)
		}
	}
	return items
}

// Inventory returns the unequipped items owned alongside the slots.
func (e *EquipmentSlots) Inventory() []*Item { return e.inventory }

// AddToInventory appends an item to the loose inventory.
func (e *EquipmentSlots) AddToInventory(it *Item) {
	e.inventory = append(e.inventory, it)
}

// Equip places item into the slot for its category. A previously equipped
// item of the same category is displaced into the inventory untouched. The
// new item is removed from the inventory if it was there. Returns
// ErrIncompatibleSlot for consumables and materials.
func (e *EquipmentSlots) Equip(item *Item) error {
	if !item.Category.IsEquippable() {
		return ErrIncompatibleSlot
	}
	if prev := e.slots[item.Category]; prev != nil {
		prev.equipped = false
		e.inventory = append(e.inventory, prev)
	}
	e.removeFromInventory(item)
	e.slots[item.Category] = item
	item.equipped = true
	e.dirty = true
	return nil
}

// Unequip removes the item in the slot for cat, appends it to the
// inventory, and returns it. An empty slot returns nil and changes nothing.
func (e *EquipmentSlots) Unequip(cat ItemCategory) *Item {
	item := e.slots[cat]
	if item == nil {
		return nil
	}
	delete(e.slots, cat)
	item.equipped = false
	e.inventory = append(e.inventory, item)
	e.dirty = true
	return item
}

// TotalBonuses returns the combined effective stats of every equipped item.
// A clean cache answers in O(1); a dirty one is recomputed and stored first.
func (e *EquipmentSlots) TotalBonuses() StatBonuses {
	if !e.dirty {
		return e.cached
	}
	var total StatBonuses
	for _, cat := range equippableCategories {
		if it := e.slots[cat]; it != nil {
			total.Add(it.EffectiveStats())
		}
	}
	e.cached = total
	e.dirty = false
	return total
}

// HasSpecialAbility reports whether any equipped item grants the named
// special ability.
func (e *EquipmentSlots) HasSpecialAbility(name string) bool {
	for _, cat := range equippableCategories {
		if it := e.slots[cat]; it != nil && it.HasAbility(name) {
			return true
		}
	}
	return false
}

// EquipmentValue sums baseValue × condition over every owned item, equipped
// or not. Pure read; does not touch the bonus cache.
func (e *EquipmentSlots) EquipmentValue() float64 {
	var total float64
	for _, cat := range equippableCategories {
		if it := e.slots[cat]; it != nil {
			total += it.BaseValue * it.ConditionModifier()
		}
	}
	for _, it := range e.inventory {
		total += it.BaseValue * it.ConditionModifier()
	}
	return total
}

// TakeEquipmentDamage applies amount durability damage to one equipped item
// chosen uniformly at random. An item driven to the break threshold is
// unequipped into the inventory and its name reported in the returned list.
// With nothing equipped this is a no-op and the cache stays untouched.
func (e *EquipmentSlots) TakeEquipmentDamage(amount float64) []string {
	items := e.EquippedItems()
	if len(items) == 0 {
		return nil
	}
	item := items[e.rng.Intn(len(items))]
	item.ApplyWear(amount)

	var broken []string
	if item.Durability <= e.BreakThreshold {
		e.Unequip(item.Category)
		broken = append(broken, item.Name)
	}
	e.dirty = true
	return broken
}

// RepairAll restores amount durability to every owned item, equipped or
// not. The cache is marked dirty unconditionally: condition scaling changes
// the contribution of items already in slots.
func (e *EquipmentSlots) RepairAll(amount float64) {
	for _, cat := range equippableCategories {
		if it := e.slots[cat]; it != nil {
			it.Repair(amount)
		}
	}
	for _, it := range e.inventory {
		it.Repair(amount)
	}
	e.dirty = true
}

// removeFromInventory deletes item from the inventory slice if present.
func (e *EquipmentSlots) removeFromInventory(item *Item) {
	for i, it := range e.inventory {
		if it == item {
			e.inventory = append(e.inventory[:i], e.inventory[i+1:]...)
			return
		}
	}
}
