package game

// --- Item categories ---

// ItemCategory classifies an item and decides which equipment slot, if any,
// it may occupy.
type ItemCategory int

const (
	CategoryWeapon ItemCategory = iota
	CategoryArmor
	CategoryAccessory
	CategoryConsumable
	CategoryMaterial
	itemCategoryCount // sentinel
)

func (c ItemCategory) String() string {
	switch c {
	case CategoryWeapon:
		return "weapon"
	case CategoryArmor:
		return "armor"
	case CategoryAccessory:
		return "accessory"
	case CategoryConsumable:
		return "consumable"
	case CategoryMaterial:
		return "material"
	default:
		return "unknown"
	}
}

// IsEquippable reports whether items of this category occupy a slot.
// Consumables and materials live in inventory only.
func (c ItemCategory) IsEquippable() bool {
	switch c {
	case CategoryWeapon, CategoryArmor, CategoryAccessory:
		return true
	default:
		return false
	}
}

// equippableCategories fixes the slot iteration order for deterministic
// aggregation and reporting.
var equippableCategories = [...]ItemCategory{
	CategoryWeapon,
	CategoryArmor,
	CategoryAccessory,
}

// --- Stat bonuses ---

// StatBonuses is the closed set of numeric combat bonuses an item can grant.
// The zero value is the empty aggregate.
type StatBonuses struct {
	PhysicalAttack   float64 `json:"physical_attack,omitempty"`
	MagicalAttack    float64 `json:"magical_attack,omitempty"`
	SpiritualAttack  float64 `json:"spiritual_attack,omitempty"`
	PhysicalDefense  float64 `json:"physical_defense,omitempty"`
	MagicalDefense   float64 `json:"magical_defense,omitempty"`
	SpiritualDefense float64 `json:"spiritual_defense,omitempty"`
	AttackRange      float64 `json:"attack_range,omitempty"`
	EffectArea       float64 `json:"effect_area,omitempty"`
}

// Add accumulates other into s field by field.
func (s *StatBonuses) Add(other StatBonuses) {
	s.PhysicalAttack += other.PhysicalAttack
	s.MagicalAttack += other.MagicalAttack
	s.SpiritualAttack += other.SpiritualAttack
	s.PhysicalDefense += other.PhysicalDefense
	s.MagicalDefense += other.MagicalDefense
	s.SpiritualDefense += other.SpiritualDefense
	s.AttackRange += other.AttackRange
	s.EffectArea += other.EffectArea
}

// Scale returns a copy of s with every field multiplied by f.
func (s StatBonuses) Scale(f float64) StatBonuses {
	return StatBonuses{
		PhysicalAttack:   s.PhysicalAttack * f,
		MagicalAttack:    s.MagicalAttack * f,
		SpiritualAttack:  s.SpiritualAttack * f,
		PhysicalDefense:  s.PhysicalDefense * f,
		MagicalDefense:   s.MagicalDefense * f,
		SpiritualDefense: s.SpiritualDefense * f,
		AttackRange:      s.AttackRange * f,
		EffectArea:       s.EffectArea * f,
	}
}

// --- Item ---

// Item is one piece of equipment or inventory stock. Base stats are fixed at
// creation; the contribution an item actually makes scales with its current
// durability (see EffectiveStats).
type Item struct {
	Name          string
	Category      ItemCategory
	Tier          string // "BASE", "ENHANCED", "ENCHANTED", "SUPERB", "META"
	Bonuses       StatBonuses
	MaxDurability float64
	Durability    float64
	BaseValue     float64
	Abilities     []string // special ability names

	equipped bool
}

// IsEquipped reports whether the item currently occupies a slot.
func (it *Item) IsEquipped() bool { return it.equipped }

// ConditionModifier returns the durability fraction in [0,1]. A pristine
// item contributes fully; a worn one proportionally less.
func (it *Item) ConditionModifier() float64 {
	if it.MaxDurability <= 0 {
		return 1.0
	}
	m := it.Durability / it.MaxDurability
	if m < 0 {
		return 0
	}
	if m > 1 {
		return 1
	}
	return m
}

// EffectiveStats returns the item's base bonuses scaled by its condition.
func (it *Item) EffectiveStats() StatBonuses {
	return it.Bonuses.Scale(it.ConditionModifier())
}

// HasAbility reports whether the item lists the named special ability.
func (it *Item) HasAbility(name string) bool {
	for _, a := range it.Abilities {
		if a == name {
			return true
		}
	}
	return false
}

// ApplyWear removes amount durability, clamped at zero.
func (it *Item) ApplyWear(amount float64) {
	it.Durability -= amount
	if it.Durability < 0 {
		it.Durability = 0
	}
}

// Repair restores amount durability, clamped at the item's maximum.
func (it *Item) Repair(amount float64) {
	it.Durability += amount
	if it.Durability > it.MaxDurability {
		it.Durability = it.MaxDurability
	}
}
