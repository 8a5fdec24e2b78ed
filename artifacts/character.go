package artifacts

import "time"

// Skin is a character skin code
type Skin string

const (
	SkinMen1   Skin = "men1"
	SkinMen2   Skin = "men2"
	SkinMen3   Skin = "men3"
	SkinWomen1 Skin = "women1"
	SkinWomen2 Skin = "women2"
	SkinWomen3 Skin = "women3"
)

// Skill represents a gathering or crafting skill
type Skill string

const (
	SkillFishing         Skill = "fishing"
	SkillCooking         Skill = "cooking"
	SkillGearcrafting    Skill = "gearcrafting"
	SkillMining          Skill = "mining"
	SkillJewelrycrafting Skill = "jewelrycrafting"
	SkillWeaponcrafting  Skill = "weaponcrafting"
	SkillWoodcutting     Skill = "woodcutting"
	SkillAlchemy         Skill = "alchemy"
)

// String returns the wire name of the skill
func (s Skill) String() string {
	return string(s)
}

// Character is a player character as returned by the server. The server sends
// a single flat object; the embedded structs group its fields.
type Character struct {
	Name    string `json:"name"`
	Account string `json:"account"`
	Skin    Skin   `json:"skin"`
	Speed   int    `json:"speed"`
	Position
	CombatStats
	Skills
	ElementalAttributes
	Equipment
	Utilities
	Task
	InventoryInfo
	CooldownInfo
}

// Position is a map coordinate
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CombatStats holds the combat level and core stats
type CombatStats struct {
	Level          int `json:"level"`
	XP             int `json:"xp"`
	MaxXP          int `json:"max_xp"`
	Gold           int `json:"gold"`
	HP             int `json:"hp"`
	MaxHP          int `json:"max_hp"`
	Haste          int `json:"haste"`
	CriticalStrike int `json:"critical_strike"`
	Stamina        int `json:"stamina"`
}

// Skills holds level and xp of every gathering/crafting skill
type Skills struct {
	MiningLevel          int `json:"mining_level"`
	MiningXP             int `json:"mining_xp"`
	MiningMaxXP          int `json:"mining_max_xp"`
	WoodcuttingLevel     int `json:"woodcutting_level"`
	WoodcuttingXP        int `json:"woodcutting_xp"`
	WoodcuttingMaxXP     int `json:"woodcutting_max_xp"`
	FishingLevel         int `json:"fishing_level"`
	FishingXP            int `json:"fishing_xp"`
	FishingMaxXP         int `json:"fishing_max_xp"`
	WeaponcraftingLevel  int `json:"weaponcrafting_level"`
	WeaponcraftingXP     int `json:"weaponcrafting_xp"`
	WeaponcraftingMaxXP  int `json:"weaponcrafting_max_xp"`
	GearcraftingLevel    int `json:"gearcrafting_level"`
	GearcraftingXP       int `json:"gearcrafting_xp"`
	GearcraftingMaxXP    int `json:"gearcrafting_max_xp"`
	JewelrycraftingLevel int `json:"jewelrycrafting_level"`
	JewelrycraftingXP    int `json:"jewelrycrafting_xp"`
	JewelrycraftingMaxXP int `json:"jewelrycrafting_max_xp"`
	CookingLevel         int `json:"cooking_level"`
	CookingXP            int `json:"cooking_xp"`
	CookingMaxXP         int `json:"cooking_max_xp"`
	AlchemyLevel         int `json:"alchemy_level"`
	AlchemyXP            int `json:"alchemy_xp"`
	AlchemyMaxXP         int `json:"alchemy_max_xp"`
}

// SkillLevel returns the character's level in the given skill, 0 if unknown
func (s *Skills) SkillLevel(skill Skill) int {
	switch skill {
	case SkillMining:
		return s.MiningLevel
	case SkillWoodcutting:
		return s.WoodcuttingLevel
	case SkillFishing:
		return s.FishingLevel
	case SkillWeaponcrafting:
		return s.WeaponcraftingLevel
	case SkillGearcrafting:
		return s.GearcraftingLevel
	case SkillJewelrycrafting:
		return s.JewelrycraftingLevel
	case SkillCooking:
		return s.CookingLevel
	case SkillAlchemy:
		return s.AlchemyLevel
	default:
		return 0
	}
}

// ElementalAttributes holds elemental attack, damage and resistance values
type ElementalAttributes struct {
	AttackFire  int `json:"attack_fire"`
	AttackEarth int `json:"attack_earth"`
	AttackWater int `json:"attack_water"`
	AttackAir   int `json:"attack_air"`
	DmgFire     int `json:"dmg_fire"`
	DmgEarth    int `json:"dmg_earth"`
	DmgWater    int `json:"dmg_water"`
	DmgAir      int `json:"dmg_air"`
	ResFire     int `json:"res_fire"`
	ResEarth    int `json:"res_earth"`
	ResWater    int `json:"res_water"`
	ResAir      int `json:"res_air"`
}

// Equipment holds the item code in each gear slot; empty means unoccupied
type Equipment struct {
	WeaponSlot    string `json:"weapon_slot"`
	ShieldSlot    string `json:"shield_slot"`
	HelmetSlot    string `json:"helmet_slot"`
	BodyArmorSlot string `json:"body_armor_slot"`
	LegArmorSlot  string `json:"leg_armor_slot"`
	BootsSlot     string `json:"boots_slot"`
	Ring1Slot     string `json:"ring1_slot"`
	Ring2Slot     string `json:"ring2_slot"`
	AmuletSlot    string `json:"amulet_slot"`
	Artifact1Slot string `json:"artifact1_slot"`
	Artifact2Slot string `json:"artifact2_slot"`
	Artifact3Slot string `json:"artifact3_slot"`
}

// Utilities holds the two utility slots and their stack sizes
type Utilities struct {
	Utility1Slot         string `json:"utility1_slot"`
	Utility1SlotQuantity int    `json:"utility1_slot_quantity"`
	Utility2Slot         string `json:"utility2_slot"`
	Utility2SlotQuantity int    `json:"utility2_slot_quantity"`
}

// Task holds the character's current task
type Task struct {
	Task         string `json:"task"`
	TaskType     string `json:"task_type"`
	TaskProgress int    `json:"task_progress"`
	TaskTotal    int    `json:"task_total"`
}

// InventoryInfo holds the inventory contents
type InventoryInfo struct {
	InventoryMaxItems int             `json:"inventory_max_items"`
	Inventory         []InventorySlot `json:"inventory"`
}

// CooldownInfo holds the character-level cooldown
type CooldownInfo struct {
	Cooldown           int        `json:"cooldown"`
	CooldownExpiration *time.Time `json:"cooldown_expiration"`
}

// InventorySlot is one inventory slot
type InventorySlot struct {
	Slot     int    `json:"slot"`
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
}

// CooldownReason is the action that triggered a cooldown
type CooldownReason string

const (
	CooldownMovement          CooldownReason = "movement"
	CooldownFight             CooldownReason = "fight"
	CooldownCrafting          CooldownReason = "crafting"
	CooldownGathering         CooldownReason = "gathering"
	CooldownBuyGE             CooldownReason = "buy_ge"
	CooldownSellGE            CooldownReason = "sell_ge"
	CooldownCancelGE          CooldownReason = "cancel_ge"
	CooldownDeleteItem        CooldownReason = "delete_item"
	CooldownDeposit           CooldownReason = "deposit"
	CooldownWithdraw          CooldownReason = "withdraw"
	CooldownDepositGold       CooldownReason = "deposit_gold"
	CooldownWithdrawGold      CooldownReason = "withdraw_gold"
	CooldownEquip             CooldownReason = "equip"
	CooldownUnequip           CooldownReason = "unequip"
	CooldownTask              CooldownReason = "task"
	CooldownChristmasExchange CooldownReason = "christmas_exchange"
	CooldownRecycling         CooldownReason = "recycling"
	CooldownRest              CooldownReason = "rest"
	CooldownUse               CooldownReason = "use"
	CooldownBuyBankExpansion  CooldownReason = "buy_bank_expansion"
)

// Cooldown describes the cooldown started by an action
type Cooldown struct {
	TotalSeconds     int            `json:"total_seconds"`
	RemainingSeconds int            `json:"remaining_seconds"`
	StartedAt        time.Time      `json:"started_at"`
	Expiration       time.Time      `json:"expiration"`
	Reason           CooldownReason `json:"reason"`
}

// Remaining returns how long is left on the cooldown at the given instant
func (c *Cooldown) Remaining(now time.Time) time.Duration {
	if left := c.Expiration.Sub(now); left > 0 {
		return left
	}
	return 0
}

// EquippedItem returns the code of the item in slot. An empty or unknown slot
// yields ok == false.
func (c *Character) EquippedItem(slot ItemSlot) (code string, ok bool) {
	field := c.slotField(slot)
	if field == nil || *field == "" {
		return "", false
	}
	return *field, true
}

// FreeSlot returns the first unoccupied slot an item of type t can go into.
// ok is false when the type is not equippable or every candidate is taken.
func (c *Character) FreeSlot(t ItemType) (slot ItemSlot, ok bool) {
	for _, candidate := range t.Slots() {
		if _, occupied := c.EquippedItem(candidate); !occupied {
			return candidate, true
		}
	}
	return "", false
}

// InventoryQuantity returns how many of code the character carries
func (c *Character) InventoryQuantity(code string) int {
	total := 0
	for _, s := range c.Inventory {
		if s.Code == code {
			total += s.Quantity
		}
	}
	return total
}

// InventoryCount returns the total number of items carried
func (c *Character) InventoryCount() int {
	total := 0
	for _, s := range c.Inventory {
		total += s.Quantity
	}
	return total
}

func (c *Character) slotField(slot ItemSlot) *string {
	switch slot {
	case SlotWeapon:
		return &c.WeaponSlot
	case SlotShield:
		return &c.ShieldSlot
	case SlotHelmet:
		return &c.HelmetSlot
	case SlotBodyArmor:
		return &c.BodyArmorSlot
	case SlotLegArmor:
		return &c.LegArmorSlot
	case SlotBoots:
		return &c.BootsSlot
	case SlotRing1:
		return &c.Ring1Slot
	case SlotRing2:
		return &c.Ring2Slot
	case SlotAmulet:
		return &c.AmuletSlot
	case SlotArtifact1:
		return &c.Artifact1Slot
	case SlotArtifact2:
		return &c.Artifact2Slot
	case SlotArtifact3:
		return &c.Artifact3Slot
	case SlotUtility1:
		return &c.Utility1Slot
	case SlotUtility2:
		return &c.Utility2Slot
	default:
		return nil
	}
}
