package artifacts

// ItemType is the top-level category of an item
type ItemType string

const (
	ItemTypeHelmet     ItemType = "helmet"
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeResource   ItemType = "resource"
	ItemTypeConsumable ItemType = "consumable"
	ItemTypeBoots      ItemType = "boots"
	ItemTypeCurrency   ItemType = "currency"
	ItemTypeShield     ItemType = "shield"
	ItemTypeRing       ItemType = "ring"
	ItemTypeBodyArmor  ItemType = "body_armor"
	ItemTypeLegArmor   ItemType = "leg_armor"
	ItemTypeAmulet     ItemType = "amulet"
	ItemTypeArtifact   ItemType = "artifact"
	ItemTypeFood       ItemType = "food"
	ItemTypeUtility    ItemType = "utility"
)

// Slots returns the equipment slots an item of this type can occupy, in the
// order they should be filled. Non-equippable types return nil.
func (t ItemType) Slots() []ItemSlot {
	switch t {
	case ItemTypeWeapon:
		return []ItemSlot{SlotWeapon}
	case ItemTypeShield:
		return []ItemSlot{SlotShield}
	case ItemTypeHelmet:
		return []ItemSlot{SlotHelmet}
	case ItemTypeBodyArmor:
		return []ItemSlot{SlotBodyArmor}
	case ItemTypeLegArmor:
		return []ItemSlot{SlotLegArmor}
	case ItemTypeBoots:
		return []ItemSlot{SlotBoots}
	case ItemTypeRing:
		return []ItemSlot{SlotRing1, SlotRing2}
	case ItemTypeAmulet:
		return []ItemSlot{SlotAmulet}
	case ItemTypeArtifact:
		return []ItemSlot{SlotArtifact1, SlotArtifact2, SlotArtifact3}
	case ItemTypeUtility:
		return []ItemSlot{SlotUtility1, SlotUtility2}
	default:
		return nil
	}
}

// ItemSubType refines an ItemType. Unknown values decode as-is.
type ItemSubType string

const (
	ItemSubTypeMask        ItemSubType = "mask"
	ItemSubTypeHelm        ItemSubType = "helm"
	ItemSubTypeDagger      ItemSubType = "dagger"
	ItemSubTypeStaff       ItemSubType = "staff"
	ItemSubTypeSword       ItemSubType = "sword"
	ItemSubTypeBow         ItemSubType = "bow"
	ItemSubTypeTool        ItemSubType = "tool"
	ItemSubTypeWhip        ItemSubType = "whip"
	ItemSubTypeAxe         ItemSubType = "axe"
	ItemSubTypeWand        ItemSubType = "wand"
	ItemSubTypeMining      ItemSubType = "mining"
	ItemSubTypeMob         ItemSubType = "mob"
	ItemSubTypeWoodcutting ItemSubType = "woodcutting"
	ItemSubTypeFishing     ItemSubType = "fishing"
	ItemSubTypeFood        ItemSubType = "food"
	ItemSubTypeBar         ItemSubType = "bar"
	ItemSubTypePlank       ItemSubType = "plank"
	ItemSubTypeAlloy       ItemSubType = "alloy"
	ItemSubTypeCoat        ItemSubType = "coat"
)

// ItemSlot is a character equipment slot, spelled the way the server expects
// it in equip/unequip payloads
type ItemSlot string

const (
	SlotWeapon    ItemSlot = "weapon"
	SlotShield    ItemSlot = "shield"
	SlotHelmet    ItemSlot = "helmet"
	SlotBodyArmor ItemSlot = "body_armor"
	SlotLegArmor  ItemSlot = "leg_armor"
	SlotBoots     ItemSlot = "boots"
	SlotRing1     ItemSlot = "ring1"
	SlotRing2     ItemSlot = "ring2"
	SlotAmulet    ItemSlot = "amulet"
	SlotArtifact1 ItemSlot = "artifact1"
	SlotArtifact2 ItemSlot = "artifact2"
	SlotArtifact3 ItemSlot = "artifact3"
	SlotUtility1  ItemSlot = "utility1"
	SlotUtility2  ItemSlot = "utility2"
)

// AllSlots lists every equipment slot
var AllSlots = []ItemSlot{
	SlotWeapon, SlotShield, SlotHelmet, SlotBodyArmor, SlotLegArmor, SlotBoots,
	SlotRing1, SlotRing2, SlotAmulet,
	SlotArtifact1, SlotArtifact2, SlotArtifact3,
	SlotUtility1, SlotUtility2,
}

// ItemType returns the item type that fits in the slot
func (s ItemSlot) ItemType() (ItemType, bool) {
	switch s {
	case SlotWeapon:
		return ItemTypeWeapon, true
	case SlotShield:
		return ItemTypeShield, true
	case SlotHelmet:
		return ItemTypeHelmet, true
	case SlotBodyArmor:
		return ItemTypeBodyArmor, true
	case SlotLegArmor:
		return ItemTypeLegArmor, true
	case SlotBoots:
		return ItemTypeBoots, true
	case SlotRing1, SlotRing2:
		return ItemTypeRing, true
	case SlotAmulet:
		return ItemTypeAmulet, true
	case SlotArtifact1, SlotArtifact2, SlotArtifact3:
		return ItemTypeArtifact, true
	case SlotUtility1, SlotUtility2:
		return ItemTypeUtility, true
	default:
		return "", false
	}
}

// Valid reports whether s is a known slot
func (s ItemSlot) Valid() bool {
	_, ok := s.ItemType()
	return ok
}

// Item is an item definition
type Item struct {
	Name        string       `json:"name"`
	Code        string       `json:"code"`
	Level       int          `json:"level"`
	Type        ItemType     `json:"type"`
	Subtype     ItemSubType  `json:"subtype"`
	Description string       `json:"description"`
	Effects     []ItemEffect `json:"effects"`
	Craft       *Craft       `json:"craft"`
}

// Equippable reports whether the item can be worn in some slot
func (i *Item) Equippable() bool {
	return len(i.Type.Slots()) > 0
}

// Effect returns the value of the named effect
func (i *Item) Effect(name string) (int, bool) {
	for _, e := range i.Effects {
		if e.Name == name {
			return e.Value, true
		}
	}
	return 0, false
}

// ItemEffect is a named stat modifier
type ItemEffect struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Craft describes how an item is crafted
type Craft struct {
	Skill    Skill           `json:"skill"`
	Level    int             `json:"level"`
	Items    []ItemComponent `json:"items"`
	Quantity int             `json:"quantity"`
}

// ItemComponent is an item code with a quantity
type ItemComponent struct {
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
}

// ItemDetails lists the xp and items obtained from gathering or crafting
type ItemDetails struct {
	XP    int             `json:"xp"`
	Items []ItemComponent `json:"items"`
}

// Recycle lists the items obtained from recycling
type Recycle struct {
	Items []ItemComponent `json:"items"`
}

// Resource is a gatherable resource spot definition
type Resource struct {
	Name  string         `json:"name"`
	Code  string         `json:"code"`
	Skill Skill          `json:"skill"`
	Level int            `json:"level"`
	Drops []ResourceDrop `json:"drops"`
}

// ResourceDrop is an item a resource can yield
type ResourceDrop struct {
	Code        string `json:"code"`
	Rate        int    `json:"rate"`
	MinQuantity int    `json:"min_quantity"`
	MaxQuantity int    `json:"max_quantity"`
}
