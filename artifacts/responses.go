package artifacts

// CharacterMovementData is returned by a move action
type CharacterMovementData struct {
	Cooldown    Cooldown  `json:"cooldown"`
	Destination Map       `json:"destination"`
	Character   Character `json:"character"`
}

// CharacterRestData is returned by a rest action
type CharacterRestData struct {
	Cooldown   Cooldown  `json:"cooldown"`
	HPRestored int       `json:"hp_restored"`
	Character  Character `json:"character"`
}

// CharacterEquipData is returned by equip and unequip actions
type CharacterEquipData struct {
	Cooldown  Cooldown  `json:"cooldown"`
	Slot      ItemSlot  `json:"slot"`
	Item      Item      `json:"item"`
	Character Character `json:"character"`
}

// CharacterUseItemData is returned by a use action
type CharacterUseItemData struct {
	Cooldown  Cooldown  `json:"cooldown"`
	Item      Item      `json:"item"`
	Character Character `json:"character"`
}

// CharacterFightData is returned by a fight action
type CharacterFightData struct {
	Cooldown  Cooldown  `json:"cooldown"`
	Fight     Fight     `json:"fight"`
	Character Character `json:"character"`
}

// CharacterGatherData is returned by a gathering action
type CharacterGatherData struct {
	Cooldown  Cooldown    `json:"cooldown"`
	Details   ItemDetails `json:"details"`
	Character Character   `json:"character"`
}

// CharacterCraftData is returned by a crafting action
type CharacterCraftData struct {
	Cooldown  Cooldown    `json:"cooldown"`
	Details   ItemDetails `json:"details"`
	Character Character   `json:"character"`
}

// CharacterGoldTransactionData is returned by bank gold deposits and withdrawals
type CharacterGoldTransactionData struct {
	Cooldown  Cooldown  `json:"cooldown"`
	Bank      BankGold  `json:"bank"`
	Character Character `json:"character"`
}

// CharacterItemTransactionData is returned by bank item deposits and withdrawals.
// Bank holds the full bank content after the transaction.
type CharacterItemTransactionData struct {
	Cooldown  Cooldown        `json:"cooldown"`
	Item      Item            `json:"item"`
	Bank      []ItemComponent `json:"bank"`
	Character Character       `json:"character"`
}

// CharacterRecycleData is returned by a recycling action
type CharacterRecycleData struct {
	Cooldown  Cooldown  `json:"cooldown"`
	Details   Recycle   `json:"details"`
	Character Character `json:"character"`
}
