package artifacts

import (
	"context"
)

// API defines the interface for ArtifactsMMO operations
type API interface {
	// Status retrieves the server status
	Status(ctx context.Context) (*Status, error)

	// Character operations
	Character(ctx context.Context, name string) (*Character, error)
	MyCharacters(ctx context.Context) ([]Character, error)

	// Actions performed by one of the account's characters
	Move(ctx context.Context, name string, x, y int) (*CharacterMovementData, error)
	Rest(ctx context.Context, name string) (*CharacterRestData, error)
	Equip(ctx context.Context, name, code string, slot ItemSlot, quantity int) (*CharacterEquipData, error)
	Unequip(ctx context.Context, name string, slot ItemSlot, quantity int) (*CharacterEquipData, error)
	UseItem(ctx context.Context, name, code string, quantity int) (*CharacterUseItemData, error)
	Fight(ctx context.Context, name string) (*CharacterFightData, error)
	Gather(ctx context.Context, name string) (*CharacterGatherData, error)
	Craft(ctx context.Context, name, code string, quantity int) (*CharacterCraftData, error)
	Recycle(ctx context.Context, name, code string, quantity int) (*CharacterRecycleData, error)
	DepositGold(ctx context.Context, name string, quantity int) (*CharacterGoldTransactionData, error)
	WithdrawGold(ctx context.Context, name string, quantity int) (*CharacterGoldTransactionData, error)
	DepositItem(ctx context.Context, name, code string, quantity int) (*CharacterItemTransactionData, error)
	WithdrawItem(ctx context.Context, name, code string, quantity int) (*CharacterItemTransactionData, error)

	// Bank
	BankItems(ctx context.Context) ([]ItemComponent, error)
	BankDetails(ctx context.Context) (*BankDetails, error)

	// Catalog lookups; list methods aggregate every page
	Items(ctx context.Context) ([]Item, error)
	Item(ctx context.Context, code string) (*Item, error)
	Resources(ctx context.Context) ([]Resource, error)
	ResourcesDropping(ctx context.Context, code string) ([]Resource, error)
	Resource(ctx context.Context, code string) (*Resource, error)
	Maps(ctx context.Context) ([]Map, error)
	MapsByContent(ctx context.Context, contentType MapContentType, contentCode string) ([]Map, error)
	Map(ctx context.Context, x, y int) (*Map, error)
	Monsters(ctx context.Context) ([]Monster, error)
	Monster(ctx context.Context, code string) (*Monster, error)
}

var _ API = (*Client)(nil)
