package artifacts

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type quantityBody struct {
	Quantity int `json:"quantity"`
}

type itemBody struct {
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
}

type equipBody struct {
	Code     string   `json:"code"`
	Slot     ItemSlot `json:"slot"`
	Quantity int      `json:"quantity"`
}

type unequipBody struct {
	Slot     ItemSlot `json:"slot"`
	Quantity int      `json:"quantity"`
}

type moveBody struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func actionPath(name, action string) string {
	return fmt.Sprintf("/my/%s/action/%s", url.PathEscape(name), action)
}

func action[T any](ctx context.Context, c *Client, name, act string, body any) (*T, error) {
	out, err := send[T](ctx, c, request{
		method: http.MethodPost,
		path:   actionPath(name, act),
		body:   body,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Move moves the character to the map tile at (x, y)
func (c *Client) Move(ctx context.Context, name string, x, y int) (*CharacterMovementData, error) {
	return action[CharacterMovementData](ctx, c, name, "move", moveBody{X: x, Y: y})
}

// Rest restores the character's HP
func (c *Client) Rest(ctx context.Context, name string) (*CharacterRestData, error) {
	return action[CharacterRestData](ctx, c, name, "rest", nil)
}

// Equip puts quantity of the item into slot
func (c *Client) Equip(ctx context.Context, name, code string, slot ItemSlot, quantity int) (*CharacterEquipData, error) {
	return action[CharacterEquipData](ctx, c, name, "equip", equipBody{Code: code, Slot: slot, Quantity: quantity})
}

// Unequip removes quantity of the item held in slot
func (c *Client) Unequip(ctx context.Context, name string, slot ItemSlot, quantity int) (*CharacterEquipData, error) {
	return action[CharacterEquipData](ctx, c, name, "unequip", unequipBody{Slot: slot, Quantity: quantity})
}

// UseItem consumes quantity of the item
func (c *Client) UseItem(ctx context.Context, name, code string, quantity int) (*CharacterUseItemData, error) {
	return action[CharacterUseItemData](ctx, c, name, "use", itemBody{Code: code, Quantity: quantity})
}

// Fight fights the monster on the character's tile
func (c *Client) Fight(ctx context.Context, name string) (*CharacterFightData, error) {
	return action[CharacterFightData](ctx, c, name, "fight", struct{}{})
}

// Gather harvests the resource on the character's tile
func (c *Client) Gather(ctx context.Context, name string) (*CharacterGatherData, error) {
	return action[CharacterGatherData](ctx, c, name, "gathering", struct{}{})
}

// Craft crafts quantity of the item at the workshop on the character's tile
func (c *Client) Craft(ctx context.Context, name, code string, quantity int) (*CharacterCraftData, error) {
	return action[CharacterCraftData](ctx, c, name, "crafting", itemBody{Code: code, Quantity: quantity})
}

// Recycle breaks down quantity of the item into its components
func (c *Client) Recycle(ctx context.Context, name, code string, quantity int) (*CharacterRecycleData, error) {
	return action[CharacterRecycleData](ctx, c, name, "recycling", itemBody{Code: code, Quantity: quantity})
}

// DepositGold moves gold from the character into the bank
func (c *Client) DepositGold(ctx context.Context, name string, quantity int) (*CharacterGoldTransactionData, error) {
	return action[CharacterGoldTransactionData](ctx, c, name, "bank/deposit/gold", quantityBody{Quantity: quantity})
}

// WithdrawGold moves gold from the bank to the character
func (c *Client) WithdrawGold(ctx context.Context, name string, quantity int) (*CharacterGoldTransactionData, error) {
	return action[CharacterGoldTransactionData](ctx, c, name, "bank/withdraw/gold", quantityBody{Quantity: quantity})
}

// DepositItem moves items from the character's inventory into the bank
func (c *Client) DepositItem(ctx context.Context, name, code string, quantity int) (*CharacterItemTransactionData, error) {
	return action[CharacterItemTransactionData](ctx, c, name, "bank/deposit", itemBody{Code: code, Quantity: quantity})
}

// WithdrawItem moves items from the bank into the character's inventory
func (c *Client) WithdrawItem(ctx context.Context, name, code string, quantity int) (*CharacterItemTransactionData, error) {
	return action[CharacterItemTransactionData](ctx, c, name, "bank/withdraw", itemBody{Code: code, Quantity: quantity})
}
