package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/artifactsmmo/artifacts"
)

var waitCooldown bool

// actionCmd groups the character actions
var actionCmd = &cobra.Command{
	Use:   "action",
	Short: "Perform an action with one of your characters",
	Long: `Perform an action with one of your characters.

Every action puts the character in cooldown. With --wait the command only
returns once that cooldown has elapsed, which makes actions easy to chain
from a shell script.`,
}

func init() {
	rootCmd.AddCommand(actionCmd)
	actionCmd.PersistentFlags().BoolVarP(&waitCooldown, "wait", "w", false, "wait for the cooldown to end before returning")

	actionCmd.AddCommand(
		&cobra.Command{
			Use:   "move <character> <x> <y>",
			Short: "Move to a map tile",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				x, y, err := parseCoordinates(args[1], args[2])
				if err != nil {
					return err
				}
				return runAction(cmd, args[0], "move",
					func(ctx context.Context) (*artifacts.CharacterMovementData, error) {
						return client.Move(ctx, args[0], x, y)
					},
					func(d *artifacts.CharacterMovementData) artifacts.Cooldown { return d.Cooldown },
					func(w io.Writer, d *artifacts.CharacterMovementData) {
						row(w, "Moved to:", fmt.Sprintf("%s (%d, %d)", d.Destination.Name, d.Destination.X, d.Destination.Y))
						if d.Destination.Content != nil {
							row(w, "Content:", fmt.Sprintf("%s %s", d.Destination.Content.Type, d.Destination.Content.Code))
						}
					})
			},
		},
		&cobra.Command{
			Use:   "rest <character>",
			Short: "Rest to recover HP",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runAction(cmd, args[0], "rest",
					func(ctx context.Context) (*artifacts.CharacterRestData, error) {
						return client.Rest(ctx, args[0])
					},
					func(d *artifacts.CharacterRestData) artifacts.Cooldown { return d.Cooldown },
					func(w io.Writer, d *artifacts.CharacterRestData) {
						row(w, "HP restored:", d.HPRestored)
						row(w, "HP:", fmt.Sprintf("%d/%d", d.Character.HP, d.Character.MaxHP))
					})
			},
		},
		&cobra.Command{
			Use:   "fight <character>",
			Short: "Fight the monster on the current tile",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runAction(cmd, args[0], "fight",
					func(ctx context.Context) (*artifacts.CharacterFightData, error) {
						return client.Fight(ctx, args[0])
					},
					func(d *artifacts.CharacterFightData) artifacts.Cooldown { return d.Cooldown },
					func(w io.Writer, d *artifacts.CharacterFightData) {
						row(w, "Result:", d.Fight.Result)
						row(w, "Turns:", d.Fight.Turns)
						row(w, "XP:", d.Fight.XP)
						row(w, "Gold:", d.Fight.Gold)
						componentRows(w, "Drop:", d.Fight.Drops)
					})
			},
		},
		&cobra.Command{
			Use:   "gather <character>",
			Short: "Gather the resource on the current tile",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runAction(cmd, args[0], "gather",
					func(ctx context.Context) (*artifacts.CharacterGatherData, error) {
						return client.Gather(ctx, args[0])
					},
					func(d *artifacts.CharacterGatherData) artifacts.Cooldown { return d.Cooldown },
					func(w io.Writer, d *artifacts.CharacterGatherData) {
						row(w, "XP:", d.Details.XP)
						componentRows(w, "Item:", d.Details.Items)
					})
			},
		},
		withQuantity(&cobra.Command{
			Use:   "craft <character> <code>",
			Short: "Craft an item at the workshop on the current tile",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runAction(cmd, args[0], "craft",
					func(ctx context.Context) (*artifacts.CharacterCraftData, error) {
						return client.Craft(ctx, args[0], args[1], quantityFlag(cmd))
					},
					func(d *artifacts.CharacterCraftData) artifacts.Cooldown { return d.Cooldown },
					func(w io.Writer, d *artifacts.CharacterCraftData) {
						row(w, "XP:", d.Details.XP)
						componentRows(w, "Item:", d.Details.Items)
					})
			},
		}),
		withQuantity(&cobra.Command{
			Use:   "recycle <character> <code>",
			Short: "Recycle an item at the workshop on the current tile",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runAction(cmd, args[0], "recycle",
					func(ctx context.Context) (*artifacts.CharacterRecycleData, error) {
						return client.Recycle(ctx, args[0], args[1], quantityFlag(cmd))
					},
					func(d *artifacts.CharacterRecycleData) artifacts.Cooldown { return d.Cooldown },
					func(w io.Writer, d *artifacts.CharacterRecycleData) {
						componentRows(w, "Item:", d.Details.Items)
					})
			},
		}),
		withQuantity(&cobra.Command{
			Use:   "use <character> <code>",
			Short: "Use a consumable item",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runAction(cmd, args[0], "use",
					func(ctx context.Context) (*artifacts.CharacterUseItemData, error) {
						return client.UseItem(ctx, args[0], args[1], quantityFlag(cmd))
					},
					func(d *artifacts.CharacterUseItemData) artifacts.Cooldown { return d.Cooldown },
					func(w io.Writer, d *artifacts.CharacterUseItemData) {
						row(w, "Used:", d.Item.Code)
						row(w, "HP:", fmt.Sprintf("%d/%d", d.Character.HP, d.Character.MaxHP))
					})
			},
		}),
		equipCmd(),
		withQuantity(&cobra.Command{
			Use:   "unequip <character> <slot>",
			Short: "Unequip the item in a slot",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				slot := artifacts.ItemSlot(args[1])
				if !slot.Valid() {
					return fmt.Errorf("unknown slot %q", args[1])
				}
				return runAction(cmd, args[0], "unequip",
					func(ctx context.Context) (*artifacts.CharacterEquipData, error) {
						return client.Unequip(ctx, args[0], slot, quantityFlag(cmd))
					},
					func(d *artifacts.CharacterEquipData) artifacts.Cooldown { return d.Cooldown },
					equipSummary)
			},
		}),
		withQuantity(&cobra.Command{
			Use:   "deposit <character> <code>",
			Short: "Deposit an item in the bank",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runAction(cmd, args[0], "deposit",
					func(ctx context.Context) (*artifacts.CharacterItemTransactionData, error) {
						return client.DepositItem(ctx, args[0], args[1], quantityFlag(cmd))
					},
					func(d *artifacts.CharacterItemTransactionData) artifacts.Cooldown { return d.Cooldown },
					itemTransactionSummary)
			},
		}),
		withQuantity(&cobra.Command{
			Use:   "withdraw <character> <code>",
			Short: "Withdraw an item from the bank",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runAction(cmd, args[0], "withdraw",
					func(ctx context.Context) (*artifacts.CharacterItemTransactionData, error) {
						return client.WithdrawItem(ctx, args[0], args[1], quantityFlag(cmd))
					},
					func(d *artifacts.CharacterItemTransactionData) artifacts.Cooldown { return d.Cooldown },
					itemTransactionSummary)
			},
		}),
		goldCmd("deposit-gold", "Deposit gold in the bank", true),
		goldCmd("withdraw-gold", "Withdraw gold from the bank", false),
	)
}

// withQuantity gives c its own --quantity flag
func withQuantity(c *cobra.Command) *cobra.Command {
	c.Flags().IntP("quantity", "q", 1, "number of items")
	return c
}

func quantityFlag(cmd *cobra.Command) int {
	q, _ := cmd.Flags().GetInt("quantity")
	return q
}

// equipCmd equips an item. Without --slot the first free slot matching the
// item type is used.
func equipCmd() *cobra.Command {
	c := withQuantity(&cobra.Command{
		Use:   "equip <character> <code>",
		Short: "Equip an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, code := args[0], args[1]

			slotFlag, _ := cmd.Flags().GetString("slot")
			slot := artifacts.ItemSlot(slotFlag)
			if slotFlag == "" {
				var err error
				if slot, err = pickSlot(cmd.Context(), name, code); err != nil {
					return err
				}
			} else if !slot.Valid() {
				return fmt.Errorf("unknown slot %q", slotFlag)
			}

			return runAction(cmd, name, "equip",
				func(ctx context.Context) (*artifacts.CharacterEquipData, error) {
					return client.Equip(ctx, name, code, slot, quantityFlag(cmd))
				},
				func(d *artifacts.CharacterEquipData) artifacts.Cooldown { return d.Cooldown },
				equipSummary)
		},
	})
	c.Flags().StringP("slot", "s", "", "equipment slot (default: first free slot for the item type)")
	return c
}

// pickSlot finds the first free slot for the item on the character
func pickSlot(ctx context.Context, name, code string) (artifacts.ItemSlot, error) {
	item, err := client.Item(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to get item %s: %w", code, err)
	}
	if !item.Equippable() {
		return "", fmt.Errorf("item %s of type %s cannot be equipped", code, item.Type)
	}

	ch, err := client.Character(ctx, name)
	if err != nil {
		return "", fmt.Errorf("failed to get character %s: %w", name, err)
	}

	slot, ok := ch.FreeSlot(item.Type)
	if !ok {
		return "", fmt.Errorf("no free %s slot on %s, use --slot to replace an item", item.Type, name)
	}

	logger.Debug().Str("item", code).Str("slot", string(slot)).Msg("Picked equipment slot")
	return slot, nil
}

func goldCmd(use, short string, deposit bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <character> <amount>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[1])
			if err != nil || amount <= 0 {
				return fmt.Errorf("invalid gold amount %q", args[1])
			}
			return runAction(cmd, args[0], use,
				func(ctx context.Context) (*artifacts.CharacterGoldTransactionData, error) {
					if deposit {
						return client.DepositGold(ctx, args[0], amount)
					}
					return client.WithdrawGold(ctx, args[0], amount)
				},
				func(d *artifacts.CharacterGoldTransactionData) artifacts.Cooldown { return d.Cooldown },
				func(w io.Writer, d *artifacts.CharacterGoldTransactionData) {
					row(w, "Bank gold:", d.Bank.Quantity)
					row(w, "Character gold:", d.Character.Gold)
				})
		},
	}
}

// runAction performs one action, prints its outcome and optionally waits out
// the resulting cooldown
func runAction[T any](
	cmd *cobra.Command,
	character, action string,
	do func(context.Context) (T, error),
	cooldown func(T) artifacts.Cooldown,
	summary func(io.Writer, T),
) error {
	ctx := cmd.Context()

	data, err := do(ctx)
	if err != nil {
		var apiErr *artifacts.APIError
		if errors.As(err, &apiErr) && apiErr.IsCooldown() {
			return fmt.Errorf("%s is still in cooldown: %w", character, err)
		}
		return fmt.Errorf("%s failed for %s: %w", action, character, err)
	}

	cd := cooldown(data)
	logger.Info().
		Str("character", character).
		Str("action", action).
		Int("cooldown", cd.TotalSeconds).
		Msg("Action completed")

	err = render(cmd, data, func(w io.Writer) {
		summary(w, data)
		row(w, "Cooldown:", formatCooldown(cd.RemainingSeconds))
	})
	if err != nil {
		return err
	}

	if waitCooldown {
		return sleepCooldown(ctx, cd, time.Now())
	}
	return nil
}

// sleepCooldown blocks until the cooldown expires or ctx is cancelled
func sleepCooldown(ctx context.Context, cd artifacts.Cooldown, now time.Time) error {
	remaining := cd.Remaining(now)
	if remaining <= 0 {
		return nil
	}

	logger.Info().Dur("remaining", remaining).Msg("Waiting for cooldown")

	timer := time.NewTimer(remaining)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func parseCoordinates(xs, ys string) (int, int, error) {
	x, err := strconv.Atoi(xs)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x coordinate %q: %w", xs, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y coordinate %q: %w", ys, err)
	}
	return x, y, nil
}

func equipSummary(w io.Writer, d *artifacts.CharacterEquipData) {
	row(w, "Slot:", d.Slot)
	row(w, "Item:", d.Item.Code)
}

func itemTransactionSummary(w io.Writer, d *artifacts.CharacterItemTransactionData) {
	row(w, "Item:", d.Item.Code)
	row(w, "Bank items:", len(d.Bank))
}

func componentRows(w io.Writer, label string, items []artifacts.ItemComponent) {
	for _, item := range items {
		row(w, label, fmt.Sprintf("%s x%d", item.Code, item.Quantity))
	}
}
