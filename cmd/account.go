package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/artifactsmmo/artifacts"
)

// maxConcurrentFetches bounds parallel requests issued by a single command
const maxConcurrentFetches = 4

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the game server status",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var characterCmd = &cobra.Command{
	Use:   "character <name>...",
	Short: "Show one or more characters",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCharacter,
}

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "List the characters of your account",
	Args:  cobra.NoArgs,
	RunE:  runCharacters,
}

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Show the account bank",
	Args:  cobra.NoArgs,
	RunE:  runBank,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(characterCmd)
	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(bankCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	status, err := client.Status(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get server status: %w", err)
	}

	return render(cmd, status, func(w io.Writer) {
		row(w, "Status:", status.Status)
		row(w, "Version:", status.Version)
		row(w, "Max level:", status.MaxLevel)
		row(w, "Characters online:", status.CharactersOnline)
		row(w, "Server time:", status.ServerTime)
		row(w, "Next wipe:", orDash(status.NextWipe))
		for _, a := range status.Announcements {
			row(w, "Announcement:", a.Message)
		}
	})
}

func runCharacter(cmd *cobra.Command, args []string) error {
	characters := make([]*artifacts.Character, len(args))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(maxConcurrentFetches)
	for i, name := range args {
		g.Go(func() error {
			ch, err := client.Character(ctx, name)
			if err != nil {
				return fmt.Errorf("failed to get character %s: %w", name, err)
			}
			characters[i] = ch
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return render(cmd, characters, func(w io.Writer) {
		characterTable(w, characters)
	})
}

func runCharacters(cmd *cobra.Command, args []string) error {
	characters, err := client.MyCharacters(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list characters: %w", err)
	}

	ptrs := make([]*artifacts.Character, len(characters))
	for i := range characters {
		ptrs[i] = &characters[i]
	}

	return render(cmd, characters, func(w io.Writer) {
		if len(characters) == 0 {
			fmt.Fprintln(w, "No characters on this account.")
			return
		}
		characterTable(w, ptrs)
	})
}

func characterTable(w io.Writer, characters []*artifacts.Character) {
	row(w, "NAME", "LEVEL", "X", "Y", "HP", "GOLD", "TASK", "COOLDOWN")
	now := time.Now()
	for _, ch := range characters {
		cooldown := 0
		if ch.CooldownExpiration != nil {
			if left := ch.CooldownExpiration.Sub(now); left > 0 {
				cooldown = int(left.Seconds())
			}
		}
		task := "-"
		if ch.Task.Task != "" {
			task = fmt.Sprintf("%s %d/%d", ch.Task.Task, ch.Task.TaskProgress, ch.Task.TaskTotal)
		}
		row(w, ch.Name, ch.Level, ch.X, ch.Y,
			fmt.Sprintf("%d/%d", ch.HP, ch.MaxHP), ch.Gold, task, formatCooldown(cooldown))
	}
}

// bankView is the --json shape of the bank command
type bankView struct {
	Details *artifacts.BankDetails    `json:"details"`
	Items   []artifacts.ItemComponent `json:"items"`
}

func runBank(cmd *cobra.Command, args []string) error {
	var view bankView

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		details, err := client.BankDetails(ctx)
		if err != nil {
			return fmt.Errorf("failed to get bank details: %w", err)
		}
		view.Details = details
		return nil
	})
	g.Go(func() error {
		items, err := client.BankItems(ctx)
		if err != nil {
			return fmt.Errorf("failed to get bank items: %w", err)
		}
		view.Items = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Debug().Int("items", len(view.Items)).Msg("Retrieved bank")

	return render(cmd, view, func(w io.Writer) {
		row(w, "Gold:", view.Details.Gold)
		row(w, "Slots:", view.Details.Slots)
		fmt.Fprintln(w)
		row(w, "CODE", "QUANTITY")
		for _, item := range view.Items {
			row(w, item.Code, item.Quantity)
		}
	})
}
