package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/artifactsmmo/artifacts"
	"github.com/s0up4200/artifactsmmo/filter"
)

// compiler is shared by every catalog command so repeated expressions compile once
var compiler = filter.NewCompiler(filter.WithCache(32))

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List item definitions",
	Long: `List every item definition, optionally narrowed by a filter expression.

Fields: name, code, level, type, subtype, description, effects, slots,
equippable, craftable, craft_skill, craft_level.
Helpers: hasEffect(name), effect(name), craftedWith(code), and the
case-insensitive icontains(s, sub), istartsWith(s, prefix), iendsWith(s, suffix).
Operators: contains, startsWith, endsWith, matches, in, and the expr builtins
such as lower, upper, hasPrefix and len.

Examples:
  artifacts items --filter 'type == "weapon" and level <= 10 and hasEffect("attack_fire")'
  artifacts items --filter 'lower(name) contains "dagger"'`,
	Args: cobra.NoArgs,
	RunE: runItems,
}

var monstersCmd = &cobra.Command{
	Use:   "monsters",
	Short: "List monster definitions",
	Long: `List every monster definition, optionally narrowed by a filter expression.

Fields: name, code, level, hp, attack_*, res_*, min_gold, max_gold, drop_codes.
Helpers: drops(code), icontains, istartsWith, iendsWith.`,
	Args: cobra.NoArgs,
	RunE: runMonsters,
}

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "List resource definitions",
	Long: `List every resource definition, optionally narrowed by a filter expression.

Fields: name, code, skill, level, drop_codes.
Helpers: drops(code), icontains, istartsWith, iendsWith.`,
	Args: cobra.NoArgs,
	RunE: runResources,
}

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List map tiles",
	Long: `List every map tile, optionally narrowed by a filter expression.

Fields: name, skin, x, y, content_type, content_code, has_content.`,
	Args: cobra.NoArgs,
	RunE: runMaps,
}

var itemCmd = &cobra.Command{
	Use:   "item <code>",
	Short: "Show one item definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, err := client.Item(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get item %s: %w", args[0], err)
		}
		return render(cmd, item, func(w io.Writer) {
			itemTable(w, []artifacts.Item{*item})
			for _, e := range item.Effects {
				row(w, "", "effect", e.Name, e.Value)
			}
			if item.Craft != nil {
				for _, c := range item.Craft.Items {
					row(w, "", "needs", c.Code, c.Quantity)
				}
			}
		})
	},
}

var monsterCmd = &cobra.Command{
	Use:   "monster <code>",
	Short: "Show one monster definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		monster, err := client.Monster(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get monster %s: %w", args[0], err)
		}
		return render(cmd, monster, func(w io.Writer) {
			monsterTable(w, []artifacts.Monster{*monster})
		})
	},
}

var resourceCmd = &cobra.Command{
	Use:   "resource <code>",
	Short: "Show one resource definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resource, err := client.Resource(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get resource %s: %w", args[0], err)
		}
		return render(cmd, resource, func(w io.Writer) {
			resourceTable(w, []artifacts.Resource{*resource})
		})
	},
}

var mapCmd = &cobra.Command{
	Use:   "map <x> <y>",
	Short: "Show one map tile",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, y, err := parseCoordinates(args[0], args[1])
		if err != nil {
			return err
		}

		tile, err := client.Map(cmd.Context(), x, y)
		if err != nil {
			return fmt.Errorf("failed to get map (%d, %d): %w", x, y, err)
		}
		return render(cmd, tile, func(w io.Writer) {
			mapTable(w, []artifacts.Map{*tile})
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{itemsCmd, monstersCmd, resourcesCmd, mapsCmd} {
		c.Flags().StringP("filter", "f", "", "filter expression")
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(itemCmd, monsterCmd, resourceCmd, mapCmd)
}

// listCatalog fetches a full listing and applies the command's --filter when set
func listCatalog[T any](cmd *cobra.Command, kind string, fetch func(context.Context) ([]T, error), env func(T) map[string]any) ([]T, error) {
	filterExpr, _ := cmd.Flags().GetString("filter")

	var program *filter.Program
	if filterExpr != "" {
		var err error
		program, err = compiler.Compile(filterExpr)
		if err != nil {
			return nil, fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	records, err := fetch(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}

	if program == nil {
		return records, nil
	}

	matches := filter.Apply(program, records, env)
	logger.Info().
		Str("filter", program.Expression()).
		Int("total", len(records)).
		Int("matches", len(matches)).
		Msgf("Filtered %s", kind)

	return matches, nil
}

func runItems(cmd *cobra.Command, args []string) error {
	items, err := listCatalog(cmd, "items", client.Items, filter.ItemEnv)
	if err != nil {
		return err
	}
	return render(cmd, items, func(w io.Writer) { itemTable(w, items) })
}

func runMonsters(cmd *cobra.Command, args []string) error {
	monsters, err := listCatalog(cmd, "monsters", client.Monsters, filter.MonsterEnv)
	if err != nil {
		return err
	}
	return render(cmd, monsters, func(w io.Writer) { monsterTable(w, monsters) })
}

func runResources(cmd *cobra.Command, args []string) error {
	resources, err := listCatalog(cmd, "resources", client.Resources, filter.ResourceEnv)
	if err != nil {
		return err
	}
	return render(cmd, resources, func(w io.Writer) { resourceTable(w, resources) })
}

func runMaps(cmd *cobra.Command, args []string) error {
	tiles, err := listCatalog(cmd, "maps", client.Maps, filter.MapEnv)
	if err != nil {
		return err
	}
	return render(cmd, tiles, func(w io.Writer) { mapTable(w, tiles) })
}

func itemTable(w io.Writer, items []artifacts.Item) {
	row(w, "CODE", "NAME", "LEVEL", "TYPE", "SUBTYPE", "CRAFT")
	for _, item := range items {
		craft := "-"
		if item.Craft != nil {
			craft = fmt.Sprintf("%s %d", item.Craft.Skill, item.Craft.Level)
		}
		row(w, item.Code, item.Name, item.Level, item.Type, orDash(string(item.Subtype)), craft)
	}
}

func monsterTable(w io.Writer, monsters []artifacts.Monster) {
	row(w, "CODE", "NAME", "LEVEL", "HP", "GOLD", "DROPS")
	for _, m := range monsters {
		drops := make([]string, 0, len(m.Drops))
		for _, d := range m.Drops {
			drops = append(drops, d.Code)
		}
		row(w, m.Code, m.Name, m.Level, m.HP,
			fmt.Sprintf("%d-%d", m.MinGold, m.MaxGold), orDash(strings.Join(drops, ",")))
	}
}

func resourceTable(w io.Writer, resources []artifacts.Resource) {
	row(w, "CODE", "NAME", "SKILL", "LEVEL", "DROPS")
	for _, r := range resources {
		drops := make([]string, 0, len(r.Drops))
		for _, d := range r.Drops {
			drops = append(drops, d.Code)
		}
		row(w, r.Code, r.Name, r.Skill, r.Level, orDash(strings.Join(drops, ",")))
	}
}

func mapTable(w io.Writer, tiles []artifacts.Map) {
	row(w, "X", "Y", "NAME", "CONTENT")
	for _, m := range tiles {
		content := "-"
		if m.Content != nil {
			content = fmt.Sprintf("%s:%s", m.Content.Type, m.Content.Code)
		}
		row(w, m.X, m.Y, m.Name, content)
	}
}
