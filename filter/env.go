package filter

import (
	"slices"
	"strings"

	"github.com/s0up4200/artifactsmmo/artifacts"
)

// ItemEnv exposes an item to filter expressions
func ItemEnv(item artifacts.Item) map[string]any {
	effects := make(map[string]int, len(item.Effects))
	for _, e := range item.Effects {
		effects[e.Name] = e.Value
	}

	var (
		craftSkill string
		craftLevel int
		materials  []string
	)
	if item.Craft != nil {
		craftSkill = string(item.Craft.Skill)
		craftLevel = item.Craft.Level
		for _, c := range item.Craft.Items {
			materials = append(materials, c.Code)
		}
	}

	slots := make([]string, 0, len(item.Type.Slots()))
	for _, s := range item.Type.Slots() {
		slots = append(slots, string(s))
	}

	return map[string]any{
		"name":        item.Name,
		"code":        item.Code,
		"level":       item.Level,
		"type":        string(item.Type),
		"subtype":     string(item.Subtype),
		"description": item.Description,
		"effects":     effects,
		"slots":       slots,
		"equippable":  item.Equippable(),
		"craftable":   item.Craft != nil,
		"craft_skill": craftSkill,
		"craft_level": craftLevel,

		"hasEffect": func(name string) bool {
			_, ok := effects[name]
			return ok
		},
		"effect": func(name string) int {
			return effects[name]
		},
		"craftedWith": codeSetFunc(materials),
	}
}

// MonsterEnv exposes a monster to filter expressions
func MonsterEnv(m artifacts.Monster) map[string]any {
	drops := make([]string, 0, len(m.Drops))
	for _, d := range m.Drops {
		drops = append(drops, d.Code)
	}

	return map[string]any{
		"name":         m.Name,
		"code":         m.Code,
		"level":        m.Level,
		"hp":           m.HP,
		"attack_fire":  m.AttackFire,
		"attack_earth": m.AttackEarth,
		"attack_water": m.AttackWater,
		"attack_air":   m.AttackAir,
		"res_fire":     m.ResFire,
		"res_earth":    m.ResEarth,
		"res_water":    m.ResWater,
		"res_air":      m.ResAir,
		"min_gold":     m.MinGold,
		"max_gold":     m.MaxGold,
		"drop_codes":   drops,

		"drops": codeSetFunc(drops),
	}
}

// ResourceEnv exposes a resource to filter expressions
func ResourceEnv(r artifacts.Resource) map[string]any {
	drops := make([]string, 0, len(r.Drops))
	for _, d := range r.Drops {
		drops = append(drops, d.Code)
	}

	return map[string]any{
		"name":       r.Name,
		"code":       r.Code,
		"skill":      string(r.Skill),
		"level":      r.Level,
		"drop_codes": drops,

		"drops": codeSetFunc(drops),
	}
}

// MapEnv exposes a map tile to filter expressions. Tiles without content
// have empty content_type and content_code.
func MapEnv(m artifacts.Map) map[string]any {
	var contentType, contentCode string
	if m.Content != nil {
		contentType = string(m.Content.Type)
		contentCode = m.Content.Code
	}

	return map[string]any{
		"name":         m.Name,
		"skin":         m.Skin,
		"x":            m.X,
		"y":            m.Y,
		"content_type": contentType,
		"content_code": contentCode,
		"has_content":  m.Content != nil,
	}
}

// codeSetFunc builds a case-insensitive membership test over item codes
func codeSetFunc(codes []string) func(string) bool {
	lowered := make([]string, len(codes))
	for i, c := range codes {
		lowered[i] = strings.ToLower(c)
	}
	return func(code string) bool {
		return slices.Contains(lowered, strings.ToLower(code))
	}
}
