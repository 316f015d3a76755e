package condition

import "sort"

// The condition vocabulary: category -> subcategory -> description. A
// clause path is valid when its category.subcategory pair exists here (or
// in the overlay for the validator's class). Descriptions are surfaced to
// builder UIs.
var basicConditions = map[string]map[string]string{
	"player": {
		"health":          "Player's health percentage",
		"health.actual":   "Player's actual health value",
		"health.max":      "Player's maximum health",
		"mana":            "Player's mana percentage",
		"rage":            "Player's rage amount",
		"energy":          "Player's energy amount",
		"focus":           "Player's focus amount",
		"runicpower":      "Player's runic power amount",
		"holypower":       "Player's holy power amount",
		"chi":             "Player's chi amount",
		"soulshards":      "Player's soul shards amount",
		"eclipse":         "Player's eclipse value",
		"combopoints":     "Player's combo points",
		"buff":            "Check if player has a specific buff",
		"buff.any":        "Check if player has any of several buffs",
		"buff.count":      "Stack count of a buff",
		"buff.duration":   "Remaining duration of a buff",
		"debuff":          "Check if player has a specific debuff",
		"debuff.any":      "Check if player has any of several debuffs",
		"debuff.count":    "Stack count of a debuff",
		"debuff.duration": "Remaining duration of a debuff",
		"moving":          "Check if player is moving",
		"movingfor":       "Time player has been moving",
		"casting":         "Check if player is casting",
		"casting.percent": "Percentage of cast completed",
		"casting.delta":   "Time left on current cast",
		"channeling":      "Check if player is channeling",
		"stance":          "Current stance (Warrior)",
		"form":            "Current form (Druid)",
		"seal":            "Current seal (Paladin)",
		"lastcast":        "Last spell cast",
		"level":           "Player's level",
		"spec":            "Current specialization",
		"talent":          "Check if player has a specific talent",
		"glyph":           "Check if player has a specific glyph",
	},
	"target": {
		"health":          "Target's health percentage",
		"health.actual":   "Target's actual health value",
		"health.max":      "Target's maximum health",
		"exists":          "Check if target exists",
		"enemy":           "Check if target is hostile",
		"friend":          "Check if target is friendly",
		"name":            "Target's name",
		"distance":        "Distance to target in yards",
		"range":           "Check if target is in range",
		"debuff":          "Check if target has a specific debuff",
		"debuff.any":      "Check if target has any of several debuffs",
		"debuff.count":    "Stack count of a debuff",
		"debuff.duration": "Remaining duration of a debuff",
		"casting":         "Check if target is casting",
		"casting.percent": "Percentage of cast completed",
		"casting.delta":   "Time left on current cast",
		"interruptsat":    "Percentage when cast can be interrupted",
		"moving":          "Check if target is moving",
		"level":           "Target's level",
		"classification":  "Target's classification (normal, elite, rare, etc.)",
		"creatureType":    "Target's creature type",
		"boss":            "Check if target is a boss",
		"id":              "Target's ID",
		"threat":          "Threat percentage on target",
		"isplayer":        "Check if target is a player",
	},
	"spell": {
		"cooldown": "Cooldown time remaining",
		"charges":  "Number of charges available",
		"usable":   "Check if spell is usable",
		"exists":   "Check if spell exists in spellbook",
		"range":    "Check if target is in range of spell",
		"casted":   "Check if spell was cast recently",
	},
	"area": {
		"enemies":  "Number of enemies in an area",
		"friendly": "Number of friendly units in an area",
	},
	"group": {
		"members":   "Number of group members",
		"avghealth": "Average health percentage of the group",
		"raid":      "Check if in a raid",
		"party":     "Check if in a party",
	},
	"toggle": {
		"cooldowns": "Check if cooldowns are enabled",
		"aoe":       "Check if AoE is enabled",
		"interrupt": "Check if interrupts are enabled",
		"custom":    "Check custom toggle state",
	},
	"modifier": {
		"shift":    "Check if shift is held",
		"control":  "Check if control is held",
		"alt":      "Check if alt is held",
		"lshift":   "Check if left shift is held",
		"lcontrol": "Check if left control is held",
		"lalt":     "Check if left alt is held",
		"rshift":   "Check if right shift is held",
		"rcontrol": "Check if right control is held",
		"ralt":     "Check if right alt is held",
	},
}

var classConditions = map[string]map[string]string{
	"Druid": {
		"solar":        "Solar energy amount",
		"lunar":        "Lunar energy amount",
		"eclipse":      "Eclipse direction/value",
		"balance.sun":  "In Solar Eclipse",
		"balance.moon": "In Lunar Eclipse",
		"mushrooms":    "Active mushrooms count",
	},
	"Death Knight": {
		"runes.count":    "Available runes count",
		"runes.frac":     "Fractional runes",
		"runes.depleted": "Depleted runes count",
	},
	"Warlock": {
		"embers":      "Burning Embers count",
		"demonicfury": "Demonic Fury amount",
	},
}

// Categories returns the global category names, sorted
func Categories() []string {
	names := make([]string, 0, len(basicConditions))
	for name := range basicConditions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CategoriesForClass returns the global categories plus the class overlay
// category, when one exists for the class
func CategoriesForClass(className string) []string {
	names := Categories()
	if _, ok := classConditions[className]; ok {
		names = append(names, className)
		sort.Strings(names)
	}
	return names
}

// ConditionsForCategory returns the subcategory -> description map for a
// category. Class names are valid categories for classes with an overlay.
func ConditionsForCategory(category string) map[string]string {
	source, ok := basicConditions[category]
	if !ok {
		source, ok = classConditions[category]
	}
	if !ok {
		return nil
	}

	out := make(map[string]string, len(source))
	for k, v := range source {
		out[k] = v
	}
	return out
}
