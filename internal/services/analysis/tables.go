package analysis

// criticalSpells lists the core abilities a spec rotation is expected to
// carry
var criticalSpells = map[string]map[string][]string{
	"Mage": {
		"Arcane": {"Arcane Blast", "Arcane Missiles", "Evocation"},
		"Fire":   {"Fireball", "Pyroblast", "Fire Blast"},
		"Frost":  {"Frostbolt", "Ice Lance", "Frozen Orb"},
	},
	"Paladin": {
		"Holy":        {"Holy Light", "Divine Light", "Holy Shock"},
		"Protection":  {"Shield of the Righteous", "Avenger's Shield", "Judgment"},
		"Retribution": {"Templar's Verdict", "Crusader Strike", "Judgment"},
	},
	"Warrior": {
		"Arms":       {"Mortal Strike", "Colossus Smash", "Execute"},
		"Fury":       {"Bloodthirst", "Wild Strike", "Raging Blow"},
		"Protection": {"Shield Slam", "Revenge", "Thunder Clap"},
	},
	"Druid": {
		"Balance":     {"Wrath", "Starfire", "Starsurge"},
		"Feral":       {"Rake", "Shred", "Rip"},
		"Guardian":    {"Mangle", "Thrash", "Savage Defense"},
		"Restoration": {"Rejuvenation", "Healing Touch", "Swiftmend"},
	},
	"Death Knight": {
		"Blood":  {"Death Strike", "Heart Strike", "Blood Boil"},
		"Frost":  {"Obliterate", "Frost Strike", "Howling Blast"},
		"Unholy": {"Scourge Strike", "Festering Strike", "Death Coil"},
	},
	"Hunter": {
		"Beast Mastery": {"Kill Command", "Arcane Shot", "Cobra Shot"},
		"Marksmanship":  {"Chimera Shot", "Aimed Shot", "Steady Shot"},
		"Survival":      {"Explosive Shot", "Black Arrow", "Arcane Shot"},
	},
	"Priest": {
		"Discipline": {"Penance", "Power Word: Shield", "Prayer of Mending"},
		"Holy":       {"Prayer of Mending", "Circle of Healing", "Holy Word: Sanctuary"},
		"Shadow":     {"Mind Blast", "Mind Flay", "Shadow Word: Pain"},
	},
	"Rogue": {
		"Assassination": {"Mutilate", "Envenom", "Rupture"},
		"Combat":        {"Sinister Strike", "Eviscerate", "Revealing Strike"},
		"Subtlety":      {"Backstab", "Hemorrhage", "Eviscerate"},
	},
	"Shaman": {
		"Elemental":   {"Lightning Bolt", "Lava Burst", "Earth Shock"},
		"Enhancement": {"Stormstrike", "Lava Lash", "Lightning Bolt"},
		"Restoration": {"Healing Wave", "Riptide", "Chain Heal"},
	},
	"Warlock": {
		"Affliction":  {"Agony", "Corruption", "Malefic Grasp"},
		"Demonology":  {"Shadow Bolt", "Hand of Gul'dan", "Soul Fire"},
		"Destruction": {"Incinerate", "Chaos Bolt", "Immolate"},
	},
	"Monk": {
		"Brewmaster": {"Keg Smash", "Blackout Kick", "Guard"},
		"Windwalker": {"Tiger Palm", "Rising Sun Kick", "Fists of Fury"},
		"Mistweaver": {"Soothing Mist", "Enveloping Mist", "Renewing Mist"},
	},
}

// defensiveSpells lists each class's defensive abilities
var defensiveSpells = map[string][]string{
	"Mage":         {"Ice Block", "Frost Nova", "Blink"},
	"Paladin":      {"Divine Shield", "Hand of Protection", "Divine Protection"},
	"Warrior":      {"Shield Wall", "Last Stand", "Spell Reflection"},
	"Druid":        {"Barkskin", "Survival Instincts", "Frenzied Regeneration"},
	"Death Knight": {"Anti-Magic Shell", "Icebound Fortitude", "Vampiric Blood"},
	"Hunter":       {"Deterrence", "Disengage", "Feign Death"},
	"Priest":       {"Dispersion", "Pain Suppression", "Guardian Spirit"},
	"Rogue":        {"Cloak of Shadows", "Evasion", "Combat Readiness"},
	"Shaman":       {"Astral Shift", "Shamanistic Rage", "Healing Stream Totem"},
	"Warlock":      {"Unending Resolve", "Dark Bargain", "Sacrificial Pact"},
	"Monk":         {"Fortifying Brew", "Guard", "Touch of Karma"},
}

// cooldownSpells lists each class's major offensive cooldowns
var cooldownSpells = map[string][]string{
	"Mage":         {"Time Warp", "Mirror Image", "Arcane Power", "Combustion", "Icy Veins"},
	"Paladin":      {"Avenging Wrath", "Guardian of Ancient Kings", "Holy Avenger"},
	"Warrior":      {"Recklessness", "Bladestorm", "Avatar"},
	"Druid":        {"Incarnation", "Nature's Vigil", "Force of Nature"},
	"Death Knight": {"Pillar of Frost", "Dancing Rune Weapon", "Summon Gargoyle"},
	"Hunter":       {"Rapid Fire", "Bestial Wrath", "Stampede"},
	"Priest":       {"Power Infusion", "Shadowfiend", "Divine Hymn"},
	"Rogue":        {"Adrenaline Rush", "Shadow Dance", "Vendetta"},
	"Shaman":       {"Ascendance", "Stormlash Totem", "Fire Elemental Totem"},
	"Warlock":      {"Dark Soul", "Summon Doomguard", "Grimoire of Service"},
	"Monk":         {"Energizing Brew", "Tigereye Brew", "Thunder Focus Tea"},
}

