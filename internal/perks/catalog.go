// Package perks holds the static rune catalog used to resolve perk ids
// into display names. The catalog is loaded once and never mutated.
package perks

// Rune is one selectable perk inside a style slot.
type Rune struct {
	ID   int
	Name string
}

// Slot groups the runes a player picks one of within a style.
type Slot struct {
	Runes []Rune
}

// Style is a rune tree (Precision, Domination, ...).
type Style struct {
	ID    int
	Name  string
	Slots []Slot
}

var catalog = []Style{
	{
		ID:   8000,
		Name: "Precision",
		Slots: []Slot{
			{Runes: []Rune{
				{ID: 8005, Name: "Press the Attack"},
				{ID: 8008, Name: "Lethal Tempo"},
				{ID: 8021, Name: "Fleet Footwork"},
				{ID: 8010, Name: "Conqueror"},
			}},
			{Runes: []Rune{
				{ID: 9101, Name: "Overheal"},
				{ID: 9111, Name: "Triumph"},
				{ID: 8009, Name: "Presence of Mind"},
			}},
			{Runes: []Rune{
				{ID: 9104, Name: "Legend: Alacrity"},
				{ID: 9105, Name: "Legend: Tenacity"},
				{ID: 9103, Name: "Legend: Bloodline"},
			}},
			{Runes: []Rune{
				{ID: 8014, Name: "Coup de Grace"},
				{ID: 8017, Name: "Cut Down"},
				{ID: 8299, Name: "Last Stand"},
			}},
		},
	},
	{
		ID:   8100,
		Name: "Domination",
		Slots: []Slot{
			{Runes: []Rune{
				{ID: 8112, Name: "Electrocute"},
				{ID: 8124, Name: "Predator"},
				{ID: 8128, Name: "Dark Harvest"},
				{ID: 9923, Name: "Hail of Blades"},
			}},
			{Runes: []Rune{
				{ID: 8126, Name: "Cheap Shot"},
				{ID: 8139, Name: "Taste of Blood"},
				{ID: 8143, Name: "Sudden Impact"},
			}},
			{Runes: []Rune{
				{ID: 8136, Name: "Zombie Ward"},
				{ID: 8120, Name: "Ghost Poro"},
				{ID: 8138, Name: "Eyeball Collection"},
			}},
			{Runes: []Rune{
				{ID: 8135, Name: "Ravenous Hunter"},
				{ID: 8134, Name: "Ingenious Hunter"},
				{ID: 8105, Name: "Relentless Hunter"},
				{ID: 8106, Name: "Ultimate Hunter"},
			}},
		},
	},
	{
		ID:   8200,
		Name: "Sorcery",
		Slots: []Slot{
			{Runes: []Rune{
				{ID: 8214, Name: "Summon Aery"},
				{ID: 8229, Name: "Arcane Comet"},
				{ID: 8230, Name: "Phase Rush"},
			}},
			{Runes: []Rune{
				{ID: 8224, Name: "Nullifying Orb"},
				{ID: 8226, Name: "Manaflow Band"},
				{ID: 8275, Name: "Nimbus Cloak"},
			}},
			{Runes: []Rune{
				{ID: 8210, Name: "Transcendence"},
				{ID: 8234, Name: "Celerity"},
				{ID: 8233, Name: "Absolute Focus"},
			}},
			{Runes: []Rune{
				{ID: 8237, Name: "Scorch"},
				{ID: 8232, Name: "Waterwalking"},
				{ID: 8236, Name: "Gathering Storm"},
			}},
		},
	},
	{
		ID:   8300,
		Name: "Inspiration",
		Slots: []Slot{
			{Runes: []Rune{
				{ID: 8351, Name: "Glacial Augment"},
				{ID: 8360, Name: "Unsealed Spellbook"},
				{ID: 8369, Name: "First Strike"},
			}},
			{Runes: []Rune{
				{ID: 8306, Name: "Hextech Flashtraption"},
				{ID: 8304, Name: "Magical Footwear"},
				{ID: 8313, Name: "Perfect Timing"},
			}},
			{Runes: []Rune{
				{ID: 8321, Name: "Future's Market"},
				{ID: 8316, Name: "Minion Dematerializer"},
				{ID: 8345, Name: "Biscuit Delivery"},
			}},
			{Runes: []Rune{
				{ID: 8347, Name: "Cosmic Insight"},
				{ID: 8410, Name: "Approach Velocity"},
				{ID: 8352, Name: "Time Warp Tonic"},
			}},
		},
	},
	{
		ID:   8400,
		Name: "Resolve",
		Slots: []Slot{
			{Runes: []Rune{
				{ID: 8437, Name: "Grasp of the Undying"},
				{ID: 8439, Name: "Aftershock"},
				{ID: 8465, Name: "Guardian"},
			}},
			{Runes: []Rune{
				{ID: 8446, Name: "Demolish"},
				{ID: 8463, Name: "Font of Life"},
				{ID: 8401, Name: "Shield Bash"},
			}},
			{Runes: []Rune{
				{ID: 8429, Name: "Conditioning"},
				{ID: 8444, Name: "Second Wind"},
				{ID: 8473, Name: "Bone Plating"},
			}},
			{Runes: []Rune{
				{ID: 8451, Name: "Overgrowth"},
				{ID: 8453, Name: "Revitalize"},
				{ID: 8242, Name: "Unflinching"},
			}},
		},
	},
}

// RuneName resolves a perk id through its owning style. The first rune
// matching the id across the style's slots wins; unknown styles or ids
// resolve to an empty name.
func RuneName(styleID, perkID int) string {
	for _, style := range catalog {
		if style.ID != styleID {
			continue
		}
		for _, slot := range style.Slots {
			for _, r := range slot.Runes {
				if r.ID == perkID {
					return r.Name
				}
			}
		}
	}
	return ""
}
