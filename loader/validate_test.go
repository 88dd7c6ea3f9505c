package loader

import (
	"strings"
	"testing"
)

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unknown weapon kind", `Weapon "x" { item = "spoon" }`, `unknown weapon kind "spoon"`},
		{"wearable used as weapon", `Wearable "x" { item = "dagger" }`, `unknown wearable kind "dagger"`},
		{"missing kind", `Weapon "x" {}`, "missing weapon kind"},
		{"impossible material", `Weapon "x" { item = "long_sword", materials = {"wood"} }`, "a long sword cannot be made of wood"},
		{"unknown material", `Wearable "x" { item = "cloak", materials = {"mithril"} }`, `unknown material "mithril"`},
		{"unknown effect", `Weapon "x" { item = "dagger", attack = { rolls = 1, effects = {"fiery"} } }`, `unknown attack effect "fiery"`},
		{"negative defense", `Wearable "x" { item = "vest", defense = -1 }`, "defense must not be negative"},
		{"duplicate", `Weapon "a" { item = "club" } Weapon "a" { item = "mace" }`, `duplicate weapon "a"`},
		{"undefined weapon", `Inventory "kit" { weapons = {"spoon"} }`, `inventory "kit" references undefined weapon "spoon"`},
		{"undefined wearable", `Inventory "kit" { wearables = {"tiara"} }`, `references undefined wearable "tiara"`},
		{"undefined inventory", `Npc "x" { inventory = "kit" } Spawn "cave" { "x" }`, `npc "x" references undefined inventory "kit"`},
		{"unknown species", `Npc "x" { species = "dragon" } Spawn "cave" { "x" }`, `unknown species "dragon"`},
		{"unknown undead", `Npc "x" { undead = {"lich"} } Spawn "cave" { "x" }`, `unknown undead kind "lich"`},
		{"bad chance", `Npc "x" { undead_chance = 150 } Spawn "cave" { "x" }`, "undead_chance 150 is not a percentage"},
		{"bad equip chance", `Inventory "kit" { equip_weapon_chance = 101 }`, "equip_weapon_chance 101 is not a percentage"},
		{"unknown spell", `Player { spells = {"wish"} }`, `unknown spell "wish"`},
		{"bad spell entry", `Player { spells = {7} }`, "spells must be names or tables"},
		{"undefined spawn", `Spawn "cave" { "dragon" }`, `spawn "cave" references undefined npc "dragon"`},
		{"unknown room type", `Spawn "moon" { }`, `unknown room type "moon"`},
		{"inverted range", `Rooms { exits = {3, 1} }`, "exits range {3, 1} is invalid"},
		{"malformed range", `Rooms { exits = {1} }`, "exits must be {min, max}"},
		{"no exits", `Rooms { exits = 0 }`, "at least one exit"},
		{"empty flavour", `Flavour "cave" { "  " }`, `flavour "cave" has an empty line`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ve := compileString(t, tt.src)
			assertContains(t, ve.Errors, tt.want)
		})
	}
}

func TestValidate_CollectsEveryError(t *testing.T) {
	_, ve := compileString(t, `
		Weapon "a" { item = "spoon" }
		Wearable "b" { item = "tiara" }
		Spawn "cave" { "dragon" }
	`)
	if len(ve.Errors) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(ve.Errors), ve.Errors)
	}
	msg := ve.Error()
	if !strings.HasPrefix(msg, "validation failed with 3 error(s):") {
		t.Errorf("Error() = %q", msg)
	}
}

func TestValidate_Warnings(t *testing.T) {
	_, ve := compileString(t, `
		Rooms { types = {"cave"} }
		Npc "hermit" { species = "human" }
		Npc "ghoul" { species = "orc" }
		Spawn "cemetery" { "ghoul" }
	`)
	if len(ve.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", ve.Errors)
	}
	assertContains(t, ve.Warnings, `npc "hermit" is never spawned`)
	assertContains(t, ve.Warnings, `spawn "cemetery" names a room type that is never generated`)
}

func assertContains(t *testing.T, msgs []string, substr string) {
	t.Helper()
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return
		}
	}
	t.Errorf("expected a message containing %q, got %v", substr, msgs)
}
