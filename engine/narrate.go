package engine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nathoo/underworld/engine/events"
	"github.com/nathoo/underworld/engine/state"
	"github.com/nathoo/underworld/engine/tables"
	"github.com/nathoo/underworld/engine/view"
	"github.com/nathoo/underworld/types"
)

// narrate renders committed events as prose. before is the player as they
// were when the action started, for the spells the events may have used up.
func (e *Engine) narrate(evts []events.Event, before types.PlayerCharacter) []string {
	var out []string
	say := func(format string, args ...any) {
		out = append(out, view.DisplayAsSentence(fmt.Sprintf(format, args...)))
	}

	playerID := e.Player.Identifier.ID
	struckBack := false
	for _, evt := range evts {
		switch evt := evt.(type) {
		case events.RoomExited:
			if old, ok := state.FindRoom(&e.State, evt.OldRoomID); ok {
				say("you leave through %s", describeExit(old, evt.ExitID.String()))
			}
		case events.NpcHit:
			if struckBack {
				say("your aura of retribution lashes %s for %d damage", e.npcName(evt.NpcID), evt.Damage)
			} else {
				say("you hit %s for %d damage", e.npcName(evt.NpcID), evt.Damage)
			}
		case events.NpcKilled:
			say("%s dies", e.npcName(evt.NpcID))
		case events.NpcHealed:
			say("%s is healed for %d", e.npcName(evt.NpcID), evt.DamageHealed)
		case events.NpcNameDiscovered:
			say("you learn that it is called %s", e.npcName(evt.NpcID))
		case events.NpcHealthDiscovered:
			if npc, ok := state.FindNpc(e.room(), evt.NpcID); ok {
				h := npc.Character.Stats.Health
				say("you judge %s to have %d of %d health", e.npcName(evt.NpcID), h.Current, h.Max)
			}
		case events.NpcPackedItemsDiscovered:
			say("you work out what %s has packed away", e.npcName(evt.NpcID))
		case events.NpcHiddenItemsDiscovered:
			say("you spot what %s has hidden", e.npcName(evt.NpcID))
		case events.FixtureHiddenCompartmentDiscovered:
			say("you find a hidden compartment in %s", e.fixtureName(evt.FixtureID))
		case events.ItemTakenFromFixture:
			say("you take %s from %s", e.carriedName(evt.ItemID), e.fixtureName(evt.FixtureID))
		case events.ItemTakenFromNpc:
			say("you take %s from %s", e.carriedName(evt.ItemID), e.npcName(evt.NpcID))
		case events.PlayerItemMoved:
			item := e.carriedName(evt.ItemID)
			switch evt.Location {
			case types.LocationPacked:
				say("you pack %s", item)
			case types.LocationHidden:
				say("you hide %s", item)
			default:
				if evt.PutAtTheReady {
					say("you ready %s at your %s", item, evt.Location)
				} else {
					say("you put %s on your %s", item, evt.Location)
				}
			}
		case events.PlayerHit:
			if evt.AttackerID == playerID {
				say("the spell turns on you for %d damage", evt.Damage)
			} else {
				say("%s hits you for %d damage", e.npcName(evt.AttackerID), evt.Damage)
			}
			struckBack = e.Player.Character.CurrentEffects.RetributionAura == nil &&
				before.Character.CurrentEffects.RetributionAura != nil
		case events.PlayerHealed:
			say("you are healed for %d", evt.DamageHealed)
		case events.PlayerKilled:
			say("you die")
		case events.PlayerResurrected:
			say("the phoenix flame consumes you, and you rise again")
		case events.PlayerGainsResurrectionAura:
			say("the phoenix flame settles within you")
		case events.PlayerGainsRetributionAura:
			say("an aura of retribution surrounds you")
		case events.PlayerGainsShieldAura:
			say("a shimmering shield surrounds you")
		case events.PlayerRetributionAuraDissipated:
			say("your aura of retribution fades")
		case events.PlayerSpellForgotten:
			if ls, ok := state.FindSpell(&before.Character, evt.SpellID); ok {
				say("%s fades from your memory", tables.SpellDisplayName(ls.Spell.Name))
			}
		}
	}
	return out
}

// npcName is how the player knows an NPC: by name, or as "the goblin".
func (e *Engine) npcName(id uuid.UUID) string {
	npc, ok := state.FindNpc(e.room(), id)
	if !ok {
		return "something"
	}
	v := view.LookAtNpc(*npc, state.NpcKnowledge(&e.State, id), e.Player.KnowsAll)
	if v.Identifier.Name != nil && *v.Identifier.Name != "" {
		return *v.Identifier.Name
	}
	return "the " + v.Noun()
}

func (e *Engine) fixtureName(id uuid.UUID) string {
	f, ok := state.FindFixture(e.room(), id)
	if !ok {
		return "something"
	}
	return "the " + tables.FixtureName(f.FixtureType)
}

func (e *Engine) carriedName(id uuid.UUID) string {
	ci, ok := state.FindItem(&e.Player.Character, id)
	if !ok {
		return "something"
	}
	return view.DescribeItem(ci.Item)
}

// describeExit names an exit of room: "a wood door".
func describeExit(room *types.Room, raw string) string {
	for _, x := range room.Exits {
		if x.Identifier.ID.String() != raw {
			continue
		}
		name := tables.ExitName(x.ExitType)
		if x.Material != "" {
			name = tables.MaterialName(x.Material) + " " + name
		}
		return "the " + name
	}
	return "the way out"
}

func (e *Engine) describeNpc(raw string) []string {
	id := uuid.MustParse(raw)
	npc, ok := state.FindNpc(e.room(), id)
	if !ok {
		return nil
	}
	v := view.LookAtNpc(*npc, state.NpcKnowledge(&e.State, id), e.Player.KnowsAll)
	out := []string{view.DisplayAsSentence("you see " + v.String())}
	switch {
	case state.IsDead(&npc.Character):
		out = append(out, "It is dead.")
	case v.Character.Health != nil:
		out = append(out, fmt.Sprintf("It has %d of %d health.", v.Character.Health.Current, v.Character.Health.Max))
	}
	if v.Character.InventoryKnown {
		out = append(out, carrying("it carries", v.Character.Inventory.Equipment))
	}
	return out
}

func carrying(prefix string, items []types.CharacterItem) string {
	if len(items) == 0 {
		return view.DisplayAsSentence(prefix + " nothing you can see")
	}
	descs := make([]string, len(items))
	for i, ci := range items {
		descs[i] = view.DescribeItem(ci.Item)
	}
	return view.DisplayAsSentence(prefix + " " + strings.Join(descs, ", "))
}

func (e *Engine) describeFixture(raw string) []string {
	id := uuid.MustParse(raw)
	f, ok := state.FindFixture(e.room(), id)
	if !ok {
		return nil
	}
	v := view.LookAtFixture(*f, state.FixtureKnowledge(&e.State, id), e.Player.KnowsAll)
	out := []string{view.DisplayAsSentence("you see " + v.String())}
	if v.ItemsKnown {
		if len(v.Items) == 0 {
			out = append(out, "It is empty.")
		} else {
			descs := make([]string, len(v.Items))
			for i, it := range v.Items {
				descs[i] = view.DescribeItem(it.Item)
			}
			out = append(out, view.DisplayAsSentence("inside is "+strings.Join(descs, ", ")))
		}
	}
	if v.HasHiddenCompartment != nil && *v.HasHiddenCompartment {
		out = append(out, "It has a hidden compartment.")
	}
	return out
}

func (e *Engine) describeCarried(raw string) string {
	ci, ok := findCarried(&e.Player, raw)
	if !ok {
		return ""
	}
	desc := view.DescribeItem(ci.Item)
	switch {
	case ci.Item.Attack != nil:
		a := ci.Item.Attack
		return view.DisplayAsSentence(fmt.Sprintf("%s (%dd6%+d)", desc, a.NumRolls, a.Modifier))
	case ci.Item.Defense != nil:
		return view.DisplayAsSentence(fmt.Sprintf("%s (resists %d)", desc, ci.Item.Defense.DamageResistance))
	}
	return view.DisplayAsSentence(desc)
}
