package handlers

import (
	"github.com/nathoo/underworld/engine/actions"
	"github.com/nathoo/underworld/engine/events"
	"github.com/nathoo/underworld/engine/ids"
	"github.com/nathoo/underworld/engine/state"
	"github.com/nathoo/underworld/engine/tables"
	"github.com/nathoo/underworld/types"
)

// CastSpellOnPlayer casts a learned spell on the caster. Damage spells hurt
// the caster like any other blow.
func CastSpellOnPlayer(a actions.CastSpellOnPlayer, s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
	spellID, err := ids.Parse(a.SpellID)
	if err != nil {
		return nil, err
	}
	ls, err := lookupSpell(p, spellID)
	if err != nil {
		return nil, err
	}

	var evts []events.Event
	spell := ls.Spell
	switch tables.Family(spell.Name) {
	case tables.FamilyDamage:
		evts = append(evts, events.PlayerHit{AttackerID: p.Identifier.ID, Damage: spell.Damage})
		evts = append(evts, playerFalls(p, spell.Damage, p.Identifier.ID)...)
	case tables.FamilyHealing:
		evts = append(evts, events.PlayerHealed{DamageHealed: spell.Damage})
	case tables.FamilyResurrection:
		evts = append(evts, events.PlayerGainsResurrectionAura{})
	case tables.FamilyRetribution:
		evts = append(evts, events.PlayerGainsRetributionAura{Attack: retribution(spell)})
	case tables.FamilyShield:
		evts = append(evts, events.PlayerGainsShieldAura{Defense: shield(spell)})
	}

	return append(evts, spellSpent(ls)...), nil
}

// CastSpellOnNpc casts a learned spell at an NPC. Only damage and healing
// reach an NPC; an aura cast at one fizzles but still costs the use.
func CastSpellOnNpc(a actions.CastSpellOnNpc, s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
	spellID, err := ids.Parse(a.SpellID)
	if err != nil {
		return nil, err
	}
	npcID, err := ids.Parse(a.TargetID)
	if err != nil {
		return nil, err
	}
	ls, err := lookupSpell(p, spellID)
	if err != nil {
		return nil, err
	}
	npc, err := lookupNpc(s, npcID)
	if err != nil {
		return nil, err
	}
	if err := liveNpc(npc); err != nil {
		return nil, err
	}

	var evts []events.Event
	spell := ls.Spell
	switch tables.Family(spell.Name) {
	case tables.FamilyDamage:
		evts = append(evts, events.NpcHit{NpcID: npcID, AttackerID: p.Identifier.ID, Damage: spell.Damage})
		if lethal(npc.Character.Stats.Health, spell.Damage, state.Defense(&npc.Character)) {
			evts = append(evts, events.NpcKilled{NpcID: npcID, KillerID: p.Identifier.ID})
		}
	case tables.FamilyHealing:
		evts = append(evts, events.NpcHealed{NpcID: npcID, DamageHealed: spell.Damage})
	case tables.FamilyResurrection, tables.FamilyRetribution, tables.FamilyShield:
	}

	return append(evts, spellSpent(ls)...), nil
}

func retribution(spell types.Spell) types.Attack {
	if spell.Attack != nil {
		return *spell.Attack
	}
	return tables.DefaultRetribution()
}

func shield(spell types.Spell) types.Defense {
	if spell.Defense != nil {
		return *spell.Defense
	}
	return tables.DefaultShield()
}

// spellSpent records one cast and forgets the spell on its last use.
func spellSpent(ls *types.LearnedSpell) []events.Event {
	evts := []events.Event{events.PlayerSpellUsed{SpellID: ls.ID}}
	if ls.Spell.Uses <= 1 {
		evts = append(evts, events.PlayerSpellForgotten{SpellID: ls.ID})
	}
	return evts
}
