package handlers

import (
	"github.com/google/uuid"

	"github.com/nathoo/underworld/engine/actions"
	"github.com/nathoo/underworld/engine/events"
	"github.com/nathoo/underworld/engine/state"
	"github.com/nathoo/underworld/types"
)

// AttackNpc swings every readied weapon at an NPC. A surviving NPC strikes
// back, and a retribution aura answers that blow once before fading if it
// dealt any damage.
func AttackNpc(a actions.AttackNpc, s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
	npc, err := findNpc(s, a.TargetID)
	if err != nil {
		return nil, err
	}
	if err := liveNpc(npc); err != nil {
		return nil, err
	}

	npcID := npc.Identifier.ID
	npcHealth := npc.Character.Stats.Health
	npcDefense := state.Defense(&npc.Character)

	damage := state.AttackRoll(&p.Character, ctx.RNG)
	evts := []events.Event{events.NpcHit{NpcID: npcID, AttackerID: p.Identifier.ID, Damage: damage}}
	if lethal(npcHealth, damage, npcDefense) {
		return append(evts, events.NpcKilled{NpcID: npcID, KillerID: p.Identifier.ID}), nil
	}
	npcHealth.Current -= max(0, damage-npcDefense)

	blow := state.AttackRoll(&npc.Character, ctx.RNG)
	evts = append(evts, events.PlayerHit{AttackerID: npcID, Damage: blow})

	// Only a blow that gets through the player's defenses provokes the aura.
	if aura := p.Character.CurrentEffects.RetributionAura; aura != nil && max(0, blow-state.PlayerDefense(p)) > 0 {
		riposte := state.RollAttack(*aura, ctx.RNG)
		evts = append(evts,
			events.NpcHit{NpcID: npcID, AttackerID: p.Identifier.ID, Damage: riposte},
			events.PlayerRetributionAuraDissipated{},
		)
		if lethal(npcHealth, riposte, npcDefense) {
			evts = append(evts, events.NpcKilled{NpcID: npcID, KillerID: p.Identifier.ID})
		}
	}

	return append(evts, playerFalls(p, blow, npcID)...), nil
}

// playerFalls returns the events that follow a blow to the player: none
// if they stand, otherwise resurrection or death.
func playerFalls(p *types.PlayerCharacter, damage int, attackerID uuid.UUID) []events.Event {
	if !lethal(p.Character.Stats.Health, damage, state.PlayerDefense(p)) {
		return nil
	}
	if p.Character.CurrentEffects.ResurrectionAura {
		return []events.Event{events.PlayerResurrected{}}
	}
	return []events.Event{events.PlayerKilled{KillerID: attackerID}}
}
